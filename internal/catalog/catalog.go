// Package catalog holds the static content the views consume: workout
// plan templates, the daily nutrition plan, supplement picks, and the
// last-session report. Entries are templates; active flows always work
// on copies.
package catalog

import (
	"time"

	"github.com/vitalcoach/vital-cli/internal/domain"
)

// WorkoutInsight is the coaching blurb shown above the plan list.
const WorkoutInsight = "Based on your 78% recovery score and sleep quality, you're ready for high-intensity training today."

// TodayWorkout names the recommended plan on the dashboard.
const TodayWorkout = "Upper Body Strength"

// WorkoutPlans returns the workout plan templates.
func WorkoutPlans() []*domain.WorkoutPlan {
	return []*domain.WorkoutPlan{
		{
			ID:              "1",
			Name:            "Upper Body Strength",
			DurationMinutes: 45,
			Difficulty:      domain.DifficultyHard,
			TargetZone:      "Strength Building",
			Insight:         "Your recovery score of 78% indicates high readiness. Perfect for challenging strength work.",
			Exercises: []domain.Exercise{
				{ID: "1", Name: "Push-ups", Sets: 3, Reps: "12-15", RestSeconds: 60, TargetMuscles: []string{"Chest", "Triceps", "Shoulders"}, Difficulty: domain.DifficultyMedium},
				{ID: "2", Name: "Pull-ups", Sets: 3, Reps: "8-10", RestSeconds: 90, TargetMuscles: []string{"Back", "Biceps"}, Difficulty: domain.DifficultyHard},
				{ID: "3", Name: "Dumbbell Rows", Sets: 3, Reps: "10-12", RestSeconds: 60, TargetMuscles: []string{"Back", "Biceps"}, Difficulty: domain.DifficultyMedium},
				{ID: "4", Name: "Overhead Press", Sets: 3, Reps: "8-10", RestSeconds: 75, TargetMuscles: []string{"Shoulders", "Triceps"}, Difficulty: domain.DifficultyHard},
			},
		},
		{
			ID:              "2",
			Name:            "Active Recovery",
			DurationMinutes: 25,
			Difficulty:      domain.DifficultyEasy,
			TargetZone:      "Recovery & Mobility",
			Insight:         "Light movement to promote blood flow and recovery while maintaining activity.",
			Exercises: []domain.Exercise{
				{ID: "5", Name: "Dynamic Stretching", Sets: 2, Reps: "10 each", RestSeconds: 30, TargetMuscles: []string{"Full Body"}, Difficulty: domain.DifficultyEasy},
				{ID: "6", Name: "Yoga Flow", Sets: 1, Reps: "15 min", RestSeconds: 0, TargetMuscles: []string{"Full Body"}, Difficulty: domain.DifficultyEasy},
			},
		},
		{
			ID:              "3",
			Name:            "HIIT Cardio",
			DurationMinutes: 30,
			Difficulty:      domain.DifficultyHard,
			TargetZone:      "Cardiovascular",
			Insight:         "High intensity intervals to maximize cardiovascular benefits in minimal time.",
			Exercises: []domain.Exercise{
				{ID: "7", Name: "Burpees", Sets: 4, Reps: "30s on, 30s off", RestSeconds: 30, TargetMuscles: []string{"Full Body"}, Difficulty: domain.DifficultyHard},
				{ID: "8", Name: "Mountain Climbers", Sets: 4, Reps: "30s on, 30s off", RestSeconds: 30, TargetMuscles: []string{"Core", "Cardio"}, Difficulty: domain.DifficultyMedium},
			},
		},
	}
}

// FindPlan returns the plan with the given id, or nil.
func FindPlan(id string) *domain.WorkoutPlan {
	for _, p := range WorkoutPlans() {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// NutritionPlan returns today's meal plan with macro targets.
func NutritionPlan() *domain.NutritionPlan {
	return &domain.NutritionPlan{
		Date:           time.Now().Format("1/2/2006"),
		TotalCalories:  1850,
		TargetCalories: 2200,
		ProteinG:       145,
		TargetProteinG: 160,
		CarbsG:         180,
		TargetCarbsG:   220,
		FatG:           65,
		TargetFatG:     75,
		Meals: []domain.Recipe{
			{
				ID: "1", Name: "Power Protein Smoothie Bowl", Type: domain.MealBreakfast,
				PrepMinutes: 10, Servings: 1, Calories: 420, ProteinG: 32, CarbsG: 45, FatG: 12,
				Ingredients: []string{
					"1 scoop whey protein powder", "1 frozen banana", "1/2 cup blueberries",
					"1 tbsp almond butter", "1/2 cup almond milk", "1 tbsp chia seeds", "Granola for topping",
				},
				Instructions: []string{
					"Blend protein powder, banana, blueberries, almond butter, and almond milk until smooth",
					"Pour into bowl and top with chia seeds and granola",
					"Add fresh berries if desired",
				},
				Tags:    []string{"High Protein", "Pre-Workout", "Quick"},
				Insight: "High protein content supports muscle recovery after yesterday's strength training. Quick carbs provide energy for today's workout.",
			},
			{
				ID: "2", Name: "Mediterranean Quinoa Bowl", Type: domain.MealLunch,
				PrepMinutes: 25, Servings: 1, Calories: 520, ProteinG: 28, CarbsG: 65, FatG: 18,
				Ingredients: []string{
					"3/4 cup cooked quinoa", "4 oz grilled chicken breast", "1/4 cup chickpeas",
					"1/4 cup cucumber, diced", "1/4 cup cherry tomatoes", "2 tbsp feta cheese",
					"1 tbsp olive oil", "1 tbsp lemon juice", "Fresh herbs (parsley, mint)",
				},
				Instructions: []string{
					"Cook quinoa according to package directions",
					"Grill chicken breast and slice",
					"Combine quinoa, chickpeas, cucumber, and tomatoes in bowl",
					"Top with chicken and feta cheese",
					"Drizzle with olive oil and lemon juice",
					"Garnish with fresh herbs",
				},
				Tags:    []string{"Balanced", "Mediterranean", "Post-Workout"},
				Insight: "Balanced macros perfect for post-workout recovery. Complex carbs replenish glycogen while protein aids muscle repair.",
			},
			{
				ID: "3", Name: "Salmon & Sweet Potato", Type: domain.MealDinner,
				PrepMinutes: 30, Servings: 1, Calories: 580, ProteinG: 42, CarbsG: 35, FatG: 28,
				Ingredients: []string{
					"5 oz salmon fillet", "1 medium roasted sweet potato", "2 cups steamed broccoli",
					"1 tbsp olive oil", "1 tsp garlic powder", "Salt and pepper to taste", "Lemon wedge",
				},
				Instructions: []string{
					"Preheat oven to 400°F",
					"Season salmon with garlic powder, salt, and pepper",
					"Roast sweet potato for 25 minutes",
					"Pan-sear salmon for 4-5 minutes per side",
					"Steam broccoli until tender",
					"Serve with lemon wedge",
				},
				Tags:    []string{"Omega-3", "Anti-inflammatory", "Recovery"},
				Insight: "Omega-3 rich salmon reduces inflammation. Sweet potato provides sustained energy and aids glycogen replenishment.",
			},
			{
				ID: "4", Name: "Greek Yogurt Berry Parfait", Type: domain.MealSnack,
				PrepMinutes: 5, Servings: 1, Calories: 280, ProteinG: 20, CarbsG: 32, FatG: 8,
				Ingredients: []string{
					"1 cup Greek yogurt", "1/2 cup mixed berries", "2 tbsp honey",
					"1/4 cup granola", "1 tbsp chopped almonds",
				},
				Instructions: []string{
					"Layer half the yogurt in a glass",
					"Add half the berries and drizzle with honey",
					"Add remaining yogurt",
					"Top with remaining berries, granola, and almonds",
				},
				Tags:    []string{"High Protein", "Antioxidants", "Quick"},
				Insight: "Perfect pre-bed snack with casein protein for overnight muscle recovery. Antioxidants support recovery.",
			},
		},
	}
}

// Supplements returns the recommended supplement picks shown on the
// dashboard.
func Supplements() []domain.Supplement {
	return []domain.Supplement{
		{Name: "Whey Protein Powder", Description: "Perfect for muscle recovery", Price: "$29.99"},
		{Name: "Creatine Monohydrate", Description: "Boost strength & power", Price: "$19.99"},
		{Name: "Multivitamin Complex", Description: "Daily nutritional support", Price: "$24.99"},
	}
}

// LastReport returns the stored report for the previous session.
func LastReport() *domain.WorkoutReport {
	return &domain.WorkoutReport{
		Date:           "Yesterday",
		PlanName:       "Upper Body Strength",
		Duration:       "45 minutes",
		CaloriesBurned: 320,
		Exercises: []domain.ReportExercise{
			{Name: "Bench Press", Sets: 4, Reps: "8-10", Weight: "185 lbs", Completed: true},
			{Name: "Pull-ups", Sets: 3, Reps: "6-8", Weight: "Body weight", Completed: true},
			{Name: "Shoulder Press", Sets: 3, Reps: "10-12", Weight: "135 lbs", Completed: false},
			{Name: "Barbell Rows", Sets: 4, Reps: "8-10", Weight: "155 lbs", Completed: true},
		},
		OverallPerformance: 85,
		HeartRateAvg:       142,
		HeartRateMax:       168,
		FocusAreas: []domain.FocusArea{
			{
				Area:           "Shoulder Strength",
				Priority:       "High",
				Reason:         "Incomplete shoulder press sets suggest need for improvement",
				Recommendation: "Add lighter shoulder isolation exercises",
			},
			{
				Area:           "Pull-up Endurance",
				Priority:       "Medium",
				Reason:         "Good form but could increase reps for better endurance",
				Recommendation: "Add assisted pull-ups or negatives",
			},
			{
				Area:           "Recovery Time",
				Priority:       "Low",
				Reason:         "Rest periods were optimal for strength training",
				Recommendation: "Maintain current rest intervals",
			},
		},
	}
}

// WorkoutTypeOptions lists the selectable preferred workout types in
// the intake wizard.
func WorkoutTypeOptions() []string {
	return []string{
		"Strength Training", "Cardio", "HIIT", "Yoga",
		"Pilates", "Swimming", "Running", "Cycling",
		"Boxing", "Dance", "Martial Arts", "Calisthenics",
	}
}

// FitnessGoalOptions lists the selectable fitness goals in the intake
// wizard.
func FitnessGoalOptions() []string {
	return []string{
		"Build Muscle", "Lose Weight", "Get Stronger", "Improve Endurance",
		"Better Flexibility", "Improve Recovery", "Increase Energy",
		"Better Sleep", "Reduce Stress", "General Fitness",
	}
}

// SupportedDevices lists the wearable families the integration view
// advertises.
func SupportedDevices() []domain.DeviceType {
	return []domain.DeviceType{
		domain.DeviceAppleWatch,
		domain.DeviceFitbit,
		domain.DeviceGarmin,
		domain.DeviceSamsung,
	}
}

// WelcomeFeatures returns the rotating blurbs on the welcome screen.
func WelcomeFeatures() []struct{ Title, Description string } {
	return []struct{ Title, Description string }{
		{"Smart Health Tracking", "Analysis of your smartwatch data for personalized insights"},
		{"Personalized Workouts", "Custom workout plans that adapt to your fitness level and recovery"},
		{"Nutrition Guidance", "Intelligent meal planning and supplement recommendations"},
		{"Voice & Chat Coach", "Get instant answers and coaching through voice or text"},
	}
}
