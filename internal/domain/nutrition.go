package domain

// MealType classifies a recipe by the meal it belongs to.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Recipe is a read-only catalog entity.
type Recipe struct {
	ID           string
	Name         string
	Type         MealType
	PrepMinutes  int
	Servings     int
	Calories     int
	ProteinG     int
	CarbsG       int
	FatG         int
	Ingredients  []string
	Instructions []string
	Tags         []string
	Insight      string
}

// NutritionPlan aggregates a day's meals against calorie and macro
// targets. It is display-only and never mutated.
type NutritionPlan struct {
	Date           string
	TotalCalories  int
	TargetCalories int
	ProteinG       int
	TargetProteinG int
	CarbsG         int
	TargetCarbsG   int
	FatG           int
	TargetFatG     int
	Meals          []Recipe
}

// CaloriePercent returns calories consumed against target.
func (p *NutritionPlan) CaloriePercent() int {
	return CompletionRatio(p.TotalCalories, p.TargetCalories)
}

// ProteinPercent returns protein intake against target.
func (p *NutritionPlan) ProteinPercent() int {
	return CompletionRatio(p.ProteinG, p.TargetProteinG)
}

// CarbsPercent returns carbohydrate intake against target.
func (p *NutritionPlan) CarbsPercent() int {
	return CompletionRatio(p.CarbsG, p.TargetCarbsG)
}

// FatPercent returns fat intake against target.
func (p *NutritionPlan) FatPercent() int {
	return CompletionRatio(p.FatG, p.TargetFatG)
}

// GetMealTypeLabel returns a human-readable label for a meal type.
func GetMealTypeLabel(t MealType) string {
	switch t {
	case MealBreakfast:
		return "Breakfast"
	case MealLunch:
		return "Lunch"
	case MealDinner:
		return "Dinner"
	case MealSnack:
		return "Snack"
	default:
		return "Meal"
	}
}

// Supplement is a recommended product shown on the dashboard.
type Supplement struct {
	Name        string
	Description string
	Price       string
}
