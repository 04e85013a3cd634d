package domain

import (
	"math"
	"time"
)

// HealthSnapshot is an immutable-per-refresh bundle of raw metrics
// produced by the wearable provider. Consumers read it, never write it.
type HealthSnapshot struct {
	RestingHeartRate int
	HRV              int
	SleepScore       int
	SleepHours       float64
	RecoveryScore    int
	Steps            int
	CaloriesBurned   int
	ActiveMinutes    int
	HeartRateSeries  []int // ordered, most recent last
	Timestamp        time.Time
}

// CurrentHeartRate returns the most recent reading in the series,
// or 0 when the series is empty.
func (s *HealthSnapshot) CurrentHeartRate() int {
	if len(s.HeartRateSeries) == 0 {
		return 0
	}
	return s.HeartRateSeries[len(s.HeartRateSeries)-1]
}

// BMICategory classifies a body-mass index value.
type BMICategory string

const (
	BMIUnderweight BMICategory = "underweight"
	BMINormal      BMICategory = "normal"
	BMIOverweight  BMICategory = "overweight"
	BMIObese       BMICategory = "obese"
)

// ClassifyBMI maps a BMI value onto its category. Band edges are
// inclusive on the lower bound: 18.5 is Normal, 25 is Overweight.
func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// GetBMICategoryLabel returns a human-readable label for a BMI category.
func GetBMICategoryLabel(c BMICategory) string {
	switch c {
	case BMIUnderweight:
		return "Underweight"
	case BMINormal:
		return "Normal"
	case BMIOverweight:
		return "Overweight"
	case BMIObese:
		return "Obese"
	default:
		return "Unknown"
	}
}

// SleepQuality is the categorical rating of a night's sleep duration.
type SleepQuality string

const (
	SleepOptimal          SleepQuality = "optimal"
	SleepGood             SleepQuality = "good"
	SleepNeedsImprovement SleepQuality = "needs_improvement"
)

// ClassifySleep rates sleep duration in hours. 7-9 hours is optimal,
// 6 up to 7 is good, anything else needs improvement.
func ClassifySleep(hours float64) SleepQuality {
	switch {
	case hours >= 7 && hours <= 9:
		return SleepOptimal
	case hours >= 6 && hours < 7:
		return SleepGood
	default:
		return SleepNeedsImprovement
	}
}

// GetSleepQualityLabel returns a human-readable label for a sleep rating.
func GetSleepQualityLabel(q SleepQuality) string {
	switch q {
	case SleepOptimal:
		return "Optimal"
	case SleepGood:
		return "Good"
	case SleepNeedsImprovement:
		return "Needs Improvement"
	default:
		return "Unknown"
	}
}

// ReadinessTier describes workout-intensity suitability.
type ReadinessTier string

const (
	ReadinessHigh   ReadinessTier = "High"
	ReadinessMedium ReadinessTier = "Medium"
	ReadinessLow    ReadinessTier = "Low"
)

// ParseReadiness normalizes a readiness string from the provider.
// Unknown input falls back to Medium rather than failing.
func ParseReadiness(s string) ReadinessTier {
	switch ReadinessTier(s) {
	case ReadinessHigh, ReadinessMedium, ReadinessLow:
		return ReadinessTier(s)
	default:
		return ReadinessMedium
	}
}

// StepsProgress returns step progress against a target as a percentage
// capped at 100. A non-positive target yields 0.
func StepsProgress(steps, target int) float64 {
	if target <= 0 {
		return 0
	}
	pct := float64(steps) / float64(target) * 100
	return math.Min(pct, 100)
}

// CompletionRatio returns the rounded percentage of completed items.
// A total of zero is defined as 0, not a division failure. This single
// function backs exercise completion, macro-vs-target percentages, and
// steps-vs-goal so rounding lives in exactly one place.
func CompletionRatio(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
