package chatbot

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"NutriScan_Backend/internal/nutrition"
	"github.com/stretchr/testify/assert"
)

func fp(v float64) *float64 { return &v }

func at(hour, minute int) time.Time {
	return time.Date(2024, time.March, 10, hour, minute, 0, 0, time.UTC)
}

func fullSnapshot() *nutrition.Snapshot {
	age := int32(28)
	today := []nutrition.LogEntry{
		{FoodName: "Greek Yogurt", AmountConsumed: 150, ConsumedAt: at(12, 5), Date: "2024-03-10", Calories: fp(145.6), Protein: fp(15)},
		{FoodName: "", AmountConsumed: 40.5, ConsumedAt: at(8, 30), Date: "2024-03-10", Calories: fp(160.2), Protein: fp(5.2)},
	}
	return &nutrition.Snapshot{
		User: nutrition.UserSummary{Name: "Test User", Email: "test@example.com"},
		Profile: &nutrition.Profile{
			Age:           &age,
			Gender:        "male",
			Height:        fp(175),
			Weight:        fp(70.5),
			BMI:           fp(23.02),
			ActivityLevel: "moderately_active",
			GoalType:      "lose",
		},
		DailyGoals: &nutrition.DailyGoals{
			Calories: fp(2000),
			Protein:  fp(120),
			Carbs:    fp(250),
			Fat:      fp(65),
			Sugar:    fp(50),
		},
		Today: nutrition.TodayConsumption{
			Totals:   nutrition.CalculateDailyTotals(today),
			Logs:     today,
			LogCount: 2,
		},
		Recent: nutrition.RecentPatterns{TotalDays: 7},
	}
}

func TestPersonalizationUnavailable(t *testing.T) {
	got := BuildPersonalizationContext(nil, nutrition.ErrUserNotFound)
	assert.Equal(t, "USER CONTEXT: User data unavailable (User not found) - provide general nutrition advice and suggest completing their profile for personalized recommendations.", got)

	got = BuildPersonalizationContext(nil, fmt.Errorf("failed to fetch user: %w", errors.New("dial tcp: refused")))
	assert.Contains(t, got, "User data unavailable (Failed to fetch user data)")
	assert.NotContains(t, got, "dial tcp")
	assert.NotContains(t, got, "USER PROFILE")
}

func TestPersonalizationFullSnapshot(t *testing.T) {
	got := BuildPersonalizationContext(fullSnapshot(), nil)

	assert.True(t, strings.HasPrefix(got, "USER PERSONALIZATION CONTEXT:\n\nUSER PROFILE:\n- Name: Test User\n- Email: test@example.com"))
	assert.Contains(t, got, "- Age: 28 years old")
	assert.Contains(t, got, "- Height: 175 cm")
	assert.Contains(t, got, "- Weight: 70.5 kg")
	assert.Contains(t, got, "- BMI: 23.0 (Normal weight)")
	assert.Contains(t, got, "- Activity Level: moderately_active")
	assert.Contains(t, got, "- Goal: lose weight")

	assert.Contains(t, got, "DAILY NUTRITION GOALS:\n- Calories: 2000 kcal/day\n- Protein: 120g/day")

	assert.Contains(t, got, "- Calories: 306/2000 kcal (15%)")
	assert.Contains(t, got, "- Protein: 20g/120g (17%)")
	assert.Contains(t, got, "- Carbs: 0g/250g (0%)")

	assert.Contains(t, got, "FOODS EATEN TODAY (2 total items):\n"+
		"1. 12:05: Greek Yogurt (150g) - 146 kcal\n"+
		"2. 08:30: Unknown food (40.5g) - 160 kcal")
	assert.NotContains(t, got, "RECENT EATING PATTERNS")
	assert.True(t, strings.HasSuffix(got, personalizationInstructions))
}

func TestPersonalizationSectionOrder(t *testing.T) {
	got := BuildPersonalizationContext(fullSnapshot(), nil)

	sections := []string{"USER PROFILE:", "DAILY NUTRITION GOALS:", "TODAY'S PROGRESS", "FOODS EATEN TODAY", "PERSONALIZATION INSTRUCTIONS:"}
	last := -1
	for _, s := range sections {
		idx := strings.Index(got, s)
		assert.Greater(t, idx, last, "section %q out of order", s)
		last = idx
	}
}

func TestPersonalizationWithoutGoalsNeverDivides(t *testing.T) {
	snap := fullSnapshot()
	snap.DailyGoals = nil

	got := BuildPersonalizationContext(snap, nil)

	assert.NotContains(t, got, "DAILY NUTRITION GOALS")
	assert.Contains(t, got, "- Calories: 306/? kcal (?%)")
	assert.Contains(t, got, "- Protein: 20g/?g (?%)")
	assert.Contains(t, got, "- Carbs: 0g/?g (?%)")
	assert.Contains(t, got, "- Fat: 0g/?g (?%)")
	assert.Contains(t, got, "- Sugar: 0g/?g (?%)")
	assert.NotContains(t, got, "NaN")
	assert.NotContains(t, got, "Inf")
}

func TestPersonalizationPartialGoals(t *testing.T) {
	snap := fullSnapshot()
	snap.DailyGoals = &nutrition.DailyGoals{Calories: fp(1800), Fat: fp(0)}

	got := BuildPersonalizationContext(snap, nil)

	assert.Contains(t, got, "- Calories: 306/1800 kcal (17%)")
	assert.Contains(t, got, "- Protein: Unknown/day")
	assert.Contains(t, got, "- Protein: 20g/?g (?%)")
	assert.Contains(t, got, "- Fat: 0g/?g (?%)")
}

func TestPersonalizationWithoutProfile(t *testing.T) {
	snap := fullSnapshot()
	snap.Profile = nil
	snap.User.Name = ""

	got := BuildPersonalizationContext(snap, nil)

	assert.Contains(t, got, "- Name: Unknown")
	assert.NotContains(t, got, "- Age:")
	assert.NotContains(t, got, "- BMI:")
}

func TestPersonalizationMissingBMI(t *testing.T) {
	snap := fullSnapshot()
	snap.Profile.BMI = nil

	got := BuildPersonalizationContext(snap, nil)

	assert.Contains(t, got, "- BMI: Unknown")
}

func TestPersonalizationNothingLoggedToday(t *testing.T) {
	snap := fullSnapshot()
	snap.Today = nutrition.TodayConsumption{}

	got := BuildPersonalizationContext(snap, nil)

	assert.Contains(t, got, "FOODS EATEN TODAY (0 total items):\n- No food logged today yet")
	assert.Contains(t, got, "- Calories: 0/2000 kcal (0%)")
	assert.Contains(t, got, "- Protein: 0g/120g (0%)")
	assert.Contains(t, got, "- Carbs: 0g/250g (0%)")
	assert.Contains(t, got, "- Fat: 0g/65g (0%)")
	assert.Contains(t, got, "- Sugar: 0g/50g (0%)")
}

func TestPersonalizationRecentPatterns(t *testing.T) {
	snap := fullSnapshot()
	snap.Recent.Logs = []nutrition.LogEntry{
		{Date: "2024-03-10", FoodName: "Apple", Calories: fp(95)},
		{Date: "2024-03-10", FoodName: "Banana", Calories: fp(105)},
		{Date: "2024-03-10", FoodName: "Apple", Calories: fp(95)},
		{Date: "2024-03-09", FoodName: "Rice", Calories: fp(200.4)},
		{Date: "2024-03-09", FoodName: "Beans", Calories: fp(150)},
		{Date: "2024-03-09", FoodName: "Salsa"},
		{Date: "2024-03-09", FoodName: "Cheese", Calories: fp(110)},
		{Date: "2024-03-08", FoodName: "", Calories: fp(300)},
		{Date: "2024-03-07", FoodName: "Soup", Calories: fp(180)},
	}

	got := BuildPersonalizationContext(snap, nil)

	assert.Contains(t, got, "RECENT EATING PATTERNS (Last 7 days):\n"+
		"- 2024-03-10: 295 kcal (Apple, Banana)\n"+
		"- 2024-03-09: 460 kcal (Rice, Beans, Salsa...)\n"+
		"- 2024-03-08: 300 kcal (Unknown)")
	assert.NotContains(t, got, "2024-03-07")
	assert.Less(t, strings.Index(got, "RECENT EATING PATTERNS"), strings.Index(got, "PERSONALIZATION INSTRUCTIONS"))
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", bmiCategory(17))
	assert.Equal(t, "Normal weight", bmiCategory(22))
	assert.Equal(t, "Overweight", bmiCategory(27.5))
	assert.Equal(t, "Obesity class I", bmiCategory(31))
	assert.Equal(t, "Obesity class II", bmiCategory(36))
	assert.Equal(t, "Obesity class III", bmiCategory(45))
}
