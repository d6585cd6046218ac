package chatbot

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"NutriScan_Backend/internal/nutrition"
)

const (
	patternDaysShown  = 3
	patternFoodsShown = 3
)

// BuildPersonalizationContext renders a snapshot into the USER CONTEXT block
// of a prompt. When fetchErr is set the block only tells the model that no
// user data is available.
func BuildPersonalizationContext(snap *nutrition.Snapshot, fetchErr error) string {
	if fetchErr != nil || snap == nil {
		return fmt.Sprintf("USER CONTEXT: User data unavailable (%s) - provide general nutrition advice and suggest completing their profile for personalized recommendations.", unavailableReason(fetchErr))
	}

	var b strings.Builder
	b.WriteString("USER PERSONALIZATION CONTEXT:\n\n")

	writeProfile(&b, snap)
	if snap.DailyGoals != nil {
		writeGoals(&b, snap.DailyGoals)
	}
	writeProgress(&b, snap.Today, snap.DailyGoals)
	writeTodayFoods(&b, snap.Today)
	writePatterns(&b, snap.Recent)

	b.WriteString("\n\n")
	b.WriteString(personalizationInstructions)
	return b.String()
}

// unavailableReason keeps store internals out of the prompt.
func unavailableReason(err error) string {
	if err == nil || errors.Is(err, nutrition.ErrUserNotFound) {
		return "User not found"
	}
	return "Failed to fetch user data"
}

func writeProfile(b *strings.Builder, snap *nutrition.Snapshot) {
	b.WriteString("USER PROFILE:\n")
	fmt.Fprintf(b, "- Name: %s\n", orUnknown(snap.User.Name))
	fmt.Fprintf(b, "- Email: %s", orUnknown(snap.User.Email))

	p := snap.Profile
	if p == nil {
		return
	}

	age := "Unknown"
	if p.Age != nil {
		age = strconv.Itoa(int(*p.Age)) + " years old"
	}
	fmt.Fprintf(b, "\n- Age: %s", age)
	fmt.Fprintf(b, "\n- Gender: %s", orUnknown(p.Gender))
	fmt.Fprintf(b, "\n- Height: %s cm", numberOrUnknown(p.Height))
	fmt.Fprintf(b, "\n- Weight: %s kg", numberOrUnknown(p.Weight))
	if p.BMI != nil {
		fmt.Fprintf(b, "\n- BMI: %.1f (%s)", *p.BMI, bmiCategory(*p.BMI))
	} else {
		b.WriteString("\n- BMI: Unknown")
	}
	fmt.Fprintf(b, "\n- Activity Level: %s", orUnknown(p.ActivityLevel))
	if p.GoalType != "" {
		fmt.Fprintf(b, "\n- Goal: %s weight", p.GoalType)
	} else {
		b.WriteString("\n- Goal: Unknown")
	}
}

func writeGoals(b *strings.Builder, g *nutrition.DailyGoals) {
	b.WriteString("\n\nDAILY NUTRITION GOALS:")
	fmt.Fprintf(b, "\n- Calories: %s kcal/day", numberOrUnknown(g.Calories))
	fmt.Fprintf(b, "\n- Protein: %s/day", gramsOrUnknown(g.Protein))
	fmt.Fprintf(b, "\n- Carbohydrates: %s/day", gramsOrUnknown(g.Carbs))
	fmt.Fprintf(b, "\n- Fat: %s/day", gramsOrUnknown(g.Fat))
	fmt.Fprintf(b, "\n- Sugar: %s/day", gramsOrUnknown(g.Sugar))
}

func writeProgress(b *strings.Builder, today nutrition.TodayConsumption, g *nutrition.DailyGoals) {
	var goals nutrition.DailyGoals
	if g != nil {
		goals = *g
	}
	t := today.Totals

	b.WriteString("\n\nTODAY'S PROGRESS (Current Status):")
	fmt.Fprintf(b, "\n- Calories: %s", progress(t.Calories, goals.Calories, " kcal", ""))
	fmt.Fprintf(b, "\n- Protein: %s", progress(t.Protein, goals.Protein, "g", "g"))
	fmt.Fprintf(b, "\n- Carbs: %s", progress(t.Carbs, goals.Carbs, "g", "g"))
	fmt.Fprintf(b, "\n- Fat: %s", progress(t.Fat, goals.Fat, "g", "g"))
	fmt.Fprintf(b, "\n- Sugar: %s", progress(t.Sugar, goals.Sugar, "g", "g"))
}

// progress renders "<actual><actualUnit>/<goal><goalUnit> (<pct>%)", using "?"
// for the goal and the percentage whenever the goal is missing or zero.
func progress(actual float64, goal *float64, goalUnit, actualUnit string) string {
	goalStr, pctStr := "?", "?"
	if goal != nil && *goal != 0 {
		goalStr = roundString(*goal)
		pctStr = roundString(actual / *goal * 100)
	}
	return fmt.Sprintf("%s%s/%s%s (%s%%)", roundString(actual), actualUnit, goalStr, goalUnit, pctStr)
}

func writeTodayFoods(b *strings.Builder, today nutrition.TodayConsumption) {
	fmt.Fprintf(b, "\n\nFOODS EATEN TODAY (%d total items):", today.LogCount)

	if today.LogCount == 0 || len(today.Logs) == 0 {
		b.WriteString("\n- No food logged today yet")
		return
	}

	for i, l := range today.Logs {
		kcal := 0.0
		if l.Calories != nil {
			kcal = *l.Calories
		}
		name := l.FoodName
		if name == "" {
			name = "Unknown food"
		}
		fmt.Fprintf(b, "\n%d. %s: %s (%sg) - %s kcal",
			i+1,
			l.ConsumedAt.Format("15:04"),
			name,
			formatNumber(l.AmountConsumed),
			roundString(kcal),
		)
	}
}

type daySummary struct {
	date     string
	calories float64
	foods    []string
}

func writePatterns(b *strings.Builder, recent nutrition.RecentPatterns) {
	if len(recent.Logs) == 0 {
		return
	}

	days := summarizeDays(recent.Logs)
	if len(days) > patternDaysShown {
		days = days[:patternDaysShown]
	}

	fmt.Fprintf(b, "\n\nRECENT EATING PATTERNS (Last %d days):", nutrition.PatternWindowDays)
	for _, d := range days {
		foods := d.foods
		more := ""
		if len(foods) > patternFoodsShown {
			foods = foods[:patternFoodsShown]
			more = "..."
		}
		fmt.Fprintf(b, "\n- %s: %s kcal (%s%s)", d.date, roundString(d.calories), strings.Join(foods, ", "), more)
	}
}

// summarizeDays groups logs by date in the order dates are first seen and
// collects distinct food names per date.
func summarizeDays(logs []nutrition.LogEntry) []*daySummary {
	var order []*daySummary
	byDate := make(map[string]*daySummary)

	for _, l := range logs {
		d, ok := byDate[l.Date]
		if !ok {
			d = &daySummary{date: l.Date}
			byDate[l.Date] = d
			order = append(order, d)
		}
		if l.Calories != nil {
			d.calories += *l.Calories
		}
		name := l.FoodName
		if name == "" {
			name = "Unknown"
		}
		if !slices.Contains(d.foods, name) {
			d.foods = append(d.foods, name)
		}
	}
	return order
}

func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

func roundString(v float64) string {
	return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func numberOrUnknown(v *float64) string {
	if v == nil {
		return "Unknown"
	}
	return formatNumber(*v)
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	return s
}
