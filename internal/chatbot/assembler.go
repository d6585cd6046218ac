package chatbot

import (
	"fmt"
	"strings"
)

// ProductNutrition holds per-100g values of a scanned product.
type ProductNutrition struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
	Sugar    *float64 `json:"sugar"`
}

// ProductData describes the product a nutrition question is about.
type ProductData struct {
	Name      string            `json:"name"`
	Brand     string            `json:"brand"`
	Nutrition *ProductNutrition `json:"nutrition"`
}

// BuildChatPrompt composes the conversational prompt.
func BuildChatPrompt(tag ContextTag, personalization, history, message string) string {
	return fmt.Sprintf("%s\n\n%s\n\n%s\n\nUser: %s\n\nAI Assistant: ",
		tag.SystemPrompt(),
		personalization,
		history,
		message,
	)
}

// BuildNutritionPrompt composes the prompt for a targeted nutrition question,
// optionally about a specific product.
func BuildNutritionPrompt(question string, product *ProductData, personalization string) string {
	var b strings.Builder
	b.WriteString(nutritionQuestionIntro)
	fmt.Fprintf(&b, "\n\nUser Question: %s", question)

	if product != nil {
		var n ProductNutrition
		if product.Nutrition != nil {
			n = *product.Nutrition
		}
		b.WriteString("\n\nProduct Context:")
		fmt.Fprintf(&b, "\n- Name: %s", orUnknown(product.Name))
		fmt.Fprintf(&b, "\n- Brand: %s", orUnknown(product.Brand))
		fmt.Fprintf(&b, "\n- Calories per 100g: %s", numberOrUnknown(n.Calories))
		fmt.Fprintf(&b, "\n- Protein: %s", gramsOrUnknown(n.Protein))
		fmt.Fprintf(&b, "\n- Carbs: %s", gramsOrUnknown(n.Carbs))
		fmt.Fprintf(&b, "\n- Fat: %s", gramsOrUnknown(n.Fat))
		fmt.Fprintf(&b, "\n- Sugar: %s", gramsOrUnknown(n.Sugar))
	}

	b.WriteString("\n\n")
	b.WriteString(personalization)
	b.WriteString("\n\n")
	b.WriteString(nutritionQuestionClosing)
	return b.String()
}

func gramsOrUnknown(v *float64) string {
	if v == nil {
		return "Unknown"
	}
	return formatNumber(*v) + "g"
}
