package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseContextTag(t *testing.T) {
	cases := map[string]ContextTag{
		"general":             ContextGeneral,
		"nutrition_assistant": ContextNutritionAssistant,
		"food_analysis":       ContextFoodAnalysis,
		"":                    ContextGeneral,
		"Food_Analysis":       ContextGeneral,
		"recipes":             ContextGeneral,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseContextTag(in), "input %q", in)
	}
}

func TestUnknownTagUsesGeneralVariants(t *testing.T) {
	tag := ParseContextTag("totally_unknown")

	assert.Equal(t, generalPrompt, tag.SystemPrompt())
	assert.Equal(t, generalFallback, tag.Fallback())

	// A raw value that bypassed parsing still resolves to the default arm.
	assert.Equal(t, generalPrompt, ContextTag("bogus").SystemPrompt())
	assert.Equal(t, generalFallback, ContextTag("bogus").Fallback())
}

func TestEachTagHasDistinctTemplates(t *testing.T) {
	tags := []ContextTag{ContextGeneral, ContextNutritionAssistant, ContextFoodAnalysis}
	prompts := map[string]bool{}
	fallbacks := map[string]bool{}
	for _, tag := range tags {
		prompts[tag.SystemPrompt()] = true
		fallbacks[tag.Fallback()] = true
	}
	assert.Len(t, prompts, len(tags))
	assert.Len(t, fallbacks, len(tags))
}
