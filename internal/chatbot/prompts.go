/*
Package chatbot implements the personalized nutrition assistant: it renders a
user's nutrition snapshot and conversation history into a prompt, calls the
text generator, and cleans up or replaces the answer.
*/
package chatbot

/* =================================================================================
							CONTEXT TAGS
=================================================================================*/

// ContextTag selects the system prompt and the fallback message of a conversation.
type ContextTag string

const (
	ContextGeneral            ContextTag = "general"
	ContextNutritionAssistant ContextTag = "nutrition_assistant"
	ContextFoodAnalysis       ContextTag = "food_analysis"
)

// ParseContextTag maps a client supplied tag to a known ContextTag.
// Anything unrecognized, including the empty string, becomes ContextGeneral.
func ParseContextTag(raw string) ContextTag {
	switch tag := ContextTag(raw); tag {
	case ContextGeneral, ContextNutritionAssistant, ContextFoodAnalysis:
		return tag
	default:
		return ContextGeneral
	}
}

// SystemPrompt returns the persona instructions for the tag.
func (t ContextTag) SystemPrompt() string {
	switch t {
	case ContextNutritionAssistant:
		return nutritionAssistantPrompt
	case ContextFoodAnalysis:
		return foodAnalysisPrompt
	default:
		return generalPrompt
	}
}

// Fallback returns the canned answer used when the AI call fails.
func (t ContextTag) Fallback() string {
	switch t {
	case ContextNutritionAssistant:
		return nutritionAssistantFallback
	case ContextFoodAnalysis:
		return foodAnalysisFallback
	default:
		return generalFallback
	}
}

/* =================================================================================
						PROMPT ENGINEERING & GUARDRAILS
=================================================================================*/

const nutritionAssistantPrompt = `You are a knowledgeable nutrition assistant for NutriScan, a nutrition tracking app. Your role is to:

- Provide helpful, accurate nutrition information
- Give practical dietary advice
- Help users understand food labels and ingredients
- Suggest healthier alternatives when asked
- Answer questions about calories, macronutrients, vitamins, and minerals
- Be encouraging and supportive about healthy eating goals

Guidelines:
- Keep responses conversational and friendly
- Provide specific, actionable advice
- If asked about medical conditions, remind users to consult healthcare professionals
- Stay focused on nutrition and food-related topics
- Use simple, easy-to-understand language
- Be encouraging about healthy lifestyle choices

You should respond as a helpful nutrition expert who wants to help users make better food choices.`

const generalPrompt = `You are a helpful AI assistant for NutriScan, a nutrition tracking app. You can help with:

- Nutrition questions and dietary advice
- Food recommendations
- Understanding nutrition labels
- Healthy eating tips
- App-related questions

Keep responses helpful, friendly, and focused on health and nutrition topics.`

const foodAnalysisPrompt = `You are a food analysis expert. Help users understand the nutritional value of foods, interpret nutrition labels, and make informed food choices. Provide clear, practical advice about food quality and nutritional content.`

const nutritionQuestionIntro = `You are a nutrition expert helping a user with their specific question about food and nutrition.`

const nutritionQuestionClosing = `Please provide a helpful, accurate, and highly personalized response that:
- Addresses their specific question
- References their current nutrition progress and goals
- Considers their eating patterns and preferences
- Provides actionable advice based on their profile
- Is encouraging and supportive of their health journey
- Keeps the response conversational and practical`

const personalizationInstructions = `PERSONALIZATION INSTRUCTIONS:
- Use this user data to provide highly personalized nutrition advice
- Reference their specific goals and current progress
- Consider their eating patterns and preferences
- Suggest foods that align with their goals and activity level
- Be encouraging about their progress
- Provide specific, actionable advice based on their current status`

/* =================================================================================
								FALLBACKS
=================================================================================*/

const (
	nutritionAssistantFallback = "I'm having trouble connecting to my nutrition database right now. However, I'd be happy to help you with general nutrition questions! Feel free to ask about calories, macronutrients, or healthy eating tips."
	foodAnalysisFallback       = "I'm temporarily unable to analyze food data, but I can still provide general nutrition guidance. What specific questions do you have about food and nutrition?"
	generalFallback            = "I'm experiencing some technical difficulties, but I'm still here to help with your nutrition and health questions. What would you like to know?"

	// NutritionQuestionFallback answers a targeted question when the AI call fails.
	NutritionQuestionFallback = "I'm having trouble accessing nutritional information right now. Please try asking your question again, or consult with a registered dietitian for personalized advice."
)
