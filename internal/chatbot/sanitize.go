package chatbot

import (
	"strings"
	"unicode/utf8"
)

const (
	maxResponseRunes       = 1000
	truncatedResponseRunes = 950

	noResponseMessage    = "I'm sorry, I couldn't generate a response. Please try again."
	emptyResponseMessage = "I'm here to help with your nutrition questions! What would you like to know?"
)

// rolePrefixes are stripped from the start of a model answer, ignoring case.
var rolePrefixes = []string{"AI Assistant:", "Assistant:", "Bot:", "AI:"}

// CleanResponse strips leading role labels, trims whitespace, replaces an empty
// answer with a friendly placeholder and truncates overly long answers to
// 950 characters followed by "...". Applying it twice changes nothing.
func CleanResponse(raw string) string {
	if raw == "" {
		return noResponseMessage
	}

	cleaned := strings.TrimSpace(raw)
	for {
		stripped := stripRolePrefix(cleaned)
		if stripped == cleaned {
			break
		}
		cleaned = strings.TrimSpace(stripped)
	}

	if cleaned == "" {
		return emptyResponseMessage
	}

	if utf8.RuneCountInString(cleaned) > maxResponseRunes {
		runes := []rune(cleaned)
		cleaned = string(runes[:truncatedResponseRunes]) + "..."
	}

	return cleaned
}

func stripRolePrefix(s string) string {
	for _, p := range rolePrefixes {
		if len(s) >= len(p) && strings.EqualFold(s[:len(p)], p) {
			return s[len(p):]
		}
	}
	return s
}
