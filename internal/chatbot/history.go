package chatbot

import (
	"fmt"
	"strings"
)

// maxHistoryTurns keeps the last three exchanges.
const maxHistoryTurns = 6

// HistoryTurn is one earlier message of the conversation.
type HistoryTurn struct {
	IsUser bool   `json:"isUser"`
	Text   string `json:"text"`
}

// BuildConversationContext renders the most recent turns in chronological order.
func BuildConversationContext(history []HistoryTurn) string {
	if len(history) == 0 {
		return "This is the start of a new conversation."
	}

	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}

	var b strings.Builder
	b.WriteString("Previous conversation context:\n")
	for _, turn := range history {
		role := "Assistant"
		if turn.IsUser {
			role = "User"
		}
		fmt.Fprintf(&b, "%s: %s\n", role, turn.Text)
	}
	b.WriteString("\n---")
	return b.String()
}
