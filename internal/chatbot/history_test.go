package chatbot

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildConversationContextEmpty(t *testing.T) {
	assert.Equal(t, "This is the start of a new conversation.", BuildConversationContext(nil))
	assert.Equal(t, "This is the start of a new conversation.", BuildConversationContext([]HistoryTurn{}))
}

func TestBuildConversationContextRendersRoles(t *testing.T) {
	got := BuildConversationContext([]HistoryTurn{
		{IsUser: true, Text: "Is oatmeal good?"},
		{IsUser: false, Text: "Yes, it is high in fiber."},
	})

	want := "Previous conversation context:\n" +
		"User: Is oatmeal good?\n" +
		"Assistant: Yes, it is high in fiber.\n" +
		"\n---"
	assert.Equal(t, want, got)
}

func TestBuildConversationContextKeepsLastSix(t *testing.T) {
	var history []HistoryTurn
	for i := 1; i <= 9; i++ {
		history = append(history, HistoryTurn{IsUser: i%2 == 1, Text: fmt.Sprintf("msg-%d", i)})
	}

	got := BuildConversationContext(history)

	for i := 1; i <= 3; i++ {
		assert.NotContains(t, got, fmt.Sprintf("msg-%d\n", i))
	}
	lines := strings.Split(got, "\n")
	var turns []string
	for _, l := range lines {
		if strings.HasPrefix(l, "User: ") || strings.HasPrefix(l, "Assistant: ") {
			turns = append(turns, l)
		}
	}
	assert.Equal(t, []string{
		"Assistant: msg-4",
		"User: msg-5",
		"Assistant: msg-6",
		"User: msg-7",
		"Assistant: msg-8",
		"User: msg-9",
	}, turns)
}
