package extensions

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark-emoji/definition"
)

func TestReplaceEmoji(t *testing.T) {
	emojis := definition.Github()
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no colon", "plain text", "plain text"},
		{"known", "I am :grinning:.", "I am 😀."},
		{"two in a row", ":tada::rocket:", "🎉🚀"},
		{"unknown keeps colons", ":idonotexist:", ":idonotexist:"},
		{"unterminated", ":stop", ":stop"},
		{"known then unterminated", ":tada: and :oops", "🎉 and :oops"},
		{"empty code", "a::b", "a::b"},
		{"times of day", "10:30 to 11:45", "10:30 to 11:45"},
		{"colon closes unknown then opens", ":nope: :smile:", ":nope: 😄"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ReplaceEmoji(tt.input, emojis))
		})
	}
}

func TestReplaceEmojiNilTable(t *testing.T) {
	require.Equal(t, "I am :grinning:.", ReplaceEmoji("I am :grinning:.", nil))
}

func TestReplaceEmojiCustomTable(t *testing.T) {
	emojis := definition.NewEmojis(
		definition.NewEmoji("Check", []rune{0x2705}, "check"),
	)
	require.Equal(t, "done ✅", ReplaceEmoji("done :check:", emojis))
	require.Equal(t, ":grinning:", ReplaceEmoji(":grinning:", emojis))
}
