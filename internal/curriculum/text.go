package curriculum

import (
	"fmt"
	"strings"
)

// numberWords names 0 through 20.
var numberWords = [...]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
	"eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen",
	"nineteen", "twenty",
}

// NumberWord returns the English word for n in [0, 20], or the numeral otherwise.
func NumberWord(n int) string {
	if n < 0 || n >= len(numberWords) {
		return fmt.Sprint(n)
	}
	return numberWords[n]
}

// Pluralize returns noun in the form that fits count.
func Pluralize(noun string, count int) string {
	if count == 1 {
		return noun
	}
	if strings.HasSuffix(noun, "y") && !strings.HasSuffix(noun, "ay") {
		return strings.TrimSuffix(noun, "y") + "ies"
	}
	if strings.HasSuffix(noun, "s") {
		return noun
	}
	return noun + "s"
}

// FormatCountSet describes count objects, drawing them with emoji when the
// set is small enough to count by eye. Empty sets are never drawn.
func FormatCountSet(count int, noun, emoji string) string {
	label := Pluralize(noun, count)
	if emoji != "" && count > 0 && count <= maxEmojiCount {
		return fmt.Sprintf("%s (%d %s)", strings.Repeat(emoji, count), count, label)
	}
	return fmt.Sprintf("%d %s", count, label)
}

const maxEmojiCount = 10

type countable struct {
	noun  string
	emoji string
}

var (
	smallObjects = []countable{
		{"ladybug", "🐞"}, {"star", "⭐"}, {"balloon", "🎈"}, {"car", "🚗"}, {"flower", "🌼"},
		{"book", "📘"}, {"cookie", "🍪"}, {"heart", "❤️"}, {"drum", "🥁"}, {"rocket", "🚀"},
	}
	mediumObjects = []countable{
		{"pencil", "✏️"}, {"balloon", "🎈"}, {"shell", "🐚"}, {"crayon", "🖍️"}, {"block", "🧱"},
		{"button", "🔘"}, {"kite", "🪁"}, {"book", "📕"}, {"drum", "🥁"}, {"star", "⭐"},
	}
	largeObjects = []countable{
		{"marble", "🔵"}, {"sticker", "🏷️"}, {"pencil", "✏️"}, {"block", "🧱"}, {"stone", "🪨"},
		{"bead", "🔹"}, {"card", "🃏"}, {"toy", "🧸"}, {"bookmark", "📑"}, {"button", "🔘"},
	}
)
