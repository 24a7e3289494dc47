package curriculum

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/assessgen/internal/domain/entities"
)

var countingTemplates = []string{
	"Count the %[1]s: %[2]s How many %[1]s are there?",
	"How many %[1]s do you see here: %[2]s?",
	"What number tells how many %[1]s are shown: %[2]s?",
}

// counting asks how many objects are shown. Sets up to ten objects are drawn
// with emoji when showEmoji is set, larger ones are written out.
func counting(numbers []int, objects []countable, showEmoji bool) Generator {
	return func(s entities.Subtopic) ([]entities.Row, error) {
		b := newBankBuilder(s)

		for idx := 0; idx < multipleChoicePerBank; idx++ {
			n := numbers[idx%len(numbers)]
			obj := objects[idx%len(objects)]
			label := Pluralize(obj.noun, n)
			plural := Pluralize(obj.noun, max(n, 2))

			display := fmt.Sprintf("%d %s", n, label)
			if showEmoji && n <= maxEmojiCount {
				display = strings.Repeat(obj.emoji, n)
			}

			question := fmt.Sprintf(countingTemplates[idx%len(countingTemplates)], plural, display)
			pool := []int{n, n - 1, n + 1, n + 2, n - 2, n + 3}
			explanation := fmt.Sprintf("The set shows %d %s, so %d is the matching number.", n, label, n)

			b.numeric(question, explanation, n, pool, idx%4)
		}

		for extra := 0; extra < selectAllPerBank; extra++ {
			idx := multipleChoicePerBank + extra
			n := numbers[idx%len(numbers)]
			obj := objects[idx%len(objects)]
			label := Pluralize(obj.noun, n)
			plural := Pluralize(obj.noun, max(n, 2))

			emoji := ""
			if showEmoji {
				emoji = obj.emoji
			}

			// The fourth option repeats the right count spelled out, so two
			// options are correct without showing the same text twice.
			opts := []string{
				FormatCountSet(n, obj.noun, emoji),
				FormatCountSet(n+1, obj.noun, emoji),
				FormatCountSet(n-1, obj.noun, emoji),
				fmt.Sprintf("%s %s", NumberWord(n), label),
				FormatCountSet(n+2, obj.noun, emoji),
			}
			correct := []int{0, 3}

			b.selectAll(
				fmt.Sprintf("Select each option that shows exactly %d %s.", n, plural),
				fmt.Sprintf("Any option with %d %s is correct; the others show different amounts.", n, label),
				opts,
				correct,
			)
		}

		return b.build()
	}
}
