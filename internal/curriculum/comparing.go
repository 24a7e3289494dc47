package curriculum

import (
	"fmt"

	"github.com/aliskhannn/assessgen/internal/domain/entities"
)

var comparePairs = [][2]int{
	{3, 5}, {7, 2}, {6, 6}, {9, 4}, {2, 2}, {8, 10}, {5, 3}, {4, 4},
	{1, 3}, {10, 7}, {6, 8}, {9, 9}, {7, 5}, {3, 3}, {2, 4},
}

var compareObjects = []string{
	"apple", "pencil", "shell", "sticker", "block", "car", "marble", "book",
	"balloon", "cookie", "duck", "crayon", "gem", "turtle", "coin",
}

// comparing rotates between three question shapes: which group has more,
// which symbol fits, and which statement is true.
func comparing(s entities.Subtopic) ([]entities.Row, error) {
	b := newBankBuilder(s)

	for idx := 0; idx < multipleChoicePerBank; idx++ {
		a, c := comparePairs[idx][0], comparePairs[idx][1]
		plural := Pluralize(compareObjects[idx], 2)

		switch idx % 3 {
		case 0:
			if a == c {
				b.multipleChoice(
					fmt.Sprintf("Team A and Team B each sorted %d %s. How do the amounts compare?", a, plural),
					"Both teams have the same count, so their amounts are equal.",
					[]string{"Team A has more", "Team B has more", "They have the same number", "Team B has two more"},
					2,
				)
				continue
			}
			question := fmt.Sprintf("Group A has %d %s and Group B has %d %s. Which group has more?", a, plural, c, plural)
			opts := []string{"Group A", "Group B", "They are equal", "Not enough information"}
			if a > c {
				b.multipleChoice(question, fmt.Sprintf("%d is greater than %d, so Group A has more %s.", a, c, plural), opts, 0)
			} else {
				b.multipleChoice(question, fmt.Sprintf("%d is greater than %d, so Group B has more %s.", c, a, plural), opts, 1)
			}
		case 1:
			question := fmt.Sprintf("Which symbol makes this comparison true: %d __ %d?", a, c)
			opts := []string{"<", ">", "=", "+"}
			switch {
			case a > c:
				b.multipleChoice(question, fmt.Sprintf("%d is greater than %d, so > makes the sentence true.", a, c), opts, 1)
			case a < c:
				b.multipleChoice(question, fmt.Sprintf("%d is less than %d, so < makes the sentence true.", a, c), opts, 0)
			default:
				b.multipleChoice(question, fmt.Sprintf("%d equals %d, so = is correct.", a, c), opts, 2)
			}
		default:
			opts := []string{
				fmt.Sprintf("%d > %d", a, c),
				fmt.Sprintf("%d < %d", a, c),
				fmt.Sprintf("%d = %d", a, c),
				"They cannot be compared",
			}
			question := "Which statement about the numbers is true?"
			switch {
			case a > c:
				b.multipleChoice(question, fmt.Sprintf("%d is greater than %d, so %d > %d is true.", a, c, a, c), opts, 0)
			case a < c:
				b.multipleChoice(question, fmt.Sprintf("%d is less than %d, so %d < %d is true.", a, c, a, c), opts, 1)
			default:
				b.multipleChoice(question, fmt.Sprintf("The two numbers match, so %d = %d is true.", a, c), opts, 2)
			}
		}
	}

	for extra := 0; extra < selectAllPerBank; extra++ {
		idx := multipleChoicePerBank + extra
		a, c := comparePairs[idx][0], comparePairs[idx][1]
		plural := Pluralize(compareObjects[idx], 2)

		var correct []int
		switch {
		case a > c:
			correct = []int{0, 3}
		case a < c:
			correct = []int{1}
		default:
			correct = []int{2, 4}
		}

		b.selectAll(
			fmt.Sprintf("Select each true statement about %d and %d %s.", a, c, plural),
			"Choose the statements that correctly describe how the two numbers compare.",
			[]string{
				fmt.Sprintf("%d is greater than %d", a, c),
				fmt.Sprintf("%d is less than %d", a, c),
				fmt.Sprintf("%d equals %d", a, c),
				fmt.Sprintf("%d is smaller than %d", c, a),
				"They have the same amount",
			},
			correct,
		)
	}

	return b.build()
}
