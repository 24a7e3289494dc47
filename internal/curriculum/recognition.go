package curriculum

import (
	"fmt"

	"github.com/aliskhannn/assessgen/internal/domain/entities"
	"github.com/aliskhannn/assessgen/internal/options"
)

var smallRecognitionSets = []selectSet{
	{
		question:    "Select each numeral that is less than 5.",
		options:     []string{"2", "7", "4", "9", "1"},
		correct:     []int{0, 2, 4},
		explanation: "2, 4, and 1 are all less than 5.",
	},
	{
		question:    "Select each word that names an even number.",
		options:     []string{"three", "six", "ten", "five", "eight"},
		correct:     []int{1, 2, 4},
		explanation: "Six, ten, and eight are even numbers.",
	},
	{
		question:    "Select each number word that is greater than 8.",
		options:     []string{"nine", "four", "eleven", "seven", "ten"},
		correct:     []int{0, 2, 4},
		explanation: "Nine, eleven, and ten are greater than 8.",
	},
}

var teenRecognitionSets = []selectSet{
	{
		question:    "Select each numeral that is greater than 15.",
		options:     []string{"17", "12", "19", "14", "20"},
		correct:     []int{0, 2, 4},
		explanation: "17, 19, and 20 are all greater than 15.",
	},
	{
		question:    "Select each word that names a number between 11 and 20.",
		options:     []string{"thirteen", "nine", "sixteen", "eighteen", "six"},
		correct:     []int{0, 2, 3},
		explanation: "Thirteen, sixteen, and eighteen are teen numbers.",
	},
	{
		question:    "Select each numeral that has a 1 in the tens place.",
		options:     []string{"14", "21", "18", "11", "7"},
		correct:     []int{0, 2, 3},
		explanation: "14, 18, and 11 each start with one ten.",
	},
}

// recognition alternates between matching a word to its numeral and a
// numeral to its word. Word options are arranged as numbers first, so both
// shapes share the same distractor rules.
func recognition(numbers []int, sets []selectSet) Generator {
	return func(s entities.Subtopic) ([]entities.Row, error) {
		b := newBankBuilder(s)

		for idx := 0; idx < multipleChoicePerBank; idx++ {
			n := numbers[idx%len(numbers)]
			word := NumberWord(n)
			slot := idx % 4

			if idx%2 == 0 {
				b.numeric(
					fmt.Sprintf("Which numeral matches the word %q?", word),
					fmt.Sprintf("The word %s stands for the numeral %d.", word, n),
					n, options.Around(n), slot,
				)
				continue
			}

			values, err := options.Arrange(n, wordable(options.Around(n)), slot)
			if err != nil {
				return nil, fmt.Errorf("%s: question %d: %w", s.Title, b.next(), err)
			}
			words := make([]string, len(values))
			for i, v := range values {
				words[i] = NumberWord(v)
			}
			b.multipleChoice(
				fmt.Sprintf("Which word names the numeral %d?", n),
				fmt.Sprintf("The numeral %d is written with the word %s.", n, word),
				words, slot,
			)
		}

		b.selectSets(sets)
		return b.build()
	}
}

// wordable keeps the values NumberWord can spell.
func wordable(pool []int) []int {
	out := make([]int, 0, len(pool))
	for _, v := range pool {
		if v < len(numberWords) {
			out = append(out, v)
		}
	}
	return out
}

type writingPrompt struct {
	number      int
	question    string
	explanation string
}

var writingPrompts = []writingPrompt{
	{7, "You trace the word 'seven' on dotted lines. Which numeral do you write?",
		"Writing the word seven produces the numeral 7."},
	{11, "You draw a straight line down, lift your pencil, and draw another straight line right beside it. What number did you make?",
		"Two straight lines side by side make the numeral 11."},
	{4, "You trace a square corner pattern that looks like an open chair. Which numeral are you forming?",
		"The open chair pattern describes how you write the numeral 4."},
	{8, "You write a small circle on top of a bigger circle. What number does that create?",
		"A stacked pair of circles is how you write the numeral 8."},
	{15, "You write a 1 and then a 5 right next to it. Which number did you write?",
		"A 1 followed by a 5 makes the numeral 15."},
	{0, "You carefully trace an oval without any corners. Which numeral are you practicing?",
		"An oval loop is how you write the numeral 0."},
	{12, "You trace a 1 and then a 2 to show a dozen. What number is that?",
		"A 1 with a 2 beside it is the numeral 12."},
	{3, "You draw two smooth curves stacked on each other without lifting your pencil. Which number did you write?",
		"Two stacked curves describe the numeral 3."},
	{6, "You start with a small loop and close it with a curved tail. Which numeral does that make?",
		"A loop with a tail is how you write the numeral 6."},
	{9, "You make a small circle on top and draw a straight line down. What number did you write?",
		"A circle with a straight line below forms the numeral 9."},
	{14, "You write a 1 and then a 4 to show a teen number. Which numeral is that?",
		"A 1 followed by a 4 makes the numeral 14."},
	{2, "You write a curved top, slide down, and finish with a straight line. What numeral did you finish?",
		"That writing motion describes the numeral 2."},
}

var writingSelectSets = []selectSet{
	{
		question:    "Select each numeral that uses only straight lines when you write it.",
		options:     []string{"1", "3", "4", "8", "11"},
		correct:     []int{0, 2, 4},
		explanation: "Mark every option that matches the description for writing numbers.",
	},
	{
		question:    "Select each way to write the number twelve.",
		options:     []string{"12", "twenty-one", "1 and 2", "21", "twelve"},
		correct:     []int{0, 2, 4},
		explanation: "Mark every option that matches the description for writing numbers.",
	},
	{
		question:    "Select each number that needs two digits when you write it.",
		options:     []string{"6", "15", "8", "20", "3"},
		correct:     []int{1, 3},
		explanation: "Mark every option that matches the description for writing numbers.",
	},
}

func writingNumbers(s entities.Subtopic) ([]entities.Row, error) {
	b := newBankBuilder(s)
	for idx, p := range writingPrompts {
		b.numeric(p.question, p.explanation, p.number, options.Around(p.number), idx%4)
	}
	b.selectSets(writingSelectSets)
	return b.build()
}
