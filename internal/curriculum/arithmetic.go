package curriculum

import (
	"fmt"

	"github.com/aliskhannn/assessgen/internal/domain/entities"
	"github.com/aliskhannn/assessgen/internal/options"
)

// operation describes how a numeric fact is asked and explained.
type operation struct {
	templates   []string // formatted with the two operands
	apply       func(a, b int) int
	explanation string // formatted with a, b and the result
	pool        func(result int) []int
}

// withPool returns op with a different distractor pool.
func withPool(op operation, pool func(result int) []int) operation {
	op.pool = pool
	return op
}

// tensAround is the distractor pool for facts with multiples of ten, where
// an answer off by one ten is the likely mistake.
func tensAround(result int) []int {
	return []int{result, result + 10, result - 10, result + 1, result - 1, result + 20}
}

var (
	addition = operation{
		templates: []string{
			"What is %d + %d?",
			"Solve: %d + %d = __",
			"Add %d and %d. What is the sum?",
		},
		apply:       func(a, b int) int { return a + b },
		explanation: "%d plus %d equals %d.",
		pool:        options.Around,
	}
	subtraction = operation{
		templates: []string{
			"What is %d - %d?",
			"Solve: %d - %d = __",
			"Take away %[2]d from %[1]d. What is left?",
		},
		apply:       func(a, b int) int { return a - b },
		explanation: "%d minus %d equals %d.",
		pool:        options.Around,
	}
)

// numericFacts asks one fact per pair and finishes with the literal select sets.
func numericFacts(op operation, pairs [][2]int, sets []selectSet) Generator {
	return func(s entities.Subtopic) ([]entities.Row, error) {
		b := newBankBuilder(s)
		for idx, p := range pairs {
			a, c := p[0], p[1]
			result := op.apply(a, c)
			b.numeric(
				fmt.Sprintf(op.templates[idx%len(op.templates)], a, c),
				fmt.Sprintf(op.explanation, a, c, result),
				result, op.pool(result), idx%4,
			)
		}
		b.selectSets(sets)
		return b.build()
	}
}

type story struct {
	first, second int
	noun          string
	place         string
}

func addingStories(stories []story, sets []selectSet) Generator {
	return func(s entities.Subtopic) ([]entities.Row, error) {
		b := newBankBuilder(s)
		for idx, st := range stories {
			total := st.first + st.second
			plural := Pluralize(st.noun, total)
			b.numeric(
				fmt.Sprintf("There are %d %s %s. You add %d more %s. How many %s are there now?",
					st.first, Pluralize(st.noun, st.first), st.place,
					st.second, Pluralize(st.noun, st.second), plural),
				fmt.Sprintf("Adding %d and %d makes %d %s.", st.first, st.second, total, plural),
				total, options.Around(total), idx%4,
			)
		}
		b.selectSets(sets)
		return b.build()
	}
}

func takingAwayStories(stories []story, sets []selectSet) Generator {
	return func(s entities.Subtopic) ([]entities.Row, error) {
		b := newBankBuilder(s)
		for idx, st := range stories {
			left := st.first - st.second
			b.numeric(
				fmt.Sprintf("You have %d %s %s. You take away %d %s. How many %s are left?",
					st.first, Pluralize(st.noun, st.first), st.place,
					st.second, Pluralize(st.noun, st.second), Pluralize(st.noun, left)),
				fmt.Sprintf("Subtracting %d from %d leaves %d %s.", st.second, st.first, left, Pluralize(st.noun, left)),
				left, options.Around(left), idx%4,
			)
		}
		b.selectSets(sets)
		return b.build()
	}
}

var (
	addWithinFivePairs = [][2]int{
		{0, 2}, {1, 3}, {2, 2}, {4, 1}, {3, 0}, {1, 4},
		{2, 3}, {5, 0}, {0, 5}, {3, 1}, {0, 4}, {2, 1},
	}
	addWithinFiveSets = []selectSet{
		{"Select each equation that equals 4.", []string{"1 + 3", "2 + 2", "4 + 0", "3 + 2", "0 + 4"},
			[]int{0, 1, 2, 4}, "These equations make 4; 3 + 2 makes 5 instead."},
		{"Select each expression that has a sum of 5.", []string{"3 + 2", "4 + 1", "2 + 3", "1 + 1", "0 + 5"},
			[]int{0, 1, 2, 4}, "Any pair that totals 5 is correct; 1 + 1 makes 2."},
		{"Select each sum that is less than 3.", []string{"0 + 0", "1 + 1", "2 + 2", "1 + 0", "3 + 0"},
			[]int{0, 1, 3}, "0 + 0, 1 + 1, and 1 + 0 are less than 3."},
	}

	addWithinTenPairs = [][2]int{
		{3, 4}, {5, 2}, {6, 3}, {7, 1}, {4, 5}, {8, 2},
		{9, 1}, {6, 4}, {2, 7}, {10, 0}, {3, 6}, {5, 4},
	}
	addWithinTenSets = []selectSet{
		{"Select each expression that equals 8.", []string{"3 + 5", "6 + 2", "4 + 4", "7 + 1", "2 + 6"},
			[]int{0, 1, 2, 3, 4}, "All listed expressions total 8."},
		{"Select each equation with a sum of 10.", []string{"8 + 2", "7 + 2", "5 + 5", "6 + 4", "10 + 0"},
			[]int{0, 2, 3, 4}, "Those sums equal 10; 7 + 2 equals 9 so it does not belong."},
		{"Select each sum that is greater than 6.", []string{"3 + 3", "4 + 5", "2 + 6", "1 + 5", "5 + 4"},
			[]int{1, 2, 4}, "4 + 5, 2 + 6, and 5 + 4 total more than 6."},
	}

	addingObjectStories = []story{
		{2, 1, "apple", "on the table"},
		{3, 2, "shell", "by the shore"},
		{1, 4, "pencil", "in the cup"},
		{2, 3, "car", "on the rug"},
		{4, 1, "block", "in the tower"},
		{3, 1, "frog", "by the pond"},
		{2, 2, "book", "on the shelf"},
		{5, 2, "sticker", "on the chart"},
		{4, 3, "balloon", "at the party"},
		{1, 5, "flower", "in the vase"},
		{3, 4, "marble", "in the jar"},
		{2, 3, "cookie", "on the plate"},
	}
	addingObjectSets = []selectSet{
		{"Select each story that shows a total of 5 objects.",
			[]string{"2 bears and 3 more bears", "4 cars and 1 more car", "3 shells and 2 more shells",
				"2 birds and 4 more birds", "1 kite and 4 more kites"},
			[]int{0, 1, 2, 4}, "Each of these stories totals 5 objects; 2 and 4 make 6."},
		{"Select each description that makes 6 items in all.",
			[]string{"3 crayons and 3 more crayons", "4 flowers and 2 more flowers", "2 marbles and 2 more marbles",
				"5 apples and 1 more apple", "1 cup and 5 more cups"},
			[]int{0, 1, 3, 4}, "The matching stories add to 6; 2 and 2 make 4."},
		{"Select each story that adds to more than 6.",
			[]string{"4 balloons and 3 more balloons", "2 blocks and 2 more blocks", "5 stickers and 2 more stickers",
				"3 frogs and 1 more frog", "3 marbles and 4 more marbles"},
			[]int{0, 2, 4}, "Those stories make 7, which is larger than 6."},
	}

	takeWithinFivePairs = [][2]int{
		{5, 1}, {4, 2}, {3, 1}, {5, 3}, {2, 2}, {4, 1},
		{3, 0}, {5, 4}, {2, 1}, {1, 1}, {4, 3}, {5, 0},
	}
	takeWithinFiveSets = []selectSet{
		{"Select each equation that equals 2.", []string{"5 - 3", "4 - 2", "3 - 1", "2 - 0", "5 - 2"},
			[]int{0, 1, 2, 3}, "5 - 3, 4 - 2, 3 - 1, and 2 - 0 all equal 2; 5 - 2 equals 3."},
		{"Select each subtraction sentence that equals 3.", []string{"5 - 2", "4 - 1", "3 - 0", "5 - 3", "2 - 1"},
			[]int{0, 1, 2}, "Those differences are 3."},
		{"Select each difference that is zero.", []string{"2 - 2", "1 - 1", "3 - 1", "5 - 4", "4 - 4"},
			[]int{0, 1, 4}, "Any expression subtracting the same number leaves zero."},
	}

	subtractWithinTenPairs = [][2]int{
		{10, 2}, {9, 4}, {8, 3}, {7, 5}, {6, 2}, {9, 1},
		{8, 6}, {10, 5}, {7, 2}, {6, 4}, {9, 7}, {10, 3},
	}
	subtractWithinTenSets = []selectSet{
		{"Select each subtraction fact that equals 6.", []string{"9 - 3", "8 - 2", "10 - 4", "7 - 1", "6 - 0"},
			[]int{0, 1, 2, 3, 4}, "Each listed subtraction makes 6."},
		{"Select each expression that equals 4.", []string{"9 - 5", "7 - 3", "8 - 4", "10 - 7", "6 - 4"},
			[]int{0, 1, 2}, "9 - 5, 7 - 3, and 8 - 4 equal 4; 10 - 7 equals 3 and 6 - 4 equals 2."},
		{"Select each difference greater than 2.", []string{"8 - 5", "7 - 6", "9 - 4", "10 - 8", "6 - 3"},
			[]int{0, 2, 4}, "Those differences are more than 2."},
	}

	takingAwayObjectStories = []story{
		{5, 2, "apple", "in the basket"},
		{6, 1, "car", "in the toy garage"},
		{4, 3, "cookie", "on the plate"},
		{7, 2, "shell", "by the shore"},
		{5, 1, "book", "on the shelf"},
		{8, 3, "sticker", "on the chart"},
		{6, 4, "block", "in the tower"},
		{7, 5, "balloon", "at the party"},
		{5, 2, "frog", "near the pond"},
		{6, 3, "flower", "in the vase"},
		{9, 4, "marble", "in the jar"},
		{8, 2, "pencil", "in the cup"},
	}
	takingAwayObjectSets = []selectSet{
		{"Select each story that ends with 3 items left.",
			[]string{"5 apples take away 2", "6 cars take away 3", "4 cookies take away 1",
				"7 shells take away 4", "8 stickers take away 4"},
			[]int{0, 1, 2, 3}, "Those subtraction stories leave 3 items; 8 take away 4 leaves 4."},
		{"Select each description that leaves 2 items.",
			[]string{"5 books take away 3", "6 flowers take away 4", "7 balloons take away 6",
				"4 frogs take away 2", "3 cars take away 1"},
			[]int{0, 1, 3, 4}, "These stories all end with 2 items remaining; 7 take away 6 leaves 1."},
		{"Select each story that leaves more than 4 items.",
			[]string{"9 marbles take away 4", "6 pencils take away 2", "5 cookies take away 2",
				"7 balloons take away 5", "8 stickers take away 3"},
			[]int{0, 4}, "9 take away 4 and 8 take away 3 both leave 5, which is more than 4."},
	}
)
