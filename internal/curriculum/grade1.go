package curriculum

import (
	"fmt"

	"github.com/aliskhannn/assessgen/internal/domain/entities"
)

type skipCount struct {
	start int
	step  int
}

var skipCounts = []skipCount{
	{14, 1}, {27, 1}, {38, 1}, {49, 1},
	{8, 2}, {22, 2}, {36, 2},
	{10, 5}, {25, 5}, {40, 5},
	{20, 10}, {50, 10},
}

var countingSequenceSets = []selectSet{
	{"Select each list that counts forward by ones.",
		[]string{"31, 32, 33, 34", "31, 32, 34, 35", "58, 59, 60, 61", "70, 71, 72, 73", "45, 44, 43, 42"},
		[]int{0, 2, 3}, "Counting forward by ones adds 1 each time."},
	{"Select each list that counts by 10s.",
		[]string{"5, 15, 25, 35", "5, 10, 15, 20", "40, 50, 60, 70", "12, 22, 32, 42", "10, 20, 25, 30"},
		[]int{0, 2, 3}, "Counting by 10s adds ten each time, no matter where you start."},
	{"Select each number you say when counting by 5s from 0.",
		[]string{"15", "22", "35", "40", "48"},
		[]int{0, 2, 3}, "Counting by 5s from 0 lands on numbers that end in 0 or 5."},
}

func countingSequences(s entities.Subtopic) ([]entities.Row, error) {
	b := newBankBuilder(s)
	for idx, sc := range skipCounts {
		next := sc.start + sc.step
		var question, explanation string
		if sc.step == 1 {
			question = fmt.Sprintf("What number comes after %d when counting by ones?", sc.start)
			explanation = fmt.Sprintf("Counting by ones means adding 1 to %d, so %d comes next.", sc.start, next)
		} else {
			question = fmt.Sprintf("When counting by %ds, what number comes after %d?", sc.step, sc.start)
			explanation = fmt.Sprintf("Counting by %ds adds %d each time, so %d comes after %d.", sc.step, sc.step, next, sc.start)
		}
		pool := []int{next, sc.start, next + sc.step, next + 1, next - 1, next + 2}
		b.numeric(question, explanation, next, pool, idx%4)
	}
	b.selectSets(countingSequenceSets)
	return b.build()
}

var placeValueNumbers = []int{34, 52, 18, 90, 67, 45, 43, 71, 28, 36, 59, 82}

var tensAndOnesSets = []selectSet{
	{"Select each number that has 4 tens.",
		[]string{"47", "74", "40", "14", "49"},
		[]int{0, 2, 4}, "47, 40, and 49 all have a 4 in the tens place."},
	{"Select each way to show 63.",
		[]string{"6 tens and 3 ones", "60 + 3", "3 tens and 6 ones", "63 ones", "36"},
		[]int{0, 1, 3}, "6 tens and 3 ones, 60 + 3, and 63 ones all make 63."},
	{"Select each number with more ones than tens.",
		[]string{"27", "81", "45", "93", "16"},
		[]int{0, 2, 4}, "27, 45, and 16 have a bigger ones digit than tens digit."},
}

// tensAndOnes rotates between counting tens, counting ones, and reading
// expanded form.
func tensAndOnes(s entities.Subtopic) ([]entities.Row, error) {
	b := newBankBuilder(s)
	for idx, n := range placeValueNumbers {
		tens, ones := n/10, n%10
		slot := idx % 4
		switch idx % 3 {
		case 0:
			b.numeric(
				fmt.Sprintf("How many tens are in %d?", n),
				fmt.Sprintf("%d has %d tens (%d) and %d ones.", n, tens, tens*10, ones),
				tens, []int{tens, ones, tens + 1, tens - 1, n}, slot,
			)
		case 1:
			b.numeric(
				fmt.Sprintf("How many ones are in %d?", n),
				fmt.Sprintf("%d has %d tens and %d ones.", n, tens, ones),
				ones, []int{ones, tens, ones + 1, ones - 1, ones + 10}, slot,
			)
		default:
			b.numeric(
				fmt.Sprintf("%d + %d shows a number. Which number is it?", tens*10, ones),
				fmt.Sprintf("%d tens and %d ones make %d.", tens, ones, n),
				n, []int{n, ones*10 + tens, n + 10, n - 10, n + 1}, slot,
			)
		}
	}
	b.selectSets(tensAndOnesSets)
	return b.build()
}

var (
	addWithinTwentyPairs = [][2]int{
		{8, 6}, {9, 7}, {5, 4}, {12, 3}, {6, 8}, {7, 5},
		{11, 6}, {13, 4}, {10, 9}, {14, 5}, {9, 9}, {7, 8},
	}
	addWithinTwentySets = []selectSet{
		{"Select all number sentences that equal 12.", []string{"6 + 6", "9 + 2", "8 + 4", "5 + 7", "10 + 3"},
			[]int{0, 2, 3}, "6 + 6, 8 + 4, and 5 + 7 each add to 12; 9 + 2 equals 11 and 10 + 3 equals 13."},
		{"Select each sum that is greater than 15.", []string{"9 + 7", "8 + 6", "12 + 5", "10 + 5", "11 + 9"},
			[]int{0, 2, 4}, "9 + 7, 12 + 5, and 11 + 9 are more than 15; 10 + 5 is exactly 15."},
		{"Select each doubles fact.", []string{"7 + 7", "6 + 8", "9 + 9", "5 + 6", "8 + 8"},
			[]int{0, 2, 4}, "A doubles fact adds a number to itself."},
	}

	subtractWithinTwentyPairs = [][2]int{
		{15, 7}, {18, 9}, {14, 6}, {20, 5}, {17, 8}, {13, 4},
		{16, 9}, {19, 10}, {12, 5}, {11, 3}, {20, 12}, {15, 9},
	}
	subtractWithinTwentySets = []selectSet{
		{"Select each subtraction fact that equals 8.", []string{"15 - 7", "16 - 8", "14 - 5", "12 - 4", "20 - 11"},
			[]int{0, 1, 3}, "15 - 7, 16 - 8, and 12 - 4 equal 8; the others equal 9."},
		{"Select each difference that is less than 5.", []string{"12 - 9", "15 - 8", "11 - 7", "18 - 9", "14 - 10"},
			[]int{0, 2, 4}, "12 - 9, 11 - 7, and 14 - 10 are less than 5."},
		{"Select each fact in the same family as 9 + 6 = 15.", []string{"15 - 6 = 9", "15 - 9 = 6", "9 - 6 = 3", "6 + 9 = 15", "15 + 6 = 21"},
			[]int{0, 1, 3}, "A fact family uses the same three numbers: 6, 9, and 15."},
	}

	addingTensPairs = [][2]int{
		{20, 30}, {40, 10}, {50, 20}, {30, 30}, {60, 30}, {10, 70},
		{23, 10}, {45, 20}, {36, 30}, {52, 40}, {18, 50}, {64, 20},
	}
	addingTensSets = []selectSet{
		{"Select each sum that equals 50.", []string{"20 + 30", "40 + 10", "25 + 20", "10 + 40", "30 + 30"},
			[]int{0, 1, 3}, "20 + 30, 40 + 10, and 10 + 40 make 50."},
		{"Select each change that adds exactly 1 ten.", []string{"34 to 44", "52 to 62", "18 to 19", "60 to 70", "27 to 37"},
			[]int{0, 1, 3, 4}, "Adding a ten makes the tens digit one bigger and keeps the ones digit; 18 to 19 adds a one."},
		{"Select each sum that is greater than 80.", []string{"50 + 40", "30 + 40", "70 + 20", "60 + 10", "45 + 40"},
			[]int{0, 2, 4}, "50 + 40 and 70 + 20 make 90, and 45 + 40 makes 85."},
	}

	subtractingTensPairs = [][2]int{
		{50, 20}, {80, 30}, {90, 40}, {70, 10}, {60, 60}, {40, 20},
		{95, 30}, {68, 20}, {74, 40}, {83, 50}, {57, 10}, {100, 70},
	}
	subtractingTensSets = []selectSet{
		{"Select each difference that equals 30.", []string{"50 - 20", "70 - 40", "60 - 20", "90 - 60", "40 - 10"},
			[]int{0, 1, 3, 4}, "Each of those leaves 3 tens; 60 - 20 leaves 40."},
		{"Select each change that takes away exactly 1 ten.", []string{"45 to 35", "70 to 60", "38 to 37", "92 to 82", "56 to 46"},
			[]int{0, 1, 3, 4}, "Taking away a ten makes the tens digit one smaller; 38 to 37 takes away a one."},
		{"Select each difference that is less than 25.", []string{"60 - 40", "90 - 50", "45 - 30", "70 - 20", "38 - 20"},
			[]int{0, 2, 4}, "60 - 40 is 20, 45 - 30 is 15, and 38 - 20 is 18."},
	}
)
