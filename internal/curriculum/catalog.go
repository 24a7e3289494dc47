// Package curriculum holds the subtopic generators and the catalog that maps
// every subtopic to its output file.
package curriculum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aliskhannn/assessgen/internal/domain/entities"
)

const (
	Kindergarten = "kindergarten"
	Grade1       = "grade1"
)

const (
	multipleChoicePerBank = 12
	selectAllPerBank      = 3
)

var ErrUnknownCurriculum = errors.New("unknown curriculum")

// Generator builds the rows of one subtopic. Generators are pure: the same
// subtopic always yields the same rows.
type Generator func(s entities.Subtopic) ([]entities.Row, error)

// Definition binds a subtopic to its generator.
type Definition struct {
	Subtopic entities.Subtopic
	Generate Generator
}

// Names lists the known curricula in build order.
func Names() []string {
	return []string{Kindergarten, Grade1}
}

// Catalog returns the definitions of the named curricula, in the order given.
func Catalog(prompts PromptSource, names ...string) ([]Definition, error) {
	var defs []Definition
	for _, name := range names {
		switch name {
		case Kindergarten:
			defs = append(defs, kindergarten(prompts)...)
		case Grade1:
			defs = append(defs, grade1(prompts)...)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownCurriculum, name)
		}
	}
	return defs, nil
}

// chapter collects the definitions of one chapter directory.
type chapter struct {
	curriculum string
	name       string
	dir        string
	defs       []Definition
}

func (c *chapter) add(title, file string, gen Generator) *chapter {
	c.defs = append(c.defs, Definition{
		Subtopic: entities.Subtopic{
			Curriculum: c.curriculum,
			Chapter:    c.name,
			Title:      title,
			File:       c.dir + "/" + file,
		},
		Generate: gen,
	})
	return c
}

// items sets the "Title Item" prefix of the last added subtopic.
func (c *chapter) items(prefix string) *chapter {
	c.defs[len(c.defs)-1].Subtopic.ItemPrefix = prefix
	return c
}

func kindergarten(prompts PromptSource) []Definition {
	numbers1to5 := []int{1, 2, 3, 4, 5, 2, 4, 1, 3, 5, 2, 4, 1, 3, 5}
	numbers6to10 := []int{6, 7, 8, 9, 10, 7, 9, 6, 8, 10, 7, 9, 6, 8, 10}
	numbers11to20 := []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 11, 12, 13, 14, 15}

	chapters := []*chapter{
		(&chapter{curriculum: Kindergarten, name: "Chapter 1: Numbers and Counting", dir: "chapter01_numbers_and_counting"}).
			add("Counting 1-5", "counting_1_5.csv", counting(numbers1to5, smallObjects, true)).
			add("Counting 6-10", "counting_6_10.csv", counting(numbers6to10, mediumObjects, true)).
			add("Counting 11-20", "counting_11_20.csv", counting(numbers11to20, largeObjects, false)).
			add("Comparing Numbers", "comparing_numbers.csv", comparing),
		(&chapter{curriculum: Kindergarten, name: "Chapter 2: Number Recognition and Writing", dir: "chapter02_number_recognition_and_writing"}).
			add("Recognizing Numbers 0-10", "recognizing_numbers_0_10.csv",
				recognition([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 0, 3, 5, 7}, smallRecognitionSets)).
			add("Recognizing Numbers 11-20", "recognizing_numbers_11_20.csv",
				recognition([]int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 11, 13, 15, 19}, teenRecognitionSets)).
			add("Writing Numbers 0-20", "writing_numbers_0_20.csv", writingNumbers),
		(&chapter{curriculum: Kindergarten, name: "Chapter 3: Shapes and Geometry", dir: "chapter03_shapes_and_geometry"}).
			add("2D Shapes", "2d_shapes.csv", fromTable(prompts, "shapes_2d")).
			add("3D Shapes", "3d_shapes.csv", fromTable(prompts, "shapes_3d")).
			add("Shape Sorting", "shape_sorting.csv", fromTable(prompts, "shape_sorting")),
		(&chapter{curriculum: Kindergarten, name: "Chapter 4: Patterns and Sorting", dir: "chapter04_patterns_and_sorting"}).
			add("Simple AB Patterns", "simple_ab_patterns.csv", fromTable(prompts, "ab_patterns")).
			add("ABC Patterns", "abc_patterns.csv", fromTable(prompts, "abc_patterns")).
			add("Sorting by Color, Size, Shape", "sorting_by_color_size_shape.csv", fromTable(prompts, "sorting_color_size_shape")),
		(&chapter{curriculum: Kindergarten, name: "Chapter 5: Addition Basics", dir: "chapter05_addition_basics"}).
			add("Adding within 5", "adding_within_5.csv", numericFacts(addition, addWithinFivePairs, addWithinFiveSets)).
			add("Adding within 10", "adding_within_10.csv", numericFacts(addition, addWithinTenPairs, addWithinTenSets)).
			add("Using Objects to Add", "using_objects_to_add.csv", addingStories(addingObjectStories, addingObjectSets)),
		(&chapter{curriculum: Kindergarten, name: "Chapter 6: Subtraction Basics", dir: "chapter06_subtraction_basics"}).
			add("Taking Away within 5", "taking_away_within_5.csv", numericFacts(subtraction, takeWithinFivePairs, takeWithinFiveSets)).
			add("Subtracting within 10", "subtracting_within_10.csv", numericFacts(subtraction, subtractWithinTenPairs, subtractWithinTenSets)).
			add("Using Objects to Subtract", "using_objects_to_subtract.csv", takingAwayStories(takingAwayObjectStories, takingAwayObjectSets)),
		(&chapter{curriculum: Kindergarten, name: "Chapter 7: Measurement and Comparison", dir: "chapter07_measurement_and_comparison"}).
			add("Big vs Small", "big_vs_small.csv", fromTable(prompts, "big_vs_small")).
			add("Tall vs Short", "tall_vs_short.csv", fromTable(prompts, "tall_vs_short")).
			add("Heavy vs Light", "heavy_vs_light.csv", fromTable(prompts, "heavy_vs_light")).
			add("Longer vs Shorter", "longer_vs_shorter.csv", fromTable(prompts, "longer_vs_shorter")),
		(&chapter{curriculum: Kindergarten, name: "Chapter 8: Time and Daily Routines", dir: "chapter08_time_and_daily_routines"}).
			add("Morning, Afternoon, Night", "morning_afternoon_night.csv", fromTable(prompts, "time_of_day")).
			add("Days of the Week", "days_of_the_week.csv", fromTable(prompts, "days_of_week")).
			add("Reading a Clock to the Hour", "reading_a_clock_to_the_hour.csv", fromTable(prompts, "reading_clock")),
		(&chapter{curriculum: Kindergarten, name: "Chapter 9: Money (Introduction)", dir: "chapter09_money_introduction"}).
			add("Recognizing Coins", "recognizing_coins.csv", fromTable(prompts, "recognizing_coins")).
			add("Understanding that Money Buys Things", "understanding_money_buys_things.csv", fromTable(prompts, "money_purpose")),
		(&chapter{curriculum: Kindergarten, name: "Chapter 10: Data and Graphs", dir: "chapter10_data_and_graphs"}).
			add("Sorting Favorite Fruits", "sorting_favorite_fruits.csv", fromTable(prompts, "sorting_favorite_fruits")).
			add("Making a Picture Graph", "making_a_picture_graph.csv", fromTable(prompts, "picture_graph")),
	}

	return flatten(chapters)
}

// grade1 tables are named "grade1_" plus the output file name.
func grade1(prompts PromptSource) []Definition {
	table := func(file string) Generator {
		return fromTable(prompts, "grade1_"+strings.TrimSuffix(file, ".csv"))
	}

	chapters := []*chapter{
		(&chapter{curriculum: Grade1, name: "Chapter 1: Numbers and Place Value", dir: "chapter01_numbers_and_place_value"}).
			add("Counting 1-100", "counting_sequences.csv", countingSequences).items("Counting Sequence").
			add("Tens and Ones", "tens_and_ones.csv", tensAndOnes).items("Place Value").
			add("Comparing Numbers", "comparing_numbers.csv", table("comparing_numbers.csv")),
		(&chapter{curriculum: Grade1, name: "Chapter 2: Number Writing and Recognition", dir: "chapter02_number_writing_and_recognition"}).
			add("Writing Numbers", "writing_numbers.csv", table("writing_numbers.csv")).
			add("Ordering Numbers", "ordering_numbers.csv", table("ordering_numbers.csv")),
		(&chapter{curriculum: Grade1, name: "Chapter 3: Addition", dir: "chapter03_addition"}).
			add("Adding Within 20", "adding_within_20.csv", numericFacts(addition, addWithinTwentyPairs, addWithinTwentySets)).
			items("Addition Within 20").
			add("Addition Fact Families", "addition_fact_families.csv", table("addition_fact_families.csv")).
			items("Addition Fact Family").
			add("Making Ten", "making_ten_strategy.csv", table("making_ten_strategy.csv")).
			add("Addition Word Problems", "addition_word_problems.csv", table("addition_word_problems.csv")).
			items("Addition Word Problem"),
		(&chapter{curriculum: Grade1, name: "Chapter 4: Subtraction", dir: "chapter04_subtraction"}).
			add("Subtraction Within 20", "subtraction_within_20.csv", numericFacts(subtraction, subtractWithinTwentyPairs, subtractWithinTwentySets)).
			add("Subtraction Fact Families", "subtraction_fact_families.csv", table("subtraction_fact_families.csv")).
			items("Subtraction Fact Family").
			add("Subtraction Word Problems", "subtraction_word_problems.csv", table("subtraction_word_problems.csv")).
			items("Subtraction Word Problem"),
		(&chapter{curriculum: Grade1, name: "Chapter 5: Addition & Subtraction to 100", dir: "chapter05_addition_subtraction_to_100"}).
			add("Adding Tens", "adding_tens.csv", numericFacts(withPool(addition, tensAround), addingTensPairs, addingTensSets)).
			add("Subtracting Tens", "subtracting_tens.csv", numericFacts(withPool(subtraction, tensAround), subtractingTensPairs, subtractingTensSets)).
			add("Two-Digit Plus One-Digit", "two_digit_plus_one_digit.csv", table("two_digit_plus_one_digit.csv")),
		(&chapter{curriculum: Grade1, name: "Chapter 6: Geometry", dir: "chapter06_geometry"}).
			add("2D Shapes", "shapes_2d.csv", table("shapes_2d.csv")).
			add("3D Shapes", "shapes_3d.csv", table("shapes_3d.csv")).
			add("Partitioning Shapes", "partitioning_shapes.csv", table("partitioning_shapes.csv")),
		(&chapter{curriculum: Grade1, name: "Chapter 7: Measurement", dir: "chapter07_measurement"}).
			add("Length", "length_comparisons.csv", table("length_comparisons.csv")).
			add("Height", "height_comparisons.csv", table("height_comparisons.csv")).
			add("Weight", "weight_comparisons.csv", table("weight_comparisons.csv")).
			add("Non-standard Units", "nonstandard_units.csv", table("nonstandard_units.csv")),
		(&chapter{curriculum: Grade1, name: "Chapter 8: Time", dir: "chapter08_time"}).
			add("Reading Clocks to Hour", "time_to_hour.csv", table("time_to_hour.csv")).items("Time to Hour").
			add("Reading Clocks to Half-Hour", "time_to_half_hour.csv", table("time_to_half_hour.csv")).items("Time to Half-Hour").
			add("Morning Afternoon Evening", "time_of_day.csv", table("time_of_day.csv")).items("Time of Day"),
		(&chapter{curriculum: Grade1, name: "Chapter 9: Money", dir: "chapter09_money"}).
			add("Recognizing Coins", "coin_recognition.csv", table("coin_recognition.csv")).items("Coin Recognition").
			add("Counting Coins", "counting_coins.csv", table("counting_coins.csv")).
			add("Money Word Problems", "money_word_problems.csv", table("money_word_problems.csv")).items("Money Word Problem"),
		(&chapter{curriculum: Grade1, name: "Chapter 10: Data and Graphing", dir: "chapter10_data_and_graphing"}).
			add("Collecting Data", "collecting_data.csv", table("collecting_data.csv")).
			add("Making Graphs", "making_graphs.csv", table("making_graphs.csv")).
			add("Reading Graphs", "reading_graphs.csv", table("reading_graphs.csv")),
		(&chapter{curriculum: Grade1, name: "Chapter 11: Fractions (Intro)", dir: "chapter11_fractions_intro"}).
			add("Halves", "halves.csv", table("halves.csv")).
			add("Quarters", "quarters.csv", table("quarters.csv")),
		(&chapter{curriculum: Grade1, name: "Chapter 12: Problem Solving & Review", dir: "chapter12_problem_solving_review"}).
			add("Addition and Subtraction Problems", "addition_subtraction_word_problems.csv", table("addition_subtraction_word_problems.csv")).
			items("Problem Solving").
			add("Mixed Review", "mixed_review.csv", table("mixed_review.csv")),
	}

	return flatten(chapters)
}

func flatten(chapters []*chapter) []Definition {
	var defs []Definition
	for _, c := range chapters {
		defs = append(defs, c.defs...)
	}
	return defs
}
