package curriculum

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/aliskhannn/assessgen/internal/domain/entities"
	"github.com/aliskhannn/assessgen/internal/repository"
)

func embeddedPrompts(t *testing.T) *repository.PromptRepository {
	t.Helper()
	repo, err := repository.NewEmbeddedPromptRepository()
	if err != nil {
		t.Fatalf("load prompts: %v", err)
	}
	return repo
}

func fullCatalog(t *testing.T) []Definition {
	t.Helper()
	defs, err := Catalog(embeddedPrompts(t), Names()...)
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	return defs
}

func TestCatalog_EverySubtopicYieldsFifteenWellFormedRows(t *testing.T) {
	for _, def := range fullCatalog(t) {
		def := def
		t.Run(def.Subtopic.String(), func(t *testing.T) {
			rows, err := def.Generate(def.Subtopic)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if len(rows) != entities.QuestionsPerSubtopic {
				t.Fatalf("expected %d rows, got %d", entities.QuestionsPerSubtopic, len(rows))
			}

			selectAll := 0
			for i, row := range rows {
				if row.TitleItem != def.Subtopic.TitleItem(i+1) {
					t.Errorf("row %d: title item %q", i, row.TitleItem)
				}
				if row.Path != def.Subtopic.Path() || row.TestName != def.Subtopic.Chapter {
					t.Errorf("row %d: path %q test name %q", i, row.Path, row.TestName)
				}
				if row.ContentType != entities.ContentTypeQuestion {
					t.Errorf("row %d: content type %q", i, row.ContentType)
				}

				opts := row.OptionList()
				seen := make(map[string]bool, len(opts))
				for _, o := range opts {
					if o == "" {
						t.Errorf("row %d: empty option inside %q", i, opts)
					}
					if seen[o] {
						t.Errorf("row %d: duplicate option %q", i, o)
					}
					seen[o] = true
				}

				for _, letter := range strings.Split(row.Answer, ",") {
					if len(letter) != 1 || int(letter[0]-'A') >= len(opts) {
						t.Errorf("row %d: answer %q does not match %d options", i, row.Answer, len(opts))
					}
				}

				switch row.Type {
				case entities.QuestionTypeMultipleChoice:
					if len(row.Answer) != 1 {
						t.Errorf("row %d: multiple choice with answer %q", i, row.Answer)
					}
				case entities.QuestionTypeSelectAll:
					selectAll++
				default:
					t.Errorf("row %d: unknown type %q", i, row.Type)
				}
			}
			if selectAll == 0 {
				t.Error("bank has no select all questions")
			}
		})
	}
}

func TestCatalog_FilesAndPathsAreUnique(t *testing.T) {
	files := make(map[string]string)
	paths := make(map[string]string)
	for _, def := range fullCatalog(t) {
		s := def.Subtopic
		if prev, ok := files[s.File]; ok {
			t.Errorf("%s and %s share file %s", prev, s, s.File)
		}
		files[s.File] = s.String()

		key := s.Curriculum + "|" + s.Path()
		if prev, ok := paths[key]; ok {
			t.Errorf("%s and %s share path %s", prev, s, s.Path())
		}
		paths[key] = s.String()

		if !strings.HasSuffix(s.File, ".csv") || !strings.HasPrefix(s.File, "chapter") {
			t.Errorf("unexpected file layout %q", s.File)
		}
	}
}

func TestCatalog_Subsets(t *testing.T) {
	prompts := embeddedPrompts(t)

	k, err := Catalog(prompts, Kindergarten)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g, err := Catalog(prompts, Grade1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(k) != len(kindergarten(prompts)) || len(g) != len(grade1(prompts)) {
		t.Errorf("got %d kindergarten and %d grade1 subtopics", len(k), len(g))
	}
	if all := fullCatalog(t); len(all) != len(k)+len(g) {
		t.Errorf("full catalog has %d subtopics, want %d", len(all), len(k)+len(g))
	}
	for _, def := range k {
		if def.Subtopic.Curriculum != Kindergarten {
			t.Errorf("%s listed under kindergarten", def.Subtopic)
		}
	}
	for _, def := range g {
		if def.Subtopic.Curriculum != Grade1 {
			t.Errorf("%s listed under grade1", def.Subtopic)
		}
	}
	if k[0].Subtopic.Path() != "Chapter 1/Counting 1-5" {
		t.Errorf("first kindergarten path %q", k[0].Subtopic.Path())
	}

	if _, err := Catalog(prompts, "grade9"); !errors.Is(err, ErrUnknownCurriculum) {
		t.Errorf("expected ErrUnknownCurriculum, got %v", err)
	}
}

func TestCatalog_Grade1Identifiers(t *testing.T) {
	prompts := embeddedPrompts(t)

	tests := []struct {
		file     string
		testName string
		path     string
		item     string
	}{
		{"chapter01_numbers_and_place_value/counting_sequences.csv",
			"Chapter 1: Numbers and Place Value", "Chapter 1/Counting 1-100", "Counting Sequence Q1"},
		{"chapter01_numbers_and_place_value/tens_and_ones.csv",
			"Chapter 1: Numbers and Place Value", "Chapter 1/Tens and Ones", "Place Value Q1"},
		{"chapter03_addition/adding_within_20.csv",
			"Chapter 3: Addition", "Chapter 3/Adding Within 20", "Addition Within 20 Q1"},
		{"chapter05_addition_subtraction_to_100/adding_tens.csv",
			"Chapter 5: Addition & Subtraction to 100", "Chapter 5/Adding Tens", "Adding Tens Q1"},
		{"chapter08_time/time_of_day.csv",
			"Chapter 8: Time", "Chapter 8/Morning Afternoon Evening", "Time of Day Q1"},
		{"chapter12_problem_solving_review/addition_subtraction_word_problems.csv",
			"Chapter 12: Problem Solving & Review", "Chapter 12/Addition and Subtraction Problems", "Problem Solving Q1"},
	}

	byFile := make(map[string]Definition)
	for _, def := range grade1(prompts) {
		byFile[def.Subtopic.File] = def
	}

	for _, tt := range tests {
		def, ok := byFile[tt.file]
		if !ok {
			t.Errorf("%s: not in catalog", tt.file)
			continue
		}
		rows, err := def.Generate(def.Subtopic)
		if err != nil {
			t.Fatalf("%s: %v", tt.file, err)
		}
		if rows[0].TestName != tt.testName || rows[0].Path != tt.path || rows[0].TitleItem != tt.item {
			t.Errorf("%s: got %q %q %q", tt.file, rows[0].TestName, rows[0].Path, rows[0].TitleItem)
		}
	}
}

func TestCatalog_KindergartenTablesKeepLiteralContent(t *testing.T) {
	prompts := embeddedPrompts(t)

	for _, def := range kindergarten(prompts) {
		if def.Subtopic.File != "chapter04_patterns_and_sorting/simple_ab_patterns.csv" {
			continue
		}
		rows, err := def.Generate(def.Subtopic)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		first := rows[0]
		if first.Answer != "A" || first.Options[0] != "🔴" {
			t.Errorf("unexpected first row: %+v", first)
		}
		if rows[14].Type != entities.QuestionTypeSelectAll || rows[14].Answer != "A,C" {
			t.Errorf("unexpected last row: %+v", rows[14])
		}
		return
	}
	t.Fatal("simple AB patterns missing from catalog")
}

// Numeric questions must rotate the answer across A-D and the keyed option
// must be the actual result.
func TestNumericFacts_AnswerRotatesAndMatchesResult(t *testing.T) {
	s := entities.Subtopic{Chapter: "Chapter 5: Addition Basics", Title: "Adding within 5"}
	rows, err := numericFacts(addition, addWithinFivePairs, addWithinFiveSets)(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, p := range addWithinFivePairs {
		row := rows[i]
		wantLetter := string(rune('A' + i%4))
		if row.Answer != wantLetter {
			t.Errorf("row %d: answer %q, want %q", i, row.Answer, wantLetter)
		}
		if got := row.Options[i%4]; got != strconv.Itoa(p[0]+p[1]) {
			t.Errorf("row %d: keyed option %q, want %d", i, got, p[0]+p[1])
		}
	}
}

func TestTakingAwayStories_ZeroLeftStaysNonNegative(t *testing.T) {
	s := entities.Subtopic{Chapter: "Chapter 6: Subtraction Basics", Title: "Stories"}
	stories := []story{{3, 3, "cookie", "on the plate"}}
	rows, err := takingAwayStories(stories, nil)(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rows[0].Answer != "A" || rows[0].Options[0] != "0" {
		t.Errorf("unexpected row: %+v", rows[0])
	}
	for _, o := range rows[0].OptionList() {
		if strings.HasPrefix(o, "-") {
			t.Errorf("negative option %q", o)
		}
	}
	if !strings.Contains(rows[0].Question, "How many cookies are left?") {
		t.Errorf("question %q", rows[0].Question)
	}
}

func TestRecognition_WordOptionsAreSpelled(t *testing.T) {
	s := entities.Subtopic{Chapter: "Chapter 2: Numbers", Title: "Recognizing"}
	rows, err := recognition([]int{20, 20}, teenRecognitionSets)(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	word := rows[1]
	if word.Answer != "B" || word.Options[1] != "twenty" {
		t.Fatalf("unexpected word row: %+v", word)
	}
	for _, o := range word.OptionList() {
		if _, err := strconv.Atoi(o); err == nil {
			t.Errorf("word question has numeral option %q", o)
		}
	}
}

func TestRecognition_SelectSetsFitTheRange(t *testing.T) {
	s := entities.Subtopic{Chapter: "Chapter 2: Numbers", Title: "Recognizing"}
	rows, err := recognition([]int{12}, teenRecognitionSets)(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, row := range rows[multipleChoicePerBank:] {
		for _, idx := range answerIndices(t, row.Answer) {
			n, err := strconv.Atoi(row.Options[idx])
			if err != nil {
				n = wordValue(row.Options[idx])
			}
			if n < 11 || n > 20 {
				t.Errorf("%q: keyed option %q is outside 11-20", row.Question, row.Options[idx])
			}
		}
	}
}

func answerIndices(t *testing.T, answer string) []int {
	t.Helper()
	var out []int
	for _, letter := range strings.Split(answer, ",") {
		out = append(out, int(letter[0]-'A'))
	}
	return out
}

func wordValue(word string) int {
	for i, w := range numberWords {
		if w == word {
			return i
		}
	}
	return -1
}

type stubPrompts struct {
	table *repository.PromptTable
}

func (s stubPrompts) Get(name string) (*repository.PromptTable, error) {
	if s.table == nil {
		return nil, repository.ErrPromptTableNotFound
	}
	return s.table, nil
}

func TestFromTable_PlacesCorrectOption(t *testing.T) {
	table := &repository.PromptTable{
		Questions: []repository.Prompt{
			{Question: "q1", Options: []string{"right", "b", "c", "d"}, Correct: []int{0}},
			{Question: "q2", Options: []string{"right", "b", "c", "d"}, Correct: []int{0}},
			{Question: "s1", Options: []string{"x", "y", "z"}, Correct: []int{2, 0}, SelectAll: true},
			{Question: "q3", Options: []string{"a", "b", "right"}, Correct: []int{2}},
			{Question: "q4", Options: []string{"a", "b", "c", "All of the above"}, Correct: []int{3}, KeepOrder: true},
			{Question: "q5", Options: []string{"a", "right"}, Correct: []int{1}},
		},
	}
	s := entities.Subtopic{Chapter: "Chapter 3: Shapes", Title: "Shapes"}

	rows, err := fromTable(stubPrompts{table: table}, "any")(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rows[0].Answer != "A" || rows[0].Options[0] != "right" {
		t.Errorf("row 0: %+v", rows[0])
	}
	if rows[1].Answer != "B" || rows[1].Options[1] != "right" || rows[1].Options[0] != "b" {
		t.Errorf("row 1: %+v", rows[1])
	}
	if rows[2].Answer != "A,C" || rows[2].Type != entities.QuestionTypeSelectAll {
		t.Errorf("row 2: %+v", rows[2])
	}
	if rows[3].Answer != "C" || rows[3].Options[2] != "right" {
		t.Errorf("row 3: %+v", rows[3])
	}
	if rows[4].Answer != "D" || rows[4].Options[3] != "All of the above" {
		t.Errorf("row 4: %+v", rows[4])
	}
	if rows[5].Answer != "B" || rows[5].Options[1] != "right" {
		t.Errorf("row 5: %+v", rows[5])
	}
	for i, row := range rows {
		if row.TitleItem != s.TitleItem(i+1) {
			t.Errorf("row %d: title item %q", i, row.TitleItem)
		}
	}

	if _, err := fromTable(stubPrompts{}, "missing")(s); !errors.Is(err, repository.ErrPromptTableNotFound) {
		t.Errorf("expected ErrPromptTableNotFound, got %v", err)
	}
}

func TestFromTable_BadCorrectIndexFails(t *testing.T) {
	s := entities.Subtopic{Chapter: "Chapter 3: Shapes", Title: "Shapes"}

	outOfRange := &repository.PromptTable{
		Questions: []repository.Prompt{
			{Question: "q1", Options: []string{"a", "b"}, Correct: []int{5}},
		},
	}
	if _, err := fromTable(stubPrompts{table: outOfRange}, "any")(s); err == nil {
		t.Error("expected error for out-of-range correct index")
	}

	twoAnswers := &repository.PromptTable{
		Questions: []repository.Prompt{
			{Question: "q1", Options: []string{"a", "b"}, Correct: []int{0, 1}},
		},
	}
	if _, err := fromTable(stubPrompts{table: twoAnswers}, "any")(s); !errors.Is(err, ErrSingleAnswer) {
		t.Errorf("expected ErrSingleAnswer, got %v", err)
	}
}
