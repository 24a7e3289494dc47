package entities

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// QuestionType is the value of the "Type" column.
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "Multiple Choice"
	QuestionTypeSelectAll      QuestionType = "Select All That Apply"
)

// ContentTypeQuestion is the constant "Content Type" cell.
const ContentTypeQuestion = "Question"

// MaxOptions is the number of option columns (OptionA..OptionG).
const MaxOptions = 7

var (
	ErrNoOptions        = errors.New("question has no options")
	ErrTooManyOptions   = errors.New("question has more options than columns")
	ErrNoCorrectAnswer  = errors.New("question has no correct answer")
	ErrAnswerOutOfRange = errors.New("correct answer index out of range")
)

// Header is the CSV header row. Downstream importers depend on this exact order.
var Header = []string{
	"Question",
	"Answer",
	"Explanation",
	"PictureURL",
	"OptionA",
	"OptionB",
	"OptionC",
	"OptionD",
	"OptionE",
	"OptionF",
	"OptionG",
	"TestName",
	"Content Type",
	"Title Item",
	"Type",
	"Path",
}

// Row is one question of a subtopic bank, laid out like a CSV record.
type Row struct {
	Question    string             // question text
	Answer      string             // comma-separated letters of the correct options, e.g. "A,C"
	Explanation string             // why the answer is correct
	PictureURL  string             // optional picture, empty for generated banks
	Options     [MaxOptions]string // OptionA..OptionG, unused slots are empty
	TestName    string             // chapter name
	ContentType string             // always ContentTypeQuestion
	TitleItem   string             // "<subtopic> Q<n>"
	Type        QuestionType       // multiple choice or select all
	Path        string             // "<chapter prefix>/<subtopic>"
}

// NewMultipleChoice builds a single-answer row for question number n (1-based).
func NewMultipleChoice(s Subtopic, n int, question, explanation string, options []string, correctIndex int) (Row, error) {
	return newRow(s, n, question, explanation, options, []int{correctIndex}, QuestionTypeMultipleChoice)
}

// NewSelectAll builds a "select all that apply" row for question number n (1-based).
func NewSelectAll(s Subtopic, n int, question, explanation string, options []string, correctIndices []int) (Row, error) {
	return newRow(s, n, question, explanation, options, correctIndices, QuestionTypeSelectAll)
}

func newRow(
	s Subtopic,
	n int,
	question, explanation string,
	options []string,
	correct []int,
	qtype QuestionType,
) (Row, error) {
	if len(options) == 0 {
		return Row{}, ErrNoOptions
	}
	if len(options) > MaxOptions {
		return Row{}, fmt.Errorf("%w: %d options", ErrTooManyOptions, len(options))
	}

	answer, err := AnswerLetters(correct, len(options))
	if err != nil {
		return Row{}, err
	}

	row := Row{
		Question:    question,
		Answer:      answer,
		Explanation: explanation,
		TestName:    s.Chapter,
		ContentType: ContentTypeQuestion,
		TitleItem:   s.TitleItem(n),
		Type:        qtype,
		Path:        s.Path(),
	}
	copy(row.Options[:], options)

	return row, nil
}

// AnswerLetters converts option indices into sorted, de-duplicated letters.
// Every index must point at one of the optionCount supplied options.
func AnswerLetters(indices []int, optionCount int) (string, error) {
	if len(indices) == 0 {
		return "", ErrNoCorrectAnswer
	}

	seen := make(map[int]struct{}, len(indices))
	uniq := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= optionCount || idx >= MaxOptions {
			return "", fmt.Errorf("%w: %d of %d", ErrAnswerOutOfRange, idx, optionCount)
		}
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		uniq = append(uniq, idx)
	}
	sort.Ints(uniq)

	letters := make([]string, len(uniq))
	for i, idx := range uniq {
		letters[i] = string(rune('A' + idx))
	}
	return strings.Join(letters, ","), nil
}

// Record returns the row as CSV cells in Header order.
func (r Row) Record() []string {
	rec := make([]string, 0, len(Header))
	rec = append(rec, r.Question, r.Answer, r.Explanation, r.PictureURL)
	rec = append(rec, r.Options[:]...)
	rec = append(rec, r.TestName, r.ContentType, r.TitleItem, string(r.Type), r.Path)
	return rec
}

// RowFromRecord is the inverse of Record.
func RowFromRecord(rec []string) (Row, error) {
	if len(rec) != len(Header) {
		return Row{}, fmt.Errorf("expected %d columns, got %d", len(Header), len(rec))
	}

	row := Row{
		Question:    rec[0],
		Answer:      rec[1],
		Explanation: rec[2],
		PictureURL:  rec[3],
		TestName:    rec[11],
		ContentType: rec[12],
		TitleItem:   rec[13],
		Type:        QuestionType(rec[14]),
		Path:        rec[15],
	}
	copy(row.Options[:], rec[4:4+MaxOptions])

	return row, nil
}

// OptionList returns the non-empty leading options.
func (r Row) OptionList() []string {
	n := 0
	for i, o := range r.Options {
		if o != "" {
			n = i + 1
		}
	}
	return append([]string(nil), r.Options[:n]...)
}
