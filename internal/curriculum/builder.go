package curriculum

import (
	"fmt"

	"github.com/aliskhannn/assessgen/internal/domain/entities"
	"github.com/aliskhannn/assessgen/internal/options"
)

// selectSet is a literal "select all that apply" question.
type selectSet struct {
	question    string
	options     []string
	correct     []int
	explanation string
}

// bankBuilder numbers rows as they are added and keeps the first error,
// so generators can add rows without checking each call.
type bankBuilder struct {
	subtopic entities.Subtopic
	rows     []entities.Row
	err      error
}

func newBankBuilder(s entities.Subtopic) *bankBuilder {
	return &bankBuilder{
		subtopic: s,
		rows:     make([]entities.Row, 0, entities.QuestionsPerSubtopic),
	}
}

// next is the 1-based number of the next row.
func (b *bankBuilder) next() int {
	return len(b.rows) + 1
}

func (b *bankBuilder) multipleChoice(question, explanation string, opts []string, correct int) {
	if b.err != nil {
		return
	}
	row, err := entities.NewMultipleChoice(b.subtopic, b.next(), question, explanation, opts, correct)
	if err != nil {
		b.err = fmt.Errorf("question %d: %w", b.next(), err)
		return
	}
	b.rows = append(b.rows, row)
}

// numeric adds a multiple-choice row whose options are arranged around answer,
// with the answer placed at slot.
func (b *bankBuilder) numeric(question, explanation string, answer int, pool []int, slot int) {
	if b.err != nil {
		return
	}
	opts, err := options.ArrangeStrings(answer, pool, slot)
	if err != nil {
		b.err = fmt.Errorf("question %d: %w", b.next(), err)
		return
	}
	b.multipleChoice(question, explanation, opts, slot)
}

// placed adds a multiple-choice row after swapping the correct option into slot.
func (b *bankBuilder) placed(question, explanation string, opts []string, correct, slot int) {
	if b.err != nil {
		return
	}
	moved, err := options.Place(opts, correct, slot)
	if err != nil {
		b.err = fmt.Errorf("question %d: %w", b.next(), err)
		return
	}
	b.multipleChoice(question, explanation, moved, slot)
}

func (b *bankBuilder) selectAll(question, explanation string, opts []string, correct []int) {
	if b.err != nil {
		return
	}
	row, err := entities.NewSelectAll(b.subtopic, b.next(), question, explanation, opts, correct)
	if err != nil {
		b.err = fmt.Errorf("question %d: %w", b.next(), err)
		return
	}
	b.rows = append(b.rows, row)
}

func (b *bankBuilder) selectSets(sets []selectSet) {
	for _, s := range sets {
		b.selectAll(s.question, s.explanation, s.options, s.correct)
	}
}

func (b *bankBuilder) build() ([]entities.Row, error) {
	if b.err != nil {
		return nil, fmt.Errorf("%s: %w", b.subtopic.Title, b.err)
	}
	return b.rows, nil
}
