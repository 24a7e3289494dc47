package curriculum

import (
	"errors"
	"fmt"

	"github.com/aliskhannn/assessgen/internal/domain/entities"
	"github.com/aliskhannn/assessgen/internal/repository"
)

var ErrSingleAnswer = errors.New("multiple choice question needs exactly one correct option")

// PromptSource provides literal prompt tables.
type PromptSource interface {
	Get(name string) (*repository.PromptTable, error)
}

// fromTable builds a bank from a literal prompt table, keeping the table's
// row order. The correct choice of multiple-choice row i is swapped into slot
// i%4. Rows marked keep_order and rows with fewer options than the slot are
// left as written.
func fromTable(prompts PromptSource, table string) Generator {
	return func(s entities.Subtopic) ([]entities.Row, error) {
		t, err := prompts.Get(table)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Title, err)
		}

		b := newBankBuilder(s)
		for idx, p := range t.Questions {
			if p.SelectAll {
				b.selectAll(p.Question, p.Explanation, p.Options, p.Correct)
				continue
			}
			if len(p.Correct) != 1 {
				return nil, fmt.Errorf("%s: question %d: %w: %d correct options",
					s.Title, idx+1, ErrSingleAnswer, len(p.Correct))
			}

			correct := p.Correct[0]
			slot := idx % 4
			if p.KeepOrder || slot >= len(p.Options) {
				slot = correct
			}
			b.placed(p.Question, p.Explanation, p.Options, correct, slot)
		}
		return b.build()
	}
}
