package entities

import (
	"errors"
	"fmt"
	"strings"
)

// QuestionsPerSubtopic is the number of rows every subtopic bank must hold.
const QuestionsPerSubtopic = 15

var ErrUnexpectedRowCount = errors.New("unexpected number of questions")

// Subtopic identifies one curriculum unit and the file its bank is written to.
type Subtopic struct {
	Curriculum string // curriculum key, e.g. "kindergarten"
	Chapter    string // full chapter name, used as TestName
	Title      string // subtopic title, e.g. "Counting 1-5"
	File       string // output path relative to the output root
	ItemPrefix string // "Title Item" prefix when it differs from Title
}

// Path returns the grouping path "<chapter prefix>/<title>", where the
// prefix is the chapter name up to its first colon.
func (s Subtopic) Path() string {
	prefix, _, _ := strings.Cut(s.Chapter, ":")
	return prefix + "/" + s.Title
}

// TitleItem returns the "Title Item" cell for question number n (1-based).
func (s Subtopic) TitleItem(n int) string {
	prefix := s.Title
	if s.ItemPrefix != "" {
		prefix = s.ItemPrefix
	}
	return fmt.Sprintf("%s Q%d", prefix, n)
}

func (s Subtopic) String() string {
	return s.Curriculum + "/" + s.Title
}

// Bank is the generated question set of one subtopic.
type Bank struct {
	Subtopic Subtopic
	Rows     []Row
}

// Validate checks the bank holds exactly QuestionsPerSubtopic rows.
func (b Bank) Validate() error {
	if len(b.Rows) != QuestionsPerSubtopic {
		return fmt.Errorf("%w for %s: expected %d, got %d",
			ErrUnexpectedRowCount, b.Subtopic.Title, QuestionsPerSubtopic, len(b.Rows))
	}
	return nil
}
