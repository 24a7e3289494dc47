// Package options arranges numeric answer choices for multiple-choice questions.
package options

import (
	"errors"
	"fmt"
	"strconv"
)

// Count is the number of options every arranged set holds.
const Count = 4

var (
	ErrIndexOutOfRange = errors.New("correct index out of range")
	ErrNegativeCorrect = errors.New("correct value must not be negative")
)

// Arrange returns exactly Count distinct non-negative options drawn from pool,
// with correct placed at correctIndex.
//
// Negative pool values are dropped and duplicates collapse to their first
// occurrence. When correct is missing from the pool it is put in front. A pool
// that is too short is padded with the smallest unused values starting at 0.
// The correct value is then moved into place with a single swap, so the order
// of the other options stays stable for a given pool.
func Arrange(correct int, pool []int, correctIndex int) ([]int, error) {
	if correctIndex < 0 || correctIndex >= Count {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, correctIndex)
	}
	if correct < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCorrect, correct)
	}

	seen := make(map[int]struct{}, len(pool)+Count)
	values := make([]int, 0, len(pool)+Count)
	for _, v := range pool {
		if v < 0 {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}

	if _, ok := seen[correct]; !ok {
		values = append([]int{correct}, values...)
		seen[correct] = struct{}{}
	}

	for filler := 0; len(values) < Count; filler++ {
		if _, ok := seen[filler]; ok {
			continue
		}
		seen[filler] = struct{}{}
		values = append(values, filler)
	}

	out := make([]int, Count)
	copy(out, values[:Count])

	pos := indexOf(out, correct)
	if pos < 0 {
		out[Count-1] = correct
		pos = Count - 1
	}

	out[pos], out[correctIndex] = out[correctIndex], out[pos]

	return out, nil
}

// ArrangeStrings is Arrange with the options formatted as decimal strings.
func ArrangeStrings(correct int, pool []int, correctIndex int) ([]string, error) {
	values, err := Arrange(correct, pool, correctIndex)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.Itoa(v)
	}
	return out, nil
}

// Place returns a copy of opts with the element at from swapped into to.
// It is the same single transposition Arrange uses, for options that are
// already distinct, such as literal text choices.
func Place[T any](opts []T, from, to int) ([]T, error) {
	if from < 0 || from >= len(opts) {
		return nil, fmt.Errorf("%w: from %d of %d", ErrIndexOutOfRange, from, len(opts))
	}
	if to < 0 || to >= len(opts) {
		return nil, fmt.Errorf("%w: to %d of %d", ErrIndexOutOfRange, to, len(opts))
	}

	out := append([]T(nil), opts...)
	out[from], out[to] = out[to], out[from]
	return out, nil
}

// Around returns the usual distractor pool for a numeric answer:
// the answer itself followed by answer±1 and answer±2.
func Around(answer int) []int {
	return []int{answer, answer + 1, answer - 1, answer + 2, answer - 2}
}

func indexOf(values []int, target int) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}
