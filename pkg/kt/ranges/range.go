package ranges

import (
	"fmt"
	"iter"
	"slices"

	"github.com/ib-77/kotlinize/pkg/kt"
)

// Progression is the kind-independent, read-only view of a Range. Type-assert
// to *Range[T] for typed access.
type Progression interface {
	Kind() Kind
	Count() int
	IsDecreasing() bool
	// Boxed returns the elements as a fresh []any in generation order.
	Boxed() []any
	String() string
}

// Range is an immutable, fully materialized progression from start towards
// end in whole steps.
type Range[T Element] struct {
	kind     Kind
	start    T
	end      T
	step     T
	elements []T
}

var _ Progression = (*Range[int32])(nil)

// MaxCount is the largest number of elements a range may hold. Ranges are
// materialized on construction, so longer walks are rejected.
const MaxCount = 1 << 24

func newRange[T Element](kind Kind, start, endInclusive T, step []T) (*Range[T], error) {
	var s T = 1
	switch len(step) {
	case 0:
	case 1:
		s = step[0]
	default:
		return nil, fmt.Errorf("%w: expected at most one step, got %d", kt.ErrInvalidArgument, len(step))
	}

	if s <= 0 {
		return nil, fmt.Errorf("%w: step must be positive, got %d", kt.ErrInvalidArgument, s)
	}

	if lo, hi, ok := kind.bounds(); ok {
		for _, v := range []T{start, endInclusive} {
			if int64(v) < lo || int64(v) > hi {
				return nil, fmt.Errorf("%w: %d does not fit kind %s", kt.ErrInvalidArgument, v, kind)
			}
		}
	}

	n, ok := count(start, endInclusive, s)
	if !ok {
		return nil, fmt.Errorf("%w: range of %d..%d step %d is too large", kt.ErrInvalidArgument, start, endInclusive, s)
	}

	return &Range[T]{
		kind:     kind,
		start:    start,
		end:      endInclusive,
		step:     s,
		elements: generate(start, endInclusive, s, n),
	}, nil
}

// generate walks from start towards end. step must be positive and n the
// exact element count.
func generate[T Element](start, end, step T, n int) []T {
	elements := make([]T, 0, n)

	current := start
	if start > end {
		for {
			elements = append(elements, current)
			next := current - step
			if next > current || next <= end {
				return elements
			}
			current = next
		}
	}

	for {
		elements = append(elements, current)
		next := current + step
		if next < current || next > end {
			return elements
		}
		current = next
	}
}

// count is the exact element count, computed in uint64 so that the distance
// between any two values of the widest kind cannot overflow. It reports
// false when the count exceeds MaxCount.
func count[T Element](start, end, step T) (int, bool) {
	s := uint64(int64(step))
	var steps uint64
	if start > end {
		steps = (uint64(int64(start)) - uint64(int64(end)) - 1) / s
	} else {
		steps = (uint64(int64(end)) - uint64(int64(start))) / s
	}
	if steps >= MaxCount {
		return 0, false
	}
	return int(steps + 1), true
}

func (r *Range[T]) Kind() Kind {
	return r.kind
}

// Start returns the start bound as given on construction.
func (r *Range[T]) Start() T {
	return r.start
}

// End returns the end bound as given on construction. It is not necessarily
// an element of the range.
func (r *Range[T]) End() T {
	return r.end
}

func (r *Range[T]) Step() T {
	return r.step
}

func (r *Range[T]) IsDecreasing() bool {
	return r.start > r.end
}

// First returns the first generated element.
func (r *Range[T]) First() (T, error) {
	if len(r.elements) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: first of empty range", kt.ErrOutOfRange)
	}
	return r.elements[0], nil
}

// Last returns the last generated element.
func (r *Range[T]) Last() (T, error) {
	if len(r.elements) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: last of empty range", kt.ErrOutOfRange)
	}
	return r.elements[len(r.elements)-1], nil
}

// Any reports whether predicate holds for at least one element. It stops at
// the first match.
func (r *Range[T]) Any(predicate kt.Predicate[T]) bool {
	return slices.ContainsFunc(r.elements, predicate)
}

// All reports whether predicate holds for every element. It stops at the
// first mismatch.
func (r *Range[T]) All(predicate kt.Predicate[T]) bool {
	for _, e := range r.elements {
		if !predicate(e) {
			return false
		}
	}
	return true
}

// Values iterates the elements in generation order. Every call starts from
// the beginning.
func (r *Range[T]) Values() iter.Seq[T] {
	return slices.Values(r.elements)
}

// Indexed iterates (position, element) pairs in generation order.
func (r *Range[T]) Indexed() iter.Seq2[int, T] {
	return slices.All(r.elements)
}

// Slice returns a copy of the elements.
func (r *Range[T]) Slice() []T {
	return slices.Clone(r.elements)
}

func (r *Range[T]) Contains(value T) bool {
	return slices.Contains(r.elements, value)
}

func (r *Range[T]) Count() int {
	return len(r.elements)
}

// Distinct returns the elements without duplicates, keeping first occurrences.
func (r *Range[T]) Distinct() []T {
	seen := make(map[T]struct{}, len(r.elements))
	out := make([]T, 0, len(r.elements))
	for _, e := range r.elements {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

// Reversed returns a copy of the elements in reverse generation order.
func (r *Range[T]) Reversed() []T {
	out := slices.Clone(r.elements)
	slices.Reverse(out)
	return out
}

func (r *Range[T]) Boxed() []any {
	out := make([]any, len(r.elements))
	for i, e := range r.elements {
		out[i] = e
	}
	return out
}

func (r *Range[T]) String() string {
	if r.kind == KindChar {
		return fmt.Sprintf("%c..%c step %d", rune(r.start), rune(r.end), r.step)
	}
	return fmt.Sprintf("%d..%d step %d", r.start, r.end, r.step)
}
