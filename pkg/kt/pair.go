package kt

import "fmt"

type Pair[A, B any] struct {
	First  A
	Second B
}

func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Values destructures the pair.
func (p Pair[A, B]) Values() (A, B) {
	return p.First, p.Second
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func NewTriple[A, B, C any](first A, second B, third C) Triple[A, B, C] {
	return Triple[A, B, C]{First: first, Second: second, Third: third}
}

func (t Triple[A, B, C]) Values() (A, B, C) {
	return t.First, t.Second, t.Third
}

func (t Triple[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.First, t.Second, t.Third)
}
