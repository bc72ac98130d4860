package ranges

import (
	"fmt"

	"github.com/ib-77/kotlinize/pkg/kt"
)

// Build constructs the range variant matching the dynamic type of start:
// int8, int16, int32 and int64 select the byte, short, int and long kinds.
// end and the optional step must have exactly the same type as start; the
// factory does not convert between kinds.
//
// Any other start type fails with kt.ErrUnsupportedKind. Since rune is an
// alias of int32, an int32 start always selects KindInt; build character
// ranges with Chars or BuildKind.
func Build(start, endInclusive any, step ...any) (Progression, error) {
	switch s := start.(type) {
	case int8:
		return buildAs(KindByte, s, endInclusive, step)
	case int16:
		return buildAs(KindShort, s, endInclusive, step)
	case int32:
		return buildAs(KindInt, s, endInclusive, step)
	case int64:
		return buildAs(KindLong, s, endInclusive, step)
	default:
		return nil, fmt.Errorf("%w: %T", kt.ErrUnsupportedKind, start)
	}
}

func buildAs[T Element](kind Kind, start T, endInclusive any, step []any) (Progression, error) {
	end, ok := endInclusive.(T)
	if !ok {
		return nil, fmt.Errorf("%w: end is %T, start is %T", kt.ErrInvalidArgument, endInclusive, start)
	}

	steps := make([]T, 0, len(step))
	for _, st := range step {
		v, ok := st.(T)
		if !ok {
			return nil, fmt.Errorf("%w: step is %T, start is %T", kt.ErrInvalidArgument, st, start)
		}
		steps = append(steps, v)
	}

	r, err := newRange(kind, start, end, steps)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// BuildKind constructs a range of the given kind from int64 bounds. Values
// that do not fit the kind fail with kt.ErrInvalidArgument. The concrete
// result is *Range[int8], *Range[int16], *Range[int32] (also for KindChar)
// or *Range[int64].
func BuildKind(kind Kind, start, endInclusive, step int64) (Progression, error) {
	switch kind {
	case KindByte:
		return buildNarrowed[int8](kind, start, endInclusive, step)
	case KindShort:
		return buildNarrowed[int16](kind, start, endInclusive, step)
	case KindInt, KindChar:
		return buildNarrowed[int32](kind, start, endInclusive, step)
	case KindLong:
		return buildNarrowed[int64](kind, start, endInclusive, step)
	default:
		return nil, fmt.Errorf("%w: %s", kt.ErrUnsupportedKind, kind)
	}
}

func buildNarrowed[T Element](kind Kind, start, endInclusive, step int64) (Progression, error) {
	lo, hi, _ := kind.bounds()
	for _, v := range []int64{start, endInclusive} {
		if v < lo || v > hi {
			return nil, fmt.Errorf("%w: %d does not fit kind %s", kt.ErrInvalidArgument, v, kind)
		}
	}
	if step < lo || step > hi {
		return nil, fmt.Errorf("%w: step %d does not fit kind %s", kt.ErrInvalidArgument, step, kind)
	}

	r, err := newRange(kind, T(start), T(endInclusive), []T{T(step)})
	if err != nil {
		return nil, err
	}
	return r, nil
}
