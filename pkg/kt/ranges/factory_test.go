package ranges

import (
	"testing"

	"github.com/ib-77/kotlinize/pkg/kt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_DispatchesOnStartType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		start     any
		end       any
		step      any
		kind      Kind
		ascending []any
	}{
		{"byte", int8(1), int8(10), int8(2), KindByte, []any{int8(1), int8(3), int8(5), int8(7), int8(9)}},
		{"short", int16(1), int16(10), int16(2), KindShort, []any{int16(1), int16(3), int16(5), int16(7), int16(9)}},
		{"int", int32(1), int32(10), int32(2), KindInt, []any{int32(1), int32(3), int32(5), int32(7), int32(9)}},
		{"long", int64(1), int64(10), int64(2), KindLong, []any{int64(1), int64(3), int64(5), int64(7), int64(9)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Build(tt.start, tt.end, tt.step)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, p.Kind())
			assert.Equal(t, tt.ascending, p.Boxed())

			down, err := Build(tt.end, tt.start, tt.step)
			require.NoError(t, err)
			assert.True(t, down.IsDecreasing())
			assert.Equal(t, 5, down.Count())
		})
	}
}

func TestBuild_TypedAccess(t *testing.T) {
	t.Parallel()

	p, err := Build(int32(10), int32(1), int32(2))
	require.NoError(t, err)

	r, ok := p.(*Range[int32])
	require.True(t, ok, "expected *Range[int32], got %T", p)

	first, err := r.First()
	require.NoError(t, err)
	last, err := r.Last()
	require.NoError(t, err)
	assert.Equal(t, int32(10), first)
	assert.Equal(t, int32(2), last)
}

func TestBuild_DefaultStep(t *testing.T) {
	t.Parallel()

	p, err := Build(int64(1), int64(4))
	require.NoError(t, err)
	assert.Equal(t, 4, p.Count())
}

func TestBuild_UnsupportedKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start any
		end   any
		want  string
	}{
		{"string", "a", "z", "string"},
		{"int", 1, 10, "int"},
		{"float", 1.5, 2.5, "float64"},
		{"uint8", uint8(1), uint8(2), "uint8"},
		{"nil", nil, nil, "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Build(tt.start, tt.end)
			require.ErrorIs(t, err, kt.ErrUnsupportedKind)
			assert.Contains(t, err.Error(), tt.want)
			assert.Nil(t, p)
		})
	}
}

func TestBuild_MismatchedKinds(t *testing.T) {
	t.Parallel()

	p, err := Build(int32(1), int64(10))
	require.ErrorIs(t, err, kt.ErrInvalidArgument)
	assert.Nil(t, p)

	p, err = Build(int16(1), int16(10), int32(2))
	require.ErrorIs(t, err, kt.ErrInvalidArgument)
	assert.Nil(t, p)
}

func TestBuild_ZeroStep(t *testing.T) {
	t.Parallel()

	p, err := Build(int8(1), int8(10), int8(0))
	require.ErrorIs(t, err, kt.ErrInvalidArgument)
	// must be an untyped nil, not a nil *Range inside the interface
	assert.True(t, p == nil)
}

func TestBuildKind(t *testing.T) {
	t.Parallel()

	c, err := BuildKind(KindChar, 'a', 'e', 2)
	require.NoError(t, err)
	assert.Equal(t, KindChar, c.Kind())
	assert.Equal(t, "a..e step 2", c.String())
	assert.Equal(t, []rune{'a', 'c', 'e'}, c.(*Range[int32]).Slice())

	b, err := BuildKind(KindByte, -5, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, []int8{-5, 0, 5}, b.(*Range[int8]).Slice())

	_, err = BuildKind(KindByte, 0, 200, 1)
	assert.ErrorIs(t, err, kt.ErrInvalidArgument)

	_, err = BuildKind(KindByte, 0, 10, 1000)
	assert.ErrorIs(t, err, kt.ErrInvalidArgument)

	_, err = BuildKind(KindByte, 0, 10, -1000)
	assert.ErrorIs(t, err, kt.ErrInvalidArgument)

	_, err = BuildKind(KindChar, -1, 10, 1)
	assert.ErrorIs(t, err, kt.ErrInvalidArgument)

	_, err = BuildKind(Kind(42), 0, 1, 1)
	assert.ErrorIs(t, err, kt.ErrUnsupportedKind)
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]Kind{
		"byte": KindByte, "INT8": KindByte, "short": KindShort, "int": KindInt,
		"int32": KindInt, " long ": KindLong, "char": KindChar, "rune": KindChar,
	} {
		got, err := ParseKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseKind("float")
	assert.ErrorIs(t, err, kt.ErrUnsupportedKind)

	assert.Equal(t, "long", KindLong.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
