package delegates

import (
	"testing"

	"github.com/ib-77/kotlinize/pkg/kt"
	"github.com/ib-77/kotlinize/pkg/kt/lazy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservable_NotifiesOldAndNew(t *testing.T) {
	t.Parallel()

	var changes []kt.Pair[string, string]
	o, err := NewObservable("initial", func(old, new string) {
		changes = append(changes, kt.NewPair(old, new))
	})
	require.NoError(t, err)
	assert.Equal(t, "initial", o.Value())

	o.Set("first")
	o.Set("second")

	assert.Equal(t, "second", o.Value())
	assert.Equal(t, []kt.Pair[string, string]{
		kt.NewPair("initial", "first"),
		kt.NewPair("first", "second"),
	}, changes)
}

func TestObservable_CallbackSeesNewValue(t *testing.T) {
	t.Parallel()

	var o *Observable[int]
	seen := -1
	o, err := NewObservable(0, func(_, _ int) { seen = o.Value() })
	require.NoError(t, err)

	o.Set(9)
	assert.Equal(t, 9, seen)
}

func TestVetoable_RejectsChanges(t *testing.T) {
	t.Parallel()

	v, err := NewVetoable(10, func(old, new int) bool { return new > old })
	require.NoError(t, err)

	assert.True(t, v.Set(20))
	assert.Equal(t, 20, v.Value())

	assert.False(t, v.Set(5))
	assert.Equal(t, 20, v.Value())
}

func TestNilCallback(t *testing.T) {
	t.Parallel()

	o, err := NewObservable[int](0, nil)
	assert.ErrorIs(t, err, kt.ErrInvalidArgument)
	assert.Nil(t, o)

	v, err := NewVetoable[int](0, nil)
	assert.ErrorIs(t, err, kt.ErrInvalidArgument)
	assert.Nil(t, v)
}

func TestVetoable_GuardsLazyConfig(t *testing.T) {
	t.Parallel()

	calls := 0
	defaults := lazy.Must(func() (int, error) {
		calls++
		return 8080, nil
	})

	port, err := NewVetoable(defaults.MustValue(), func(_, next int) bool {
		return next > 0 && next < 1<<16
	})
	require.NoError(t, err)

	assert.False(t, port.Set(-1))
	assert.True(t, port.Set(9090))
	assert.Equal(t, 9090, port.Value())
	assert.Equal(t, 8080, defaults.MustValue())
	assert.Equal(t, 1, calls)
}
