package result

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	t.Parallel()

	out := Map(Success(3), func(v int) string { return strconv.Itoa(v * 2) })
	v, err := out.Get()
	require.NoError(t, err)
	assert.Equal(t, "6", v)

	boom := errors.New("boom")
	failed := Failure[int](boom)
	called := false
	mapped := Map(failed, func(v int) string {
		called = true
		return ""
	})
	assert.False(t, called)
	assert.ErrorIs(t, mapped.Err(), boom)
	assert.Equal(t, failed.Id(), mapped.Id())
	assert.Equal(t, failed.CreatedAt(), mapped.CreatedAt())
}

func TestMapCatching(t *testing.T) {
	t.Parallel()

	ok := MapCatching(Success("42"), strconv.Atoi)
	assert.Equal(t, 42, ok.GetOrZero())

	bad := MapCatching(Success("x"), strconv.Atoi)
	assert.True(t, bad.IsFailure())

	panicked := MapCatching(Success(0), func(v int) (int, error) { return 10 / v, nil })
	assert.True(t, panicked.IsFailure())
}

func TestFlatMap(t *testing.T) {
	t.Parallel()

	parse := func(s string) Result[int] { return RunCatching(func() (int, error) { return strconv.Atoi(s) }) }

	assert.Equal(t, 7, FlatMap(Success("7"), parse).GetOrZero())
	assert.True(t, FlatMap(Success("seven"), parse).IsFailure())

	boom := errors.New("boom")
	assert.ErrorIs(t, FlatMap(Failure[string](boom), parse).Err(), boom)
}

func TestFold(t *testing.T) {
	t.Parallel()

	onSuccess := func(v int) string { return "value " + strconv.Itoa(v) }
	onFailure := func(err error) string { return "error " + err.Error() }

	assert.Equal(t, "value 1", Fold(Success(1), onSuccess, onFailure))
	assert.Equal(t, "error x", Fold(Failure[int](errors.New("x")), onSuccess, onFailure))
}
