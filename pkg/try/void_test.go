package try

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoidSuccess(t *testing.T) {
	t.Parallel()

	v := VoidSuccess()

	assert.True(t, v.IsSuccess())
	assert.False(t, v.IsFailure())
	assert.NoError(t, v.Err())
	assert.NoError(t, v.Check())
}

func TestVoidFail(t *testing.T) {
	t.Parallel()

	v := VoidFail(errBoom)

	assert.True(t, v.IsFailure())
	assert.Same(t, errBoom, v.Check())
	assert.Panics(t, func() { VoidFail(nil) })
}

func TestRun(t *testing.T) {
	t.Parallel()

	assert.True(t, Run(func() error { return nil }).Equal(VoidSuccess()))
	assert.True(t, Run(func() error { return errBoom }).Equal(VoidFail(errBoom)))
}

func TestRun_PanicIsADefect(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "defect", func() {
		Run(func() error { panic("defect") })
	})
}

func TestRunSafe_RecoversPanic(t *testing.T) {
	t.Parallel()

	v := RunSafe(func() error { panic("oops") })

	require.True(t, v.IsFailure())
	var rec *Recovered
	require.ErrorAs(t, v.Err(), &rec)
	assert.Equal(t, "oops", rec.Value)
}

func TestVoidEqual_ModesAreNeverInterchangeable(t *testing.T) {
	t.Parallel()

	selective := Run(func() error { return nil })
	catchAll := RunSafe(func() error { return nil })

	assert.True(t, selective.IsSuccess())
	assert.True(t, catchAll.IsSuccess())
	assert.False(t, selective.Equal(catchAll))
}

func TestVoidCheckMapped(t *testing.T) {
	t.Parallel()

	assert.NoError(t, VoidSuccess().CheckMapped(func(error) error {
		t.Fatal("must not run")
		return nil
	}))

	wrapped := errors.New("wrapped")
	err := VoidFail(errBoom).CheckMapped(func(cause error) error {
		assert.Same(t, errBoom, cause)
		return wrapped
	})
	assert.Same(t, wrapped, err)
}

func TestVoidIfFailed(t *testing.T) {
	t.Parallel()

	require.NoError(t, VoidSuccess().IfFailed(func(error) error {
		t.Fatal("must not run")
		return nil
	}))

	var seen error
	require.NoError(t, VoidFail(errBoom).IfFailed(func(cause error) error {
		seen = cause
		return nil
	}))
	assert.Same(t, errBoom, seen)
}

func TestVoidAndRun(t *testing.T) {
	t.Parallel()

	ran := false
	v := VoidSuccess().AndRun(func() error { ran = true; return nil })
	assert.True(t, ran)
	assert.True(t, v.IsSuccess())

	v = VoidSuccess().AndRun(func() error { return errBoom })
	assert.True(t, v.Equal(VoidFail(errBoom)))

	ran = false
	v = VoidFail(errBoom).AndRun(func() error { ran = true; return nil })
	assert.False(t, ran)
	assert.True(t, v.Equal(VoidFail(errBoom)))
}

func TestVoidOr(t *testing.T) {
	t.Parallel()

	ran := false
	v := VoidSuccess().Or(func() error { ran = true; return nil })
	assert.False(t, ran)
	assert.True(t, v.IsSuccess())

	v = VoidFail(errBoom).Or(func() error { return nil })
	assert.True(t, v.IsSuccess())

	second := errors.New("second")
	v = VoidFail(errBoom).Or(func() error { return second })
	assert.True(t, v.Equal(VoidFail(second)))
}

func TestVoidString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TryVoid{success}", VoidSuccess().String())
	assert.Equal(t, "TryVoid{cause=boom}", VoidFail(errBoom).String())
}
