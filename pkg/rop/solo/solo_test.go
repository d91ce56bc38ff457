package solo

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/excelsia/pkg/rop"
)

func double(x int) int { return x * 2 }

func mustNotCall[T any](t *testing.T) func(T) {
	return func(T) { t.Fatalf("handler must not be called") }
}

func TestMap(t *testing.T) {
	t.Parallel()

	in := rop.Success[string](2)
	out := Map(in, double)
	require.True(t, out.IsSuccess())
	assert.Equal(t, 4, out.Value())
	assert.NotEqual(t, in.ID(), out.ID())

	failed := rop.Failure[int]("x")
	called := false
	same := Map(failed, func(x int) string { called = true; return strconv.Itoa(x) })
	assert.False(t, called)
	assert.True(t, same.IsFailure())
	assert.Equal(t, failed.ID(), same.ID())
	assert.Equal(t, "x", same.Err())
}

func TestFlatMap(t *testing.T) {
	t.Parallel()

	inner := rop.Success[string]("ten")
	out := FlatMap(rop.Success[string](10), func(int) rop.Result[string, string] { return inner })
	assert.Equal(t, inner.ID(), out.ID())
	assert.Equal(t, "ten", out.Value())

	failed := rop.Failure[int]("no")
	assert.Equal(t, failed.ID(), FlatMap(failed, func(int) rop.Result[string, string] {
		t.Fatalf("must not be called")
		return inner
	}).ID())
}

func TestMapFailure(t *testing.T) {
	t.Parallel()

	out := MapFailure(rop.Failure[int]("bad"), func(e string) error { return errors.New(e + "!") })
	require.True(t, out.IsFailure())
	assert.EqualError(t, out.Err(), "bad!")

	ok := rop.Success[string](1)
	kept := MapFailure(ok, func(e string) error { t.Fatalf("must not be called"); return nil })
	assert.Equal(t, ok.ID(), kept.ID())
	assert.Equal(t, 1, kept.Value())
}

func TestOnFailure(t *testing.T) {
	t.Parallel()

	out := OnFailure(rop.Failure[int]("abc"), func(e string) int { return len(e) })
	require.True(t, out.IsSuccess())
	assert.Equal(t, 3, out.Value())

	ok := rop.Success[string](7)
	assert.Equal(t, ok.ID(), OnFailure(ok, func(string) int { return 0 }).ID())
}

func TestMapBoth(t *testing.T) {
	t.Parallel()

	onFail := func(e string) int { return len(e) }
	s := MapBoth(rop.Success[string](2), onFail, strconv.Itoa)
	assert.Equal(t, "2", s.Value())

	f := MapBoth(rop.Failure[int]("four"), onFail, strconv.Itoa)
	require.True(t, f.IsFailure())
	assert.Equal(t, 4, f.Err())
}

func TestMatch(t *testing.T) {
	t.Parallel()

	h := Handlers[string, int, string]{
		OnSuccess: func(v int) string { return "ok:" + strconv.Itoa(v) },
		OnFailure: func(e string) string { return "err:" + e },
	}
	assert.Equal(t, "ok:1", Match(rop.Success[string](1), h))
	assert.Equal(t, "err:x", Match(rop.Failure[int]("x"), h))
}

func TestMapWithDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 6, MapWithDefault(rop.Success[string](3), double, -1))
	assert.Equal(t, -1, MapWithDefault(rop.Failure[int]("x"), double, -1))
}

func TestRecover(t *testing.T) {
	t.Parallel()

	ok := rop.Success[string](1)
	assert.Equal(t, ok.ID(), Recover(ok, 9).ID())

	failed := rop.Failure[int]("x")
	recovered := Recover(failed, 9)
	require.True(t, recovered.IsSuccess())
	assert.Equal(t, 9, recovered.Value())
	assert.NotEqual(t, failed.ID(), recovered.ID())
}

func TestTap(t *testing.T) {
	t.Parallel()

	var seen int
	ok := rop.Success[string](5)
	out := Tap(ok, func(v int) { seen = v })
	assert.Equal(t, 5, seen)
	assert.Equal(t, ok.ID(), out.ID())

	failed := rop.Failure[int]("x")
	assert.Equal(t, failed.ID(), Tap(failed, mustNotCall[int](t)).ID())
}

func TestTapFailure(t *testing.T) {
	t.Parallel()

	var seen string
	failed := rop.Failure[int]("x")
	out := TapFailure(failed, func(e string) { seen = e })
	assert.Equal(t, "x", seen)
	assert.Equal(t, failed.ID(), out.ID())

	ok := rop.Success[string](1)
	assert.Equal(t, ok.ID(), TapFailure(ok, mustNotCall[string](t)).ID())
}

func TestTapBoth(t *testing.T) {
	t.Parallel()

	var calls []string
	onFail := func(e string) { calls = append(calls, "f:"+e) }
	onOk := func(v int) { calls = append(calls, "s:"+strconv.Itoa(v)) }

	TapBoth(rop.Success[string](1), onFail, onOk)
	TapBoth(rop.Failure[int]("x"), onFail, onOk)
	assert.Equal(t, []string{"s:1", "f:x"}, calls)
}

func TestFilter(t *testing.T) {
	t.Parallel()

	positive := func(v int) bool { return v > 0 }

	ok := rop.Success[string](1)
	assert.Equal(t, ok.ID(), Filter(ok, positive, "neg").ID())

	rejected := Filter(rop.Success[string](-1), positive, "neg")
	require.True(t, rejected.IsFailure())
	assert.Equal(t, "neg", rejected.Err())

	failed := rop.Failure[int]("x")
	kept := Filter(failed, positive, "neg")
	assert.Equal(t, failed.ID(), kept.ID())
	assert.Equal(t, "x", kept.Err())
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "v", Merge(rop.Success[string]("v")))
	assert.Equal(t, "v", Merge(rop.Failure[string]("v")))

	v, e := Unwrap(rop.Failure[int]("e"))
	assert.Zero(t, v)
	assert.Equal(t, "e", e)
}

func TestUnwrapUnsafe(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, UnwrapUnsafe(rop.Success[error](1)))

	boom := errors.New("boom")
	assert.PanicsWithError(t, "boom", func() { UnwrapUnsafe(rop.Failure[int](boom)) })
	assert.PanicsWithValue(t, "raw", func() { UnwrapUnsafe(rop.Failure[int]("raw")) })
}

func TestUnwrapWithDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, UnwrapWithDefault(rop.Success[string](1), 0))
	assert.Equal(t, 0, UnwrapWithDefault(rop.Failure[int]("x"), 0))
}

func TestToPointerAndToValue(t *testing.T) {
	t.Parallel()

	p := ToPointer(rop.Success[string](3))
	require.NotNil(t, p)
	assert.Equal(t, 3, *p)
	assert.Nil(t, ToPointer(rop.Failure[int]("x")))

	v, ok := ToValue(rop.Success[string](3))
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = ToValue(rop.Failure[int]("x"))
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestSequence(t *testing.T) {
	t.Parallel()

	all := Sequence([]rop.Result[string, int]{rop.Success[string](1), rop.Success[string](2)})
	assert.Equal(t, []int{1, 2}, all.Value())

	first := rop.Failure[int]("first")
	mixed := Sequence([]rop.Result[string, int]{rop.Success[string](1), first, rop.Failure[int]("second")})
	require.True(t, mixed.IsFailure())
	assert.Equal(t, first.ID(), mixed.ID())
	assert.Equal(t, "first", mixed.Err())
}

func TestCollect(t *testing.T) {
	t.Parallel()

	a, b := errors.New("a"), errors.New("b")
	out := Collect([]rop.Result[error, int]{
		rop.Failure[int](a),
		rop.Success[error](1),
		rop.Failure[int](b),
	})
	require.True(t, out.IsFailure())
	assert.Equal(t, []error{a, b}, rop.GetErrors(out.Err()))

	ok := Collect([]rop.Result[error, int]{rop.Success[error](1)})
	assert.Equal(t, []int{1}, ok.Value())
}

func TestEmptyResultPassesThrough(t *testing.T) {
	t.Parallel()

	var empty rop.Result[error, int]
	fail := func(error) error { t.Fatalf("failure handler must not be called"); return nil }
	never := func(int) int { t.Fatalf("success handler must not be called"); return 0 }

	for name, out := range map[string]interface{ IsEmpty() bool }{
		"Map":        Map(empty, never),
		"FlatMap":    FlatMap(empty, func(int) rop.Result[error, string] { t.Fatalf("flatMap must not run"); return rop.Result[error, string]{} }),
		"MapFailure": MapFailure(empty, fail),
		"OnFailure":  OnFailure(empty, func(error) int { t.Fatalf("onFailure must not run"); return 0 }),
		"MapBoth":    MapBoth(empty, fail, never),
		"Recover":    Recover(empty, 5),
		"Tap":        Tap(empty, mustNotCall[int](t)),
		"TapFailure": TapFailure(empty, mustNotCall[error](t)),
		"TapBoth":    TapBoth(empty, mustNotCall[error](t), mustNotCall[int](t)),
		"Filter":     Filter(empty, func(int) bool { return false }, errors.New("x")),
		"Sequence":   Sequence([]rop.Result[error, int]{rop.Success[error](1), empty}),
		"Collect":    Collect([]rop.Result[error, int]{rop.Failure[int](errors.New("x")), empty}),
	} {
		assert.True(t, out.IsEmpty(), name)
	}

	assert.Equal(t, "Result.Empty", Map(empty, never).String())
	assert.Empty(t, Match(empty, Handlers[error, int, string]{
		OnSuccess: func(int) string { return "success" },
		OnFailure: func(error) string { return "failure" },
	}))
	assert.Equal(t, 7, MapWithDefault(empty, never, 7))
	assert.Equal(t, 7, UnwrapWithDefault(empty, 7))
	assert.Nil(t, ToPointer(empty))
	assert.PanicsWithValue(t, rop.ErrEmpty, func() { UnwrapUnsafe(empty) })
}
