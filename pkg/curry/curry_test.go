package curry

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedCurry(t *testing.T) {
	t.Parallel()

	sub := func(a, b int) int { return a - b }
	assert.Equal(t, 7, Curry2(sub)(10)(3))
	assert.Equal(t, 7, Uncurry2(Curry2(sub))(10, 3))

	join := func(a, b, c string) string { return a + b + c }
	assert.Equal(t, "xyz", Curry3(join)("x")("y")("z"))
	assert.Equal(t, "xyz", Partial3(join, "x")("y", "z"))
	assert.Equal(t, "xyz", Partial3x2(join, "x", "y")("z"))
	assert.Equal(t, "abab", Partial2(strings.Repeat, "ab")(2))

	sum4 := func(a, b, c, d int) int { return a + b + c + d }
	assert.Equal(t, 10, Curry4(sum4)(1)(2)(3)(4))
}

func TestCurry_OneAtATime(t *testing.T) {
	t.Parallel()

	add3 := Curry(func(a, b, c int) int { return a + b + c })

	step1, ok := add3(1).(Fn)
	require.True(t, ok)
	step2, ok := step1(2).(Fn)
	require.True(t, ok)
	assert.Equal(t, 6, step2(3))
}

func TestCurry_ManyPerStep(t *testing.T) {
	t.Parallel()

	add3 := Curry(func(a, b, c int) int { return a + b + c })

	assert.Equal(t, 6, add3(1, 2, 3))
	assert.Equal(t, 6, add3(1, 2).(Fn)(3))
	assert.Equal(t, 6, add3(1).(Fn)(2, 3))
}

func TestCurry_PartialsAreIndependent(t *testing.T) {
	t.Parallel()

	add := Curry(func(a, b int) int { return a + b })
	plusOne := add(1).(Fn)
	plusTen := add(10).(Fn)

	assert.Equal(t, 2, plusOne(1))
	assert.Equal(t, 11, plusTen(1))
	assert.Equal(t, 3, plusOne(2))
}

func TestCurry_ExplicitArity(t *testing.T) {
	t.Parallel()

	calls := 0
	greet := Curry(func(name, punct string) string {
		calls++
		return "hi " + name + punct
	}, 1)

	assert.Equal(t, "hi bob", greet("bob"))
	assert.Equal(t, "hi bob!", greet("bob", "!"))
	assert.Equal(t, 2, calls)
}

func TestCurry_Variadic(t *testing.T) {
	t.Parallel()

	sum := func(base int, rest ...int) int {
		for _, r := range rest {
			base += r
		}
		return base
	}

	assert.Equal(t, 1, Curry(sum)(1))
	assert.Equal(t, 6, Curry(sum)(1, 2, 3))

	three := Curry(sum, 3)
	assert.Equal(t, 6, three(1).(Fn)(2).(Fn)(3))
}

func TestCurry_ExtraArgumentsDropped(t *testing.T) {
	t.Parallel()

	double := Curry(func(a int) int { return a * 2 })
	assert.Equal(t, 4, double(2, 99, "ignored"))
}

func TestCurry_Coercion(t *testing.T) {
	t.Parallel()

	repeat := Curry(strings.Repeat)
	assert.Equal(t, "abab", repeat("ab", "2"))

	label := Curry(func(n int64, s string, d time.Duration, ok bool) string {
		return fmt.Sprintf("%s:%s:%t:%d", s, d, ok, n)
	})
	assert.Equal(t, "7:1s:true:3", label(3, 7, "1s", "true"))

	assert.Equal(t, int8(12), Curry(func(a int8) int8 { return a })("12"))
	assert.Equal(t, uint8(255), Curry(func(a uint8) uint8 { return a })(255))
	assert.Equal(t, 3, Curry(func(a int) int { return a })(3.0))
	assert.Equal(t, 1.5, Curry(func(a float64) float64 { return a })(float32(1.5)))
}

func TestCurry_NumbersNeverNarrow(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Curry(func(a int8) int8 { return a })(300) })
	assert.Panics(t, func() { Curry(func(a int8) int8 { return a })("300") })
	assert.Panics(t, func() { Curry(func(a uint) uint { return a })(-1) })
	assert.Panics(t, func() { Curry(func(a uint) uint { return a })("-1") })
	assert.Panics(t, func() { Curry(func(a int) int { return a })(3.9) })
	assert.Panics(t, func() { Curry(func(a int64) int64 { return a })(uint64(1 << 63)) })
	assert.Panics(t, func() { Curry(func(a float32) float32 { return a })(1e40) })
}

func TestCurry_Results(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Curry(func(int) {})(1))
	assert.Equal(t, []any{1, "a"}, Curry(func(n int) (int, string) { return n, "a" })(1))
	assert.Nil(t, Curry(func(p *int) *int { return p })(nil).(*int))
}

func TestCurry_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Curry(42) })
	assert.Panics(t, func() { Curry(func(a int) int { return a }, 2) })
	assert.Panics(t, func() { Curry(func(a []int) int { return len(a) })(struct{}{}) })
}
