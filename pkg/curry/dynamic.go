package curry

import (
	"math"
	"reflect"
	"slices"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/thoas/go-funk"
)

// Fn is a curried function. Calling it with fewer arguments than its arity
// returns another Fn holding the arguments seen so far; once the arity is
// reached the wrapped function runs and its results are returned: nil for no
// results, the value itself for one, []any for more.
type Fn func(args ...any) any

type curried struct {
	fn    reflect.Value
	arity int
	args  []any
}

var durationType = reflect.TypeOf(time.Duration(0))

// Curry wraps fn so that it can be applied one or more arguments at a time.
// The arity defaults to the number of declared parameters, not counting a
// variadic tail. An explicit arity may be smaller than the parameter count, in
// which case the missing parameters receive their zero value, or larger for
// variadic functions, in which case the surplus feeds the variadic tail.
// Arguments past the declared parameters of a non-variadic function are
// dropped.
//
// Arguments are passed through when assignable, coerced with spf13/cast
// between strings, numbers, bools and durations, or converted by reflection.
// Numbers are never narrowed: 300 for an int8, -1 for a uint or 3.9 for an
// int panic like any other mismatch.
// Curry panics when fn is not a function or the arity cannot be satisfied.
func Curry(fn any, arity ...int) Fn {
	if !funk.IsFunction(fn) {
		panic(errors.Errorf("curry: expected a function, got %T", fn))
	}

	v := reflect.ValueOf(fn)
	typ := v.Type()

	n := typ.NumIn()
	if typ.IsVariadic() {
		n--
	}
	if len(arity) > 0 {
		if arity[0] < 0 || (!typ.IsVariadic() && arity[0] > typ.NumIn()) {
			panic(errors.Errorf("curry: arity %d does not fit %s", arity[0], typ))
		}
		n = arity[0]
	}

	return curried{fn: v, arity: n}.call
}

func (c curried) call(args ...any) any {
	acc := append(slices.Clone(c.args), args...)
	if len(acc) < c.arity {
		return Fn(curried{fn: c.fn, arity: c.arity, args: acc}.call)
	}
	return c.invoke(acc)
}

func (c curried) invoke(args []any) any {
	typ := c.fn.Type()

	fixed := typ.NumIn()
	if typ.IsVariadic() {
		fixed--
	}

	in := make([]reflect.Value, 0, max(fixed, len(args)))
	for i := 0; i < fixed; i++ {
		if i < len(args) {
			in = append(in, convert(args[i], typ.In(i)))
		} else {
			in = append(in, reflect.Zero(typ.In(i)))
		}
	}
	if typ.IsVariadic() && len(args) > fixed {
		elem := typ.In(fixed).Elem()
		for _, a := range args[fixed:] {
			in = append(in, convert(a, elem))
		}
	}

	out := c.fn.Call(in)
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0].Interface()
	default:
		res := make([]any, len(out))
		for i, o := range out {
			res[i] = o.Interface()
		}
		return res
	}
}

func convert(arg any, to reflect.Type) reflect.Value {
	if arg == nil {
		return reflect.Zero(to)
	}

	v := reflect.ValueOf(arg)
	if v.Type().AssignableTo(to) {
		return v
	}

	coerced, ok, err := coerce(v, to)
	if err != nil {
		panic(errors.Wrapf(err, "curry: cannot use %v (%T) as %s", arg, arg, to))
	}
	if ok {
		return coerced
	}
	if v.Type().ConvertibleTo(to) {
		return v.Convert(to)
	}
	panic(errors.Errorf("curry: cannot use %T as %s", arg, to))
}

// coerce handles targets spf13/cast knows about. Numeric targets never
// narrow: a value that does not fit, or a fraction headed for an integer, is
// an error rather than a truncation.
func coerce(v reflect.Value, to reflect.Type) (reflect.Value, bool, error) {
	arg := v.Interface()

	var (
		out any
		err error
	)

	switch {
	case to == durationType:
		out, err = cast.ToDurationE(arg)
	case to.Kind() == reflect.String:
		out, err = cast.ToStringE(arg)
	case to.Kind() == reflect.Bool:
		out, err = cast.ToBoolE(arg)
	case isNumber(to.Kind()):
		if isNumber(v.Kind()) {
			n, err := convertNumber(v, to)
			return n, err == nil, err
		}
		switch {
		case isInt(to.Kind()):
			out, err = cast.ToInt64E(arg)
		case isUint(to.Kind()):
			out, err = cast.ToUint64E(arg)
		default:
			out, err = cast.ToFloat64E(arg)
		}
		if err != nil {
			return reflect.Value{}, false, err
		}
		n, err := convertNumber(reflect.ValueOf(out), to)
		return n, err == nil, err
	default:
		return reflect.Value{}, false, nil
	}

	if err != nil {
		return reflect.Value{}, false, nil
	}
	return reflect.ValueOf(out).Convert(to), true, nil
}

// convertNumber converts between numeric kinds, failing instead of losing
// the value.
func convertNumber(v reflect.Value, to reflect.Type) (reflect.Value, error) {
	target := reflect.Zero(to)

	switch {
	case isInt(to.Kind()):
		var n int64
		switch {
		case isInt(v.Kind()):
			n = v.Int()
		case isUint(v.Kind()):
			if v.Uint() > math.MaxInt64 {
				return reflect.Value{}, errors.Errorf("%d overflows %s", v.Uint(), to)
			}
			n = int64(v.Uint())
		default:
			f := v.Float()
			if f != math.Trunc(f) {
				return reflect.Value{}, errors.Errorf("%v is not an integer", f)
			}
			if f < math.MinInt64 || f >= math.MaxInt64 {
				return reflect.Value{}, errors.Errorf("%v overflows %s", f, to)
			}
			n = int64(f)
		}
		if target.OverflowInt(n) {
			return reflect.Value{}, errors.Errorf("%d overflows %s", n, to)
		}
		return reflect.ValueOf(n).Convert(to), nil

	case isUint(to.Kind()):
		var n uint64
		switch {
		case isInt(v.Kind()):
			if v.Int() < 0 {
				return reflect.Value{}, errors.Errorf("%d is negative", v.Int())
			}
			n = uint64(v.Int())
		case isUint(v.Kind()):
			n = v.Uint()
		default:
			f := v.Float()
			if f != math.Trunc(f) {
				return reflect.Value{}, errors.Errorf("%v is not an integer", f)
			}
			if f < 0 || f >= math.MaxUint64 {
				return reflect.Value{}, errors.Errorf("%v overflows %s", f, to)
			}
			n = uint64(f)
		}
		if target.OverflowUint(n) {
			return reflect.Value{}, errors.Errorf("%d overflows %s", n, to)
		}
		return reflect.ValueOf(n).Convert(to), nil

	default:
		var f float64
		switch {
		case isInt(v.Kind()):
			f = float64(v.Int())
		case isUint(v.Kind()):
			f = float64(v.Uint())
		default:
			f = v.Float()
		}
		if target.OverflowFloat(f) {
			return reflect.Value{}, errors.Errorf("%v overflows %s", f, to)
		}
		return reflect.ValueOf(f).Convert(to), nil
	}
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isNumber(k reflect.Kind) bool {
	return isInt(k) || isUint(k) || k == reflect.Float32 || k == reflect.Float64
}
