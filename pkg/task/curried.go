package task

import "time"

func Mapping[In, Out any](mapper func(In) Out) func(Task[In]) Task[Out] {
	return func(t Task[In]) Task[Out] {
		return Map(t, mapper)
	}
}

func FlatMapping[In, Out any](mapper func(In) Task[Out]) func(Task[In]) Task[Out] {
	return func(t Task[In]) Task[Out] {
		return FlatMap(t, mapper)
	}
}

func Tapping[V any](fn func(V)) func(Task[V]) Task[V] {
	return func(t Task[V]) Task[V] {
		return Tap(t, fn)
	}
}

func Catching[V any](handler func(error) (V, error)) func(Task[V]) Task[V] {
	return func(t Task[V]) Task[V] {
		return Catch(t, handler)
	}
}

func Delaying[V any](d time.Duration) func(Task[V]) Task[V] {
	return func(t Task[V]) Task[V] {
		return Delay(t, d)
	}
}
