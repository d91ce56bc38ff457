package taskresult

import "time"

func Mapping[In, Out any](mapper func(In) Out) func(TaskResult[In]) TaskResult[Out] {
	return func(tr TaskResult[In]) TaskResult[Out] {
		return Map(tr, mapper)
	}
}

func FailureMapping[V any](mapper func(error) error) func(TaskResult[V]) TaskResult[V] {
	return func(tr TaskResult[V]) TaskResult[V] {
		return MapFailure(tr, mapper)
	}
}

func BothMapping[In, Out any](failureMapper func(error) error, successMapper func(In) Out) func(TaskResult[In]) TaskResult[Out] {
	return func(tr TaskResult[In]) TaskResult[Out] {
		return MapBoth(tr, failureMapper, successMapper)
	}
}

func Tapping[V any](fn func(V)) func(TaskResult[V]) TaskResult[V] {
	return func(tr TaskResult[V]) TaskResult[V] {
		return Tap(tr, fn)
	}
}

func FailureTapping[V any](fn func(error)) func(TaskResult[V]) TaskResult[V] {
	return func(tr TaskResult[V]) TaskResult[V] {
		return TapFailure(tr, fn)
	}
}

func FlatMapping[In, Out any](mapper func(In) TaskResult[Out]) func(TaskResult[In]) TaskResult[Out] {
	return func(tr TaskResult[In]) TaskResult[Out] {
		return FlatMap(tr, mapper)
	}
}

func Recovering[V any](handler func(error) V) func(TaskResult[V]) TaskResult[V] {
	return func(tr TaskResult[V]) TaskResult[V] {
		return OnFailure(tr, handler)
	}
}

func Delaying[V any](d time.Duration) func(TaskResult[V]) TaskResult[V] {
	return func(tr TaskResult[V]) TaskResult[V] {
		return Delay(tr, d)
	}
}
