package lite

import (
	"github.com/ib-77/excelsia/pkg/rop"
	"github.com/ib-77/excelsia/pkg/rop/solo"
)

func Map[E, In, Out any](onSuccess func(r In) Out) func(input rop.Result[E, In]) rop.Result[E, Out] {
	return func(input rop.Result[E, In]) rop.Result[E, Out] {
		return solo.Map(input, onSuccess)
	}
}

func FlatMap[E, In, Out any](onSuccess func(r In) rop.Result[E, Out]) func(input rop.Result[E, In]) rop.Result[E, Out] {
	return func(input rop.Result[E, In]) rop.Result[E, Out] {
		return solo.FlatMap(input, onSuccess)
	}
}

func MapFailure[V, E, F any](onFailure func(err E) F) func(input rop.Result[E, V]) rop.Result[F, V] {
	return func(input rop.Result[E, V]) rop.Result[F, V] {
		return solo.MapFailure(input, onFailure)
	}
}

func OnFailure[E, V any](handler func(err E) V) func(input rop.Result[E, V]) rop.Result[E, V] {
	return func(input rop.Result[E, V]) rop.Result[E, V] {
		return solo.OnFailure(input, handler)
	}
}

func MapBoth[E, F, In, Out any](
	onFailure func(err E) F,
	onSuccess func(r In) Out) func(input rop.Result[E, In]) rop.Result[F, Out] {
	return func(input rop.Result[E, In]) rop.Result[F, Out] {
		return solo.MapBoth(input, onFailure, onSuccess)
	}
}

func Match[E, V, Out any](handlers solo.Handlers[E, V, Out]) func(input rop.Result[E, V]) Out {
	return func(input rop.Result[E, V]) Out {
		return solo.Match(input, handlers)
	}
}

func MapWithDefault[E, In, Out any](onSuccess func(r In) Out, defaultValue Out) func(input rop.Result[E, In]) Out {
	return func(input rop.Result[E, In]) Out {
		return solo.MapWithDefault(input, onSuccess, defaultValue)
	}
}

func Recover[E, V any](value V) func(input rop.Result[E, V]) rop.Result[E, V] {
	return func(input rop.Result[E, V]) rop.Result[E, V] {
		return solo.Recover(input, value)
	}
}

func Tap[E, V any](onSuccess func(r V)) func(input rop.Result[E, V]) rop.Result[E, V] {
	return func(input rop.Result[E, V]) rop.Result[E, V] {
		return solo.Tap(input, onSuccess)
	}
}

func TapFailure[V, E any](onFailure func(err E)) func(input rop.Result[E, V]) rop.Result[E, V] {
	return func(input rop.Result[E, V]) rop.Result[E, V] {
		return solo.TapFailure(input, onFailure)
	}
}

func TapBoth[E, V any](onFailure func(err E), onSuccess func(r V)) func(input rop.Result[E, V]) rop.Result[E, V] {
	return func(input rop.Result[E, V]) rop.Result[E, V] {
		return solo.TapBoth(input, onFailure, onSuccess)
	}
}

func Filter[E, V any](predicate func(r V) bool, failValue E) func(input rop.Result[E, V]) rop.Result[E, V] {
	return func(input rop.Result[E, V]) rop.Result[E, V] {
		return solo.Filter(input, predicate, failValue)
	}
}

func UnwrapWithDefault[E, V any](fallback V) func(input rop.Result[E, V]) V {
	return func(input rop.Result[E, V]) V {
		return solo.UnwrapWithDefault(input, fallback)
	}
}
