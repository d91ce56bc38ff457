package pipe

import "github.com/go-logr/logr"

func Identity[T any](value T) T {
	return value
}

// Constant returns a function that always returns value.
func Constant[T any](value T) func() T {
	return func() T {
		return value
	}
}

func Noop() {}

// Sniff returns a pass-through step that logs every value flowing by.
func Sniff[T any](log logr.Logger) func(T) T {
	return func(value T) T {
		log.Info("sniff", "value", value)
		return value
	}
}

// SniffTag is Sniff with a tag attached to each line.
func SniffTag[T any](log logr.Logger, tag string) func(T) T {
	return Sniff[T](log.WithValues("tag", tag))
}
