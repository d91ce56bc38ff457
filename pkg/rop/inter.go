package rop

import (
	"time"

	"github.com/google/uuid"
)

// Identified is implemented by every Result regardless of its type parameters.
type Identified interface {
	// ID of the Result; shared by Results passed through a short-circuit
	ID() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Variant reports which side of the sum a Result is on
type Variant interface {
	Identified
	// IsSuccess returns true if the Result is a Success
	IsSuccess() bool
	// IsFailure returns true if the Result is a Failure
	IsFailure() bool
	String() string

	variant() variant
}

// IsResult reports whether v is a Success or a Failure of any type parameters.
func IsResult(v any) bool {
	if IsNil(v) {
		return false
	}
	r, ok := v.(Variant)
	return ok && r.variant() != noTag
}
