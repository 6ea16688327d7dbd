package draft

import "github.com/pkg/errors"

var (
	// ErrFixedCollection is returned when add/remove targets a
	// fixed-cardinality collection (gallery, construction updates).
	// A hard error, not a silent no-op.
	ErrFixedCollection = errors.New("collection has a fixed number of items")

	ErrItemNotFound      = errors.New("collection item not found")
	ErrUnknownField      = errors.New("unknown draft field")
	ErrUnknownCollection = errors.New("unknown draft collection")
	ErrUnknownSlot       = errors.New("unknown image slot")

	// ErrIncomplete blocks submission and forward navigation while a
	// section validator fails.
	ErrIncomplete = errors.New("all sections must be complete")

	// ErrSubmitInFlight rejects a second submission while one is
	// already on the wire. There is no cancellation and no retry.
	ErrSubmitInFlight = errors.New("a submission is already in progress")
)
