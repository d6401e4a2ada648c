package hookproof

import (
	"errors"

	"github.com/hookproof/hookproof/signature"
)

// ErrUnsupportedScheme is returned when a caller configures a signing scheme
// other than the sole supported variant. Fix the caller; this is never a
// property of the inbound request.
var ErrUnsupportedScheme = signature.ErrUnsupportedScheme

// Sentinel errors returned by verification.
var (
	// ErrMissingTimestamp is returned when the header is absent, garbled,
	// or carries no parsable t item.
	ErrMissingTimestamp = errors.New("hookproof: no timestamp in signature header")

	// ErrNoSignatures is returned when the header carries no signature for
	// the expected scheme.
	ErrNoSignatures = errors.New("hookproof: no signatures for expected scheme")

	// ErrSignatureMismatch is returned when no candidate signature matches
	// the expected signature.
	ErrSignatureMismatch = errors.New("hookproof: no matching signature")

	// ErrStaleTimestamp is returned when the signed timestamp is older than
	// the tolerance window.
	ErrStaleTimestamp = errors.New("hookproof: timestamp outside tolerance window")

	// ErrReplay is returned when the replay guard has already accepted an
	// identical delivery within the tolerance window.
	ErrReplay = errors.New("hookproof: delivery already accepted")

	// ErrStoreClosed is returned when a store operation is attempted after
	// the store is closed.
	ErrStoreClosed = errors.New("hookproof: store is closed")
)
