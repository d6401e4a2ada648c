package hookproof

import (
	"time"

	"github.com/hookproof/hookproof/signature"
)

// DefaultTolerance is the default freshness window for signed timestamps.
const DefaultTolerance = 5 * time.Minute

// Config holds the configuration for a Verifier.
type Config struct {
	// Tolerance is the maximum accepted age of a signed timestamp.
	// Zero or negative disables the freshness check entirely.
	Tolerance time.Duration

	// Scheme is the signing scheme expected in signature headers.
	Scheme signature.Scheme
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Tolerance: DefaultTolerance,
		Scheme:    signature.SchemeV1,
	}
}
