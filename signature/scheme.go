package signature

// Scheme identifies the convention a signature was constructed with.
// The tag appears as the item key in signature headers, so older verifiers
// keep working if a future scheme changes the algorithm.
type Scheme string

// SchemeV1 is the sole supported signing scheme: lowercase-hex HMAC-SHA256
// over "{timestamp}.{payload}".
const SchemeV1 Scheme = "v1"

// Supported reports whether this package implements the scheme.
func (s Scheme) Supported() bool {
	return s == SchemeV1
}

// String returns the scheme tag as it appears in headers.
func (s Scheme) String() string {
	return string(s)
}
