package signature

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupportedScheme is returned when a caller requests a signing scheme
// this package does not implement. This indicates a misconfigured caller,
// not a malformed request.
var ErrUnsupportedScheme = errors.New("signature: unsupported signing scheme")

// SignedHeader is the decoded form of a signature header.
type SignedHeader struct {
	// Timestamp is the signed unix timestamp in seconds. Only meaningful
	// when HasTimestamp is true.
	Timestamp int64

	// HasTimestamp reports whether the header carried a parsable t item.
	HasTimestamp bool

	// Signatures holds the candidate signatures for the requested scheme,
	// in header order. More than one entry is normal during a secret
	// rotation window.
	Signatures []string
}

// ParseHeader decodes a signature header of the form
//
//	t=<unix-seconds>,v1=<hex>[,v1=<hex>...]
//
// for the given scheme. An empty header yields a zero SignedHeader rather
// than an error; the verifier rejects it downstream. Items are processed
// left to right: unknown keys and malformed items are skipped, a repeated
// t item is last-write-wins, and repeated scheme items accumulate.
func ParseHeader(header string, scheme Scheme) (SignedHeader, error) {
	if !scheme.Supported() {
		return SignedHeader{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}

	var sh SignedHeader
	if header == "" {
		return sh, nil
	}

	for _, item := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(item, "=")
		if !ok {
			continue
		}
		switch key {
		case "t":
			ts, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				continue
			}
			sh.Timestamp = ts
			sh.HasTimestamp = true
		case string(scheme):
			sh.Signatures = append(sh.Signatures, value)
		}
	}

	return sh, nil
}
