package signature

// ConstantTimeEqual reports whether a and b are equal without revealing,
// through timing, where they first differ. Inputs of unequal length compare
// unequal immediately; the scheme does not hide signature length, only
// content. For equal lengths every byte is examined and differences
// accumulate into a single flag, with no early exit.
//
// All signature comparisons in this module go through this function.
func ConstantTimeEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	var diff byte
	for i := 0; i < len(a); i++ {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}
