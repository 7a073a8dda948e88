package scrub

import "strings"

// KeyColumn is the header name of the column whose values are matched
// and deduplicated. It is a fixed design constant, not a user option.
const KeyColumn = "email"

// NormalizeKey converts a raw field value into its canonical comparison
// form: boundary whitespace trimmed, lowercased. Internal whitespace is
// preserved. The second return value is false when the result is empty,
// meaning the record has no usable key.
func NormalizeKey(raw string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return "", false
	}
	return key, true
}
