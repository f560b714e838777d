package address

import "strings"

const (
	segmentCount = 4

	blockIndex      = 0
	streetIndex     = 1
	unitIndex       = 2
	postalCodeIndex = 3
)

// lineTerminators are the characters the "." in ValidationPattern refuses to match.
const lineTerminators = "\n\r\u0085\u2028\u2029"

// IsValidAddress reports whether candidate has the BLOCK, STREET, UNIT, POSTAL_CODE
// shape: four non-empty runs separated by commas. It accepts exactly the strings
// ValidationPattern matches in full, so a run may itself contain commas
// ("a,,b,c,d" is valid). Callers trim before calling.
func IsValidAddress(candidate string) bool {
	if strings.ContainsAny(candidate, lineTerminators) {
		return false
	}

	tokens := strings.Split(candidate, ",")

	// Each of the first three runs takes the shortest non-empty prefix of the
	// remaining tokens: one token, or an empty token plus the comma after it.
	next := 0
	for run := 0; run < segmentCount-1; run++ {
		if next >= len(tokens) {
			return false
		}
		if tokens[next] == "" {
			next++
		}
		next++
	}
	if next >= len(tokens) {
		return false
	}

	// Whatever is left is the last run.
	return next < len(tokens)-1 || tokens[next] != ""
}

// Segments splits a trimmed address on every comma. Trailing empty segments are
// dropped, so "a,b,c,," yields three segments and cannot build an Address even
// though it passes IsValidAddress.
func Segments(trimmed string) []string {
	parts := strings.Split(trimmed, ",")
	end := len(parts)
	for end > 0 && parts[end-1] == "" {
		end--
	}
	return parts[:end]
}

// HasOverflow reports whether trimmed splits into more than four segments.
// New discards the extra ones. Trailing empty segments do not count, so
// "a,b,c,d," has no overflow.
func HasOverflow(trimmed string) bool {
	return len(Segments(trimmed)) > segmentCount
}

// trim removes leading and trailing spaces and ASCII control characters.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r <= ' '
	})
}
