package expand

import "math"

// NoNumber is the label number reported for labels that carry no digits.
// It is negative, so it never falls inside a configured Range.
const NoNumber = -1

// ExtractLabelNumber concatenates every ASCII decimal digit in label, left
// to right, and parses the result as a base-10 integer. Signs and decimal
// points are not special: "P-1.5" yields 15 and "P015" yields 15.
//
// Labels without digits return NoNumber. Digit runs too long for an int
// saturate at math.MaxInt rather than wrapping.
func ExtractLabelNumber(label string) int {
	n := 0
	seen := false
	for i := 0; i < len(label); i++ {
		c := label[i]
		if c < '0' || c > '9' {
			continue
		}
		seen = true
		d := int(c - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
			continue
		}
		n = n*10 + d
	}
	if !seen {
		return NoNumber
	}
	return n
}
