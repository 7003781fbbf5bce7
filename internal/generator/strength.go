package generator

import "math"

// Class sizes used for entropy scoring. The symbol alphabet is assumed to
// span 33 printable specials, wider than the set this package emits.
const (
	uppercaseSize = 26
	lowercaseSize = 26
	digitSize     = 10
	symbolSize    = 33
)

// Label is a coarse strength bucket.
type Label string

const (
	LabelWeak   Label = "weak"
	LabelMedium Label = "medium"
	LabelStrong Label = "strong"
)

// Strength is an entropy estimate for a password.
type Strength struct {
	EntropyBits float64
	Label       Label
}

// EstimateStrength scores a password by the character classes actually
// present in it, not by whatever options produced it. Entropy is
// log2(charset size) * length, assuming uniform random selection.
func EstimateStrength(password string) Strength {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	length := 0

	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
		length++
	}

	charset := 0
	if hasUpper {
		charset += uppercaseSize
	}
	if hasLower {
		charset += lowercaseSize
	}
	if hasDigit {
		charset += digitSize
	}
	if hasSymbol {
		charset += symbolSize
	}

	if charset == 0 {
		return Strength{EntropyBits: 0, Label: LabelWeak}
	}

	bits := math.Log2(float64(charset)) * float64(length)

	allClasses := hasUpper && hasLower && hasDigit && hasSymbol
	var label Label
	switch {
	case bits < 40 || length < 8:
		label = LabelWeak
	case bits >= 80 && allClasses:
		label = LabelStrong
	default:
		label = LabelMedium
	}

	return Strength{EntropyBits: bits, Label: label}
}
