package generator

import (
	"errors"

	"github.com/passforge/passforge-go/internal/secrand"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	MinLength = 8
	MaxLength = 128
)

var (
	ErrLengthTooShort     = errors.New("password length must be at least 8")
	ErrLengthTooLong      = errors.New("password length must be at most 128")
	ErrNoCharacterTypes   = errors.New("at least one character type must be selected")
	ErrLengthInsufficient = errors.New("password length must be at least equal to the number of selected character types")
)

// Options configures password generation.
type Options struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Digits    bool
	Symbols   bool
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() Options {
	return Options{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// Builder assembles passwords from a secure random source. It holds no
// mutable state, so a single Builder may serve concurrent callers.
type Builder struct {
	src *secrand.Source
}

// New creates a Builder drawing from src.
func New(src *secrand.Source) *Builder {
	return &Builder{src: src}
}

// Generate creates a random password satisfying opts. Every selected
// character type contributes at least one character; positions are then
// randomized with a Fisher-Yates shuffle so the guaranteed characters are
// not front-loaded.
func (b *Builder) Generate(opts Options) (string, error) {
	if opts.Length < MinLength {
		return "", ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}

	// Pool order is fixed (uppercase, lowercase, digits, symbols) so the
	// mandatory one-per-type pass is deterministic in which set it draws from.
	var pool string
	var requiredSets []string

	if opts.Uppercase {
		pool += uppercaseChars
		requiredSets = append(requiredSets, uppercaseChars)
	}
	if opts.Lowercase {
		pool += lowercaseChars
		requiredSets = append(requiredSets, lowercaseChars)
	}
	if opts.Digits {
		pool += digitChars
		requiredSets = append(requiredSets, digitChars)
	}
	if opts.Symbols {
		pool += symbolChars
		requiredSets = append(requiredSets, symbolChars)
	}

	if len(requiredSets) == 0 {
		return "", ErrNoCharacterTypes
	}
	if opts.Length < len(requiredSets) {
		return "", ErrLengthInsufficient
	}

	result := make([]byte, opts.Length)

	for i, charset := range requiredSets {
		ch, err := b.randChar(charset)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	for i := len(requiredSets); i < opts.Length; i++ {
		ch, err := b.randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := b.shuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

func (b *Builder) randChar(charset string) (byte, error) {
	n, err := b.src.Int(0, len(charset)-1)
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

// shuffle permutes data in place using Fisher-Yates with secure swap indices.
func (b *Builder) shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := b.src.Int(0, i)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
