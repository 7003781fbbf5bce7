package service

import (
	"github.com/passforge/passforge-go/internal/generator"
	"github.com/passforge/passforge-go/internal/model"
)

// GeneratorService handles password generation and strength estimation
// business logic.
type GeneratorService struct {
	builder *generator.Builder
}

// NewGeneratorService creates a GeneratorService on top of the given builder.
func NewGeneratorService(b *generator.Builder) *GeneratorService {
	return &GeneratorService{builder: b}
}

// Generate produces a password based on the given request and attaches the
// strength estimate of the actual output.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := generator.Options{
		Length:    req.Length,
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Digits:    boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}

	if opts.Length == 0 {
		opts.Length = 16
	}

	password, err := s.builder.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	strength := generator.EstimateStrength(password)

	return model.GenerateResponse{
		Password:    password,
		Length:      len(password),
		EntropyBits: strength.EntropyBits,
		Strength:    string(strength.Label),
	}, nil
}

// EstimateStrength scores a caller-supplied password.
func (s *GeneratorService) EstimateStrength(req model.StrengthRequest) model.StrengthResponse {
	strength := generator.EstimateStrength(req.Password)

	return model.StrengthResponse{
		Length:      len(req.Password),
		EntropyBits: strength.EntropyBits,
		Strength:    string(strength.Label),
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
