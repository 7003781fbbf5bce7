package service

import (
	"testing"

	"github.com/passforge/passforge-go/internal/generator"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/secrand"
)

func boolPtr(b bool) *bool { return &b }

func newTestService() *GeneratorService {
	return NewGeneratorService(generator.New(secrand.New()))
}

func TestGenerate_Defaults(t *testing.T) {
	svc := newTestService()
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("expected length 16, got %d", resp.Length)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected password length 16, got %d", len(resp.Password))
	}
	if resp.Strength != string(generator.LabelStrong) {
		t.Errorf("expected default password to score strong, got %s (%.1f bits)", resp.Strength, resp.EntropyBits)
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := newTestService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    32,
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
		}
	}
}

func TestGenerate_EntropyReflectsOutput(t *testing.T) {
	svc := newTestService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    20,
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(true),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 20 lowercase chars: log2(26)*20 = 94.0 bits, but not all classes present.
	if resp.EntropyBits < 93 || resp.EntropyBits > 95 {
		t.Errorf("unexpected entropy %.2f for 20 lowercase chars", resp.EntropyBits)
	}
	if resp.Strength != string(generator.LabelMedium) {
		t.Errorf("expected medium (high entropy, single class), got %s", resp.Strength)
	}
}

func TestGenerate_LengthTooShort(t *testing.T) {
	svc := newTestService()
	_, err := svc.Generate(model.GenerateRequest{Length: 3})
	if err == nil {
		t.Fatal("expected error for length too short")
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	svc := newTestService()
	_, err := svc.Generate(model.GenerateRequest{Length: 200})
	if err == nil {
		t.Fatal("expected error for length too long")
	}
}

func TestGenerate_NoCharacterTypes(t *testing.T) {
	svc := newTestService()
	_, err := svc.Generate(model.GenerateRequest{
		Length:    16,
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err == nil {
		t.Fatal("expected error when no character types selected")
	}
}

func TestEstimateStrength(t *testing.T) {
	svc := newTestService()
	resp := svc.EstimateStrength(model.StrengthRequest{Password: "abcdefgh"})
	if resp.Length != 8 {
		t.Errorf("expected length 8, got %d", resp.Length)
	}
	if resp.Strength != string(generator.LabelWeak) {
		t.Errorf("expected weak for lowercase-only 8 chars, got %s", resp.Strength)
	}
	if resp.EntropyBits < 37 || resp.EntropyBits > 38 {
		t.Errorf("expected ~37.6 bits, got %.2f", resp.EntropyBits)
	}
}
