package pattern

import (
	"strings"
	"testing"
)

func TestGammaDictDefaultsToOne(t *testing.T) {
	d := NewGammaDict()
	g := d.Gamma(Feature{Family: FamilyAtari, Payload: "ko"})
	if g != defaultGamma {
		t.Fatalf("expected default gamma %g for unseen feature, got %g", defaultGamma, g)
	}
}

func TestGammaDictAddAndLookup(t *testing.T) {
	d := NewGammaDict()
	f := Feature{Family: FamilyCapture, Payload: "take-ko"}
	if err := d.Add(f, 400.0); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if got := d.Gamma(f); got != 400.0 {
		t.Fatalf("expected 400, got %g", got)
	}
	if d.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", d.Len())
	}
}

func TestGammaDictRejectsConflictingRedefinition(t *testing.T) {
	d := NewGammaDict()
	f := Feature{Family: FamilyBorder, Payload: "3"}
	if err := d.Add(f, 1.5); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	if err := d.Add(f, 2.5); err == nil {
		t.Fatalf("expected conflicting redefinition to fail")
	}
	// Re-adding the same value is idempotent, not a conflict.
	if err := d.Add(f, 1.5); err != nil {
		t.Fatalf("re-adding the same gamma should not error: %v", err)
	}
}

func TestGammaDictLoad(t *testing.T) {
	text := `# comment
border 3 1.2
atari - 50.0
selfatari bad 0.01
`
	d := NewGammaDict()
	if err := d.Load(strings.NewReader(text)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := d.Gamma(Feature{Family: FamilyBorder, Payload: "3"}); got != 1.2 {
		t.Fatalf("expected 1.2, got %g", got)
	}
	if got := d.Gamma(Feature{Family: FamilyAtari, Payload: ""}); got != 50.0 {
		t.Fatalf("expected family-wide default 50.0, got %g", got)
	}
	if d.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", d.Len())
	}
}

func TestGammaDictLoadRejectsMalformedLine(t *testing.T) {
	d := NewGammaDict()
	if err := d.Load(strings.NewReader("border 3\n")); err == nil {
		t.Fatalf("expected malformed line to error")
	}
}

func TestProductGammaMultipliesAcrossFeatures(t *testing.T) {
	d := NewGammaDict()
	f1 := Feature{Family: FamilyBorder, Payload: "0"}
	f2 := Feature{Family: FamilyDistance, Payload: "2"}
	if err := d.Add(f1, 2.0); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := d.Add(f2, 3.0); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	got := d.ProductGamma(Vector{f1, f2})
	if got != 6.0 {
		t.Fatalf("expected 6.0, got %g", got)
	}
}
