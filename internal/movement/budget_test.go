package movement

import (
	"errors"
	"testing"

	"github.com/talgya/combat-theater/internal/hex"
	apperrors "github.com/talgya/combat-theater/internal/shared/errors"
)

func TestBudgetSpendAndReset(t *testing.T) {
	b := NewBudget(5)
	if err := b.Spend(3); err != nil {
		t.Fatalf("Spend(3) failed: %v", err)
	}
	if b.Remaining() != 2 {
		t.Fatalf("remaining %d, want 2", b.Remaining())
	}
	if err := b.Spend(3); !errors.Is(err, apperrors.ErrInsufficientPoints) {
		t.Fatalf("expected insufficient points, got %v", err)
	}
	if b.Remaining() != 2 {
		t.Fatalf("failed Spend changed the budget to %d", b.Remaining())
	}
	if err := b.Spend(-4); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error for a negative cost, got %v", err)
	}
	if b.Remaining() != 2 {
		t.Fatalf("negative Spend changed the budget to %d", b.Remaining())
	}
	b.Reset()
	if b.Remaining() != 5 {
		t.Fatalf("remaining after reset %d, want 5", b.Remaining())
	}
}

func TestBudgetMoveTo(t *testing.T) {
	m := forestLine(t)
	r, err := Reach(m, DefaultCosts(), hex.Axial(0, 0), 4)
	if err != nil {
		t.Fatal(err)
	}

	b := NewBudget(4)
	path, err := b.MoveTo(r, hex.Axial(2, 0))
	if err != nil {
		t.Fatalf("MoveTo failed: %v", err)
	}
	if len(path) != 3 {
		t.Fatalf("path %v, want 3 sites", path)
	}
	if b.Remaining() != 1 {
		t.Fatalf("remaining %d, want 1", b.Remaining())
	}

	if _, err := b.MoveTo(r, hex.Axial(3, 0)); !errors.Is(err, apperrors.ErrInsufficientPoints) {
		t.Fatalf("expected insufficient points, got %v", err)
	}
	if _, err := b.MoveTo(r, hex.Axial(9, 0)); !errors.Is(err, apperrors.ErrMissingEntity) {
		t.Fatalf("expected missing entity, got %v", err)
	}
}
