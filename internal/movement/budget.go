package movement

import (
	"github.com/talgya/combat-theater/internal/battlefield"
	"github.com/talgya/combat-theater/internal/hex"
	apperrors "github.com/talgya/combat-theater/internal/shared/errors"
)

// Budget tracks a unit's movement points for the current turn.
type Budget struct {
	defaultPoints int
	current       int
}

// NewBudget creates a full budget of points per turn.
func NewBudget(points int) *Budget {
	return &Budget{defaultPoints: points, current: points}
}

// Remaining returns the points left this turn.
func (b *Budget) Remaining() int {
	return b.current
}

// Spend deducts cost, failing without change if cost is negative or the
// budget cannot cover it.
func (b *Budget) Spend(cost int) error {
	if cost < 0 {
		return apperrors.Validationf("negative movement cost %d", cost)
	}
	if cost > b.current {
		return apperrors.InsufficientPointsf("cost %d exceeds remaining %d points", cost, b.current)
	}
	b.current -= cost
	return nil
}

// Reset refills the budget at the start of a turn.
func (b *Budget) Reset() {
	b.current = b.defaultPoints
}

// MoveTo pays for the cheapest route to target and returns it.
func (b *Budget) MoveTo(r *Reachable, target hex.Coord) ([]battlefield.SiteID, error) {
	cost, ok := r.CostTo(target)
	if !ok {
		return nil, apperrors.Missingf("%v is not reachable from %v", target, r.Origin)
	}
	path, ok := r.PathTo(target)
	if !ok {
		return nil, apperrors.Internalf("no predecessor chain from %v to %v", r.Origin, target)
	}
	if err := b.Spend(cost); err != nil {
		return nil, err
	}
	return path, nil
}
