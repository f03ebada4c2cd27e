package battlefield

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"github.com/talgya/combat-theater/internal/hex"
	apperrors "github.com/talgya/combat-theater/internal/shared/errors"
)

// minExtent keeps degenerate query rectangles valid for the R-tree.
const minExtent = 1e-9

// siteEntry wraps a site's world bounds for R-tree storage.
type siteEntry struct {
	id    SiteID
	river bool
	box   rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *siteEntry) Bounds() rtreego.Rect {
	return e.box
}

// Viewport answers which sites fall inside a world-space rectangle, so a
// redraw only touches what is on screen. It indexes the map as it was when
// built; rebuild it after inserting sites.
type Viewport struct {
	tree *rtreego.Rtree
}

// NewViewport indexes the cell and river outlines of m under layout.
func NewViewport(m *Map, layout *hex.Layout) (*Viewport, error) {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	for id, h := range m.hexes {
		box, err := rectFromBound(layout.Polygon(h.Coord).Bound())
		if err != nil {
			return nil, err
		}
		tree.Insert(&siteEntry{id: id, box: box})
	}
	for id, r := range m.rivers {
		a, b := r.Sides()
		ring, err := layout.RiverPolygon(a, b)
		if err != nil {
			return nil, err
		}
		box, err := rectFromBound(ring.Bound())
		if err != nil {
			return nil, err
		}
		tree.Insert(&siteEntry{id: id, river: true, box: box})
	}

	return &Viewport{tree: tree}, nil
}

// Visible returns the ids of hexes and rivers whose outlines intersect bound,
// each sorted ascending.
func (v *Viewport) Visible(bound orb.Bound) (hexes, rivers []SiteID, err error) {
	box, err := rectFromBound(bound)
	if err != nil {
		return nil, nil, err
	}
	for _, item := range v.tree.SearchIntersect(box) {
		entry := item.(*siteEntry)
		if entry.river {
			rivers = append(rivers, entry.id)
		} else {
			hexes = append(hexes, entry.id)
		}
	}
	sort.Slice(hexes, func(i, j int) bool { return hexes[i] < hexes[j] })
	sort.Slice(rivers, func(i, j int) bool { return rivers[i] < rivers[j] })
	return hexes, rivers, nil
}

// Size returns the number of indexed sites.
func (v *Viewport) Size() int {
	return v.tree.Size()
}

// rectFromBound converts an orb bound to an R-tree rectangle.
func rectFromBound(b orb.Bound) (rtreego.Rect, error) {
	w := b.Max.X() - b.Min.X()
	h := b.Max.Y() - b.Min.Y()
	if w < 0 || h < 0 {
		return rtreego.Rect{}, apperrors.InvalidGeometryf("empty bound %v", b)
	}
	rect, err := rtreego.NewRect(
		rtreego.Point{b.Min.X(), b.Min.Y()},
		[]float64{max(w, minExtent), max(h, minExtent)},
	)
	if err != nil {
		return rtreego.Rect{}, apperrors.InvalidGeometryf("bound %v: %v", b, err)
	}
	return rect, nil
}
