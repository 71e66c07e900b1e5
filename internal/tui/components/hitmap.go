package components

// Action is what a click on a region does.
type Action int

const (
	ActionNone Action = iota
	// ActionExpand focuses a card and toggles its expanded view.
	ActionExpand
	// ActionToggle adds the card's record to the board or removes it.
	ActionToggle
	// ActionTab selects a category tab.
	ActionTab
)

// Region priorities. A click inside overlapping regions resolves to the
// highest priority, so the toggle glyph wins over the card body around it.
const (
	PriorityBody   = 0
	PriorityTab    = 5
	PriorityToggle = 10
)

// Rect is a screen rectangle in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a clickable area of the rendered screen.
type Region struct {
	Rect     Rect
	Action   Action
	Priority int
	// RecordID is set for card regions.
	RecordID int
	// Pane is the list the region belongs to.
	Pane Pane
	// Tab is set for ActionTab regions.
	Tab string
}

// Pane identifies one of the two card lists.
type Pane int

const (
	PaneAvailable Pane = iota
	PaneSelected
)

// HitMap resolves screen coordinates to regions.
type HitMap struct {
	regions []Region
}

// Add appends regions.
func (h *HitMap) Add(regions ...Region) {
	h.regions = append(h.regions, regions...)
}

// Len returns the number of regions.
func (h *HitMap) Len() int {
	return len(h.regions)
}

// Resolve returns the highest priority region containing (x, y). Among
// equal priorities the region added last wins, matching draw order.
func (h *HitMap) Resolve(x, y int) (Region, bool) {
	var (
		best  Region
		found bool
	)
	for _, r := range h.regions {
		if !r.Rect.Contains(x, y) {
			continue
		}
		if !found || r.Priority >= best.Priority {
			best, found = r, true
		}
	}
	return best, found
}

// Offset returns regions shifted by (dx, dy).
func Offset(regions []Region, dx, dy int) []Region {
	out := make([]Region, len(regions))
	for i, r := range regions {
		r.Rect.X += dx
		r.Rect.Y += dy
		out[i] = r
	}
	return out
}
