package components

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
		{2, 2, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestHitMapResolvePriority(t *testing.T) {
	var h HitMap
	h.Add(
		Region{Rect: Rect{X: 0, Y: 0, W: 20, H: 4}, Action: ActionExpand, Priority: PriorityBody, RecordID: 7},
		Region{Rect: Rect{X: 16, Y: 1, W: 3, H: 1}, Action: ActionToggle, Priority: PriorityToggle, RecordID: 7},
	)

	r, ok := h.Resolve(17, 1)
	if !ok || r.Action != ActionToggle {
		t.Errorf("glyph cell resolved to %+v, want toggle", r)
	}

	r, ok = h.Resolve(3, 2)
	if !ok || r.Action != ActionExpand || r.RecordID != 7 {
		t.Errorf("body cell resolved to %+v, want expand of 7", r)
	}

	if _, ok := h.Resolve(30, 30); ok {
		t.Error("point outside every region should not resolve")
	}
}

func TestHitMapResolvePriorityIndependentOfOrder(t *testing.T) {
	var h HitMap
	h.Add(
		Region{Rect: Rect{X: 16, Y: 1, W: 3, H: 1}, Action: ActionToggle, Priority: PriorityToggle},
		Region{Rect: Rect{X: 0, Y: 0, W: 20, H: 4}, Action: ActionExpand, Priority: PriorityBody},
	)
	if r, _ := h.Resolve(17, 1); r.Action != ActionToggle {
		t.Errorf("got %v, want toggle regardless of insertion order", r.Action)
	}
}

func TestHitMapEqualPriorityLastWins(t *testing.T) {
	var h HitMap
	h.Add(
		Region{Rect: Rect{X: 0, Y: 0, W: 5, H: 5}, Action: ActionExpand, RecordID: 1},
		Region{Rect: Rect{X: 0, Y: 0, W: 5, H: 5}, Action: ActionExpand, RecordID: 2},
	)
	if r, _ := h.Resolve(1, 1); r.RecordID != 2 {
		t.Errorf("RecordID = %d, want the region drawn last", r.RecordID)
	}
	if h.Len() != 2 {
		t.Errorf("Len = %d, want 2", h.Len())
	}
}

func TestOffset(t *testing.T) {
	in := []Region{{Rect: Rect{X: 1, Y: 2, W: 3, H: 4}}}
	out := Offset(in, 10, 20)
	if out[0].Rect != (Rect{X: 11, Y: 22, W: 3, H: 4}) {
		t.Errorf("Offset = %+v", out[0].Rect)
	}
	if in[0].Rect.X != 1 {
		t.Error("Offset should not modify its input")
	}
}
