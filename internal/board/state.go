// Package board holds the draft board state: the loaded dataset, the
// selected players in rank order and the active category filter.
//
// State is a value. Every operation returns a new State and never modifies
// the receiver, so the UI can keep the previous board around while a load
// is in flight.
package board

import (
	"slices"

	"github.com/dbmrq/draftboard/internal/player"
)

// All is the filter value of the "All" tab.
const All = ""

// ToggleResult describes what Toggle did.
type ToggleResult int

const (
	// Added means the record joined the selected list.
	Added ToggleResult = iota
	// Removed means the record left the selected list.
	Removed
	// Unranked means the record has no rank and cannot be selected.
	Unranked
	// Unknown means no record has the given ID.
	Unknown
)

// State is an immutable snapshot of the board.
type State struct {
	dataset    *player.Dataset
	index      map[int]int // record ID -> position in dataset.Records
	selected   []int       // record IDs, ascending by rank
	filter     string
	generation uint64
}

// New builds the board for a freshly loaded dataset. Every ranked record
// starts selected, ordered by rank, and the filter is All.
func New(ds *player.Dataset, generation uint64) State {
	if ds == nil {
		ds = &player.Dataset{}
	}

	index := make(map[int]int, len(ds.Records))
	for i, r := range ds.Records {
		index[r.ID] = i
	}

	s := State{
		dataset:    ds,
		index:      index,
		generation: generation,
	}

	ids := make([]int, 0, len(ds.Records))
	for _, r := range ds.Records {
		ids = append(ids, r.ID)
	}
	s.selected = s.normalize(ids)
	return s
}

// Dataset returns the loaded dataset. It is never nil for a State built by New.
func (s State) Dataset() *player.Dataset {
	return s.dataset
}

// Loaded reports whether the board was built from a dataset.
func (s State) Loaded() bool {
	return s.dataset != nil
}

// Generation returns the load generation the state was built from.
func (s State) Generation() uint64 {
	return s.generation
}

// Filter returns the active category, or All.
func (s State) Filter() string {
	return s.filter
}

// Categories returns the dataset's category tabs, without All.
func (s State) Categories() []string {
	if s.dataset == nil {
		return nil
	}
	return s.dataset.Categories
}

// WithFilter returns the state with category as the active tab. An unknown
// category leaves the state unchanged.
func (s State) WithFilter(category string) State {
	if category != All && !slices.Contains(s.Categories(), category) {
		return s
	}
	s.filter = category
	return s
}

// Record returns the record with the given ID.
func (s State) Record(id int) (player.Record, bool) {
	i, ok := s.index[id]
	if !ok {
		return player.Record{}, false
	}
	return s.dataset.Records[i], true
}

// Visible returns the records shown in the available list: every record
// matching the active filter, in file order.
func (s State) Visible() []player.Record {
	if s.dataset == nil {
		return nil
	}
	out := make([]player.Record, 0, len(s.dataset.Records))
	for _, r := range s.dataset.Records {
		if r.Matches(s.filter) {
			out = append(out, r)
		}
	}
	return out
}

// IsSelected reports whether the record with the given ID is selected.
func (s State) IsSelected(id int) bool {
	return slices.Contains(s.selected, id)
}

// SelectedIDs returns the selected record IDs in rank order.
func (s State) SelectedIDs() []int {
	return slices.Clone(s.selected)
}

// SelectedRecords returns the selected records in rank order.
func (s State) SelectedRecords() []player.Record {
	out := make([]player.Record, 0, len(s.selected))
	for _, id := range s.selected {
		if r, ok := s.Record(id); ok {
			out = append(out, r)
		}
	}
	return out
}

// Toggle adds the record to the selected list, or removes it if it is
// already there. The list is then re-filtered to ranked records and
// re-sorted by rank, so toggling an unranked record changes nothing.
func (s State) Toggle(id int) (State, ToggleResult) {
	r, ok := s.Record(id)
	if !ok {
		return s, Unknown
	}

	if i := slices.Index(s.selected, id); i >= 0 {
		s.selected = slices.Delete(slices.Clone(s.selected), i, i+1)
		return s, Removed
	}

	if _, ranked := r.RankValue(); !ranked {
		return s, Unranked
	}

	next := append(slices.Clone(s.selected), id)
	s.selected = s.normalize(next)
	return s, Added
}

// ClearSelection empties the selected list.
func (s State) ClearSelection() State {
	s.selected = nil
	return s
}

// SelectAll selects every ranked record.
func (s State) SelectAll() State {
	if s.dataset == nil {
		return s
	}
	ids := make([]int, 0, len(s.dataset.Records))
	for _, r := range s.dataset.Records {
		ids = append(ids, r.ID)
	}
	s.selected = s.normalize(ids)
	return s
}

// normalize drops unknown and unranked IDs and sorts the rest by rank.
// Ties keep the order of ids.
func (s State) normalize(ids []int) []int {
	recs := make([]player.Record, 0, len(ids))
	for _, id := range ids {
		if r, ok := s.Record(id); ok {
			recs = append(recs, r)
		}
	}
	recs = player.Ranked(recs)
	player.SortByRank(recs)

	out := make([]int, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}
