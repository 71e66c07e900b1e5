package board

import (
	"slices"
	"testing"

	"pgregory.net/rapid"

	"github.com/dbmrq/draftboard/internal/config"
	"github.com/dbmrq/draftboard/internal/player"
)

func parse(t testing.TB, text string) *player.Dataset {
	t.Helper()
	ds, err := player.Parse(text, config.NewConfig().Columns)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return ds
}

func names(recs []player.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.First
	}
	return out
}

const example = "firstName,lastName,slotName,rank\nJohn,Doe,QB,3\nJane,Roe,RB,1\nBob,Fan,WR,N/A\n"

func TestNew_Example(t *testing.T) {
	s := New(parse(t, example), 1)

	if got := names(s.Visible()); !slices.Equal(got, []string{"John", "Jane", "Bob"}) {
		t.Errorf("Visible = %v", got)
	}
	if got := names(s.SelectedRecords()); !slices.Equal(got, []string{"Jane", "John"}) {
		t.Errorf("SelectedRecords = %v, want [Jane John]", got)
	}
	if s.Filter() != All {
		t.Errorf("Filter = %q, want All", s.Filter())
	}
	if s.Generation() != 1 {
		t.Errorf("Generation = %d, want 1", s.Generation())
	}
	if !slices.Equal(s.Categories(), []string{"QB", "RB", "WR"}) {
		t.Errorf("Categories = %v", s.Categories())
	}
}

func TestZeroState(t *testing.T) {
	var s State
	if s.Loaded() {
		t.Error("zero state should not be loaded")
	}
	if len(s.Visible()) != 0 || len(s.SelectedRecords()) != 0 {
		t.Error("zero state should be empty")
	}
	if _, res := s.Toggle(1); res != Unknown {
		t.Errorf("Toggle on zero state = %v, want Unknown", res)
	}
}

func TestWithFilter(t *testing.T) {
	s := New(parse(t, example), 1)

	qb := s.WithFilter("QB")
	if got := names(qb.Visible()); !slices.Equal(got, []string{"John"}) {
		t.Errorf("QB Visible = %v", got)
	}
	// The original is untouched.
	if len(s.Visible()) != 3 {
		t.Error("WithFilter modified the receiver")
	}
	// Filtering never changes the selected list.
	if len(qb.SelectedRecords()) != 2 {
		t.Errorf("filter changed selection: %v", names(qb.SelectedRecords()))
	}

	if got := qb.WithFilter("TE"); got.Filter() != "QB" {
		t.Errorf("unknown category should keep filter, got %q", got.Filter())
	}
	if got := qb.WithFilter(All); len(got.Visible()) != 3 {
		t.Error("All should clear the filter")
	}
}

func TestToggle(t *testing.T) {
	s := New(parse(t, example), 1)

	// John (ID 1) is selected; toggling removes him.
	s2, res := s.Toggle(1)
	if res != Removed {
		t.Fatalf("Toggle result = %v, want Removed", res)
	}
	if s2.IsSelected(1) {
		t.Error("John should be deselected")
	}
	if !s.IsSelected(1) {
		t.Error("Toggle modified the receiver")
	}

	s3, res := s2.Toggle(1)
	if res != Added {
		t.Fatalf("Toggle result = %v, want Added", res)
	}
	if got := names(s3.SelectedRecords()); !slices.Equal(got, []string{"Jane", "John"}) {
		t.Errorf("SelectedRecords = %v, want rank order", got)
	}
}

func TestToggle_Unranked(t *testing.T) {
	s := New(parse(t, example), 1)

	s2, res := s.Toggle(3)
	if res != Unranked {
		t.Fatalf("Toggle result = %v, want Unranked", res)
	}
	if s2.IsSelected(3) {
		t.Error("unranked record should never be selected")
	}
}

func TestToggle_UnknownID(t *testing.T) {
	s := New(parse(t, example), 1)
	if _, res := s.Toggle(42); res != Unknown {
		t.Errorf("Toggle result = %v, want Unknown", res)
	}
}

func TestToggle_DuplicateNamesAreDistinct(t *testing.T) {
	s := New(parse(t, "firstName,lastName,slotName,rank\nJohn,Doe,QB,2\nJohn,Doe,RB,1\n"), 1)

	s2, _ := s.Toggle(1)
	if s2.IsSelected(1) {
		t.Error("first John Doe should be deselected")
	}
	if !s2.IsSelected(2) {
		t.Error("second John Doe should stay selected")
	}
}

func TestClearAndSelectAll(t *testing.T) {
	s := New(parse(t, example), 1)

	cleared := s.ClearSelection()
	if len(cleared.SelectedRecords()) != 0 {
		t.Error("ClearSelection should empty the list")
	}

	all := cleared.SelectAll()
	if got := names(all.SelectedRecords()); !slices.Equal(got, []string{"Jane", "John"}) {
		t.Errorf("SelectAll = %v, want ranked records only", got)
	}
}

func TestNew_ReplacesPreviousBoard(t *testing.T) {
	first, _ := New(parse(t, example), 1).WithFilter("QB").Toggle(2)
	if first.IsSelected(2) {
		t.Fatal("Jane should be deselected on the first board")
	}

	second := New(parse(t, "firstName,lastName,slotName,rank\nAmy,Lee,TE,1\n"), 2)
	if second.Filter() != All {
		t.Error("filter should reset on a new load")
	}
	if got := names(second.Visible()); !slices.Equal(got, []string{"Amy"}) {
		t.Errorf("Visible = %v, want only the new file's records", got)
	}
	if got := names(second.SelectedRecords()); !slices.Equal(got, []string{"Amy"}) {
		t.Errorf("SelectedRecords = %v", got)
	}
}

func TestSummary(t *testing.T) {
	text := "firstName,lastName,slotName,rank,adp,projectedPoints\n" +
		"John,Doe,QB,3,10,300.5\n" +
		"Jane,Roe,RB,1,2,\n" +
		"Bob,Fan,WR,N/A,5,100\n" +
		"Amy,Lee,RB,2,x,50\n"
	s := New(parse(t, text), 1)

	sum := s.Summary()
	if sum.Count != 3 {
		t.Errorf("Count = %d, want 3", sum.Count)
	}
	if sum.ProjectedPoints != 350.5 {
		t.Errorf("ProjectedPoints = %v, want 350.5", sum.ProjectedPoints)
	}
	if !sum.HasADP || sum.MeanADP != 6 {
		t.Errorf("MeanADP = %v (has %v), want 6", sum.MeanADP, sum.HasADP)
	}
	if sum.ByCategory["RB"] != 2 || sum.ByCategory["QB"] != 1 {
		t.Errorf("ByCategory = %v", sum.ByCategory)
	}

	empty := s.ClearSelection().Summary()
	if empty.Count != 0 || empty.HasADP {
		t.Errorf("empty summary = %+v", empty)
	}
}

func TestSummaryIgnoresNonFiniteValues(t *testing.T) {
	text := "firstName,lastName,slotName,rank,adp,projectedPoints\n" +
		"John,Doe,QB,1,NaN,Inf\n" +
		"Jane,Roe,RB,2,4,-Infinity\n" +
		"Amy,Lee,WR,3,+Inf,20\n"
	sum := New(parse(t, text), 1).Summary()

	if sum.ProjectedPoints != 20 {
		t.Errorf("ProjectedPoints = %v, want 20", sum.ProjectedPoints)
	}
	if !sum.HasADP || sum.MeanADP != 4 {
		t.Errorf("MeanADP = %v (has %v), want 4", sum.MeanADP, sum.HasADP)
	}
}

func TestSummarizeSubset(t *testing.T) {
	s := New(parse(t, example), 1)
	cols := s.Dataset().Columns

	var rbs []player.Record
	for _, r := range s.SelectedRecords() {
		if r.Matches("RB") {
			rbs = append(rbs, r)
		}
	}
	sum := Summarize(rbs, cols)
	if sum.Count != 1 || sum.ByCategory["RB"] != 1 || len(sum.ByCategory) != 1 {
		t.Errorf("Summarize(RB) = %+v", sum)
	}

	if empty := Summarize(nil, cols); empty.Count != 0 || empty.HasADP || empty.ByCategory == nil {
		t.Errorf("Summarize(nil) = %+v", empty)
	}
	if none := (State{}).Summary(); none.Count != 0 {
		t.Errorf("zero State summary = %+v", none)
	}
}

func genDataset(t *rapid.T) *player.Dataset {
	n := rapid.IntRange(0, 25).Draw(t, "n")
	ds := &player.Dataset{Columns: config.NewConfig().Columns}
	for i := 0; i < n; i++ {
		ds.Records = append(ds.Records, player.Record{
			ID:       i + 1,
			First:    "P",
			Last:     rapid.StringMatching(`[A-C]`).Draw(t, "last"),
			Category: rapid.SampledFrom([]string{"QB", "RB", "WR", ""}).Draw(t, "cat"),
			Rank:     rapid.SampledFrom([]string{"1", "2", "5", "12th", "N/A", ""}).Draw(t, "rank"),
		})
	}
	ds.Categories = player.Categories(ds.Records)
	return ds
}

func assertSorted(t *rapid.T, s State) {
	sel := s.SelectedRecords()
	for i := range sel {
		if _, ok := sel[i].RankValue(); !ok {
			t.Fatalf("unranked record %d selected", sel[i].ID)
		}
		if i > 0 && player.CompareRank(sel[i-1], sel[i]) > 0 {
			t.Fatalf("selected not sorted at %d", i)
		}
	}
}

func TestProperty_SelectedAlwaysSorted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ds := genDataset(t)
		s := New(ds, 1)
		assertSorted(t, s)

		steps := rapid.IntRange(0, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			s, _ = s.Toggle(rapid.IntRange(0, len(ds.Records)+1).Draw(t, "id"))
			assertSorted(t, s)
		}
	})
}

func TestProperty_ToggleTwiceRestoresMembership(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ds := genDataset(t)
		s := New(ds, 1)
		if len(ds.Records) > 0 && rapid.Bool().Draw(t, "clear") {
			s = s.ClearSelection()
		}

		id := rapid.IntRange(1, len(ds.Records)+1).Draw(t, "id")
		once, _ := s.Toggle(id)
		twice, _ := once.Toggle(id)

		before := s.SelectedIDs()
		after := twice.SelectedIDs()
		slices.Sort(before)
		slices.Sort(after)
		if !slices.Equal(before, after) {
			t.Fatalf("membership changed: %v -> %v", before, after)
		}
	})
}

func TestProperty_VisibleCountMatchesFilter(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ds := genDataset(t)
		tabs := append([]string{All}, ds.Categories...)
		filter := rapid.SampledFrom(tabs).Draw(t, "filter")

		s := New(ds, 1).WithFilter(filter)

		want := 0
		for _, r := range ds.Records {
			if filter == All || r.Category == filter {
				want++
			}
		}
		if got := len(s.Visible()); got != want {
			t.Fatalf("Visible = %d, want %d", got, want)
		}
	})
}
