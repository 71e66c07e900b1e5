package player

import (
	"slices"
	"testing"

	"pgregory.net/rapid"
)

func TestParseRank(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"3", 3, true},
		{" 7 ", 7, true},
		{"12th", 12, true},
		{"-3", -3, true},
		{"+4", 4, true},
		{"007", 7, true},
		{"N/A", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"abc12", 0, false},
		{"1.9", 1, true},
		{"99999999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseRank(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseRank(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func rec(id int, rank string) Record {
	return Record{ID: id, First: "P", Last: "X", Rank: rank}
}

func ids(recs []Record) []int {
	out := make([]int, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

func TestSortByRank_StableAndUnrankedLast(t *testing.T) {
	recs := []Record{rec(1, "5"), rec(2, "N/A"), rec(3, "1"), rec(4, "5"), rec(5, ""), rec(6, "2")}
	SortByRank(recs)

	want := []int{3, 6, 1, 4, 2, 5}
	if got := ids(recs); !slices.Equal(got, want) {
		t.Errorf("SortByRank order = %v, want %v", got, want)
	}
}

func TestRanked(t *testing.T) {
	recs := []Record{rec(1, "5"), rec(2, "N/A"), rec(3, "1")}
	if got := ids(Ranked(recs)); !slices.Equal(got, []int{1, 3}) {
		t.Errorf("Ranked = %v, want [1 3]", got)
	}
}

func TestSortByRank_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ranks := rapid.SliceOf(rapid.SampledFrom([]string{"1", "2", "3", "10", "x", ""})).Draw(t, "ranks")
		recs := make([]Record, len(ranks))
		for i, r := range ranks {
			recs[i] = rec(i+1, r)
		}

		sorted := Ranked(recs)
		SortByRank(sorted)

		for i := 1; i < len(sorted); i++ {
			a, _ := sorted[i-1].RankValue()
			b, _ := sorted[i].RankValue()
			if a > b {
				t.Fatalf("not sorted at %d: %d > %d", i, a, b)
			}
			if a == b && sorted[i-1].ID > sorted[i].ID {
				t.Fatalf("tie order not stable at %d", i)
			}
		}
	})
}
