package player

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// ParseRank parses the leading base-10 integer of s, after trimming
// whitespace. An optional sign is accepted and trailing text is ignored,
// so "12th" is 12. It reports false when s does not start with a number.
func ParseRank(s string) (int, bool) {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Ranked returns the records of recs that have a parseable rank, in order.
func Ranked(recs []Record) []Record {
	out := make([]Record, 0, len(recs))
	for _, r := range recs {
		if _, ok := r.RankValue(); ok {
			out = append(out, r)
		}
	}
	return out
}

// SortByRank sorts recs ascending by rank in place. The sort is stable.
// Records without a parseable rank sort after all ranked ones.
func SortByRank(recs []Record) {
	slices.SortStableFunc(recs, CompareRank)
}

// CompareRank orders a before b by rank. Unranked records compare equal to
// each other and greater than any ranked record.
func CompareRank(a, b Record) int {
	ra, okA := a.RankValue()
	rb, okB := b.RankValue()
	switch {
	case okA && okB:
		return cmp.Compare(ra, rb)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return 0
	}
}
