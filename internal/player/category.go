package player

// Categories returns the distinct category values of recs in first-seen
// order. Empty values and the literal "undefined" are skipped.
func Categories(recs []Record) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range recs {
		if IsUndefined(r.Category) || seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		out = append(out, r.Category)
	}
	return out
}

// DuplicateKeys returns name pairs shared by more than one record, in
// first-seen order. Such records are still distinct for selection.
func DuplicateKeys(recs []Record) []Key {
	counts := make(map[Key]int, len(recs))
	var order []Key
	for _, r := range recs {
		k := r.Key()
		if counts[k] == 0 {
			order = append(order, k)
		}
		counts[k]++
	}

	var out []Key
	for _, k := range order {
		if counts[k] > 1 {
			out = append(out, k)
		}
	}
	return out
}
