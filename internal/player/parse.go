package player

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"

	"github.com/dbmrq/draftboard/internal/config"
	drafterrors "github.com/dbmrq/draftboard/internal/errors"
)

// Parse parses comma separated text. The first line is the header.
//
// Fields are split on every comma; quoted fields are not recognised, so a
// quoted comma splits the value.
func Parse(text string, cols config.ColumnsConfig) (*Dataset, error) {
	lines := strings.Split(text, "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		rows = append(rows, strings.Split(line, ","))
	}
	return ParseRows(rows, cols)
}

// ParseRows builds a Dataset from rows that are already split into fields.
// It fails with ErrEmptyFile when there is no header and with
// ErrMissingColumn when the category column is absent.
func ParseRows(rows [][]string, cols config.ColumnsConfig) (*Dataset, error) {
	if len(rows) == 0 || blank(rows[0]) {
		return nil, drafterrors.EmptyFile("")
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = Sanitize(h)
	}

	ds := &Dataset{Headers: headers, Columns: cols}
	if !ds.HasColumn(cols.Category) {
		return nil, drafterrors.MissingColumn(cols.Category, headers)
	}

	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}

		fields := make(map[string]string, len(headers))
		for j, h := range headers {
			if h == "" {
				continue
			}
			var v string
			if j < len(row) {
				v = Sanitize(row[j])
			}
			// First occurrence of a duplicated header wins.
			if _, dup := fields[h]; !dup {
				fields[h] = v
			}
		}

		r := Record{
			ID:       i + 1,
			First:    fields[cols.FirstName],
			Last:     fields[cols.LastName],
			Category: fields[cols.Category],
			Rank:     fields[cols.Rank],
			Fields:   fields,
		}
		if r.First == "" || r.Last == "" {
			ds.Skipped++
			continue
		}
		ds.Records = append(ds.Records, r)
	}

	ds.Categories = Categories(ds.Records)
	return ds, nil
}

// Sanitize trims s and removes terminal escape sequences, control
// characters and byte order marks so that field values render as plain text.
func Sanitize(s string) string {
	s = ansi.Strip(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || r == '\uFEFF' {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

func blank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
