// Package player parses player tables into records and provides the
// rank, category and rostership rules the board is built on.
package player

import (
	"strings"

	"github.com/dbmrq/draftboard/internal/config"
)

// Record is one parsed data row.
type Record struct {
	// ID is the 1-based data row index within the file. It is the record's
	// identity for selection.
	ID int

	First    string
	Last     string
	Category string
	Rank     string

	// Fields holds every column of the row by header name.
	Fields map[string]string
}

// Key is the name pair of a record.
type Key struct {
	First string
	Last  string
}

func (k Key) String() string {
	return k.First + " " + k.Last
}

// Key returns the record's name pair.
func (r Record) Key() Key {
	return Key{First: r.First, Last: r.Last}
}

// Name returns "First Last".
func (r Record) Name() string {
	return r.Key().String()
}

// Field returns the value of column, or "" if the row has no such column.
func (r Record) Field(column string) string {
	return r.Fields[column]
}

// RankValue parses the record's rank.
func (r Record) RankValue() (int, bool) {
	return ParseRank(r.Rank)
}

// Dataset is the result of parsing one file.
type Dataset struct {
	Headers    []string
	Records    []Record
	Categories []string
	Columns    config.ColumnsConfig

	// Source is the path the data was read from, if any.
	Source string
	// Fingerprint is a hash of the raw file bytes, used to skip reloads of
	// unchanged files.
	Fingerprint uint64
	// Skipped counts non-blank rows dropped for missing a first or last name.
	Skipped int
}

// HasColumn reports whether the header line contains column.
func (d *Dataset) HasColumn(column string) bool {
	for _, h := range d.Headers {
		if h == column {
			return true
		}
	}
	return false
}

// Metric is a labelled optional value shown on a card.
type Metric struct {
	Label string
	Value string
}

// Metric labels.
const (
	MetricADP          = "ADP"
	MetricProjected    = "Proj"
	MetricPositionRank = "Pos Rank"
	MetricTeam         = "Team"
	MetricRank         = "Rank"
	MetricRostered     = "Rostered"
)

// Metrics returns the optional card metrics of r in display order.
// Missing values are returned as "".
func Metrics(r Record, cols config.ColumnsConfig) []Metric {
	return []Metric{
		{Label: MetricADP, Value: r.Field(cols.ADP)},
		{Label: MetricProjected, Value: r.Field(cols.ProjectedPoints)},
		{Label: MetricPositionRank, Value: r.Field(cols.PositionRank)},
		{Label: MetricTeam, Value: r.Field(cols.Team)},
		{Label: MetricRank, Value: r.Rank},
		{Label: MetricRostered, Value: r.Field(cols.Rostered)},
	}
}

// Matches reports whether r belongs to the category tab.
// An empty category matches every record.
func (r Record) Matches(category string) bool {
	return category == "" || r.Category == category
}

// IsUndefined reports whether a category value counts as missing.
func IsUndefined(category string) bool {
	return strings.TrimSpace(category) == "" || category == "undefined"
}
