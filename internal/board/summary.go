package board

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/dbmrq/draftboard/internal/config"
	"github.com/dbmrq/draftboard/internal/player"
)

// Summary aggregates the selected list for the status bar and list output.
type Summary struct {
	Count int `json:"count"`
	// ProjectedPoints is the total over selected records with a numeric value.
	ProjectedPoints float64 `json:"projected_points"`
	// MeanADP is the mean over selected records with a numeric ADP.
	// HasADP is false when no selected record has one.
	MeanADP float64 `json:"mean_adp"`
	HasADP  bool    `json:"has_adp"`
	// ByCategory counts selected records per category.
	ByCategory map[string]int `json:"by_category"`
}

// Summary computes aggregates over the selected records.
func (s State) Summary() Summary {
	if s.dataset == nil {
		return Summarize(nil, config.ColumnsConfig{})
	}
	return Summarize(s.SelectedRecords(), s.dataset.Columns)
}

// Summarize computes aggregates over recs. Values that are not finite
// numbers are left out of the total and the mean.
func Summarize(recs []player.Record, cols config.ColumnsConfig) Summary {
	sum := Summary{
		Count:      len(recs),
		ByCategory: make(map[string]int),
	}

	var points, adp []float64
	for _, r := range recs {
		if v, ok := number(r.Field(cols.ProjectedPoints)); ok {
			points = append(points, v)
		}
		if v, ok := number(r.Field(cols.ADP)); ok {
			adp = append(adp, v)
		}
		if !player.IsUndefined(r.Category) {
			sum.ByCategory[r.Category]++
		}
	}

	if len(points) > 0 {
		sum.ProjectedPoints = floats.Sum(points)
	}
	if len(adp) > 0 {
		sum.MeanADP = stat.Mean(adp, nil)
		sum.HasADP = true
	}
	return sum
}

func number(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
