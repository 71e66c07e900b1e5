package components

import (
	"testing"

	"github.com/dbmrq/draftboard/internal/config"
	"github.com/dbmrq/draftboard/internal/player"
)

const sampleCSV = `firstName,lastName,slotName,rank,adp,projectedPoints,positionRank,teamName,percentRostered
Jane,Roe,RB,1,2.5,310.4,RB1,NYJ,45%
John,Doe,QB,3,12.1,280,QB2,KC,12
Bob,Fan,WR,N/A,,,,,3
Amy,Lee,WR,2,8.0,250.5,WR1,SF,
`

func sampleDataset(t *testing.T) *player.Dataset {
	t.Helper()
	ds, err := player.Parse(sampleCSV, config.NewConfig().Columns)
	if err != nil {
		t.Fatalf("parse sample: %v", err)
	}
	return ds
}

func sampleRecord(t *testing.T, last string) player.Record {
	t.Helper()
	for _, r := range sampleDataset(t).Records {
		if r.Last == last {
			return r
		}
	}
	t.Fatalf("no record with last name %q", last)
	return player.Record{}
}

func newCard(r player.Record) Card {
	cfg := config.NewConfig()
	return Card{
		Record:     r,
		Columns:    cfg.Columns,
		Categories: cfg.Categories,
		Display:    cfg.Display,
	}
}
