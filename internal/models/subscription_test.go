package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_RowRoundTrip(t *testing.T) {
	rec := Record{
		Name:         "Netflix",
		Platform:     "netflix.com",
		StartDate:    "2025-01-01",
		EndDate:      "2025-12-01",
		ContactEmail: "c@x.com",
		Mobile:       "123",
		OwnerEmail:   "a@x.com",
	}

	row := rec.ToRow()
	assert.Len(t, row, RowWidth)

	got := FromRow(row, 2)
	rec.Row = 2
	assert.Equal(t, rec, got)
}

func TestFromRow_PadsShortRow(t *testing.T) {
	got := FromRow([]string{"Netflix"}, 5)

	assert.Equal(t, 5, got.Row)
	assert.Equal(t, "Netflix", got.Name)
	assert.Equal(t, "", got.OwnerEmail)
}

func TestUpdateRecord_OmittedOwnerBecomesBlank(t *testing.T) {
	name := "Netflix"
	empty := ""
	req := UpdateRecord{
		Name:         &name,
		Platform:     &empty,
		StartDate:    &empty,
		EndDate:      &empty,
		ContactEmail: &empty,
		Mobile:       &empty,
	}

	rec := req.ToRecord()
	assert.Equal(t, "", rec.OwnerEmail)
	assert.Equal(t, "Netflix", rec.Name)
}
