package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOfDropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	d := DateOf(time.Date(2026, time.March, 1, 23, 59, 0, 0, loc))

	assert.Equal(t, "2026-03-01", d.String())
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, loc, d.Location())
}

func TestDateAddDaysCrossesMonth(t *testing.T) {
	d := DateOf(time.Date(2026, time.January, 25, 8, 0, 0, 0, time.UTC))

	assert.Equal(t, "2026-02-08", d.AddDays(14).String())
	assert.Equal(t, "2026-02-24", d.AddDays(30).String())
}

func TestEventJSONShape(t *testing.T) {
	ev := Event{
		ID:          1,
		Name:        "Losoong Festival",
		Monastery:   "Rumtek Monastery",
		Date:        DateOf(time.Date(2026, time.November, 2, 0, 0, 0, 0, time.UTC)),
		Description: "Harvest festival with Cham dance",
	}
	b, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Losoong Festival","monastery":"Rumtek Monastery","date":"2026-11-02","description":"Harvest festival with Cham dance"}`, string(b))

	var back Event
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, "2026-11-02", back.Date.String())
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"02/11/2026"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20261102`), &d))
}
