package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNaiveTimeJSON(t *testing.T) {
	var nt NaiveTime
	assert.NoError(t, json.Unmarshal([]byte(`"2030-12-31T12:00:00"`), &nt))
	assert.Equal(t, time.Date(2030, 12, 31, 12, 0, 0, 0, time.UTC), nt.Time)

	out, err := json.Marshal(nt)
	assert.NoError(t, err)
	assert.Equal(t, `"2030-12-31T12:00:00"`, string(out))
}

func TestNaiveTimeDropsOffsetOnInput(t *testing.T) {
	var nt NaiveTime
	assert.NoError(t, json.Unmarshal([]byte(`"2030-12-31T12:00:00+03:00"`), &nt))
	// The civil components are kept as written; the offset marker is dropped.
	assert.Equal(t, "2030-12-31T12:00:00", nt.Format(TimeLayout))
}

func TestNaiveTimeRejectsGarbage(t *testing.T) {
	var nt NaiveTime
	assert.Error(t, json.Unmarshal([]byte(`"tomorrow at noon"`), &nt))
}

func TestDurationFor(t *testing.T) {
	assert.Equal(t, 45, DurationFor("Haircut"))
	assert.Equal(t, 120, DurationFor("Coloring"))
	assert.Equal(t, DefaultServiceDuration, DurationFor("Hot Stone Massage"))
}
