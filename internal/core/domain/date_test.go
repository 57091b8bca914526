package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateArithmetic(t *testing.T) {
	d := Date{2023, time.December, 31}
	assert.Equal(t, Date{2024, time.January, 1}, d.AddDays(1))
	assert.True(t, d.Before(d.AddDays(1)))
	assert.False(t, d.Before(d))
	assert.Equal(t, YearMonth{2024, time.January}, d.YearMonth().Next())
	assert.True(t, YearMonth{2023, time.December}.Contains(d))
	assert.False(t, YearMonth{2022, time.December}.Contains(d))
}

func TestDateOfUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	instant := time.Date(2023, time.January, 31, 22, 0, 0, 0, time.UTC)
	assert.Equal(t, Date{2023, time.January, 31}, DateOf(instant))
	assert.Equal(t, Date{2023, time.February, 1}, DateOf(instant.In(loc)))
}

func TestDateJSON(t *testing.T) {
	type payload struct {
		Date  Date      `json:"date"`
		Month YearMonth `json:"month"`
	}
	b, err := json.Marshal(payload{Date{2023, time.March, 5}, YearMonth{2023, time.March}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2023-03-05","month":"2023-03"}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-02-29","month":"2024-02"}`), &p))
	assert.Equal(t, Date{2024, time.February, 29}, p.Date)

	assert.Error(t, json.Unmarshal([]byte(`{"date":"2023-02-30"}`), &p))
	_, err = ParseYearMonth("2023-13")
	assert.Error(t, err)
}
