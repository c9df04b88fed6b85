package date_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finla-app/finla/internal/date"
)

func TestParse(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    string
		wantErr bool
	}

	tests := []testCase{
		{name: "Valid", input: "2025-07-15", want: "2025-07-15"},
		{name: "Invalid", input: "15/07/2025", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
		{name: "NotADate", input: "2025-13-45", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := date.Parse(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestAddNormalizes(t *testing.T) {
	d := date.New(2025, time.January, 31)

	assert.Equal(t, "2025-02-01", d.Add(1).String())
	assert.Equal(t, "2024-12-31", d.Add(-31).String())
}

func TestDaysUntil(t *testing.T) {
	a := date.MustParse("2025-07-01")
	b := date.MustParse("2025-07-04")

	assert.Equal(t, 3, a.DaysUntil(b))
	assert.Equal(t, -3, b.DaysUntil(a))
	assert.Equal(t, 0, a.DaysUntil(a))
}

func TestDaysUntilAcrossMonthEnd(t *testing.T) {
	a := date.MustParse("2025-02-27")
	b := date.MustParse("2025-03-02")

	assert.Equal(t, 3, a.DaysUntil(b))
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2025-07", date.MustParse("2025-07-31").MonthKey())
	assert.Equal(t, "2025-12", date.MustParse("2025-12-01").MonthKey())
}

func TestJSONRoundTrip(t *testing.T) {
	d := date.MustParse("2025-07-15")

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-07-15"`, string(raw))

	var back date.Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, d, back)
}

func TestJSONZeroDate(t *testing.T) {
	var zero date.Date

	raw, err := json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, `""`, string(raw))

	var back date.Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, back.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`null`), &back))
	assert.True(t, back.IsZero())
}

func TestIsZero(t *testing.T) {
	var zero date.Date

	assert.True(t, zero.IsZero())
	assert.False(t, date.MustParse("2025-01-01").IsZero())
}
