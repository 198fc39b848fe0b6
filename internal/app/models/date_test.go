package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_CSVRoundTrip(t *testing.T) {
	d := NewDate(2025, time.March, 14)

	s, err := d.MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "2025-03-14", s)

	var parsed Date
	require.NoError(t, parsed.UnmarshalCSV(s))
	assert.True(t, parsed.Equal(d.Time))
}

func TestDate_ZeroValueIsEmpty(t *testing.T) {
	var d Date

	s, err := d.MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "", s)

	var parsed Date
	require.NoError(t, parsed.UnmarshalCSV(""))
	assert.True(t, parsed.IsZero())
}

func TestDate_UnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, d.UnmarshalCSV("14/03/2025"))
}

func TestToday_HasNoTimeComponent(t *testing.T) {
	d := Today()
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, 0, d.Minute())
	assert.Equal(t, 0, d.Second())
}
