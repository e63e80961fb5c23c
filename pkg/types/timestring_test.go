package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("14:30")
	require.NoError(t, err)
	assert.Equal(t, "14:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("14:30:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("")
	assert.Error(t, err)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 1, 9, 5, 30, 0, time.UTC))
	assert.Equal(t, "09:05", ts.String())
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("23:30")

	got, err := ts.AddMinutes(20)
	require.NoError(t, err)
	assert.Equal(t, "23:50", got.String())

	// переход через полночь
	got, err = ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, "00:30", got.String())
}

func TestTimeString_Compare(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("18:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// postgres TIME приходит как "HH:MM:SS"
	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, "14:30", ts.String())

	require.NoError(t, ts.Scan([]byte("08:15:00")))
	assert.Equal(t, "08:15", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("14:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "14:30", v)

	_, err = TimeString("garbage").Value()
	assert.Error(t, err)
}
