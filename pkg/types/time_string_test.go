package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "padded", input: "11:00", want: "11:00"},
		{name: "single digit hour is normalized", input: "9:05", want: "09:05"},
		{name: "last minute of day", input: "23:59", want: "23:59"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "11:60", wantErr: true},
		{name: "missing colon", input: "1100", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "seconds are not accepted", input: "11:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("11:45").AddMinutes(15)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:00"), got)

	_, err = TimeString("23:50").AddMinutes(15)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = TimeString("bogus").AddMinutes(15)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("11:00").IsBefore("11:15"))
	assert.False(t, TimeString("11:15").IsBefore("11:15"))
	assert.True(t, TimeString("16:45").IsAfter("11:00"))
	assert.True(t, TimeString("09:00").Equal("09:00"))
	assert.Equal(t, 11*60+30, TimeString("11:30").Minutes())
	assert.Equal(t, -1, TimeString("xx").Minutes())
}

func TestTimeString_On(t *testing.T) {
	loc, err := time.LoadLocation("America/Toronto")
	require.NoError(t, err)

	date := time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC)
	got := TimeString("11:15").On(date, loc)

	assert.Equal(t, time.Date(2025, time.March, 17, 11, 15, 0, 0, loc), got)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("11:15:00")))
	assert.Equal(t, TimeString("11:15"), ts)

	require.NoError(t, ts.Scan("16:45"))
	assert.Equal(t, TimeString("16:45"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 12, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("12:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("11:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "11:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
