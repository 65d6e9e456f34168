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
		wantErr bool
	}{
		{name: "valid morning", input: "09:00", wantErr: false},
		{name: "valid midnight", input: "00:00", wantErr: false},
		{name: "valid end of day", input: "23:59", wantErr: false},
		{name: "invalid hour", input: "24:00", wantErr: true},
		{name: "invalid minutes", input: "10:60", wantErr: true},
		{name: "missing padding", input: "9:00", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestFromMinutes(t *testing.T) {
	assert.Equal(t, TimeString("00:00"), FromMinutes(0))
	assert.Equal(t, TimeString("09:05"), FromMinutes(545))
	assert.Equal(t, TimeString("12:30"), FromMinutes(750))
	assert.Equal(t, TimeString("23:59"), FromMinutes(1439))
}

func TestMinutes_RoundTrip(t *testing.T) {
	// FromMinutes и Minutes обратны друг другу на всём диапазоне суток
	for m := 0; m < 1440; m += 17 {
		got, err := FromMinutes(m).Minutes()
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestMinutes_Invalid(t *testing.T) {
	_, err := TimeString("25:00").Minutes()
	assert.Error(t, err)

	_, err = TimeString("").Minutes()
	assert.Error(t, err)
}

func TestScan(t *testing.T) {
	t.Run("string with seconds", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("09:30:00"))
		assert.Equal(t, TimeString("09:30"), ts)
	})

	t.Run("short string", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("18:00"))
		assert.Equal(t, TimeString("18:00"), ts)
	})

	t.Run("bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("12:15:59")))
		assert.Equal(t, TimeString("12:15"), ts)
	})

	t.Run("time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2025, 6, 1, 14, 45, 30, 0, time.UTC)))
		assert.Equal(t, TimeString("14:45"), ts)
	})

	t.Run("nil", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(nil))
		assert.Equal(t, TimeString(""), ts)
	})

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan(42))
	})

	t.Run("invalid string", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan("not-a-time"))
	})
}

func TestValue(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
