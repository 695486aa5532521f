package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	t.Run("Marshal", func(t *testing.T) {
		d := NewDate(2025, time.March, 5)
		out, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t, `"2025-03-05"`, string(out))
	})

	t.Run("Unmarshal", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2025-03-05"`), &d))
		assert.Equal(t, NewDate(2025, time.March, 5), d)
	})

	t.Run("Unmarshal rejects garbage", func(t *testing.T) {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`"05.03.2025"`), &d))
	})

	t.Run("Null clears the date", func(t *testing.T) {
		d := NewDate(2025, time.March, 5)
		require.NoError(t, json.Unmarshal([]byte(`null`), &d))
		assert.True(t, d.IsZero())
	})
}

func TestDateScan(t *testing.T) {
	t.Run("From string", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan("2025-03-05"))
		assert.Equal(t, "2025-03-05", d.String())
	})

	t.Run("From bytes", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan([]byte("2025-03-05")))
		assert.Equal(t, "2025-03-05", d.String())
	})

	t.Run("Timestamp suffix is dropped", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan("2025-03-05T10:30:00Z"))
		assert.Equal(t, "2025-03-05", d.String())
	})

	t.Run("From time.Time", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan(time.Date(2025, time.March, 5, 23, 59, 0, 0, time.UTC)))
		assert.Equal(t, "2025-03-05", d.String())
	})

	t.Run("Nil and empty mean unset", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan(nil))
		assert.True(t, d.IsZero())
		require.NoError(t, d.Scan(""))
		assert.True(t, d.IsZero())
	})
}

func TestDateValue(t *testing.T) {
	d := NewDate(2025, time.December, 31)
	v, err := d.Value()
	require.NoError(t, err)
	// Stored as an ISO string so TEXT comparison stays chronological
	assert.Equal(t, "2025-12-31", v)
}
