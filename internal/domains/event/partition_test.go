package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dated(y, m, d int, isPast bool) Event {
	return Event{Date: DateFor(y, m, d), IsPast: isPast}
}

func TestToday(t *testing.T) {
	loc := time.FixedZone("UTC+11", 11*3600)
	// 23:30 ngày 1/6 giờ địa phương = 12:30 ngày 1/6 UTC
	now := time.Date(2024, 6, 1, 23, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Today(now))
}

func TestDateFor(t *testing.T) {
	d := DateFor(2024, 6, 1)
	assert.Equal(t, time.UTC, d.Location())
	assert.Equal(t, "2024-06-01", d.Format("2006-01-02"))
}

func TestIsPastFor(t *testing.T) {
	today := DateFor(2024, 6, 1)
	assert.True(t, IsPastFor(DateFor(2024, 5, 31), today))
	assert.False(t, IsPastFor(DateFor(2024, 6, 1), today), "same-day event is not past")
	assert.False(t, IsPastFor(DateFor(2024, 6, 2), today))
}

func TestPartition(t *testing.T) {
	today := DateFor(2024, 6, 1)

	t.Run("reference fixture", func(t *testing.T) {
		events := []Event{
			dated(2024, 5, 31, false), // hôm qua → past dù flag false
			dated(2024, 6, 1, false),  // hôm nay → upcoming
			dated(2024, 6, 2, true),   // ngày mai nhưng flag past → past
		}

		upcoming, past := Partition(events, today)

		require.Len(t, upcoming, 1)
		assert.Equal(t, DateFor(2024, 6, 1), upcoming[0].Date)

		require.Len(t, past, 2)
	})

	t.Run("upcoming sorted soonest first", func(t *testing.T) {
		events := []Event{
			dated(2024, 7, 15, false),
			dated(2024, 6, 3, false),
			dated(2024, 6, 20, false),
		}

		upcoming, _ := Partition(events, today)
		require.Len(t, upcoming, 3)
		assert.Equal(t, DateFor(2024, 6, 3), upcoming[0].Date)
		assert.Equal(t, DateFor(2024, 6, 20), upcoming[1].Date)
		assert.Equal(t, DateFor(2024, 7, 15), upcoming[2].Date)
	})

	t.Run("past sorted most recent first", func(t *testing.T) {
		events := []Event{
			dated(2024, 1, 10, true),
			dated(2024, 5, 20, true),
			dated(2024, 3, 5, true),
		}

		_, past := Partition(events, today)
		require.Len(t, past, 3)
		assert.Equal(t, DateFor(2024, 5, 20), past[0].Date)
		assert.Equal(t, DateFor(2024, 3, 5), past[1].Date)
		assert.Equal(t, DateFor(2024, 1, 10), past[2].Date)
	})

	t.Run("empty input yields empty buckets", func(t *testing.T) {
		upcoming, past := Partition(nil, today)
		assert.Empty(t, upcoming)
		assert.Empty(t, past)
	})
}
