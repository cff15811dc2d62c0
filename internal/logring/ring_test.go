package logring

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"pipeline_dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ClampsCapacity(t *testing.T) {
	assert.Equal(t, DefaultCapacity, New(0).Cap())
	assert.Equal(t, DefaultCapacity, New(-4).Cap())
	assert.Equal(t, maxCapacity, New(10_000).Cap())
	assert.Equal(t, 50, New(50).Cap())
}

func TestPush_NewestFirst(t *testing.T) {
	r := New(5)
	r.Info("first")
	r.Warn("second")
	r.Error("third")

	got := r.ReadAll()
	require.Len(t, got, 3)
	assert.Equal(t, "third", got[0].Message)
	assert.Equal(t, models.SeverityError, got[0].Severity)
	assert.Equal(t, "second", got[1].Message)
	assert.Equal(t, models.SeverityWarn, got[1].Severity)
	assert.Equal(t, "first", got[2].Message)
	assert.Equal(t, models.SeverityInfo, got[2].Severity)
}

func TestPush_EvictsOldestBeyondCapacity(t *testing.T) {
	const capacity, extra = 30, 7
	r := New(capacity)
	for i := 0; i < capacity+extra; i++ {
		r.Info(fmt.Sprintf("msg-%d", i))
	}

	got := r.ReadAll()
	require.Len(t, got, capacity)
	assert.Equal(t, fmt.Sprintf("msg-%d", capacity+extra-1), got[0].Message)
	// the k oldest (msg-0 .. msg-6) are gone
	assert.Equal(t, fmt.Sprintf("msg-%d", extra), got[capacity-1].Message)
	for _, e := range got {
		assert.NotEqual(t, "msg-0", e.Message)
	}
}

func TestPush_UnknownSeverityFallsBackToInfo(t *testing.T) {
	r := New(3)
	e := r.Push("hello", "CRITICAL")
	assert.Equal(t, models.SeverityInfo, e.Severity)

	e = r.Push("hello", " WARN ")
	assert.Equal(t, models.SeverityWarn, e.Severity)
}

func TestPush_StampsIDAndUTCTime(t *testing.T) {
	r := New(3)
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("UTC+2", 2*3600))
	r.now = func() time.Time { return fixed }

	e := r.Push("boot", models.SeverityInfo)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, time.UTC, e.Timestamp.Location())
	assert.True(t, e.Timestamp.Equal(fixed))
}

func TestReadAll_ReturnsCopy(t *testing.T) {
	r := New(3)
	r.Info("a")
	got := r.ReadAll()
	got[0].Message = "mutated"

	assert.Equal(t, "a", r.ReadAll()[0].Message)
}

func TestPush_ConcurrentNeverExceedsCapacity(t *testing.T) {
	r := New(40)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				r.Push(fmt.Sprintf("g%d-%d", g, i), models.SeverityInfo)
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, 40, r.Len())
	assert.Len(t, r.ReadAll(), 40)
}
