package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var _ TimeProvider = SystemTime{}
var _ TimeProvider = (*ManualTime)(nil)

func TestSystemTimeMovesForward(t *testing.T) {
	var src SystemTime
	t1 := src.Now()
	time.Sleep(10 * time.Millisecond)
	assert.GreaterOrEqual(t, src.Now().Sub(t1), 10*time.Millisecond)
}

func TestManualTimeFrameSteps(t *testing.T) {
	origin := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	src := NewManualTime(origin)
	assert.True(t, src.Now().Equal(origin))

	// Each 1/30s frame rounds to the nanosecond, so 30 of them stay within 30ns
	for i := 0; i < 30; i++ {
		src.AdvanceSeconds(1.0 / 30)
	}
	assert.InDelta(t, float64(time.Second), float64(src.Now().Sub(origin)), 30)

	src.Jump(origin.Add(-time.Second))
	assert.True(t, src.Now().Before(origin), "jump may rewind for backwards-time guards")

	src.Advance(2 * time.Second)
	assert.True(t, src.Now().Equal(origin.Add(time.Second)))
}

func TestManualTimeConcurrentDriverAndReaders(t *testing.T) {
	origin := time.Unix(0, 0)
	src := NewManualTime(origin)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			prev := src.Now()
			for j := 0; j < 100; j++ {
				now := src.Now()
				assert.False(t, now.Before(prev))
				prev = now
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				src.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, time.Second, src.Now().Sub(origin))
}
