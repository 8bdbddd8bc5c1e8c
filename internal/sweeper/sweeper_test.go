package sweeper

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

type countingCleaner struct {
	calls   atomic.Int32
	deleted int
	err     error
}

func (c *countingCleaner) Cleanup() (int, error) {
	c.calls.Add(1)
	return c.deleted, c.err
}

func TestRunSweep(t *testing.T) {
	cleaner := &countingCleaner{deleted: 3}
	service := NewService(cleaner, time.Minute, zaptest.NewLogger(t))

	service.runSweep()
	assert.Equal(t, int32(1), cleaner.calls.Load())
}

func TestRunSweep_PartialFailure(t *testing.T) {
	cleaner := &countingCleaner{deleted: 1, err: fmt.Errorf("permission denied")}
	service := NewService(cleaner, time.Minute, zaptest.NewLogger(t))

	// A failing sweep must not panic or abort the service.
	service.runSweep()
	assert.Equal(t, int32(1), cleaner.calls.Load())
}

func TestStartStop(t *testing.T) {
	cleaner := &countingCleaner{}
	service := NewService(cleaner, time.Minute, zaptest.NewLogger(t))

	service.Start()
	service.Stop()
}

func TestNewService_DefaultInterval(t *testing.T) {
	service := NewService(&countingCleaner{}, 0, zaptest.NewLogger(t))
	assert.Equal(t, 10*time.Minute, service.interval)
}
