package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunOnceFiresEveryJob(t *testing.T) {
	s := NewScheduler()

	var first, second int
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		first++
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		second++
		return errors.New("boom")
	})

	// A failing job must not stop the others.
	s.RunOnce(context.Background())

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestStartRunsJobImmediately(t *testing.T) {
	s := NewScheduler()

	ran := make(chan struct{}, 1)
	s.AddJob("sweep", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("job did not run on start")
	}
}
