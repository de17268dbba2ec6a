package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchAndProcess(t *testing.T) {
	d := newMemoryDriver(8)
	SetDriver(d)
	t.Cleanup(func() { SetDriver(nil) })

	got := make(chan string, 1)
	Register("test:echo", func(_ context.Context, payload []byte) error {
		var msg struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(payload, &msg); err != nil {
			return err
		}
		got <- msg.Text
		return nil
	})

	require.NoError(t, Dispatch(context.Background(), "test:echo", map[string]string{"text": "hello"}))

	job, err := d.Dequeue(context.Background())
	require.NoError(t, err)
	process(context.Background(), job)

	select {
	case text := <-got:
		assert.Equal(t, "hello", text)
	case <-time.After(time.Second):
		t.Fatal("handler never ran")
	}
}

func TestFailingJobRetriesThenDrops(t *testing.T) {
	d := newMemoryDriver(8)
	SetDriver(d)
	t.Cleanup(func() { SetDriver(nil) })

	var runs int
	Register("test:flaky", func(context.Context, []byte) error {
		runs++
		return errors.New("boom")
	})

	require.NoError(t, Dispatch(context.Background(), "test:flaky", nil))

	// drain until the envelope stops being re-enqueued
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		job, err := d.Dequeue(ctx)
		cancel()
		if err != nil {
			break
		}
		process(context.Background(), job)
	}

	assert.Equal(t, maxAttempts, runs)
}

func TestPollLoopSurvivesLongIdleStretches(t *testing.T) {
	raw, err := json.Marshal(envelope{Name: "test:echo", Payload: json.RawMessage(`{}`)})
	require.NoError(t, err)

	// Many consecutive empty polls must iterate, not recurse.
	polls := 0
	job, err := pollLoop(func() (string, error) {
		polls++
		if polls <= 100000 {
			return "", redis.Nil
		}
		return string(raw), nil
	})

	require.NoError(t, err)
	assert.Equal(t, "test:echo", job.Name)
	assert.Equal(t, 100001, polls)
}

func TestPollLoopReturnsTransportErrors(t *testing.T) {
	_, err := pollLoop(func() (string, error) {
		return "", errors.New("connection reset")
	})
	assert.Error(t, err)
}

func TestDequeueHonorsContextCancel(t *testing.T) {
	d := newMemoryDriver(1)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := d.Dequeue(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
