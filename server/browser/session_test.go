package browser

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTimeout_Result(t *testing.T) {
	v, err := withTimeout(context.Background(), time.Second, func() (string, error) {
		return "ready", nil
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "ready", v)

	boom := errors.New("boom")
	_, err = withTimeout(context.Background(), time.Second, func() (int, error) {
		return 0, boom
	}, nil)
	assert.ErrorIs(t, err, boom)
}

func TestWithTimeout_Expired(t *testing.T) {
	release := make(chan struct{})
	cleaned := make(chan string, 1)

	_, err := withTimeout(context.Background(), 10*time.Millisecond, func() (string, error) {
		<-release
		return "late", nil
	}, func(v string) {
		cleaned <- v
	})
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrTimeout))

	close(release)
	select {
	case v := <-cleaned:
		assert.Equal(t, "late", v)
	case <-time.After(time.Second):
		t.Fatal("late result was not cleaned up")
	}
}

func TestWithTimeout_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	block := make(chan struct{})
	defer close(block)

	_, err := withTimeout(ctx, time.Minute, func() (struct{}, error) {
		<-block
		return struct{}{}, nil
	}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
