//go:build unit

package assert

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChannelStopper_StopClosesDone(t *testing.T) {
	t.Parallel()

	stopper := NewChannelStopper()

	select {
	case <-stopper.Done():
		t.Fatal("Done must stay open until Stop")
	default:
	}

	stopper.Stop()

	select {
	case <-stopper.Done():
	default:
		t.Fatal("Done must be closed after Stop")
	}
}

func TestChannelStopper_StopIsIdempotent(t *testing.T) {
	t.Parallel()

	stopper := NewChannelStopper()

	// A second Stop must not panic on the closed channel.
	stopper.Stop()
	stopper.Stop()
}

func TestChannelStopper_NilReceiver_NoPanic(t *testing.T) {
	t.Parallel()

	var stopper *ChannelStopper

	stopper.Stop()
	require.Nil(t, stopper.Done())
}

func TestStopperFunc(t *testing.T) {
	t.Parallel()

	calls := 0

	stopper := StopperFunc(func() { calls++ })
	stopper.Stop()

	require.Equal(t, 1, calls)
}
