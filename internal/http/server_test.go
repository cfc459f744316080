package http

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestServerShutdownBeforeRun(t *testing.T) {
	srv := NewServer(RouterConfig{})
	require.NoError(t, srv.Shutdown(context.Background()))

	done := make(chan error, 1)
	go func() { done <- srv.Run("127.0.0.1:0") }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatalf("Run kept listening after Shutdown")
	}
}

func TestServerShutdownStopsRun(t *testing.T) {
	srv := NewServer(RouterConfig{})
	done := make(chan error, 1)
	go func() { done <- srv.Run("127.0.0.1:0") }()

	require.Eventually(t, func() bool {
		srv.mu.Lock()
		defer srv.mu.Unlock()
		return srv.srv != nil
	}, 2*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after Shutdown")
	}
}
