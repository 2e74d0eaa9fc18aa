package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCancelTokenDefaultsToNotCancelled(t *testing.T) {
	token := NewCancelToken()
	require.False(t, token.Cancelled())
}

func TestCancelTokenSetOnce(t *testing.T) {
	token := NewCancelToken()

	token.Cancel()
	require.True(t, token.Cancelled())

	// Idempotent; a token is never reset.
	token.Cancel()
	require.True(t, token.Cancelled())
}

func TestCancelTokenConcurrentAccess(t *testing.T) {
	token := NewCancelToken()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token.Cancel()
			_ = token.Cancelled()
		}()
	}
	wg.Wait()

	require.True(t, token.Cancelled())
}

func TestNilTokenNeverCancels(t *testing.T) {
	var token *CancelToken
	require.False(t, token.Cancelled())
	token.Cancel() // must not panic
}
