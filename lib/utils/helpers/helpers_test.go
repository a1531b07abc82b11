package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsContextDone(t *testing.T) {
	require.True(t, IsContextDone(nil)) //nolint:staticcheck
	require.False(t, IsContextDone(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.True(t, IsContextDone(ctx))
}
