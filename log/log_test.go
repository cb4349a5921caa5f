package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestContext(t *testing.T) {
	lg := Get(context.Background())
	require.Equal(t, zerolog.Disabled, lg.GetLevel())

	var buf bytes.Buffer
	ctx := Set(context.Background(), New(&buf, false))
	Get(ctx).Info().Msg("hidden")
	Get(ctx).Warn().Msg("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestVerbose(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true).Debug().Msg("details")
	require.Contains(t, buf.String(), "details")
}
