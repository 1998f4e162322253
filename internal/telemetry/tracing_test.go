package telemetry_test

import (
	"testing"

	"github.com/aaravmahajanofficial/catalog-editor/internal/config"
	"github.com/aaravmahajanofficial/catalog-editor/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracing(t *testing.T) {
	t.Run("Success - Disabled is a no-op", func(t *testing.T) {
		shutdown, err := telemetry.InitTracing(t.Context(), &config.Telemetry{Enabled: false})

		require.NoError(t, err)
		assert.NoError(t, shutdown(t.Context()))
	})

	t.Run("Success - Enabled builds a provider", func(t *testing.T) {
		// the exporter connects lazily, so no collector is needed
		shutdown, err := telemetry.InitTracing(t.Context(), &config.Telemetry{
			Enabled:          true,
			ServiceName:      "catalog-editor-test",
			ExporterEndpoint: "localhost:4318",
			Insecure:         true,
		})

		require.NoError(t, err)
		require.NotNil(t, shutdown)
		_ = shutdown(t.Context())
	})
}
