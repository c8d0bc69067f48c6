package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	provider, err := NewProvider("social_test")

	require.NoError(t, err)
	assert.NotNil(t, provider.MeterProvider())
	assert.NotNil(t, provider.exporter)
	assert.NotNil(t, provider.registry)
}

func TestProvider_Handler(t *testing.T) {
	provider, err := NewProvider("social_test")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProvider_Shutdown(t *testing.T) {
	t.Run("Success_Shutdown", func(t *testing.T) {
		provider, err := NewProvider("social_test")
		require.NoError(t, err)

		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	t.Run("Success_NilMeterProvider", func(t *testing.T) {
		provider := &Provider{}

		assert.NoError(t, provider.Shutdown(context.Background()))
	})
}
