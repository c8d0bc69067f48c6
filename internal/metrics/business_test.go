package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertMetricLine matches name{...labels...} value, tolerating the scope
// labels the exporter adds.
func assertMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	assert.Regexp(t, name+`\{[^}]*`+labels+`[^}]*\} `+value, output)
}

func scrape(t *testing.T, provider *Provider) string {
	t.Helper()
	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	return w.Body.String()
}

func TestBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("biz_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "biz_test")
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordOperation(ctx, "post", "post_create", StatusSuccess)
	bm.RecordOperation(ctx, "post", "post_create", StatusSuccess)
	bm.RecordOperation(ctx, "post", "post_create", StatusError)
	bm.RecordOperation(ctx, "user", "user_login", StatusSuccess)
	bm.RecordDuration(ctx, "post", "post_create", 40*time.Millisecond, StatusSuccess)
	bm.RecordDuration(ctx, "post", "post_create", 60*time.Millisecond, StatusSuccess)

	output := scrape(t, provider)

	assertMetricLine(t, output, `biz_test_operations_total`,
		`domain="post".*operation="post_create".*status="success"`, `2`)
	assertMetricLine(t, output, `biz_test_operations_total`,
		`domain="post".*operation="post_create".*status="error"`, `1`)
	assertMetricLine(t, output, `biz_test_operations_total`,
		`domain="user".*operation="user_login".*status="success"`, `1`)
	assertMetricLine(t, output, `biz_test_operation_duration_seconds_count`,
		`domain="post".*operation="post_create".*status="success"`, `2`)
}

func TestObserve(t *testing.T) {
	provider, err := NewProvider("observe_test")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "observe_test")
	require.NoError(t, err)

	ctx := context.Background()
	Observe(ctx, bm, "comment", "comment_create", time.Now(), nil)
	Observe(ctx, bm, "comment", "comment_create", time.Now(), errors.New("boom"))

	output := scrape(t, provider)

	assertMetricLine(t, output, `observe_test_operations_total`,
		`domain="comment".*operation="comment_create".*status="success"`, `1`)
	assertMetricLine(t, output, `observe_test_operations_total`,
		`domain="comment".*operation="comment_create".*status="error"`, `1`)
}

func TestNoOpBusinessMetrics(t *testing.T) {
	noOp := NewNoOpBusinessMetrics()

	assert.IsType(t, &NoOpBusinessMetrics{}, noOp)
	assert.NotPanics(t, func() {
		noOp.RecordOperation(context.Background(), "user", "user_register", StatusSuccess)
		noOp.RecordDuration(context.Background(), "user", "user_register", time.Millisecond, StatusError)
		Observe(context.Background(), noOp, "user", "user_register", time.Now(), nil)
	})
}
