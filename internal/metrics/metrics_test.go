package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveExport(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveExport("chapter1", "doc", 20*time.Millisecond, nil)
	m.ObserveExport("chapter1", "doc", 10*time.Millisecond, nil)
	m.ObserveExport("full", "pdf", time.Second, errors.New("browser"))

	assert.InDelta(t, 2, testutil.ToFloat64(m.ExportsTotal.WithLabelValues("chapter1", "doc", StatusOK)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ExportsTotal.WithLabelValues("full", "pdf", StatusError)), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(m.ExportDuration))
}

func TestMetrics_ObserveHTTP(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveHTTP("POST", "/v1/documents", 200, 5*time.Millisecond, 2048)
	m.ObserveHTTP("POST", "/v1/documents", 400, time.Millisecond, 0)

	assert.InDelta(t, 1, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/v1/documents", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/v1/documents", "400")), 0)
	// Empty responses are not observed.
	assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPResponseSize))
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	t.Parallel()

	a, b := New(), New()
	a.ObserveBibliography(3)

	assert.Equal(t, 1, testutil.CollectAndCount(a.BibliographyRefs))
	assert.NotSame(t, a.Registry(), b.Registry())
}

func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveExport("references", "doc", time.Millisecond, nil)
	m.PoolExportersInUse.Set(2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	text := string(body)
	assert.True(t, strings.Contains(text, `scholardraft_export_total{format="doc",section="references",status="ok"} 1`), text)
	assert.Contains(t, text, "scholardraft_pool_exporters_in_use 2")
	assert.Contains(t, text, "go_goroutines")
}
