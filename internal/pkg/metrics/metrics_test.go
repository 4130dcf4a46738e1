package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kitchen/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := metrics.New()

	m.OrderCreated()
	m.OrderCreated()
	m.StatusChanged("Ready")
	m.APIError("validation")
	m.SetBacklog("Pending", 4)

	expected := `
# HELP kitchen_orders_created_total Orders committed to the store.
# TYPE kitchen_orders_created_total counter
kitchen_orders_created_total 2
# HELP kitchen_orders_by_status Orders per status at the last backlog report.
# TYPE kitchen_orders_by_status gauge
kitchen_orders_by_status{status="Pending"} 4
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"kitchen_orders_created_total", "kitchen_orders_by_status"))

	count, err := testutil.GatherAndCount(m.Registry(), "kitchen_order_status_changes_total", "kitchen_api_errors_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.OrderCreated()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "kitchen_orders_created_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}
