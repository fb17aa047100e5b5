package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSubmissionCreated(t *testing.T) {
	before := testutil.ToFloat64(submissionsCreatedTotal.WithLabelValues("booking"))

	RecordSubmissionCreated("booking")
	RecordSubmissionCreated("booking")

	assert.InDelta(t, before+2, testutil.ToFloat64(submissionsCreatedTotal.WithLabelValues("booking")), 0)
}

func TestRecordNotification(t *testing.T) {
	before := testutil.ToFloat64(notificationsTotal.WithLabelValues("acknowledgment", ResultFailed))

	RecordNotification("acknowledgment", ResultFailed)

	assert.InDelta(t, before+1, testutil.ToFloat64(notificationsTotal.WithLabelValues("acknowledgment", ResultFailed)), 0)
}

func TestObserveHTTPAndHandler(t *testing.T) {
	ObserveHTTP(http.MethodPost, "/v1/submissions", http.StatusCreated, 15*time.Millisecond)
	RecordRateLimited()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(body, `http_requests_total{method="POST",route="/v1/submissions",status_code="201"}`))
	assert.True(t, strings.Contains(body, "http_rate_limited_total"))
}
