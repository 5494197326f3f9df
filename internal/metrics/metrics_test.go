package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObservePayment(t *testing.T) {
	before := testutil.ToFloat64(PaymentsRecorded.WithLabelValues("cash", "manual"))
	addedBefore := testutil.ToFloat64(CreditMovement.WithLabelValues("added"))

	ObservePayment("cash", "manual", 40000, 20000, 0)

	assert.Equal(t, before+1, testutil.ToFloat64(PaymentsRecorded.WithLabelValues("cash", "manual")))
	assert.Equal(t, addedBefore+20000, testutil.ToFloat64(CreditMovement.WithLabelValues("added")))
}

func TestGinMiddleware_ObservesRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(GinMiddleware())
	router.GET("/ping/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping/1", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 1, testutil.CollectAndCount(HTTPRequestDuration, "jimpitan_http_request_duration_seconds"))
}
