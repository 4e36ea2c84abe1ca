package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-gin-concert-booking/internal/handler"
	serviceMocks "go-gin-concert-booking/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var (
	InvalidJSON = `{"invalid": json}`
)

type routerMocks struct {
	queue   *serviceMocks.MockQueueService
	saga    *serviceMocks.MockBookingSaga
	payment *serviceMocks.MockPaymentOrchestrator
	ledger  *serviceMocks.MockPointLedger
	concert *serviceMocks.MockConcertService
}

// setupTestRouter 以 mock service 註冊全部路由
func setupTestRouter(t *testing.T) (*gin.Engine, *routerMocks) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	m := &routerMocks{
		queue:   serviceMocks.NewMockQueueService(t),
		saga:    serviceMocks.NewMockBookingSaga(t),
		payment: serviceMocks.NewMockPaymentOrchestrator(t),
		ledger:  serviceMocks.NewMockPointLedger(t),
		concert: serviceMocks.NewMockConcertService(t),
	}

	handler.NewQueueHandler(m.queue).RegisterRoutes(router)
	handler.NewReservationHandler(m.saga, m.payment).RegisterRoutes(router)
	handler.NewPointHandler(m.ledger).RegisterRoutes(router)
	handler.NewConcertHandler(m.concert).RegisterRoutes(router)

	return router, m
}

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

func createRawJSONHTTPRequest(method, url, body string) *http.Request {
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
