package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method string
	route  string
	status int
}

type fakeHTTPMetrics struct {
	observed []observation
}

func (f *fakeHTTPMetrics) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	f.observed = append(f.observed, observation{method: method, route: route, status: status})
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	m := &fakeHTTPMetrics{}

	router := mux.NewRouter()
	router.Use(Metrics(m))
	router.HandleFunc("/bookings/{bookingId:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)
	router.HandleFunc("/tariffs", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	}).Methods(http.MethodGet)

	for _, path := range []string{"/bookings/17", "/bookings/18", "/tariffs"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Len(t, m.observed, 3)
	assert.Equal(t, observation{http.MethodGet, "/bookings/{bookingId:[0-9]+}", http.StatusNotFound}, m.observed[0])
	assert.Equal(t, m.observed[0], m.observed[1])
	assert.Equal(t, observation{http.MethodGet, "/tariffs", http.StatusOK}, m.observed[2])
}
