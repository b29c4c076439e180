package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// HTTPMetrics метрики HTTP запросов
type HTTPMetrics interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Metrics считает запросы по шаблону маршрута, чтобы ID не раздували метки
func Metrics(m HTTPMetrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if tpl, err := route.GetPathTemplate(); err == nil {
					path = tpl
				}
			}

			m.ObserveHTTPRequest(r.Method, path, rec.status, time.Since(start))
		})
	}
}
