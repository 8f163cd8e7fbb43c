package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dobaato-technical/KnowALocal-sub000/pkg/metrics"
)

// MetricsMiddleware пишет количество и длительность запросов по шаблону маршрута
// Шаблон вместо сырого пути, чтобы даты и UUID не раздували кардинальность
func MetricsMiddleware(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			m.ObserveHTTPRequest(r.Method, routeTemplate(r), rec.status, time.Since(start))
		})
	}
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
