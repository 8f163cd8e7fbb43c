package middleware

import (
	"net/http"
	"time"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers"
)

// RequestLogger access log
func RequestLogger(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			log.Info("%s %s - %d in %s", r.Method, r.URL.Path, rec.status, time.Since(start))
		})
	}
}

// Recovery превращает панику обработчика в INTERNAL_ERROR
// Если заголовки уже ушли клиенту, ответ не переписывается
// Ставится внутри RequestLogger, чтобы паника попадала в access log
func Recovery(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newStatusRecorder(w)
			defer func() {
				if p := recover(); p != nil {
					log.Error("%s %s - Panic recovered: %v", r.Method, r.URL.Path, p)
					if !rec.wroteHeader {
						handlers.RespondInternalError(rec)
					}
				}
			}()
			next.ServeHTTP(rec, r)
		})
	}
}
