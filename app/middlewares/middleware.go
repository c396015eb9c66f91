package middlewares

import (
	"log"
	"net/http"
	"time"

	"github.com/vengerka/cakemaster-api/app/utils/sessions"
)

func AdminAuthMiddleware(sessionStore sessions.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessionStore.IsAdmin(r) {
				log.Printf("AdminAuthMiddleware: unauthenticated request to %s", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"admin session required"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func RequestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%v)", r.Method, r.URL.Path, time.Since(start))
	})
}
