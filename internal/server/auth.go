package server

import (
	"crypto/subtle"
	"net/http"
)

// requireCronSecret guards the job-trigger endpoints with a shared bearer
// secret. Development mode and an explicit ?manual=true override skip the
// check.
func (s *Server) requireCronSecret(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.authorized(r) {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) authorized(r *http.Request) bool {
	if s.cfg.CronSecret == "" {
		return true
	}
	if s.cfg.Environment == "development" {
		return true
	}
	if r.URL.Query().Get("manual") == "true" {
		return true
	}

	expected := "Bearer " + s.cfg.CronSecret
	got := r.Header.Get("Authorization")
	return subtle.ConstantTimeCompare([]byte(got), []byte(expected)) == 1
}
