package middleware

import (
	"net/http"
	"time"

	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

// LogRequest traces every request together with the caller address and how long it took.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !log.IsLevelEnabled(log.TraceLevel) {
				next.ServeHTTP(w, r)
				return
			}

			ip, _ := pkg.ReadUserIP(r)
			fields := log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
				"ip":     ip,
				"ua":     r.Header.Get("User-Agent"),
			}
			log.WithFields(fields).Trace(" ====> request")

			start := time.Now()
			next.ServeHTTP(w, r)
			log.WithFields(fields).WithField("took", time.Since(start)).Trace(" <==== request done")
		})
	}
}
