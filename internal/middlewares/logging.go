package middlewares

import (
	"net/http"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/comics-keeper/internal/logger"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// validRequestID limits client supplied ids to a short token so they stay safe in logs.
var validRequestID = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,128}$`)

// LoggingMiddleware tags every request with an id and writes one access log line
// per request once the handler returns. An incoming X-Request-ID is reused when
// it looks like a token; otherwise a fresh UUID is assigned. The id is echoed in
// the response header and stored in the context for logger.FromContext.
func LoggingMiddleware(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(requestIDHeader)
			if !validRequestID.MatchString(reqID) {
				reqID = uuid.NewString()
			}

			start := time.Now()
			rw := &statusRecorder{ResponseWriter: w}

			r = r.WithContext(logger.ContextWithRequestID(r.Context(), reqID))
			w.Header().Set(requestIDHeader, reqID)

			next.ServeHTTP(rw, r)

			status := rw.Status()
			fields := []any{
				"method", r.Method,
				"uri", r.RequestURI,
				"status", status,
				"bytes", rw.size,
				"duration", time.Since(start),
			}

			reqLog := log.With("request_id", reqID)
			switch {
			case status >= http.StatusInternalServerError:
				reqLog.Errorw("request completed", fields...)
			case status >= http.StatusBadRequest:
				reqLog.Warnw("request completed", fields...)
			default:
				reqLog.Infow("request completed", fields...)
			}
		})
	}
}

// statusRecorder remembers the first status code and counts body bytes.
type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

// Status returns the recorded status, 200 when the handler never set one.
func (rw *statusRecorder) Status() int {
	if rw.status == 0 {
		return http.StatusOK
	}
	return rw.status
}

func (rw *statusRecorder) WriteHeader(code int) {
	if rw.status == 0 {
		rw.status = code
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *statusRecorder) Write(b []byte) (int, error) {
	if rw.status == 0 {
		rw.status = http.StatusOK
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}
