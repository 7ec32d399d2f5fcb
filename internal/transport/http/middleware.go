package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = contextKey("requestID")
)

// logRequest logs one line when a request arrives and one when it is answered.
// 5xx answers are logged at error level, 4xx at warn.
func (s *Server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := s.log.With(
			slog.String("request_id", getRequestID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
		)
		log.Debug("request started", slog.String("user_agent", r.UserAgent()))

		start := time.Now()
		wrapper := newResponseWriterWrapper(w)

		next.ServeHTTP(wrapper, r)

		level := slog.LevelInfo
		switch {
		case wrapper.statusCode >= http.StatusInternalServerError:
			level = slog.LevelError
		case wrapper.statusCode >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		log.Log(r.Context(), level, "request completed",
			slog.String("route", routePattern(r)),
			slog.Int("status", wrapper.statusCode),
			slog.String("duration", time.Since(start).String()),
		)
	})
}

// requestID reuses the caller's X-Request-ID or issues a new one, and echoes it back.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getRequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(requestIDKey).(string); ok {
		return reqID
	}

	return ""
}

// dropEmptyQueryParams removes query parameters that carry no value, so
// "?targets=" binds the same way as an absent parameter.
func dropEmptyQueryParams(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery == "" {
			next.ServeHTTP(w, r)
			return
		}

		query := r.URL.Query()
		changed := false

		for key, values := range query {
			kept := values[:0]
			for _, v := range values {
				if v != "" {
					kept = append(kept, v)
				}
			}

			switch {
			case len(kept) == 0:
				query.Del(key)
				changed = true
			case len(kept) != len(values):
				query[key] = kept
				changed = true
			}
		}

		if changed {
			r2 := r.Clone(r.Context())
			r2.URL.RawQuery = query.Encode()
			r = r2
		}

		next.ServeHTTP(w, r)
	})
}
