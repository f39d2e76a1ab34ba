package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"hradmin/internal/requestctx"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with a correlation id. A caller-supplied
// header is honored only when it is a well-formed UUID; anything else is
// replaced so log lines stay greppable.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(requestIDHeader)
		if uuid.Validate(reqID) != nil {
			reqID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, reqID)
		ctx := requestctx.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
