package http

import (
	"orders/internal/pkg/correlation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HTTP request headers carrying the messaging context. Absent identity
// headers mean trusted internal traffic: access checks are skipped.
const (
	HeaderCorrelationID = "X-Correlation-Id"
	HeaderSagaID        = "X-Saga-Id"
	HeaderSpanContext   = "X-Span-Context"
	HeaderUserID        = "X-User-Id"
	HeaderIsAdmin       = "X-Is-Admin"
)

// RequestContext decodes the correlation context and acting identity from the
// request headers and attaches them to the request context. Every request is
// a fresh causation root, identified by a generated request id.
func RequestContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			request := ctx.Request()
			headers := map[string][]byte{
				correlation.HeaderCorrelationID: []byte(request.Header.Get(HeaderCorrelationID)),
				correlation.HeaderSagaID:        []byte(request.Header.Get(HeaderSagaID)),
				correlation.HeaderSpanContext:   []byte(request.Header.Get(HeaderSpanContext)),
				correlation.HeaderUserID:        []byte(request.Header.Get(HeaderUserID)),
				correlation.HeaderIsAdmin:       []byte(request.Header.Get(HeaderIsAdmin)),
			}

			requestID := uuid.NewString()
			reqCtx := request.Context()
			reqCtx = correlation.WithContext(reqCtx, correlation.Decode(requestID, headers))
			reqCtx = correlation.WithIdentity(reqCtx, correlation.DecodeIdentity(headers))

			ctx.SetRequest(request.WithContext(reqCtx))
			return next(ctx)
		}
	}
}
