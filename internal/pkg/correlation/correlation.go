// Package correlation carries the messaging context that ties a flow of
// messages together across services: the correlation id shared by the whole
// flow, the causation id of the message that directly caused the current one,
// an optional saga id for long-running workflows, and an opaque trace-span
// token.
//
// The context is decoded once at the inbound boundary, travels on the
// context.Context of the current unit of work, and is embedded into the
// headers of every outbox message produced by that unit of work.
package correlation

import (
	stdcontext "context"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Header keys used on the wire. Inbound and outbound adapters share them.
const (
	HeaderCorrelationID = "correlation_id"
	HeaderCausationID   = "causation_id"
	HeaderSagaID        = "saga_id"
	HeaderSpanContext   = "span_context"
	HeaderUserID        = "user_id"
	HeaderIsAdmin       = "is_admin"
)

// Context is the correlation context of one inbound-message-to-outbound-
// messages cycle. It is ephemeral: never persisted beyond being embedded in
// outbox message headers.
type Context struct {
	// CorrelationID is shared by every message belonging to one logical flow.
	CorrelationID string
	// CausationID is the id of the message that directly caused this one.
	CausationID string
	// SagaID ties the message into a long-running workflow. Optional.
	SagaID string
	// SpanContext is the opaque trace propagation token. Optional.
	SpanContext string
}

// Identity is the acting identity extracted from inbound message headers.
// A zero Identity means the message carried no identity and access checks
// are skipped (trusted internal traffic).
type Identity struct {
	UserID  string
	IsAdmin bool
}

// IsAuthenticated reports whether the identity carries a user id.
func (i Identity) IsAuthenticated() bool {
	return i.UserID != ""
}

type contextKey int

const (
	correlationKey contextKey = iota
	identityKey
)

// WithContext attaches a correlation context to ctx.
func WithContext(ctx stdcontext.Context, c Context) stdcontext.Context {
	return stdcontext.WithValue(ctx, correlationKey, c)
}

// FromContext returns the correlation context attached to ctx, or a zero
// value when none is attached.
func FromContext(ctx stdcontext.Context) Context {
	if c, ok := ctx.Value(correlationKey).(Context); ok {
		return c
	}
	return Context{}
}

// WithIdentity attaches an acting identity to ctx.
func WithIdentity(ctx stdcontext.Context, id Identity) stdcontext.Context {
	return stdcontext.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the identity attached to ctx, or a zero value
// when none is attached.
func IdentityFromContext(ctx stdcontext.Context) Identity {
	if id, ok := ctx.Value(identityKey).(Identity); ok {
		return id
	}
	return Identity{}
}

// Decode extracts the correlation context from inbound message headers.
//
// A fresh correlation id is generated when the header is absent, so every
// flow has one. The causation id is always the inbound message's own id: the
// inbound message is what causes everything this unit of work produces. The
// saga id is copied through when present. The span token is interpreted as
// UTF-8 text; missing or malformed values decode to the empty string rather
// than failing.
func Decode(messageID string, headers map[string][]byte) Context {
	c := Context{
		CorrelationID: headerText(headers, HeaderCorrelationID),
		CausationID:   messageID,
		SagaID:        headerText(headers, HeaderSagaID),
		SpanContext:   headerText(headers, HeaderSpanContext),
	}
	if c.CorrelationID == "" {
		c.CorrelationID = uuid.NewString()
	}
	return c
}

// DecodeIdentity extracts the acting identity from inbound message headers.
func DecodeIdentity(headers map[string][]byte) Identity {
	return Identity{
		UserID:  headerText(headers, HeaderUserID),
		IsAdmin: headerText(headers, HeaderIsAdmin) == "true",
	}
}

// ForOutbound derives the header set for an outgoing message. The correlation
// id, saga id, and span token carry over unchanged; the causation id becomes
// the outgoing message's own id so the next hop's causation chain stays
// intact.
func (c Context) ForOutbound(outboundMessageID string) Context {
	return Context{
		CorrelationID: c.CorrelationID,
		CausationID:   outboundMessageID,
		SagaID:        c.SagaID,
		SpanContext:   c.SpanContext,
	}
}

// Encode renders the context as wire headers. Empty optional fields are
// omitted.
func (c Context) Encode() map[string]string {
	headers := map[string]string{
		HeaderCorrelationID: c.CorrelationID,
		HeaderCausationID:   c.CausationID,
	}
	if c.SagaID != "" {
		headers[HeaderSagaID] = c.SagaID
	}
	if c.SpanContext != "" {
		headers[HeaderSpanContext] = c.SpanContext
	}
	return headers
}

func headerText(headers map[string][]byte, key string) string {
	raw, ok := headers[key]
	if !ok || len(raw) == 0 {
		return ""
	}
	if !utf8.Valid(raw) {
		return ""
	}
	return string(raw)
}
