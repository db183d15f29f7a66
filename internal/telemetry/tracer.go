package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Common attribute keys for access and sharing operations.
const (
	AttrAccountID  = "account.id"
	AttrUsername   = "account.name"
	AttrFileID     = "file.id"
	AttrFileName   = "file.name"
	AttrFileSize   = "file.size"
	AttrLinkID     = "link.id"
	AttrOneTime    = "link.one_time"
	AttrPermission = "access.permission"
	AttrSource     = "access.source"
	AttrBackend    = "blob.backend"
	AttrBlobKey    = "blob.key"
)

// Span names.
// Format: <component>.<operation>.
const (
	SpanAuthorize  = "access.authorize"
	SpanRedeemLink = "access.redeem_link"
	SpanPeekLink   = "access.peek_link"
)

// AccountID returns an attribute for the requesting account.
func AccountID(id string) attribute.KeyValue {
	return attribute.String(AttrAccountID, id)
}

// FileID returns an attribute for the target file.
func FileID(id string) attribute.KeyValue {
	return attribute.String(AttrFileID, id)
}

// LinkID returns an attribute for a share link.
func LinkID(id string) attribute.KeyValue {
	return attribute.String(AttrLinkID, id)
}

// Permission returns an attribute for the requested permission.
func Permission(p string) attribute.KeyValue {
	return attribute.String(AttrPermission, p)
}

// AccessSource returns an attribute for which rule granted access.
func AccessSource(s string) attribute.KeyValue {
	return attribute.String(AttrSource, s)
}

// StartAccessSpan starts a span for an access decision.
func StartAccessSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return StartSpan(ctx, name, trace.WithAttributes(attrs...))
}
