package logger

// Well-known field keys used across the codebase. Keeping them here avoids
// drift between packages that log the same entity.
const (
	KeyRequestID = "request_id"
	KeyClientIP  = "client_ip"
	KeyUsername  = "username"
	KeyAccountID = "account_id"
	KeyFileID    = "file_id"
	KeyGrantID   = "grant_id"
	KeyLinkID    = "link_id"
	KeyBlobKey   = "blob_key"
	KeyBackend   = "backend"
	KeyError     = "error"
	KeyDuration  = "duration_ms"
	KeyStatus    = "status"
	KeyMethod    = "method"
	KeyPath      = "path"
)
