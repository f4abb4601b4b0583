package logging

import "log/slog"

// Structured log keys shared by every package.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldDate       = "date"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
	FieldError      = "error"

	// Upstream request fields.
	FieldLeague   = "league_id"
	FieldSeries   = "series_ids"
	FieldUpstream = "upstream_status"
)

// WithCommon appends service and version attrs, skipping empty values.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	for _, kv := range [...]struct{ key, val string }{{FieldService, service}, {FieldVersion, version}} {
		if kv.val != "" {
			attrs = append(attrs, slog.String(kv.key, kv.val))
		}
	}
	return attrs
}
