package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable is returned when no provider is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// TransportError captures a non-success HTTP status from an upstream provider.
type TransportError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("%s: unexpected status %d", e.providerName(), e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *TransportError) providerName() string {
	if e.Provider == "" {
		return "provider"
	}
	return e.Provider
}

// AsTransportError attempts to unwrap an error into a TransportError.
func AsTransportError(err error) (*TransportError, bool) {
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return tErr, true
	}
	return nil, false
}

// SchemaError reports an upstream record that failed structural validation.
type SchemaError struct {
	Provider string
	Index    int
	Field    string
	Err      error
}

func (e *SchemaError) Error() string {
	provider := e.Provider
	if provider == "" {
		provider = "provider"
	}
	msg := fmt.Sprintf("%s: record %d failed schema validation", provider, e.Index)
	if e.Field != "" {
		msg += " on " + e.Field
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// AsSchemaError attempts to unwrap an error into a SchemaError.
func AsSchemaError(err error) (*SchemaError, bool) {
	var sErr *SchemaError
	if errors.As(err, &sErr) {
		return sErr, true
	}
	return nil, false
}
