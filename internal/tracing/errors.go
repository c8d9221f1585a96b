package tracing

import "errors"

var (
	errEndpointNotSet = errors.New("tracing is enabled but no endpoint is set")
)
