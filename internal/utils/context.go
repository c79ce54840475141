// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for carrying a trace id through context.Context,
// generating identifiers, writing JSON HTTP responses and creating
// outbound HTTP clients.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDHeader is the HTTP header that carries the trace id between the
// terminal client and the server.
const TraceIDHeader = "X-Trace-ID"

// TraceIDCtxKey is the key used to store the request trace id in the context.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithTraceID(ctx, "0190b7b2-...")
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext retrieves the trace id from the context.
//
// Returns the trace id and an ok flag:
//   - ok == true: a non-empty string value is present
//   - ok == false: value is missing, empty or has an unexpected type
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
