package transport

import "encoding/json"

// Fields carries response payloads keyed by resource name ("task", "users", ...).
type Fields map[string]interface{}

// Envelope is the standard response wrapper: {"message": ..., <resource>: ...}
// on success, {"message": ..., "errors": {...}} on failure.
type Envelope map[string]interface{}

// NewSuccess returns a success envelope with the resource fields merged in.
func NewSuccess(message string, fields Fields) Envelope {
	env := Envelope{"message": message}
	for key, value := range fields {
		env[key] = value
	}
	return env
}

// NewError returns a failure envelope, optionally carrying per-field errors.
func NewError(message string, errs FieldErrors) Envelope {
	env := Envelope{"message": message}
	if len(errs) > 0 {
		env["errors"] = errs
	}
	return env
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}
