package models

// ValidationError signals a malformed or missing request field. It is raised
// before any store call and maps to HTTP 400, distinct from store errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
