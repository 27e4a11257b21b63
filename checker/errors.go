package checker

// Error describes a failed validation.  It covers both causes a check can
// fail for - the document cannot be opened or read, or its content is not
// valid TOML - with a single human-readable message; callers that need to
// distinguish a validation failure from any other error can use errors.As.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
