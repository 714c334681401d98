package helpers

// NullIfEmpty returns nil for an empty string so it is stored as SQL NULL.
// Any other value is returned unchanged.
func NullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// StringValue dereferences an optional column value, treating nil as empty.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
