package types

// ValidDueDate reports whether v is a real calendar date in YYYY-MM-DD form.
func ValidDueDate(v string) bool {
	_, err := normalizeDueDate(v)
	return err == nil
}

// ValidPriority reports whether v names a priority, case-insensitively.
func ValidPriority(v string) bool {
	_, err := normalizePriority(v)
	return err == nil
}

// ValidStatus reports whether v names a status, case-insensitively.
func ValidStatus(v string) bool {
	_, err := normalizeStatus(v)
	return err == nil
}
