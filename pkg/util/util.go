package util

// GetPtr returns a pointer to v. Handy for filling optional entity fields in
// tests and fixtures.
func GetPtr[T any](v T) *T {
	return &v
}
