// Package validation holds request validation and small value helpers.
package validation

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
