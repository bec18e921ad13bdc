package utils

// Contains returns true if elems contains v
func Contains[T comparable](elems []T, v T) bool {
	for _, s := range elems {
		if v == s {
			return true
		}
	}
	return false
}

// Converts any struct to a pointer to that struct
func Ptr[T any](item T) *T {
	return &item
}
