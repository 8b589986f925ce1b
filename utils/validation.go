package utils

import "strings"

// AnyBlank reports whether at least one value is empty after trimming spaces.
func AnyBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
