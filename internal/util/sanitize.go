package util

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips all markup from user supplied text.
func SanitizeText(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
