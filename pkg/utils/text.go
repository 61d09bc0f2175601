package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/cases"
)

var strictPolicy = bluemonday.StrictPolicy()

// plainEntities undoes only the escapes the sanitizer adds to plain text.
// Angle brackets stay escaped so encoded markup never becomes live markup.
var plainEntities = strings.NewReplacer("&amp;", "&", "&#39;", "'", "&#34;", `"`)

// CleanText strips any markup from user-entered text and trims whitespace.
func CleanText(s string) string {
	return strings.TrimSpace(plainEntities.Replace(strictPolicy.Sanitize(s)))
}

// ContainsFold reports whether substr is within s under Unicode case folding.
func ContainsFold(s, substr string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(s), cases.Fold().String(substr))
}
