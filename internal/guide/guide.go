// Package guide holds the reference text that maps communicative goals to
// chart types. It is embedded in every prompt sent to the model and can be
// shown to users as-is.
package guide

import (
	_ "embed"
	"strings"
)

//go:embed guide.md
var text string

// Language is the BCP 47 tag of the guide text. Model output is requested in
// the same language.
const Language = "pt-BR"

// Text returns the chart selection guide.
func Text() string {
	return strings.TrimSpace(text)
}
