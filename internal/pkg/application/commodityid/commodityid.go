// Package commodityid derives the short human readable identifiers used as
// primary keys for commodities.
package commodityid

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	phErrors "github.com/diwise/postharvest/pkg/postharvest/errors"
)

const (
	partLength     = 3
	fallbackLength = 6
)

// DeriveID returns NAM-VAR built from the first three characters of the
// commodity name and variety. Without a variety the first six characters of
// the name are used instead. Only the first space of each input is removed.
func DeriveID(commodityName, variety string) (string, error) {
	name := strings.Replace(commodityName, " ", "", 1)
	if name == "" {
		return "", phErrors.NewInvalidArgumentError("a commodity name is required to derive an id")
	}

	// a Caser keeps state and must not be shared between goroutines
	upper := cases.Upper(language.Und)

	if variety == "" {
		return upper.String(prefix(name, fallbackLength)), nil
	}

	v := strings.Replace(variety, " ", "", 1)

	return upper.String(prefix(name, partLength)) + "-" + upper.String(prefix(v, partLength)), nil
}

// prefix returns at most n characters from the start of s
func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) < n {
		return s
	}
	return string(r[:n])
}
