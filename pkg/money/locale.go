package money

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// FromLocale derives the currency in use in the region of a BCP 47 tag,
// e.g. "de-DE" -> EUR. A tag without a region falls back to the region
// most likely for its language.
func FromLocale(tag string) (Code, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidLocale, tag)
	}
	region, conf := t.Region()
	if conf == language.No {
		return "", fmt.Errorf("%w: %q", ErrNoCurrencyForLocale, tag)
	}
	unit, ok := currency.FromRegion(region)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNoCurrencyForLocale, tag)
	}
	return Code(unit.String()), nil
}
