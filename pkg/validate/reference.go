package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsReference reports whether a bank deposit reference number carries a
// valid Luhn check digit.
func IsReference(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
