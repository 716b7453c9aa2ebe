package validate

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s is a numeric string with a valid Luhn check
// digit. Bank transfer references on withdrawal records use this.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// NewHolderNumber generates a Luhn-valid numeric string of the given
// length for use as the numeric part of a holder id.
func NewHolderNumber(size int) string {
	if size < 2 {
		size = 2
	}
	var b strings.Builder
	b.WriteString(strconv.Itoa(1 + rand.Intn(9)))
	for i := 1; i < size-1; i++ {
		b.WriteString(strconv.Itoa(rand.Intn(10)))
	}
	prefix := b.String()
	for d := 0; d <= 9; d++ {
		candidate := prefix + strconv.Itoa(d)
		if goluhn.Validate(candidate) == nil {
			return candidate
		}
	}
	return prefix + "0"
}
