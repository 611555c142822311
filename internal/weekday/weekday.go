// Package weekday maps dates and day indices to English weekday names.
package weekday

import (
	"fmt"
	"time"
)

// Name returns the full English weekday name for t.
func Name(t time.Time) string {
	return t.Weekday().String()
}

// OfIndex returns the weekday name for a 0=Sunday..6=Saturday index.
func OfIndex(i int) (string, error) {
	if i < 0 || i > 6 {
		return "", fmt.Errorf("weekday index %d out of range 0..6", i)
	}
	return time.Weekday(i).String(), nil
}
