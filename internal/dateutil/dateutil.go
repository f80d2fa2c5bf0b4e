// Package dateutil parses the locale-formatted date strings found in
// board listings into canonical time values.
package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// Layouts observed across the registered boards, most specific first.
var layouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006.01.02 15:04",
	"2006.01.02",
	"2006. 01. 02.",
	"2006. 01. 02",
	"2006/01/02",
}

// GetDate parses a board date string. Surrounding whitespace is ignored.
// Input matching none of the known layouts returns the zero time and an
// error; callers decide whether that drops the row or just the date.
func GetDate(text string) (time.Time, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format %q", trimmed)
}
