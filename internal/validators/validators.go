package validators

import (
	"regexp"
	"strings"
	"time"
)

// ISODateLayout is the layout every stored date uses.
const ISODateLayout = "2006-01-02"

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsRequired reports whether v has content after trimming whitespace.
func IsRequired(v string) bool {
	return strings.TrimSpace(v) != ""
}

// IsEmail checks the basic local@domain.tld shape.
func IsEmail(v string) bool {
	if !IsRequired(v) {
		return false
	}
	return emailRe.MatchString(strings.TrimSpace(v))
}

// ParseISODate parses a strict YYYY-MM-DD calendar date. Impossible dates
// such as 2021-02-30 are rejected.
func ParseISODate(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if len(v) != len(ISODateLayout) {
		return time.Time{}, false
	}
	d, err := time.Parse(ISODateLayout, v)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// IsDate reports whether v is a valid ISO calendar date.
func IsDate(v string) bool {
	_, ok := ParseISODate(v)
	return ok
}

// NotFuture reports whether the date v is today or earlier relative to now.
// Only the calendar day is compared; an unparseable date is not accepted.
func NotFuture(v string, now time.Time) bool {
	d, ok := ParseISODate(v)
	if !ok {
		return false
	}
	today, _ := ParseISODate(now.Format(ISODateLayout))
	return !d.After(today)
}

// Before reports whether a is strictly earlier than b. Both must parse.
func Before(a, b string) bool {
	da, ok := ParseISODate(a)
	if !ok {
		return false
	}
	db, ok := ParseISODate(b)
	if !ok {
		return false
	}
	return da.Before(db)
}
