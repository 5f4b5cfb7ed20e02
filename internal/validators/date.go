package validators

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	isoRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	looseRe = regexp.MustCompile(`^(\d{1,4})[/-](\d{1,2})[/-](\d{1,4})$`)
)

// ToISO converts a loosely formatted date to YYYY-MM-DD, or returns "" when
// it cannot. Rules:
//   - already ISO: unchanged;
//   - a four digit first component is the year, followed by month and day;
//   - otherwise the year is last, and a component above 12 must be the day;
//   - when both could be the month, a dash means day-first and a slash
//     means month-first.
func ToISO(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if isoRe.MatchString(s) {
		return s
	}

	m := looseRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	a, _ := strconv.Atoi(m[1])
	b, _ := strconv.Atoi(m[2])
	c, _ := strconv.Atoi(m[3])

	if len(strconv.Itoa(a)) == 4 {
		return fmt.Sprintf("%d-%02d-%02d", a, b, c)
	}

	var month, day int
	switch {
	case a > 12 && b <= 12:
		day, month = a, b
	case b > 12 && a <= 12:
		month, day = a, b
	case strings.Contains(s, "-"):
		day, month = a, b
	default:
		month, day = a, b
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}
	return fmt.Sprintf("%d-%02d-%02d", c, month, day)
}
