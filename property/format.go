package property

import (
	"strconv"
	"strings"
	"time"
)

// USD formats a whole-dollar amount with thousands separators, e.g. 221000
// -> "$221,000". Fractional cents are truncated; providers quote whole
// dollars.
func USD(amount float64) string {
	return "$" + Comma(int64(amount))
}

// Comma inserts thousands separators into an integer's decimal form.
func Comma(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := strconv.FormatInt(v, 10)
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// HumanDate converts machine date strings (ISO 8601, YYYY-MM-DD) into the
// long form "January 2, 2006". Unparseable input is passed through unchanged
// rather than discarded.
func HumanDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return raw
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return raw
}
