package voucher

import (
	"strings"
	"time"
)

var weekdays = func() map[string]string {
	m := make(map[string]string, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		m[strings.ToLower(d.String())] = d.String()
	}
	return m
}()

// canonicalDay приводит название дня недели к виду Monday.
func canonicalDay(s string) (string, bool) {
	day, ok := weekdays[strings.ToLower(strings.TrimSpace(s))]
	return day, ok
}
