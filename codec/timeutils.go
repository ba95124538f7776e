package codec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const shanghaiOffset = 8 * time.Hour

var lishiPattern = regexp.MustCompile(`(?:(\d+)小时)?(\d+)分钟`)

// ShanghaiNow returns the current wall-clock instant shifted to
// UTC+8, so its UTC calendar fields read as Shanghai local time. The
// host timezone configuration is deliberately ignored.
func ShanghaiNow() time.Time {
	return time.Now().UTC().Add(shanghaiOffset)
}

// ShanghaiToday returns today's date at UTC+8 formatted yyyy-MM-dd.
func ShanghaiToday() string {
	return FormatDate(ShanghaiNow())
}

// FormatDate renders the UTC calendar date of t as yyyy-MM-dd.
func FormatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ParseCompactDate parses an upstream yyyyMMdd date into a UTC
// midnight instant.
func ParseCompactDate(s string) (time.Time, error) {
	t, err := time.Parse("20060102", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse train date %q: %w", s, err)
	}
	return t, nil
}

// DateNotBefore reports whether dateStr (yyyy-MM-dd) is today or
// later in the UTC+8 reference used by the booking service.
func DateNotBefore(dateStr string, now time.Time) bool {
	input, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		return false
	}
	today := now.UTC().Truncate(24 * time.Hour)
	return !input.Before(today)
}

// ArrivalDate computes the arrival instant of a run that departs at
// startTime ("HH:MM") on startDate and lasts lishi ("HH:MM"). Day
// rollover across midnight is carried by the calendar arithmetic.
func ArrivalDate(startDate time.Time, startTime, lishi string) time.Time {
	sh, sm := splitClock(startTime)
	dh, dm := splitClock(lishi)
	return startDate.Add(time.Duration(sh+dh)*time.Hour + time.Duration(sm+dm)*time.Minute)
}

// DurationMinutes converts an "HH:MM" duration to total minutes.
func DurationMinutes(lishi string) int {
	h, m := splitClock(lishi)
	return h*60 + m
}

// ExtractLishi converts a free-text duration of the form
// "(H小时)?M分钟" to zero-padded "HH:MM". Anything that does not
// match decodes to "00:00" rather than failing.
func ExtractLishi(allLishi string) string {
	m := lishiPattern.FindStringSubmatch(allLishi)
	if m == nil {
		return "00:00"
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

func splitClock(s string) (h, m int) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) > 0 {
		h, _ = strconv.Atoi(parts[0])
	}
	if len(parts) > 1 {
		m, _ = strconv.Atoi(parts[1])
	}
	return h, m
}
