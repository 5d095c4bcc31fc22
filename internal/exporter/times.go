package exporter

import (
	"fmt"
	"strconv"
	"time"
)

const readableLayout = "2006-01-02 15:04:05"

// DateToEpoch interprets a YYYY-MM-DD date and a HH:MM:SS time of day in loc
// and returns the Unix timestamp of that instant.
func DateToEpoch(dateStr, timeStr string, loc *time.Location) (int64, error) {
	t, err := time.ParseInLocation(readableLayout, dateStr+" "+timeStr, loc)
	if err != nil {
		return 0, fmt.Errorf("parse date/time %q %q: %w", dateStr, timeStr, err)
	}
	return t.Unix(), nil
}

// FormatEpoch renders a Unix timestamp as a readable time in loc.
func FormatEpoch(sec int64, loc *time.Location) string {
	return time.Unix(sec, 0).In(loc).Format(readableLayout)
}

// FormatSlackTimestamp renders a Slack "seconds.fraction" timestamp as a
// readable time in loc. A malformed timestamp renders as the epoch.
func FormatSlackTimestamp(ts string, loc *time.Location) string {
	f, err := strconv.ParseFloat(ts, 64)
	if err != nil {
		f = 0
	}
	sec := int64(f)
	nsec := int64((f - float64(sec)) * 1e9)
	return time.Unix(sec, nsec).In(loc).Format(readableLayout)
}
