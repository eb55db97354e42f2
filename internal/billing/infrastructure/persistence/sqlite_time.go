package persistence

import "time"

// SQLite has no native date or timestamp types. Timestamps are stored as
// fixed-width UTC strings so that SQL string comparison and ORDER BY agree
// with chronological order even when sub-second precision differs between
// rows; calendar dates are stored as yyyy-mm-dd. Both parse back in UTC.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func formatDate(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, s, time.UTC)
}
