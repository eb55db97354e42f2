package persistence

import "time"

// SQLite stores timestamps as fixed-width UTC strings so that SQL string
// comparison agrees with chronological order even when sub-second precision
// differs between rows.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
