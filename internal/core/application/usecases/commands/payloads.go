package commands

import "time"

// isoMillisLayout is the timestamp form used in notification payloads.
// It matches what the client-facing apps already parse ("...T09:00:00.000Z").
const isoMillisLayout = "2006-01-02T15:04:05.000Z07:00"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(isoMillisLayout)
}
