package extension

import (
	"extproc/domain/core"
)

// AdjustDate snaps a date forward to the next Sunday. A date already on
// Sunday is returned unchanged; any other weekday moves 1 to 6 days
// forward. When enabled is false the date passes through untouched.
//
// The result depends only on the date's weekday, never on wall-clock time,
// so output is reproducible regardless of when the tool runs.
func AdjustDate(d core.Date, enabled bool) core.Date {
	if !enabled {
		return d
	}
	days := (7 - int(d.Weekday())) % 7 // time.Sunday == 0
	if days == 0 {
		return d
	}
	return d.AddDays(days)
}

// AdjustRecords applies AdjustDate to every record's requested date,
// returning a new slice with AdjustedDate populated.
func AdjustRecords(records []ExtensionRecord, enabled bool) []ExtensionRecord {
	out := make([]ExtensionRecord, len(records))
	for i, rec := range records {
		rec.AdjustedDate = AdjustDate(rec.RequestedDate, enabled)
		out[i] = rec
	}
	return out
}
