package extension

import (
	"sort"
	"strings"

	"github.com/montanaflynn/stats"

	"extproc/domain/core"
)

// Aggregate groups deduplicated records by assignment and computes the
// run-level summary. Grouping is case-sensitive on the original-cased
// assignment name: distinct casings of the same assignment stay separate
// groups. That is a known limitation of the source form, preserved rather
// than silently normalized.
//
// Groups come back sorted by assignment name, case-insensitive ascending,
// so summary output is deterministic. The unique-student figure
// deduplicates emails case-insensitively across all groups.
func Aggregate(records []ExtensionRecord) Summary {
	byAssignment := make(map[string][]ExtensionRecord)
	var order []string
	for _, rec := range records {
		if _, seen := byAssignment[rec.Assignment]; !seen {
			order = append(order, rec.Assignment)
		}
		byAssignment[rec.Assignment] = append(byAssignment[rec.Assignment], rec)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return strings.ToLower(order[i]) < strings.ToLower(order[j])
	})

	groups := make([]AssignmentGroup, 0, len(order))
	for _, name := range order {
		members := byAssignment[name]
		group := AssignmentGroup{
			Assignment:   name,
			Records:      members,
			Count:        len(members),
			EarliestDate: members[0].AdjustedDate,
			LatestDate:   members[0].AdjustedDate,
		}
		for _, rec := range members[1:] {
			if rec.AdjustedDate.Before(group.EarliestDate) {
				group.EarliestDate = rec.AdjustedDate
			}
			if rec.AdjustedDate.After(group.LatestDate) {
				group.LatestDate = rec.AdjustedDate
			}
		}
		groups = append(groups, group)
	}

	uniqueEmails := make(map[string]struct{}, len(records))
	for _, rec := range records {
		uniqueEmails[strings.ToLower(rec.Email)] = struct{}{}
	}

	summary := Summary{
		TotalRecords:   len(records),
		UniqueStudents: len(uniqueEmails),
		Groups:         groups,
	}
	summary.AdjustedCount, summary.MeanShiftDays, summary.MedianShiftDays = shiftStatistics(records)
	return summary
}

// shiftStatistics measures how far the Sunday adjustment moved each record:
// how many records moved at all, and the mean and median forward shift in
// days across all records.
func shiftStatistics(records []ExtensionRecord) (adjusted int, mean, median float64) {
	if len(records) == 0 {
		return 0, 0, 0
	}

	shifts := make([]float64, 0, len(records))
	for _, rec := range records {
		shift := core.DaysBetween(rec.RequestedDate, rec.AdjustedDate)
		if shift > 0 {
			adjusted++
		}
		shifts = append(shifts, float64(shift))
	}

	// stats errors only on empty input, which is handled above
	mean, _ = stats.Mean(shifts)
	median, _ = stats.Median(shifts)
	return adjusted, mean, median
}
