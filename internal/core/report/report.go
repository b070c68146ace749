// Package report holds the pure derivation functions computed over fetched
// collections: percentages, grade bands, attendance rates, semester grouping,
// event time-bucketing, and the display orderings. Everything here is
// deterministic and side-effect free.
package report

import (
	"math"
	"sort"
	"time"

	"github.com/academix/school-system/internal/core/domain"
)

// AttendanceThreshold is the rate below which the low-attendance warning fires.
const AttendanceThreshold = 75

// Grade labels, highest band first.
const (
	GradeAPlus = "A+"
	GradeA     = "A"
	GradeB     = "B"
	GradeC     = "C"
	GradeD     = "D"
	GradeF     = "F"
)

// Percentage returns round(100 * score / maxScore), or 0 when maxScore is 0.
func Percentage(score, maxScore int64) int {
	if maxScore == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(maxScore) * 100))
}

// Grade maps a percentage to its band. Inclusive lower bounds, highest
// matching band wins.
func Grade(pct int) string {
	switch {
	case pct >= 90:
		return GradeAPlus
	case pct >= 80:
		return GradeA
	case pct >= 70:
		return GradeB
	case pct >= 60:
		return GradeC
	case pct >= 50:
		return GradeD
	default:
		return GradeF
	}
}

// AttendanceRate returns the rounded percentage of present records and
// whether it falls strictly below the warning threshold. An empty record set
// yields 0 with the warning raised, not an error.
func AttendanceRate(records []domain.Attendance) (pct int, belowThreshold bool) {
	if len(records) == 0 {
		return 0, true
	}
	present := 0
	for _, r := range records {
		if r.Status == domain.StatusPresent {
			present++
		}
	}
	pct = int(math.Round(float64(present) / float64(len(records)) * 100))
	return pct, pct < AttendanceThreshold
}

// SemesterGroup is one partition of items sharing a semester identifier.
type SemesterGroup[T any] struct {
	SemesterID int64
	Items      []T
}

// GroupBySemester partitions items by semester identifier, preserving
// first-seen group order; items inside a group keep the source order.
func GroupBySemester[T any](items []T, semesterID func(T) int64) []SemesterGroup[T] {
	var groups []SemesterGroup[T]
	index := make(map[int64]int)
	for _, it := range items {
		id := semesterID(it)
		i, ok := index[id]
		if !ok {
			i = len(groups)
			index[id] = i
			groups = append(groups, SemesterGroup[T]{SemesterID: id})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}

// SemesterOverall returns the weighted percentage of a semester's results:
// the sum of scores over the sum of max scores, not a mean of per-subject
// percentages.
func SemesterOverall(results []domain.SemesterExamResult) int {
	var score, max int64
	for _, r := range results {
		score += r.Score
		max += r.MaxScore
	}
	return Percentage(score, max)
}

// SplitEvents buckets events around now: an event dated at or after now is
// upcoming, otherwise past. Upcoming is sorted soonest first, past most
// recent first. The input slice is not modified.
func SplitEvents(events []domain.Event, now time.Time) (upcoming, past []domain.Event) {
	for _, e := range events {
		if !e.Date.Before(now) {
			upcoming = append(upcoming, e)
		} else {
			past = append(past, e)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].Date.Before(upcoming[j].Date) })
	sort.SliceStable(past, func(i, j int) bool { return past[i].Date.After(past[j].Date) })
	return upcoming, past
}

// SortAttendance returns a copy of records sorted most recent day first.
func SortAttendance(records []domain.Attendance) []domain.Attendance {
	out := make([]domain.Attendance, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// SortComplaints returns a copy of complaints sorted most recent first.
func SortComplaints(complaints []domain.Complaint) []domain.Complaint {
	out := make([]domain.Complaint, len(complaints))
	copy(out, complaints)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out
}
