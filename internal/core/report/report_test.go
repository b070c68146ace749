package report

import (
	"testing"
	"time"

	"github.com/academix/school-system/internal/core/domain"
)

func TestPercentage(t *testing.T) {
	cases := []struct {
		score, max int64
		want       int
	}{
		{72, 100, 72},
		{1, 3, 33},
		{2, 3, 67},
		{0, 100, 0},
		{100, 100, 100},
		{5, 0, 0}, // zero max guards division, never raises
	}
	for _, c := range cases {
		if got := Percentage(c.score, c.max); got != c.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", c.score, c.max, got, c.want)
		}
	}
}

func TestGrade_Bands(t *testing.T) {
	cases := []struct {
		pct  int
		want string
	}{
		{100, GradeAPlus},
		{90, GradeAPlus},
		{89, GradeA},
		{80, GradeA},
		{79, GradeB},
		{70, GradeB},
		{69, GradeC},
		{60, GradeC},
		{59, GradeD},
		{50, GradeD},
		{49, GradeF},
		{0, GradeF},
	}
	for _, c := range cases {
		if got := Grade(c.pct); got != c.want {
			t.Errorf("Grade(%d) = %s, want %s", c.pct, got, c.want)
		}
	}
}

func TestGrade_TotalAndMonotonic(t *testing.T) {
	rank := map[string]int{GradeF: 0, GradeD: 1, GradeC: 2, GradeB: 3, GradeA: 4, GradeAPlus: 5}
	prev := -1
	for pct := 0; pct <= 100; pct++ {
		g := Grade(pct)
		r, ok := rank[g]
		if !ok {
			t.Fatalf("Grade(%d) returned unknown band %q", pct, g)
		}
		if r < prev {
			t.Fatalf("grade got worse as pct rose: pct=%d band=%s", pct, g)
		}
		prev = r
	}
}

func TestAttendanceRate(t *testing.T) {
	pct, warn := AttendanceRate(nil)
	if pct != 0 || !warn {
		t.Fatalf("empty records: got (%d, %v), want (0, true)", pct, warn)
	}

	day := func(d int) time.Time { return time.Date(2025, 9, d, 0, 0, 0, 0, time.UTC) }
	records := []domain.Attendance{
		{StudentID: "s1", Date: day(1), Status: domain.StatusPresent},
		{StudentID: "s1", Date: day(2), Status: domain.StatusPresent},
		{StudentID: "s1", Date: day(3), Status: domain.StatusPresent},
		{StudentID: "s1", Date: day(4), Status: domain.StatusAbsent},
	}
	pct, warn = AttendanceRate(records)
	if pct != 75 {
		t.Fatalf("got %d, want 75", pct)
	}
	if warn {
		t.Fatalf("75 is not below the threshold, warning must be off")
	}

	// Drop one present day: 2/3 rounds to 67, strictly below 75.
	pct, warn = AttendanceRate(records[1:])
	if pct != 67 || !warn {
		t.Fatalf("got (%d, %v), want (67, true)", pct, warn)
	}
}

func TestGroupBySemester(t *testing.T) {
	marks := []domain.Mark{
		{Subject: "Math", SemesterID: 1},
		{Subject: "Physics", SemesterID: 2},
		{Subject: "English", SemesterID: 1},
	}
	groups := GroupBySemester(marks, func(m domain.Mark) int64 { return m.SemesterID })
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].SemesterID != 1 || groups[1].SemesterID != 2 {
		t.Fatalf("group order not first-seen: %+v", groups)
	}
	if len(groups[0].Items) != 2 || groups[0].Items[0].Subject != "Math" || groups[0].Items[1].Subject != "English" {
		t.Fatalf("group 1 lost source order: %+v", groups[0].Items)
	}
}

func TestSemesterOverall_Weighted(t *testing.T) {
	results := []domain.SemesterExamResult{
		{Subject: "Math", Score: 90, MaxScore: 100},
		{Subject: "Lab", Score: 10, MaxScore: 50},
	}
	// Weighted: 100/150 = 67. An unweighted mean of 90% and 20% would be 55.
	if got := SemesterOverall(results); got != 67 {
		t.Fatalf("got %d, want 67", got)
	}

	single := []domain.SemesterExamResult{{Subject: "Math", Score: 72, MaxScore: 100}}
	if got := SemesterOverall(single); got != 72 {
		t.Fatalf("single subject: got %d, want 72", got)
	}

	if got := SemesterOverall(nil); got != 0 {
		t.Fatalf("empty semester: got %d, want 0", got)
	}
}

func TestSplitEvents(t *testing.T) {
	now := time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)
	past1 := domain.Event{ID: 1, Title: "Orientation", Date: now.AddDate(0, 0, -10)}
	past2 := domain.Event{ID: 2, Title: "Open Day", Date: now.AddDate(0, 0, -1)}
	future1 := domain.Event{ID: 3, Title: "Sports Day", Date: now.AddDate(0, 0, 3)}
	future2 := domain.Event{ID: 4, Title: "Exam Week", Date: now.AddDate(0, 0, 30)}
	boundary := domain.Event{ID: 5, Title: "Assembly", Date: now} // date == now is upcoming

	// Deliberately shuffled input order.
	upcoming, past := SplitEvents([]domain.Event{future2, past1, boundary, future1, past2}, now)

	if len(upcoming) != 3 || upcoming[0].ID != 5 || upcoming[1].ID != 3 || upcoming[2].ID != 4 {
		t.Fatalf("upcoming wrong (want soonest first): %+v", upcoming)
	}
	if len(past) != 2 || past[0].ID != 2 || past[1].ID != 1 {
		t.Fatalf("past wrong (want most recent first): %+v", past)
	}
}

func TestSortAttendance(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 9, d, 0, 0, 0, 0, time.UTC) }
	records := []domain.Attendance{
		{Date: day(1)},
		{Date: day(9)},
		{Date: day(4)},
	}
	sorted := SortAttendance(records)
	if !sorted[0].Date.Equal(day(9)) || !sorted[1].Date.Equal(day(4)) || !sorted[2].Date.Equal(day(1)) {
		t.Fatalf("not sorted most recent first: %+v", sorted)
	}
	if !records[0].Date.Equal(day(1)) {
		t.Fatalf("input slice was mutated")
	}
}

func TestSortComplaints(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2025, 9, 1, h, 0, 0, 0, time.UTC) }
	complaints := []domain.Complaint{
		{ID: 1, Timestamp: at(8)},
		{ID: 2, Timestamp: at(17)},
		{ID: 3, Timestamp: at(12)},
	}
	sorted := SortComplaints(complaints)
	if sorted[0].ID != 2 || sorted[1].ID != 3 || sorted[2].ID != 1 {
		t.Fatalf("not sorted most recent first: %+v", sorted)
	}
}
