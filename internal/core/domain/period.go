package domain

import (
	"fmt"
	"time"
)

// Semester identifies one half of an academic year.
type Semester string

const (
	SemesterFirst  Semester = "first"  // August through December
	SemesterSecond Semester = "second" // January through July
)

// AcademicYear is the primary reporting period: August 1 of StartYear
// through July 31 of EndYear.
type AcademicYear struct {
	StartYear int `json:"startYear"`
	EndYear   int `json:"endYear"`
}

// CurrentAcademicYear resolves the academic year containing now.
// August onward belongs to the year starting in the current calendar year,
// January through July to the year started the previous August.
func CurrentAcademicYear(now time.Time) AcademicYear {
	year := now.Year()
	if now.Month() >= time.August {
		return AcademicYear{StartYear: year, EndYear: year + 1}
	}
	return AcademicYear{StartYear: year - 1, EndYear: year}
}

// AcademicYearOf returns the academic year starting in August of startYear.
func AcademicYearOf(startYear int) AcademicYear {
	return AcademicYear{StartYear: startYear, EndYear: startYear + 1}
}

// Key returns the composite annual-record identifier, e.g. 20242025 for the
// 2024-2025 academic year.
func (ay AcademicYear) Key() int64 {
	return int64(ay.StartYear)*10000 + int64(ay.EndYear)
}

// Range returns the inclusive [Aug 1 StartYear, Jul 31 EndYear] bounds.
func (ay AcademicYear) Range() (time.Time, time.Time) {
	start := time.Date(ay.StartYear, time.August, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(ay.EndYear, time.July, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}

// Contains reports whether the date t falls within the academic year.
func (ay AcademicYear) Contains(t time.Time) bool {
	start, end := ay.Range()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}

// Previous returns the academic year immediately before this one.
func (ay AcademicYear) Previous() AcademicYear {
	return AcademicYearOf(ay.StartYear - 1)
}

func (ay AcademicYear) String() string {
	return fmt.Sprintf("%d-%d", ay.StartYear, ay.EndYear)
}

// SemesterTerm names one semester of a calendar year. For the second
// semester, Year is the calendar year containing January through July.
type SemesterTerm struct {
	Year     int      `json:"year"`
	Semester Semester `json:"semester"`
}

// CurrentSemester resolves the semester containing now.
func CurrentSemester(now time.Time) SemesterTerm {
	if now.Month() >= time.August {
		return SemesterTerm{Year: now.Year(), Semester: SemesterFirst}
	}
	return SemesterTerm{Year: now.Year(), Semester: SemesterSecond}
}

// Range returns the inclusive date bounds of the semester:
// first = [Aug 1, Dec 31], second = [Jan 1, Jul 31].
func (st SemesterTerm) Range() (time.Time, time.Time) {
	if st.Semester == SemesterFirst {
		return time.Date(st.Year, time.August, 1, 0, 0, 0, 0, time.UTC),
			time.Date(st.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(st.Year, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(st.Year, time.July, 31, 0, 0, 0, 0, time.UTC)
}

// Previous returns the semester immediately before this one. The second
// semester follows the first within the same academic year, so first
// semester's predecessor is the second semester of the same calendar year.
func (st SemesterTerm) Previous() SemesterTerm {
	if st.Semester == SemesterFirst {
		return SemesterTerm{Year: st.Year, Semester: SemesterSecond}
	}
	return SemesterTerm{Year: st.Year - 1, Semester: SemesterFirst}
}

// AcademicMonths lists calendar months in academic-year order, August
// through July. Monthly chart series always follow this order.
var AcademicMonths = [12]time.Month{
	time.August, time.September, time.October, time.November, time.December,
	time.January, time.February, time.March, time.April, time.May, time.June, time.July,
}

// MonthLabel returns the 3-letter month label used by the dashboard charts.
func MonthLabel(m time.Month) string {
	return m.String()[:3]
}
