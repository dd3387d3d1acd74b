package domain

import (
	"testing"
)

func TestCourseRecord(t *testing.T) {
	rec := CourseRecord{
		Subject:       "CS",
		SubjectCourse: "CS010C",
		CourseNumber:  "010C",
		Title:         "Intermediate Data Structures",
		Credits:       "4",
		CRN:           "21990",
		SectionNumber: "001",
		Instructor:    "TBD",
		Schedule: Schedule{
			Days:      []string{"M", "W", "F"},
			StartTime: "1000",
			EndTime:   "1050",
			Building:  "BRNHL",
			Room:      "A125",
		},
		Enrollment: Enrollment{Enrolled: 90, Capacity: 120, Available: 30},
	}

	if rec.Subject != "CS" {
		t.Errorf("Expected Subject to be 'CS', got '%s'", rec.Subject)
	}

	if rec.SubjectCourse != "CS010C" {
		t.Errorf("Expected SubjectCourse to be 'CS010C', got '%s'", rec.SubjectCourse)
	}

	if rec.CRN != "21990" {
		t.Errorf("Expected CRN to be '21990', got '%s'", rec.CRN)
	}

	if len(rec.Schedule.Days) != 3 {
		t.Errorf("Expected Schedule.Days to have 3 items, got %d", len(rec.Schedule.Days))
	}

	if rec.Enrollment.Available != 30 {
		t.Errorf("Expected Enrollment.Available to be 30, got %d", rec.Enrollment.Available)
	}
}

func TestPrerequisiteSetZeroValue(t *testing.T) {
	var set PrerequisiteSet

	if set.HasPrerequisites {
		t.Error("Expected zero-value PrerequisiteSet to have HasPrerequisites=false")
	}

	if len(set.Requirements) != 0 {
		t.Errorf("Expected zero-value PrerequisiteSet to have no requirements, got %d", len(set.Requirements))
	}
}
