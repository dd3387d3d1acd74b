package banner

import (
	"reflect"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func TestCredits(t *testing.T) {
	testCases := []struct {
		name     string
		course   rawCourse
		expected string
	}{
		{"fixed hours", rawCourse{CreditHours: floatPtr(4)}, "4"},
		{"fixed fractional", rawCourse{CreditHours: floatPtr(1.5)}, "1.5"},
		{"range", rawCourse{CreditHourLow: 1, CreditHourHigh: 4}, "1-4"},
		{"high only", rawCourse{CreditHourHigh: 3}, "3"},
		{"low only", rawCourse{CreditHourLow: 2}, "2"},
		{"equal bounds", rawCourse{CreditHourLow: 4, CreditHourHigh: 4}, "4"},
		{"zero hours falls through", rawCourse{CreditHours: floatPtr(0), CreditHourHigh: 5}, "5"},
		{"nothing set", rawCourse{}, "TBD"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.course.credits(); got != tc.expected {
				t.Errorf("Expected credits '%s', got '%s'", tc.expected, got)
			}
		})
	}
}

func TestInstructor(t *testing.T) {
	testCases := []struct {
		name     string
		faculty  []rawFaculty
		expected string
	}{
		{"no faculty", nil, "TBD"},
		{"primary wins", []rawFaculty{
			{DisplayName: "Adams, Alice", PrimaryIndicator: false},
			{DisplayName: "Baker, Bob", PrimaryIndicator: true},
		}, "Baker, Bob"},
		{"first as fallback", []rawFaculty{
			{DisplayName: "Adams, Alice"},
			{DisplayName: "Baker, Bob"},
		}, "Adams, Alice"},
		{"empty names", []rawFaculty{{DisplayName: ""}}, "TBD"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			course := rawCourse{Faculty: tc.faculty}
			if got := course.instructor(); got != tc.expected {
				t.Errorf("Expected instructor '%s', got '%s'", tc.expected, got)
			}
		})
	}
}

func TestSchedule(t *testing.T) {
	course := rawCourse{
		MeetingsFaculty: []rawMeeting{{
			MeetingTime: rawMeetingTime{
				Monday:    true,
				Wednesday: true,
				Thursday:  true,
				Sunday:    true,
				BeginTime: "1000",
				EndTime:   "1050",
				Building:  "WCH",
				Room:      "143",
			},
		}},
	}

	sched := course.schedule()

	expectedDays := []string{"M", "W", "R", "U"}
	if !reflect.DeepEqual(sched.Days, expectedDays) {
		t.Errorf("Expected days %v, got %v", expectedDays, sched.Days)
	}
	if sched.StartTime != "1000" || sched.EndTime != "1050" {
		t.Errorf("Expected times 1000-1050, got %s-%s", sched.StartTime, sched.EndTime)
	}
	if sched.Building != "WCH" || sched.Room != "143" {
		t.Errorf("Expected WCH 143, got %s %s", sched.Building, sched.Room)
	}
}

func TestScheduleNoMeetings(t *testing.T) {
	sched := rawCourse{}.schedule()
	if sched.Days == nil || len(sched.Days) != 0 {
		t.Errorf("Expected empty (non-nil) days, got %v", sched.Days)
	}
}

func TestToDomain(t *testing.T) {
	course := rawCourse{
		CourseReferenceNumber:          "12345",
		Subject:                        "CS",
		SubjectCourse:                  "CS010C",
		CourseNumber:                   "010C",
		CourseTitle:                    "Intermediate Data Structures",
		SequenceNumber:                 "001",
		ScheduleTypeDescription:        "Lecture",
		InstructionalMethodDescription: "In-Person",
		CreditHours:                    floatPtr(4),
		Enrollment:                     30,
		MaximumEnrollment:              35,
		SeatsAvailable:                 5,
		Faculty:                        []rawFaculty{{DisplayName: "Baker, Bob", PrimaryIndicator: true}},
	}

	rec := course.toDomain()

	if rec.CRN != "12345" {
		t.Errorf("Expected CRN '12345', got '%s'", rec.CRN)
	}
	if rec.Credits != "4" {
		t.Errorf("Expected credits '4', got '%s'", rec.Credits)
	}
	if rec.Instructor != "Baker, Bob" {
		t.Errorf("Expected instructor 'Baker, Bob', got '%s'", rec.Instructor)
	}
	if rec.Enrollment.Capacity != 35 || rec.Enrollment.Available != 5 {
		t.Errorf("Unexpected enrollment: %+v", rec.Enrollment)
	}
}
