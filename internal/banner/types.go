package banner

import (
	"strconv"

	"course-catalog/internal/domain"
)

// searchResponse is the paginated envelope returned by the searchResults
// endpoint.
type searchResponse struct {
	Success    bool        `json:"success"`
	TotalCount int         `json:"totalCount"`
	Data       []rawCourse `json:"data"`
}

// rawCourse mirrors one row of the search response. The service emits many
// more fields; only the ones the pipeline consumes are mapped.
type rawCourse struct {
	CourseReferenceNumber string `json:"courseReferenceNumber"`
	Subject               string `json:"subject"`
	SubjectCourse         string `json:"subjectCourse"`
	CourseNumber          string `json:"courseNumber"`
	CourseTitle           string `json:"courseTitle"`
	SequenceNumber        string `json:"sequenceNumber"`

	ScheduleTypeDescription        string `json:"scheduleTypeDescription"`
	InstructionalMethodDescription string `json:"instructionalMethodDescription"`

	// creditHours is null for variable-credit courses; the low/high pair
	// describes the range then.
	CreditHours    *float64 `json:"creditHours"`
	CreditHourLow  float64  `json:"creditHourLow"`
	CreditHourHigh float64  `json:"creditHourHigh"`

	Enrollment        int `json:"enrollment"`
	MaximumEnrollment int `json:"maximumEnrollment"`
	SeatsAvailable    int `json:"seatsAvailable"`

	Faculty         []rawFaculty `json:"faculty"`
	MeetingsFaculty []rawMeeting `json:"meetingsFaculty"`
}

type rawFaculty struct {
	DisplayName      string `json:"displayName"`
	PrimaryIndicator bool   `json:"primaryIndicator"`
}

type rawMeeting struct {
	MeetingTime rawMeetingTime `json:"meetingTime"`
}

type rawMeetingTime struct {
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`

	BeginTime string `json:"beginTime"`
	EndTime   string `json:"endTime"`
	Building  string `json:"building"`
	Room      string `json:"room"`
}

const sentinelTBD = "TBD"

func (r rawCourse) toDomain() domain.CourseRecord {
	return domain.CourseRecord{
		Subject:       r.Subject,
		SubjectCourse: r.SubjectCourse,
		CourseNumber:  r.CourseNumber,
		Title:         r.CourseTitle,
		Credits:       r.credits(),
		CRN:           r.CourseReferenceNumber,
		SectionNumber: r.SequenceNumber,
		ScheduleType:  r.ScheduleTypeDescription,
		Method:        r.InstructionalMethodDescription,
		Instructor:    r.instructor(),
		Schedule:      r.schedule(),
		Enrollment: domain.Enrollment{
			Enrolled:  r.Enrollment,
			Capacity:  r.MaximumEnrollment,
			Available: r.SeatsAvailable,
		},
	}
}

// credits renders the credit descriptor: a fixed value when creditHours is
// set and non-zero, "low-high" for a range, a single bound when only one is
// set, "TBD" when the source says nothing.
func (r rawCourse) credits() string {
	if r.CreditHours != nil && *r.CreditHours != 0 {
		return formatCredit(*r.CreditHours)
	}

	low, high := r.CreditHourLow, r.CreditHourHigh
	switch {
	case low > 0 && high > 0 && low != high:
		return formatCredit(low) + "-" + formatCredit(high)
	case high > 0:
		return formatCredit(high)
	case low > 0:
		return formatCredit(low)
	default:
		return sentinelTBD
	}
}

func formatCredit(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// instructor picks the primary faculty entry, falling back to the first
// listed, then to the TBD sentinel.
func (r rawCourse) instructor() string {
	if len(r.Faculty) == 0 {
		return sentinelTBD
	}
	for _, f := range r.Faculty {
		if f.PrimaryIndicator && f.DisplayName != "" {
			return f.DisplayName
		}
	}
	if r.Faculty[0].DisplayName != "" {
		return r.Faculty[0].DisplayName
	}
	return sentinelTBD
}

func (r rawCourse) schedule() domain.Schedule {
	if len(r.MeetingsFaculty) == 0 {
		return domain.Schedule{Days: []string{}}
	}

	mt := r.MeetingsFaculty[0].MeetingTime

	days := []string{}
	for _, d := range []struct {
		set    bool
		abbrev string
	}{
		{mt.Monday, "M"},
		{mt.Tuesday, "T"},
		{mt.Wednesday, "W"},
		{mt.Thursday, "R"},
		{mt.Friday, "F"},
		{mt.Saturday, "S"},
		{mt.Sunday, "U"},
	} {
		if d.set {
			days = append(days, d.abbrev)
		}
	}

	return domain.Schedule{
		Days:      days,
		StartTime: mt.BeginTime,
		EndTime:   mt.EndTime,
		Building:  mt.Building,
		Room:      mt.Room,
	}
}
