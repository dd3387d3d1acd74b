package domain

// CourseRecord is the canonical representation of one scheduled section inside
// this service. The fetcher maps raw registration-service rows into this model,
// the enricher attaches prerequisite data, and all destinations (subject
// files, SFTP drop) map from it.
type CourseRecord struct {
	Subject       string // short subject code, e.g. "CS"
	SubjectCourse string // subject + number, e.g. "CS010C"
	CourseNumber  string
	Title         string
	Credits       string // fixed value, "low-high" range, or "TBD"

	CRN           string // course reference number, unique per section
	SectionNumber string
	ScheduleType  string
	Method        string

	Instructor string // "TBD" when the source lists nobody
	Schedule   Schedule
	Enrollment Enrollment

	// PrerequisiteText is the raw text fetched per CRN; empty both when the
	// course has none and when the lookup degraded.
	PrerequisiteText string
	Prerequisites    PrerequisiteSet
}

// Schedule is the meeting block of a section. All fields are optional in the
// source; empty strings and a nil day list mean "not scheduled yet".
type Schedule struct {
	Days      []string `json:"days"` // M T W R F S U
	StartTime string   `json:"startTime,omitempty"`
	EndTime   string   `json:"endTime,omitempty"`
	Building  string   `json:"building,omitempty"`
	Room      string   `json:"room,omitempty"`
}

// Enrollment counters as reported by the source. Available is not derived
// from Capacity-Enrolled; the source may disagree and wins.
type Enrollment struct {
	Enrolled  int `json:"enrolled"`
	Capacity  int `json:"capacity"`
	Available int `json:"available"`
}

// Logic classifies how the requirements of a PrerequisiteSet combine.
type Logic string

const (
	LogicNone    Logic = "NONE"
	LogicSingle  Logic = "SINGLE"
	LogicAnd     Logic = "AND"
	LogicOr      Logic = "OR"
	LogicComplex Logic = "COMPLEX"
)

// Requirement is one atomic course requirement extracted from prerequisite
// text. SubjectCode and CourseNumber are never both empty.
type Requirement struct {
	SubjectName       string `json:"subject_name"`
	SubjectCode       string `json:"subject_code"`
	CourseNumber      string `json:"course_number"`
	MinimumGrade      string `json:"minimum_grade"`
	ConcurrentAllowed bool   `json:"concurrent_allowed"`
}

// PrerequisiteSet is the structured form of one course's prerequisite text.
// HasPrerequisites is true iff Requirements is non-empty, and Logic is
// LogicNone iff HasPrerequisites is false.
type PrerequisiteSet struct {
	RawText          string        `json:"raw_text"`
	Requirements     []Requirement `json:"courses"`
	HasPrerequisites bool          `json:"has_prerequisites"`
	Logic            Logic         `json:"logic"`
}
