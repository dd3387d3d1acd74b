package catalog

import (
	"sort"

	"course-catalog/internal/domain"
	"course-catalog/internal/prereq"
)

// Section is the published shape of one scheduled section of a course.
type Section struct {
	Section      string            `json:"section"`
	CRN          string            `json:"crn"`
	Instructor   string            `json:"instructor"`
	Schedule     domain.Schedule   `json:"schedule"`
	Type         string            `json:"type"`
	Method       string            `json:"method"`
	Availability domain.Enrollment `json:"availability"`
}

// PrerequisiteSummary is a parsed prerequisite set plus its one-line rendering.
type PrerequisiteSummary struct {
	domain.PrerequisiteSet
	Summary string `json:"summary"`
}

// Course is one catalog course with all of its sections merged together.
// Course-level metadata comes from whichever section record was seen last.
type Course struct {
	ID            string              `json:"course_id"` // e.g. "CS010C"
	Title         string              `json:"title"`
	Credits       string              `json:"credits"`
	Prerequisites PrerequisiteSummary `json:"prerequisites"`
	Sections      []Section           `json:"sections"`
}

// Catalog maps subject codes to their courses, sorted by course ID.
type Catalog map[string][]Course

// SubjectSummary describes one subject's slice of the catalog.
type SubjectSummary struct {
	TotalCourses  int    `json:"total_courses"`
	TotalSections int    `json:"total_sections"`
	Filename      string `json:"filename"`
}

// SubjectIndex maps subject codes to their summaries.
type SubjectIndex map[string]SubjectSummary

// SubjectFilename is the file a subject's courses are written to.
func SubjectFilename(subject string) string {
	return subject + ".json"
}

// Assemble groups flat section records into a per-subject catalog. Records of
// the same course (same subject and subject-course ID) merge into one Course;
// section order follows the input, courses sort by ID within each subject.
func Assemble(records []domain.CourseRecord) Catalog {
	type courseKey struct {
		subject string
		id      string
	}

	courses := make(map[courseKey]*Course)
	var order []courseKey

	for _, rec := range records {
		key := courseKey{subject: rec.Subject, id: rec.SubjectCourse}

		course, ok := courses[key]
		if !ok {
			course = &Course{ID: rec.SubjectCourse}
			courses[key] = course
			order = append(order, key)
		}

		// Course metadata is repeated on every section row; the last one wins.
		course.Title = rec.Title
		course.Credits = rec.Credits
		course.Prerequisites = PrerequisiteSummary{
			PrerequisiteSet: rec.Prerequisites,
			Summary:         prereq.Summary(rec.Prerequisites),
		}

		course.Sections = append(course.Sections, Section{
			Section:      rec.SectionNumber,
			CRN:          rec.CRN,
			Instructor:   rec.Instructor,
			Schedule:     rec.Schedule,
			Type:         rec.ScheduleType,
			Method:       rec.Method,
			Availability: rec.Enrollment,
		})
	}

	cat := make(Catalog)
	for _, key := range order {
		cat[key.subject] = append(cat[key.subject], *courses[key])
	}
	for subject := range cat {
		sort.Slice(cat[subject], func(i, j int) bool {
			return cat[subject][i].ID < cat[subject][j].ID
		})
	}
	return cat
}

// Index summarizes a catalog per subject for the subjects index file.
func Index(cat Catalog) SubjectIndex {
	idx := make(SubjectIndex, len(cat))
	for subject, courses := range cat {
		sections := 0
		for _, c := range courses {
			sections += len(c.Sections)
		}
		idx[subject] = SubjectSummary{
			TotalCourses:  len(courses),
			TotalSections: sections,
			Filename:      SubjectFilename(subject),
		}
	}
	return idx
}

// Subjects returns the catalog's subject codes in sorted order.
func (c Catalog) Subjects() []string {
	subjects := make([]string, 0, len(c))
	for subject := range c {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)
	return subjects
}

// TotalSections counts every section across the catalog.
func (c Catalog) TotalSections() int {
	total := 0
	for _, courses := range c {
		for _, course := range courses {
			total += len(course.Sections)
		}
	}
	return total
}
