package catalog

import (
	"reflect"
	"testing"

	"course-catalog/internal/domain"
)

func sectionRecord(subject, subjectCourse, crn, section string) domain.CourseRecord {
	return domain.CourseRecord{
		Subject:       subject,
		SubjectCourse: subjectCourse,
		Title:         subjectCourse + " title",
		Credits:       "4",
		CRN:           crn,
		SectionNumber: section,
		Instructor:    "Baker, Bob",
	}
}

func TestAssembleMergesSections(t *testing.T) {
	records := []domain.CourseRecord{
		sectionRecord("CS", "CS010C", "10001", "001"),
		sectionRecord("CS", "CS010C", "10002", "002"),
		sectionRecord("CS", "CS010C", "10003", "003"),
	}

	cat := Assemble(records)

	courses := cat["CS"]
	if len(courses) != 1 {
		t.Fatalf("Expected 1 course, got %d", len(courses))
	}

	course := courses[0]
	if course.ID != "CS010C" {
		t.Errorf("Expected course ID 'CS010C', got '%s'", course.ID)
	}
	if len(course.Sections) != 3 {
		t.Fatalf("Expected 3 sections, got %d", len(course.Sections))
	}

	crns := []string{course.Sections[0].CRN, course.Sections[1].CRN, course.Sections[2].CRN}
	if !reflect.DeepEqual(crns, []string{"10001", "10002", "10003"}) {
		t.Errorf("Expected sections in input order, got %v", crns)
	}
}

func TestAssembleGroupsBySubject(t *testing.T) {
	records := []domain.CourseRecord{
		sectionRecord("MATH", "MATH009A", "20001", "001"),
		sectionRecord("CS", "CS010C", "10001", "001"),
		sectionRecord("CS", "CS010A", "10002", "001"),
	}

	cat := Assemble(records)

	if len(cat) != 2 {
		t.Fatalf("Expected 2 subjects, got %d", len(cat))
	}
	if !reflect.DeepEqual(cat.Subjects(), []string{"CS", "MATH"}) {
		t.Errorf("Unexpected subjects: %v", cat.Subjects())
	}

	// Courses sort by ID within the subject.
	cs := cat["CS"]
	if len(cs) != 2 || cs[0].ID != "CS010A" || cs[1].ID != "CS010C" {
		t.Errorf("Expected CS010A then CS010C, got %+v", cs)
	}
}

func TestAssembleLastMetadataWins(t *testing.T) {
	first := sectionRecord("CS", "CS010C", "10001", "001")
	first.Title = "Old Title"
	second := sectionRecord("CS", "CS010C", "10002", "002")
	second.Title = "New Title"
	second.Prerequisites = domain.PrerequisiteSet{
		RawText: "Course or Test: Computer Science 010B\nMinimum Grade of C-",
		Requirements: []domain.Requirement{{
			SubjectName:       "Computer Science",
			SubjectCode:       "CS",
			CourseNumber:      "010B",
			MinimumGrade:      "C-",
			ConcurrentAllowed: true,
		}},
		HasPrerequisites: true,
		Logic:            domain.LogicSingle,
	}

	cat := Assemble([]domain.CourseRecord{first, second})

	course := cat["CS"][0]
	if course.Title != "New Title" {
		t.Errorf("Expected last title to win, got '%s'", course.Title)
	}
	if !course.Prerequisites.HasPrerequisites {
		t.Error("Expected last prerequisites to win")
	}
	if course.Prerequisites.Summary != "CS 010B (min grade: C-)" {
		t.Errorf("Unexpected summary: '%s'", course.Prerequisites.Summary)
	}
}

func TestAssembleEmpty(t *testing.T) {
	cat := Assemble(nil)
	if len(cat) != 0 {
		t.Errorf("Expected empty catalog, got %d subjects", len(cat))
	}
	if len(Index(cat)) != 0 {
		t.Errorf("Expected empty index, got %v", Index(cat))
	}
}

func TestIndex(t *testing.T) {
	records := []domain.CourseRecord{
		sectionRecord("CS", "CS010C", "10001", "001"),
		sectionRecord("CS", "CS010C", "10002", "002"),
		sectionRecord("CS", "CS010A", "10003", "001"),
		sectionRecord("MATH", "MATH009A", "20001", "001"),
	}

	idx := Index(Assemble(records))

	cs, ok := idx["CS"]
	if !ok {
		t.Fatal("Expected CS in index")
	}
	if cs.TotalCourses != 2 {
		t.Errorf("Expected 2 CS courses, got %d", cs.TotalCourses)
	}
	if cs.TotalSections != 3 {
		t.Errorf("Expected 3 CS sections, got %d", cs.TotalSections)
	}
	if cs.Filename != "CS.json" {
		t.Errorf("Expected filename 'CS.json', got '%s'", cs.Filename)
	}

	math := idx["MATH"]
	if math.TotalCourses != 1 || math.TotalSections != 1 {
		t.Errorf("Unexpected MATH summary: %+v", math)
	}
}

func TestTotalSections(t *testing.T) {
	records := []domain.CourseRecord{
		sectionRecord("CS", "CS010C", "10001", "001"),
		sectionRecord("CS", "CS010C", "10002", "002"),
		sectionRecord("MATH", "MATH009A", "20001", "001"),
	}

	if got := Assemble(records).TotalSections(); got != 3 {
		t.Errorf("Expected 3 sections, got %d", got)
	}
}
