package prereq

import (
	"fmt"
	"regexp"
	"strings"

	"course-catalog/internal/domain"
)

// Registration prerequisite text lists each requirement as a labeled block:
//
//	Course or Test: Computer Science 010C
//	Minimum Grade of C-
//	May not be taken concurrently.
//
// blocks joined by bare "and"/"or" lines, sometimes wrapped in parentheses.
// Parenthesized grouping is NOT resolved into an expression tree; texts with
// both connectors are flagged COMPLEX and kept as a flat list.
var requirementPattern = regexp.MustCompile(`Course or Test:\s*([A-Za-z ]+)\s*([0-9A-Z]+)\s*\n\s*Minimum Grade of ([A-Z][+-]?)`)

const noConcurrentPhrase = "May not be taken concurrently"

// subjectCodes maps the subject names the registration service spells out to
// the short codes used to partition the catalog.
var subjectCodes = map[string]string{
	"Computer Science": "CS",
	"Mathematics":      "MATH",
	"Physics":          "PHYS",
	"Chemistry":        "CHEM",
	"Biology":          "BIOL",
	"Statistics":       "STAT",
	"English":          "ENGL",
	"Engineering":      "ENGR",
	"Business":         "BUS",
	"Economics":        "ECON",
}

// Parse turns raw prerequisite text into a structured set. It is pure and
// deterministic; malformed text degrades to an empty set, never an error.
func Parse(rawText string) domain.PrerequisiteSet {
	if strings.TrimSpace(rawText) == "" {
		return domain.PrerequisiteSet{
			RawText:          "",
			Requirements:     []domain.Requirement{},
			HasPrerequisites: false,
			Logic:            domain.LogicNone,
		}
	}

	reqs := extractRequirements(rawText)

	logic := domain.LogicNone
	if len(reqs) > 0 {
		logic = classifyLogic(rawText)
	}

	return domain.PrerequisiteSet{
		RawText:          rawText,
		Requirements:     reqs,
		HasPrerequisites: len(reqs) > 0,
		Logic:            logic,
	}
}

func extractRequirements(text string) []domain.Requirement {
	// The concurrency flag is derived from the whole text, not scoped per
	// block; the source never emits the phrase for only some blocks.
	concurrentAllowed := !strings.Contains(text, noConcurrentPhrase)

	matches := requirementPattern.FindAllStringSubmatch(text, -1)
	reqs := make([]domain.Requirement, 0, len(matches))
	for _, m := range matches {
		subjectName := strings.TrimSpace(m[1])
		reqs = append(reqs, domain.Requirement{
			SubjectName:       subjectName,
			SubjectCode:       SubjectCode(subjectName),
			CourseNumber:      strings.TrimSpace(m[2]),
			MinimumGrade:      strings.TrimSpace(m[3]),
			ConcurrentAllowed: concurrentAllowed,
		})
	}
	return reqs
}

// SubjectCode resolves a spelled-out subject name to its short code, falling
// back to an uppercased, space-stripped form for names outside the table.
func SubjectCode(subjectName string) string {
	if code, ok := subjectCodes[subjectName]; ok {
		return code
	}
	return strings.ReplaceAll(strings.ToUpper(subjectName), " ", "")
}

var (
	blockLabelPattern = regexp.MustCompile(`(?i)course or test:`)
	andTokenPattern   = regexp.MustCompile(`(?i)\band\b`)
	orTokenPattern    = regexp.MustCompile(`(?i)\bor\b`)
)

func classifyLogic(text string) domain.Logic {
	// The block label itself contains the word "or"; drop it so only the
	// connectors between blocks count.
	stripped := blockLabelPattern.ReplaceAllString(text, "")

	hasAnd := andTokenPattern.MatchString(stripped)
	hasOr := orTokenPattern.MatchString(stripped)

	switch {
	case hasAnd && hasOr:
		return domain.LogicComplex
	case hasAnd:
		return domain.LogicAnd
	case hasOr:
		return domain.LogicOr
	default:
		return domain.LogicSingle
	}
}

// Summary renders a parsed set as one human-readable line.
func Summary(set domain.PrerequisiteSet) string {
	if !set.HasPrerequisites {
		return "No prerequisites"
	}

	if len(set.Requirements) == 1 {
		return describe(set.Requirements[0])
	}

	parts := make([]string, 0, len(set.Requirements))
	for _, r := range set.Requirements {
		parts = append(parts, describe(r))
	}

	switch set.Logic {
	case domain.LogicAnd:
		return strings.Join(parts, " AND ")
	case domain.LogicOr:
		return strings.Join(parts, " OR ")
	default:
		return "Complex requirements: " + strings.Join(parts, ", ")
	}
}

func describe(r domain.Requirement) string {
	return fmt.Sprintf("%s %s (min grade: %s)", r.SubjectCode, r.CourseNumber, r.MinimumGrade)
}
