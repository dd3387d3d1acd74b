package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"course-catalog/internal/catalog"
	"course-catalog/internal/domain"
)

// IndexFilename is the subjects index written next to the subject directory.
const IndexFilename = "subjects_index.json"

// WriteSubjectJSON writes one subject's courses as an indented JSON array.
func WriteSubjectJSON(w io.Writer, courses []catalog.Course) error {
	if courses == nil {
		courses = []catalog.Course{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(courses)
}

// WriteIndexJSON writes the subjects index.
func WriteIndexJSON(w io.Writer, idx catalog.SubjectIndex) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(idx)
}

// WriteSubjectFiles writes every subject of the catalog to dir (one
// <SUBJECT>.json per subject) and the subjects index to dir's parent.
// Existing files are overwritten.
func WriteSubjectFiles(dir string, cat catalog.Catalog) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: create subject dir: %w", err)
	}

	for _, subject := range cat.Subjects() {
		path := filepath.Join(dir, catalog.SubjectFilename(subject))
		if err := writeFile(path, func(w io.Writer) error {
			return WriteSubjectJSON(w, cat[subject])
		}); err != nil {
			return fmt.Errorf("export: subject %s: %w", subject, err)
		}
	}

	indexPath := filepath.Join(filepath.Dir(dir), IndexFilename)
	if err := writeFile(indexPath, func(w io.Writer) error {
		return WriteIndexJSON(w, catalog.Index(cat))
	}); err != nil {
		return fmt.Errorf("export: subjects index: %w", err)
	}

	return nil
}

// WriteRawCatalog dumps the flat course records to path as indented JSON,
// creating parent directories as needed.
func WriteRawCatalog(path string, records []domain.CourseRecord) error {
	if records == nil {
		records = []domain.CourseRecord{}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: create raw dir: %w", err)
	}
	return writeFile(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
