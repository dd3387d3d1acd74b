package main

import (
	"encoding/json"
	"io"
	"log"
	"os"

	"course-catalog/internal/catalog"
	"course-catalog/internal/prereq"
)

// parseprereq parses prerequisite text from stdin and prints the structured
// result. Useful for eyeballing how a new text shape parses.
func main() {
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("read stdin: %v", err)
	}

	set := prereq.Parse(string(raw))

	out := catalog.PrerequisiteSummary{
		PrerequisiteSet: set,
		Summary:         prereq.Summary(set),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("encode: %v", err)
	}
}
