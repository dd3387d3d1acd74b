package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"course-catalog/internal/banner"
	"course-catalog/internal/config"
)

// checkterm probes how many course rows a term exposes without fetching any
// of them. Handy before kicking off a full harvest.
func main() {
	cfg := config.Load()

	term := flag.String("term", cfg.Term, "term code, e.g. 202440")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client := banner.New(cfg.BaseURL, cfg.HTTPTimeout)

	session, err := client.Acquire(ctx, *term)
	if err != nil {
		log.Fatalf("session error: %v", err)
	}

	resp, err := session.SearchPage(ctx, 0, 1)
	if err != nil {
		log.Fatalf("count probe error: %v", err)
	}

	fmt.Printf("term %s: %d course sections available\n", *term, resp.TotalCount)
}
