package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"capsdiag/internal/scoring"
)

// checkrules prints how every question's rule is classified and exits
// non-zero if any rule would silently score zero.
func main() {
	path := flag.String("questions", "data/questions.tsv", "tab-separated question file")
	flag.Parse()

	questions, err := scoring.Load(*path)
	if err != nil {
		log.Fatalf("Failed to load questions: %v", err)
	}

	for _, q := range questions {
		fmt.Printf("%3d  %-30s  %s\n", q.Index, q.Kind, q.Text)
	}

	unknown := scoring.Unrecognized(questions)
	if len(unknown) > 0 {
		for _, q := range unknown {
			fmt.Fprintf(os.Stderr, "question %d: unrecognized rule %q\n", q.Index, q.Rule)
		}
		os.Exit(1)
	}
	fmt.Printf("All %d rules recognized\n", len(questions))
}
