package scoring

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"capsdiag/internal/model"
)

// NotFoundError is returned by Load when the question file does not exist
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("question file %s not found", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// Load reads the tab-separated question file at path
func Load(path string) ([]model.Question, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open question file: %w", err)
	}
	defer f.Close()

	questions, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return questions, nil
}

// Parse reads two-column (question, rule) rows with no header.
// Row order assigns the 1-based question index.
func Parse(r io.Reader) ([]model.Question, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var questions []model.Question
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(questions) == 0 {
			record[0] = strings.TrimPrefix(record[0], "\ufeff")
		}
		text := strings.TrimSpace(record[0])
		rule := ""
		if len(record) > 1 {
			rule = strings.TrimSpace(record[1])
		}
		if text == "" && rule == "" {
			continue
		}

		questions = append(questions, model.Question{
			Index: len(questions) + 1,
			Text:  text,
			Rule:  rule,
			Kind:  Classify(rule),
		})
	}
	return questions, nil
}

// Unrecognized returns the questions whose rule text matched no pattern
func Unrecognized(questions []model.Question) []model.Question {
	var out []model.Question
	for _, q := range questions {
		if q.Kind == model.RuleUnknown {
			out = append(out, q)
		}
	}
	return out
}
