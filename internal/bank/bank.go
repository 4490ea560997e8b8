package bank

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Question is one entry of the published question bank. The field names are
// part of the wire contract with the quiz front-end.
type Question struct {
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

type document struct {
	Results []Question `json:"results"`
}

// Publish overwrites the question bank at path with the given questions,
// wholesale. The document is written to a temp file in the same directory and
// renamed into place so readers never observe a partial file.
func Publish(path string, questions []Question) error {
	if questions == nil {
		questions = []Question{}
	}

	data, err := json.Marshal(document{Results: questions})
	if err != nil {
		return fmt.Errorf("marshal question bank: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".bank-*.json")
	if err != nil {
		return fmt.Errorf("create temp bank file: %w", err)
	}

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp bank file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp bank file: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("publish question bank: %w", err)
	}

	return nil
}

// Load reads a published question bank back.
func Load(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal question bank: %w", err)
	}

	return doc.Results, nil
}
