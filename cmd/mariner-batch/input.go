package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
)

// Document is one JSONL input line.
type Document struct {
	Text         string `json:"text"`
	DocumentType string `json:"document_type"`
	VesselID     string `json:"vessel_id"`
}

// LoadDocuments loads documents from a JSONL file with proper error handling
func LoadDocuments(path string) ([]Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var docs []Document
	lines := strings.Split(string(data), "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var doc Document
		if err := json.Unmarshal([]byte(line), &doc); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		docs = append(docs, doc)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no valid documents found in %s", path)
	}

	return docs, nil
}
