// Package bench provides tokenization benchmarking utilities: corpus
// loading and throughput/coverage evaluation over a Tokenizer.
package bench

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Document is one loaded corpus file.
type Document struct {
	ID   string // filename without extension
	Text string
}

// LoadCorpus loads all .txt files from a directory into Documents.
func LoadCorpus(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ".txt" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}

		base := entry.Name()
		id := strings.TrimSuffix(base, filepath.Ext(base))
		docs = append(docs, Document{ID: id, Text: string(data)})
	}

	return docs, nil
}
