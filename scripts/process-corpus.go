//go:build ignore

// Process raw Project Gutenberg downloads into plain-text corpus files
// consumable by internal/bench.LoadCorpus.
// Usage: go run ./scripts/process-corpus.go
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Book metadata; only raw files whose base name is a key here are processed.
var books = map[string]struct {
	Title  string
	Author string
	Year   string
}{
	"pride_and_prejudice": {"Pride and Prejudice", "Jane Austen", "1813"},
	"moby_dick":           {"Moby Dick", "Herman Melville", "1851"},
	"great_expectations":  {"Great Expectations", "Charles Dickens", "1861"},
	"origin_of_species":   {"On the Origin of Species", "Charles Darwin", "1859"},
	"tom_sawyer":          {"The Adventures of Tom Sawyer", "Mark Twain", "1876"},
	"jane_eyre":           {"Jane Eyre", "Charlotte Bronte", "1847"},
}

func main() {
	inDir := "testdata/gutenberg"

	files, err := filepath.Glob(filepath.Join(inDir, "*_raw.txt"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding files: %v\n", err)
		os.Exit(1)
	}

	if len(files) == 0 {
		fmt.Println("No raw files found. Place <book>_raw.txt downloads in testdata/gutenberg first.")
		os.Exit(1)
	}

	for _, rawFile := range files {
		baseName := strings.TrimSuffix(filepath.Base(rawFile), "_raw.txt")
		outFile := filepath.Join(inDir, baseName+".txt")

		if _, ok := books[baseName]; !ok {
			fmt.Printf("Skipping unknown book: %s\n", baseName)
			continue
		}

		fmt.Printf("Processing %s...\n", baseName)
		if err := processBook(rawFile, outFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", baseName, err)
			continue
		}
		fmt.Printf("  -> %s\n", outFile)
	}

	fmt.Println("\nDone! Corpus files created in testdata/gutenberg/")
}

func processBook(inPath, outPath string) error {
	content, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	text := string(content)

	startPatterns := []string{
		"*** START OF THE PROJECT GUTENBERG EBOOK",
		"*** START OF THIS PROJECT GUTENBERG EBOOK",
		"*END*THE SMALL PRINT",
	}

	startIdx := -1
	for _, pattern := range startPatterns {
		if idx := strings.Index(text, pattern); idx != -1 {
			if endOfLine := strings.Index(text[idx:], "\n"); endOfLine != -1 {
				startIdx = idx + endOfLine + 1
			}
			break
		}
	}
	if startIdx == -1 {
		startIdx = 0
	}

	endPatterns := []string{
		"*** END OF THE PROJECT GUTENBERG EBOOK",
		"*** END OF THIS PROJECT GUTENBERG EBOOK",
		"End of Project Gutenberg",
		"End of the Project Gutenberg",
	}

	endIdx := len(text)
	for _, pattern := range endPatterns {
		if idx := strings.Index(text, pattern); idx != -1 {
			endIdx = idx
			break
		}
	}

	body := cleanBody(text[startIdx:endIdx])

	// Limit to first ~50KB for reasonable benchmark runtime, cutting at a
	// sentence boundary rather than mid-sentence where possible.
	if len(body) > 50000 {
		cutoff := 50000
		cut := cutoff
		for i := cutoff; i < len(body) && i < cutoff+1000; i++ {
			if body[i] == '.' || body[i] == '!' || body[i] == '?' {
				if i+1 < len(body) && (body[i+1] == ' ' || body[i+1] == '\n') {
					cut = i + 1
					break
				}
			}
		}
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		body = body[:cut]
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	w.WriteString(body)
	w.WriteString("\n")

	return w.Flush()
}

func cleanBody(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	chapterRe := regexp.MustCompile(`(?m)^(Chapter|CHAPTER)\s+([IVX]+|[0-9]+)[\.\]\s]`)
	if loc := chapterRe.FindStringIndex(text); loc != nil && loc[0] < 50000 {
		text = text[loc[0]:]
	}

	illustrationRe := regexp.MustCompile(`\[Illustration[^\]]*\]`)
	text = illustrationRe.ReplaceAllString(text, "")

	multiBlank := regexp.MustCompile(`\n{3,}`)
	text = multiBlank.ReplaceAllString(text, "\n\n")

	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var result []string
	var paragraph strings.Builder

	for _, line := range lines {
		line = strings.TrimRight(line, " \t")

		if isChapterHeader(line) && paragraph.Len() > 0 {
			result = append(result, paragraph.String())
			paragraph.Reset()
			result = append(result, line)
			continue
		}

		if line == "" {
			if paragraph.Len() > 0 {
				result = append(result, paragraph.String())
				paragraph.Reset()
			}
			continue
		}

		if paragraph.Len() > 0 {
			paragraph.WriteString(" ")
		}
		paragraph.WriteString(line)
	}
	if paragraph.Len() > 0 {
		result = append(result, paragraph.String())
	}

	return strings.Join(result, "\n\n")
}

func isChapterHeader(line string) bool {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "CHAPTER ") || strings.HasPrefix(line, "Chapter ") {
		return true
	}
	if matched, _ := regexp.MatchString(`^[IVXLC]+\.?$`, line); matched {
		return true
	}
	return false
}
