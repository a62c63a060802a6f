// Package input acquires the source text for an enrichment run, either
// from a file or from interactive console entry.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Reader obtains raw source text for the pipeline.
type Reader struct {
	stdin  io.Reader
	stdout io.Writer
}

// NewReader creates a reader bound to the process console.
func NewReader() *Reader {
	return &Reader{
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
}

// NewReaderWithStreams creates a reader with custom console streams.
func NewReaderWithStreams(stdin io.Reader, stdout io.Writer) *Reader {
	return &Reader{
		stdin:  stdin,
		stdout: stdout,
	}
}

// ReadFile returns the full UTF-8 content of the file at path.
// A missing or unreadable file is fatal to the run and propagated.
func (r *Reader) ReadFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	return string(content), nil
}

// ReadFileWithMetrics returns (content, fileSize, duration, error).
func (r *Reader) ReadFileWithMetrics(path string) (string, int64, time.Duration, error) {
	startTime := time.Now()

	fileInfo, err := os.Stat(path)
	if err != nil {
		return "", 0, time.Since(startTime), fmt.Errorf("failed to stat input file %s: %w", path, err)
	}

	content, err := os.ReadFile(path)
	duration := time.Since(startTime)

	if err != nil {
		return "", 0, duration, fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	return string(content), fileInfo.Size(), duration, nil
}

// ReadConsole prompts on stdout and collects lines from stdin until the
// first empty or whitespace-only line, joining them with newlines.
func (r *Reader) ReadConsole() (string, error) {
	fmt.Fprintln(r.stdout, "Paste your text (end with an empty line):")

	scanner := bufio.NewScanner(r.stdin)
	// Long pasted lines exceed the default 64K token limit.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var lines []string

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}

		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read console input: %w", err)
	}

	return strings.Join(lines, "\n"), nil
}

// Read resolves the source text: from path when non-empty, otherwise
// interactively from the console.
func (r *Reader) Read(path string) (string, error) {
	if path != "" {
		return r.ReadFile(path)
	}

	return r.ReadConsole()
}
