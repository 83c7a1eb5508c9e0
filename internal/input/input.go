// Package input reads puzzle files as lines.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadLines returns every line of r without line terminators. Trailing
// carriage returns are stripped and a final empty line is dropped.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	return lines, nil
}

// Load reads the file at path, or stdin when path is "" or "-".
func Load(path string, stdin io.Reader) ([]string, error) {
	if path == "" || path == "-" {
		return ReadLines(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()
	return ReadLines(f)
}
