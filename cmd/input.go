package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/luca-patrignani/showdown/domain/poker"
)

var errMalformedLine = errors.New(`expected "Black: <cards> White: <cards>"`)

// entry is a match together with where it came from.
type entry struct {
	match  poker.Match
	source string
}

// splitTokens splits a hand given as space or comma separated card tokens.
func splitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// parseMatchLine parses a line such as "Black: 2H 3D 5S 9C KD  White: 2C 3H 4S 8C AH".
// The labels are case-insensitive.
func parseMatchLine(line string) (black, white []string, err error) {
	upper := strings.ToUpper(line)
	if !strings.HasPrefix(strings.TrimSpace(upper), "BLACK:") {
		return nil, nil, errMalformedLine
	}
	i := strings.Index(upper, "WHITE:")
	if i < 0 {
		return nil, nil, errMalformedLine
	}
	start := strings.Index(upper, "BLACK:") + len("BLACK:")
	if start > i {
		return nil, nil, errMalformedLine
	}
	return splitTokens(line[start:i]), splitTokens(line[i+len("WHITE:"):]), nil
}

// readMatches reads one match per line. Blank lines and lines starting with #
// are skipped. The hand sizes are left to the referee.
func readMatches(r io.Reader, name string) ([]entry, error) {
	var entries []entry
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		black, white, err := parseMatchLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, n, err)
		}
		entries = append(entries, entry{
			match:  poker.NewMatch(black, white),
			source: fmt.Sprintf("%s:%d", name, n),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return entries, nil
}
