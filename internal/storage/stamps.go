package storage

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/runnerr0/leima/internal/stamp"
)

// ParseStamps reads a week of stamp lines. Each line is
// "HHMM [X[label]] [extra...]" where X is one of o, a, b, n or e. A blank
// line ends the current day, lines starting with # are skipped and
// underscores in labels and extras decode to spaces.
func ParseStamps(r io.Reader) ([]*stamp.WorkDay, error) {
	var (
		days    []*stamp.WorkDay
		entries []stamp.Entry
		lineNo  int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			days = append(days, stamp.NewWorkDay(entries))
			entries = nil
		case line[0] == '#':
			continue
		default:
			e, err := parseEntry(line)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Text: line, Err: err}
			}
			entries = append(entries, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stamps: %w", err)
	}

	if last := stamp.NewWorkDay(entries); len(last.Stamps) > 0 {
		days = append(days, last)
	}
	return days, nil
}

func parseEntry(line string) (stamp.Entry, error) {
	fields := strings.Split(line, " ")

	at, err := stamp.ParseClock(fields[0])
	if err != nil {
		return stamp.Entry{}, err
	}
	e := stamp.Entry{At: at}

	if len(fields) > 1 && fields[1] != "" {
		cat, err := stamp.ParseCategory(fields[1][0])
		if err != nil {
			return stamp.Entry{}, err
		}
		e.Category = cat
		e.Label = decode(fields[1][1:])
	}
	for _, f := range fields[min(len(fields), 2):] {
		if f == "" {
			continue
		}
		e.Extras = append(e.Extras, decode(f))
	}
	return e, nil
}

func decode(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}
