package storage

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/runnerr0/leima/internal/stamp"
)

// ParseCorrections reads one block per day: the total in minutes followed
// by "label minutes" lines, blocks separated by blank lines. An empty
// block or a zero total is an uncorrected day and yields nil.
func ParseCorrections(r io.Reader) ([]*stamp.Correction, error) {
	var (
		cors    []*stamp.Correction
		current *stamp.Correction
		started bool
		lineNo  int
	)

	flush := func() {
		if current != nil && current.Total == 0 {
			current = nil
		}
		cors = append(cors, current)
		current, started = nil, false
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			flush()
			continue
		}

		if !started {
			total, err := strconv.Atoi(line)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Text: line, Err: fmt.Errorf("invalid total: %w", err)}
			}
			current = &stamp.Correction{Total: stamp.Time(total)}
			started = true
			continue
		}

		i := strings.LastIndexByte(line, ' ')
		if i <= 0 {
			return nil, &ParseError{Line: lineNo, Text: line, Err: fmt.Errorf("want \"label minutes\"")}
		}
		minutes, err := strconv.Atoi(line[i+1:])
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: fmt.Errorf("invalid minutes: %w", err)}
		}
		current.Cors = append(current.Cors, stamp.LabelTime{
			Label: strings.TrimSpace(line[:i]),
			Time:  stamp.Time(minutes),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corrections: %w", err)
	}

	if started {
		flush()
	}
	return cors, nil
}

// WriteCorrections writes cors in the format read by ParseCorrections.
// A nil entry is written as a zero total.
func WriteCorrections(w io.Writer, cors []*stamp.Correction) error {
	bw := bufio.NewWriter(w)
	for _, c := range cors {
		if c == nil {
			fmt.Fprint(bw, "0\n\n")
			continue
		}
		fmt.Fprintf(bw, "%d\n", int(c.Total))
		for _, e := range c.Cors {
			fmt.Fprintf(bw, "%s %d\n", e.Label, int(e.Time))
		}
		fmt.Fprint(bw, "\n")
	}
	return bw.Flush()
}
