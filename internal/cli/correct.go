package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/runnerr0/leima/internal/stamp"
)

// Execute implements the go-flags Commander interface for CorrectCommand.
func (c *CorrectCommand) Execute(args []string) error {
	e, err := setup(c.globals)
	if err != nil {
		return err
	}

	week := weekOrCurrent(c.Args.Week)
	days, err := e.store.LoadDays(week)
	if err != nil {
		return err
	}

	in := c.in
	if in == nil {
		in = os.Stdin
	}

	cors, err := c.prompt(e, days, bufio.NewScanner(in))
	if err != nil {
		return err
	}

	if err := e.store.SaveCorrections(week, cors); err != nil {
		return fmt.Errorf("save corrections: %w", err)
	}
	e.logger.Info("corrections saved", "week", week, "days", len(cors))
	return nil
}

// prompt asks for a new total for every named day. Nothing is returned
// unless every day was answered without error.
func (c *CorrectCommand) prompt(e *env, days []stamp.CorrectedDay, scanner *bufio.Scanner) ([]*stamp.Correction, error) {
	cors := make([]*stamp.Correction, 0, len(days))

	for _, day := range e.weekdays(days) {
		wd := day.WorkDay
		printHeader(day.Name)
		fmt.Printf("%s-%s -> %s\n", wd.Start().Clock(), wd.End().Clock(), wd.End().Sub(wd.Start()).Both())
		fmt.Printf("total: %s\n", wd.WorkTime().Both())
		if day.IsCorrected() {
			fmt.Printf("previous correction %s\n", day.Correction.Total.Clock())
		}
		fmt.Print("new total? ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("read input: %w", err)
			}
			return nil, fmt.Errorf("aborted: no input received for %s", day.Name)
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			cors = append(cors, day.Correction)
			continue
		}

		total, err := stamp.ParseClock(input)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", day.Name, err)
		}
		cor, err := stamp.Redistribute(wd, total, e.granularity)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", day.Name, err)
		}
		e.logger.Debug("day corrected", "day", day.Name, "work_time", int(wd.WorkTime()), "total", int(total))
		cors = append(cors, cor)
	}

	// Days without a weekday name keep whatever correction they had.
	for _, day := range days[len(cors):] {
		cors = append(cors, day.Correction)
	}
	return cors, nil
}
