package cli

import (
	"fmt"

	"github.com/runnerr0/leima/internal/stamp"
)

// Execute implements the go-flags Commander interface for ReportCommand.
func (c *ReportCommand) Execute(args []string) error {
	e, err := setup(c.globals)
	if err != nil {
		return err
	}

	week := weekOrCurrent(c.Args.Week)
	days, err := e.store.LoadWeek(week)
	if err != nil {
		return err
	}

	var weekTotal stamp.Time
	for i, day := range days {
		printHeader(e.dayName(i))
		for _, ct := range day.Times() {
			fmt.Printf("%-7s  %3d\n", ct.Category, int(ct.Time))
		}
		total := day.WorkTime()
		weekTotal += total
		fmt.Printf("total: %s\n", total.Both())
		fmt.Println(styleDim.Render("****"))
	}

	fmt.Println()
	fmt.Println(styleTotal.Render("TOTAL: " + weekTotal.Both()))
	return nil
}
