package cli

import (
	"fmt"
)

// Execute implements the go-flags Commander interface for ExportCommand.
func (c *ExportCommand) Execute(args []string) error {
	e, err := setup(c.globals)
	if err != nil {
		return err
	}

	year := c.Year
	if year == 0 {
		year, _ = now().ISOWeek()
	}

	for _, week := range weeksOrCurrent(c.Args.Weeks) {
		days, err := e.store.LoadDays(week)
		if err != nil {
			return err
		}
		monday := isoWeekStart(year, week)
		for i, day := range e.weekdays(days) {
			date := monday.AddDate(0, 0, i)
			printHeader(fmt.Sprintf("%s %s", day.Name, date.Format("2006-01-02")))
			for _, b := range day.CorrectedBills() {
				fmt.Printf("    %-10s   %s\n", b.Label, b.Time.Nearest(e.granularity).Hours())
			}
		}
	}
	return nil
}
