package cli

import (
	"fmt"
	"strings"

	"github.com/runnerr0/leima/internal/stamp"
)

// Execute implements the go-flags Commander interface for PSACommand.
func (c *PSACommand) Execute(args []string) error {
	e, err := setup(c.globals)
	if err != nil {
		return err
	}

	days, err := e.store.LoadDays(weekOrCurrent(c.Args.Week))
	if err != nil {
		return err
	}

	for _, day := range e.weekdays(days) {
		printHeader(day.Name)

		nonBill := day.WorkDay.NonBills().Sum()
		admins := day.WorkDay.Admins()
		adminTotal := admins.Sum()
		bills := day.Total().Sub(nonBill).Sub(adminTotal)

		fmt.Printf("B  %s\n", bills.Both())
		if nonBill > 0 {
			fmt.Printf("NB %s\n", nonBill.Both())
		}
		if adminTotal > 0 {
			fmt.Printf("A  %s\n", adminTotal.Both())
			for _, a := range admins {
				fmt.Printf("    %-10s   %s\n", a.Label, a.Time.Both())
				extras := day.WorkDay.FindExtras(stamp.WithLabel(stamp.Admin, a.Label))
				if len(extras) > 0 {
					fmt.Printf("    %s\n", strings.Join(extras, ","))
				}
			}
		}
		fmt.Println(styleDim.Render("********"))
	}
	return nil
}
