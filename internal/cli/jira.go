package cli

import (
	"fmt"
	"strconv"

	"github.com/runnerr0/leima/internal/stamp"
)

// ticketHours is the label → week → weekday matrix of corrected ticket time.
type ticketHours struct {
	labels []string
	times  map[string][][]stamp.Time
}

func newTicketHours() *ticketHours {
	return &ticketHours{times: make(map[string][][]stamp.Time)}
}

func (h *ticketHours) set(label string, weeks, days, w, d int, t stamp.Time) {
	rows, ok := h.times[label]
	if !ok {
		rows = make([][]stamp.Time, weeks)
		for i := range rows {
			rows[i] = make([]stamp.Time, days)
		}
		h.times[label] = rows
		h.labels = append(h.labels, label)
	}
	rows[w][d] = t
}

// Execute implements the go-flags Commander interface for JiraCommand.
func (c *JiraCommand) Execute(args []string) error {
	e, err := setup(c.globals)
	if err != nil {
		return err
	}

	weeks := weeksOrCurrent(c.Args.Weeks)
	names := e.cfg.Report.Weekdays
	hours := newTicketHours()

	for w, week := range weeks {
		days, err := e.store.LoadDays(week)
		if err != nil {
			return err
		}
		for d, day := range e.weekdays(days) {
			for _, t := range day.CorrectedTickets() {
				hours.set(t.Label, len(weeks), len(names), w, d, t.Time)
			}
		}
	}

	headers := append([]string{"TICKET", "WEEK"}, names...)
	var rows [][]string
	for _, label := range hours.labels {
		for w, times := range hours.times[label] {
			row := []string{"", strconv.Itoa(weeks[w])}
			if w == 0 {
				row[0] = label
			}
			for _, t := range times {
				row = append(row, t.Hours())
			}
			rows = append(rows, row)
		}
	}

	fmt.Print(renderTable(headers, rows))
	return nil
}
