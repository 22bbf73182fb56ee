package stamp

import "errors"

// ErrNoTickets is returned when there is no ticket to redistribute time onto.
var ErrNoTickets = errors.New("no tickets to redistribute onto")

// Correction is a manual override of a day's total and per-label times.
// A nil *Correction means the day is uncorrected.
type Correction struct {
	Total Time
	Cors  LabelTimes
}

// CorrectedDay pairs a WorkDay with its optional correction.
type CorrectedDay struct {
	Index      int
	WorkDay    *WorkDay
	Correction *Correction
}

// Pair aligns days and corrections by position. Days past the end of
// corrections are uncorrected; surplus corrections are ignored.
func Pair(days []*WorkDay, cors []*Correction) []CorrectedDay {
	out := make([]CorrectedDay, len(days))
	for i, d := range days {
		out[i] = CorrectedDay{Index: i, WorkDay: d}
		if i < len(cors) {
			out[i].Correction = cors[i]
		}
	}
	return out
}

// IsCorrected reports whether a correction is present.
func (c CorrectedDay) IsCorrected() bool {
	return c.Correction != nil
}

// Total is the corrected total if present, else the computed work time.
func (c CorrectedDay) Total() Time {
	if c.Correction != nil {
		return c.Correction.Total
	}
	return c.WorkDay.WorkTime()
}

// Corrected collects labels with f and replaces each time with the
// correction's non-zero override for that label.
func (c CorrectedDay) Corrected(f Filter) LabelTimes {
	raw := c.WorkDay.Collect(f)
	if c.Correction == nil {
		return raw
	}
	out := make(LabelTimes, len(raw))
	for i, e := range raw {
		out[i] = e
		if t, ok := c.Correction.Cors.Get(e.Label); ok && t != 0 {
			out[i].Time = t
		}
	}
	return out
}

func (c CorrectedDay) CorrectedTickets() LabelTimes { return c.Corrected(IsTicket) }
func (c CorrectedDay) CorrectedBills() LabelTimes   { return c.Corrected(IsBill) }

// Redistribute builds a Correction for day with the entered total. The
// difference from the worked time is split evenly over the day's tickets
// (floor division, remainder dropped) and each ticket is rounded to
// granularity minutes.
func Redistribute(day *WorkDay, total Time, granularity int) (*Correction, error) {
	tickets := day.Tickets()
	if len(tickets) == 0 {
		return nil, ErrNoTickets
	}
	perTicket := total.Sub(day.WorkTime()).FloorDiv(len(tickets))
	cors := make(LabelTimes, len(tickets))
	for i, t := range tickets {
		cors[i] = LabelTime{Label: t.Label, Time: t.Time.Add(perTicket).Nearest(granularity)}
	}
	return &Correction{Total: total, Cors: cors}, nil
}
