package stamp

import "sort"

// LabelTime is the aggregated time for one label.
type LabelTime struct {
	Label string
	Time  Time
}

// LabelTimes keeps labels in order of first appearance.
type LabelTimes []LabelTime

// Get returns the time recorded for label.
func (lt LabelTimes) Get(label string) (Time, bool) {
	for _, e := range lt {
		if e.Label == label {
			return e.Time, true
		}
	}
	return 0, false
}

// Sum returns the total over all labels.
func (lt LabelTimes) Sum() Time {
	var total Time
	for _, e := range lt {
		total += e.Time
	}
	return total
}

func (lt LabelTimes) add(label string, t Time) LabelTimes {
	for i := range lt {
		if lt[i].Label == label {
			lt[i].Time += t
			return lt
		}
	}
	return append(lt, LabelTime{Label: label, Time: t})
}

// CategoryTime is the aggregated time for one category.
type CategoryTime struct {
	Category Category
	Time     Time
}

// Entry is one parsed stamp file line before it is linked into a Stamp.
type Entry struct {
	At       Time
	Category Category
	Label    string
	Extras   []string
}

// WorkDay is the ordered set of stamps for one calendar day.
type WorkDay struct {
	Stamps []*Stamp
}

// NewWorkDay links consecutive entries into stamps: each entry ends where
// the next one starts, and the last entry only terminates the previous one.
func NewWorkDay(entries []Entry) *WorkDay {
	d := &WorkDay{}
	for i := 0; i+1 < len(entries); i++ {
		e := entries[i]
		d.Add(&Stamp{
			Start:    e.At,
			End:      entries[i+1].At,
			Category: e.Category,
			Label:    e.Label,
			Extras:   e.Extras,
		})
	}
	return d
}

// Add appends s to the day.
func (d *WorkDay) Add(s *Stamp) {
	d.Stamps = append(d.Stamps, s)
}

// Start is the first stamp's start, or zero for an empty day.
func (d *WorkDay) Start() Time {
	if len(d.Stamps) == 0 {
		return 0
	}
	return d.Stamps[0].Start
}

// End is the last stamp's end, or zero for an empty day.
func (d *WorkDay) End() Time {
	if len(d.Stamps) == 0 {
		return 0
	}
	return d.Stamps[len(d.Stamps)-1].End
}

// WorkTime sums every stamp except OFF ones.
func (d *WorkDay) WorkTime() Time {
	var total Time
	for _, s := range d.Stamps {
		if s.Category != Off {
			total += s.Length()
		}
	}
	return total
}

// Times groups stamp lengths by category.
func (d *WorkDay) Times() []CategoryTime {
	var out []CategoryTime
	idx := make(map[Category]int)
	for _, s := range d.Stamps {
		i, ok := idx[s.Category]
		if !ok {
			i = len(out)
			idx[s.Category] = i
			out = append(out, CategoryTime{Category: s.Category})
		}
		out[i].Time += s.Length()
	}
	return out
}

// Collect sums lengths by label over the stamps accepted by f.
func (d *WorkDay) Collect(f Filter) LabelTimes {
	var out LabelTimes
	for _, s := range d.Stamps {
		if !f(s) {
			continue
		}
		out = out.add(s.Label, s.Length())
	}
	return out
}

func (d *WorkDay) Tickets() LabelTimes  { return d.Collect(IsTicket) }
func (d *WorkDay) Bills() LabelTimes    { return d.Collect(IsBill) }
func (d *WorkDay) Admins() LabelTimes   { return d.Collect(IsAdmin) }
func (d *WorkDay) NonBills() LabelTimes { return d.Collect(IsNonBill) }

// FindExtras returns the distinct extras of stamps accepted by f, sorted.
func (d *WorkDay) FindExtras(f Filter) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range d.Stamps {
		if !f(s) {
			continue
		}
		for _, e := range s.Extras {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	sort.Strings(out)
	return out
}
