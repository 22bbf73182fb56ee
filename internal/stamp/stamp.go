package stamp

import (
	"fmt"
	"strings"
)

// Category classifies how a stamp's time is counted.
type Category int

const (
	Empty Category = iota
	Off
	Admin
	Bill
	NonBill
)

var categoryNames = map[Category]string{
	Empty:   "EMPTY",
	Off:     "OFF",
	Admin:   "ADMIN",
	Bill:    "BILL",
	NonBill: "NONBILL",
}

func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory maps a stamp file letter (o, a, b, n, e) to a Category.
func ParseCategory(letter byte) (Category, error) {
	switch letter {
	case 'o':
		return Off, nil
	case 'a':
		return Admin, nil
	case 'b':
		return Bill, nil
	case 'n':
		return NonBill, nil
	case 'e':
		return Empty, nil
	}
	return Empty, fmt.Errorf("unknown category %q", letter)
}

// Stamp is one interval of a day. End is the start of the following stamp.
type Stamp struct {
	Start    Time
	End      Time
	Category Category
	Label    string
	Extras   []string
}

// Length returns End - Start.
func (s *Stamp) Length() Time {
	return s.End.Sub(s.Start)
}

// Filter selects stamps for aggregation.
type Filter func(*Stamp) bool

// IsTicket reports whether s is billable time on a project ticket: the
// label is "MR" or made of digits only.
func IsTicket(s *Stamp) bool {
	return s.Category == Bill && (s.Label == "MR" || isDigits(s.Label))
}

// IsBill matches all billable stamps.
func IsBill(s *Stamp) bool { return s.Category == Bill }

// IsAdmin matches admin stamps.
func IsAdmin(s *Stamp) bool { return s.Category == Admin }

// IsNonBill matches non-billable stamps.
func IsNonBill(s *Stamp) bool { return s.Category == NonBill }

// WithLabel returns a filter matching stamps of category c carrying label.
func WithLabel(c Category, label string) Filter {
	return func(s *Stamp) bool { return s.Category == c && s.Label == label }
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) < 0
}
