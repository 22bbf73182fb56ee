package cli

import "io"

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config      string `long:"config" description:"Path to config file" default:""`
	DataDir     string `long:"data-dir" description:"Directory holding the weekly stamp files"`
	Granularity int    `long:"granularity" description:"Rounding step in minutes for corrections and exports"`
	NoColor     bool   `long:"no-color" description:"Disable colored output"`
	Verbose     bool   `long:"verbose" description:"Enable verbose output"`
	Version     bool   `long:"version" description:"Show version and exit"`
}

// weekArg is the optional single week positional argument.
type weekArg struct {
	Week int `positional-arg-name:"week" description:"ISO week number (default: current week)"`
}

// weeksArg is the optional list of weeks positional argument.
type weeksArg struct {
	Weeks []int `positional-arg-name:"week" description:"ISO week numbers (default: current week)"`
}

// ReportCommand — per-day category times and weekly total.
type ReportCommand struct {
	Args weekArg `positional-args:"yes"`

	globals *GlobalFlags
	version string
}

// CorrectCommand — interactively enter corrected day totals.
type CorrectCommand struct {
	Args weekArg `positional-args:"yes"`

	globals *GlobalFlags
	version string
	in      io.Reader // injectable for testing; nil means os.Stdin
}

// PSACommand — billable, non-billable and admin breakdown per day.
type PSACommand struct {
	Args weekArg `positional-args:"yes"`

	globals *GlobalFlags
	version string
}

// JiraCommand — corrected ticket hours across weeks.
type JiraCommand struct {
	Args weeksArg `positional-args:"yes"`

	globals *GlobalFlags
	version string
}

// ExportCommand — dated per-day billable listing.
type ExportCommand struct {
	Year int      `long:"year" description:"ISO year of the weeks (default: current year)"`
	Args weeksArg `positional-args:"yes"`

	globals *GlobalFlags
	version string
}

// InitCommand — write the default config file.
type InitCommand struct {
	globals *GlobalFlags
	version string
}
