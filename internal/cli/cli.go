package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Report  *ReportCommand
	Correct *CorrectCommand
	PSA     *PSACommand
	Jira    *JiraCommand
	Export  *ExportCommand
	Init    *InitCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "leima"
	parser.LongDescription = "Time stamp log reporting, corrections and ticket hour exports."

	cmds := &commands{
		Report:  &ReportCommand{globals: &globals, version: version},
		Correct: &CorrectCommand{globals: &globals, version: version},
		PSA:     &PSACommand{globals: &globals, version: version},
		Jira:    &JiraCommand{globals: &globals, version: version},
		Export:  &ExportCommand{globals: &globals, version: version},
		Init:    &InitCommand{globals: &globals, version: version},
	}

	parser.AddCommand("rep", "Report category times", "Show per-day category times and the weekly total.", cmds.Report)
	parser.AddCommand("cor", "Correct day totals", "Enter corrected day totals and redistribute the difference over tickets.", cmds.Correct)
	parser.AddCommand("psa", "Billable breakdown", "Show billable, non-billable and admin time per day.", cmds.PSA)
	parser.AddCommand("jir", "Ticket hours", "Show corrected ticket hours per weekday across weeks.", cmds.Jira)
	parser.AddCommand("exc", "Dated export listing", "List corrected billable times per calendar date.", cmds.Export)
	parser.AddCommand("init", "Write default config", "Write the default config file if it does not exist.", cmds.Init)

	return parser, &globals, cmds
}

// Run is the main entry point for the leima CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parser (go-flags requires a subcommand, but
	// --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("leima %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
