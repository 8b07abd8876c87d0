// Package cmd implements the CLI application to track a wheel ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/kdmurray/wheel"
)

// Commands lists every subcommand of the application. A main package
// registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&summaryCmd{},
	&pnlCmd{},
	&riskCmd{},
	&positionsCmd{},
	&valueCmd{},
	&fmtCmd{},
	&topicCmd{},

	&buyCmd{},
	&sellCmd{},
	&stoCmd{},
	&btcCmd{},
	&expireCmd{},
	&assignCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var activityFile = flag.String("activity-file", "activity.jsonl", "Path to the activity file (JSONL format)")

// DecodeActivityFile reads the whole activity file. A missing file is an
// empty ledger, not an error.
func DecodeActivityFile() ([]wheel.TradeActivity, error) {
	f, err := os.Open(*activityFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, activity file %q does not exist, starting empty", *activityFile)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open activity file %q: %w", *activityFile, err)
	}
	defer f.Close()

	return wheel.DecodeActivities(f)
}

// LoadPortfolio replays the activity file into a fresh portfolio.
// Warnings are logged by the replay itself.
func LoadPortfolio() (*wheel.Portfolio, error) {
	activities, err := DecodeActivityFile()
	if err != nil {
		return nil, err
	}
	p := wheel.NewPortfolio()
	p.Load(activities)
	return p, nil
}

// AppendActivity validates a record and appends it to the activity file.
func AppendActivity(a wheel.TradeActivity) subcommands.ExitStatus {
	if err := a.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid activity: %v\n", err)
		return subcommands.ExitUsageError
	}

	f, err := os.OpenFile(*activityFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening activity file %q: %v\n", *activityFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := wheel.EncodeActivity(f, a); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to activity file %q: %v\n", *activityFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended %s to %s\n", a.Action, *activityFile)
	return subcommands.ExitSuccess
}

// reportFlags are the flags shared by every report subcommand: the as-of
// date and the pre-fetched quotes.
type reportFlags struct {
	date   string
	quotes string
}

func (r *reportFlags) register(f *flag.FlagSet) {
	f.StringVar(&r.date, "d", "0d", "As-of date for the report. Supports relative forms like -7d.")
	f.StringVar(&r.quotes, "quote", "", "Comma-separated SYMBOL=PRICE quotes, e.g. \"AAPL=150.5,KO=60\".")
}

// parse resolves the as-of date and the quote list.
func (r *reportFlags) parse() (wheel.Date, wheel.StaticQuotes, error) {
	on, err := wheel.ParseDate(r.date)
	if err != nil {
		return wheel.Date{}, nil, fmt.Errorf("invalid date: %w", err)
	}
	quotes, err := wheel.ParseQuotes(r.quotes, on)
	if err != nil {
		return wheel.Date{}, nil, err
	}
	return on, quotes, nil
}
