package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/google/subcommands"
	"github.com/kdmurray/wheel"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the activity file in canonical form"
}
func (*fmtCmd) Usage() string {
	return `wheel fmt

  Reads the whole activity file, validates every record, sorts them by
  date (stable, so same-day records keep their order) and writes them
  back in canonical JSONL form.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	activities, err := DecodeActivityFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if len(activities) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no activity to format.")
		return subcommands.ExitSuccess
	}

	for _, a := range activities {
		if err := a.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid record: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Date.Before(activities[j].Date)
	})

	tmp := *activityFile + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", tmp, err)
		return subcommands.ExitFailure
	}
	if err := wheel.EncodeActivities(out, activities); err != nil {
		out.Close()
		os.Remove(tmp)
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := os.Rename(tmp, *activityFile); err != nil {
		os.Remove(tmp)
		fmt.Fprintf(os.Stderr, "Error replacing %q: %v\n", *activityFile, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Formatted %d records in %s.\n", len(activities), *activityFile)
	return subcommands.ExitSuccess
}
