package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/MrJamesThe3rd/wallet/internal/report"
)

type reportCmd struct {
	raw bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display wealth totals and Zakat progress" }
func (*reportCmd) Usage() string {
	return `walletctl report [-raw]

  Computes the totals from the stored records and prints them.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print plain markdown")
}

func (c *reportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	v, err := a.totals.Open("walletctl").Display(ctx, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	v.LastUpdate = a.totals.LastUpdate(ctx)

	printMarkdown(report.Markdown(v, time.Now().Year()), c.raw)

	return subcommands.ExitSuccess
}

func printMarkdown(md string, raw bool) {
	if raw {
		fmt.Print(md)
		return
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}

	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}

	fmt.Print(out)
}
