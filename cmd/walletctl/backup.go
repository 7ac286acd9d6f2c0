package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/subcommands"

	"github.com/MrJamesThe3rd/wallet/internal/backup"
)

type exportCmd struct {
	dir string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write every record to a backup file" }
func (*exportCmd) Usage() string {
	return `walletctl export [-dir <path>]

  Writes wallet_backup_<date>_<time>.json into the directory.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "dir", ".", "output directory")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	doc, err := a.backups.Export(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	path := filepath.Join(c.dir, backup.Filename(time.Now()))

	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := backup.Encode(f, doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("wrote %s (%d assets, %d debts)\n", path, len(doc.Assets), len(doc.Debts))

	return subcommands.ExitSuccess
}

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "restore records from a backup file" }
func (*importCmd) Usage() string {
	return `walletctl import <file>

  Upserts every record of the backup file. Records not in the file are kept.
`
}

func (*importCmd) SetFlags(*flag.FlagSet) {}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	doc, err := a.backups.Import(ctx, file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("imported %d assets, %d debts, %d rates and %d bases\n",
		len(doc.Assets), len(doc.Debts), len(doc.Rates), len(doc.ZakatBase))

	return subcommands.ExitSuccess
}
