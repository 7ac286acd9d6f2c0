// Command walletctl runs one-off wallet tasks from the shell: issuing API
// tokens, printing a totals report and moving backups in and out.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	commander.Register(&tokenCmd{}, "api")
	commander.Register(&reportCmd{}, "totals")
	commander.Register(&exportCmd{}, "backup")
	commander.Register(&importCmd{}, "backup")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
