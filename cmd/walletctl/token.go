package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/MrJamesThe3rd/wallet/internal/config"
	"github.com/MrJamesThe3rd/wallet/internal/http/auth"
)

type tokenCmd struct {
	subject string
	ttl     time.Duration
}

func (*tokenCmd) Name() string     { return "token" }
func (*tokenCmd) Synopsis() string { return "print a bearer token for the API" }
func (*tokenCmd) Usage() string {
	return `walletctl token [-subject <name>] [-ttl <duration>]

  Prints a token signed with AUTH_SECRET.
`
}

func (c *tokenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.subject, "subject", "owner", "token subject")
	f.DurationVar(&c.ttl, "ttl", 30*24*time.Hour, "token lifetime")
}

func (c *tokenCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if cfg.Auth.Secret == "" {
		fmt.Fprintln(os.Stderr, "Error: AUTH_SECRET is not set, the API accepts requests without a token")
		return subcommands.ExitUsageError
	}

	token, err := auth.Issue([]byte(cfg.Auth.Secret), c.subject, time.Now(), c.ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(token)

	return subcommands.ExitSuccess
}
