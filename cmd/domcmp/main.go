package main

import (
	"fmt"
	"os"

	"github.com/pthm/domcmp/internal/cli"
	"github.com/pthm/domcmp/internal/config"
)

func main() {
	env, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cli.ExitCommandError)
	}

	if err := cli.NewRootCommand(env).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
