package main

import (
	"os"

	"hotel-backoffice/cmd/roomctl/cli"
)

func main() {
	if err := cli.NewRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
