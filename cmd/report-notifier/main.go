package main

import (
	"context"
	"os"

	"opencsg.com/report-notifier/cmd/report-notifier/cmd"
)

func main() {
	command := cmd.RootCmd
	if err := command.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
