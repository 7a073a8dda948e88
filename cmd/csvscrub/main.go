package main

import (
	"fmt"
	"os"

	"github.com/JonMunkholm/csvscrub/internal/cli"
	"github.com/JonMunkholm/csvscrub/internal/scrub"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		msg := scrub.UserMessageFor(err)
		fmt.Fprintf(os.Stderr, "%s: %s. %s.\n", msg.Code, msg.Message, msg.Action)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
