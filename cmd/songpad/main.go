package main

import (
	"os"

	"github.com/rcliao/songpad/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
