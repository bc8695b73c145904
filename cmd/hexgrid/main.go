package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/Garsondee/Grid-Game/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
