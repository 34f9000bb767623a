// Package main is the entry point for the streamsan application.
package main

import (
	"github.com/samber/lo"
	"github.com/streamsan-cli/streamsan/cmd"
	"github.com/streamsan-cli/streamsan/config"
	"github.com/streamsan-cli/streamsan/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
