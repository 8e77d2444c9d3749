// Package main is the entry point for the leaguecast application.
package main

import (
	"github.com/samber/lo"

	"github.com/leaguecast-cli/leaguecast/cmd"
	"github.com/leaguecast-cli/leaguecast/config"
	"github.com/leaguecast-cli/leaguecast/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
