// Package cmd implements the command-line interface for leaguecast.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"

	"github.com/leaguecast-cli/leaguecast/auth"
	"github.com/leaguecast-cli/leaguecast/color"
	"github.com/leaguecast-cli/leaguecast/icon"
	"github.com/leaguecast-cli/leaguecast/style"
)

func init() {
	rootCmd.AddCommand(tokenCmd)
}

// tokenCmd serves as the parent command for managing the stored media token.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the media token used to sign stream URLs",
	Long: `Manage the media token stored in the system keyring.

A stored token is attached to stream resolution so that resolved URLs are signed for playback.`,
}

func init() {
	tokenCmd.AddCommand(tokenSetCmd)
}

// tokenSetCmd stores a media token in the system keyring.
var tokenSetCmd = &cobra.Command{
	Use:   "set [token]",
	Short: "Store a media token in the system keyring",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.SetToken(args[0]))
		fmt.Printf(
			"%s media token stored\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
		)
	},
}

func init() {
	tokenCmd.AddCommand(tokenShowCmd)
}

// tokenShowCmd prints the currently stored media token.
var tokenShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the currently stored media token",
	Run: func(cmd *cobra.Command, args []string) {
		token, err := auth.GetToken()
		if errors.Is(err, keyring.ErrNotFound) {
			handleErr(errors.New("no media token stored"))
		}

		handleErr(err)
		fmt.Println(token)
	},
}

func init() {
	tokenCmd.AddCommand(tokenDeleteCmd)
}

// tokenDeleteCmd removes the stored media token from the system keyring.
var tokenDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the stored media token from the system keyring",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		err := auth.DeleteToken()
		if errors.Is(err, keyring.ErrNotFound) {
			handleErr(errors.New("no media token stored"))
		}

		handleErr(err)
		fmt.Printf(
			"%s media token deleted\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
		)
	},
}
