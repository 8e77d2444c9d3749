// Package cmd implements the command-line interface for leaguecast.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leaguecast-cli/leaguecast/color"
	"github.com/leaguecast-cli/leaguecast/constant"
	"github.com/leaguecast-cli/leaguecast/icon"
	"github.com/leaguecast-cli/leaguecast/key"
	"github.com/leaguecast-cli/leaguecast/log"
	"github.com/leaguecast-cli/leaguecast/menu"
	"github.com/leaguecast-cli/leaguecast/style"
	"github.com/leaguecast-cli/leaguecast/util"
	"github.com/leaguecast-cli/leaguecast/version"
	"github.com/leaguecast-cli/leaguecast/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().BoolP("url-only", "u", false, "Print resolved stream URLs instead of launching the player")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("player", "p", "", "Override the media player used for playback")
	lo.Must0(viper.BindPFlag(key.Player, rootCmd.PersistentFlags().Lookup("player")))

	rootCmd.PersistentFlags().Bool("scores", true, "Attach live scoreboard summaries to live match listings")
	lo.Must0(viper.BindPFlag(key.MenuShowScores, rootCmd.PersistentFlags().Lookup("scores")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the leaguecast application.
var rootCmd = &cobra.Command{
	Use:   constant.Leaguecast,
	Short: "A command-line interface for rugby league video discovery and playback",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiGreen).Render("    - A command-line interface for rugby league video discovery and playback"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		CheckDependencies()

		options := menu.Options{
			URLOnly: lo.Must(cmd.Flags().GetBool("url-only")),
		}
		err := menu.Run(menuDeps(), &options)

		if err != nil && err.Error() != "interrupt" {
			handleErr(err)
		}
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
