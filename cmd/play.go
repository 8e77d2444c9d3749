// Package cmd implements the command-line interface for leaguecast.
package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leaguecast-cli/leaguecast/inline"
	"github.com/leaguecast-cli/leaguecast/key"
	"github.com/leaguecast-cli/leaguecast/open"
	"github.com/leaguecast-cli/leaguecast/video"
)

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().BoolP("url-only", "u", false, "Print the resolved stream URL instead of launching the player")
	playCmd.Flags().StringP("section", "s", "", "The catalog section to look the entry up in")
	playCmd.Flags().StringP("link-id", "i", "", "Select the entry with this link identifier from the section")

	playCmd.MarkFlagsRequiredTogether("section", "link-id")
}

// playCmd resolves an entry to a stream URL and launches playback.
var playCmd = &cobra.Command{
	Use:   "play [entry]",
	Short: "Resolve an entry to a stream URL and launch playback",
	Long: `Resolve an entry to its playable stream URL and hand it to the configured media player.

The entry argument is the transport form printed by 'list --encode'. Alternatively,
an entry can be looked up by its link identifier within a catalog section.`,
	Example: "  leaguecast play \"$(leaguecast list live --pick first --encode)\"\n" +
		"  leaguecast play --section replays --link-id 8412",
	Args: cobra.MaximumNArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && !cmd.Flags().Changed("link-id") {
			handleErr(fmt.Errorf("an entry argument or --section with --link-id is required"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		deps := menuDeps()

		var entity *video.Video
		if len(args) > 0 {
			decoded, err := video.Decode(args[0])
			handleErr(err)
			entity = decoded
		} else {
			options := &inline.Options{
				Feeds:   deps.Feeds,
				Section: lo.Must(cmd.Flags().GetString("section")),
			}

			videos, err := inline.Load(options)
			handleErr(err)

			linkID := lo.Must(cmd.Flags().GetString("link-id"))
			found, ok := lo.Find(videos, func(v *video.Video) bool {
				return v.LinkID.OrElse("") == linkID || v.VideoID.OrElse("") == linkID
			})
			if !ok {
				handleErr(fmt.Errorf("no entry with link id %s", linkID))
			}

			// Entries cross the playback boundary in their transport form.
			entity, err = video.Decode(found.Encode())
			handleErr(err)
		}

		if entity.IsDummy() {
			handleErr(fmt.Errorf("%s has not started yet", entity))
		}

		url, err := deps.Streams.Resolve(entity, deps.MediaToken)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("url-only")) {
			fmt.Println(url)
			return
		}

		CheckDependencies()
		handleErr(open.RunWith(url, viper.GetString(key.Player)))
	},
}
