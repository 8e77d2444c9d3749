// Package cmd implements the command-line interface for leaguecast.
package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"

	"github.com/leaguecast-cli/leaguecast/filesystem"
	"github.com/leaguecast-cli/leaguecast/inline"
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	listCmd.Flags().BoolP("encode", "e", false, "Print entries in their transport form accepted by the play command")
	listCmd.Flags().BoolP("resolve", "r", false, "Resolve entries to playable stream URLs")
	listCmd.Flags().StringP("pick", "p", "", "Narrow the listing to a single entry (first, last or a zero-based index)")
	listCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	listCmd.MarkFlagsMutuallyExclusive("json", "encode", "resolve")
}

// listCmd lists a catalog section in non-interactive, scriptable mode.
var listCmd = &cobra.Command{
	Use:   "list [section]",
	Short: "List a catalog section in non-interactive, scriptable mode",
	Long: `List the entries of a catalog section for automated execution and data extraction.

Sections:
  ` + strings.Join(inline.Sections(), ", ") + `

Entry selectors:
  first - first entry in the listing
  last - last entry in the listing
  [number] - select an entry by index (starting from 0)`,
	Example: "  leaguecast list live --json\n  leaguecast list replays --pick 0 --resolve",
	Args:    cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return inline.Sections(), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		var (
			writer io.Writer = os.Stdout
			err    error
		)

		output := lo.Must(cmd.Flags().GetString("output"))
		if output != "" {
			writer, err = filesystem.API().Create(output)
			handleErr(err)
		}

		picker := mo.None[inline.Picker]()
		if expr := lo.Must(cmd.Flags().GetString("pick")); expr != "" {
			fn, err := inline.ParsePicker(expr)
			handleErr(err)
			picker = mo.Some(fn)
		}

		deps := menuDeps()
		options := &inline.Options{
			Out:        writer,
			Feeds:      deps.Feeds,
			Streams:    deps.Streams,
			MediaToken: deps.MediaToken,
			Section:    args[0],
			Picker:     picker,
			Json:       lo.Must(cmd.Flags().GetBool("json")),
			Encode:     lo.Must(cmd.Flags().GetBool("encode")),
			Resolve:    lo.Must(cmd.Flags().GetBool("resolve")),
		}

		handleErr(inline.Run(options))
	},
}

func init() {
	listCmd.AddCommand(listSchemaCmd)
}

// listSchemaCmd generates the JSON schema for structured listing outputs.
var listSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for structured listing outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "entry", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		schema := reflector.Reflect(&inline.Output{})
		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
