package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeguess"
)

var orientationsJSON bool

var orientationsCmd = &cobra.Command{
	Use:   "orientations",
	Short: "List the 24 orientations of the cube",
	Long:  `Print every rotation of the reference cube as an unfolded net, or as JSON with --json.`,
	RunE:  runOrientations,
}

func init() {
	orientationsCmd.Flags().BoolVar(&orientationsJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(orientationsCmd)
}

func runOrientations(cmd *cobra.Command, args []string) error {
	states := cubeguess.Orientations()
	out := cmd.OutOrStdout()

	if orientationsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(states)
	}

	for i, s := range states {
		fmt.Fprintf(out, "#%d  front=%s up=%s\n", i+1, s.Color(cubeguess.Front), s.Color(cubeguess.Up))
		fmt.Fprintln(out, s.String())
	}
	fmt.Fprintf(out, "%d orientations\n", len(states))
	return nil
}
