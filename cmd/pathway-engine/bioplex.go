package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pathway-engine/internal/refdata"
)

var bioplexCmd = &cobra.Command{
	Use:   "bioplex <protein>",
	Short: "Look up interaction partners in the bundled BioPlex table",
	Long: `Bioplex scans the bundled BioPlex interaction list for partners of the
given protein. With --secondary, the partners of each partner are unioned
into the list as a second hop.

The table is re-read on every invocation, so edits to the file take effect
immediately.`,
	Args: cobra.ExactArgs(1),
	RunE: runBioplex,
}

func init() {
	bioplexCmd.Flags().Bool("secondary", false, "include second-hop partners")
	bioplexCmd.Flags().String("refdata-dir", refdata.DefaultDir, "directory holding the bundled reference tables")
	bioplexCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(bioplexCmd)
}

func runBioplex(cmd *cobra.Command, args []string) error {
	secondary, _ := cmd.Flags().GetBool("secondary")

	table, err := refdata.LoadInteractions(refdataDir(cmd))
	if err != nil {
		return err
	}

	return printSymbols(cmd, table.Partners(args[0], secondary))
}

// --- shared helpers ---

func refdataDir(cmd *cobra.Command) string {
	dir := configString(cmd, "refdata-dir", "refdata.dir")
	if dir == "" {
		dir = refdata.DefaultDir
	}
	return dir
}

// printSymbols prints one symbol per line, or a JSON array with --json.
func printSymbols(cmd *cobra.Command, symbols []string) error {
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		if symbols == nil {
			symbols = []string{}
		}
		return printJSON(symbols)
	}
	if len(symbols) == 0 {
		fmt.Println("No matches found.")
		return nil
	}
	for _, s := range symbols {
		fmt.Println(s)
	}
	return nil
}
