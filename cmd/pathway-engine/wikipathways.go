package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/pathway-engine/internal/refdata"
)

var wikipathwaysCmd = &cobra.Command{
	Use:   "wikipathways",
	Short: "Query the bundled WikiPathways membership matrix",
	Long: `Wikipathways answers membership queries against the bundled
protein-by-pathway matrix: which pathways a protein belongs to, which
proteins a pathway contains, and which proteins share at least one pathway
with a protein.`,
}

var wikipathwaysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every pathway in the matrix",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		matrix, err := refdata.LoadMatrix(refdataDir(cmd))
		if err != nil {
			return err
		}
		return printSymbols(cmd, matrix.Pathways())
	},
}

var wikipathwaysProteinCmd = &cobra.Command{
	Use:   "protein <protein>",
	Short: "List the pathways containing a protein",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matrix, err := refdata.LoadMatrix(refdataDir(cmd))
		if err != nil {
			return err
		}
		return printSymbols(cmd, matrix.ProteinPathways(args[0]))
	},
}

var wikipathwaysPathwayCmd = &cobra.Command{
	Use:   "pathway <pathway>",
	Short: "List the proteins in a pathway",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matrix, err := refdata.LoadMatrix(refdataDir(cmd))
		if err != nil {
			return err
		}
		return printSymbols(cmd, matrix.PathwayProteins(args[0]))
	},
}

var wikipathwaysPartnersCmd = &cobra.Command{
	Use:   "partners <protein>",
	Short: "List the proteins sharing a pathway with a protein",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matrix, err := refdata.LoadMatrix(refdataDir(cmd))
		if err != nil {
			return err
		}
		return printSymbols(cmd, matrix.SharedPathwayPartners(args[0]))
	},
}

func init() {
	wikipathwaysCmd.PersistentFlags().String("refdata-dir", refdata.DefaultDir, "directory holding the bundled reference tables")
	wikipathwaysCmd.PersistentFlags().Bool("json", false, "output results as JSON")

	wikipathwaysCmd.AddCommand(wikipathwaysListCmd)
	wikipathwaysCmd.AddCommand(wikipathwaysProteinCmd)
	wikipathwaysCmd.AddCommand(wikipathwaysPathwayCmd)
	wikipathwaysCmd.AddCommand(wikipathwaysPartnersCmd)

	rootCmd.AddCommand(wikipathwaysCmd)
}
