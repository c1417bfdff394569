package commands

import (
	"github.com/spf13/cobra"

	"github.com/dyluth/tension/internal/plan"
)

var (
	spreadItems int
	spreadSlots int
	spreadJSON  bool
)

var spreadCmd = &cobra.Command{
	Use:   "spread",
	Short: "Spread increases, decreases or markers evenly",
	Long: `Spread a number of items evenly across a number of slots: increases across
a row, buttonholes along a band, beads along a cast-on.

No gauge is involved; this is the bare distribution engine. Items above the
slot count are fine here, slots simply take more than one.

Examples:
  # 6 increases across 16 stitches
  tension spread --items 6 --slots 16

  # 7 beads over 3 stitches
  tension spread --items 7 --slots 3`,
	RunE: runSpread,
}

func init() {
	spreadCmd.Flags().IntVar(&spreadItems, "items", 0, "Items to place (required)")
	spreadCmd.Flags().IntVar(&spreadSlots, "slots", 0, "Slots to place them across (required)")
	spreadCmd.Flags().BoolVar(&spreadJSON, "json", false, "Output in JSON format")
	spreadCmd.MarkFlagRequired("items")
	spreadCmd.MarkFlagRequired("slots")
	rootCmd.AddCommand(spreadCmd)
}

func runSpread(cmd *cobra.Command, args []string) error {
	p, err := plan.BuildSpread(plan.SpreadRequest{Items: spreadItems, Slots: spreadSlots})
	if err != nil {
		return err
	}
	return output(p, spreadJSON)
}
