package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/pixresize/internal/engine"
)

var planScale scaleFlags

var planCmd = &cobra.Command{
	Use:   "plan <file|dir>...",
	Short: "Show output dimensions without resizing",
	Long: `Read only the image headers and print the size each image would be resized to,
using the saved settings plus any flags.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := loadSettings()
		if err != nil {
			return err
		}
		cfg, err := planScale.resolve(cmd, st)
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		result, err := newEngine().Plan(ctx, &engine.PlanRequest{
			Inputs: args,
			Config: cfg,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			if err := outputJSON(result); err != nil {
				return err
			}
			return batchError(result.Summary)
		}

		PrintSection("Plan")
		rows := make([][]string, 0, len(result.Items))
		for _, item := range result.Items {
			if !item.OK() {
				continue
			}
			rows = append(rows, []string{
				item.Input,
				formatDims(item.SourceWidth, item.SourceHeight),
				formatPlanned(item),
				item.Output,
			})
		}
		if len(rows) == 0 {
			PrintEmptyState("No images could be planned")
		}
		PrintTable([]string{"Input", "Source", "Output Size", "Output"}, rows)
		printItemFailures(result.Items)
		printSummary(result.Summary, "planned")

		return batchError(result.Summary)
	},
}

func init() {
	planScale.register(planCmd)
}
