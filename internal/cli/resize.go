package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/pixresize/internal/engine"
)

var (
	resizeScale     scaleFlags
	resizeOutDir    string
	resizeWorkers   int
	resizeDryRun    bool
	resizeOverwrite bool
)

var resizeCmd = &cobra.Command{
	Use:   "resize <file|dir>...",
	Short: "Resize images with nearest-neighbor sampling",
	Long: `Resize one or more images. Directories contribute the images directly inside them.

Each output is written as {name}_{width}x{height}{ext} next to its source, or into
--out. GIF and WebP sources are written as PNG. Existing files are kept unless
--force is given. Flags override the saved settings for this run only.`,
	Example: `  pixresize resize hero.png --scale 200
  pixresize resize sprites/ --width 64 --grid 16 --snap -o build/
  pixresize resize tiles/*.png --dry-run`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := loadSettings()
		if err != nil {
			return err
		}
		cfg, err := resizeScale.resolve(cmd, st)
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		result, err := newEngine().Resize(ctx, &engine.ResizeRequest{
			Inputs:    args,
			OutputDir: resizeOutDir,
			Config:    cfg,
			Workers:   resizeWorkers,
			DryRun:    resizeDryRun,
			Overwrite: resizeOverwrite,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			if err := outputJSON(result); err != nil {
				return err
			}
		} else {
			printResizeResult(result)
		}

		return batchError(result.Summary)
	},
}

func init() {
	resizeScale.register(resizeCmd)
	resizeCmd.Flags().StringVarP(&resizeOutDir, "out", "o", "", "Output directory (default: next to each source)")
	resizeCmd.Flags().IntVarP(&resizeWorkers, "workers", "j", 0, "Images processed in parallel (default: one per CPU)")
	resizeCmd.Flags().BoolVar(&resizeDryRun, "dry-run", false, "Show what would be written without writing")
	resizeCmd.Flags().BoolVarP(&resizeOverwrite, "force", "f", false, "Overwrite existing output files")
}

func printResizeResult(result *engine.ResizeResult) {
	title := "Resize"
	if result.DryRun {
		title = "Resize (dry run)"
	}
	PrintSection(title)

	rows := make([][]string, 0, len(result.Items))
	for _, item := range result.Items {
		if !item.OK() {
			continue
		}
		size := "-"
		if item.Bytes > 0 {
			size = humanize.Bytes(uint64(item.Bytes))
		}
		rows = append(rows, []string{
			item.Input,
			formatDims(item.SourceWidth, item.SourceHeight) + " → " + formatPlanned(item),
			item.Output,
			size,
		})
	}
	PrintTable([]string{"Input", "Size", "Output", "Bytes"}, rows)

	printItemFailures(result.Items)
	printSummary(result.Summary, "resized")
}

// printItemFailures lists failed and canceled items.
func printItemFailures(items []engine.ItemResult) {
	for _, item := range items {
		switch item.Status {
		case engine.StatusError:
			PrintError(fmt.Sprintf("%s [%s] %s", item.Input, item.Kind, item.Error))
		case engine.StatusCanceled:
			PrintWarning(fmt.Sprintf("%s canceled", item.Input))
		}
	}
}

func printSummary(s engine.BatchSummary, verb string) {
	fmt.Println()
	msg := fmt.Sprintf("%s of %d %s", PrintCount(s.Succeeded, "image", "images"), s.Total, verb)
	if s.Failed == 0 && s.Canceled == 0 {
		PrintSuccess(msg)
		return
	}
	PrintWarning(fmt.Sprintf("%s, %d failed, %d canceled", msg, s.Failed, s.Canceled))
}

// batchError turns a batch with failures into a non-zero exit.
func batchError(s engine.BatchSummary) error {
	if s.Failed == 0 && s.Canceled == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d images did not complete", s.Failed+s.Canceled, s.Total)
}

func formatDims(w, h int) string {
	return fmt.Sprintf("%dx%d", w, h)
}

func formatPlanned(item engine.ItemResult) string {
	dims := formatDims(item.Dimensions.Width, item.Dimensions.Height)
	if item.Dimensions.Snapped {
		dims += " [snapped]"
	}
	return dims
}
