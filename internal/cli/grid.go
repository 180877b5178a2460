package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/pixresize/internal/engine"
	"github.com/danieljhkim/pixresize/internal/grid"
	"github.com/danieljhkim/pixresize/internal/settings"
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Inspect and adjust the tile grid overlay",
	Long: `The grid overlay draws tile boundaries over a magnified preview so you can check
that resized pixel art still lines up with its tiles. The overlay is never
written into resized images.`,
}

// overlayFlags select the overlay grid; unset flags fall back to settings.
type overlayFlags struct {
	cell    int
	offsetX int
	offsetY int
}

func (f *overlayFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.cell, "cell", 0, "Grid cell size in pixels (default: saved grid size)")
	cmd.Flags().IntVar(&f.offsetX, "offset-x", 0, "Horizontal grid offset (default: saved offset)")
	cmd.Flags().IntVar(&f.offsetY, "offset-y", 0, "Vertical grid offset (default: saved offset)")
}

func (f *overlayFlags) resolve(cmd *cobra.Command, st *settings.Settings) grid.Spec {
	spec := st.Overlay()
	if cmd.Flags().Changed("cell") {
		spec.CellSize = f.cell
	}
	if cmd.Flags().Changed("offset-x") {
		spec.OffsetX = f.offsetX
	}
	if cmd.Flags().Changed("offset-y") {
		spec.OffsetY = f.offsetY
	}
	return spec
}

var (
	linesWidth   int
	linesHeight  int
	linesOverlay overlayFlags
)

var gridLinesCmd = &cobra.Command{
	Use:   "lines",
	Short: "Print overlay line positions for a canvas size",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if linesWidth <= 0 || linesHeight <= 0 {
			return fmt.Errorf("%w: --width and --height must be positive", engine.ErrValidation)
		}
		_, st, err := loadSettings()
		if err != nil {
			return err
		}
		spec := linesOverlay.resolve(cmd, st)
		lines := grid.Layout(linesWidth, linesHeight, spec)

		if jsonOutput {
			return outputJSON(lines)
		}

		PrintSection(fmt.Sprintf("Grid lines for %s", formatDims(linesWidth, linesHeight)))
		if spec.CellSize <= 0 {
			PrintEmptyState("Grid disabled (cell size 0)")
			return nil
		}
		ox, oy := spec.Normalized()
		PrintLabelValue("Cell", strconv.Itoa(spec.CellSize))
		PrintLabelValue("Offset", fmt.Sprintf("%d, %d", ox, oy))
		PrintLabelValue("x", joinInts(lines.Xs))
		PrintLabelValue("y", joinInts(lines.Ys))
		return nil
	},
}

var (
	previewOut     string
	previewZoom    int
	previewScale   scaleFlags
	previewOverlay overlayFlags
)

var gridPreviewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Render a resized image with the grid overlay",
	Long: `Resize an image with the saved settings (plus flags), magnify it by --zoom and
draw the grid overlay on top. The result is written as PNG to --out.`,
	Example: `  pixresize grid preview hero.png -o hero_grid.png --zoom 4
  pixresize grid preview map.png -o check.png --cell 16 --offset-x 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := loadSettings()
		if err != nil {
			return err
		}
		cfg, err := previewScale.resolve(cmd, st)
		if err != nil {
			return err
		}
		zoom := st.Zoom
		if cmd.Flags().Changed("zoom") {
			zoom = previewZoom
		}

		ctx, cancel := commandContext()
		defer cancel()

		result, err := newEngine().Preview(ctx, &engine.PreviewRequest{
			Input:  args[0],
			Output: previewOut,
			Config: cfg,
			Grid:   previewOverlay.resolve(cmd, st),
			Zoom:   zoom,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}
		PrintSuccess(fmt.Sprintf("Preview written to %s (%s)", result.Output, humanize.Bytes(uint64(result.Bytes))))
		PrintLabelValue("Resized", formatDims(result.Dimensions.Width, result.Dimensions.Height))
		PrintLabelValue("Zoom", fmt.Sprintf("%dx", result.Zoom))
		PrintLabelValue("Lines", fmt.Sprintf("%d vertical, %d horizontal", len(result.Lines.Xs), len(result.Lines.Ys)))
		return nil
	},
}

var (
	nudgeDX int
	nudgeDY int
)

var gridNudgeCmd = &cobra.Command{
	Use:   "nudge",
	Short: "Shift the saved grid offset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateOverlay(func(st *settings.Settings) {
			st.Nudge(nudgeDX, nudgeDY)
		})
	},
}

var gridResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the saved grid offset to 0,0",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateOverlay(func(st *settings.Settings) {
			st.ResetOffset()
		})
	},
}

// updateOverlay applies fn to the saved settings, saves them and reports
// the resulting overlay.
func updateOverlay(fn func(st *settings.Settings)) error {
	store, st, err := loadSettings()
	if err != nil {
		return err
	}
	fn(st)
	if err := store.Save(st); err != nil {
		return err
	}

	spec := grid.Spec{CellSize: st.GridSize, OffsetX: st.GridOffsetX, OffsetY: st.GridOffsetY}
	if jsonOutput {
		return outputJSON(spec)
	}
	ox, oy := spec.Normalized()
	PrintSuccess(fmt.Sprintf("Grid offset %d, %d (effective %d, %d on a %d px grid)",
		spec.OffsetX, spec.OffsetY, ox, oy, spec.CellSize))
	return nil
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func init() {
	gridLinesCmd.Flags().IntVar(&linesWidth, "width", 0, "Canvas width in pixels")
	gridLinesCmd.Flags().IntVar(&linesHeight, "height", 0, "Canvas height in pixels")
	linesOverlay.register(gridLinesCmd)

	gridPreviewCmd.Flags().StringVarP(&previewOut, "out", "o", "", "PNG file to write")
	gridPreviewCmd.Flags().IntVarP(&previewZoom, "zoom", "z", 0, "Magnification 1-16 (default: saved zoom)")
	_ = gridPreviewCmd.MarkFlagRequired("out")
	previewScale.register(gridPreviewCmd)
	previewOverlay.register(gridPreviewCmd)

	gridNudgeCmd.Flags().IntVar(&nudgeDX, "dx", 0, "Horizontal shift in pixels")
	gridNudgeCmd.Flags().IntVar(&nudgeDY, "dy", 0, "Vertical shift in pixels")

	gridCmd.AddCommand(gridLinesCmd)
	gridCmd.AddCommand(gridPreviewCmd)
	gridCmd.AddCommand(gridNudgeCmd)
	gridCmd.AddCommand(gridResetCmd)
}
