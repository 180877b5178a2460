package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/pixresize/internal/clock"
	"github.com/danieljhkim/pixresize/internal/config"
	"github.com/danieljhkim/pixresize/internal/engine"
	"github.com/danieljhkim/pixresize/internal/fsops"
	"github.com/danieljhkim/pixresize/internal/hash"
	"github.com/danieljhkim/pixresize/internal/planner"
	"github.com/danieljhkim/pixresize/internal/settings"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() *engine.Engine {
	return engine.New(fsops.NewRealFS(), hash.NewSHA256Hasher(), &clock.RealClock{}, logger)
}

// newSettingsStore opens the persisted settings under the default paths.
func newSettingsStore() (*settings.FileStore, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}
	fs := fsops.NewRealFS()
	if err := paths.EnsureDirectories(fs); err != nil {
		return nil, err
	}
	return settings.NewFileStore(fs, paths.Settings), nil
}

// loadSettings reads the persisted settings.
func loadSettings() (*settings.FileStore, *settings.Settings, error) {
	store, err := newSettingsStore()
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	return store, st, nil
}

// commandContext returns a context canceled on interrupt.
func commandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// scaleFlags are the flags shared by commands that plan output sizes.
type scaleFlags struct {
	scale  int
	width  int
	height int
	grid   int
	snap   bool
}

func (f *scaleFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.scale, "scale", "s", 0, "Scale in percent (1-200)")
	cmd.Flags().IntVar(&f.width, "width", 0, "Exact output width in pixels")
	cmd.Flags().IntVar(&f.height, "height", 0, "Exact output height in pixels")
	cmd.Flags().IntVar(&f.grid, "grid", 0, "Tile grid size (0, 8, 16, 32, 64, 128)")
	cmd.Flags().BoolVar(&f.snap, "snap", false, "Snap output dimensions to the tile grid")
}

// resolve applies the flags the user set on top of the persisted settings
// and returns the configuration snapshot. st is modified in place but never
// saved.
func (f *scaleFlags) resolve(cmd *cobra.Command, st *settings.Settings) (planner.ScaleConfig, error) {
	flags := cmd.Flags()

	if flags.Changed("scale") {
		if err := st.Set("scale", fmt.Sprint(f.scale)); err != nil {
			return planner.ScaleConfig{}, err
		}
		st.ScaleMode = planner.ModePercent
	}
	if flags.Changed("width") || flags.Changed("height") {
		if flags.Changed("scale") {
			return planner.ScaleConfig{}, fmt.Errorf("%w: --scale cannot be combined with --width/--height", engine.ErrValidation)
		}
		if f.width < 0 || f.height < 0 {
			return planner.ScaleConfig{}, fmt.Errorf("%w: --width and --height must be positive", engine.ErrValidation)
		}
		st.ScaleMode = planner.ModePixels
		st.ExactWidth, st.ExactHeight = f.width, f.height
	}
	if flags.Changed("grid") {
		if err := st.SetGridSize(f.grid); err != nil {
			return planner.ScaleConfig{}, err
		}
	}
	if flags.Changed("snap") {
		if err := st.SetSnap(f.snap); err != nil {
			return planner.ScaleConfig{}, err
		}
	}

	cfg := st.Snapshot()
	if err := cfg.Validate(); err != nil {
		return planner.ScaleConfig{}, err
	}
	if planner.UsesPercentFallback(cfg) && !jsonOutput {
		PrintWarning(fmt.Sprintf("pixels mode without width or height: scaling by %d%%", cfg.Percent))
	}
	return cfg, nil
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
