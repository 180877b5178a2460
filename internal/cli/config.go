package cli

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/pixresize/internal/codec"
	"github.com/danieljhkim/pixresize/internal/fsops"
	"github.com/danieljhkim/pixresize/internal/settings"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change saved settings",
	Long: fmt.Sprintf(`Settings persist between runs and provide the defaults for resize, plan and
grid commands. The settings file lives under $PIXRESIZE_ROOT (default ~/.pixresize).

Keys: %s`, strings.Join(settings.Keys(), ", ")),
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, st, err := loadSettings()
		if err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(st)
		}
		printSettings(store.Path(), st)
		return nil
	},
}

var setSource string

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting. With --source, exactWidth and exactHeight are set for that
image: when lockAspect is on, the other dimension follows its aspect ratio.`,
	Example: `  pixresize config set scale 200
  pixresize config set scaleMode pixels
  pixresize config set exactWidth 64 --source hero.png
  pixresize config set gridSize 0`,
	Args: cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return settings.Keys(), cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, st, err := loadSettings()
		if err != nil {
			return err
		}
		if setSource != "" {
			info, err := readSourceInfo(setSource)
			if err != nil {
				return err
			}
			if err := st.SetFromSource(args[0], args[1], info.Width, info.Height); err != nil {
				return err
			}
		} else if err := st.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := store.Save(st); err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(st)
		}
		PrintSuccess(fmt.Sprintf("Set %s = %s", args[0], args[1]))
		if setSource != "" && st.LockAspect {
			PrintInfo(fmt.Sprintf("Exact size %s (aspect of %s)", formatDims(st.ExactWidth, st.ExactHeight), setSource))
		}
		if args[0] == "gridSize" && st.GridSize == 0 {
			PrintInfo("Grid disabled; snapping turned off")
		}
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSettingsStore()
		if err != nil {
			return err
		}
		if err := store.Reset(); err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(settings.Default())
		}
		PrintSuccess("Settings reset to defaults")
		return nil
	},
}

func printSettings(path string, st *settings.Settings) {
	PrintSection("Settings")
	PrintLabelValue("File", path)
	PrintLabelValue("scaleMode", string(st.ScaleMode))
	PrintLabelValue("scale", strconv.Itoa(st.Scale)+"%")
	PrintLabelValue("exactWidth", optionalInt(st.ExactWidth, "unset"))
	PrintLabelValue("exactHeight", optionalInt(st.ExactHeight, "unset"))
	PrintLabelValue("lockAspect", strconv.FormatBool(st.LockAspect))
	PrintLabelValue("gridSize", optionalInt(st.GridSize, "off"))
	PrintLabelValue("snapToGrid", strconv.FormatBool(st.SnapToGrid))
	PrintLabelValue("showGrid", strconv.FormatBool(st.ShowGrid))
	PrintLabelValue("gridOffset", fmt.Sprintf("%d, %d", st.GridOffsetX, st.GridOffsetY))
	PrintLabelValue("zoom", strconv.Itoa(st.Zoom)+"x")
}

// readSourceInfo reads only the header of an image file.
func readSourceInfo(path string) (codec.Info, error) {
	data, err := fsops.NewRealFS().ReadFile(path)
	if err != nil {
		return codec.Info{}, fmt.Errorf("failed to read source image: %w", err)
	}
	info, err := codec.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return codec.Info{}, fmt.Errorf("%s: %w", path, err)
	}
	return info, nil
}

func optionalInt(v int, zero string) string {
	if v == 0 {
		return zero
	}
	return strconv.Itoa(v)
}

func init() {
	configSetCmd.Flags().StringVar(&setSource, "source", "", "Image whose size drives the aspect-lock prefill of exactWidth/exactHeight")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configResetCmd)
}
