// Package main is the playsheet CLI: it turns an outline markdown file
// into a paginated two-column checklist PDF.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kestrelpress/playsheet/layout"
	"github.com/kestrelpress/playsheet/outline"
	"github.com/kestrelpress/playsheet/renderer"
	canvasrenderer "github.com/kestrelpress/playsheet/renderer/canvas"
)

var debugPath string

var rootCmd = &cobra.Command{
	Use:   "playsheet <input.md> <output.pdf>",
	Short: "Render an outline markdown file as a boxed-checklist PDF",
	Long: `playsheet reads an outline markdown file where # headings open
sections, ## headings open boxes, "- " lines are bullets and "- [ ] "
lines are checkbox items, and renders it as a letter-format PDF with
two columns of boxed checklists per page.`,
	Args:    cobra.ExactArgs(2),
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		r := canvasrenderer.NewRenderer()
		return run(args[0], args[1], debugPath, r, r)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./playsheet.yaml)")
	rootCmd.Flags().StringVar(&debugPath, "debug", "", "write the layout result as JSON to this path")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("playsheet")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("PLAYSHEET")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// run chains parsing, layout and rendering.
func run(inputPath, outputPath, debugPath string, ts layout.Typesetter, r renderer.Renderer) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("cannot open input file %s: %w", inputPath, err)
	}
	defer file.Close()

	doc, err := outline.Parse(file)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", inputPath, err)
	}

	theme, err := themeFromConfig()
	if err != nil {
		return err
	}

	result, err := layout.Build(doc, layout.BuildOptions{Typesetter: ts, Theme: theme})
	if err != nil {
		return err
	}
	if debugPath != "" {
		if err := layout.WriteDebugJSON(result, debugPath); err != nil {
			return fmt.Errorf("writing debug JSON: %w", err)
		}
	}

	data, err := r.Render(result)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	fmt.Printf("Generated %s (%d sections)\n", outputPath, len(doc.Pages))
	return nil
}

// themeFromConfig starts from the default theme and applies any
// overrides set in the config file or PLAYSHEET_* environment.
func themeFromConfig() (layout.Theme, error) {
	theme := layout.DefaultTheme()

	lengths := []struct {
		key string
		dst *layout.Length
	}{
		{"margin.left", &theme.MarginLeft},
		{"margin.right", &theme.MarginRight},
		{"margin.top", &theme.MarginTop},
		{"margin.bottom", &theme.MarginBottom},
		{"gutter", &theme.Gutter},
	}
	for _, l := range lengths {
		raw := viper.GetString(l.key)
		if raw == "" {
			continue
		}
		parsed := layout.ParseLength(raw)
		if parsed == (layout.Length{}) {
			return layout.Theme{}, fmt.Errorf("config: cannot parse %s value %q", l.key, raw)
		}
		*l.dst = parsed
	}

	colors := []struct {
		key string
		dst *layout.Color
	}{
		{"color.dark", &theme.Dark},
		{"color.text", &theme.Text},
		{"color.background", &theme.BoxBackground},
	}
	for _, c := range colors {
		raw := viper.GetString(c.key)
		if raw == "" {
			continue
		}
		parsed, err := layout.ParseColor(raw)
		if err != nil {
			return layout.Theme{}, fmt.Errorf("config: %s: %w", c.key, err)
		}
		*c.dst = parsed
	}

	return theme, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
