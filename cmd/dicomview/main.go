// Command dicomview displays a 16-bit grayscale image with interactive
// window/level, pan and zoom.
package main

import (
	"context"
	"os"
	"os/signal"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/mattn/go-colorable"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/dicomview/internal/config"
	"github.com/elektrokombinacija/dicomview/internal/raster"
	"github.com/elektrokombinacija/dicomview/internal/vis"
	"github.com/elektrokombinacija/dicomview/internal/vis/state"
)

var rootCmd = &cobra.Command{
	Use:   "dicomview [image]",
	Short: "Interactive window/level, pan and zoom viewer",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runView,
}

var (
	configPath string
	logLevel   string
	flags      struct {
		width      int
		height     int
		byteOrder  string
		autoWindow bool
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "dicomview.yaml", "Configuration file")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "level", "l", "", "Log level")

	rootCmd.Flags().IntVar(&flags.width, "width", 0, "Width of a .raw image")
	rootCmd.Flags().IntVar(&flags.height, "height", 0, "Height of a .raw image")
	rootCmd.Flags().StringVar(&flags.byteOrder, "byte-order", "", "Byte order of a .raw image (little, big)")
	rootCmd.Flags().BoolVar(&flags.autoWindow, "auto-window", false, "Derive the initial window from the image")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg, args)
	if err := cfg.Validate(); err != nil {
		return err
	}
	setupLogger(cfg.Log.Level)

	opts, err := cfg.RawOptions()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	img, err := raster.Load(ctx, cfg.Image.Source, opts)
	stop()
	if err != nil {
		return err
	}

	v := cfg.Viewer
	stats := img.Statistics(v.Slope, v.Intercept)
	log.WithFields(log.Fields{
		"min":  stats.Min,
		"max":  stats.Max,
		"mean": stats.Mean,
		"std":  stats.StdDev,
	}).Debug("intensity statistics")
	if cfg.Image.AutoWindow {
		v.WindowWidth, v.WindowCenter = img.AutoWindow(v.Slope, v.Intercept, 0.01, 0.99)
		log.WithFields(log.Fields{
			"ww": v.WindowWidth,
			"wc": v.WindowCenter,
		}).Info("auto window")
	}
	params := state.NewParams(v.Slope, v.Intercept, v.WindowWidth, v.WindowCenter, v.PanX, v.PanY, v.Zoom)
	st := state.NewState(img, params, cfg.Image.Source)

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title(cfg.Window.Title),
			app.Size(unit.Dp(cfg.Window.Width), unit.Dp(cfg.Window.Height)),
		)

		application, err := vis.NewApp(st, window)
		if err != nil {
			log.WithError(err).Fatal("can't start viewer")
		}
		if err := application.Run(); err != nil {
			log.WithError(err).Fatal()
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

// applyFlags overrides configuration values with explicitly set flags.
func applyFlags(cmd *cobra.Command, cfg *config.Config, args []string) {
	if len(args) > 0 {
		cfg.Image.Source = args[0]
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	f := cmd.Flags()
	if f.Changed("width") {
		cfg.Image.Width = flags.width
	}
	if f.Changed("height") {
		cfg.Image.Height = flags.height
	}
	if f.Changed("byte-order") {
		cfg.Image.ByteOrder = flags.byteOrder
	}
	if f.Changed("auto-window") {
		cfg.Image.AutoWindow = flags.autoWindow
	}
}

func setupLogger(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetOutput(colorable.NewColorableStderr())
	log.WithField("log_level", lvl).Debug()
}
