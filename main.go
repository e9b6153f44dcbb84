package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/soocke/digit-viewer-go/app"
	"github.com/soocke/digit-viewer-go/config"
)

func main() {
	cfgPath := flag.String("config", "viewer.json", "path to JSON config file")
	images := flag.String("images", "", "images IDX file (raw or gzip)")
	labels := flag.String("labels", "", "labels IDX file (raw or gzip); \"-\" disables labels")
	limit := flag.Int("limit", -1, "maximum number of images to load (0 = all)")
	scale := flag.Int("scale", -1, "display upscale factor (0 = fit window)")
	wrap := flag.Bool("wrap", false, "wrap around at the ends instead of clamping")
	demo := flag.Bool("demo", false, "show the embedded demo dataset")
	debugFlag := flag.Bool("debug", false, "debug logging and runtime memory stats")
	writeCfg := flag.String("write-config", "", "write the effective config to this path and exit")
	flag.Parse()

	// Base config from file (or defaults), then flags.
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		NewLogger(slog.LevelInfo).Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "images":
			cfg.ImagesPath = *images
		case "labels":
			cfg.LabelsPath = *labels
			if *labels == "-" {
				cfg.LabelsPath = ""
			}
		case "limit":
			cfg.Limit = *limit
		case "scale":
			cfg.Scale = *scale
		case "wrap":
			if *wrap {
				cfg.Bounds = "wrap"
			} else {
				cfg.Bounds = "clamp"
			}
		case "demo":
			cfg.Demo = *demo
		case "debug":
			cfg.Debug = *debugFlag
		}
	})
	_ = cfg.Validate()

	// Set up logger
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)

	if *writeCfg != "" {
		if err := cfg.Save(*writeCfg); err != nil {
			logger.Error("config save failed", "path", *writeCfg, "error", err)
			os.Exit(1)
		}
		logger.Info("config saved", "path", *writeCfg)
		return
	}

	c, err := app.BuildContainer(cfg, logger)
	if err != nil {
		logger.Error("dataset load failed", "error", err)
		os.Exit(1)
	}
	application := app.NewApp(cfg, logger, c)
	if err := application.Start(); err != nil {
		os.Exit(1)
	}
}
