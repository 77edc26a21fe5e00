package main

import (
	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"imagecropper/internal/app"
	"imagecropper/internal/config"
	"imagecropper/internal/logger"
)

var cli struct {
	Path  string `arg:"" optional:"" type:"path" help:"Image file to open at startup."`
	Debug bool   `help:"Enable debug logging."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("imagecropper"),
		kong.Description("Select a rectangular region of an image and save it as a new file."),
	)

	level := zerolog.InfoLevel
	if cli.Debug {
		level = zerolog.DebugLevel
	}
	log := logger.NewConsoleLogger(level)

	cfgPath := config.DefaultPath()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Warning("Config", "settings file unreadable, using defaults", map[string]interface{}{
			"path":  cfgPath,
			"error": err.Error(),
		})
	}

	log.Info("App", "starting", map[string]interface{}{
		"config": cfgPath,
		"debug":  cli.Debug,
	})

	app.New(cfg, cfgPath, log).Run(cli.Path)
}
