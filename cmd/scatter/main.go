package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/scatter"
	"github.com/tdewolff/scatter/renderers"
	"github.com/tdewolff/scatter/renderers/web"
	"golang.org/x/term"
)

type Render struct {
	Output     string  `short:"o" default:"scatter.svg" desc:"Output file, or - for stdout"`
	Format     string  `short:"f" desc:"Output format, by default the output file extension"`
	Config     string  `short:"c" desc:"YAML config file"`
	Headroom   float64 `desc:"Multiplier of the largest percentage at the top of the y axis"`
	Resolution float64 `default:"1" desc:"Dots per unit for raster formats"`
	Minify     bool    `default:"true" desc:"Minify HTML output"`
	LogLevel   string  `default:"info" desc:"Log level"`
	Input      string  `index:"0" desc:"Input CSV file"`
}

type Serve struct {
	Addr     string  `short:"a" desc:"Listen address, default :$PORT or :8080"`
	Open     bool    `desc:"Open the chart in the browser"`
	Config   string  `short:"c" desc:"YAML config file"`
	Headroom float64 `desc:"Multiplier of the largest percentage at the top of the y axis"`
	Minify   bool    `default:"true" desc:"Minify HTML output"`
	LogLevel string  `default:"info" desc:"Log level"`
	Input    string  `index:"0" desc:"Input CSV file"`
}

func main() {
	root := argp.NewCmd(&Render{}, "Scatter plot of food stamps versus renting by region")
	root.AddCmd(&Serve{}, "serve", "Serve the interactive chart over HTTP")
	root.Parse()
	root.PrintHelp()
}

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "scatter",
		ReportTimestamp: true,
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level", "level", level)
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// loadChart loads the config and dataset and lays out the chart. Any failure is fatal.
func loadChart(logger *log.Logger, input, config string, headroom float64) (*scatter.Chart, error) {
	cfg := scatter.DefaultConfig
	if config != "" {
		f, err := os.Open(config)
		if err != nil {
			return nil, err
		}
		cfg, err = scatter.LoadConfig(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to load config file '%s': %w", config, err)
		}
		logger.Debug("loaded config", "file", config)
	}
	if headroom != 0.0 {
		cfg.Headroom = headroom
	}

	ds, err := scatter.LoadFile(input)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded data", "file", input, "records", len(ds))

	ch, err := scatter.New(ds, cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("built scales", "x", ch.X.Domain, "y", ch.Y.Domain)
	return ch, nil
}

func (cmd *Render) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	logger := newLogger(cmd.LogLevel)

	format := cmd.Format
	if format == "" {
		if cmd.Output == "-" {
			logger.Error("must specify format when writing to stdout")
			return argp.ShowUsage
		}
		format = renderers.Format(cmd.Output)
	}
	if cmd.Output == "-" && renderers.IsBinary(format) && term.IsTerminal(int(os.Stdout.Fd())) {
		logger.Fatal("refusing to write binary output to a terminal", "format", format)
	}

	ch, err := loadChart(logger, cmd.Input, cmd.Config, cmd.Headroom)
	if err != nil {
		logger.Fatal("could not build chart", "err", err)
	}

	if cmd.Resolution <= 0.0 {
		cmd.Resolution = 1.0
	}
	opts := []interface{}{canvas.DPMM(cmd.Resolution), &web.Options{Title: web.DefaultOptions.Title, Minify: cmd.Minify}}
	if err := writeChart(cmd.Output, format, ch, opts); err != nil {
		logger.Fatal("could not write chart", "err", err)
	}
	logger.Info("wrote chart", "output", cmd.Output, "format", format, "marks", len(ch.Marks))
	return nil
}

// writeChart writes to stdout for "-", otherwise to the output file.
func writeChart(output, format string, ch *scatter.Chart, opts []interface{}) error {
	if output == "-" {
		return renderers.WriteTo(os.Stdout, format, ch, opts...)
	}
	return renderers.WriteFile(output, format, ch, opts...)
}
