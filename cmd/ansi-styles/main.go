// Command ansi-styles converts between the editor's span markup and the
// escape-coded text Discord renders inside ```ansi code blocks.
//
// Usage:
//
//	ansi-styles render [--copy] [--body] [file]
//	ansi-styles decode [file]
//	ansi-styles edit [--ansi] script.yaml
//	ansi-styles preview [file]
//	ansi-styles swatches
//	ansi-styles acme [file]
package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/cptaffe/ansi-styles/internal/config"
	"github.com/cptaffe/ansi-styles/logger"
)

// CLI defines the command-line interface.
type CLI struct {
	Verbose bool   `short:"v" help:"Verbose logging"`
	Colors  string `help:"Colour override file (:code fg=#rrggbb label=...)" type:"existingfile"`

	Render   RenderCmd   `cmd:"" help:"Convert markup to a fenced ansi block"`
	Decode   DecodeCmd   `cmd:"" help:"Convert an ansi block back to markup"`
	Edit     EditCmd     `cmd:"" help:"Run a YAML edit script"`
	Preview  PreviewCmd  `cmd:"" help:"Show markup coloured in the terminal"`
	Swatches SwatchesCmd `cmd:"" help:"List style codes and their colours"`
	Acme     AcmeCmd     `cmd:"" help:"Show markup in a new acme window"`
}

// IO is the standard streams commands read and write.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("ansi-styles"),
		kong.Description("Discord coloured text generator"),
		kong.UsageOnError(),
	)

	var err error
	var l *zap.Logger
	if cli.Verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	zap.ReplaceGlobals(l)
	defer l.Sync() //nolint:errcheck

	cfg := config.Default()
	if cli.Colors != "" {
		var cerr error
		cfg, cerr = config.Load(cli.Colors)
		for _, e := range multierr.Errors(cerr) {
			l.Warn("colours", zap.String("path", cli.Colors), zap.Error(e))
		}
		l.Debug("loaded colours",
			zap.Int("palette", len(cfg.Palette)),
			zap.Int("labels", len(cfg.Labels)),
			zap.String("path", cli.Colors))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.NewContext(ctx, l)

	kctx.BindTo(ctx, (*context.Context)(nil))
	kctx.Bind(cfg, &IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
	kctx.FatalIfErrorf(kctx.Run())
}

// readInput returns the contents of file, or of in when file is "" or "-".
func readInput(in io.Reader, file string) (string, error) {
	if file == "" || file == "-" {
		b, err := io.ReadAll(in)
		return string(b), err
	}
	b, err := os.ReadFile(file)
	return string(b), err
}
