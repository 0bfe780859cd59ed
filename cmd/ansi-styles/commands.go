package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/cptaffe/ansi-styles/ansi"
	"github.com/cptaffe/ansi-styles/editor"
	"github.com/cptaffe/ansi-styles/internal/config"
	"github.com/cptaffe/ansi-styles/logger"
	"github.com/cptaffe/ansi-styles/markup"
	"github.com/cptaffe/ansi-styles/preview"
	"github.com/cptaffe/ansi-styles/span"
)

// loadMarkup reads, sanitises and parses a markup file.
func loadMarkup(stdio *IO, file string) (span.Document, error) {
	raw, err := readInput(stdio.In, file)
	if err != nil {
		return nil, err
	}
	return markup.Parse(markup.Sanitize(strings.TrimSuffix(raw, "\n")))
}

type RenderCmd struct {
	File string `arg:"" optional:"" help:"Markup file (default stdin)"`
	Copy bool   `help:"Also copy the block to the clipboard"`
	Body bool   `help:"Print the escape-coded body without the fence"`
}

func (c *RenderCmd) Run(ctx context.Context, stdio *IO) error {
	doc, err := loadMarkup(stdio, c.File)
	if err != nil {
		return err
	}
	if c.Copy {
		msg, err := editor.New(doc, editor.SystemClipboard{}).Export(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdio.Err, msg)
	}
	var out string
	if c.Body {
		out, err = ansi.Body(doc)
	} else {
		out, err = ansi.Serialize(doc)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(stdio.Out, out)
	return nil
}

type DecodeCmd struct {
	File string `arg:"" optional:"" help:"Fenced block or raw body (default stdin)"`
}

func (c *DecodeCmd) Run(ctx context.Context, stdio *IO) error {
	raw, err := readInput(stdio.In, c.File)
	if err != nil {
		return err
	}
	body, ok := ansi.Unwrap(raw)
	if !ok {
		body = strings.TrimSuffix(raw, "\n")
	}
	doc, err := ansi.Decode(body)
	if err != nil {
		return err
	}
	logger.L(ctx).Debug("decoded", zap.Bool("fenced", ok), zap.Int("len", doc.Len()))
	fmt.Fprintln(stdio.Out, markup.Format(doc))
	return nil
}

type EditCmd struct {
	Script string `arg:"" help:"YAML edit script" type:"existingfile"`
	ANSI   bool   `name:"ansi" help:"Print the fenced ansi block instead of markup"`
}

func (c *EditCmd) Run(ctx context.Context, stdio *IO) error {
	b, err := os.ReadFile(c.Script)
	if err != nil {
		return err
	}
	s, err := config.ParseScript(b)
	if err != nil {
		return fmt.Errorf("%s: %w", c.Script, err)
	}
	doc, err := s.Document()
	if err != nil {
		return fmt.Errorf("%s: %w", c.Script, err)
	}
	ed := editor.New(doc, editor.SystemClipboard{})
	if err := ed.Run(ctx, s.Ops); err != nil {
		return fmt.Errorf("%s: %w", c.Script, err)
	}
	if !c.ANSI {
		fmt.Fprintln(stdio.Out, markup.Format(ed.Document()))
		return nil
	}
	out, err := ansi.Serialize(ed.Document())
	if err != nil {
		return err
	}
	fmt.Fprintln(stdio.Out, out)
	return nil
}

type PreviewCmd struct {
	File string `arg:"" optional:"" help:"Markup file (default stdin)"`
}

func (c *PreviewCmd) Run(cfg config.Config, stdio *IO) error {
	doc, err := loadMarkup(stdio, c.File)
	if err != nil {
		return err
	}
	r := lipgloss.NewRenderer(stdio.Out)
	fmt.Fprintln(stdio.Out, preview.Terminal(r, doc, cfg.Palette))
	return nil
}

type SwatchesCmd struct{}

func (c *SwatchesCmd) Run(cfg config.Config, stdio *IO) error {
	r := lipgloss.NewRenderer(stdio.Out)
	fmt.Fprint(stdio.Out, preview.Swatches(r, cfg.Palette, cfg.Label))
	return nil
}
