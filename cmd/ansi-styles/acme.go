package main

import (
	"context"
	"fmt"

	"9fans.net/go/acme"
	"go.uber.org/zap"

	"github.com/cptaffe/ansi-styles/internal/config"
	"github.com/cptaffe/ansi-styles/layer"
	"github.com/cptaffe/ansi-styles/logger"
	"github.com/cptaffe/ansi-styles/markup"
	"github.com/cptaffe/ansi-styles/preview"
	"github.com/cptaffe/ansi-styles/span"
)

type AcmeCmd struct {
	File  string `arg:"" optional:"" help:"Markup file (default: the welcome text)"`
	Layer string `default:"ansi" help:"Compositor layer name"`
}

func (c *AcmeCmd) Run(ctx context.Context, cfg config.Config, stdio *IO) error {
	l := logger.L(ctx)

	doc := markup.Welcome()
	if c.File != "" {
		var err error
		if doc, err = loadMarkup(stdio, c.File); err != nil {
			return err
		}
	}

	w, err := acme.New()
	if err != nil {
		return fmt.Errorf("new window: %w", err)
	}
	defer w.CloseFiles()
	if err := w.Name("%s", windowName(c.File)); err != nil {
		return err
	}
	if err := show(w, doc); err != nil {
		return err
	}

	lay, err := layer.Open(w.ID(), c.Layer)
	if err != nil {
		return fmt.Errorf("open layer: %w", err)
	}
	defer lay.Close() //nolint:errcheck

	entries, runs := preview.Acme(doc, cfg.Palette)
	if err := lay.Show(entries, runs); err != nil {
		return fmt.Errorf("show layer: %w", err)
	}
	l.Info("showing",
		zap.Int("win", w.ID()),
		zap.Int("layer", lay.ID),
		zap.Int("palette", len(entries)),
		zap.Int("runs", len(runs)))

	events := w.EventChan()
	for {
		select {
		case <-ctx.Done():
			w.Ctl("delete") //nolint:errcheck
			return nil
		case e, ok := <-events:
			if !ok {
				l.Debug("window closed", zap.Int("win", w.ID()))
				return nil
			}
			w.WriteEvent(e) //nolint:errcheck
		}
	}
}

// windowName is the acme window name for a previewed file.
func windowName(file string) string {
	if file == "" {
		return "/ansi-styles/+preview"
	}
	return "/ansi-styles/" + file
}

func show(w *acme.Win, doc span.Document) error {
	if _, err := w.Write("body", []byte(doc.String())); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	return w.Ctl("clean")
}
