// Package editor holds a document being edited and applies user actions to
// it.  A rejected action is logged and leaves the document as it was.
package editor

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/cptaffe/ansi-styles/ansi"
	"github.com/cptaffe/ansi-styles/internal/config"
	"github.com/cptaffe/ansi-styles/logger"
	"github.com/cptaffe/ansi-styles/markup"
	"github.com/cptaffe/ansi-styles/span"
	"github.com/cptaffe/ansi-styles/style"
)

// Clipboard receives exported text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the host clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// IdleMessage is the copy button label between copies.
const IdleMessage = "Copy text as Discord formatted"

var copyMessages = []string{
	"Copied!",
	"Double Copy!",
	"Triple Copy!",
	"Dominating!!",
	"Rampage!!",
	"Mega Copy!!",
	"Unstoppable!!",
	"Wicked Sick!!",
	"Monster Copy!!!",
	"GODLIKE!!!",
	"BEYOND GODLIKE!!!!",
}

// maxCopies caps the copy streak; the copy after it starts a new streak.
const maxCopies = 10

type Editor struct {
	doc    span.Document
	clip   Clipboard
	copies int
}

// New returns an editor on doc exporting to clip.
func New(doc span.Document, clip Clipboard) *Editor {
	return &Editor{doc: span.Normalize(doc), clip: clip}
}

// Document returns the current document.
func (e *Editor) Document() span.Document { return e.doc }

func (e *Editor) update(ctx context.Context, op string, d span.Document, err error) error {
	l := logger.L(ctx)
	if err != nil {
		l.Warn("edit rejected", zap.String("op", op), zap.Error(err))
		return err
	}
	e.doc = d
	l.Debug("edit applied", zap.String("op", op), zap.Int("len", d.Len()))
	return nil
}

// Apply sets ch to code over sel.
func (e *Editor) Apply(ctx context.Context, sel span.Selection, ch style.Channel, code style.Code) error {
	d, err := span.Apply(e.doc, sel, ch, code)
	return e.update(ctx, "apply", d, err)
}

// ResetChannel removes every declaration of ch over sel.
func (e *Editor) ResetChannel(ctx context.Context, sel span.Selection, ch style.Channel) error {
	d, err := span.ResetChannel(e.doc, sel, ch)
	return e.update(ctx, "reset "+ch.String(), d, err)
}

// ResetAll removes every declaration over sel.
func (e *Editor) ResetAll(ctx context.Context, sel span.Selection) error {
	d, err := span.ResetAll(e.doc, sel)
	return e.update(ctx, "reset all", d, err)
}

// Type inserts text at position at.  Enter arrives as "\n" and becomes a
// line break.
func (e *Editor) Type(ctx context.Context, at int, text string) error {
	d, err := span.InsertText(e.doc, at, text)
	return e.update(ctx, "type", d, err)
}

// Paste sanitises raw clipboard markup and inserts it at position at.
func (e *Editor) Paste(ctx context.Context, at int, raw string) error {
	frag, err := markup.Parse(markup.Sanitize(raw))
	if err != nil {
		return e.update(ctx, "paste", nil, err)
	}
	d, err := span.Insert(e.doc, at, frag)
	return e.update(ctx, "paste", d, err)
}

// Delete removes the positions in sel.
func (e *Editor) Delete(ctx context.Context, sel span.Selection) error {
	d, err := span.Delete(e.doc, sel)
	return e.update(ctx, "delete", d, err)
}

// Export serialises the document, writes it to the clipboard in one piece
// and returns the copy button's message for this copy.
func (e *Editor) Export(ctx context.Context) (string, error) {
	l := logger.L(ctx)
	text, err := ansi.Serialize(e.doc)
	if err != nil {
		l.Error("serialize failed", zap.Error(err))
		return IdleMessage, err
	}
	if err := e.clip.WriteAll(text); err != nil {
		l.Error("clipboard write failed", zap.Error(err))
		return IdleMessage, fmt.Errorf("copy: %w", err)
	}
	msg := copyMessages[min(e.copies, len(copyMessages)-1)]
	if e.copies >= maxCopies {
		e.copies = 0
	} else {
		e.copies++
	}
	l.Info("exported", zap.Int("bytes", len(text)), zap.String("message", msg))
	return msg, nil
}

// Run applies script ops in order, stopping at the first rejected one.
// Earlier ops stay applied.
func (e *Editor) Run(ctx context.Context, ops []config.Op) error {
	for i, op := range ops {
		ctx := logger.NewContext(ctx, logger.L(ctx).With(zap.Int("op", i)))
		var err error
		switch {
		case op.Style != "":
			var code style.Code
			if code, err = op.Code(); err == nil {
				var ch style.Channel
				if ch, err = code.Channel(); err == nil {
					err = e.Apply(ctx, op.Selection(e.doc), ch, code)
				}
			}
		case op.ResetsAll():
			err = e.ResetAll(ctx, op.Selection(e.doc))
		case op.Reset != "":
			var ch style.Channel
			if ch, err = style.ParseChannel(op.Reset); err == nil {
				err = e.ResetChannel(ctx, op.Selection(e.doc), ch)
			}
		case op.Insert != "":
			err = e.Type(ctx, op.Position(e.doc), op.Insert)
		case op.Paste != "":
			err = e.Paste(ctx, op.Position(e.doc), op.Paste)
		case op.Delete:
			err = e.Delete(ctx, op.Selection(e.doc))
		}
		if err != nil {
			return fmt.Errorf("op %d: %w", i, err)
		}
	}
	return nil
}
