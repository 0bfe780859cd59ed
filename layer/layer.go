// Package layer shows styled documents in acme through the acme-styles
// compositor.
//
// The compositor is a 9P service keeping named layers of style runs per
// acme window.  A layer written here carries its own palette entries, one
// per distinct style triple, so no master palette entry is needed:
//
//	l, err := layer.Open(win.ID(), "ansi")
//	if err != nil { ... }
//	defer l.Close()
//	l.Show(entries, runs)
package layer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"9fans.net/go/plan9"
	"9fans.net/go/plan9/client"

	"github.com/cptaffe/ansi-styles/style"
)

// Service is the name acme-styles posts in the namespace.
const Service = "acme-styles"

// Layer is one named layer on one acme window.  All layers in the process
// share a 9P connection, redialled after any error.
type Layer struct {
	Win  int
	ID   int
	Name string
}

var (
	connMu sync.Mutex
	conn   *client.Fsys
)

func dial() (*client.Fsys, error) {
	connMu.Lock()
	defer connMu.Unlock()
	if conn == nil {
		fs, err := client.MountService(Service)
		if err != nil {
			return nil, fmt.Errorf("mount %s: %w", Service, err)
		}
		conn = fs
	}
	return conn, nil
}

func hangup() {
	connMu.Lock()
	conn = nil
	connMu.Unlock()
}

// Open finds the layer called name on window win, allocating it if the
// compositor has none.
func Open(win int, name string) (*Layer, error) {
	fs, err := dial()
	if err != nil {
		return nil, err
	}
	id, err := allocate(fs, win, name)
	if err != nil {
		hangup()
		return nil, err
	}
	return &Layer{Win: win, ID: id, Name: name}, nil
}

func (l *Layer) path(file string) string {
	return fmt.Sprintf("%d/layers/%d/%s", l.Win, l.ID, file)
}

// Show replaces the layer's contents with palette and runs.  An empty run
// list clears the layer.
func (l *Layer) Show(palette []style.PaletteEntry, runs []style.StyleRun) error {
	if len(runs) == 0 {
		return l.Clear()
	}
	return l.write(style.Format(palette, runs))
}

// write replaces the layer's runs with text.  The compositor flushes
// to acme when the fid is clunked.  If the layer has vanished because the
// compositor restarted, it is allocated again once.
func (l *Layer) write(text string) error {
	fs, err := dial()
	if err != nil {
		return err
	}
	fid, err := fs.Open(l.path("style"), plan9.OWRITE)
	if err != nil {
		hangup()
		if fs, err = dial(); err != nil {
			return err
		}
		if l.ID, err = allocate(fs, l.Win, l.Name); err != nil {
			hangup()
			return fmt.Errorf("reallocate layer %s: %w", l.Name, err)
		}
		if fid, err = fs.Open(l.path("style"), plan9.OWRITE); err != nil {
			hangup()
			return err
		}
	}
	defer fid.Close()
	if _, err := fid.Write([]byte(text)); err != nil {
		hangup()
		return err
	}
	return nil
}

// Clear removes every run from the layer.
func (l *Layer) Clear() error {
	return l.ctl("clear")
}

// Close removes the layer from the compositor so its styles do not outlive
// the process.
func (l *Layer) Close() error {
	return l.ctl("delete")
}

func (l *Layer) ctl(cmd string) error {
	fs, err := dial()
	if err != nil {
		return err
	}
	fid, err := fs.Open(l.path("ctl"), plan9.OWRITE)
	if err != nil {
		hangup()
		return err
	}
	defer fid.Close()
	if _, err := fid.Write([]byte(cmd + "\n")); err != nil {
		hangup()
		return fmt.Errorf("ctl %s: %w", cmd, err)
	}
	return nil
}

// allocate returns the ID of the named layer, creating it if needed.
func allocate(fs *client.Fsys, win int, name string) (int, error) {
	if idx, err := readFile(fs, fmt.Sprintf("%d/layers/index", win)); err == nil {
		if id, ok := findLayer(idx, name); ok {
			return id, nil
		}
	}
	data, err := readFile(fs, fmt.Sprintf("%d/layers/new", win))
	if err != nil {
		return 0, fmt.Errorf("new layer: %w", err)
	}
	id, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("parse layer id %q: %w", data, err)
	}
	fid, err := fs.Open(fmt.Sprintf("%d/layers/%d/name", win, id), plan9.OWRITE)
	if err != nil {
		return 0, fmt.Errorf("name layer %d: %w", id, err)
	}
	defer fid.Close()
	if _, err := fid.Write([]byte(name)); err != nil {
		return 0, fmt.Errorf("name layer %d: %w", id, err)
	}
	return id, nil
}

func readFile(fs *client.Fsys, name string) ([]byte, error) {
	fid, err := fs.Open(name, plan9.OREAD)
	if err != nil {
		return nil, err
	}
	defer fid.Close()
	return io.ReadAll(fid)
}

// findLayer scans a layers/index listing ("id name" per line) for name.
func findLayer(index []byte, name string) (int, bool) {
	for _, line := range strings.Split(string(index), "\n") {
		f := strings.Fields(line)
		if len(f) != 2 || f[1] != name {
			continue
		}
		if id, err := strconv.Atoi(f[0]); err == nil {
			return id, true
		}
	}
	return 0, false
}
