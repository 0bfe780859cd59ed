// Package config reads the palette override file and YAML edit scripts.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"go.uber.org/multierr"

	"github.com/cptaffe/ansi-styles/style"
)

// Config holds all values parsed from the colours file.
type Config struct {
	// Palette overrides the preview colour of individual codes.
	Palette style.Palette

	// Labels overrides the tooltip label of individual codes.
	Labels map[style.Code]string
}

// Default returns a Config carrying the built-in colours and no label
// overrides.
func Default() Config {
	return Config{Palette: style.DefaultPalette(), Labels: map[style.Code]string{}}
}

// Label returns the label shown for c.
func (c Config) Label(code style.Code) string {
	if l, ok := c.Labels[code]; ok {
		return l
	}
	info, _ := style.Lookup(code)
	return info.Label
}

// Load reads and parses the colours file at path.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Default(), err
	}
	return ParseConfig(string(b))
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ParseConfig parses a colours file:
//
//	# comment
//	:31 fg=#ff5555 label=Crimson
//	:ansi-45 bg=#7289da
//
// Every bad line is reported; the good ones still apply.
func ParseConfig(content string) (Config, error) {
	cfg := Default()
	var err error
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.HasPrefix(line, ":") {
			err = multierr.Append(err, fmt.Errorf("line %d: expected ':code'", i+1))
			continue
		}
		if lerr := cfg.parsePaletteLine(line[1:]); lerr != nil {
			err = multierr.Append(err, fmt.Errorf("line %d: %w", i+1, lerr))
		}
	}
	return cfg, err
}

// parsePaletteLine parses "code [key=value ...]" (after the leading ':' is
// stripped).  A label value runs to the end of the line.
func (cfg *Config) parsePaletteLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return fmt.Errorf("missing code")
	}
	code, err := style.ParseCode(fields[0])
	if err != nil {
		return err
	}
	ch, _ := code.Channel()
	for j, tok := range fields[1:] {
		switch {
		case strings.HasPrefix(tok, "label="):
			cfg.Labels[code] = strings.Join(append([]string{tok[6:]}, fields[j+2:]...), " ")
			return nil
		case strings.HasPrefix(tok, "fg="), strings.HasPrefix(tok, "bg="):
			if ch == style.Emphasis {
				return fmt.Errorf("%d is an emphasis code and has no colour", code)
			}
			col := tok[3:]
			if !hexColor.MatchString(col) {
				return fmt.Errorf("bad colour %q", col)
			}
			cfg.Palette[code] = strings.ToLower(col)
		default:
			return fmt.Errorf("unknown property %q", tok)
		}
	}
	return nil
}
