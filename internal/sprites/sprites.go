// Package sprites loads the ASCII-art frames drawn by the animations.
// Art is loaded once at startup into an immutable Catalog that every task
// shares read-only.
package sprites

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

//go:embed assets
var assets embed.FS

// Kind names a group of frames.
type Kind string

// Frame kinds. Each kind is a directory of .txt files, read in lexical order.
const (
	KindShip      Kind = "ship"
	KindDebris    Kind = "debris"
	KindExplosion Kind = "explosion"
	KindBanner    Kind = "banner"
)

// Kinds lists every kind a catalog must provide.
var Kinds = []Kind{KindShip, KindDebris, KindExplosion, KindBanner}

// ErrNoFrames is returned when a kind has no usable frame files.
var ErrNoFrames = errors.New("sprites: no frames")

// Frame is one piece of multi-line art with its bounding box.
type Frame struct {
	Name   string
	Art    string
	Width  int // longest line, in runes
	Height int // number of lines
}

// Catalog holds every loaded frame keyed by kind.
type Catalog struct {
	frames map[Kind][]Frame
}

// Default loads the art embedded in the binary.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		return nil, fmt.Errorf("sprites: embedded assets: %w", err)
	}
	return Load(sub)
}

// LoadDir loads frames from a directory on disk laid out like the embedded
// assets: ship/, debris/, explosion/ and banner/.
func LoadDir(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("sprites: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("sprites: %s is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load reads every kind from fsys. A missing kind, an unreadable file or a
// file without any glyph is an error; the game must not start with partial art.
func Load(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{frames: make(map[Kind][]Frame, len(Kinds))}

	for _, kind := range Kinds {
		entries, err := fs.ReadDir(fsys, string(kind))
		if err != nil {
			return nil, fmt.Errorf("sprites: kind %s: %w", kind, err)
		}

		var names []string
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
				continue
			}
			names = append(names, e.Name())
		}
		sort.Strings(names)

		if len(names) == 0 {
			return nil, fmt.Errorf("kind %s: %w", kind, ErrNoFrames)
		}

		for _, name := range names {
			p := path.Join(string(kind), name)
			data, err := fs.ReadFile(fsys, p)
			if err != nil {
				return nil, fmt.Errorf("sprites: read %s: %w", p, err)
			}
			frame, err := Parse(strings.TrimSuffix(name, ".txt"), data)
			if err != nil {
				return nil, fmt.Errorf("sprites: %s: %w", p, err)
			}
			c.frames[kind] = append(c.frames[kind], frame)
		}
	}

	return c, nil
}

// Parse builds a Frame from raw file contents. Trailing blanks are trimmed
// from each line and trailing empty lines are dropped.
func Parse(name string, data []byte) (Frame, error) {
	if !utf8.Valid(data) {
		return Frame{}, errors.New("not valid UTF-8")
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return Frame{}, errors.New("empty frame")
	}

	width := 0
	for _, line := range lines {
		for _, r := range line {
			if unicode.IsControl(r) {
				return Frame{}, fmt.Errorf("control character %q in art", r)
			}
		}
		width = max(width, utf8.RuneCountInString(line))
	}

	return Frame{
		Name:   name,
		Art:    strings.Join(lines, "\n"),
		Width:  width,
		Height: len(lines),
	}, nil
}

// Frames returns the frames of a kind. The slice must not be modified.
func (c *Catalog) Frames(kind Kind) []Frame {
	return c.frames[kind]
}

// Ship returns the ship alternation sequence.
func (c *Catalog) Ship() []Frame {
	return c.frames[KindShip]
}

// Debris returns the debris variants.
func (c *Catalog) Debris() []Frame {
	return c.frames[KindDebris]
}

// Explosion returns the explosion sequence.
func (c *Catalog) Explosion() []Frame {
	return c.frames[KindExplosion]
}

// Banner returns the game-over banner.
func (c *Catalog) Banner() Frame {
	return c.frames[KindBanner][0]
}

// ShipSize returns the bounding box shared by all ship frames.
func (c *Catalog) ShipSize() (w, h int) {
	for _, f := range c.frames[KindShip] {
		w = max(w, f.Width)
		h = max(h, f.Height)
	}
	return w, h
}
