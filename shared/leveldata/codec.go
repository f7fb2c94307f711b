package leveldata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/tilerun/shared/tiles"
)

// Level code layout:
//
//	1_<width>_<height>_<runs>_
//
// Runs walk the grid in storage order (column outer, row inner). Each run is
// the decimal tile code, omitted for air, followed by a letter giving the run
// length: a-z = 1..26, A-Z = 27..52.
const (
	CodeVersion = 1
	MaxRun      = 52

	// MaxCells bounds the grid a level code may describe.
	MaxCells = 1 << 22

	runLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	sentinel   = '_'
)

// LevelFormatError reports malformed level text. Offset is the byte position
// where decoding stopped.
type LevelFormatError struct {
	Offset int
	Reason string
}

func (e *LevelFormatError) Error() string {
	return fmt.Sprintf("level code: offset %d: %s", e.Offset, e.Reason)
}

// RunLength maps a run letter to its length, 0 when the byte is not a letter.
func RunLength(c byte) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 27
	}
	return 0
}

// RunLetter maps a run length in [1, MaxRun] to its letter.
func RunLetter(n int) byte {
	return runLetters[n-1]
}

// Encode serializes a grid to level text.
func Encode(g *Grid) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d%c%d%c%d%c", CodeVersion, sentinel, g.Width, sentinel, g.Height, sentinel)

	writeRun := func(code tiles.Code, n int) {
		if code != tiles.Empty {
			sb.WriteString(strconv.Itoa(int(code)))
		}
		sb.WriteByte(RunLetter(n))
	}

	if len(g.Tiles) > 0 {
		cur, n := g.Tiles[0], 0
		for _, c := range g.Tiles {
			if c == cur && n < MaxRun {
				n++
				continue
			}
			writeRun(cur, n)
			cur, n = c, 1
		}
		writeRun(cur, n)
	}
	sb.WriteByte(sentinel)
	return sb.String()
}

type decoder struct {
	text string
	pos  int
}

func (d *decoder) fail(format string, args ...any) error {
	return &LevelFormatError{Offset: d.pos, Reason: fmt.Sprintf(format, args...)}
}

func (d *decoder) digits() string {
	start := d.pos
	for d.pos < len(d.text) && d.text[d.pos] >= '0' && d.text[d.pos] <= '9' {
		d.pos++
	}
	return d.text[start:d.pos]
}

// headerField reads a decimal field followed by any single non-digit delimiter.
func (d *decoder) headerField(name string) (int, error) {
	s := d.digits()
	if s == "" {
		return 0, d.fail("%s is not a number", name)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, d.fail("%s %q out of range", name, s)
	}
	if d.pos >= len(d.text) {
		return 0, d.fail("missing delimiter after %s", name)
	}
	d.pos++
	return n, nil
}

// Decode parses level text. On any error it returns a *LevelFormatError and
// no grid.
func Decode(text string) (*Grid, error) {
	d := &decoder{text: text}

	version, err := d.headerField("version")
	if err != nil {
		return nil, err
	}
	if version != CodeVersion {
		return nil, &LevelFormatError{Offset: 0, Reason: fmt.Sprintf("unsupported version %d", version)}
	}
	width, err := d.headerField("width")
	if err != nil {
		return nil, err
	}
	height, err := d.headerField("height")
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, d.fail("grid size %dx%d must be positive", width, height)
	}
	if width > MaxCells/height {
		return nil, d.fail("grid size %dx%d exceeds %d cells", width, height, MaxCells)
	}

	g := &Grid{Width: width, Height: height, Tiles: make([]tiles.Code, width*height)}
	filled := 0
	for {
		if d.pos >= len(d.text) {
			return nil, d.fail("missing closing %q", sentinel)
		}
		runStart := d.pos
		value := d.digits()
		if d.pos >= len(d.text) {
			return nil, d.fail("run %q has no length letter", value)
		}
		c := d.text[d.pos]
		if c == sentinel && value == "" {
			d.pos++
			break
		}
		n := RunLength(c)
		if n == 0 {
			if c == sentinel {
				return nil, d.fail("run %q has no length letter", value)
			}
			return nil, d.fail("unknown run letter %q", c)
		}
		code := tiles.Empty
		if value != "" {
			v, err := strconv.Atoi(value)
			if err != nil {
				return nil, &LevelFormatError{Offset: runStart, Reason: fmt.Sprintf("tile code %q out of range", value)}
			}
			code = tiles.Code(v)
		}
		if filled+n > len(g.Tiles) {
			return nil, d.fail("runs overflow %d cells", len(g.Tiles))
		}
		for i := 0; i < n; i++ {
			g.Tiles[filled+i] = code
		}
		filled += n
		d.pos++
	}

	if filled != len(g.Tiles) {
		return nil, d.fail("runs cover %d of %d cells", filled, len(g.Tiles))
	}
	if d.pos != len(d.text) {
		return nil, d.fail("%d bytes of trailing data", len(d.text)-d.pos)
	}
	return g, nil
}
