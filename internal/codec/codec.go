// Package codec persists grid state in a small versioned binary layout:
//
//	magic "CLST" | version byte | edge policy byte | width u32 LE |
//	height u32 LE | cells bit-packed row-major, LSB first
//
// The cell section holds exactly ceil(width*height/8) bytes; any length
// mismatch is rejected as malformed rather than parsed best-effort.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"celleste/internal/core"
)

const (
	version    = 1
	headerSize = 14
)

var magic = [4]byte{'C', 'L', 'S', 'T'}

// ErrMalformed reports a save payload whose header or cell section does
// not match the declared layout.
var ErrMalformed = errors.New("codec: malformed save data")

// ErrUnsupportedVersion reports a save with a valid magic but a format
// version this build does not understand.
var ErrUnsupportedVersion = errors.New("codec: unsupported save version")

// Encode serializes the grid. Decode(Encode(g)) reproduces g exactly.
func Encode(g *core.Grid) []byte {
	w, h := g.Width(), g.Height()
	cells := g.Cells()
	buf := make([]byte, headerSize+(len(cells)+7)/8)
	copy(buf, magic[:])
	buf[4] = version
	buf[5] = byte(g.Edge())
	binary.LittleEndian.PutUint32(buf[6:], uint32(w))
	binary.LittleEndian.PutUint32(buf[10:], uint32(h))
	for i, c := range cells {
		if c != 0 {
			buf[headerSize+i/8] |= 1 << (i % 8)
		}
	}
	return buf
}

// Decode parses a payload produced by Encode.
func Decode(data []byte) (*core.Grid, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes, want at least %d", ErrMalformed, len(data), headerSize)
	}
	if [4]byte(data[:4]) != magic {
		return nil, fmt.Errorf("%w: bad magic", ErrMalformed)
	}
	if data[4] != version {
		return nil, fmt.Errorf("%w: version %d", ErrUnsupportedVersion, data[4])
	}
	edge := core.EdgePolicy(data[5])
	if edge != core.EdgeClamp && edge != core.EdgeWrap {
		return nil, fmt.Errorf("%w: edge policy byte %d", ErrMalformed, data[5])
	}
	w := int(binary.LittleEndian.Uint32(data[6:]))
	h := int(binary.LittleEndian.Uint32(data[10:]))
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrMalformed, w, h)
	}
	total := uint64(w) * uint64(h)
	want := headerSize + (total+7)/8
	if uint64(len(data)) != want {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d, want %d", ErrMalformed, len(data), w, h, want)
	}
	g, err := core.NewGrid(w, h, edge)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	cells := g.Cells()
	packed := data[headerSize:]
	for i := range cells {
		cells[i] = (packed[i/8] >> (i % 8)) & 1
	}
	return g, nil
}

// SaveFile writes the grid to path, replacing any existing file.
func SaveFile(path string, g *core.Grid) error {
	if err := os.WriteFile(path, Encode(g), 0o644); err != nil {
		return fmt.Errorf("codec: save %s: %w", path, err)
	}
	return nil
}

// LoadFile reads a grid from path. Storage failures (missing file,
// permissions) wrap the fs error and are distinguishable from
// ErrMalformed via errors.Is.
func LoadFile(path string) (*core.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("codec: load %s: %w", path, err)
	}
	g, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return g, nil
}
