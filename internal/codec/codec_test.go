package codec

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"celleste/internal/core"
	pkgcore "celleste/pkg/core"
)

func randomGrid(t *testing.T, w, h int, edge core.EdgePolicy, seed int64) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(w, h, edge)
	if err != nil {
		t.Fatalf("new grid: %v", err)
	}
	g.Randomize(pkgcore.NewRNG(seed).Source())
	return g
}

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		w, h int
		edge core.EdgePolicy
	}{
		{1, 1, core.EdgeClamp},
		{8, 8, core.EdgeWrap},
		{7, 3, core.EdgeClamp},
		{33, 17, core.EdgeWrap},
	}
	for _, c := range cases {
		g := randomGrid(t, c.w, c.h, c.edge, int64(c.w*100+c.h))
		got, err := Decode(Encode(g))
		if err != nil {
			t.Fatalf("decode %dx%d: %v", c.w, c.h, err)
		}
		if !got.Equal(g) {
			t.Fatalf("round trip changed %dx%d %v grid", c.w, c.h, c.edge)
		}
	}
}

func TestDecodeTruncatedCells(t *testing.T) {
	g := randomGrid(t, 16, 16, core.EdgeWrap, 1)
	data := Encode(g)
	_, err := Decode(data[:len(data)-1])
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("want ErrMalformed, got %v", err)
	}
}

func TestDecodeTrailingGarbage(t *testing.T) {
	g := randomGrid(t, 4, 4, core.EdgeClamp, 2)
	data := append(Encode(g), 0xff)
	if _, err := Decode(data); !errors.Is(err, ErrMalformed) {
		t.Fatalf("want ErrMalformed, got %v", err)
	}
}

func TestDecodeBadHeader(t *testing.T) {
	g := randomGrid(t, 4, 4, core.EdgeClamp, 3)

	badMagic := Encode(g)
	badMagic[0] = 'X'
	if _, err := Decode(badMagic); !errors.Is(err, ErrMalformed) {
		t.Fatalf("bad magic: want ErrMalformed, got %v", err)
	}

	badEdge := Encode(g)
	badEdge[5] = 9
	if _, err := Decode(badEdge); !errors.Is(err, ErrMalformed) {
		t.Fatalf("bad edge byte: want ErrMalformed, got %v", err)
	}

	if _, err := Decode(nil); !errors.Is(err, ErrMalformed) {
		t.Fatalf("empty payload: want ErrMalformed, got %v", err)
	}
}

func TestDecodeUnknownVersion(t *testing.T) {
	g := randomGrid(t, 4, 4, core.EdgeClamp, 4)
	data := Encode(g)
	data[4] = 42
	_, err := Decode(data)
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("want ErrUnsupportedVersion, got %v", err)
	}
	if errors.Is(err, ErrMalformed) {
		t.Fatalf("version error should not read as malformed: %v", err)
	}
}

func TestFileRoundTrip(t *testing.T) {
	g := randomGrid(t, 20, 10, core.EdgeWrap, 5)
	path := filepath.Join(t.TempDir(), "state.clst")
	if err := SaveFile(path, g); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.Equal(g) {
		t.Fatalf("file round trip changed grid")
	}
}

func TestLoadMissingFileIsIOError(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.clst"))
	if err == nil {
		t.Fatalf("load of missing file succeeded")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("want fs.ErrNotExist, got %v", err)
	}
	if errors.Is(err, ErrMalformed) {
		t.Fatalf("storage failure should not read as malformed: %v", err)
	}
}

func TestLoadCorruptFileIsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.clst")
	if err := os.WriteFile(path, []byte("not a save"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(path); !errors.Is(err, ErrMalformed) {
		t.Fatalf("want ErrMalformed, got %v", err)
	}
}
