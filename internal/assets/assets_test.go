package assets

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/egg-flight/internal/config"
	"github.com/vovakirdan/egg-flight/internal/flight"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func completeFS(t *testing.T) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		FontFile:   {Data: goregular.TTF},
		SunFile:    {Data: encodePNG(t, 320, 240)},
		FloorFile:  {Data: encodePNG(t, 1600, 90)},
		PipeFile:   {Data: encodePNG(t, 75, 100)},
		FrameFile:  {Data: encodePNG(t, 800, 150)},
		SpriteFile: {Data: encodePNG(t, 120, 120)},
	}
}

func TestBuiltinCatalog(t *testing.T) {
	c := Builtin()

	tests := []struct {
		id   flight.ImageID
		w, h int
	}{
		{flight.ImagePipe, 75, 100},
		{flight.ImageFloor, 1600, 100},
		{flight.ImageCharacter, 120, 120},
	}
	for _, tt := range tests {
		if w, h := c.Size(tt.id); w != tt.w || h != tt.h {
			t.Errorf("Size(%v) = %dx%d, expected %dx%d", tt.id, w, h, tt.w, tt.h)
		}
	}

	if _, ok := c.Image(flight.ImageText); ok {
		t.Error("text should not have an image")
	}
	if c.Font.Name != FontFile || c.Font.Size != FontSize {
		t.Errorf("Font = %+v", c.Font)
	}
}

func TestLoadEmptyDirUsesBuiltin(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if c.Dir != "" {
		t.Errorf("Dir = %q, expected the built-in catalog", c.Dir)
	}
}

func TestLoadFSReadsSizes(t *testing.T) {
	c, err := LoadFS(completeFS(t))
	if err != nil {
		t.Fatalf("LoadFS() error: %v", err)
	}

	if w, h := c.Size(flight.ImageFloor); w != 1600 || h != 90 {
		t.Errorf("floor size = %dx%d, expected 1600x90", w, h)
	}
	if img, _ := c.Image(flight.ImageSun); img.Name != SunFile || img.Width != 320 {
		t.Errorf("sun = %+v", img)
	}
}

func TestLoadFSReportsEveryFailure(t *testing.T) {
	fsys := completeFS(t)
	delete(fsys, PipeFile)
	fsys[FontFile] = &fstest.MapFile{}
	fsys[SpriteFile] = &fstest.MapFile{Data: []byte("GIF89a not a png")}

	_, err := LoadFS(fsys)
	if err == nil {
		t.Fatal("LoadFS() should fail")
	}
	if !errors.Is(err, ErrResourceLoad) {
		t.Errorf("error should match ErrResourceLoad: %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing pipe should surface fs.ErrNotExist: %v", err)
	}

	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("error should contain a *LoadError: %v", err)
	}

	for _, name := range []string{PipeFile, FontFile, SpriteFile} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error should name %s: %v", name, err)
		}
	}
	for _, name := range []string{SunFile, FloorFile, FrameFile} {
		if strings.Contains(err.Error(), name) {
			t.Errorf("error should not name %s: %v", name, err)
		}
	}
}

func TestCheckFont(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{"truetype", goregular.TTF, false},
		{"empty", nil, true},
		{"valid tag then garbage", []byte("true this is not a font at all"), true},
		{"truetype tag only", []byte{0x00, 0x01, 0x00, 0x00}, true},
		{"truncated", goregular.TTF[:len(goregular.TTF)/3], true},
		{"not a font", []byte("hello world"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{FontFile: {Data: tt.data}}
			glyphs, err := checkFont(fsys, FontFile)
			if (err != nil) != tt.wantErr {
				t.Fatalf("checkFont() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && glyphs == 0 {
				t.Error("a parsed font should report its glyphs")
			}
		})
	}
}

func TestLoadFSRejectsCorruptFont(t *testing.T) {
	fsys := completeFS(t)
	fsys[FontFile] = &fstest.MapFile{Data: []byte("true this is not a font at all")}

	_, err := LoadFS(fsys)
	var le *LoadError
	if !errors.As(err, &le) || le.Name != FontFile {
		t.Fatalf("LoadFS() error = %v, expected a *LoadError for %s", err, FontFile)
	}
	if !errors.Is(err, ErrResourceLoad) {
		t.Errorf("error should match ErrResourceLoad: %v", err)
	}
}

func TestFitConfigUsesFloorImage(t *testing.T) {
	cfg := config.DefaultGameConfig()

	// Built-in sizes leave the configuration alone
	got, err := Builtin().FitConfig(cfg)
	if err != nil || got != cfg {
		t.Fatalf("Builtin().FitConfig() = %+v, %v", got.Field, err)
	}

	c, err := LoadFS(completeFS(t))
	if err != nil {
		t.Fatal(err)
	}
	got, err = c.FitConfig(cfg)
	if err != nil {
		t.Fatalf("FitConfig() error: %v", err)
	}
	if got.Field.FloorHeight != 90 {
		t.Errorf("FloorHeight = %d, expected the image height 90", got.Field.FloorHeight)
	}
	if got.GroundLine() != 750 {
		t.Errorf("GroundLine() = %d, expected 750", got.GroundLine())
	}
}

func TestFitConfigRejectsOversizedFloor(t *testing.T) {
	fsys := completeFS(t)
	fsys[FloorFile] = &fstest.MapFile{Data: encodePNG(t, 1600, 900)}

	c, err := LoadFS(fsys)
	if err != nil {
		t.Fatal(err)
	}
	_, err = c.FitConfig(config.DefaultGameConfig())
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("FitConfig() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	for name, f := range completeFS(t) {
		if err := os.WriteFile(filepath.Join(dir, name), f.Data, 0o600); err != nil {
			t.Fatal(err)
		}
	}

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Dir != dir {
		t.Errorf("Dir = %q, expected %q", c.Dir, dir)
	}
	if w, _ := c.Size(flight.ImagePipe); w != 75 {
		t.Errorf("pipe width = %d, expected 75", w)
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrResourceLoad) {
		t.Errorf("Load() error = %v, expected ErrResourceLoad", err)
	}
}
