// Package assets describes the images and font the game draws with.
//
// The terminal presenter only needs image sizes, so a built-in catalog of
// nominal sizes is used unless an asset directory is configured. When one is,
// every file is checked up front and all failures are reported together.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // PNG decoder for image.DecodeConfig
	"io/fs"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/egg-flight/internal/config"
	"github.com/vovakirdan/egg-flight/internal/flight"
)

// File names expected in an asset directory.
const (
	FontFile   = "University.ttf"
	SunFile    = "sun.png"
	FloorFile  = "floor.png"
	PipeFile   = "pipe.png"
	FrameFile  = "frame.png"
	SpriteFile = "spritedPlayer.png"
)

// FontSize is the point size text is rendered at.
const FontSize = 20

const fontDPI = 72

// ErrResourceLoad is matched by every asset loading failure.
var ErrResourceLoad = errors.New("resource load failure")

// LoadError reports a single file that could not be used.
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

// Unwrap exposes both ErrResourceLoad and the underlying cause.
func (e *LoadError) Unwrap() []error {
	return []error{ErrResourceLoad, e.Err}
}

// Image is an image's file name and pixel size.
type Image struct {
	Name          string
	Width, Height int
}

// Font is the text font. It is parsed to make sure it is usable; the terminal
// still draws text with its own font.
type Font struct {
	Name   string
	Size   int // Point size
	Glyphs int // Zero for the built-in catalog
}

// manifest lists every image the game draws, with its nominal size.
var manifest = []struct {
	id  flight.ImageID
	img Image
}{
	{flight.ImageSun, Image{Name: SunFile, Width: 1600, Height: 800}},
	{flight.ImageFloor, Image{Name: FloorFile, Width: 1600, Height: 100}},
	{flight.ImagePipe, Image{Name: PipeFile, Width: 75, Height: 100}},
	{flight.ImageOverlay, Image{Name: FrameFile, Width: 1400, Height: 200}},
	{flight.ImageCharacter, Image{Name: SpriteFile, Width: 120, Height: 120}},
}

// Catalog maps image IDs to their sizes.
type Catalog struct {
	Dir    string // Empty for the built-in catalog
	Font   Font
	images map[flight.ImageID]Image
	loaded bool // Sizes come from real files
}

// Builtin returns the catalog of nominal sizes, without touching the disk.
func Builtin() *Catalog {
	c := &Catalog{
		Font:   Font{Name: FontFile, Size: FontSize},
		images: make(map[flight.ImageID]Image, len(manifest)),
	}
	for _, m := range manifest {
		c.images[m.id] = m.img
	}
	return c
}

// Load checks the asset files in dir and returns a catalog with their actual
// sizes. An empty dir returns the built-in catalog.
func Load(dir string) (*Catalog, error) {
	if dir == "" {
		return Builtin(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", &LoadError{Name: dir, Err: err})
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets: %w", &LoadError{Name: dir, Err: errors.New("not a directory")})
	}

	c, err := LoadFS(os.DirFS(dir))
	if err != nil {
		return nil, err
	}
	c.Dir = dir
	return c, nil
}

// LoadFS is Load over an arbitrary file system.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{
		Font:   Font{Name: FontFile, Size: FontSize},
		images: make(map[flight.ImageID]Image, len(manifest)),
		loaded: true,
	}

	var errs []error
	glyphs, err := checkFont(fsys, FontFile)
	if err != nil {
		errs = append(errs, &LoadError{Name: FontFile, Err: err})
	}
	c.Font.Glyphs = glyphs
	for _, m := range manifest {
		w, h, err := pngSize(fsys, m.img.Name)
		if err != nil {
			errs = append(errs, &LoadError{Name: m.img.Name, Err: err})
			continue
		}
		c.images[m.id] = Image{Name: m.img.Name, Width: w, Height: h}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("assets: %w", errors.Join(errs...))
	}
	return c, nil
}

// Image returns the entry for id. Text has no image and reports false.
func (c *Catalog) Image(id flight.ImageID) (Image, bool) {
	img, ok := c.images[id]
	return img, ok
}

// Size returns the pixel size of id, or zero for unknown images.
func (c *Catalog) Size(id flight.ImageID) (w, h int) {
	img := c.images[id]
	return img.Width, img.Height
}

// FitConfig returns cfg with the floor height taken from the loaded floor
// image, so the drawn floor and the ground the character lands on agree.
// The built-in catalog leaves cfg unchanged.
func (c *Catalog) FitConfig(cfg config.GameConfig) (config.GameConfig, error) {
	if !c.loaded {
		return cfg, nil
	}
	_, h := c.Size(flight.ImageFloor)
	cfg.Field.FloorHeight = h
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("assets: %s does not fit the play field: %w", FloorFile, err)
	}
	return cfg, nil
}

func pngSize(fsys fs.FS, name string) (w, h int, err error) {
	f, err := fsys.Open(name)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	if format != "png" {
		return 0, 0, fmt.Errorf("expected png, got %s", format)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return 0, 0, errors.New("empty image")
	}
	return cfg.Width, cfg.Height, nil
}

// checkFont parses the font and builds a face at FontSize, returning the
// number of glyphs it holds.
func checkFont(fsys fs.FS, name string) (glyphs int, err error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return 0, err
	}
	if len(data) == 0 {
		return 0, errors.New("empty font file")
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return 0, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    FontSize,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return 0, fmt.Errorf("create font face: %w", err)
	}
	defer face.Close()

	return f.NumGlyphs(), nil
}
