// Package render paints scenes to PNG and PDF.
package render

import (
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"sync"

	"github.com/akeil/picnotes/internal/imaging"
	"github.com/akeil/picnotes/internal/logging"
	"github.com/akeil/picnotes/pkg/scene"
)

var bgColor = color.RGBA{255, 255, 255, 255}

// Context holds parameters and cached data for rendering operations.
//
// If multiple scenes are rendered, they should use the same Context.
type Context struct {
	// DataDir is the directory against which relative picture sources
	// are resolved.
	DataDir    string
	Background color.RGBA
	cache      map[cacheKey]image.Image
	mx         sync.Mutex
}

type cacheKey struct {
	source string
	w, h   float64
}

// NewContext sets up a new rendering context.
func NewContext(dataDir string) *Context {
	return &Context{
		DataDir:    dataDir,
		Background: bgColor,
	}
}

// DefaultContext resolves pictures against the working directory.
func DefaultContext() *Context {
	return NewContext(".")
}

// picture loads the source of the given image, scaled to its display
// size. Pictures that cannot be loaded are replaced with a placeholder.
func (c *Context) picture(img scene.Image) image.Image {
	c.mx.Lock()
	defer c.mx.Unlock()
	if c.cache == nil {
		c.cache = make(map[cacheKey]image.Image)
	}

	key := cacheKey{img.Source, img.Width, img.Height}
	cached := c.cache[key]
	if cached != nil {
		return cached
	}

	p := c.resolve(img.Source)
	logging.Debug("Load picture from %q", p)
	src, err := imaging.Load(p)
	var pic image.Image
	if err != nil {
		logging.Warning("picture %q: %v", img.Source, err)
		pic = imaging.Placeholder(img.Width, img.Height)
	} else {
		pic = imaging.Resize(src, img.Width, img.Height)
	}

	c.cache[key] = pic
	return pic
}

func (c *Context) resolve(source string) string {
	p := strings.TrimPrefix(source, "file://")
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.DataDir, filepath.FromSlash(p))
}
