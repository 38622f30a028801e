package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/picnotes"
	"github.com/akeil/picnotes/internal/fs"
	"github.com/akeil/picnotes/pkg/render"
	"github.com/akeil/picnotes/pkg/scene"
	"github.com/akeil/picnotes/pkg/script"
)

func doRender(s settings, scriptPath, outDir, name string, pdf bool) error {
	b, err := setupBoard(s)
	if err != nil {
		return err
	}

	sc, err := script.ReadFile(scriptPath)
	if err != nil {
		return err
	}

	fmt.Printf("%v replay %d events from %q\n", ellipsis, len(sc.Events), scriptPath)
	res, err := script.Replay(b, sc)
	if err != nil {
		fmt.Printf("%v replay failed: %v\n", crossmark, err)
		return err
	}
	fmt.Printf("%v %v\n", checkmark, res)

	return saveSnapshot(s, b, outDir, name, pdf)
}

// saveSnapshot writes PNG files for canvas and picker and a PDF for the
// canvas. The files are written concurrently.
func saveSnapshot(s settings, b *picnotes.Board, outDir, name string, pdf bool) error {
	err := os.MkdirAll(outDir, 0755)
	if err != nil {
		return err
	}

	rc := render.NewContext(s.dataDir)
	var group errgroup.Group
	group.Go(func() error {
		return writePNG(rc, b.CanvasScene(), filepath.Join(outDir, name+".png"))
	})
	group.Go(func() error {
		return writePNG(rc, b.PickerScene(), filepath.Join(outDir, name+"-picker.png"))
	})
	if pdf {
		group.Go(func() error {
			opts := render.PDFOptions{Title: name, Created: time.Now()}
			return writePDF(rc, b.CanvasScene(), opts, filepath.Join(outDir, name+".pdf"))
		})
	}
	return group.Wait()
}

func writePNG(rc *render.Context, sc *scene.Scene, path string) error {
	err := fs.WriteFile(path, func(w io.Writer) error {
		return rc.PNG(sc, w)
	})
	if err != nil {
		fmt.Printf("%v Failed to render %q: %v\n", crossmark, path, err)
		return err
	}
	fmt.Printf("%v saved %q\n", checkmark, path)
	return nil
}

func writePDF(rc *render.Context, sc *scene.Scene, opts render.PDFOptions, path string) error {
	err := fs.WriteFile(path, func(w io.Writer) error {
		return rc.PDF(sc, opts, w)
	})
	if err != nil {
		fmt.Printf("%v Failed to render %q: %v\n", crossmark, path, err)
		return err
	}
	fmt.Printf("%v saved %q\n", checkmark, path)
	return nil
}

func setupBoard(s settings) (*picnotes.Board, error) {
	cfg, pictures, err := loadConfig(s)
	if err != nil {
		return nil, err
	}
	return picnotes.NewBoard(cfg, pictures...)
}
