// Command iconsheet renders every app icon size onto a single contact
// sheet PNG for visual review before committing the generated assets.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/urgood/icongen"
)

func main() {
	var (
		output = flag.String("output", "icon_sheet.png", "output file")
		cell   = flag.Int("cell", 128, "tile size in pixels")
	)
	flag.Parse()

	if *cell <= 0 {
		log.Fatalf("cell size must be positive, got %d", *cell)
	}

	targets := icongen.AllTargets()
	const pad = 16
	w := pad + len(targets)*(*cell+pad)
	h := *cell + 2*pad
	sheet := image.NewNRGBA(image.Rect(0, 0, w, h))

	for i, t := range targets {
		pm, err := icongen.Render(t.Size)
		if err != nil {
			log.Fatalf("render %s: %v", t.Name, err)
		}
		x0 := pad + i*(*cell+pad)
		dst := image.Rect(x0, pad, x0+*cell, pad+*cell)
		xdraw.CatmullRom.Scale(sheet, dst, pm.Image(), pm.Bounds(), xdraw.Src, nil)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("create %s: %v", *output, err)
	}
	if err := png.Encode(f, sheet); err != nil {
		f.Close()
		log.Fatalf("encode %s: %v", *output, err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("close %s: %v", *output, err)
	}

	log.Printf("sheet saved to %s (%dx%d, %d tiles)", *output, w, h, len(targets))
}
