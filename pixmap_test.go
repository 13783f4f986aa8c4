package icongen

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPixmap_SetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetPixel(3, 7, SkyBlue)

	got := pm.GetPixel(3, 7).NRGBA()
	want := SkyBlue.NRGBA()
	if got != want {
		t.Errorf("GetPixel = %v, want %v", got, want)
	}
}

func TestPixmap_OutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(Black)
	original := make([]uint8, len(pm.Data()))
	copy(original, pm.Data())

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10}, {-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, White)
		if got := pm.GetPixel(c.x, c.y); got != Transparent {
			t.Errorf("GetPixel(%d, %d) = %v, want Transparent", c.x, c.y, got)
		}
	}

	for i, v := range pm.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d", i)
		}
	}
}

func TestPixmap_Clear(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(Peach)

	want := Peach.NRGBA()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := pm.Image().NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPixmap_Composite(t *testing.T) {
	tests := []struct {
		name  string
		src   RGBA
		want  RGBA
		exact bool
	}{
		{"opaque replaces", SkyBlue, SkyBlue, true},
		{"transparent keeps destination", Transparent, RGBA{R: 1, A: 1}, true},
		{"half white blends", RGBA{R: 1, G: 1, B: 1, A: 0.5}, RGBA{R: 1, G: 0.5, B: 0.5, A: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := NewPixmap(2, 2)
			dst.Clear(RGBA{R: 1, A: 1}) // opaque red
			src := NewPixmap(2, 2)
			src.Clear(tt.src)

			dst.Composite(src)

			got := dst.GetPixel(1, 1)
			const tolerance = 0.01
			if absDiff(got.R, tt.want.R) > tolerance ||
				absDiff(got.G, tt.want.G) > tolerance ||
				absDiff(got.B, tt.want.B) > tolerance ||
				absDiff(got.A, tt.want.A) > tolerance {
				t.Errorf("composite = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPixmap_CompositeKeepsOpaque(t *testing.T) {
	dst := NewPixmap(3, 3)
	dst.Clear(SkyBlue)
	src := NewPixmap(3, 3)
	src.SetPixel(1, 1, White.WithAlpha(200.0/255))

	dst.Composite(src)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if a := dst.Image().NRGBAAt(x, y).A; a != 255 {
				t.Errorf("pixel (%d, %d) alpha = %d, want 255", x, y, a)
			}
		}
	}
}

func TestPixmap_SavePNG(t *testing.T) {
	dir := t.TempDir()
	pm := NewPixmap(8, 6)
	pm.Clear(Peach)

	path := filepath.Join(dir, "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
		t.Errorf("decoded bounds = %v, want 8x6", img.Bounds())
	}

	// The temp file must not survive a successful save.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.png" {
		t.Errorf("directory contains %d entries, want only out.png", len(entries))
	}
}

func TestPixmap_SavePNGMissingDir(t *testing.T) {
	pm := NewPixmap(2, 2)
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	if err := pm.SavePNG(path); err == nil {
		t.Fatal("SavePNG into a missing directory succeeded, want error")
	}
}

func TestPixmap_SavePNGOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	small := NewPixmap(2, 2)
	if err := small.SavePNG(path); err != nil {
		t.Fatalf("first save: %v", err)
	}
	big := NewPixmap(5, 5)
	if err := big.SavePNG(path); err != nil {
		t.Fatalf("second save: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 5 {
		t.Errorf("overwrite kept old content: bounds %v", img.Bounds())
	}
}
