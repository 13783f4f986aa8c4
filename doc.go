// Package icongen procedurally renders the UrGood app icon, a rounded
// chat bubble with a sparkle motif, and writes it as PNG files at every
// size the iOS and macOS asset catalogs require.
//
// # Quick Start
//
//	import "github.com/urgood/icongen"
//
//	pm, err := icongen.Render(1024)
//	if err != nil {
//	    // size was not positive
//	}
//	err = pm.SavePNG("app_icon_1024.png")
//
// The full batch lives behind [Generate], which renders every entry in
// [AllTargets] into a directory and returns one [Result] per file. A
// failed file never aborts the batch.
//
// # Architecture
//
//   - Drawing primitives: Pixmap, Path, Point, RGBA
//   - Rasterization: anti-aliased scanline fills via golang.org/x/image/vector
//   - Icon: fixed palette and proportional geometry, scaled from a
//     1024px reference design
//
// # Coordinate System
//
// Standard raster coordinates: origin at top-left, X increases right,
// Y increases down.
package icongen
