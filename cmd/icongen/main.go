// Command icongen renders the UrGood app icon at every size the iOS and
// macOS asset catalogs require and writes the PNGs into the Xcode
// .appiconset directory resolved relative to the executable.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urgood/icongen"
)

// assetDir is the appiconset location relative to the executable.
const assetDir = "urgood/urgood/Assets.xcassets/AppIcon.appiconset"

func main() {
	exe, err := os.Executable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "resolve executable path: %v\n", err)
		os.Exit(1)
	}
	outDir := filepath.Join(filepath.Dir(exe), assetDir)
	os.Exit(run(outDir, os.Stdout, os.Stderr))
}

// run executes the batch against outDir and returns the process exit
// code. A missing directory is fatal; individual file failures are
// reported and skipped.
func run(outDir string, out, errw io.Writer) int {
	if info, err := os.Stat(outDir); err != nil || !info.IsDir() {
		fmt.Fprintf(errw, "icon directory not found: %s\n", outDir)
		fmt.Fprintf(errw, "create the Xcode asset catalog first, then re-run icongen\n")
		return 1
	}

	fmt.Fprintf(out, "generating app icons into %s\n\n", outDir)

	results := icongen.Generate(outDir, icongen.AllTargets())
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(errw, "  failed %s: %+v\n", res.Target.Name, res.Err)
			continue
		}
		fmt.Fprintf(out, "  generated %s (%dx%d)\n", res.Target.Name, res.Target.Size, res.Target.Size)
	}

	if failed > 0 {
		fmt.Fprintf(out, "\nicon generation complete, %d of %d files failed\n", failed, len(results))
	} else {
		fmt.Fprintf(out, "\nicon generation complete\n")
	}
	fmt.Fprintf(out, "\nnext steps:\n")
	fmt.Fprintf(out, "  1. open Xcode and navigate to Assets.xcassets > AppIcon\n")
	fmt.Fprintf(out, "  2. drag the generated PNG files into the matching slots\n")
	fmt.Fprintf(out, "  3. build and run the app to see the new icon\n")
	return 0
}
