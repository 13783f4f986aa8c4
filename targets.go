package icongen

import (
	"path/filepath"

	"github.com/pkg/errors"
)

// Target names one output file and the pixel size to render it at.
type Target struct {
	Name string
	Size int
}

// IOSTargets is the icon set the iOS asset catalog requires.
var IOSTargets = []Target{
	{"app_icon_1024.png", 1024},
}

// MacOSTargets is the icon set the macOS asset catalog requires,
// including the @2x variants.
var MacOSTargets = []Target{
	{"app_icon_16.png", 16},
	{"app_icon_16@2x.png", 32},
	{"app_icon_32.png", 32},
	{"app_icon_32@2x.png", 64},
	{"app_icon_128.png", 128},
	{"app_icon_128@2x.png", 256},
	{"app_icon_256.png", 256},
	{"app_icon_256@2x.png", 512},
	{"app_icon_512.png", 512},
	{"app_icon_512@2x.png", 1024},
}

// AllTargets returns the combined iOS and macOS target list in the order
// the batch processes it.
func AllTargets() []Target {
	all := make([]Target, 0, len(IOSTargets)+len(MacOSTargets))
	all = append(all, IOSTargets...)
	all = append(all, MacOSTargets...)
	return all
}

// Result records the outcome of one target in a batch.
type Result struct {
	Target Target
	Err    error
}

// GenerateTarget renders one target and saves it into dir, overwriting
// any existing file of the same name.
func GenerateTarget(dir string, t Target) error {
	pm, err := Render(t.Size)
	if err != nil {
		return errors.Wrapf(err, "render %s", t.Name)
	}
	path := filepath.Join(dir, t.Name)
	if err := pm.SavePNG(path); err != nil {
		return errors.Wrapf(err, "save %s", t.Name)
	}
	return nil
}

// Generate renders every target into dir and returns one Result per
// target, in input order. A failing target is recorded and skipped; it
// never aborts the rest of the batch.
func Generate(dir string, targets []Target) []Result {
	results := make([]Result, 0, len(targets))
	for _, t := range targets {
		err := GenerateTarget(dir, t)
		if err != nil {
			Logger().Warn("icon generation failed", "name", t.Name, "size", t.Size, "err", err)
		} else {
			Logger().Debug("icon generated", "name", t.Name, "size", t.Size)
		}
		results = append(results, Result{Target: t, Err: err})
	}
	return results
}
