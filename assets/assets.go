// Package assets embeds the bundled stages.
package assets

import (
	"embed"
	"io/fs"
	"log"

	"github.com/automoto/tilerun/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// LevelsDir is the directory inside Levels holding the .tmx files.
const LevelsDir = "levels"

// Levels returns the embedded stage files.
func Levels() fs.FS {
	return assetFS
}

// MustLoadStages decodes every bundled stage and panics on failure. Meant
// for startup only.
func MustLoadStages() (map[string]*leveldata.StageData, []string) {
	stages, names, err := leveldata.LoadAllStages(assetFS, LevelsDir)
	if err != nil {
		log.Panicf("loading bundled stages: %v", err)
	}
	return stages, names
}
