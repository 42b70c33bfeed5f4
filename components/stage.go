package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/shared/stage"
)

type StageData struct {
	*stage.Stage
	Source  *leveldata.StageData
	Names   []string // every stage found in the levels directory
	Index   int
	Spawned bool // markers have been turned into entities
}

var Stage = donburi.NewComponentType[StageData]()
