package components

import "github.com/yohamta/donburi"

type EnemyKind int

const (
	EnemyWalker EnemyKind = iota
	EnemyHopper
)

func (k EnemyKind) String() string {
	if k == EnemyHopper {
		return "hopper"
	}
	return "walker"
}

type EnemyData struct {
	Kind EnemyKind
}

var Enemy = donburi.NewComponentType[EnemyData]()
