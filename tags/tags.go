package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Item      = donburi.NewTag().SetName("Item")
	Enemy     = donburi.NewTag().SetName("Enemy")
	Boomerang = donburi.NewTag().SetName("Boomerang")
	Flag      = donburi.NewTag().SetName("Flag")
)

// Resolv tags for body-to-body contacts
const (
	ResolvPlayer    = "Player"
	ResolvItem      = "Item"
	ResolvEnemy     = "Enemy"
	ResolvBoomerang = "Boomerang"
	ResolvFlag      = "Flag"
)
