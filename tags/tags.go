package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Fish    = donburi.NewTag().SetName("Fish")
	Ghost   = donburi.NewTag().SetName("Ghost")
	Harpoon = donburi.NewTag().SetName("Harpoon")
	Jar     = donburi.NewTag().SetName("Jar")
	Effect  = donburi.NewTag().SetName("Effect")
	Session = donburi.NewTag().SetName("Session")
)

// Resolv tags for collision queries
const (
	ResolvPlayer = "player"
	ResolvFish   = "fish"
	ResolvGhost  = "ghost"
	ResolvTip    = "tip"
	ResolvJar    = "jar"
)
