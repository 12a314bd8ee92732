package components

import (
	"github.com/automoto/fishhunt/assets/animations"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Current *animations.Animation
	// Alternate is swapped in while the owner is moving (player swim cycle).
	Alternate *animations.Animation
}

var Animation = donburi.NewComponentType[AnimationData]()
