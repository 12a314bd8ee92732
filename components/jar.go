package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// JarData accumulates landed fish for the current session.
type JarData struct {
	Count int
	Score int

	Pop   *gween.Tween
	Scale float32
}

func (j *JarData) Add(score int) {
	j.Count++
	j.Score += score
}

func (j *JarData) Reset() {
	j.Count = 0
	j.Score = 0
	j.Pop = nil
	j.Scale = 1
}

var Jar = donburi.NewComponentType[JarData]()
