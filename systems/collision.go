package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// overlaps is the exact AABB test; resolv's Check only narrows candidates to
// shared cells.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// touching returns the live entries tagged tag whose boxes overlap obj.
func touching(obj *resolv.Object, tag string) []*donburi.Entry {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	var out []*donburi.Entry
	for _, other := range check.ObjectsByTags(tag) {
		if !overlaps(obj, other) {
			continue
		}
		if e, ok := other.Data.(*donburi.Entry); ok && e.Valid() {
			out = append(out, e)
		}
	}
	return out
}
