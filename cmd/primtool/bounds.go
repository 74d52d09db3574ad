package main

import (
	"github.com/Faultbox/primforge/internal/editor/scene"
	"github.com/Faultbox/primforge/pkg/math"
)

// sceneBounds returns the union of the instances' world bounds.
func sceneBounds(instances []*scene.Instance) math.AABB {
	b := math.EmptyAABB()
	for _, inst := range instances {
		wb := inst.WorldBounds()
		b = b.Extend(wb.Min).Extend(wb.Max)
	}
	return b
}
