package sankey

import "github.com/samber/lo"

// Node x positions per column. Kept off the exact 0/1 edges so labels
// stay visible in common renderers.
const (
	leftX   = 0.02
	middleX = 0.5
	rightX  = 0.98
)

// Position fixes one node's horizontal and vertical placement.
type Position struct {
	X float64
	Y float64
}

// NodePositions computes a deterministic layout: x fixed by side, y
// evenly spaced by ordinal position among same-side nodes, middle
// nodes centered. Renderers get the same geometry on every rebuild
// regardless of their own auto-layout.
func NodePositions(model *Model) []Position {
	leftCount := lo.CountBy(model.NodeKeys, func(key string) bool {
		return model.SideByKey[key] == SideLeft
	})
	rightCount := lo.CountBy(model.NodeKeys, func(key string) bool {
		return model.SideByKey[key] == SideRight
	})

	positions := make([]Position, 0, len(model.NodeKeys))
	leftSeen := 0
	rightSeen := 0
	for _, key := range model.NodeKeys {
		switch model.SideByKey[key] {
		case SideLeft:
			y := 0.5
			if leftCount > 0 {
				y = float64(leftSeen+1) / float64(leftCount+1)
			}
			positions = append(positions, Position{X: leftX, Y: y})
			leftSeen++
		case SideRight:
			y := 0.5
			if rightCount > 0 {
				y = float64(rightSeen+1) / float64(rightCount+1)
			}
			positions = append(positions, Position{X: rightX, Y: y})
			rightSeen++
		default:
			positions = append(positions, Position{X: middleX, Y: 0.5})
		}
	}
	return positions
}
