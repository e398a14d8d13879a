//go:build use_xyz

package clipper

import "fmt"

type IntPoint struct {
	X cInt
	Y cInt
	Z cInt
}

func (p IntPoint) String() string {
	return fmt.Sprintf("{%v, %v, %v}", p.X, p.Y, p.Z)
}

func NewIntPoint(x, y, z cInt) *IntPoint {
	return &IntPoint{X: x, Y: y, Z: z}
}

func NewIntPointFromFloat(x, y, z float64) *IntPoint {
	return &IntPoint{X: cInt(x), Y: cInt(y), Z: cInt(z)}
}

func (p *IntPoint) Copy() IntPoint {
	return IntPoint{X: p.X, Y: p.Y, Z: p.Z}
}

func (c *ClipperBase) reverseHorizontal(e *TEdge) {
	//swap horizontal edges' top and bottom x's so they follow the natural
	//progression of the bounds - ie so their xbots will align with the
	//adjoining lower edge. [Helpful in the processHorizontal() method.]
	e.Top.X, e.Bot.X = e.Bot.X, e.Top.X
	e.Top.Z, e.Bot.Z = e.Bot.Z, e.Top.Z
}

// setZ assigns the Z member of an intersection point, deferring to the
// user supplied ZFillFunction when the point coincides with no edge end.
func (c *Clipper) setZ(pt *IntPoint, e1, e2 *TEdge) {
	if pt.Z != 0 || c.ZFillFunction == nil {
		return
	} else if *pt == e1.Bot {
		pt.Z = e1.Bot.Z
	} else if *pt == e1.Top {
		pt.Z = e1.Top.Z
	} else if *pt == e2.Bot {
		pt.Z = e2.Bot.Z
	} else if *pt == e2.Top {
		pt.Z = e2.Top.Z
	} else {
		c.ZFillFunction(e1.Bot, e1.Top, e2.Bot, e2.Top, pt)
	}
}
