//go:build !use_xyz

package clipper

import "fmt"

type IntPoint struct {
	X cInt
	Y cInt
}

func (p IntPoint) String() string {
	return fmt.Sprintf("{%v, %v}", p.X, p.Y)
}

func NewIntPoint(x, y cInt) *IntPoint {
	return &IntPoint{X: x, Y: y}
}

func NewIntPointFromFloat(x, y float64) *IntPoint {
	return &IntPoint{X: cInt(x), Y: cInt(y)}
}

func (p *IntPoint) Copy() IntPoint {
	return IntPoint{X: p.X, Y: p.Y}
}

func (c *ClipperBase) reverseHorizontal(e *TEdge) {
	//swap horizontal edges' top and bottom x's so they follow the natural
	//progression of the bounds - ie so their xbots will align with the
	//adjoining lower edge. [Helpful in the processHorizontal() method.]
	e.Top.X, e.Bot.X = e.Bot.X, e.Top.X
}

func (c *Clipper) setZ(pt *IntPoint, e1, e2 *TEdge) {
}
