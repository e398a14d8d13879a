//===============================================================================
//                                                                              //
// Author    :  Angus Johnson                                                   //
// Website   :  http://www.angusj.com                                           //
// Copyright :  Angus Johnson 2010-2014                                         //
//                                                                              //
// License:                                                                     //
// Use, modification & distribution is subject to Boost Software License Ver 1. //
// http://www.boost.org/LICENSE_1_0.txt                                         //
//                                                                              //
// Attributions:                                                                //
// The code in this library is an extension of Bala Vatti's clipping algorithm: //
// "A generic solution to polygon clipping"                                     //
// Communications of the ACM, Vol 35, Issue 7 (July 1992) PP 56-63.             //
// http://portal.acm.org/citation.cfm?id=129906                                 //
//                                                                              //
// Computer graphics and geometric modeling: implementation and algorithms      //
// By Max K. Agoston                                                            //
// Springer; 1 edition (January 4, 2005)                                        //
// http://books.google.com/books?q=vatti+clipping+agoston                       //
//                                                                              //
//===============================================================================

// Package clipper performs boolean clipping operations (intersection,
// union, difference and xor) on polygons with integer coordinates,
// using a sweep line adaptation of the Vatti clipping algorithm.
package clipper

import (
	"fmt"
	"math"
)

// horizontal flags an edge's Dx when its Delta.Y is zero. Any real
// slope is finite, so -Inf is safe as a sentinel.
var horizontal = math.Inf(-1)

const unassigned = -1

// ClipType selects the boolean operation performed by Execute.
type ClipType int

const (
	Intersection ClipType = iota
	Union
	Difference
	Xor
)

// PolyType tags an input path as belonging to the subject or the clip
// polygon set.
type PolyType int

const (
	Subject PolyType = iota
	Clip
)

// PolyFillType determines which regions bounded by a path set are
// considered inside. See http://glprogramming.com/red/chapter11.html
// for an illustrated discussion of even-odd and non-zero filling.
type PolyFillType int

const (
	EvenOdd PolyFillType = iota
	NonZero
	Positive
	Negative
)

type edgeSide int

const (
	leftEdge edgeSide = iota
	rightEdge
)

type direction int

const (
	rightToLeft direction = iota
	leftToRight
)

// Path is a sequence of vertices describing one closed polygon
// contour. The closing edge back to the first vertex is implied.
type Path []*IntPoint

// Paths holds multiple contours, together describing a polygon set
// possibly containing holes and islands.
type Paths []Path

// ZFillCallback assigns the Z member of an intersection point from the
// Z members of the four edge end points that produced it. It is only
// consulted under the use_xyz build tag.
type ZFillCallback func(bot1, top1, bot2, top2 IntPoint, pt *IntPoint)

// TEdge is one polygon edge within the sweep. Edges are linked three
// ways: Next/Prev around their source contour, NextInLML up each
// bound, and NextInAEL/PrevInAEL (or the SEL equivalents) while the
// edge intersects the current scanbeam.
type TEdge struct {
	Bot   IntPoint
	Curr  IntPoint // updated for every new scanbeam
	Top   IntPoint
	Delta IntPoint
	Dx    float64

	PolyType  PolyType
	Side      edgeSide // side of the solution polygon the edge is currently on
	WindDelta int      // 1 or -1 depending on winding direction
	WindCnt   int
	WindCnt2  int // winding count of the opposite polytype
	OutIdx    int

	Next      *TEdge
	Prev      *TEdge
	NextInLML *TEdge
	NextInAEL *TEdge
	PrevInAEL *TEdge
	NextInSEL *TEdge
	PrevInSEL *TEdge
}

func (e *TEdge) String() string {
	return fmt.Sprintf("TEdge: bot %v, curr %v, top %v", e.Bot, e.Curr, e.Top)
}

type intersectNode struct {
	edge1 *TEdge
	edge2 *TEdge
	pt    IntPoint
}

type localMinima struct {
	y          cInt
	leftBound  *TEdge
	rightBound *TEdge
	next       *localMinima
}

type scanbeam struct {
	y    cInt
	next *scanbeam
}

type maxima struct {
	x    cInt
	next *maxima
	prev *maxima
}

// outRec contains a path in the clipping solution. Edges in the AEL
// carry the index of an outRec while they are contributing to it.
type outRec struct {
	idx       int
	isHole    bool
	firstLeft *outRec // the enclosing outRec, or nil for outermost rings
	pts       *outPt
	bottomPt  *outPt
	polyNode  *PolyNode
}

// outPt is a vertex on an output ring, doubly linked into a circle.
type outPt struct {
	idx  int
	pt   IntPoint
	next *outPt
	prev *outPt
}

type join struct {
	outPt1 *outPt
	outPt2 *outPt
	offPt  IntPoint
}

// ClipperBase collects input paths and builds the local minima list
// that seeds the sweep. It is embedded by Clipper and not normally
// used on its own.
type ClipperBase struct {
	// PreserveCollinear stops AddPath from merging adjacent collinear
	// edges, so vertices on the straight sides of input polygons
	// survive into the solution. Spikes (overlapping collinear edges)
	// are still removed.
	PreserveCollinear bool

	minimaList   *localMinima
	currentLM    *localMinima
	edges        [][]*TEdge
	useFullRange bool
	scanbeam     *scanbeam
	polyOuts     []*outRec
	activeEdges  *TEdge
}

func pointsEqual(a, b IntPoint) bool {
	return a.X == b.X && a.Y == b.Y
}

func intAbs(v cInt) cInt {
	if v < 0 {
		return -v
	}
	return v
}

// slopesEqual reports whether two edges have the same gradient. Once
// any coordinate has exceeded loRange the cross product is evaluated
// in 128 bits to avoid overflow.
func slopesEqual(e1, e2 *TEdge, useFullRange bool) bool {
	if useFullRange {
		return int128Mul(e1.Delta.Y, e2.Delta.X).equals(int128Mul(e1.Delta.X, e2.Delta.Y))
	}
	return e1.Delta.Y*e2.Delta.X == e1.Delta.X*e2.Delta.Y
}

func slopesEqual3(pt1, pt2, pt3 IntPoint, useFullRange bool) bool {
	if useFullRange {
		return int128Mul(pt1.Y-pt2.Y, pt2.X-pt3.X).equals(int128Mul(pt1.X-pt2.X, pt2.Y-pt3.Y))
	}
	return (pt1.Y-pt2.Y)*(pt2.X-pt3.X)-(pt1.X-pt2.X)*(pt2.Y-pt3.Y) == 0
}

func slopesEqual4(pt1, pt2, pt3, pt4 IntPoint, useFullRange bool) bool {
	if useFullRange {
		return int128Mul(pt1.Y-pt2.Y, pt3.X-pt4.X).equals(int128Mul(pt1.X-pt2.X, pt3.Y-pt4.Y))
	}
	return (pt1.Y-pt2.Y)*(pt3.X-pt4.X)-(pt1.X-pt2.X)*(pt3.Y-pt4.Y) == 0
}

func pt2IsBetweenPt1AndPt3(pt1, pt2, pt3 IntPoint) bool {
	if pointsEqual(pt1, pt3) || pointsEqual(pt1, pt2) || pointsEqual(pt3, pt2) {
		return false
	} else if pt1.X != pt3.X {
		return (pt2.X > pt1.X) == (pt2.X < pt3.X)
	}
	return (pt2.Y > pt1.Y) == (pt2.Y < pt3.Y)
}

// rangeTest verifies a vertex is within the supported coordinate
// range, switching to 128 bit arithmetic when it leaves the fast
// +/-loRange band. Vertices beyond hiRange cannot be clipped.
func (c *ClipperBase) rangeTest(pt IntPoint) bool {
	if c.useFullRange {
		if pt.X > hiRange || pt.Y > hiRange || -pt.X > hiRange || -pt.Y > hiRange {
			return false
		}
		return true
	}
	if pt.X > loRange || pt.Y > loRange || -pt.X > loRange || -pt.Y > loRange {
		c.useFullRange = true
		return c.rangeTest(pt)
	}
	return true
}

func initEdge(e, eNext, ePrev *TEdge, pt IntPoint) {
	e.Next = eNext
	e.Prev = ePrev
	e.Curr = pt
	e.OutIdx = unassigned
}

func initEdge2(e *TEdge, polyType PolyType) {
	if e.Curr.Y >= e.Next.Curr.Y {
		e.Bot = e.Curr
		e.Top = e.Next.Curr
	} else {
		e.Top = e.Curr
		e.Bot = e.Next.Curr
	}
	setDx(e)
	e.PolyType = polyType
}

func setDx(e *TEdge) {
	e.Delta.X = e.Top.X - e.Bot.X
	e.Delta.Y = e.Top.Y - e.Bot.Y
	if e.Delta.Y == 0 {
		e.Dx = horizontal
	} else {
		e.Dx = float64(e.Delta.X) / float64(e.Delta.Y)
	}
}

// removeEdge unlinks an edge from its contour list without deleting
// it, since the edge may still be referenced by a bound.
func removeEdge(e *TEdge) *TEdge {
	e.Prev.Next = e.Next
	e.Next.Prev = e.Prev
	result := e.Next
	e.Prev = nil // flag as removed
	return result
}

func findNextLocMin(e *TEdge) *TEdge {
	for {
		for !pointsEqual(e.Bot, e.Prev.Bot) || pointsEqual(e.Curr, e.Top) {
			e = e.Next
		}
		if e.Dx != horizontal && e.Prev.Dx != horizontal {
			break
		}
		for e.Prev.Dx == horizontal {
			e = e.Prev
		}
		e2 := e
		for e.Dx == horizontal {
			e = e.Next
		}
		if e.Top.Y == e.Prev.Bot.Y {
			continue // just an intermediate horizontal
		}
		if e2.Prev.Bot.X < e.Bot.X {
			e = e2
		}
		break
	}
	return e
}

// processBound walks one bound upward from a local minimum, linking
// its edges through NextInLML and aligning any horizontals so that
// their bottom x coordinates adjoin the edge below. It returns the
// first edge beyond the bound.
func (c *ClipperBase) processBound(e *TEdge, leftBoundIsForward bool) *TEdge {
	result := e

	if e.Dx == horizontal {
		// Consecutive horizontals may start heading left before going
		// right, so check which way the bound really leaves the
		// minimum before aligning this one.
		var eStart *TEdge
		if leftBoundIsForward {
			eStart = e.Prev
		} else {
			eStart = e.Next
		}
		if eStart.Dx == horizontal {
			if eStart.Bot.X != e.Bot.X && eStart.Top.X != e.Bot.X {
				c.reverseHorizontal(e)
			}
		} else if eStart.Bot.X != e.Bot.X {
			c.reverseHorizontal(e)
		}
	}

	eStart := e
	if leftBoundIsForward {
		for result.Top.Y == result.Next.Bot.Y {
			result = result.Next
		}
		if result.Dx == horizontal {
			// At the top of a bound, horizontals are added to the
			// bound only when the preceding edge attaches to the
			// horizontal's left vertex.
			horz := result
			for horz.Prev.Dx == horizontal {
				horz = horz.Prev
			}
			if horz.Prev.Top.X > result.Next.Top.X {
				result = horz.Prev
			}
		}
		for e != result {
			e.NextInLML = e.Next
			if e.Dx == horizontal && e != eStart && e.Bot.X != e.Prev.Top.X {
				c.reverseHorizontal(e)
			}
			e = e.Next
		}
		if e.Dx == horizontal && e != eStart && e.Bot.X != e.Prev.Top.X {
			c.reverseHorizontal(e)
		}
		result = result.Next // move to the edge just beyond current bound
	} else {
		for result.Top.Y == result.Prev.Bot.Y {
			result = result.Prev
		}
		if result.Dx == horizontal {
			horz := result
			for horz.Next.Dx == horizontal {
				horz = horz.Next
			}
			if horz.Next.Top.X >= result.Prev.Top.X {
				result = horz.Next
			}
		}
		for e != result {
			e.NextInLML = e.Prev
			if e.Dx == horizontal && e != eStart && e.Bot.X != e.Next.Top.X {
				c.reverseHorizontal(e)
			}
			e = e.Prev
		}
		if e.Dx == horizontal && e != eStart && e.Bot.X != e.Next.Top.X {
			c.reverseHorizontal(e)
		}
		result = result.Prev // move to the edge just beyond current bound
	}
	return result
}

// AddPath adds a closed polygon contour to the clipping task. It
// returns false without adding anything when the path is flagged open,
// has fewer than three distinct vertices once duplicate and collinear
// vertices are removed, is completely flat, or has a coordinate
// outside the +/-hiRange limit. Open paths are not supported.
func (c *ClipperBase) AddPath(pg Path, polyType PolyType, closed bool) bool {
	if !closed {
		return false
	}

	highI := len(pg) - 1
	for highI > 0 && pointsEqual(*pg[highI], *pg[0]) {
		highI--
	}
	for highI > 0 && pointsEqual(*pg[highI], *pg[highI-1]) {
		highI--
	}
	if highI < 2 {
		return false
	}

	edges := make([]*TEdge, highI+1)
	for i := range edges {
		edges[i] = new(TEdge)
	}

	isFlat := true

	// 1. basic (first) edge initialization
	edges[1].Curr = pg[1].Copy()
	if !c.rangeTest(pg[0].Copy()) || !c.rangeTest(pg[highI].Copy()) {
		return false
	}
	initEdge(edges[0], edges[1], edges[highI], pg[0].Copy())
	initEdge(edges[highI], edges[0], edges[highI-1], pg[highI].Copy())
	for i := highI - 1; i >= 1; i-- {
		if !c.rangeTest(pg[i].Copy()) {
			return false
		}
		initEdge(edges[i], edges[i+1], edges[i-1], pg[i].Copy())
	}
	eStart := edges[0]

	// 2. remove duplicate vertices and collinear edges. Adjacent
	// collinear edges are merged into a single edge unless
	// PreserveCollinear is set, in which case only overlapping
	// collinear edges (spikes) are removed.
	e, eLoopStop := eStart, eStart
	for {
		if pointsEqual(e.Curr, e.Next.Curr) {
			if e == e.Next {
				break
			}
			if e == eStart {
				eStart = e.Next
			}
			e = removeEdge(e)
			eLoopStop = e
			continue
		}
		if e.Prev == e.Next {
			break // only two vertices left
		} else if slopesEqual3(e.Prev.Curr, e.Curr, e.Next.Curr, c.useFullRange) &&
			(!c.PreserveCollinear ||
				!pt2IsBetweenPt1AndPt3(e.Prev.Curr, e.Curr, e.Next.Curr)) {
			if e == eStart {
				eStart = e.Next
			}
			e = removeEdge(e)
			e = e.Prev
			eLoopStop = e
			continue
		}
		e = e.Next
		if e == eLoopStop {
			break
		}
	}
	if e.Prev == e.Next {
		return false
	}

	// 3. do second stage of edge initialization
	e = eStart
	for {
		initEdge2(e, polyType)
		e = e.Next
		if isFlat && e.Curr.Y != eStart.Curr.Y {
			isFlat = false
		}
		if e == eStart {
			break
		}
	}

	// totally flat paths cannot be clipped
	if isFlat {
		return false
	}

	c.edges = append(c.edges, edges)
	var eMin *TEdge

	for {
		e = findNextLocMin(e)
		if e == eMin {
			break
		}
		if eMin == nil {
			eMin = e
		}

		// e and e.Prev now share a local minima (left aligned if
		// horizontal). Compare their slopes to find which starts
		// which bound.
		locMin := &localMinima{y: e.Bot.Y}
		var leftBoundIsForward bool
		if e.Dx < e.Prev.Dx {
			locMin.leftBound = e.Prev
			locMin.rightBound = e
			leftBoundIsForward = false // Q.NextInLML = Q.Prev
		} else {
			locMin.leftBound = e
			locMin.rightBound = e.Prev
			leftBoundIsForward = true // Q.NextInLML = Q.Next
		}
		locMin.leftBound.Side = leftEdge
		locMin.rightBound.Side = rightEdge

		if locMin.leftBound.Next == locMin.rightBound {
			locMin.leftBound.WindDelta = -1
		} else {
			locMin.leftBound.WindDelta = 1
		}
		locMin.rightBound.WindDelta = -locMin.leftBound.WindDelta

		e = c.processBound(locMin.leftBound, leftBoundIsForward)
		e2 := c.processBound(locMin.rightBound, !leftBoundIsForward)

		c.insertLocalMinima(locMin)
		if !leftBoundIsForward {
			e = e2
		}
	}
	return true
}

// AddPaths adds multiple contours at once and reports whether at
// least one of them was accepted.
func (c *ClipperBase) AddPaths(ppg Paths, polyType PolyType, closed bool) bool {
	result := false
	for _, pg := range ppg {
		if c.AddPath(pg, polyType, closed) {
			result = true
		}
	}
	return result
}

// AddPolygon adds a single closed contour.
func (c *ClipperBase) AddPolygon(pg Path, polyType PolyType) bool {
	return c.AddPath(pg, polyType, true)
}

// AddPolygons adds multiple closed contours and reports whether at
// least one of them was accepted.
func (c *ClipperBase) AddPolygons(ppg Paths, polyType PolyType) bool {
	return c.AddPaths(ppg, polyType, true)
}

// Clear discards all the paths added so far, allowing the clipper to
// be reused for an unrelated clipping task.
func (c *ClipperBase) Clear() {
	c.disposeLocalMinimaList()
	c.edges = c.edges[:0]
	c.useFullRange = false
}

func (c *ClipperBase) disposeLocalMinimaList() {
	c.minimaList = nil
	c.currentLM = nil
}

func (c *ClipperBase) insertLocalMinima(newLm *localMinima) {
	if c.minimaList == nil {
		c.minimaList = newLm
	} else if newLm.y >= c.minimaList.y {
		newLm.next = c.minimaList
		c.minimaList = newLm
	} else {
		tmpLm := c.minimaList
		for tmpLm.next != nil && newLm.y < tmpLm.next.y {
			tmpLm = tmpLm.next
		}
		newLm.next = tmpLm.next
		tmpLm.next = newLm
	}
}

func (c *ClipperBase) popLocalMinima(y cInt) (*localMinima, bool) {
	current := c.currentLM
	if current != nil && current.y == y {
		c.currentLM = current.next
		return current, true
	}
	return nil, false
}

func (c *ClipperBase) localMinimaPending() bool {
	return c.currentLM != nil
}

// reset prepares the edge lists for a (re)run of the sweep. Bounds
// are immutable between runs, so the same input paths can be executed
// against several clip operations or fill types.
func (c *ClipperBase) reset() {
	c.currentLM = c.minimaList
	if c.currentLM == nil {
		return // nothing to process
	}

	c.scanbeam = nil
	lm := c.minimaList
	for lm != nil {
		c.insertScanbeam(lm.y)
		e := lm.leftBound
		if e != nil {
			e.Curr = e.Bot
			e.OutIdx = unassigned
			e.Side = leftEdge
		}
		e = lm.rightBound
		if e != nil {
			e.Curr = e.Bot
			e.OutIdx = unassigned
			e.Side = rightEdge
		}
		lm = lm.next
	}
	c.activeEdges = nil
}

// insertScanbeam keeps the scanbeam list sorted with the largest y
// first, ignoring duplicates.
func (c *ClipperBase) insertScanbeam(y cInt) {
	if c.scanbeam == nil {
		c.scanbeam = &scanbeam{y: y}
	} else if y > c.scanbeam.y {
		c.scanbeam = &scanbeam{y: y, next: c.scanbeam}
	} else {
		sb := c.scanbeam
		for sb.next != nil && y <= sb.next.y {
			sb = sb.next
		}
		if y == sb.y {
			return // ignore duplicates
		}
		sb.next = &scanbeam{y: y, next: sb.next}
	}
}

func (c *ClipperBase) popScanbeam() (cInt, bool) {
	if c.scanbeam == nil {
		return 0, false
	}
	y := c.scanbeam.y
	c.scanbeam = c.scanbeam.next
	return y, true
}
