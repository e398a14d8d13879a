package clipper

import (
	"errors"
	"math"
	"sort"
)

var (
	errNothingToExecute = errors.New("clipper: nothing to execute")
	errIntersectOrder   = errors.New("clipper: intersection order could not be stabilised")
	errMissingNextInLML = errors.New("clipper: updateEdgeIntoAEL called past the top of a bound")
	errDoMaxima         = errors.New("clipper: doMaxima error")
)

// Clipper executes boolean clip operations on the paths collected by
// its embedded ClipperBase. The zero value is ready for use.
type Clipper struct {
	ClipperBase

	// ReverseSolution flips the orientation of all solution contours,
	// so outer rings come back clockwise instead of counter-clockwise.
	ReverseSolution bool
	// StrictlySimple requests that solution polygons are simple, ie
	// that no ring touches itself at a vertex. It is off by default
	// because enforcing it costs a little performance.
	StrictlySimple bool
	// ZFillFunction supplies Z values for intersection vertices. Only
	// consulted under the use_xyz build tag.
	ZFillFunction ZFillCallback

	clipType      ClipType
	maxima        *maxima
	sortedEdges   *TEdge
	intersectList []*intersectNode
	executeLocked bool
	clipFillType  PolyFillType
	subjFillType  PolyFillType
	joins         []*join
	ghostJoins    []*join
	usingPolyTree bool
}

// NewClipper returns an empty Clipper ready to accept subject and
// clip paths.
func NewClipper() *Clipper {
	return new(Clipper)
}

// Execute clips the paths added so far and returns the solution as a
// set of closed contours, outer rings oriented counter-clockwise and
// holes clockwise (unless ReverseSolution is set). It reports false
// when there was nothing to clip or the sweep could not complete; the
// input paths are untouched either way, so Execute may be called
// again with a different operation or fill types. subjFillType and
// clipFillType set the fill rules for the two path sets independently.
func (c *Clipper) Execute(clipType ClipType, subjFillType, clipFillType PolyFillType) (Paths, bool) {
	if c.executeLocked {
		return nil, false
	}
	c.executeLocked = true
	c.subjFillType = subjFillType
	c.clipFillType = clipFillType
	c.clipType = clipType
	c.usingPolyTree = false
	err := c.executeInternal()
	var solution Paths
	if err == nil {
		solution = c.buildResult()
	}
	c.disposeAllPolyPts()
	c.executeLocked = false
	return solution, err == nil
}

// ExecuteTree clips like Execute but returns the solution as a
// PolyTree, preserving the nesting of outer rings and holes.
func (c *Clipper) ExecuteTree(clipType ClipType, subjFillType, clipFillType PolyFillType) (*PolyTree, bool) {
	if c.executeLocked {
		return nil, false
	}
	c.executeLocked = true
	c.subjFillType = subjFillType
	c.clipFillType = clipFillType
	c.clipType = clipType
	c.usingPolyTree = true
	err := c.executeInternal()
	var tree *PolyTree
	if err == nil {
		tree = NewPolyTree()
		c.buildResult2(tree)
	}
	c.disposeAllPolyPts()
	c.executeLocked = false
	return tree, err == nil
}

func (c *Clipper) executeInternal() error {
	defer func() {
		c.joins = c.joins[:0]
		c.ghostJoins = c.ghostJoins[:0]
	}()

	c.reset()
	c.sortedEdges = nil
	c.maxima = nil

	botY, ok := c.popScanbeam()
	if !ok {
		return errNothingToExecute
	}
	c.insertLocalMinimaIntoAEL(botY)
	for {
		topY, ok := c.popScanbeam()
		if !ok {
			break
		}
		if err := c.processHorizontals(); err != nil {
			return err
		}
		c.ghostJoins = c.ghostJoins[:0]
		if err := c.processIntersections(topY); err != nil {
			return err
		}
		if err := c.processEdgesAtTopOfScanbeam(topY); err != nil {
			return err
		}
		c.insertLocalMinimaIntoAEL(topY)
	}

	// fix orientations
	for _, outRec := range c.polyOuts {
		if outRec.pts == nil {
			continue
		}
		if (outRec.isHole != c.ReverseSolution) == (c.areaOutRec(outRec) > 0) {
			reversePolyPtLinks(outRec.pts)
		}
	}

	c.joinCommonEdges()

	for _, outRec := range c.polyOuts {
		if outRec.pts != nil {
			c.fixupOutPolygon(outRec)
		}
	}

	if c.StrictlySimple {
		c.doSimplePolygons()
	}
	return nil
}

func (c *Clipper) addJoin(op1, op2 *outPt, offPt IntPoint) {
	c.joins = append(c.joins, &join{outPt1: op1, outPt2: op2, offPt: offPt})
}

func (c *Clipper) addGhostJoin(op *outPt, offPt IntPoint) {
	c.ghostJoins = append(c.ghostJoins, &join{outPt1: op, offPt: offPt})
}

// insertMaxima keeps the maxima list sorted ascending, ignoring
// duplicates.
func (c *Clipper) insertMaxima(x cInt) {
	newMax := &maxima{x: x}
	if c.maxima == nil {
		c.maxima = newMax
	} else if x < c.maxima.x {
		newMax.next = c.maxima
		c.maxima.prev = newMax
		c.maxima = newMax
	} else {
		m := c.maxima
		for m.next != nil && x >= m.next.x {
			m = m.next
		}
		if x == m.x {
			return // ignore duplicates
		}
		newMax.next = m.next
		newMax.prev = m
		if m.next != nil {
			m.next.prev = newMax
		}
		m.next = newMax
	}
}

func round(value float64) cInt {
	if value < 0 {
		return cInt(value - 0.5)
	}
	return cInt(value + 0.5)
}

func topX(edge *TEdge, currentY cInt) cInt {
	if currentY == edge.Top.Y {
		return edge.Top.X
	}
	return edge.Bot.X + round(edge.Dx*float64(currentY-edge.Bot.Y))
}

func isHorizontal(e *TEdge) bool {
	return e.Delta.Y == 0
}

func isMaxima(e *TEdge, y cInt) bool {
	return e != nil && e.Top.Y == y && e.NextInLML == nil
}

func isIntermediate(e *TEdge, y cInt) bool {
	return e.Top.Y == y && e.NextInLML != nil
}

func getMaximaPair(e *TEdge) *TEdge {
	if pointsEqual(e.Next.Top, e.Top) && e.Next.NextInLML == nil {
		return e.Next
	}
	if pointsEqual(e.Prev.Top, e.Top) && e.Prev.NextInLML == nil {
		return e.Prev
	}
	return nil
}

// getMaximaPairEx is like getMaximaPair but returns nil when the pair
// is no longer in the AEL, unless it is horizontal.
func getMaximaPairEx(e *TEdge) *TEdge {
	result := getMaximaPair(e)
	if result == nil ||
		(result.NextInAEL == result.PrevInAEL && !isHorizontal(result)) {
		return nil
	}
	return result
}

func swapSides(e1, e2 *TEdge) {
	e1.Side, e2.Side = e2.Side, e1.Side
}

func swapPolyIndexes(e1, e2 *TEdge) {
	e1.OutIdx, e2.OutIdx = e2.OutIdx, e1.OutIdx
}

func (c *Clipper) isEvenOddFillType(edge *TEdge) bool {
	if edge.PolyType == Subject {
		return c.subjFillType == EvenOdd
	}
	return c.clipFillType == EvenOdd
}

func (c *Clipper) isEvenOddAltFillType(edge *TEdge) bool {
	if edge.PolyType == Subject {
		return c.clipFillType == EvenOdd
	}
	return c.subjFillType == EvenOdd
}

func (c *Clipper) insertLocalMinimaIntoAEL(botY cInt) {
	for {
		lm, ok := c.popLocalMinima(botY)
		if !ok {
			break
		}
		lb := lm.leftBound
		rb := lm.rightBound

		var op1 *outPt
		c.insertEdgeIntoAEL(lb, nil)
		c.insertEdgeIntoAEL(rb, lb)
		c.setWindingCount(lb)
		rb.WindCnt = lb.WindCnt
		rb.WindCnt2 = lb.WindCnt2
		if c.isContributing(lb) {
			op1 = c.addLocalMinPoly(lb, rb, lb.Bot)
		}
		c.insertScanbeam(lb.Top.Y)

		if isHorizontal(rb) {
			if rb.NextInLML != nil {
				c.insertScanbeam(rb.NextInLML.Top.Y)
			}
			c.addEdgeToSEL(rb)
		} else {
			c.insertScanbeam(rb.Top.Y)
		}

		// if output polygons share an edge with a horizontal rb,
		// they'll need joining later
		if op1 != nil && isHorizontal(rb) && len(c.ghostJoins) > 0 {
			for _, j := range c.ghostJoins {
				// if the horizontal rb and a 'ghost' horizontal
				// overlap, convert the ghost join to a real join
				// ready for later
				if horzSegmentsOverlap(j.outPt1.pt.X, j.offPt.X, rb.Bot.X, rb.Top.X) {
					c.addJoin(j.outPt1, op1, j.offPt)
				}
			}
		}

		if lb.OutIdx >= 0 && lb.PrevInAEL != nil &&
			lb.PrevInAEL.Curr.X == lb.Bot.X &&
			lb.PrevInAEL.OutIdx >= 0 &&
			slopesEqual4(lb.PrevInAEL.Curr, lb.PrevInAEL.Top, lb.Curr, lb.Top, c.useFullRange) {
			op2 := c.addOutPt(lb.PrevInAEL, lb.Bot)
			c.addJoin(op1, op2, lb.Top)
		}

		if lb.NextInAEL != rb {
			if rb.OutIdx >= 0 && rb.PrevInAEL.OutIdx >= 0 &&
				slopesEqual4(rb.PrevInAEL.Curr, rb.PrevInAEL.Top, rb.Curr, rb.Top, c.useFullRange) {
				op2 := c.addOutPt(rb.PrevInAEL, rb.Bot)
				c.addJoin(op1, op2, rb.Top)
			}

			e := lb.NextInAEL
			if e != nil {
				for e != rb {
					// nb: for calculating winding counts etc,
					// intersectEdges assumes e1 will be to the right
					// of e2 ABOVE the intersection
					c.intersectEdges(rb, e, lb.Curr) // order important here
					e = e.NextInAEL
				}
			}
		}
	}
}

func (c *Clipper) insertEdgeIntoAEL(edge, startEdge *TEdge) {
	if c.activeEdges == nil {
		edge.PrevInAEL = nil
		edge.NextInAEL = nil
		c.activeEdges = edge
	} else if startEdge == nil && e2InsertsBeforeE1(c.activeEdges, edge) {
		edge.PrevInAEL = nil
		edge.NextInAEL = c.activeEdges
		c.activeEdges.PrevInAEL = edge
		c.activeEdges = edge
	} else {
		if startEdge == nil {
			startEdge = c.activeEdges
		}
		for startEdge.NextInAEL != nil &&
			!e2InsertsBeforeE1(startEdge.NextInAEL, edge) {
			startEdge = startEdge.NextInAEL
		}
		edge.NextInAEL = startEdge.NextInAEL
		if startEdge.NextInAEL != nil {
			startEdge.NextInAEL.PrevInAEL = edge
		}
		edge.PrevInAEL = startEdge
		startEdge.NextInAEL = edge
	}
}

func e2InsertsBeforeE1(e1, e2 *TEdge) bool {
	if e2.Curr.X == e1.Curr.X {
		if e2.Top.Y > e1.Top.Y {
			return e2.Top.X < topX(e1, e2.Top.Y)
		}
		return e1.Top.X > topX(e2, e1.Top.Y)
	}
	return e2.Curr.X < e1.Curr.X
}

func (c *Clipper) setWindingCount(edge *TEdge) {
	// find the edge of the same polytype immediately preceding edge
	// in the AEL
	e := edge.PrevInAEL
	for e != nil && e.PolyType != edge.PolyType {
		e = e.PrevInAEL
	}
	if e == nil {
		edge.WindCnt = edge.WindDelta
		edge.WindCnt2 = 0
		e = c.activeEdges // get ready to calc WindCnt2
	} else if c.isEvenOddFillType(edge) {
		edge.WindCnt = edge.WindDelta
		edge.WindCnt2 = e.WindCnt2
		e = e.NextInAEL // get ready to calc WindCnt2
	} else {
		// NonZero, Positive or Negative filling
		if e.WindCnt*e.WindDelta < 0 {
			// prev edge is 'decreasing' the wind count toward zero,
			// so we're outside the previous polygon
			if intAbs(cInt(e.WindCnt)) > 1 {
				// outside prev poly but still inside another; when
				// reversing the direction of prev poly keep the same
				// wind count, otherwise continue to decrease it
				if e.WindDelta*edge.WindDelta < 0 {
					edge.WindCnt = e.WindCnt
				} else {
					edge.WindCnt = e.WindCnt + edge.WindDelta
				}
			} else {
				// now outside all polys of the same polytype
				edge.WindCnt = edge.WindDelta
			}
		} else {
			// prev edge is 'increasing' the wind count away from
			// zero, so we're inside the previous polygon
			if e.WindDelta*edge.WindDelta < 0 {
				edge.WindCnt = e.WindCnt
			} else {
				edge.WindCnt = e.WindCnt + edge.WindDelta
			}
		}
		edge.WindCnt2 = e.WindCnt2
		e = e.NextInAEL // get ready to calc WindCnt2
	}

	// update WindCnt2
	if c.isEvenOddAltFillType(edge) {
		for e != edge {
			if edge.WindCnt2 == 0 {
				edge.WindCnt2 = 1
			} else {
				edge.WindCnt2 = 0
			}
			e = e.NextInAEL
		}
	} else {
		for e != edge {
			edge.WindCnt2 += e.WindDelta
			e = e.NextInAEL
		}
	}
}

func (c *Clipper) isContributing(edge *TEdge) bool {
	var pft, pft2 PolyFillType
	if edge.PolyType == Subject {
		pft = c.subjFillType
		pft2 = c.clipFillType
	} else {
		pft = c.clipFillType
		pft2 = c.subjFillType
	}

	switch pft {
	case EvenOdd, NonZero:
		if intAbs(cInt(edge.WindCnt)) != 1 {
			return false
		}
	case Positive:
		if edge.WindCnt != 1 {
			return false
		}
	default: // Negative
		if edge.WindCnt != -1 {
			return false
		}
	}

	switch c.clipType {
	case Intersection:
		switch pft2 {
		case EvenOdd, NonZero:
			return edge.WindCnt2 != 0
		case Positive:
			return edge.WindCnt2 > 0
		default:
			return edge.WindCnt2 < 0
		}
	case Union:
		switch pft2 {
		case EvenOdd, NonZero:
			return edge.WindCnt2 == 0
		case Positive:
			return edge.WindCnt2 <= 0
		default:
			return edge.WindCnt2 >= 0
		}
	case Difference:
		if edge.PolyType == Subject {
			switch pft2 {
			case EvenOdd, NonZero:
				return edge.WindCnt2 == 0
			case Positive:
				return edge.WindCnt2 <= 0
			default:
				return edge.WindCnt2 >= 0
			}
		}
		switch pft2 {
		case EvenOdd, NonZero:
			return edge.WindCnt2 != 0
		case Positive:
			return edge.WindCnt2 > 0
		default:
			return edge.WindCnt2 < 0
		}
	}
	return true // Xor
}

// intersectEdges handles two edges crossing (or touching) at pt. e1
// must be to the left of e2 below the intersection and, except when
// e1 is being inserted at the intersection point, before e2 in the
// AEL. Winding counts are updated on the assumption that e1 will be
// to the RIGHT of e2 above the intersection.
func (c *Clipper) intersectEdges(e1, e2 *TEdge, pt IntPoint) {
	e1Contributing := e1.OutIdx >= 0
	e2Contributing := e2.OutIdx >= 0

	c.setZ(&pt, e1, e2)

	// update winding counts
	if e1.PolyType == e2.PolyType {
		if c.isEvenOddFillType(e1) {
			e1.WindCnt, e2.WindCnt = e2.WindCnt, e1.WindCnt
		} else {
			if e1.WindCnt+e2.WindDelta == 0 {
				e1.WindCnt = -e1.WindCnt
			} else {
				e1.WindCnt += e2.WindDelta
			}
			if e2.WindCnt-e1.WindDelta == 0 {
				e2.WindCnt = -e2.WindCnt
			} else {
				e2.WindCnt -= e1.WindDelta
			}
		}
	} else {
		if !c.isEvenOddFillType(e2) {
			e1.WindCnt2 += e2.WindDelta
		} else if e1.WindCnt2 == 0 {
			e1.WindCnt2 = 1
		} else {
			e1.WindCnt2 = 0
		}
		if !c.isEvenOddFillType(e1) {
			e2.WindCnt2 -= e1.WindDelta
		} else if e2.WindCnt2 == 0 {
			e2.WindCnt2 = 1
		} else {
			e2.WindCnt2 = 0
		}
	}

	var e1FillType, e1FillType2, e2FillType, e2FillType2 PolyFillType
	if e1.PolyType == Subject {
		e1FillType = c.subjFillType
		e1FillType2 = c.clipFillType
	} else {
		e1FillType = c.clipFillType
		e1FillType2 = c.subjFillType
	}
	if e2.PolyType == Subject {
		e2FillType = c.subjFillType
		e2FillType2 = c.clipFillType
	} else {
		e2FillType = c.clipFillType
		e2FillType2 = c.subjFillType
	}

	var e1Wc, e2Wc int
	switch e1FillType {
	case Positive:
		e1Wc = e1.WindCnt
	case Negative:
		e1Wc = -e1.WindCnt
	default:
		e1Wc = int(intAbs(cInt(e1.WindCnt)))
	}
	switch e2FillType {
	case Positive:
		e2Wc = e2.WindCnt
	case Negative:
		e2Wc = -e2.WindCnt
	default:
		e2Wc = int(intAbs(cInt(e2.WindCnt)))
	}

	if e1Contributing && e2Contributing {
		if (e1Wc != 0 && e1Wc != 1) || (e2Wc != 0 && e2Wc != 1) ||
			(e1.PolyType != e2.PolyType && c.clipType != Xor) {
			c.addLocalMaxPoly(e1, e2, pt)
		} else {
			c.addOutPt(e1, pt)
			c.addOutPt(e2, pt)
			swapSides(e1, e2)
			swapPolyIndexes(e1, e2)
		}
	} else if e1Contributing {
		if e2Wc == 0 || e2Wc == 1 {
			c.addOutPt(e1, pt)
			swapSides(e1, e2)
			swapPolyIndexes(e1, e2)
		}
	} else if e2Contributing {
		if e1Wc == 0 || e1Wc == 1 {
			c.addOutPt(e2, pt)
			swapSides(e1, e2)
			swapPolyIndexes(e1, e2)
		}
	} else if (e1Wc == 0 || e1Wc == 1) && (e2Wc == 0 || e2Wc == 1) {
		// neither edge is currently contributing
		var e1Wc2, e2Wc2 int
		switch e1FillType2 {
		case Positive:
			e1Wc2 = e1.WindCnt2
		case Negative:
			e1Wc2 = -e1.WindCnt2
		default:
			e1Wc2 = int(intAbs(cInt(e1.WindCnt2)))
		}
		switch e2FillType2 {
		case Positive:
			e2Wc2 = e2.WindCnt2
		case Negative:
			e2Wc2 = -e2.WindCnt2
		default:
			e2Wc2 = int(intAbs(cInt(e2.WindCnt2)))
		}

		if e1.PolyType != e2.PolyType {
			c.addLocalMinPoly(e1, e2, pt)
		} else if e1Wc == 1 && e2Wc == 1 {
			switch c.clipType {
			case Intersection:
				if e1Wc2 > 0 && e2Wc2 > 0 {
					c.addLocalMinPoly(e1, e2, pt)
				}
			case Union:
				if e1Wc2 <= 0 && e2Wc2 <= 0 {
					c.addLocalMinPoly(e1, e2, pt)
				}
			case Difference:
				if (e1.PolyType == Clip && e1Wc2 > 0 && e2Wc2 > 0) ||
					(e1.PolyType == Subject && e1Wc2 <= 0 && e2Wc2 <= 0) {
					c.addLocalMinPoly(e1, e2, pt)
				}
			case Xor:
				c.addLocalMinPoly(e1, e2, pt)
			}
		} else {
			swapSides(e1, e2)
		}
	}
}

func (c *Clipper) deleteFromAEL(e *TEdge) {
	aelPrev := e.PrevInAEL
	aelNext := e.NextInAEL
	if aelPrev == nil && aelNext == nil && e != c.activeEdges {
		return // already deleted
	}
	if aelPrev != nil {
		aelPrev.NextInAEL = aelNext
	} else {
		c.activeEdges = aelNext
	}
	if aelNext != nil {
		aelNext.PrevInAEL = aelPrev
	}
	e.NextInAEL = nil
	e.PrevInAEL = nil
}

func (c *Clipper) addEdgeToSEL(edge *TEdge) {
	// SEL pointers in PEdge are use to build transient lists of
	// horizontal edges; they're also reused to sort the AEL into the
	// SEL prior to processing intersections
	if c.sortedEdges == nil {
		c.sortedEdges = edge
		edge.PrevInSEL = nil
		edge.NextInSEL = nil
	} else {
		edge.NextInSEL = c.sortedEdges
		edge.PrevInSEL = nil
		c.sortedEdges.PrevInSEL = edge
		c.sortedEdges = edge
	}
}

func (c *Clipper) popEdgeFromSEL() (*TEdge, bool) {
	e := c.sortedEdges
	if e == nil {
		return nil, false
	}
	c.sortedEdges = e.NextInSEL
	if c.sortedEdges != nil {
		c.sortedEdges.PrevInSEL = nil
	}
	e.NextInSEL = nil
	e.PrevInSEL = nil
	return e, true
}

func (c *Clipper) copyAELToSEL() {
	e := c.activeEdges
	c.sortedEdges = e
	for e != nil {
		e.PrevInSEL = e.PrevInAEL
		e.NextInSEL = e.NextInAEL
		e = e.NextInAEL
	}
}

func (c *Clipper) swapPositionsInAEL(edge1, edge2 *TEdge) {
	// check that one or other edge hasn't already been removed from
	// the AEL
	if edge1.NextInAEL == edge1.PrevInAEL ||
		edge2.NextInAEL == edge2.PrevInAEL {
		return
	}

	if edge1.NextInAEL == edge2 {
		next := edge2.NextInAEL
		if next != nil {
			next.PrevInAEL = edge1
		}
		prev := edge1.PrevInAEL
		if prev != nil {
			prev.NextInAEL = edge2
		}
		edge2.PrevInAEL = prev
		edge2.NextInAEL = edge1
		edge1.PrevInAEL = edge2
		edge1.NextInAEL = next
	} else if edge2.NextInAEL == edge1 {
		next := edge1.NextInAEL
		if next != nil {
			next.PrevInAEL = edge2
		}
		prev := edge2.PrevInAEL
		if prev != nil {
			prev.NextInAEL = edge1
		}
		edge1.PrevInAEL = prev
		edge1.NextInAEL = edge2
		edge2.PrevInAEL = edge1
		edge2.NextInAEL = next
	} else {
		next := edge1.NextInAEL
		prev := edge1.PrevInAEL
		edge1.NextInAEL = edge2.NextInAEL
		if edge1.NextInAEL != nil {
			edge1.NextInAEL.PrevInAEL = edge1
		}
		edge1.PrevInAEL = edge2.PrevInAEL
		if edge1.PrevInAEL != nil {
			edge1.PrevInAEL.NextInAEL = edge1
		}
		edge2.NextInAEL = next
		if edge2.NextInAEL != nil {
			edge2.NextInAEL.PrevInAEL = edge2
		}
		edge2.PrevInAEL = prev
		if edge2.PrevInAEL != nil {
			edge2.PrevInAEL.NextInAEL = edge2
		}
	}

	if edge1.PrevInAEL == nil {
		c.activeEdges = edge1
	} else if edge2.PrevInAEL == nil {
		c.activeEdges = edge2
	}
}

func (c *Clipper) swapPositionsInSEL(edge1, edge2 *TEdge) {
	if edge1.NextInSEL == nil && edge1.PrevInSEL == nil {
		return
	}
	if edge2.NextInSEL == nil && edge2.PrevInSEL == nil {
		return
	}

	if edge1.NextInSEL == edge2 {
		next := edge2.NextInSEL
		if next != nil {
			next.PrevInSEL = edge1
		}
		prev := edge1.PrevInSEL
		if prev != nil {
			prev.NextInSEL = edge2
		}
		edge2.PrevInSEL = prev
		edge2.NextInSEL = edge1
		edge1.PrevInSEL = edge2
		edge1.NextInSEL = next
	} else if edge2.NextInSEL == edge1 {
		next := edge1.NextInSEL
		if next != nil {
			next.PrevInSEL = edge2
		}
		prev := edge2.PrevInSEL
		if prev != nil {
			prev.NextInSEL = edge1
		}
		edge1.PrevInSEL = prev
		edge1.NextInSEL = edge2
		edge2.PrevInSEL = edge1
		edge2.NextInSEL = next
	} else {
		next := edge1.NextInSEL
		prev := edge1.PrevInSEL
		edge1.NextInSEL = edge2.NextInSEL
		if edge1.NextInSEL != nil {
			edge1.NextInSEL.PrevInSEL = edge1
		}
		edge1.PrevInSEL = edge2.PrevInSEL
		if edge1.PrevInSEL != nil {
			edge1.PrevInSEL.NextInSEL = edge1
		}
		edge2.NextInSEL = next
		if edge2.NextInSEL != nil {
			edge2.NextInSEL.PrevInSEL = edge2
		}
		edge2.PrevInSEL = prev
		if edge2.PrevInSEL != nil {
			edge2.PrevInSEL.NextInSEL = edge2
		}
	}

	if edge1.PrevInSEL == nil {
		c.sortedEdges = edge1
	} else if edge2.PrevInSEL == nil {
		c.sortedEdges = edge2
	}
}

func (c *Clipper) updateEdgeIntoAEL(e *TEdge) (*TEdge, error) {
	if e.NextInLML == nil {
		return nil, errMissingNextInLML
	}
	aelPrev := e.PrevInAEL
	aelNext := e.NextInAEL
	e.NextInLML.OutIdx = e.OutIdx
	if aelPrev != nil {
		aelPrev.NextInAEL = e.NextInLML
	} else {
		c.activeEdges = e.NextInLML
	}
	if aelNext != nil {
		aelNext.PrevInAEL = e.NextInLML
	}
	e.NextInLML.Side = e.Side
	e.NextInLML.WindDelta = e.WindDelta
	e.NextInLML.WindCnt = e.WindCnt
	e.NextInLML.WindCnt2 = e.WindCnt2
	e = e.NextInLML
	e.Curr = e.Bot
	e.PrevInAEL = aelPrev
	e.NextInAEL = aelNext
	if !isHorizontal(e) {
		c.insertScanbeam(e.Top.Y)
	}
	return e, nil
}

func (c *Clipper) processHorizontals() error {
	for {
		horzEdge, ok := c.popEdgeFromSEL()
		if !ok {
			return nil
		}
		if err := c.processHorizontal(horzEdge); err != nil {
			return err
		}
	}
}

func getHorzDirection(horzEdge *TEdge) (dir direction, left, right cInt) {
	if horzEdge.Bot.X < horzEdge.Top.X {
		return leftToRight, horzEdge.Bot.X, horzEdge.Top.X
	}
	return rightToLeft, horzEdge.Top.X, horzEdge.Bot.X
}

func getNextInAEL(e *TEdge, dir direction) *TEdge {
	if dir == leftToRight {
		return e.NextInAEL
	}
	return e.PrevInAEL
}

func horzSegmentsOverlap(seg1a, seg1b, seg2a, seg2b cInt) bool {
	if seg1a > seg1b {
		seg1a, seg1b = seg1b, seg1a
	}
	if seg2a > seg2b {
		seg2a, seg2b = seg2b, seg2a
	}
	return seg1a < seg2b && seg2a < seg1b
}

// processHorizontal walks one horizontal edge (or a run of
// consecutive horizontals in the same bound) across the AEL.
// Horizontal edges at scanline intersections are processed as if they
// are 'bent' vertically, which among other things means their Curr.Y
// never changes while they are in the AEL.
func (c *Clipper) processHorizontal(horzEdge *TEdge) error {
	dir, horzLeft, horzRight := getHorzDirection(horzEdge)

	eLastHorz := horzEdge
	var eMaxPair *TEdge
	for eLastHorz.NextInLML != nil && isHorizontal(eLastHorz.NextInLML) {
		eLastHorz = eLastHorz.NextInLML
	}
	if eLastHorz.NextInLML == nil {
		eMaxPair = getMaximaPair(eLastHorz)
	}

	currMax := c.maxima
	if currMax != nil {
		// get the first maxima in range (x)
		if dir == leftToRight {
			for currMax != nil && currMax.x <= horzEdge.Bot.X {
				currMax = currMax.next
			}
			if currMax != nil && currMax.x >= eLastHorz.Top.X {
				currMax = nil
			}
		} else {
			for currMax.next != nil && currMax.next.x < horzEdge.Bot.X {
				currMax = currMax.next
			}
			if currMax.x <= eLastHorz.Top.X {
				currMax = nil
			}
		}
	}

	var op1 *outPt
	for { // loop through consecutive horizontal edges
		isLastHorz := horzEdge == eLastHorz
		e := getNextInAEL(horzEdge, dir)
		for e != nil {
			// this block inserts extra coords into horizontal edges
			// (in output polygons) wherever maxima touch them, which
			// helps when later forcing polygons to be strictly simple
			if currMax != nil {
				if dir == leftToRight {
					for currMax != nil && currMax.x < e.Curr.X {
						if horzEdge.OutIdx >= 0 {
							c.addOutPt(horzEdge, IntPoint{X: currMax.x, Y: horzEdge.Bot.Y})
						}
						currMax = currMax.next
					}
				} else {
					for currMax != nil && currMax.x > e.Curr.X {
						if horzEdge.OutIdx >= 0 {
							c.addOutPt(horzEdge, IntPoint{X: currMax.x, Y: horzEdge.Bot.Y})
						}
						currMax = currMax.prev
					}
				}
			}

			if (dir == leftToRight && e.Curr.X > horzRight) ||
				(dir == rightToLeft && e.Curr.X < horzLeft) {
				break
			}

			// also break if we've reached the end of an intermediate
			// horizontal edge; nb: smaller Dx's are to the right of
			// larger Dx's ABOVE the horizontal
			if e.Curr.X == horzEdge.Top.X && horzEdge.NextInLML != nil &&
				e.Dx < horzEdge.NextInLML.Dx {
				break
			}

			if horzEdge.OutIdx >= 0 { // may be done multiple times
				op1 = c.addOutPt(horzEdge, e.Curr)
				eNextHorz := c.sortedEdges
				for eNextHorz != nil {
					if eNextHorz.OutIdx >= 0 &&
						horzSegmentsOverlap(horzEdge.Bot.X, horzEdge.Top.X,
							eNextHorz.Bot.X, eNextHorz.Top.X) {
						op2 := c.getLastOutPt(eNextHorz)
						c.addJoin(op2, op1, eNextHorz.Top)
					}
					eNextHorz = eNextHorz.NextInSEL
				}
				c.addGhostJoin(op1, horzEdge.Bot)
			}

			// so far we're still in range of the horizontal edge, but
			// make sure we're at the last of consecutive horizontals
			// when matching with eMaxPair
			if e == eMaxPair && isLastHorz {
				if horzEdge.OutIdx >= 0 {
					c.addLocalMaxPoly(horzEdge, eMaxPair, horzEdge.Top)
				}
				c.deleteFromAEL(horzEdge)
				c.deleteFromAEL(eMaxPair)
				return nil
			}

			pt := IntPoint{X: e.Curr.X, Y: horzEdge.Curr.Y}
			if dir == leftToRight {
				c.intersectEdges(horzEdge, e, pt)
			} else {
				c.intersectEdges(e, horzEdge, pt)
			}
			eNext := getNextInAEL(e, dir)
			c.swapPositionsInAEL(horzEdge, e)
			e = eNext
		}

		// break out of the loop if horzEdge.NextInLML is not also
		// horizontal
		if horzEdge.NextInLML == nil || !isHorizontal(horzEdge.NextInLML) {
			break
		}

		var err error
		horzEdge, err = c.updateEdgeIntoAEL(horzEdge)
		if err != nil {
			return err
		}
		if horzEdge.OutIdx >= 0 {
			c.addOutPt(horzEdge, horzEdge.Bot)
		}
		dir, horzLeft, horzRight = getHorzDirection(horzEdge)
	}

	if horzEdge.OutIdx >= 0 && op1 == nil {
		op1 = c.getLastOutPt(horzEdge)
		eNextHorz := c.sortedEdges
		for eNextHorz != nil {
			if eNextHorz.OutIdx >= 0 &&
				horzSegmentsOverlap(horzEdge.Bot.X, horzEdge.Top.X,
					eNextHorz.Bot.X, eNextHorz.Top.X) {
				op2 := c.getLastOutPt(eNextHorz)
				c.addJoin(op2, op1, eNextHorz.Top)
			}
			eNextHorz = eNextHorz.NextInSEL
		}
		c.addGhostJoin(op1, horzEdge.Top)
	}

	if horzEdge.NextInLML != nil {
		if horzEdge.OutIdx >= 0 {
			op1b := c.addOutPt(horzEdge, horzEdge.Top)

			var err error
			horzEdge, err = c.updateEdgeIntoAEL(horzEdge)
			if err != nil {
				return err
			}
			// nb: horzEdge is no longer horizontal here
			ePrev := horzEdge.PrevInAEL
			eNext := horzEdge.NextInAEL
			if ePrev != nil && ePrev.Curr.X == horzEdge.Bot.X &&
				ePrev.Curr.Y == horzEdge.Bot.Y &&
				ePrev.OutIdx >= 0 && ePrev.Curr.Y > ePrev.Top.Y &&
				slopesEqual(horzEdge, ePrev, c.useFullRange) {
				op2 := c.addOutPt(ePrev, horzEdge.Bot)
				c.addJoin(op1b, op2, horzEdge.Top)
			} else if eNext != nil && eNext.Curr.X == horzEdge.Bot.X &&
				eNext.Curr.Y == horzEdge.Bot.Y &&
				eNext.OutIdx >= 0 && eNext.Curr.Y > eNext.Top.Y &&
				slopesEqual(horzEdge, eNext, c.useFullRange) {
				op2 := c.addOutPt(eNext, horzEdge.Bot)
				c.addJoin(op1b, op2, horzEdge.Top)
			}
		} else {
			var err error
			horzEdge, err = c.updateEdgeIntoAEL(horzEdge)
			if err != nil {
				return err
			}
		}
	} else {
		if horzEdge.OutIdx >= 0 {
			c.addOutPt(horzEdge, horzEdge.Top)
		}
		c.deleteFromAEL(horzEdge)
	}
	return nil
}

func (c *Clipper) processIntersections(topY cInt) error {
	if c.activeEdges == nil {
		return nil
	}
	c.buildIntersectList(topY)
	if len(c.intersectList) == 0 {
		return nil
	}
	if len(c.intersectList) == 1 || c.fixupIntersectionOrder() {
		c.processIntersectList()
		c.sortedEdges = nil
		return nil
	}
	c.sortedEdges = nil
	c.intersectList = c.intersectList[:0]
	return errIntersectOrder
}

func (c *Clipper) buildIntersectList(topY cInt) {
	if c.activeEdges == nil {
		return
	}

	// prepare for sorting
	e := c.activeEdges
	c.sortedEdges = e
	for e != nil {
		e.PrevInSEL = e.PrevInAEL
		e.NextInSEL = e.NextInAEL
		e.Curr.X = topX(e, topY)
		e = e.NextInAEL
	}

	// bubblesort, but adjacent swaps only
	isModified := true
	for isModified && c.sortedEdges != nil {
		isModified = false
		e = c.sortedEdges
		for e.NextInSEL != nil {
			eNext := e.NextInSEL
			if e.Curr.X > eNext.Curr.X {
				pt := intersectPoint(e, eNext)
				if pt.Y < topY {
					pt = IntPoint{X: topX(e, topY), Y: topY}
				}
				c.intersectList = append(c.intersectList,
					&intersectNode{edge1: e, edge2: eNext, pt: pt})
				c.swapPositionsInSEL(e, eNext)
				isModified = true
			} else {
				e = eNext
			}
		}
		if e.PrevInSEL != nil {
			e.PrevInSEL.NextInSEL = nil
		} else {
			break
		}
	}
	c.sortedEdges = nil
}

func edgesAdjacent(inode *intersectNode) bool {
	return inode.edge1.NextInSEL == inode.edge2 ||
		inode.edge1.PrevInSEL == inode.edge2
}

// fixupIntersectionOrder ensures intersections are made only between
// adjacent edges. Intersections are sorted bottom-most first, but
// the order in which they were found may still need adjusting.
func (c *Clipper) fixupIntersectionOrder() bool {
	sort.SliceStable(c.intersectList, func(i, j int) bool {
		return c.intersectList[i].pt.Y > c.intersectList[j].pt.Y
	})

	c.copyAELToSEL()
	cnt := len(c.intersectList)
	for i := 0; i < cnt; i++ {
		if !edgesAdjacent(c.intersectList[i]) {
			j := i + 1
			for j < cnt && !edgesAdjacent(c.intersectList[j]) {
				j++
			}
			if j == cnt {
				return false
			}
			c.intersectList[i], c.intersectList[j] = c.intersectList[j], c.intersectList[i]
		}
		c.swapPositionsInSEL(c.intersectList[i].edge1, c.intersectList[i].edge2)
	}
	return true
}

func (c *Clipper) processIntersectList() {
	for _, iNode := range c.intersectList {
		c.intersectEdges(iNode.edge1, iNode.edge2, iNode.pt)
		c.swapPositionsInAEL(iNode.edge1, iNode.edge2)
	}
	c.intersectList = c.intersectList[:0]
}

// intersectPoint computes where two edges cross. With very large
// coordinate values it's possible for slopesEqual to return false but
// for the Dx values to be equal due to double precision rounding, so
// equal Dx gets a dedicated path.
func intersectPoint(edge1, edge2 *TEdge) IntPoint {
	var ip IntPoint
	if edge1.Dx == edge2.Dx {
		ip.Y = edge1.Curr.Y
		ip.X = topX(edge1, ip.Y)
		return ip
	}

	if edge1.Delta.X == 0 {
		ip.X = edge1.Bot.X
		if isHorizontal(edge2) {
			ip.Y = edge2.Bot.Y
		} else {
			b2 := float64(edge2.Bot.Y) - float64(edge2.Bot.X)/edge2.Dx
			ip.Y = round(float64(ip.X)/edge2.Dx + b2)
		}
	} else if edge2.Delta.X == 0 {
		ip.X = edge2.Bot.X
		if isHorizontal(edge1) {
			ip.Y = edge1.Bot.Y
		} else {
			b1 := float64(edge1.Bot.Y) - float64(edge1.Bot.X)/edge1.Dx
			ip.Y = round(float64(ip.X)/edge1.Dx + b1)
		}
	} else {
		b1 := float64(edge1.Bot.X) - float64(edge1.Bot.Y)*edge1.Dx
		b2 := float64(edge2.Bot.X) - float64(edge2.Bot.Y)*edge2.Dx
		q := (b2 - b1) / (edge1.Dx - edge2.Dx)
		ip.Y = round(q)
		if math.Abs(edge1.Dx) < math.Abs(edge2.Dx) {
			ip.X = round(edge1.Dx*q + b1)
		} else {
			ip.X = round(edge2.Dx*q + b2)
		}
	}

	if ip.Y < edge1.Top.Y || ip.Y < edge2.Top.Y {
		if edge1.Top.Y > edge2.Top.Y {
			ip.Y = edge1.Top.Y
		} else {
			ip.Y = edge2.Top.Y
		}
		if math.Abs(edge1.Dx) < math.Abs(edge2.Dx) {
			ip.X = topX(edge1, ip.Y)
		} else {
			ip.X = topX(edge2, ip.Y)
		}
	}
	// finally, don't allow ip to be BELOW Curr.Y (ie bottom of
	// scanbeam)
	if ip.Y > edge1.Curr.Y {
		ip.Y = edge1.Curr.Y
		// better to use the more vertical edge to derive a new x
		if math.Abs(edge1.Dx) > math.Abs(edge2.Dx) {
			ip.X = topX(edge2, ip.Y)
		} else {
			ip.X = topX(edge1, ip.Y)
		}
	}
	return ip
}

func (c *Clipper) processEdgesAtTopOfScanbeam(topY cInt) error {
	e := c.activeEdges
	for e != nil {
		// 1. process maxima, treating them as if they're 'bent'
		// horizontal edges, but exclude maxima with horizontal edges.
		// nb: e can't be a horizontal here.
		isMaximaEdge := isMaxima(e, topY)
		if isMaximaEdge {
			eMaxPair := getMaximaPairEx(e)
			isMaximaEdge = eMaxPair == nil || !isHorizontal(eMaxPair)
		}

		if isMaximaEdge {
			if c.StrictlySimple {
				c.insertMaxima(e.Top.X)
			}
			ePrev := e.PrevInAEL
			if err := c.doMaxima(e); err != nil {
				return err
			}
			if ePrev == nil {
				e = c.activeEdges
			} else {
				e = ePrev.NextInAEL
			}
		} else {
			// 2. promote horizontal edges, otherwise update Curr.X
			// and Curr.Y
			if isIntermediate(e, topY) && isHorizontal(e.NextInLML) {
				var err error
				e, err = c.updateEdgeIntoAEL(e)
				if err != nil {
					return err
				}
				if e.OutIdx >= 0 {
					c.addOutPt(e, e.Bot)
				}
				c.addEdgeToSEL(e)
			} else {
				e.Curr.X = topX(e, topY)
				e.Curr.Y = topY
			}

			// when StrictlySimple and e is being touched by another
			// edge, make sure both edges have a vertex here
			if c.StrictlySimple {
				ePrev := e.PrevInAEL
				if e.OutIdx >= 0 && ePrev != nil && ePrev.OutIdx >= 0 &&
					ePrev.Curr.X == e.Curr.X {
					ip := e.Curr
					c.setZ(&ip, ePrev, e)
					op := c.addOutPt(ePrev, ip)
					op2 := c.addOutPt(e, ip)
					c.addJoin(op, op2, ip) // strictly simple join
				}
			}

			e = e.NextInAEL
		}
	}

	// 3. process horizontals at the top of the scanbeam
	if err := c.processHorizontals(); err != nil {
		return err
	}
	c.maxima = nil

	// 4. promote intermediate vertices
	e = c.activeEdges
	for e != nil {
		if isIntermediate(e, topY) {
			var op *outPt
			if e.OutIdx >= 0 {
				op = c.addOutPt(e, e.Top)
			}
			var err error
			e, err = c.updateEdgeIntoAEL(e)
			if err != nil {
				return err
			}

			// if output polygons share an edge, they'll need joining
			// later
			ePrev := e.PrevInAEL
			eNext := e.NextInAEL
			if ePrev != nil && ePrev.Curr.X == e.Bot.X &&
				ePrev.Curr.Y == e.Bot.Y && op != nil &&
				ePrev.OutIdx >= 0 && ePrev.Curr.Y > ePrev.Top.Y &&
				slopesEqual4(e.Curr, e.Top, ePrev.Curr, ePrev.Top, c.useFullRange) {
				op2 := c.addOutPt(ePrev, e.Bot)
				c.addJoin(op, op2, e.Top)
			} else if eNext != nil && eNext.Curr.X == e.Bot.X &&
				eNext.Curr.Y == e.Bot.Y && op != nil &&
				eNext.OutIdx >= 0 && eNext.Curr.Y > eNext.Top.Y &&
				slopesEqual4(e.Curr, e.Top, eNext.Curr, eNext.Top, c.useFullRange) {
				op2 := c.addOutPt(eNext, e.Bot)
				c.addJoin(op, op2, e.Top)
			}
		}
		e = e.NextInAEL
	}
	return nil
}

func (c *Clipper) doMaxima(e *TEdge) error {
	eMaxPair := getMaximaPairEx(e)
	if eMaxPair == nil {
		if e.OutIdx >= 0 {
			c.addOutPt(e, e.Top)
		}
		c.deleteFromAEL(e)
		return nil
	}

	eNext := e.NextInAEL
	for eNext != nil && eNext != eMaxPair {
		c.intersectEdges(e, eNext, e.Top)
		c.swapPositionsInAEL(e, eNext)
		eNext = e.NextInAEL
	}

	if e.OutIdx == unassigned && eMaxPair.OutIdx == unassigned {
		c.deleteFromAEL(e)
		c.deleteFromAEL(eMaxPair)
		return nil
	}
	if e.OutIdx >= 0 && eMaxPair.OutIdx >= 0 {
		c.addLocalMaxPoly(e, eMaxPair, e.Top)
		c.deleteFromAEL(e)
		c.deleteFromAEL(eMaxPair)
		return nil
	}
	return errDoMaxima
}
