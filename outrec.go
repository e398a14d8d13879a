package clipper

import "math"

func (c *Clipper) createOutRec() *outRec {
	result := &outRec{idx: unassigned}
	c.polyOuts = append(c.polyOuts, result)
	result.idx = len(c.polyOuts) - 1
	return result
}

// getOutRec chases merged ring indexes to the ring that now owns
// them. appendPolygon leaves the absorbed ring's idx pointing at the
// survivor.
func (c *Clipper) getOutRec(idx int) *outRec {
	outrec := c.polyOuts[idx]
	for outrec != c.polyOuts[outrec.idx] {
		outrec = c.polyOuts[outrec.idx]
	}
	return outrec
}

func (c *Clipper) disposeAllPolyPts() {
	c.polyOuts = c.polyOuts[:0]
}

func (c *Clipper) addLocalMinPoly(e1, e2 *TEdge, pt IntPoint) *outPt {
	var result *outPt
	var e, prevE *TEdge
	if isHorizontal(e2) || e1.Dx > e2.Dx {
		result = c.addOutPt(e1, pt)
		e2.OutIdx = e1.OutIdx
		e1.Side = leftEdge
		e2.Side = rightEdge
		e = e1
		if e.PrevInAEL == e2 {
			prevE = e2.PrevInAEL
		} else {
			prevE = e.PrevInAEL
		}
	} else {
		result = c.addOutPt(e2, pt)
		e1.OutIdx = e2.OutIdx
		e1.Side = rightEdge
		e2.Side = leftEdge
		e = e2
		if e.PrevInAEL == e1 {
			prevE = e1.PrevInAEL
		} else {
			prevE = e.PrevInAEL
		}
	}

	if prevE != nil && prevE.OutIdx >= 0 && prevE.Top.Y < pt.Y && e.Top.Y < pt.Y {
		xPrev := topX(prevE, pt.Y)
		xE := topX(e, pt.Y)
		if xPrev == xE &&
			slopesEqual4(IntPoint{X: xPrev, Y: pt.Y}, prevE.Top,
				IntPoint{X: xE, Y: pt.Y}, e.Top, c.useFullRange) {
			op := c.addOutPt(prevE, pt)
			c.addJoin(result, op, e.Top)
		}
	}
	return result
}

func (c *Clipper) addLocalMaxPoly(e1, e2 *TEdge, pt IntPoint) {
	c.addOutPt(e1, pt)
	if e1.OutIdx == e2.OutIdx {
		e1.OutIdx = unassigned
		e2.OutIdx = unassigned
	} else if e1.OutIdx < e2.OutIdx {
		c.appendPolygon(e1, e2)
	} else {
		c.appendPolygon(e2, e1)
	}
}

func (c *Clipper) addOutPt(e *TEdge, pt IntPoint) *outPt {
	if e.OutIdx < 0 {
		outRec := c.createOutRec()
		newOp := &outPt{idx: outRec.idx, pt: pt}
		outRec.pts = newOp
		newOp.next = newOp
		newOp.prev = newOp
		c.setHoleState(e, outRec)
		e.OutIdx = outRec.idx
		return newOp
	}

	outRec := c.polyOuts[e.OutIdx]
	// outRec.pts is the 'left-most' point, outRec.pts.prev the
	// 'right-most'
	op := outRec.pts
	toFront := e.Side == leftEdge
	if toFront && pointsEqual(pt, op.pt) {
		return op
	} else if !toFront && pointsEqual(pt, op.prev.pt) {
		return op.prev
	}

	newOp := &outPt{idx: outRec.idx, pt: pt, next: op, prev: op.prev}
	newOp.prev.next = newOp
	op.prev = newOp
	if toFront {
		outRec.pts = newOp
	}
	return newOp
}

func (c *Clipper) getLastOutPt(e *TEdge) *outPt {
	outRec := c.polyOuts[e.OutIdx]
	if e.Side == leftEdge {
		return outRec.pts
	}
	return outRec.pts.prev
}

// setHoleState decides whether a new ring is a hole by scanning the
// AEL to its left. Contributing edges occur in pairs for each ring
// crossed, so an unpaired edge means the ring starts inside another.
func (c *Clipper) setHoleState(e *TEdge, outRec *outRec) {
	e2 := e.PrevInAEL
	var eTmp *TEdge
	for e2 != nil {
		if e2.OutIdx >= 0 {
			if eTmp == nil {
				eTmp = e2
			} else if eTmp.OutIdx == e2.OutIdx {
				eTmp = nil // paired
			}
		}
		e2 = e2.PrevInAEL
	}
	if eTmp == nil {
		outRec.firstLeft = nil
		outRec.isHole = false
	} else {
		outRec.firstLeft = c.polyOuts[eTmp.OutIdx]
		outRec.isHole = !outRec.firstLeft.isHole
	}
}

func getDx(pt1, pt2 IntPoint) float64 {
	if pt1.Y == pt2.Y {
		return horizontal
	}
	return float64(pt2.X-pt1.X) / float64(pt2.Y-pt1.Y)
}

func firstIsBottomPt(btmPt1, btmPt2 *outPt) bool {
	p := btmPt1.prev
	for pointsEqual(p.pt, btmPt1.pt) && p != btmPt1 {
		p = p.prev
	}
	dx1p := math.Abs(getDx(btmPt1.pt, p.pt))
	p = btmPt1.next
	for pointsEqual(p.pt, btmPt1.pt) && p != btmPt1 {
		p = p.next
	}
	dx1n := math.Abs(getDx(btmPt1.pt, p.pt))

	p = btmPt2.prev
	for pointsEqual(p.pt, btmPt2.pt) && p != btmPt2 {
		p = p.prev
	}
	dx2p := math.Abs(getDx(btmPt2.pt, p.pt))
	p = btmPt2.next
	for pointsEqual(p.pt, btmPt2.pt) && p != btmPt2 {
		p = p.next
	}
	dx2n := math.Abs(getDx(btmPt2.pt, p.pt))

	if math.Max(dx1p, dx1n) == math.Max(dx2p, dx2n) &&
		math.Min(dx1p, dx1n) == math.Min(dx2p, dx2n) {
		return areaOutPt(btmPt1) > 0 // if otherwise identical use orientation
	}
	return (dx1p >= dx2p && dx1p >= dx2n) || (dx1n >= dx2p && dx1n >= dx2n)
}

func getBottomPt(pp *outPt) *outPt {
	var dups *outPt
	p := pp.next
	for p != pp {
		if p.pt.Y > pp.pt.Y {
			pp = p
			dups = nil
		} else if p.pt.Y == pp.pt.Y && p.pt.X <= pp.pt.X {
			if p.pt.X < pp.pt.X {
				dups = nil
				pp = p
			} else if p.next != pp && p.prev != pp {
				dups = p
			}
		}
		p = p.next
	}
	if dups != nil {
		// there appear to be at least 2 vertices at bottomPt
		for dups != p {
			if !firstIsBottomPt(p, dups) {
				pp = dups
			}
			dups = dups.next
			for !pointsEqual(dups.pt, pp.pt) {
				dups = dups.next
			}
		}
	}
	return pp
}

// getLowermostRec works out which ring fragment has the correct hole
// state when two fragments are appended.
func getLowermostRec(outRec1, outRec2 *outRec) *outRec {
	if outRec1.bottomPt == nil {
		outRec1.bottomPt = getBottomPt(outRec1.pts)
	}
	if outRec2.bottomPt == nil {
		outRec2.bottomPt = getBottomPt(outRec2.pts)
	}
	bPt1 := outRec1.bottomPt
	bPt2 := outRec2.bottomPt
	switch {
	case bPt1.pt.Y > bPt2.pt.Y:
		return outRec1
	case bPt1.pt.Y < bPt2.pt.Y:
		return outRec2
	case bPt1.pt.X < bPt2.pt.X:
		return outRec1
	case bPt1.pt.X > bPt2.pt.X:
		return outRec2
	case bPt1.next == bPt1:
		return outRec2
	case bPt2.next == bPt2:
		return outRec1
	case firstIsBottomPt(bPt1, bPt2):
		return outRec1
	default:
		return outRec2
	}
}

func outRec1RightOfOutRec2(outRec1, outRec2 *outRec) bool {
	for {
		outRec1 = outRec1.firstLeft
		if outRec1 == outRec2 {
			return true
		}
		if outRec1 == nil {
			return false
		}
	}
}

// appendPolygon joins e2's ring onto e1's ring and drops all
// references to e2's ring.
func (c *Clipper) appendPolygon(e1, e2 *TEdge) {
	outRec1 := c.polyOuts[e1.OutIdx]
	outRec2 := c.polyOuts[e2.OutIdx]

	var holeStateRec *outRec
	if outRec1RightOfOutRec2(outRec1, outRec2) {
		holeStateRec = outRec2
	} else if outRec1RightOfOutRec2(outRec2, outRec1) {
		holeStateRec = outRec1
	} else {
		holeStateRec = getLowermostRec(outRec1, outRec2)
	}

	p1Lft := outRec1.pts
	p1Rt := p1Lft.prev
	p2Lft := outRec2.pts
	p2Rt := p2Lft.prev

	if e1.Side == leftEdge {
		if e2.Side == leftEdge {
			// z y x a b c
			reversePolyPtLinks(p2Lft)
			p2Lft.next = p1Lft
			p1Lft.prev = p2Lft
			p1Rt.next = p2Rt
			p2Rt.prev = p1Rt
			outRec1.pts = p2Rt
		} else {
			// x y z a b c
			p2Rt.next = p1Lft
			p1Lft.prev = p2Rt
			p2Lft.prev = p1Rt
			p1Rt.next = p2Lft
			outRec1.pts = p2Lft
		}
	} else {
		if e2.Side == rightEdge {
			// a b c z y x
			reversePolyPtLinks(p2Lft)
			p1Rt.next = p2Rt
			p2Rt.prev = p1Rt
			p2Lft.next = p1Lft
			p1Lft.prev = p2Lft
		} else {
			// a b c x y z
			p1Rt.next = p2Lft
			p2Lft.prev = p1Rt
			p1Lft.prev = p2Rt
			p2Rt.next = p1Lft
		}
	}

	outRec1.bottomPt = nil
	if holeStateRec == outRec2 {
		if outRec2.firstLeft != outRec1 {
			outRec1.firstLeft = outRec2.firstLeft
		}
		outRec1.isHole = outRec2.isHole
	}
	outRec2.pts = nil
	outRec2.bottomPt = nil
	outRec2.firstLeft = outRec1

	okIdx := e1.OutIdx
	obsoleteIdx := e2.OutIdx

	// safe because we only get here via addLocalMaxPoly
	e1.OutIdx = unassigned
	e2.OutIdx = unassigned

	e := c.activeEdges
	for e != nil {
		if e.OutIdx == obsoleteIdx {
			e.OutIdx = okIdx
			e.Side = e1.Side
			break
		}
		e = e.NextInAEL
	}
	outRec2.idx = outRec1.idx
}

func reversePolyPtLinks(pp *outPt) {
	if pp == nil {
		return
	}
	pp1 := pp
	for {
		pp2 := pp1.next
		pp1.next = pp1.prev
		pp1.prev = pp2
		pp1 = pp2
		if pp1 == pp {
			break
		}
	}
}

func pointCount(pts *outPt) int {
	if pts == nil {
		return 0
	}
	result := 0
	p := pts
	for {
		result++
		p = p.next
		if p == pts {
			break
		}
	}
	return result
}

func (c *Clipper) buildResult() Paths {
	result := make(Paths, 0, len(c.polyOuts))
	for _, outRec := range c.polyOuts {
		if outRec.pts == nil {
			continue
		}
		p := outRec.pts.prev
		cnt := pointCount(p)
		if cnt < 2 {
			continue
		}
		pg := make(Path, 0, cnt)
		for j := 0; j < cnt; j++ {
			pt := p.pt
			pg = append(pg, &pt)
			p = p.prev
		}
		result = append(result, pg)
	}
	return result
}

func (c *Clipper) buildResult2(polytree *PolyTree) {
	polytree.Clear()

	// add each output ring to the polytree
	for _, outRec := range c.polyOuts {
		cnt := pointCount(outRec.pts)
		if cnt < 3 {
			continue
		}
		c.fixHoleLinkage(outRec)
		pn := new(PolyNode)
		polytree.allPolys = append(polytree.allPolys, pn)
		outRec.polyNode = pn
		pn.Contour = make(Path, 0, cnt)
		op := outRec.pts.prev
		for j := 0; j < cnt; j++ {
			pt := op.pt
			pn.Contour = append(pn.Contour, &pt)
			op = op.prev
		}
	}

	// fixup PolyNode links
	for _, outRec := range c.polyOuts {
		if outRec.polyNode == nil {
			continue
		}
		if outRec.firstLeft != nil && outRec.firstLeft.polyNode != nil {
			outRec.firstLeft.polyNode.addChild(outRec.polyNode)
		} else {
			polytree.addChild(outRec.polyNode)
		}
	}
}

// fixHoleLinkage skips firstLeft past rings that were emptied by
// merging, and past rings with the same hole state, so holes link
// directly to their true container.
func (c *Clipper) fixHoleLinkage(outRec *outRec) {
	// skip if an outermost polygon or if it already points to the
	// correct firstLeft
	if outRec.firstLeft == nil ||
		(outRec.isHole != outRec.firstLeft.isHole && outRec.firstLeft.pts != nil) {
		return
	}
	orfl := outRec.firstLeft
	for orfl != nil && (orfl.isHole == outRec.isHole || orfl.pts == nil) {
		orfl = orfl.firstLeft
	}
	outRec.firstLeft = orfl
}

// fixupOutPolygon removes duplicate points and simplifies consecutive
// parallel edges by removing the middle vertex.
func (c *Clipper) fixupOutPolygon(outRec *outRec) {
	var lastOK *outPt
	outRec.bottomPt = nil
	pp := outRec.pts
	preserveCol := c.PreserveCollinear || c.StrictlySimple
	for {
		if pp.prev == pp || pp.prev == pp.next {
			outRec.pts = nil
			return
		}
		if pointsEqual(pp.pt, pp.next.pt) || pointsEqual(pp.pt, pp.prev.pt) ||
			(slopesEqual3(pp.prev.pt, pp.pt, pp.next.pt, c.useFullRange) &&
				(!preserveCol || !pt2IsBetweenPt1AndPt3(pp.prev.pt, pp.pt, pp.next.pt))) {
			lastOK = nil
			pp.prev.next = pp.next
			pp.next.prev = pp.prev
			pp = pp.prev
		} else if pp == lastOK {
			break
		} else {
			if lastOK == nil {
				lastOK = pp
			}
			pp = pp.next
		}
	}
	outRec.pts = pp
}

func dupOutPt(op *outPt, insertAfter bool) *outPt {
	result := &outPt{pt: op.pt, idx: op.idx}
	if insertAfter {
		result.next = op.next
		result.prev = op
		op.next.prev = result
		op.next = result
	} else {
		result.prev = op.prev
		result.next = op
		op.prev.next = result
		op.prev = result
	}
	return result
}

func minCInt(a, b cInt) cInt {
	if a < b {
		return a
	}
	return b
}

func maxCInt(a, b cInt) cInt {
	if a > b {
		return a
	}
	return b
}

func getOverlap(a1, a2, b1, b2 cInt) (left, right cInt, ok bool) {
	if a1 < a2 {
		if b1 < b2 {
			left, right = maxCInt(a1, b1), minCInt(a2, b2)
		} else {
			left, right = maxCInt(a1, b2), minCInt(a2, b1)
		}
	} else {
		if b1 < b2 {
			left, right = maxCInt(a2, b1), minCInt(a1, b2)
		} else {
			left, right = maxCInt(a2, b2), minCInt(a1, b1)
		}
	}
	return left, right, left < right
}

func joinHorz(op1, op1b, op2, op2b *outPt, pt IntPoint, discardLeft bool) bool {
	var dir1, dir2 direction
	if op1.pt.X > op1b.pt.X {
		dir1 = rightToLeft
	} else {
		dir1 = leftToRight
	}
	if op2.pt.X > op2b.pt.X {
		dir2 = rightToLeft
	} else {
		dir2 = leftToRight
	}
	if dir1 == dir2 {
		return false
	}

	// When discardLeft, we want op1b to be on the left of op1,
	// otherwise on the right; likewise op2b with op2. So while
	// inserting op1b: when discardLeft make sure we're AT or RIGHT of
	// pt before adding it, otherwise AT or LEFT of pt.
	if dir1 == leftToRight {
		for op1.next.pt.X <= pt.X &&
			op1.next.pt.X >= op1.pt.X && op1.next.pt.Y == pt.Y {
			op1 = op1.next
		}
		if discardLeft && op1.pt.X != pt.X {
			op1 = op1.next
		}
		op1b = dupOutPt(op1, !discardLeft)
		if !pointsEqual(op1b.pt, pt) {
			op1 = op1b
			op1.pt = pt
			op1b = dupOutPt(op1, !discardLeft)
		}
	} else {
		for op1.next.pt.X >= pt.X &&
			op1.next.pt.X <= op1.pt.X && op1.next.pt.Y == pt.Y {
			op1 = op1.next
		}
		if !discardLeft && op1.pt.X != pt.X {
			op1 = op1.next
		}
		op1b = dupOutPt(op1, discardLeft)
		if !pointsEqual(op1b.pt, pt) {
			op1 = op1b
			op1.pt = pt
			op1b = dupOutPt(op1, discardLeft)
		}
	}

	if dir2 == leftToRight {
		for op2.next.pt.X <= pt.X &&
			op2.next.pt.X >= op2.pt.X && op2.next.pt.Y == pt.Y {
			op2 = op2.next
		}
		if discardLeft && op2.pt.X != pt.X {
			op2 = op2.next
		}
		op2b = dupOutPt(op2, !discardLeft)
		if !pointsEqual(op2b.pt, pt) {
			op2 = op2b
			op2.pt = pt
			op2b = dupOutPt(op2, !discardLeft)
		}
	} else {
		for op2.next.pt.X >= pt.X &&
			op2.next.pt.X <= op2.pt.X && op2.next.pt.Y == pt.Y {
			op2 = op2.next
		}
		if !discardLeft && op2.pt.X != pt.X {
			op2 = op2.next
		}
		op2b = dupOutPt(op2, discardLeft)
		if !pointsEqual(op2b.pt, pt) {
			op2 = op2b
			op2.pt = pt
			op2b = dupOutPt(op2, discardLeft)
		}
	}

	if (dir1 == leftToRight) == discardLeft {
		op1.prev = op2
		op2.next = op1
		op1b.next = op2b
		op2b.prev = op1b
	} else {
		op1.next = op2
		op2.prev = op1
		op1b.prev = op2b
		op2b.next = op1b
	}
	return true
}

// joinPoints links two output rings (or two runs of one ring) along a
// shared edge. There are three kinds of join: horizontal joins where
// the two points lie anywhere along collinear horizontal edges,
// non-horizontal joins where both points sit at the bottom of the
// overlapping segment with offPt above, and strictly-simple joins
// where edges touch without being collinear and both points and offPt
// coincide.
func (c *Clipper) joinPoints(j *join, outRec1, outRec2 *outRec) bool {
	op1 := j.outPt1
	op2 := j.outPt2
	var op1b, op2b *outPt

	isHorizontalJoin := j.outPt1.pt.Y == j.offPt.Y

	if isHorizontalJoin && pointsEqual(j.offPt, j.outPt1.pt) &&
		pointsEqual(j.offPt, j.outPt2.pt) {
		// strictly simple join
		if outRec1 != outRec2 {
			return false
		}
		op1b = j.outPt1.next
		for op1b != op1 && pointsEqual(op1b.pt, j.offPt) {
			op1b = op1b.next
		}
		reverse1 := op1b.pt.Y > j.offPt.Y
		op2b = j.outPt2.next
		for op2b != op2 && pointsEqual(op2b.pt, j.offPt) {
			op2b = op2b.next
		}
		reverse2 := op2b.pt.Y > j.offPt.Y
		if reverse1 == reverse2 {
			return false
		}
		if reverse1 {
			op1b = dupOutPt(op1, false)
			op2b = dupOutPt(op2, true)
			op1.prev = op2
			op2.next = op1
			op1b.next = op2b
			op2b.prev = op1b
		} else {
			op1b = dupOutPt(op1, true)
			op2b = dupOutPt(op2, false)
			op1.next = op2
			op2.prev = op1
			op1b.prev = op2b
			op2b.next = op1b
		}
		j.outPt1 = op1
		j.outPt2 = op1b
		return true
	} else if isHorizontalJoin {
		// treat horizontal joins differently to non-horizontal joins
		// since with them we're not yet sure where the overlap is:
		// outPt1 and outPt2 may be anywhere along the horizontal edge
		op1b = op1
		for op1.prev.pt.Y == op1.pt.Y && op1.prev != op1b && op1.prev != op2 {
			op1 = op1.prev
		}
		for op1b.next.pt.Y == op1b.pt.Y && op1b.next != op1 && op1b.next != op2 {
			op1b = op1b.next
		}
		if op1b.next == op1 || op1b.next == op2 {
			return false // a flat 'polygon'
		}

		op2b = op2
		for op2.prev.pt.Y == op2.pt.Y && op2.prev != op2b && op2.prev != op1b {
			op2 = op2.prev
		}
		for op2b.next.pt.Y == op2b.pt.Y && op2b.next != op2 && op2b.next != op1 {
			op2b = op2b.next
		}
		if op2b.next == op2 || op2b.next == op1 {
			return false // a flat 'polygon'
		}

		// op1-op1b and op2-op2b are the extremities of the horizontal
		// edges
		left, right, ok := getOverlap(op1.pt.X, op1b.pt.X, op2.pt.X, op2b.pt.X)
		if !ok {
			return false
		}

		// When overlapping edges are joined a spike is created that
		// needs cleaning up; don't let op1 or op2 get caught on the
		// discarded side as either may still be needed for other
		// joins.
		var pt IntPoint
		var discardLeftSide bool
		if op1.pt.X >= left && op1.pt.X <= right {
			pt = op1.pt
			discardLeftSide = op1.pt.X > op1b.pt.X
		} else if op2.pt.X >= left && op2.pt.X <= right {
			pt = op2.pt
			discardLeftSide = op2.pt.X > op2b.pt.X
		} else if op1b.pt.X >= left && op1b.pt.X <= right {
			pt = op1b.pt
			discardLeftSide = op1b.pt.X > op1.pt.X
		} else {
			pt = op2b.pt
			discardLeftSide = op2b.pt.X > op2.pt.X
		}
		j.outPt1 = op1
		j.outPt2 = op2
		return joinHorz(op1, op1b, op2, op2b, pt, discardLeftSide)
	}

	// non-horizontal joins: outPt1.pt.Y == outPt2.pt.Y and both are
	// below offPt. Make sure the rings are correctly oriented first.
	op1b = op1.next
	for pointsEqual(op1b.pt, op1.pt) && op1b != op1 {
		op1b = op1b.next
	}
	reverse1 := op1b.pt.Y > op1.pt.Y ||
		!slopesEqual3(op1.pt, op1b.pt, j.offPt, c.useFullRange)
	if reverse1 {
		op1b = op1.prev
		for pointsEqual(op1b.pt, op1.pt) && op1b != op1 {
			op1b = op1b.prev
		}
		if op1b.pt.Y > op1.pt.Y ||
			!slopesEqual3(op1.pt, op1b.pt, j.offPt, c.useFullRange) {
			return false
		}
	}
	op2b = op2.next
	for pointsEqual(op2b.pt, op2.pt) && op2b != op2 {
		op2b = op2b.next
	}
	reverse2 := op2b.pt.Y > op2.pt.Y ||
		!slopesEqual3(op2.pt, op2b.pt, j.offPt, c.useFullRange)
	if reverse2 {
		op2b = op2.prev
		for pointsEqual(op2b.pt, op2.pt) && op2b != op2 {
			op2b = op2b.prev
		}
		if op2b.pt.Y > op2.pt.Y ||
			!slopesEqual3(op2.pt, op2b.pt, j.offPt, c.useFullRange) {
			return false
		}
	}

	if op1b == op1 || op2b == op2 || op1b == op2b ||
		(outRec1 == outRec2 && reverse1 == reverse2) {
		return false
	}

	if reverse1 {
		op1b = dupOutPt(op1, false)
		op2b = dupOutPt(op2, true)
		op1.prev = op2
		op2.next = op1
		op1b.next = op2b
		op2b.prev = op1b
	} else {
		op1b = dupOutPt(op1, true)
		op2b = dupOutPt(op2, false)
		op1.next = op2
		op2.prev = op1
		op1b.prev = op2b
		op2b.next = op1b
	}
	j.outPt1 = op1
	j.outPt2 = op1b
	return true
}

func (c *Clipper) joinCommonEdges() {
	for i := 0; i < len(c.joins); i++ {
		j := c.joins[i]

		outRec1 := c.getOutRec(j.outPt1.idx)
		outRec2 := c.getOutRec(j.outPt2.idx)

		if outRec1.pts == nil || outRec2.pts == nil {
			continue
		}

		// get the ring fragment with the correct hole state
		// (firstLeft) before calling joinPoints
		var holeStateRec *outRec
		if outRec1 == outRec2 {
			holeStateRec = outRec1
		} else if outRec1RightOfOutRec2(outRec1, outRec2) {
			holeStateRec = outRec2
		} else if outRec1RightOfOutRec2(outRec2, outRec1) {
			holeStateRec = outRec1
		} else {
			holeStateRec = getLowermostRec(outRec1, outRec2)
		}

		if !c.joinPoints(j, outRec1, outRec2) {
			continue
		}

		if outRec1 == outRec2 {
			// instead of joining two rings, we've just created a new
			// one by splitting one ring into two
			outRec1.pts = j.outPt1
			outRec1.bottomPt = nil
			outRec2 = c.createOutRec()
			outRec2.pts = j.outPt2

			updateOutPtIdxs(outRec2)

			if poly2ContainsPoly1(outRec2.pts, outRec1.pts) {
				// outRec1 contains outRec2
				outRec2.isHole = !outRec1.isHole
				outRec2.firstLeft = outRec1

				if c.usingPolyTree {
					c.fixupFirstLefts2(outRec2, outRec1)
				}
				if (outRec2.isHole != c.ReverseSolution) == (c.areaOutRec(outRec2) > 0) {
					reversePolyPtLinks(outRec2.pts)
				}
			} else if poly2ContainsPoly1(outRec1.pts, outRec2.pts) {
				// outRec2 contains outRec1
				outRec2.isHole = outRec1.isHole
				outRec1.isHole = !outRec2.isHole
				outRec2.firstLeft = outRec1.firstLeft
				outRec1.firstLeft = outRec2

				if c.usingPolyTree {
					c.fixupFirstLefts2(outRec1, outRec2)
				}
				if (outRec1.isHole != c.ReverseSolution) == (c.areaOutRec(outRec1) > 0) {
					reversePolyPtLinks(outRec1.pts)
				}
			} else {
				// the 2 rings are completely separate
				outRec2.isHole = outRec1.isHole
				outRec2.firstLeft = outRec1.firstLeft

				// fixup firstLeft pointers that may need reassigning
				// to outRec2
				if c.usingPolyTree {
					c.fixupFirstLefts1(outRec1, outRec2)
				}
			}
		} else {
			// joined 2 rings together
			outRec2.pts = nil
			outRec2.bottomPt = nil
			outRec2.idx = outRec1.idx

			outRec1.isHole = holeStateRec.isHole
			if holeStateRec == outRec2 {
				outRec1.firstLeft = outRec2.firstLeft
			}
			outRec2.firstLeft = outRec1

			if c.usingPolyTree {
				c.fixupFirstLefts3(outRec2, outRec1)
			}
		}
	}
}

func updateOutPtIdxs(outrec *outRec) {
	op := outrec.pts
	for {
		op.idx = outrec.idx
		op = op.prev
		if op == outrec.pts {
			break
		}
	}
}

func parseFirstLeft(firstLeft *outRec) *outRec {
	for firstLeft != nil && firstLeft.pts == nil {
		firstLeft = firstLeft.firstLeft
	}
	return firstLeft
}

// fixupFirstLefts1 tests whether newOutRec contains each ring before
// reassigning its firstLeft.
func (c *Clipper) fixupFirstLefts1(oldOutRec, newOutRec *outRec) {
	for _, outRec := range c.polyOuts {
		firstLeft := parseFirstLeft(outRec.firstLeft)
		if outRec.pts != nil && firstLeft == oldOutRec {
			if poly2ContainsPoly1(outRec.pts, newOutRec.pts) {
				outRec.firstLeft = newOutRec
			}
		}
	}
}

// fixupFirstLefts2 handles a ring splitting in two such that one half
// is now the inner of the other. The halves may now wrap around other
// rings, so every ring contained by the outer's firstLeft container
// (including nil) is rechecked against the new inner ring.
func (c *Clipper) fixupFirstLefts2(innerOutRec, outerOutRec *outRec) {
	orfl := outerOutRec.firstLeft
	for _, outRec := range c.polyOuts {
		if outRec.pts == nil || outRec == outerOutRec || outRec == innerOutRec {
			continue
		}
		firstLeft := parseFirstLeft(outRec.firstLeft)
		if firstLeft != orfl && firstLeft != innerOutRec && firstLeft != outerOutRec {
			continue
		}
		if poly2ContainsPoly1(outRec.pts, innerOutRec.pts) {
			outRec.firstLeft = innerOutRec
		} else if poly2ContainsPoly1(outRec.pts, outerOutRec.pts) {
			outRec.firstLeft = outerOutRec
		} else if outRec.firstLeft == innerOutRec || outRec.firstLeft == outerOutRec {
			outRec.firstLeft = orfl
		}
	}
}

// fixupFirstLefts3 is the same as fixupFirstLefts1 but without the
// containment test.
func (c *Clipper) fixupFirstLefts3(oldOutRec, newOutRec *outRec) {
	for _, outRec := range c.polyOuts {
		firstLeft := parseFirstLeft(outRec.firstLeft)
		if outRec.pts != nil && firstLeft == oldOutRec {
			outRec.firstLeft = newOutRec
		}
	}
}

func poly2ContainsPoly1(outPt1, outPt2 *outPt) bool {
	op := outPt1
	for {
		// nb: pointInPolygonOutPt returns 0 if false, +1 if true, -1
		// if pt on polygon boundary
		res := pointInPolygonOutPt(op.pt, outPt2)
		if res >= 0 {
			return res > 0
		}
		op = op.next
		if op == outPt1 {
			break
		}
	}
	return true
}

// pointInPolygonOutPt returns 0 when pt is outside the ring, +1 when
// inside and -1 when on the boundary. It uses the crossing-count
// method of Hormann & Agathos, "The point in polygon problem for
// arbitrary polygons".
func pointInPolygonOutPt(pt IntPoint, op *outPt) int {
	result := 0
	startOp := op
	ptx, pty := pt.X, pt.Y
	poly0x, poly0y := op.pt.X, op.pt.Y
	for {
		op = op.next
		poly1x, poly1y := op.pt.X, op.pt.Y

		if poly1y == pty {
			if poly1x == ptx || (poly0y == pty &&
				((poly1x > ptx) == (poly0x < ptx))) {
				return -1
			}
		}
		if (poly0y < pty) != (poly1y < pty) {
			if poly0x >= ptx {
				if poly1x > ptx {
					result = 1 - result
				} else {
					d := float64(poly0x-ptx)*float64(poly1y-pty) -
						float64(poly1x-ptx)*float64(poly0y-pty)
					if d == 0 {
						return -1
					}
					if (d > 0) == (poly1y > poly0y) {
						result = 1 - result
					}
				}
			} else if poly1x > ptx {
				d := float64(poly0x-ptx)*float64(poly1y-pty) -
					float64(poly1x-ptx)*float64(poly0y-pty)
				if d == 0 {
					return -1
				}
				if (d > 0) == (poly1y > poly0y) {
					result = 1 - result
				}
			}
		}
		poly0x, poly0y = poly1x, poly1y
		if startOp == op {
			break
		}
	}
	return result
}

// doSimplePolygons splits any ring that touches itself at a vertex
// into separate simple rings.
func (c *Clipper) doSimplePolygons() {
	i := 0
	for i < len(c.polyOuts) {
		outrec := c.polyOuts[i]
		i++
		op := outrec.pts
		if op == nil {
			continue
		}
		for { // for each point in the ring until a duplicate is found
			op2 := op.next
			for op2 != outrec.pts {
				if pointsEqual(op.pt, op2.pt) && op2.next != op && op2.prev != op {
					// split the ring into two
					op3 := op.prev
					op4 := op2.prev
					op.prev = op4
					op4.next = op
					op2.prev = op3
					op3.next = op2

					outrec.pts = op
					outrec2 := c.createOutRec()
					outrec2.pts = op2
					updateOutPtIdxs(outrec2)
					if poly2ContainsPoly1(outrec2.pts, outrec.pts) {
						// outrec2 is contained by outrec
						outrec2.isHole = !outrec.isHole
						outrec2.firstLeft = outrec
						if c.usingPolyTree {
							c.fixupFirstLefts2(outrec2, outrec)
						}
					} else if poly2ContainsPoly1(outrec.pts, outrec2.pts) {
						// outrec is contained by outrec2
						outrec2.isHole = outrec.isHole
						outrec.isHole = !outrec2.isHole
						outrec2.firstLeft = outrec.firstLeft
						outrec.firstLeft = outrec2
						if c.usingPolyTree {
							c.fixupFirstLefts2(outrec, outrec2)
						}
					} else {
						// the 2 rings are separate
						outrec2.isHole = outrec.isHole
						outrec2.firstLeft = outrec.firstLeft
						if c.usingPolyTree {
							c.fixupFirstLefts1(outrec, outrec2)
						}
					}
					op2 = op // get ready for the next iteration
				}
				op2 = op2.next
			}
			op = op.next
			if op == outrec.pts {
				break
			}
		}
	}
}

func areaOutPt(op *outPt) float64 {
	if op == nil {
		return 0
	}
	opFirst := op
	a := 0.0
	for {
		a += float64(op.prev.pt.X+op.pt.X) * float64(op.prev.pt.Y-op.pt.Y)
		op = op.next
		if op == opFirst {
			break
		}
	}
	return a * 0.5
}

func (c *Clipper) areaOutRec(outRec *outRec) float64 {
	return areaOutPt(outRec.pts)
}
