package clipper

// Area returns the signed area of a path. With y increasing upward,
// counter-clockwise paths have positive area.
func Area(poly Path) float64 {
	cnt := len(poly)
	if cnt < 3 {
		return 0
	}
	a := 0.0
	for i, j := 0, cnt-1; i < cnt; i++ {
		a += (float64(poly[j].X) + float64(poly[i].X)) *
			(float64(poly[j].Y) - float64(poly[i].Y))
		j = i
	}
	return -a * 0.5
}

// AreaCombined returns the summed signed area of a set of paths, so
// holes subtract from the outer rings that contain them.
func AreaCombined(polys Paths) float64 {
	a := 0.0
	for _, p := range polys {
		a += Area(p)
	}
	return a
}

// Orientation reports whether a path winds counter-clockwise, which
// is the orientation Execute gives outer rings.
func Orientation(poly Path) bool {
	return Area(poly) >= 0
}

// PointInPolygon returns 0 when pt is outside path, +1 when inside
// and -1 when pt sits exactly on the boundary. The winding direction
// of path is irrelevant.
func PointInPolygon(pt IntPoint, path Path) int {
	result := 0
	cnt := len(path)
	if cnt < 3 {
		return 0
	}
	ip := *path[0]
	for i := 1; i <= cnt; i++ {
		var ipNext IntPoint
		if i == cnt {
			ipNext = *path[0]
		} else {
			ipNext = *path[i]
		}
		if ipNext.Y == pt.Y {
			if ipNext.X == pt.X || (ip.Y == pt.Y &&
				((ipNext.X > pt.X) == (ip.X < pt.X))) {
				return -1
			}
		}
		if (ip.Y < pt.Y) != (ipNext.Y < pt.Y) {
			if ip.X >= pt.X {
				if ipNext.X > pt.X {
					result = 1 - result
				} else {
					d := float64(ip.X-pt.X)*float64(ipNext.Y-pt.Y) -
						float64(ipNext.X-pt.X)*float64(ip.Y-pt.Y)
					if d == 0 {
						return -1
					}
					if (d > 0) == (ipNext.Y > ip.Y) {
						result = 1 - result
					}
				}
			} else if ipNext.X > pt.X {
				d := float64(ip.X-pt.X)*float64(ipNext.Y-pt.Y) -
					float64(ipNext.X-pt.X)*float64(ip.Y-pt.Y)
				if d == 0 {
					return -1
				}
				if (d > 0) == (ipNext.Y > ip.Y) {
					result = 1 - result
				}
			}
		}
		ip = ipNext
	}
	return result
}

// ReversePath reverses the vertex order of a path in place.
func ReversePath(p Path) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

// ReversePaths reverses every path of ps in place.
func ReversePaths(ps Paths) {
	for _, p := range ps {
		ReversePath(p)
	}
}

// IntRect is an axis aligned bounding rectangle.
type IntRect struct {
	Left   cInt
	Top    cInt
	Right  cInt
	Bottom cInt
}

// GetBounds returns the bounding rectangle of a set of paths, or the
// zero rectangle when every path is empty.
func GetBounds(paths Paths) IntRect {
	i, cnt := 0, len(paths)
	for i < cnt && len(paths[i]) == 0 {
		i++
	}
	if i == cnt {
		return IntRect{}
	}
	result := IntRect{
		Left:   paths[i][0].X,
		Right:  paths[i][0].X,
		Top:    paths[i][0].Y,
		Bottom: paths[i][0].Y,
	}
	for ; i < cnt; i++ {
		for _, pt := range paths[i] {
			switch {
			case pt.X < result.Left:
				result.Left = pt.X
			case pt.X > result.Right:
				result.Right = pt.X
			}
			switch {
			case pt.Y < result.Top:
				result.Top = pt.Y
			case pt.Y > result.Bottom:
				result.Bottom = pt.Y
			}
		}
	}
	return result
}

// SimplifyPolygon converts a self-intersecting polygon into a set of
// simple polygons by unioning it with itself under fillType.
func SimplifyPolygon(poly Path, fillType PolyFillType) Paths {
	c := NewClipper()
	c.StrictlySimple = true
	c.AddPath(poly, Subject, true)
	result, _ := c.Execute(Union, fillType, fillType)
	return result
}

// SimplifyPolygons is SimplifyPolygon for a whole path set at once.
func SimplifyPolygons(polys Paths, fillType PolyFillType) Paths {
	c := NewClipper()
	c.StrictlySimple = true
	c.AddPaths(polys, Subject, true)
	result, _ := c.Execute(Union, fillType, fillType)
	return result
}

func distanceFromLineSqrd(pt, ln1, ln2 IntPoint) float64 {
	// The equation of a line in general form (Ax + By + C = 0) given
	// two points (x1,y1) and (x2,y2) is
	// (y1 - y2)x + (x2 - x1)y + (y2 - y1)x1 - (x2 - x1)y1 = 0.
	// The perpendicular distance of point (x0,y0) from the line is
	// |Ax0 + By0 + C| / sqrt(A^2 + B^2).
	a := float64(ln1.Y - ln2.Y)
	b := float64(ln2.X - ln1.X)
	c := a*float64(ln1.X) + b*float64(ln1.Y)
	c = a*float64(pt.X) + b*float64(pt.Y) - c
	return (c * c) / (a*a + b*b)
}

func slopesNearCollinear(pt1, pt2, pt3 IntPoint, distSqrd float64) bool {
	// this function is more accurate when the point that is
	// geometrically between the other two is the one tested for
	// distance; nb with 'spikes', either pt1 or pt3 is geometrically
	// between the other pts
	if intAbs(pt1.X-pt2.X) > intAbs(pt1.Y-pt2.Y) {
		if (pt1.X > pt2.X) == (pt1.X < pt3.X) {
			return distanceFromLineSqrd(pt1, pt2, pt3) < distSqrd
		} else if (pt2.X > pt1.X) == (pt2.X < pt3.X) {
			return distanceFromLineSqrd(pt2, pt1, pt3) < distSqrd
		}
		return distanceFromLineSqrd(pt3, pt1, pt2) < distSqrd
	}
	if (pt1.Y > pt2.Y) == (pt1.Y < pt3.Y) {
		return distanceFromLineSqrd(pt1, pt2, pt3) < distSqrd
	} else if (pt2.Y > pt1.Y) == (pt2.Y < pt3.Y) {
		return distanceFromLineSqrd(pt2, pt1, pt3) < distSqrd
	}
	return distanceFromLineSqrd(pt3, pt1, pt2) < distSqrd
}

func pointsAreClose(pt1, pt2 IntPoint, distSqrd float64) bool {
	dx := float64(pt1.X) - float64(pt2.X)
	dy := float64(pt1.Y) - float64(pt2.Y)
	return dx*dx+dy*dy <= distSqrd
}

func excludeOp(op *outPt) *outPt {
	result := op.prev
	result.next = op.next
	op.next.prev = result
	result.idx = 0
	return result
}

// CleanPolygon strips vertices closer together than distance (in
// coordinate units) and vertices that are within distance of the line
// between their neighbours. The default distance of 1.415 (just over
// sqrt 2) removes a vertex whenever both its coordinates are within
// one unit of adjacent or semi-adjacent vertices.
func CleanPolygon(path Path, distance float64) Path {
	cnt := len(path)
	if cnt == 0 {
		return Path{}
	}

	outPts := make([]*outPt, cnt)
	for i := range outPts {
		outPts[i] = new(outPt)
	}
	for i := 0; i < cnt; i++ {
		outPts[i].pt = *path[i]
		outPts[i].next = outPts[(i+1)%cnt]
		outPts[i].next.prev = outPts[i]
		outPts[i].idx = 0
	}

	distSqrd := distance * distance
	op := outPts[0]
	for op.idx == 0 && op.next != op.prev {
		if pointsAreClose(op.pt, op.prev.pt, distSqrd) {
			op = excludeOp(op)
			cnt--
		} else if pointsAreClose(op.prev.pt, op.next.pt, distSqrd) {
			excludeOp(op.next)
			op = excludeOp(op)
			cnt -= 2
		} else if slopesNearCollinear(op.prev.pt, op.pt, op.next.pt, distSqrd) {
			op = excludeOp(op)
			cnt--
		} else {
			op.idx = 1
			op = op.next
		}
	}

	if cnt < 3 {
		cnt = 0
	}
	result := make(Path, 0, cnt)
	for i := 0; i < cnt; i++ {
		pt := op.pt
		result = append(result, &pt)
		op = op.next
	}
	return result
}

// CleanPolygons is CleanPolygon applied to each path of ps.
func CleanPolygons(ps Paths, distance float64) Paths {
	result := make(Paths, len(ps))
	for i := range ps {
		result[i] = CleanPolygon(ps[i], distance)
	}
	return result
}

func minkowski(pattern, path Path, isSum bool) Paths {
	polyCnt := len(pattern)
	pathCnt := len(path)
	translated := make(Paths, 0, pathCnt)
	if isSum {
		for i := 0; i < pathCnt; i++ {
			p := make(Path, 0, polyCnt)
			for _, ip := range pattern {
				p = append(p, &IntPoint{X: path[i].X + ip.X, Y: path[i].Y + ip.Y})
			}
			translated = append(translated, p)
		}
	} else {
		for i := 0; i < pathCnt; i++ {
			p := make(Path, 0, polyCnt)
			for _, ip := range pattern {
				p = append(p, &IntPoint{X: path[i].X - ip.X, Y: path[i].Y - ip.Y})
			}
			translated = append(translated, p)
		}
	}

	quads := make(Paths, 0, pathCnt*(polyCnt+1))
	for i := 0; i < pathCnt; i++ {
		for j := 0; j < polyCnt; j++ {
			quad := Path{
				translated[i%pathCnt][j%polyCnt],
				translated[(i+1)%pathCnt][j%polyCnt],
				translated[(i+1)%pathCnt][(j+1)%polyCnt],
				translated[i%pathCnt][(j+1)%polyCnt],
			}
			if !Orientation(quad) {
				ReversePath(quad)
			}
			quads = append(quads, quad)
		}
	}
	return quads
}

func unionMinkowski(paths Paths) Paths {
	c := NewClipper()
	c.AddPaths(paths, Subject, true)
	result, _ := c.Execute(Union, NonZero, NonZero)
	return result
}

// MinkowskiSum returns the Minkowski sum of a closed pattern swept
// along the outline of a closed path. path is always treated as
// closed; there is no open-path variant, so the result of two filled
// polygons is a frame around path's border rather than a filled
// region.
func MinkowskiSum(pattern, path Path) Paths {
	return unionMinkowski(minkowski(pattern, path, true))
}

// MinkowskiDiff returns the Minkowski difference of two closed
// polygons: the sum of poly1 with poly2 reflected through the origin.
func MinkowskiDiff(poly1, poly2 Path) Paths {
	return unionMinkowski(minkowski(poly1, poly2, false))
}
