package clipper

import "github.com/ctessum/geom"

// FromGeom converts a floating point polygon to integer clipping
// paths, multiplying each coordinate by scale before rounding. Larger
// scales preserve more precision at the cost of coordinate range;
// use the same scale when converting the solution back.
func FromGeom(p geom.Polygon, scale float64) Paths {
	result := make(Paths, 0, len(p))
	for _, ring := range p {
		pg := make(Path, 0, len(ring))
		for _, pt := range ring {
			pg = append(pg, &IntPoint{X: round(pt.X * scale), Y: round(pt.Y * scale)})
		}
		result = append(result, pg)
	}
	return result
}

// FromGeomMulti converts every polygon of a MultiPolygon, flattening
// the rings into a single path set.
func FromGeomMulti(mp geom.MultiPolygon, scale float64) Paths {
	var result Paths
	for _, p := range mp {
		result = append(result, FromGeom(p, scale)...)
	}
	return result
}

func toGeomRing(path Path, scale float64) []geom.Point {
	ring := make([]geom.Point, 0, len(path))
	for _, pt := range path {
		ring = append(ring, geom.Point{
			X: float64(pt.X) / scale,
			Y: float64(pt.Y) / scale,
		})
	}
	return ring
}

// ToGeom converts a clipping solution back to a floating point
// polygon, dividing each coordinate by scale. All contours, outer
// rings and holes alike, become rings of the one polygon; fill rules
// sort out containment when the result is rendered or clipped again.
func ToGeom(paths Paths, scale float64) geom.Polygon {
	result := make(geom.Polygon, 0, len(paths))
	for _, path := range paths {
		result = append(result, toGeomRing(path, scale))
	}
	return result
}

// ToGeomMulti converts a PolyTree solution to a MultiPolygon: each
// outer ring becomes its own polygon carrying its holes as additional
// rings, and islands inside holes become polygons of their own.
func ToGeomMulti(tree *PolyTree, scale float64) geom.MultiPolygon {
	var result geom.MultiPolygon
	for _, outer := range tree.Childs {
		result = appendGeomPolygons(outer, scale, result)
	}
	return result
}

func appendGeomPolygons(node *PolyNode, scale float64, dst geom.MultiPolygon) geom.MultiPolygon {
	poly := geom.Polygon{toGeomRing(node.Contour, scale)}
	for _, hole := range node.Childs {
		poly = append(poly, toGeomRing(hole.Contour, scale))
	}
	dst = append(dst, poly)
	for _, hole := range node.Childs {
		for _, island := range hole.Childs {
			dst = appendGeomPolygons(island, scale, dst)
		}
	}
	return dst
}
