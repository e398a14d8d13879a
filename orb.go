package clipper

import "github.com/paulmach/orb"

// FromOrb converts an orb polygon to integer clipping paths,
// multiplying each coordinate by scale before rounding.
func FromOrb(p orb.Polygon, scale float64) Paths {
	result := make(Paths, 0, len(p))
	for _, ring := range p {
		pg := make(Path, 0, len(ring))
		for _, pt := range ring {
			pg = append(pg, &IntPoint{X: round(pt[0] * scale), Y: round(pt[1] * scale)})
		}
		result = append(result, pg)
	}
	return result
}

// FromOrbMulti converts every polygon of an orb MultiPolygon,
// flattening the rings into a single path set.
func FromOrbMulti(mp orb.MultiPolygon, scale float64) Paths {
	var result Paths
	for _, p := range mp {
		result = append(result, FromOrb(p, scale)...)
	}
	return result
}

func toOrbRing(path Path, scale float64) orb.Ring {
	ring := make(orb.Ring, 0, len(path)+1)
	for _, pt := range path {
		ring = append(ring, orb.Point{float64(pt.X) / scale, float64(pt.Y) / scale})
	}
	// orb rings are explicitly closed
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}
	return ring
}

// ToOrb converts a clipping solution to an orb polygon, dividing each
// coordinate by scale and closing every ring.
func ToOrb(paths Paths, scale float64) orb.Polygon {
	result := make(orb.Polygon, 0, len(paths))
	for _, path := range paths {
		result = append(result, toOrbRing(path, scale))
	}
	return result
}

// ToOrbMulti converts a PolyTree solution to an orb MultiPolygon:
// each outer ring becomes its own polygon carrying its holes as
// additional rings, and islands inside holes become polygons of
// their own.
func ToOrbMulti(tree *PolyTree, scale float64) orb.MultiPolygon {
	var result orb.MultiPolygon
	for _, outer := range tree.Childs {
		result = appendOrbPolygons(outer, scale, result)
	}
	return result
}

func appendOrbPolygons(node *PolyNode, scale float64, dst orb.MultiPolygon) orb.MultiPolygon {
	poly := orb.Polygon{toOrbRing(node.Contour, scale)}
	for _, hole := range node.Childs {
		poly = append(poly, toOrbRing(hole.Contour, scale))
	}
	dst = append(dst, poly)
	for _, hole := range node.Childs {
		for _, island := range hole.Childs {
			dst = appendOrbPolygons(island, scale, dst)
		}
	}
	return dst
}
