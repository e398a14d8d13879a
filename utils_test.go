package clipper

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestArea(t *testing.T) {
	ccw := path(0, 0, 100, 0, 100, 100, 0, 100)
	test.Float(t, Area(ccw), 10000)
	test.That(t, Orientation(ccw))

	cw := path(0, 0, 100, 0, 100, 100, 0, 100)
	ReversePath(cw)
	test.Float(t, Area(cw), -10000)
	test.That(t, !Orientation(cw))

	test.Float(t, Area(path(0, 0, 10, 0)), 0)
}

func TestAreaCombined(t *testing.T) {
	outer := path(0, 0, 100, 0, 100, 100, 0, 100)
	hole := path(25, 25, 75, 25, 75, 75, 25, 75)
	ReversePath(hole)
	test.Float(t, AreaCombined(Paths{outer, hole}), 7500)
}

func TestReversePath(t *testing.T) {
	p := path(1, 2, 3, 4, 5, 6)
	ReversePath(p)
	test.That(t, pointsEqual(*p[0], IntPoint{X: 5, Y: 6}))
	test.That(t, pointsEqual(*p[2], IntPoint{X: 1, Y: 2}))
}

func TestPointInPolygonQuery(t *testing.T) {
	square := path(0, 0, 100, 0, 100, 100, 0, 100)
	test.T(t, PointInPolygon(IntPoint{X: 50, Y: 50}, square), 1)
	test.T(t, PointInPolygon(IntPoint{X: 150, Y: 50}, square), 0)
	test.T(t, PointInPolygon(IntPoint{X: 100, Y: 50}, square), -1)
	test.T(t, PointInPolygon(IntPoint{X: 0, Y: 0}, square), -1)

	// winding direction is irrelevant
	ReversePath(square)
	test.T(t, PointInPolygon(IntPoint{X: 50, Y: 50}, square), 1)

	test.T(t, PointInPolygon(IntPoint{X: 0, Y: 0}, path(0, 0, 10, 0)), 0)
}

func TestGetBounds(t *testing.T) {
	bounds := GetBounds(Paths{
		path(0, 0, 100, 0, 100, 100, 0, 100),
		path(-50, 25, 75, 25, 75, 175),
	})
	test.T(t, bounds, IntRect{Left: -50, Top: 0, Right: 100, Bottom: 175})

	test.T(t, GetBounds(Paths{{}}), IntRect{})
}

func TestSimplifyPolygon(t *testing.T) {
	// the bowtie splits into two simple triangles
	bowtie := path(0, 0, 100, 100, 100, 0, 0, 100)
	solution := SimplifyPolygon(bowtie, EvenOdd)
	test.T(t, len(solution), 2)
	test.Float(t, AreaCombined(solution), 5000)
	for _, p := range solution {
		test.That(t, Orientation(p))
	}
}

func TestSimplifyPolygons(t *testing.T) {
	solution := SimplifyPolygons(Paths{
		path(0, 0, 100, 100, 100, 0, 0, 100),
		path(200, 0, 300, 0, 300, 100, 200, 100),
	}, EvenOdd)
	test.T(t, len(solution), 3)
	test.Float(t, AreaCombined(solution), 15000)
}

func TestCleanPolygon(t *testing.T) {
	// (100,0) sits within distance of the line (0,0)-(100,1) so it is
	// the near-collinear vertex that gets stripped, as is the midpoint
	// (50,100); the surviving corner is (100,1)
	dirty := path(0, 0, 100, 0, 100, 1, 100, 100, 50, 100, 0, 100)
	clean := CleanPolygon(dirty, 1.415)
	test.T(t, len(clean), 4)
	test.That(t, samePath(clean, path(0, 0, 100, 1, 100, 100, 0, 100)))

	// degenerate input collapses to nothing
	test.T(t, len(CleanPolygon(path(0, 0, 1, 0, 0, 1), 10)), 0)
	test.T(t, len(CleanPolygon(Path{}, 1.415)), 0)
}

func TestCleanPolygons(t *testing.T) {
	cleaned := CleanPolygons(Paths{
		path(0, 0, 100, 0, 100, 100, 50, 100, 0, 100),
		path(0, 0, 1, 0, 0, 1),
	}, 1.415)
	test.T(t, len(cleaned), 2)
	test.T(t, len(cleaned[0]), 4)
	test.T(t, len(cleaned[1]), 0)
}

func TestMinkowskiSum(t *testing.T) {
	// sweeping a square pattern along the outline of a closed square
	// thickens the outline into a frame: an enlarged outer ring with a
	// hole where the pattern never reaches
	pattern := path(0, 0, 20, 0, 20, 20, 0, 20)
	square := path(0, 0, 100, 0, 100, 100, 0, 100)
	solution := MinkowskiSum(pattern, square)
	test.T(t, len(solution), 2)
	test.Float(t, AreaCombined(solution), 14400-6400)

	outer, hole := solution[0], solution[1]
	if !Orientation(outer) {
		outer, hole = hole, outer
	}
	test.That(t, samePath(outer, path(0, 0, 120, 0, 120, 120, 0, 120)))
	test.That(t, samePath(hole, path(20, 20, 100, 20, 100, 100, 20, 100)))
	test.That(t, !Orientation(hole))
}

func TestMinkowskiDiff(t *testing.T) {
	// a pattern centred on the origin sweeps the outline outward and
	// inward alike, leaving the same kind of frame
	pattern := path(-10, -10, 10, -10, 10, 10, -10, 10)
	square := path(0, 0, 100, 0, 100, 100, 0, 100)
	solution := MinkowskiDiff(square, pattern)
	test.T(t, len(solution), 2)
	test.Float(t, AreaCombined(solution), 14400-6400)

	outer, hole := solution[0], solution[1]
	if !Orientation(outer) {
		outer, hole = hole, outer
	}
	test.That(t, samePath(outer, path(-10, -10, 110, -10, 110, 110, -10, 110)))
	test.That(t, samePath(hole, path(10, 10, 90, 10, 90, 90, 10, 90)))
}
