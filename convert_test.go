package clipper

import (
	"testing"

	"github.com/ctessum/geom"
	"github.com/paulmach/orb"
	"github.com/tdewolff/test"
)

func TestFromGeomScaling(t *testing.T) {
	poly := geom.Polygon{{
		{X: 0, Y: 0}, {X: 1.5, Y: 0}, {X: 1.5, Y: 1}, {X: 0, Y: 1},
	}}
	paths := FromGeom(poly, 100)
	test.T(t, len(paths), 1)
	test.That(t, samePath(paths[0], path(0, 0, 150, 0, 150, 100, 0, 100)))
}

func TestGeomRoundTrip(t *testing.T) {
	subj := geom.Polygon{{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}}
	clip := geom.Polygon{{
		{X: 0.5, Y: 0.5}, {X: 1.5, Y: 0.5}, {X: 1.5, Y: 1.5}, {X: 0.5, Y: 1.5},
	}}

	const scale = 1000
	c := NewClipper()
	c.AddPaths(FromGeom(subj, scale), Subject, true)
	c.AddPaths(FromGeom(clip, scale), Clip, true)
	solution, ok := c.Execute(Intersection, EvenOdd, EvenOdd)
	test.That(t, ok)

	got := ToGeom(solution, scale)
	test.T(t, len(got), 1)
	test.T(t, len(got[0]), 4)
	for _, pt := range got[0] {
		test.That(t, pt.X >= 0.5 && pt.X <= 1.0)
		test.That(t, pt.Y >= 0.5 && pt.Y <= 1.0)
	}
}

func TestToGeomMulti(t *testing.T) {
	c := NewClipper()
	c.AddPath(path(0, 0, 1000, 0, 1000, 1000, 0, 1000), Subject, true)
	c.AddPath(path(200, 200, 800, 200, 800, 800, 200, 800), Subject, true)
	c.AddPath(path(2000, 0, 3000, 0, 3000, 1000, 2000, 1000), Subject, true)

	tree, ok := c.ExecuteTree(Union, EvenOdd, EvenOdd)
	test.That(t, ok)

	mp := ToGeomMulti(tree, 1000)
	test.T(t, len(mp), 2)
	// one polygon carries the hole as a second ring
	holed := 0
	for _, p := range mp {
		if len(p) == 2 {
			holed++
		}
	}
	test.T(t, holed, 1)
}

func TestFromGeomMulti(t *testing.T) {
	mp := geom.MultiPolygon{
		{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}},
		{{{X: 2, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 1}, {X: 2, Y: 1}}},
	}
	paths := FromGeomMulti(mp, 10)
	test.T(t, len(paths), 2)
	test.Float(t, AreaCombined(paths), 200)
}

func TestOrbRoundTrip(t *testing.T) {
	// orb rings are explicitly closed; the duplicate end point is
	// dropped on the way in and restored on the way out
	subj := orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}
	clip := orb.Polygon{{{0.5, 0.5}, {1.5, 0.5}, {1.5, 1.5}, {0.5, 1.5}, {0.5, 0.5}}}

	const scale = 1000
	c := NewClipper()
	c.AddPaths(FromOrb(subj, scale), Subject, true)
	c.AddPaths(FromOrb(clip, scale), Clip, true)
	solution, ok := c.Execute(Intersection, EvenOdd, EvenOdd)
	test.That(t, ok)

	got := ToOrb(solution, scale)
	test.T(t, len(got), 1)
	test.T(t, len(got[0]), 5)
	test.T(t, got[0][0], got[0][len(got[0])-1])
}

func TestToOrbMulti(t *testing.T) {
	c := NewClipper()
	c.AddPath(path(0, 0, 1000, 0, 1000, 1000, 0, 1000), Subject, true)
	c.AddPath(path(200, 200, 800, 200, 800, 800, 200, 800), Subject, true)

	tree, ok := c.ExecuteTree(Union, EvenOdd, EvenOdd)
	test.That(t, ok)

	mp := ToOrbMulti(tree, 1000)
	test.T(t, len(mp), 1)
	test.T(t, len(mp[0]), 2)
	for _, ring := range mp[0] {
		test.T(t, ring[0], ring[len(ring)-1])
	}
}

func TestFromOrbMulti(t *testing.T) {
	mp := orb.MultiPolygon{
		{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}},
		{{{2, 0}, {3, 0}, {3, 1}, {2, 1}, {2, 0}}},
	}
	paths := FromOrbMulti(mp, 10)
	test.T(t, len(paths), 2)

	c := NewClipper()
	c.AddPaths(paths, Subject, true)
	solution, ok := c.Execute(Union, EvenOdd, EvenOdd)
	test.That(t, ok)
	test.Float(t, AreaCombined(solution), 200)
}
