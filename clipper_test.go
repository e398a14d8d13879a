package clipper

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tdewolff/test"
)

func path(coords ...cInt) Path {
	result := make(Path, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		result = append(result, &IntPoint{X: coords[i], Y: coords[i+1]})
	}
	return result
}

// canonical rotates a ring so its lexicographically smallest vertex
// comes first and makes it counter-clockwise, so rings can be
// compared regardless of start point and winding.
func canonical(p Path) Path {
	q := make(Path, len(p))
	copy(q, p)
	if !Orientation(q) {
		ReversePath(q)
	}
	min := 0
	for i := 1; i < len(q); i++ {
		if q[i].X < q[min].X || (q[i].X == q[min].X && q[i].Y < q[min].Y) {
			min = i
		}
	}
	return append(q[min:len(q):len(q)], q[:min]...)
}

func samePath(a, b Path) bool {
	if len(a) != len(b) {
		return false
	}
	a, b = canonical(a), canonical(b)
	for i := range a {
		if !pointsEqual(*a[i], *b[i]) {
			return false
		}
	}
	return true
}

func executeOn(t *testing.T, c *Clipper, ct ClipType, pft PolyFillType) Paths {
	t.Helper()
	solution, ok := c.Execute(ct, pft, pft)
	test.That(t, ok)
	return solution
}

func clipRects(t *testing.T, ct ClipType, pft PolyFillType) Paths {
	t.Helper()
	c := NewClipper()
	test.That(t, c.AddPath(path(0, 0, 100, 0, 100, 100, 0, 100), Subject, true))
	test.That(t, c.AddPath(path(50, 50, 150, 50, 150, 150, 50, 150), Clip, true))
	return executeOn(t, c, ct, pft)
}

func TestRectIntersection(t *testing.T) {
	solution := clipRects(t, Intersection, EvenOdd)
	test.T(t, len(solution), 1)
	test.That(t, samePath(solution[0], path(50, 50, 100, 50, 100, 100, 50, 100)))
}

func TestRectUnion(t *testing.T) {
	solution := clipRects(t, Union, EvenOdd)
	test.T(t, len(solution), 1)
	test.Float(t, AreaCombined(solution), 17500)
	test.That(t, Orientation(solution[0]))
}

func TestRectDifference(t *testing.T) {
	solution := clipRects(t, Difference, EvenOdd)
	test.Float(t, AreaCombined(solution), 7500)
}

func TestRectXor(t *testing.T) {
	solution := clipRects(t, Xor, EvenOdd)
	test.Float(t, AreaCombined(solution), 15000)
}

func TestDisjointRects(t *testing.T) {
	c := NewClipper()
	c.AddPath(path(0, 0, 10, 0, 10, 10, 0, 10), Subject, true)
	c.AddPath(path(20, 20, 30, 20, 30, 30, 20, 30), Clip, true)

	solution := executeOn(t, c, Intersection, EvenOdd)
	test.T(t, len(solution), 0)

	solution = executeOn(t, c, Union, EvenOdd)
	test.T(t, len(solution), 2)
	test.Float(t, AreaCombined(solution), 200)
}

func TestContainedRect(t *testing.T) {
	c := NewClipper()
	c.AddPath(path(0, 0, 100, 0, 100, 100, 0, 100), Subject, true)
	c.AddPath(path(25, 25, 75, 25, 75, 75, 25, 75), Clip, true)

	solution := executeOn(t, c, Intersection, EvenOdd)
	test.T(t, len(solution), 1)
	test.Float(t, AreaCombined(solution), 2500)

	// subtracting an interior rect punches a hole
	solution = executeOn(t, c, Difference, EvenOdd)
	test.T(t, len(solution), 2)
	test.Float(t, AreaCombined(solution), 7500)
	holes := 0
	for _, p := range solution {
		if !Orientation(p) {
			holes++
		}
	}
	test.T(t, holes, 1)
}

func TestTouchingRectsUnion(t *testing.T) {
	// rects sharing a full edge merge into a single rect
	c := NewClipper()
	c.AddPath(path(0, 0, 10, 0, 10, 10, 0, 10), Subject, true)
	c.AddPath(path(10, 0, 20, 0, 20, 10, 10, 10), Subject, true)

	solution := executeOn(t, c, Union, EvenOdd)
	test.T(t, len(solution), 1)
	test.That(t, samePath(solution[0], path(0, 0, 20, 0, 20, 10, 0, 10)))
}

func TestSelfIntersectingBowtie(t *testing.T) {
	// the bowtie crosses itself at (50,50) and resolves to two
	// triangles under every fill rule except that Positive and
	// Negative keep only one wind direction each
	bowtie := path(0, 0, 100, 100, 100, 0, 0, 100)
	for _, tc := range []struct {
		pft  PolyFillType
		area float64
	}{
		{EvenOdd, 5000},
		{NonZero, 5000},
		{Positive, 2500},
		{Negative, 2500},
	} {
		c := NewClipper()
		c.AddPath(bowtie, Subject, true)
		solution := executeOn(t, c, Union, tc.pft)
		test.Float(t, AreaCombined(solution), tc.area)
	}
}

func TestFillRulesNestedRings(t *testing.T) {
	// two concentric rings with the same winding: EvenOdd makes the
	// inner one a hole, NonZero fills it solid
	c := NewClipper()
	c.AddPath(path(0, 0, 100, 0, 100, 100, 0, 100), Subject, true)
	c.AddPath(path(25, 25, 75, 25, 75, 75, 25, 75), Subject, true)

	solution := executeOn(t, c, Union, EvenOdd)
	test.T(t, len(solution), 2)
	test.Float(t, AreaCombined(solution), 7500)

	solution = executeOn(t, c, Union, NonZero)
	test.T(t, len(solution), 1)
	test.Float(t, AreaCombined(solution), 10000)
}

func TestIntersectHoledSquareWithStrip(t *testing.T) {
	// a thin vertical strip across a holed square intersects only the
	// bands above and below the hole
	c := NewClipper()
	c.AddPath(path(0, 0, 100, 0, 100, 100, 0, 100), Subject, true)
	c.AddPath(path(10, 10, 90, 10, 90, 90, 10, 90), Subject, true)
	c.AddPath(path(40, -10, 50, -10, 50, 110, 40, 110), Clip, true)

	solution := executeOn(t, c, Intersection, EvenOdd)
	test.T(t, len(solution), 2)
	test.Float(t, AreaCombined(solution), 200)
	for _, p := range solution {
		test.T(t, len(p), 4)
		test.Float(t, Area(p), 100)
	}
}

func TestMixedFillTypes(t *testing.T) {
	// a clockwise subject contributes nothing under Positive but
	// everything under Negative
	cw := path(0, 0, 100, 0, 100, 100, 0, 100)
	ReversePath(cw)
	c := NewClipper()
	c.AddPath(cw, Subject, true)

	solution, ok := c.Execute(Union, Positive, Positive)
	test.That(t, ok)
	test.T(t, len(solution), 0)

	solution, ok = c.Execute(Union, Negative, Negative)
	test.That(t, ok)
	test.Float(t, AreaCombined(solution), 10000)
}

func TestOrderIndependence(t *testing.T) {
	subj := path(0, 0, 100, 0, 100, 100, 0, 100)
	clip := path(50, 50, 150, 50, 150, 150, 50, 150)

	c1 := NewClipper()
	c1.AddPath(subj, Subject, true)
	c1.AddPath(clip, Clip, true)
	s1 := executeOn(t, c1, Intersection, EvenOdd)

	c2 := NewClipper()
	c2.AddPath(clip, Subject, true)
	c2.AddPath(subj, Clip, true)
	s2 := executeOn(t, c2, Intersection, EvenOdd)

	test.T(t, len(s1), len(s2))
	test.That(t, samePath(s1[0], s2[0]))
}

func TestExecuteReusable(t *testing.T) {
	// the same clipper executes repeatedly over one set of inputs
	c := NewClipper()
	c.AddPath(path(0, 0, 100, 0, 100, 100, 0, 100), Subject, true)
	c.AddPath(path(50, 50, 150, 50, 150, 150, 50, 150), Clip, true)

	first := executeOn(t, c, Intersection, EvenOdd)
	union := executeOn(t, c, Union, EvenOdd)
	second := executeOn(t, c, Intersection, EvenOdd)

	test.Float(t, AreaCombined(union), 17500)
	test.T(t, len(first), len(second))
	test.That(t, samePath(first[0], second[0]))
}

func TestExecuteEmpty(t *testing.T) {
	c := NewClipper()
	_, ok := c.Execute(Union, EvenOdd, EvenOdd)
	test.That(t, !ok)
}

func TestClear(t *testing.T) {
	c := NewClipper()
	c.AddPath(path(0, 0, 10, 0, 10, 10, 0, 10), Subject, true)
	c.Clear()
	_, ok := c.Execute(Union, EvenOdd, EvenOdd)
	test.That(t, !ok)

	c.AddPath(path(0, 0, 10, 0, 10, 10, 0, 10), Subject, true)
	solution := executeOn(t, c, Union, EvenOdd)
	test.Float(t, AreaCombined(solution), 100)
}

func TestAddPathRejects(t *testing.T) {
	c := NewClipper()
	// open paths are unsupported
	test.That(t, !c.AddPath(path(0, 0, 10, 0, 10, 10), Subject, false))
	// fewer than three distinct vertices
	test.That(t, !c.AddPath(path(0, 0, 10, 0), Subject, true))
	test.That(t, !c.AddPath(path(0, 0, 10, 0, 10, 0, 0, 0), Subject, true))
	// completely flat
	test.That(t, !c.AddPath(path(0, 5, 10, 5, 20, 5), Subject, true))
	// collinear vertices collapse to a degenerate path
	test.That(t, !c.AddPath(path(0, 0, 5, 5, 10, 10, 5, 5), Subject, true))
}

func TestAddPathRangeLimit(t *testing.T) {
	c := NewClipper()
	big := hiRange + 1
	test.That(t, !c.AddPath(path(0, 0, big, 0, big, 10, 0, 10), Subject, true))
	test.That(t, !c.AddPath(path(0, 0, -big, 0, -big, 10, 0, 10), Subject, true))
	// at the limit itself the path is accepted
	test.That(t, c.AddPath(path(hiRange-10, hiRange-10, hiRange, hiRange-10, hiRange, hiRange), Subject, true))
}

func TestLargeCoordinates(t *testing.T) {
	// coordinates beyond loRange switch the cross products to 128 bit
	// arithmetic without changing results
	var off cInt = 1 << 40
	c := NewClipper()
	c.AddPath(path(off, 0, off+100, 0, off+100, 100, off, 100), Subject, true)
	c.AddPath(path(off+50, 50, off+150, 50, off+150, 150, off+50, 150), Clip, true)
	test.That(t, c.useFullRange)

	solution := executeOn(t, c, Intersection, EvenOdd)
	test.T(t, len(solution), 1)
	test.Float(t, AreaCombined(solution), 2500)
}

func TestPreserveCollinear(t *testing.T) {
	withMidpoints := path(0, 0, 50, 0, 100, 0, 100, 100, 0, 100)

	c := NewClipper()
	c.AddPath(withMidpoints, Subject, true)
	solution := executeOn(t, c, Union, EvenOdd)
	test.T(t, len(solution[0]), 4)

	c = NewClipper()
	c.PreserveCollinear = true
	c.AddPath(withMidpoints, Subject, true)
	solution = executeOn(t, c, Union, EvenOdd)
	test.T(t, len(solution[0]), 5)
	test.Float(t, AreaCombined(solution), 10000)
}

func TestPreserveCollinearDropsSpikes(t *testing.T) {
	// an overlapping collinear spike is removed even with
	// PreserveCollinear set
	c := NewClipper()
	c.PreserveCollinear = true
	c.AddPath(path(0, 0, 100, 0, 150, 0, 100, 0, 100, 100, 0, 100), Subject, true)
	solution := executeOn(t, c, Union, EvenOdd)
	test.Float(t, AreaCombined(solution), 10000)
	for _, p := range solution[0] {
		test.That(t, p.X <= 100)
	}
}

func TestReverseSolution(t *testing.T) {
	c := NewClipper()
	c.AddPath(path(0, 0, 100, 0, 100, 100, 0, 100), Subject, true)
	solution := executeOn(t, c, Union, EvenOdd)
	test.That(t, Orientation(solution[0]))

	c.ReverseSolution = true
	solution = executeOn(t, c, Union, EvenOdd)
	test.That(t, !Orientation(solution[0]))
}

func TestStrictlySimpleSplitsVertexTouch(t *testing.T) {
	// two squares meeting at a single vertex stay separate simple
	// rings when StrictlySimple is set
	c := NewClipper()
	c.StrictlySimple = true
	c.AddPath(path(0, 0, 10, 0, 10, 10, 0, 10), Subject, true)
	c.AddPath(path(10, 10, 20, 10, 20, 20, 10, 20), Subject, true)

	solution := executeOn(t, c, Union, EvenOdd)
	test.T(t, len(solution), 2)
	test.Float(t, AreaCombined(solution), 200)
	for _, p := range solution {
		test.Float(t, Area(p), 100)
	}
}

// TestAreaIdentity clips randomly generated polygons and checks that
// union area equals intersection plus xor area. The generator is
// seeded so failures are reproducible.
func TestAreaIdentity(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	randomPoly := func(maxWidth, maxHeight cInt, vertCnt int) Path {
		result := make(Path, vertCnt)
		for i := 0; i < vertCnt; i++ {
			result[i] = &IntPoint{
				X: cInt(rnd.Int63n(int64(maxWidth))),
				Y: cInt(rnd.Int63n(int64(maxHeight))),
			}
		}
		return result
	}

	for i := 0; i < 50; i++ {
		c := NewClipper()
		c.AddPath(randomPoly(640, 480, 30), Subject, true)
		c.AddPath(randomPoly(640, 480, 30), Clip, true)

		areas := make(map[ClipType]float64)
		for _, ct := range []ClipType{Intersection, Union, Xor} {
			solution, ok := c.Execute(ct, EvenOdd, EvenOdd)
			test.That(t, ok)
			areas[ct] = AreaCombined(solution)
		}

		got := areas[Intersection] + areas[Xor]
		if math.Abs(areas[Union]-got) > 1+0.01*math.Abs(areas[Union]) {
			t.Fatalf("iteration %d: union area %.1f != intersection+xor %.1f",
				i, areas[Union], got)
		}
	}
}

func TestAreaIdentityAllFillTypes(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	randomPoly := func(vertCnt int) Path {
		result := make(Path, vertCnt)
		for i := 0; i < vertCnt; i++ {
			result[i] = &IntPoint{
				X: cInt(rnd.Int63n(400)),
				Y: cInt(rnd.Int63n(400)),
			}
		}
		return result
	}

	for _, pft := range []PolyFillType{EvenOdd, NonZero, Positive, Negative} {
		for i := 0; i < 20; i++ {
			c := NewClipper()
			c.AddPath(randomPoly(20), Subject, true)
			c.AddPath(randomPoly(20), Clip, true)

			areas := make(map[ClipType]float64)
			for _, ct := range []ClipType{Intersection, Union, Xor} {
				solution, ok := c.Execute(ct, pft, pft)
				test.That(t, ok)
				areas[ct] = AreaCombined(solution)
			}

			got := areas[Intersection] + areas[Xor]
			if math.Abs(areas[Union]-got) > 1+0.01*math.Abs(areas[Union]) {
				t.Fatalf("fill %v iteration %d: union area %.1f != intersection+xor %.1f",
					pft, i, areas[Union], got)
			}
		}
	}
}
