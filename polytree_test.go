package clipper

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestExecuteTreeNesting(t *testing.T) {
	// outer ring with a hole and an island inside the hole
	c := NewClipper()
	c.AddPath(path(0, 0, 100, 0, 100, 100, 0, 100), Subject, true)
	c.AddPath(path(20, 20, 80, 20, 80, 80, 20, 80), Subject, true)
	c.AddPath(path(40, 40, 60, 40, 60, 60, 40, 60), Subject, true)

	tree, ok := c.ExecuteTree(Union, EvenOdd, EvenOdd)
	test.That(t, ok)
	test.T(t, tree.Total(), 3)
	test.T(t, tree.ChildCount(), 1)

	outer := tree.GetFirst()
	test.That(t, !outer.IsHole())
	test.That(t, Orientation(outer.Contour))
	test.T(t, outer.ChildCount(), 1)

	hole := outer.Childs[0]
	test.That(t, hole.IsHole())
	test.That(t, !Orientation(hole.Contour))
	test.T(t, hole.ChildCount(), 1)

	island := hole.Childs[0]
	test.That(t, !island.IsHole())
	test.That(t, Orientation(island.Contour))
	test.T(t, island.ChildCount(), 0)
}

func TestExecuteTreeEmpty(t *testing.T) {
	c := NewClipper()
	_, ok := c.ExecuteTree(Union, EvenOdd, EvenOdd)
	test.That(t, !ok)
}

func TestPolyNodeTraversal(t *testing.T) {
	c := NewClipper()
	c.AddPath(path(0, 0, 100, 0, 100, 100, 0, 100), Subject, true)
	c.AddPath(path(20, 20, 80, 20, 80, 80, 20, 80), Subject, true)
	c.AddPath(path(200, 0, 300, 0, 300, 100, 200, 100), Subject, true)

	tree, ok := c.ExecuteTree(Union, EvenOdd, EvenOdd)
	test.That(t, ok)
	test.T(t, tree.Total(), 3)
	test.T(t, tree.ChildCount(), 2)

	// GetNext walks the whole tree depth first
	cnt := 0
	for node := tree.GetFirst(); node != nil; node = node.GetNext() {
		cnt++
		test.That(t, len(node.Contour) >= 3)
	}
	test.T(t, cnt, 3)
}

func TestPolyTreeToPaths(t *testing.T) {
	c := NewClipper()
	c.AddPath(path(0, 0, 100, 0, 100, 100, 0, 100), Subject, true)
	c.AddPath(path(20, 20, 80, 20, 80, 80, 20, 80), Subject, true)

	tree, ok := c.ExecuteTree(Union, EvenOdd, EvenOdd)
	test.That(t, ok)

	paths := PolyTreeToPaths(tree)
	test.T(t, len(paths), 2)
	test.Float(t, AreaCombined(paths), 10000-3600)

	// the flattened tree matches the flat Execute solution
	solution := executeOn(t, c, Union, EvenOdd)
	test.Float(t, AreaCombined(solution), AreaCombined(paths))
}

func TestPolyTreeClear(t *testing.T) {
	c := NewClipper()
	c.AddPath(path(0, 0, 10, 0, 10, 10, 0, 10), Subject, true)
	tree, ok := c.ExecuteTree(Union, EvenOdd, EvenOdd)
	test.That(t, ok)
	test.T(t, tree.Total(), 1)

	tree.Clear()
	test.T(t, tree.Total(), 0)
	test.That(t, tree.GetFirst() == nil)
}
