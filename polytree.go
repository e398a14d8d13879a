package clipper

// PolyNode is a node in a PolyTree. Contour is one ring of the
// clipping solution and Childs holds the rings directly inside it, so
// the children of an outer ring are its holes and the children of a
// hole are the islands inside it.
type PolyNode struct {
	Contour Path
	Childs  []*PolyNode

	parent *PolyNode
	index  int
}

func (pn *PolyNode) addChild(child *PolyNode) {
	child.parent = pn
	child.index = len(pn.Childs)
	pn.Childs = append(pn.Childs, child)
}

func (pn *PolyNode) Parent() *PolyNode {
	return pn.parent
}

func (pn *PolyNode) ChildCount() int {
	return len(pn.Childs)
}

// IsHole reports whether the node's contour is a hole. Nesting
// alternates, so nodes at odd depth are holes.
func (pn *PolyNode) IsHole() bool {
	result := true
	node := pn.parent
	for node != nil {
		result = !result
		node = node.parent
	}
	return result
}

// GetNext returns the next node in a depth first traversal of the
// tree, or nil when pn is the last node.
func (pn *PolyNode) GetNext() *PolyNode {
	if len(pn.Childs) > 0 {
		return pn.Childs[0]
	}
	return pn.getNextSiblingUp()
}

func (pn *PolyNode) getNextSiblingUp() *PolyNode {
	if pn.parent == nil {
		return nil
	}
	if pn.index == len(pn.parent.Childs)-1 {
		return pn.parent.getNextSiblingUp()
	}
	return pn.parent.Childs[pn.index+1]
}

// PolyTree is a clipping solution structured as a hierarchy of outer
// rings and holes rather than a flat list of contours. The tree node
// itself is a hidden root whose Childs are the outermost rings.
type PolyTree struct {
	PolyNode
	allPolys []*PolyNode
}

func NewPolyTree() *PolyTree {
	return new(PolyTree)
}

func (t *PolyTree) Clear() {
	t.allPolys = t.allPolys[:0]
	t.Childs = t.Childs[:0]
}

// GetFirst returns the first outer ring node, or nil for an empty
// tree.
func (t *PolyTree) GetFirst() *PolyNode {
	if len(t.Childs) > 0 {
		return t.Childs[0]
	}
	return nil
}

// Total returns the number of contours in the tree.
func (t *PolyTree) Total() int {
	return len(t.allPolys)
}

// PolyTreeToPaths flattens a PolyTree back into Paths, outer rings
// and holes alike, in depth first order.
func PolyTreeToPaths(polytree *PolyTree) Paths {
	result := make(Paths, 0, polytree.Total())
	return addPolyNodeToPaths(&polytree.PolyNode, result)
}

func addPolyNodeToPaths(polynode *PolyNode, paths Paths) Paths {
	if len(polynode.Contour) > 2 {
		paths = append(paths, polynode.Contour)
	}
	for _, pn := range polynode.Childs {
		paths = addPolyNodeToPaths(pn, paths)
	}
	return paths
}
