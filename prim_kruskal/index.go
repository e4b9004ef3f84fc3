package prim_kruskal

// vertexIndex translates one-based vertex IDs into dense zero-based slots for
// disjointset.Set and visited bitmaps. It is the only place where that
// translation happens.
//
// When the IDs are exactly 1..n (the generator's output) the mapping is plain
// arithmetic; otherwise a lookup table built from the sorted ID list is used.
type vertexIndex struct {
	contiguous bool
	slot       map[int]int
}

// newVertexIndex builds the adapter from ascending vertex IDs.
func newVertexIndex(vertices []int) vertexIndex {
	contiguous := true
	for i, v := range vertices {
		if v != i+1 {
			contiguous = false
			break
		}
	}
	if contiguous {
		return vertexIndex{contiguous: true}
	}

	slot := make(map[int]int, len(vertices))
	for i, v := range vertices {
		slot[v] = i
	}

	return vertexIndex{slot: slot}
}

// of returns the dense slot of vertex v, which must belong to the graph.
func (ix vertexIndex) of(v int) int {
	if ix.contiguous {
		return v - 1
	}

	return ix.slot[v]
}
