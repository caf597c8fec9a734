package edges

// Build allocates for 3*len(triangles) edges and populates each
// triangle's three sides in order (ab, bc, ca). Vector/length/density
// fields are left zero; call Refresh to populate them from the current
// point positions.
func (es *EdgeSet) Build(triangles [][3]int) {
	es.edges = make([]Edge, 0, 3*len(triangles))
	for _, tri := range triangles {
		a, b, c := tri[0], tri[1], tri[2]
		es.edges = append(es.edges,
			Edge{A: a, B: b},
			Edge{A: b, B: c},
			Edge{A: c, B: a},
		)
	}
}
