package gocube

// permutation maps every destination facelet to its source facelet.
// Global facelet index is face*9 + position; new[i] = old[p[i]].
type permutation [54]int

// strip is the three facelets of a neighbor face bordering a turned face.
type strip struct {
	face    Face
	indices [3]int
}

// adjacentStrips lists, for each face, the four neighbor strips in the order
// their contents travel under a clockwise turn: strip 0 -> 1 -> 2 -> 3 -> 0.
// Index order inside each strip keeps stickers physically contiguous across
// the cycle, which is why some strips run backwards.
var adjacentStrips = [6][4]strip{
	FaceF: {
		{FaceU, [3]int{6, 7, 8}}, // U bottom row
		{FaceR, [3]int{0, 3, 6}}, // R left column
		{FaceD, [3]int{2, 1, 0}}, // D top row
		{FaceL, [3]int{8, 5, 2}}, // L right column
	},
	FaceB: {
		{FaceU, [3]int{2, 1, 0}}, // U top row
		{FaceL, [3]int{0, 3, 6}}, // L left column
		{FaceD, [3]int{6, 7, 8}}, // D bottom row
		{FaceR, [3]int{8, 5, 2}}, // R right column
	},
	FaceU: {
		{FaceF, [3]int{0, 1, 2}},
		{FaceL, [3]int{0, 1, 2}},
		{FaceB, [3]int{0, 1, 2}},
		{FaceR, [3]int{0, 1, 2}},
	},
	FaceD: {
		{FaceF, [3]int{6, 7, 8}},
		{FaceR, [3]int{6, 7, 8}},
		{FaceB, [3]int{6, 7, 8}},
		{FaceL, [3]int{6, 7, 8}},
	},
	FaceL: {
		{FaceU, [3]int{0, 3, 6}},
		{FaceF, [3]int{0, 3, 6}},
		{FaceD, [3]int{0, 3, 6}},
		{FaceB, [3]int{8, 5, 2}}, // B right column, reversed
	},
	FaceR: {
		{FaceU, [3]int{2, 5, 8}},
		{FaceB, [3]int{6, 3, 0}}, // B left column, reversed
		{FaceD, [3]int{2, 5, 8}},
		{FaceF, [3]int{2, 5, 8}},
	},
}

// movePermutations holds one permutation per entry of AllMoves.
var movePermutations = buildPermutations()

func buildPermutations() [12]permutation {
	var perms [12]permutation
	for _, face := range Faces {
		cw := clockwisePermutation(face)
		perms[Move{Face: face, Turn: CW}.index()] = cw
		perms[Move{Face: face, Turn: CCW}.index()] = cw.inverse()
	}
	return perms
}

func identity() permutation {
	var p permutation
	for i := range p {
		p[i] = i
	}
	return p
}

// clockwisePermutation computes the quarter turn of face from the grid
// rotation and the strip table.
func clockwisePermutation(face Face) permutation {
	p := identity()
	base := int(face) * 9

	// (r, c) <- (2-c, r)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			p[base+r*3+c] = base + (2-c)*3 + r
		}
	}

	strips := adjacentStrips[face]
	for k := 0; k < 4; k++ {
		src := strips[k]
		dst := strips[(k+1)%4]
		for i := 0; i < 3; i++ {
			p[int(dst.face)*9+dst.indices[i]] = int(src.face)*9 + src.indices[i]
		}
	}
	return p
}

func (p permutation) inverse() permutation {
	var inv permutation
	for dst, src := range p {
		inv[src] = dst
	}
	return inv
}

func permutationFor(m Move) permutation {
	return movePermutations[m.index()]
}

// permute reads every facelet from the receiver copy, so no destination
// sees a value already written by the same move.
func (c Cube) permute(p permutation) Cube {
	var out Cube
	for dst, src := range p {
		out.Facelets[dst/9][dst%9] = c.Facelets[src/9][src%9]
	}
	return out
}
