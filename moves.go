package gocube

// Predefined moves for convenience.
//
// Example:
//
//	engine.ApplyMoves(gocube.R, gocube.U, gocube.RPrime, gocube.UPrime)
var (
	F      = Move{Face: FaceF, Turn: CW}  // Front clockwise
	FPrime = Move{Face: FaceF, Turn: CCW} // Front counter-clockwise

	B      = Move{Face: FaceB, Turn: CW}  // Back clockwise
	BPrime = Move{Face: FaceB, Turn: CCW} // Back counter-clockwise

	U      = Move{Face: FaceU, Turn: CW}  // Up clockwise
	UPrime = Move{Face: FaceU, Turn: CCW} // Up counter-clockwise

	D      = Move{Face: FaceD, Turn: CW}  // Down clockwise
	DPrime = Move{Face: FaceD, Turn: CCW} // Down counter-clockwise

	L      = Move{Face: FaceL, Turn: CW}  // Left clockwise
	LPrime = Move{Face: FaceL, Turn: CCW} // Left counter-clockwise

	R      = Move{Face: FaceR, Turn: CW}  // Right clockwise
	RPrime = Move{Face: FaceR, Turn: CCW} // Right counter-clockwise
)

// Sexy move: R U R' U'. Six repetitions are the identity.
var SexyMove = []Move{R, U, RPrime, UPrime}
