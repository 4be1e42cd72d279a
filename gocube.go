// Package gocube models the facelet state of a 3x3 Rubik's cube and the
// twelve quarter-turn moves that manipulate it.
//
// # Features
//
//   - Value-type Cube with a stable 54-character fingerprint
//   - Table-driven quarter turns for F, B, U, D, L, R and their inverses
//   - Engine with move history, random scrambles and reset
//   - A naive staged "solver" that plays fixed algorithms
//   - Stage detection and a Tracker with stage callbacks
//
// # Quick Start
//
//	engine := gocube.NewEngine(gocube.WithSeed(42))
//	engine.Scramble(20)
//
//	if err := engine.ApplyNotation("R U R' U'"); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(engine.StateString())
//	fmt.Println("Solved:", engine.IsSolved())
//
// # Fingerprint
//
// StateString concatenates the faces in F, B, U, D, L, R order, nine
// facelets each, using the letters r o w y g b. A solved cube is:
//
//	rrrrrrrrrooooooooowwwwwwwwwyyyyyyyyygggggggggbbbbbbbbb
//
// # Solver
//
// Solve runs six stages (white cross, white corners, middle layer, yellow
// cross, yellow corner position, yellow corner orientation). Each stage
// checks a few facelets and, if they look wrong, plays one fixed algorithm.
// It does not search and does not guarantee a solved cube.
package gocube
