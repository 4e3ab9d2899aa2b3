package cubeguess

// NumOrientations is the number of rotations of a cube.
const NumOrientations = 24

var orientations = enumerateOrientations(Reference())

// enumerateOrientations closes the reference state under quarter turns about
// the x and y axes. Together the two turns generate the full rotation group.
func enumerateOrientations(ref CubeState) []CubeState {
	seen := map[CubeState]bool{ref: true}
	out := []CubeState{ref}
	for i := 0; i < len(out); i++ {
		for _, next := range []CubeState{out[i].rotateX(), out[i].rotateY()} {
			if !seen[next] {
				seen[next] = true
				out = append(out, next)
			}
		}
	}
	return out
}

// Orientations returns the 24 rotations of the reference cube.
// The first entry is Reference().
func Orientations() []CubeState {
	out := make([]CubeState, len(orientations))
	copy(out, orientations)
	return out
}
