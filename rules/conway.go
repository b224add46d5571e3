package rules

/*
NextState applies Conway's Game of Life rules to determine the next state of a cell.

The four branches partition the whole neighbor-count domain [0, 8]:

	fewer than two live neighbors  -> dies (underpopulation)
	exactly two live neighbors     -> keeps its current state
	exactly three live neighbors   -> alive (survival or reproduction)
	more than three live neighbors -> dies (overpopulation)
*/
func NextState(neighbors int, alive bool) bool {
	switch {
	case neighbors < 2:
		return false
	case neighbors == 2:
		return alive
	case neighbors == 3:
		return true
	default:
		return false
	}
}
