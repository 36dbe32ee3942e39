package tetris

var lineScores = map[int]int{
	1: 100,
	2: 250,
	3: 450,
	4: 700,
}

// LineScore returns the points awarded for clearing n rows with a single
// lock. Counts outside the table score n*200.
func LineScore(n int) int {
	if n <= 0 {
		return 0
	}
	if score, ok := lineScores[n]; ok {
		return score
	}
	return n * 200
}
