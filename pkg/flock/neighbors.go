package flock

// Neighbors returns the indices of every agent j != i whose distance to agent
// i is at most radius (closed interval, so ties at exactly radius stay stable
// under floating-point equality). Results are appended to buf, which callers
// can reuse across frames to avoid allocation.
//
// A direct all-pairs scan is the right tool here: the population is capped at
// the renderer's instance capacity (50), far below the point where a spatial
// grid pays for its bookkeeping.
func Neighbors(snapshot []Agent, i int, radius float64, buf []int) []int {
	radiusSq := radius * radius
	me := snapshot[i].Pos
	for j := range snapshot {
		if j == i {
			continue
		}
		if me.DistanceSquaredTo(snapshot[j].Pos) <= radiusSq {
			buf = append(buf, j)
		}
	}
	return buf
}
