package doughfall

import "math"

// Trick identifies a recognized movement stunt. Pulling one off awards
// bonus score, so each detector has a cooldown to stop farming.
type Trick int

const (
	TrickNone Trick = iota
	TrickBorderTrace
	TrickLoop
	TrickHelix
	TrickSpiral
	TrickWallDancer
	TrickCounterLoop
)

func (t Trick) String() string {
	switch t {
	case TrickBorderTrace:
		return "BORDER TRACE"
	case TrickLoop:
		return "LOOP"
	case TrickHelix:
		return "HELIX"
	case TrickSpiral:
		return "SPIRAL"
	case TrickWallDancer:
		return "WALL DANCER"
	case TrickCounterLoop:
		return "COUNTER LOOP"
	}
	return ""
}

// CheckTricks scans the recent movement history for stunts. The first
// matching detector wins; border trace has a longer cooldown than the
// rest because it covers the whole field.
func (p *Player) CheckTricks(fieldW float64) Trick {
	if p.TrickCooldownMS > 0 || len(p.History) < 20 {
		return TrickNone
	}

	if p.BorderTouched[borderLeft] && p.BorderTouched[borderRight] &&
		p.BorderTouched[borderTop] && p.BorderTouched[borderBottom] {
		p.BorderTouched = [4]bool{}
		p.TrickCooldownMS = 5000
		return TrickBorderTrace
	}

	if len(p.History) >= 30 && detectLoop(p.History[len(p.History)-30:]) {
		p.TrickCooldownMS = 3000
		return TrickLoop
	}
	if len(p.History) >= 25 && detectHelix(p.History[len(p.History)-25:]) {
		p.TrickCooldownMS = 3000
		return TrickHelix
	}
	if len(p.History) >= 35 && detectSpiral(p.History[len(p.History)-35:]) {
		p.TrickCooldownMS = 3000
		return TrickSpiral
	}
	if len(p.History) >= 20 && detectWallDancer(p.History[len(p.History)-20:], fieldW) {
		p.TrickCooldownMS = 3000
		return TrickWallDancer
	}
	if len(p.History) >= 30 && detectCounterLoop(p.History[len(p.History)-30:]) {
		p.TrickCooldownMS = 3000
		return TrickCounterLoop
	}
	return TrickNone
}

// centroid returns the average position of the samples.
func centroid(points []historyPoint) (float64, float64) {
	var cx, cy float64
	for _, p := range points {
		cx += p.X
		cy += p.Y
	}
	n := float64(len(points))
	return cx / n, cy / n
}

// circleStats returns the mean distance from the centroid and its
// variance. A tight circle has low variance relative to the radius.
func circleStats(points []historyPoint) (avg, variance float64) {
	cx, cy := centroid(points)
	distances := make([]float64, len(points))
	for i, p := range points {
		dx, dy := p.X-cx, p.Y-cy
		distances[i] = math.Sqrt(dx*dx + dy*dy)
		avg += distances[i]
	}
	avg /= float64(len(points))
	for _, d := range distances {
		variance += (d - avg) * (d - avg)
	}
	variance /= float64(len(points))
	return avg, variance
}

// detectLoop recognizes circular motion of a sensible radius.
func detectLoop(points []historyPoint) bool {
	if len(points) < 20 {
		return false
	}
	avg, variance := circleStats(points)
	if avg < 30 || avg > 150 {
		return false
	}
	return variance < avg*0.3
}

// detectHelix counts horizontal direction reversals, a zigzag path.
func detectHelix(points []historyPoint) bool {
	if len(points) < 20 {
		return false
	}
	changes := 0
	for i := 2; i < len(points); i++ {
		dx1 := points[i-1].X - points[i-2].X
		dx2 := points[i].X - points[i-1].X
		if (dx1 > 0 && dx2 < 0) || (dx1 < 0 && dx2 > 0) {
			changes++
		}
	}
	return changes >= 4
}

// detectSpiral looks for an expanding or contracting orbit: the mean
// radius of the second half of the window differs clearly from the first.
func detectSpiral(points []historyPoint) bool {
	if len(points) < 30 {
		return false
	}
	cx, cy := centroid(points)
	half := len(points) / 2
	var first, second float64
	for i, p := range points {
		dx, dy := p.X-cx, p.Y-cy
		d := math.Sqrt(dx*dx + dy*dy)
		if i < half {
			first += d
		} else {
			second += d
		}
	}
	first /= float64(half)
	second /= float64(len(points) - half)
	if first <= 0 {
		return false
	}
	ratio := second / first
	return ratio > 1.3 || ratio < 0.7
}

// detectWallDancer counts samples hugging the left and right walls.
func detectWallDancer(points []historyPoint, fieldW float64) bool {
	if len(points) < 15 {
		return false
	}
	touches := 0
	for _, p := range points[len(points)-15:] {
		if p.X < 20 || p.X > fieldW-20 {
			touches++
		}
	}
	return touches >= 4
}

// detectCounterLoop recognizes a circle traced counter-clockwise, using
// the sign of consecutive cross products.
func detectCounterLoop(points []historyPoint) bool {
	if len(points) < 25 {
		return false
	}
	avg, variance := circleStats(points)
	if avg < 30 || avg > 150 {
		return false
	}
	if variance > avg*0.3 {
		return false
	}

	ccw := 0
	for i := 1; i < len(points)-1; i++ {
		p1, p2, p3 := points[i-1], points[i], points[i+1]
		cross := (p2.X-p1.X)*(p3.Y-p2.Y) - (p2.Y-p1.Y)*(p3.X-p2.X)
		if cross > 0 {
			ccw++
		}
	}
	return float64(ccw) > float64(len(points))*0.4
}
