package telemetry

// Slice returns the ordered subsequence of points with
// window.Start <= time <= window.End, inclusive on both ends. The result is
// a copy; the source series is never mutated. An empty result is not an
// error here — callers decide whether an empty slice is fatal.
func (s *Series) Slice(w Window) []Trackpoint {
	w = w.UTC()

	out := make([]Trackpoint, 0)
	for _, tp := range s.Points {
		if tp.Time.Before(w.Start) {
			continue
		}
		if tp.Time.After(w.End) {
			break
		}
		out = append(out, tp)
	}
	return out
}
