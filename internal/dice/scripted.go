package dice

// Scripted replays a fixed list of values before falling back to another
// Source. Values are returned verbatim, without clamping to the die size,
// so tests can force any table entry.
type Scripted struct {
	values   []int
	next     int
	fallback Source
}

// NewScripted creates a scripted source. A nil fallback uses a time-seeded
// Roller once the script runs out.
func NewScripted(fallback Source, values ...int) *Scripted {
	if fallback == nil {
		fallback = NewRoller(TimeSeed())
	}
	return &Scripted{
		values:   append([]int(nil), values...),
		fallback: fallback,
	}
}

// Push appends more values to the script.
func (s *Scripted) Push(values ...int) {
	s.values = append(s.values, values...)
}

// Roll returns the next scripted value, or a fallback roll when exhausted.
func (s *Scripted) Roll(sides int) int {
	if s.next < len(s.values) {
		v := s.values[s.next]
		s.next++
		return v
	}
	return s.fallback.Roll(sides)
}

// Remaining reports how many scripted values have not been consumed.
func (s *Scripted) Remaining() int {
	return len(s.values) - s.next
}

// Recorder wraps a Source and remembers every draw, which lets a finished
// game be replayed through Scripted.
type Recorder struct {
	src   Source
	draws []int
}

// NewRecorder wraps src.
func NewRecorder(src Source) *Recorder {
	return &Recorder{src: src}
}

// Roll delegates to the wrapped source and records the result.
func (r *Recorder) Roll(sides int) int {
	v := r.src.Roll(sides)
	r.draws = append(r.draws, v)
	return v
}

// Draws returns a copy of all recorded values in draw order.
func (r *Recorder) Draws() []int {
	return append([]int(nil), r.draws...)
}
