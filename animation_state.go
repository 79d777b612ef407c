package nothofagus

// AnimationState cycles through texture layers, showing each for a duration.
// Durations use the same unit as the deltaTime passed to Update (the Canvas
// supplies milliseconds). The sequence loops forever.
type AnimationState struct {
	name    string
	layers  []int
	times   []float64
	cursor  int
	elapsed float64
}

// NewAnimationState creates a state showing layers[k] for times[k]. Panics
// with ErrDimensionMismatch if the slices differ in length or are empty.
func NewAnimationState(name string, layers []int, times []float64) AnimationState {
	if len(layers) != len(times) {
		fail(ErrDimensionMismatch, "animation %q has %d layers and %d times", name, len(layers), len(times))
	}
	if len(layers) == 0 {
		fail(ErrDimensionMismatch, "animation %q has no layers", name)
	}
	return AnimationState{
		name:   name,
		layers: append([]int(nil), layers...),
		times:  append([]float64(nil), times...),
	}
}

// Name returns the state name.
func (s *AnimationState) Name() string {
	return s.name
}

// Update accumulates dt and, once the current layer has been shown for at
// least its duration, moves to the next layer. The overflow is dropped and at
// most one layer is advanced per call.
func (s *AnimationState) Update(dt float64) {
	s.elapsed += dt
	if s.elapsed >= s.times[s.cursor] {
		s.elapsed = 0
		s.cursor = (s.cursor + 1) % len(s.layers)
	}
}

// CurrentLayer returns the texture layer shown now, not the cursor.
func (s *AnimationState) CurrentLayer() int {
	return s.layers[s.cursor]
}

// Cursor returns the index of the current (layer, time) pair.
func (s *AnimationState) Cursor() int {
	return s.cursor
}

// Elapsed returns the time accumulated on the current pair.
func (s *AnimationState) Elapsed() float64 {
	return s.elapsed
}

// Len returns the number of (layer, time) pairs.
func (s *AnimationState) Len() int {
	return len(s.layers)
}

// Reset rewinds to the first pair.
func (s *AnimationState) Reset() {
	s.cursor = 0
	s.elapsed = 0
}
