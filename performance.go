package nothofagus

import "fmt"

// defaultPerformancePeriod is the averaging window in seconds.
const defaultPerformancePeriod = 0.5

// PerformanceMonitor averages frames per second and milliseconds per frame
// over a fixed period.
type PerformanceMonitor struct {
	current float64
	timer   float64
	period  float64
	frames  int
	fps     float64
	ms      float64
}

// NewPerformanceMonitor creates a monitor whose reference time is
// currentTime and that averages over period, both in seconds.
func NewPerformanceMonitor(currentTime, period float64) *PerformanceMonitor {
	return &PerformanceMonitor{current: currentTime, period: period}
}

// Update must be called once per frame with the current time in seconds.
func (m *PerformanceMonitor) Update(currentTime float64) {
	m.frames++
	m.timer += currentTime - m.current
	m.current = currentTime
	if m.timer < m.period {
		return
	}
	m.fps = float64(m.frames) / m.timer
	m.ms = 1000 * m.timer / float64(m.frames)
	m.frames = 0
	m.timer = 0
}

// FPS returns the last averaged frames per second.
func (m *PerformanceMonitor) FPS() float64 { return m.fps }

// MS returns the last averaged milliseconds per frame.
func (m *PerformanceMonitor) MS() float64 { return m.ms }

func (m *PerformanceMonitor) String() string {
	return fmt.Sprintf("%.2f fps\n%.2f ms", m.fps, m.ms)
}
