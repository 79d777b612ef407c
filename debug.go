package nothofagus

import (
	"time"

	"go.uber.org/zap"
)

// frameStats holds per-frame timing and resource metrics.
// Only logged when debug mode is on.
type frameStats struct {
	materializeTime time.Duration
	sortTime        time.Duration
	submitTime      time.Duration
	totalTime       time.Duration
	drawCalls       int
	uploads         int
	meshesBuilt     int
	meshesDestroyed int
	released        int
}

// debugMaxEntities is the entity count above which debug mode warns.
const debugMaxEntities = 10000

// logFrameStats writes one debug record per frame.
func (c *Canvas) logFrameStats(st frameStats) {
	c.logger.Debug("frame",
		zap.Duration("materialize", st.materializeTime),
		zap.Duration("sort", st.sortTime),
		zap.Duration("submit", st.submitTime),
		zap.Duration("total", st.totalTime),
		zap.Int("drawCalls", st.drawCalls),
		zap.Int("uploads", st.uploads),
		zap.Int("meshesBuilt", st.meshesBuilt),
		zap.Int("meshesDestroyed", st.meshesDestroyed),
		zap.Int("released", st.released),
	)
	if n := c.bellotas.Len() + c.animated.Len(); n > debugMaxEntities {
		c.logger.Warn("entity count exceeds threshold",
			zap.Int("entities", n), zap.Int("threshold", debugMaxEntities))
	}
	if n := len(c.orphanTextures) + len(c.orphanArrays); n > 0 {
		c.logger.Debug("removed textures still referenced", zap.Int("count", n))
	}
}
