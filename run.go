package nothofagus

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

// SetController sets the controller whose inputs are processed each frame.
func (c *Canvas) SetController(ctrl *Controller) {
	c.controller = ctrl
}

// Controller returns the attached controller, or nil.
func (c *Canvas) Controller() *Controller {
	return c.controller
}

// SetUpdateFunc sets the callback invoked once per frame with the frame's
// delta time in milliseconds.
func (c *Canvas) SetUpdateFunc(update func(dt float64)) {
	c.update = update
}

// Update runs the logic half of a frame: the test runner, one injected
// trigger, controller actions, then the update callback. dt is in
// milliseconds.
func (c *Canvas) Update(dt float64) {
	if c.testRunner != nil {
		c.testRunner.step(c)
	}
	if t, ok := c.popInjected(); ok && c.controller != nil {
		c.controller.Activate(t)
	}
	if c.controller != nil {
		c.controller.ProcessInputs()
	}
	if c.update != nil {
		c.update(dt)
	}
	c.elapsed += dt
	c.perf.Update(c.elapsed / 1000)
}

// Step runs one full frame headlessly: Update then Render.
func (c *Canvas) Step(dt float64) {
	c.Update(dt)
	c.Render()
}

// Draw renders the frame onto screen: clear color, entities, the stats
// overlay and any queued screenshots. The canvas must use the ebiten device.
func (c *Canvas) Draw(screen *ebiten.Image) {
	bg := c.cfg.ClearColor
	bg.A = 1
	screen.Fill(bg.toRGBA())
	if d, ok := c.device.(*ebitenDevice); ok {
		d.setTarget(screen)
	}
	c.Render()
	if c.stats {
		ebitenutil.DebugPrint(screen, c.perf.String())
	}
	c.flushScreenshots(screen)
}

// Close stops the frame loop after the current frame. Outside Run it
// releases GPU resources immediately.
func (c *Canvas) Close() {
	c.closing = true
	if !c.running {
		c.teardown()
	}
}

// Closed reports whether GPU resources have been released.
func (c *Canvas) Closed() bool {
	return c.closed
}

// Run opens a window and drives the frame loop until Close is called or the
// window is closed. update receives the frame delta time in milliseconds.
// controller may be nil. Every GPU resource is released before Run returns.
func (c *Canvas) Run(update func(dt float64), controller *Controller) error {
	if c.closed {
		return fmt.Errorf("nothofagus: run closed canvas")
	}
	c.SetUpdateFunc(update)
	c.SetController(controller)

	ebiten.SetWindowSize(c.cfg.ScreenWidth*c.cfg.PixelSize, c.cfg.ScreenHeight*c.cfg.PixelSize)
	ebiten.SetWindowTitle(c.cfg.Title)

	c.logger.Debug("run",
		zap.Int("width", c.cfg.ScreenWidth),
		zap.Int("height", c.cfg.ScreenHeight),
		zap.Int("pixelSize", c.cfg.PixelSize))

	c.running = true
	err := ebiten.RunGame(&game{canvas: c})
	c.running = false
	c.teardown()
	if err != nil {
		return fmt.Errorf("nothofagus: run: %w", err)
	}
	return nil
}

// game adapts a Canvas to ebiten.Game.
type game struct {
	canvas *Canvas
}

func (g *game) Update() error {
	c := g.canvas
	if c.closing {
		return ebiten.Termination
	}
	c.keyBuf = c.keys.poll(c.keyBuf[:0])
	if c.controller != nil {
		for _, t := range c.keyBuf {
			c.controller.Activate(t)
		}
	}
	c.Update(1000 / float64(ebiten.TPS()))
	if c.closing {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.canvas.Draw(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.canvas.cfg.ScreenWidth, g.canvas.cfg.ScreenHeight
}
