package nothofagus

// InjectPress queues a synthetic press of key. Injected triggers are
// delivered to the controller one per frame, ahead of real keyboard input.
func (c *Canvas) InjectPress(key Key) {
	c.injectQueue = append(c.injectQueue, KeyboardTrigger{Key: key, Trigger: Press})
}

// InjectRelease queues a synthetic release of key.
func (c *Canvas) InjectRelease(key Key) {
	c.injectQueue = append(c.injectQueue, KeyboardTrigger{Key: key, Trigger: Release})
}

// InjectTap queues a press followed by a release of key. Consumes two frames.
func (c *Canvas) InjectTap(key Key) {
	c.InjectPress(key)
	c.InjectRelease(key)
}

// PendingInjections returns the number of queued synthetic triggers.
func (c *Canvas) PendingInjections() int {
	return len(c.injectQueue)
}

// popInjected removes the oldest synthetic trigger.
func (c *Canvas) popInjected() (KeyboardTrigger, bool) {
	if len(c.injectQueue) == 0 {
		return KeyboardTrigger{}, false
	}
	t := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]
	return t, true
}
