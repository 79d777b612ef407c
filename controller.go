package nothofagus

// Action is invoked when its trigger is processed.
type Action func()

// TriggerSink is the interface for optional ECS integration. When set on a
// Controller, every processed trigger is forwarded to it, bound or not.
type TriggerSink interface {
	EmitTrigger(trigger KeyboardTrigger)
}

// Controller maps keyboard triggers to actions. Triggers are queued by
// Activate and dispatched in arrival order by ProcessInputs.
type Controller struct {
	actions map[KeyboardTrigger]Action
	queue   []KeyboardTrigger
	spare   []KeyboardTrigger
	sink    TriggerSink
}

// NewController creates a controller with no actions.
func NewController() *Controller {
	return &Controller{actions: make(map[KeyboardTrigger]Action)}
}

// RegisterAction binds action to trigger. Returns false, leaving the existing
// binding in place, if trigger is already bound.
func (c *Controller) RegisterAction(trigger KeyboardTrigger, action Action) bool {
	if _, ok := c.actions[trigger]; ok {
		return false
	}
	c.actions[trigger] = action
	return true
}

// MustRegisterAction is like RegisterAction but panics with
// ErrDuplicateRegistration when trigger is already bound.
func (c *Controller) MustRegisterAction(trigger KeyboardTrigger, action Action) {
	if !c.RegisterAction(trigger, action) {
		fail(ErrDuplicateRegistration, "action for %s %s", trigger.Key, trigger.Trigger)
	}
}

// DeleteAction unbinds trigger. Returns false if it was not bound.
func (c *Controller) DeleteAction(trigger KeyboardTrigger) bool {
	if _, ok := c.actions[trigger]; !ok {
		return false
	}
	delete(c.actions, trigger)
	return true
}

// HasAction reports whether trigger is bound.
func (c *Controller) HasAction(trigger KeyboardTrigger) bool {
	_, ok := c.actions[trigger]
	return ok
}

// Activate queues trigger for the next ProcessInputs.
func (c *Controller) Activate(trigger KeyboardTrigger) {
	c.queue = append(c.queue, trigger)
}

// Pending returns the number of queued triggers.
func (c *Controller) Pending() int {
	return len(c.queue)
}

// SetTriggerSink sets the optional ECS bridge.
func (c *Controller) SetTriggerSink(sink TriggerSink) {
	c.sink = sink
}

// ProcessInputs drains the queue in arrival order, invoking the action bound
// to each trigger. Unbound triggers are dropped. Triggers activated by an
// action are processed in the same call, after the ones already queued, so
// the queue is empty on return.
func (c *Controller) ProcessInputs() {
	for len(c.queue) > 0 {
		batch := c.queue
		c.queue = c.spare[:0]
		for _, trigger := range batch {
			if c.sink != nil {
				c.sink.EmitTrigger(trigger)
			}
			if action, ok := c.actions[trigger]; ok {
				action()
			}
		}
		clear(batch)
		c.spare = batch[:0]
	}
}
