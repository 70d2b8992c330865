package view

import (
	"context"
	"log/slog"

	"github.com/alexandernizov/mogakco/internal/pkg/async"
	"github.com/alexandernizov/mogakco/internal/pkg/logger/sl"
)

type Screen interface {
	Title() string
}

// BindFunc connects a screen to its view model when the screen is attached.
// Everything it starts must run inside scope.
type BindFunc func(scope *async.Scope, d Dispatcher)

// Controller hosts a screen on the navigation stack.
type Controller struct {
	screen Screen
	bind   BindFunc
	scope  *async.Scope
}

func NewController(screen Screen, bind BindFunc) *Controller {
	return &Controller{screen: screen, bind: bind}
}

func (c *Controller) Screen() Screen {
	return c.screen
}

func (c *Controller) Attached() bool {
	return c.scope != nil
}

func (c *Controller) attach(ctx context.Context, d Dispatcher) {
	if c.scope != nil {
		return
	}
	c.scope = async.NewScope(ctx)
	if c.bind != nil {
		c.bind(c.scope, d)
	}
}

func (c *Controller) detach() error {
	if c.scope == nil {
		return nil
	}
	err := c.scope.Dispose()
	c.scope = nil
	return err
}

// Navigator is the navigation stack. All methods must be called on the main
// loop.
type Navigator struct {
	ctx      context.Context
	log      *slog.Logger
	loop     Dispatcher
	stack    []*Controller
	onChange func(top *Controller)
}

func NewNavigator(ctx context.Context, log *slog.Logger, loop Dispatcher) *Navigator {
	return &Navigator{ctx: ctx, log: log, loop: loop}
}

// OnChange registers fn to be called after every stack change.
func (n *Navigator) OnChange(fn func(top *Controller)) {
	n.onChange = fn
}

func (n *Navigator) Push(c *Controller) {
	n.stack = append(n.stack, c)
	c.attach(n.ctx, n.loop)
	n.changed()
}

// Pop removes the top screen and disposes everything bound to it. The root
// screen is never popped.
func (n *Navigator) Pop() *Controller {
	if len(n.stack) <= 1 {
		return nil
	}
	top := n.stack[len(n.stack)-1]
	n.stack = n.stack[:len(n.stack)-1]
	n.dispose(top)
	n.changed()
	return top
}

// SetRoot replaces the whole stack with c.
func (n *Navigator) SetRoot(c *Controller) {
	n.Close()
	n.stack = []*Controller{c}
	c.attach(n.ctx, n.loop)
	n.changed()
}

// Close disposes every screen on the stack.
func (n *Navigator) Close() {
	for i := len(n.stack) - 1; i >= 0; i-- {
		n.dispose(n.stack[i])
	}
	n.stack = nil
}

func (n *Navigator) Top() *Controller {
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

func (n *Navigator) Depth() int {
	return len(n.stack)
}

func (n *Navigator) dispose(c *Controller) {
	if err := c.detach(); err != nil {
		n.log.Warn("screen finished with error", slog.String("screen", c.screen.Title()), sl.Err(err))
	}
}

func (n *Navigator) changed() {
	if n.onChange != nil {
		n.onChange(n.Top())
	}
}
