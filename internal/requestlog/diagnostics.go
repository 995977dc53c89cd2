package requestlog

import (
	"sync"

	"github.com/labstack/echo/v4"
)

// diagnosticsKey is the echo.Context store key for the per-request
// Diagnostics handle.
const diagnosticsKey = "reqlog.diagnostics"

type collectionState int

const (
	stateOpen collectionState = iota
	stateCompleted
	stateReleased
)

// Diagnostics is the per-request property bag. Handlers retrieve it with
// From and call Set to add properties to the completion event. It is
// owned by one request; the middleware completes and releases it when
// the request finishes.
type Diagnostics struct {
	mu    sync.Mutex
	state collectionState
	props []Property
}

// pool reuses Diagnostics across requests so steady-state request
// handling does not allocate a bag per request.
var diagnosticsPool = sync.Pool{
	New: func() any { return &Diagnostics{} },
}

func newDiagnostics() *Diagnostics {
	d := diagnosticsPool.Get().(*Diagnostics)
	d.state = stateOpen
	return d
}

// From returns the request's Diagnostics, or nil when the middleware is
// not active for this request (not registered, or the path is ignored).
// A nil Diagnostics is safe to use; Set is then a no-op.
func From(c echo.Context) *Diagnostics {
	d, _ := c.Get(diagnosticsKey).(*Diagnostics)
	return d
}

// Set records a property for the completion event. Calls after the
// collection completed, or on a nil receiver, are ignored.
func (d *Diagnostics) Set(name string, value any) {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != stateOpen {
		return
	}
	d.props = append(d.props, Property{Name: name, Value: value})
}

// TryComplete finalizes the collection and hands out the accumulated
// properties. Only the first call succeeds; any further call reports
// ok=false with no properties, so invoking it from both the success and
// the failure path never double-counts.
func (d *Diagnostics) TryComplete() (props []Property, ok bool) {
	if d == nil {
		return nil, false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != stateOpen {
		return nil, false
	}
	d.state = stateCompleted
	return d.props, true
}

// Release returns the bag to the pool. Called exactly once per request
// on every exit path; safe after TryComplete. The handed-out property
// slice must not be used after Release.
func (d *Diagnostics) Release() {
	if d == nil {
		return
	}
	d.mu.Lock()
	if d.state == stateReleased {
		d.mu.Unlock()
		return
	}
	d.state = stateReleased
	d.props = d.props[:0]
	d.mu.Unlock()
	diagnosticsPool.Put(d)
}
