package form

import (
	"errors"

	"github.com/goliatone/go-formbuilder/pkg/element"
)

// ErrClosed is returned when acting on a dialog that has been closed.
var ErrClosed = errors.New("form: dialog is closed")

// State is the lifecycle position of a Dialog.
type State int

const (
	StateBuilt State = iota
	StateValidating
	StateErrorsShown
	StateSubmitted
	StateCancelled
	StateDismissed
)

func (s State) String() string {
	switch s {
	case StateBuilt:
		return "built"
	case StateValidating:
		return "validating"
	case StateErrorsShown:
		return "errors-shown"
	case StateSubmitted:
		return "submitted"
	case StateCancelled:
		return "cancelled"
	case StateDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// Submit is consulted once the form is valid. Validate may veto; OnSubmit
// runs otherwise. The dialog stays open; call Dismiss to close it.
type Submit interface {
	Validate(d *Dialog) bool
	OnSubmit(d *Dialog)
}

// Dismiss receives close notifications. OnCancel fires for a user cancel,
// OnDismiss for every close. Neither can keep the dialog open.
type Dismiss interface {
	OnCancel(d *Dialog)
	OnDismiss(d *Dialog)
}

// SubmitFuncs adapts functions into a Submit. A nil ValidateFunc accepts.
type SubmitFuncs struct {
	ValidateFunc func(d *Dialog) bool
	SubmitFunc   func(d *Dialog)
}

// Validate calls ValidateFunc.
func (s SubmitFuncs) Validate(d *Dialog) bool {
	if s.ValidateFunc == nil {
		return true
	}
	return s.ValidateFunc(d)
}

// OnSubmit calls SubmitFunc.
func (s SubmitFuncs) OnSubmit(d *Dialog) {
	if s.SubmitFunc != nil {
		s.SubmitFunc(d)
	}
}

// DismissFuncs adapts functions into a Dismiss.
type DismissFuncs struct {
	CancelFunc  func(d *Dialog)
	DismissFunc func(d *Dialog)
}

// OnCancel calls CancelFunc.
func (f DismissFuncs) OnCancel(d *Dialog) {
	if f.CancelFunc != nil {
		f.CancelFunc(d)
	}
}

// OnDismiss calls DismissFunc.
func (f DismissFuncs) OnDismiss(d *Dialog) {
	if f.DismissFunc != nil {
		f.DismissFunc(d)
	}
}

// DialogOption configures a Dialog.
type DialogOption func(*Dialog)

// WithSubmit sets the submit callback.
func WithSubmit(s Submit) DialogOption {
	return func(d *Dialog) {
		d.submit = s
	}
}

// WithDismiss sets the close callbacks.
func WithDismiss(cb Dismiss) DialogOption {
	return func(d *Dialog) {
		d.dismiss = cb
	}
}

// WithCloser registers a host hook run when the dialog closes, before
// OnDismiss.
func WithCloser(fn func()) DialogOption {
	return func(d *Dialog) {
		d.closer = fn
	}
}

// Dialog drives one interactive session of a form.
type Dialog struct {
	form    *Form
	submit  Submit
	dismiss Dismiss
	closer  func()
	state   State
	closed  bool
}

// Dialog renders the form into c and returns the session controlling it.
func (f *Form) Dialog(c element.Container, opts ...DialogOption) (*Dialog, error) {
	if err := f.MakeView(c); err != nil {
		return nil, err
	}
	d := &Dialog{form: f, state: StateBuilt}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d, nil
}

// Form returns the form the dialog shows.
func (d *Dialog) Form() *Form { return d.form }

// State returns the latest lifecycle state.
func (d *Dialog) State() State { return d.state }

// Open reports whether the dialog has not been closed.
func (d *Dialog) Open() bool { return !d.closed }

// Submit handles the affirmative action. It reports whether the submission
// went through; invalid input shows errors and keeps the dialog open.
func (d *Dialog) Submit() (bool, error) {
	if d.closed {
		return false, ErrClosed
	}
	d.state = StateValidating
	valid, err := d.form.Validate()
	if !valid {
		d.state = StateErrorsShown
		return false, err
	}
	if d.submit == nil {
		d.state = StateSubmitted
		d.close()
		return true, nil
	}
	if !d.submit.Validate(d) {
		d.state = StateBuilt
		return false, nil
	}
	d.state = StateSubmitted
	d.submit.OnSubmit(d)
	return true, nil
}

// Cancel handles a user cancel: OnCancel, then the close.
func (d *Dialog) Cancel() {
	if d.closed {
		return
	}
	d.state = StateCancelled
	if d.dismiss != nil {
		d.dismiss.OnCancel(d)
	}
	d.close()
}

// Dismiss closes the dialog. Later calls do nothing.
func (d *Dialog) Dismiss() {
	if d.closed {
		return
	}
	if d.state != StateSubmitted {
		d.state = StateDismissed
	}
	d.close()
}

func (d *Dialog) close() {
	if d.closed {
		return
	}
	d.closed = true
	d.form.ClearValidateError()
	if d.closer != nil {
		d.closer()
	}
	if d.dismiss != nil {
		d.dismiss.OnDismiss(d)
	}
}
