package element

import (
	"time"

	"github.com/goliatone/go-formbuilder/pkg/formmodel"
	"github.com/goliatone/go-formbuilder/pkg/validator"
)

// Default display layouts.
const (
	DefaultDateLayout   = "Jan 2, 2006"
	DefaultTimeLayout   = "03:04 PM"
	DefaultTimeLayout24 = "15:04"
)

// DatePicker stores a Date value chosen through a host picker.
type DatePicker struct {
	base
	input
	layout   string
	location *time.Location
	initial  time.Time
}

// NewDatePicker returns a date element displayed with DefaultDateLayout in
// the local time zone.
func NewDatePicker(name, label string, opts ...InputOption) *DatePicker {
	return &DatePicker{
		base:     newBase(name),
		input:    newInputWith(label, opts),
		layout:   DefaultDateLayout,
		location: time.Local,
	}
}

// SetDisplayLayout sets the time.Format layout of the displayed date.
func (d *DatePicker) SetDisplayLayout(layout string) *DatePicker {
	if layout != "" {
		d.layout = layout
		d.refresh()
	}
	return d
}

// SetLocation sets the zone picked dates are built in.
func (d *DatePicker) SetLocation(loc *time.Location) *DatePicker {
	if loc != nil {
		d.location = loc
		d.refresh()
	}
	return d
}

// Location returns the zone picked dates are built in.
func (d *DatePicker) Location() *time.Location { return d.location }

// SetDate sets the initial date. It reaches the model when the view is
// created, so a form validated without views does not see it.
func (d *DatePicker) SetDate(date time.Time) *DatePicker {
	d.initial = date
	if d.view != nil && d.model != nil && !date.IsZero() {
		d.model.Set(d.name, formmodel.Date(date))
	}
	return d
}

// Date returns the current model date.
func (d *DatePicker) Date() (time.Time, bool) {
	v := d.value()
	if v.Kind() != formmodel.KindDate {
		return time.Time{}, false
	}
	return v.Moment()
}

// Pick writes the chosen calendar day at midnight in the element's zone.
func (d *DatePicker) Pick(year int, month time.Month, day int) error {
	return d.write("pick", formmodel.Date(time.Date(year, month, day, 0, 0, 0, 0, d.location)))
}

// PickerSeed returns the date a picker should open on: the current value,
// the initial date or now.
func (d *DatePicker) PickerSeed(now time.Time) time.Time {
	if date, ok := d.Date(); ok {
		return date.In(d.location)
	}
	if !d.initial.IsZero() {
		return d.initial.In(d.location)
	}
	return now.In(d.location)
}

// Display formats the current value; empty when unset.
func (d *DatePicker) Display() string {
	date, ok := d.Date()
	if !ok {
		return ""
	}
	return date.In(d.location).Format(d.layout)
}

func (d *DatePicker) Value() formmodel.Value { return d.value() }

func (d *DatePicker) ValidateInput() []*validator.InputError { return validateInput(d) }

func (d *DatePicker) SetModel(m *formmodel.Model) { setModel(d, m) }

func (d *DatePicker) MakeView(c Container) error { return makeView(d, c) }

// TimePicker stores a Time value chosen through a host picker.
type TimePicker struct {
	base
	input
	layout  string
	hour24  bool
	initial time.Time
	now     func() time.Time
}

// NewTimePicker returns a time element displayed with DefaultTimeLayout.
func NewTimePicker(name, label string, opts ...InputOption) *TimePicker {
	return &TimePicker{
		base:   newBase(name),
		input:  newInputWith(label, opts),
		layout: DefaultTimeLayout,
		now:    time.Now,
	}
}

// Set24Hour switches between 12- and 24-hour display. A custom layout set
// with SetDisplayLayout is kept.
func (t *TimePicker) Set24Hour(on bool) *TimePicker {
	t.hour24 = on
	switch {
	case on && t.layout == DefaultTimeLayout:
		t.layout = DefaultTimeLayout24
	case !on && t.layout == DefaultTimeLayout24:
		t.layout = DefaultTimeLayout
	}
	t.refresh()
	return t
}

// Is24Hour reports the picker clock mode.
func (t *TimePicker) Is24Hour() bool { return t.hour24 }

// SetDisplayLayout sets the time.Format layout of the displayed time.
func (t *TimePicker) SetDisplayLayout(layout string) *TimePicker {
	if layout != "" {
		t.layout = layout
		t.refresh()
	}
	return t
}

// SetClock overrides the clock used when no time has been picked yet.
func (t *TimePicker) SetClock(now func() time.Time) *TimePicker {
	if now != nil {
		t.now = now
	}
	return t
}

// SetTime sets the initial time. Like SetDate it is only written to the
// model once a view exists.
func (t *TimePicker) SetTime(at time.Time) *TimePicker {
	t.initial = at
	if t.view != nil && t.model != nil && !at.IsZero() {
		t.model.Set(t.name, formmodel.Time(at))
	}
	return t
}

// Time returns the current model time.
func (t *TimePicker) Time() (time.Time, bool) {
	v := t.value()
	if v.Kind() != formmodel.KindTime {
		return time.Time{}, false
	}
	return v.Moment()
}

// Pick sets hour and minute on the current value's day, or today.
func (t *TimePicker) Pick(hour, minute int) error {
	day := t.PickerSeed()
	at := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
	return t.write("pick", formmodel.Time(at))
}

// PickerSeed returns the time a picker should open on: the current value,
// the initial time or the clock.
func (t *TimePicker) PickerSeed() time.Time {
	if at, ok := t.Time(); ok {
		return at
	}
	if !t.initial.IsZero() {
		return t.initial
	}
	return t.now()
}

// Display formats the current value; empty when unset.
func (t *TimePicker) Display() string {
	at, ok := t.Time()
	if !ok {
		return ""
	}
	return at.Format(t.layout)
}

func (t *TimePicker) Value() formmodel.Value { return t.value() }

func (t *TimePicker) ValidateInput() []*validator.InputError { return validateInput(t) }

func (t *TimePicker) SetModel(m *formmodel.Model) { setModel(t, m) }

func (t *TimePicker) MakeView(c Container) error { return makeView(t, c) }
