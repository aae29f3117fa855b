package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-formbuilder/pkg/element"
	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/formmodel"
)

const (
	dateEntryLayout = time.DateOnly
	timeEntryLayout = "15:04"
)

// Result is the outcome of a session.
type Result struct {
	State  form.State
	Values map[string]formmodel.Value
	// Attempts counts submit attempts, including the successful one.
	Attempts int
}

// Session runs forms in the terminal. Every input is prompted once; after a
// failed submit only the fields showing an error are asked again.
type Session struct {
	driver      PromptDriver
	theme       Theme
	now         func() time.Time
	maxAttempts int
}

// New builds a session. Without WithPromptDriver the survey driver is used.
func New(options ...Option) (*Session, error) {
	s := &Session{
		theme: DefaultTheme,
		now:   time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	return s, nil
}

// ErrTooManyAttempts is returned when WithMaxAttempts is exceeded.
var ErrTooManyAttempts = errors.New("tui: too many invalid submissions")

// Run shows f and drives its dialog until it closes. An abort cancels the
// dialog and returns ErrAborted.
func (s *Session) Run(ctx context.Context, f *form.Form, options ...form.DialogOption) (Result, error) {
	if f == nil {
		return Result{}, ErrNilForm
	}
	root := &container{}
	d, err := f.Dialog(root, options...)
	if err != nil {
		return Result{}, err
	}
	fields := root.fields()

	result := Result{}
	finish := func(err error) (Result, error) {
		result.State = d.State()
		result.Values = f.Values()
		return result, err
	}
	abort := func(err error) (Result, error) {
		if errors.Is(err, ErrAborted) {
			d.Cancel()
		}
		return finish(err)
	}

	if title := f.Title(); title != "" {
		if err := s.info(ctx, title); err != nil {
			return abort(err)
		}
	}

	pending := fields
	for d.Open() {
		for _, fv := range pending {
			if err := s.prompt(ctx, fv); err != nil {
				return abort(err)
			}
		}
		submit, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: s.theme.PromptPrefix + f.SubmitText() + "?",
			Default: true,
			Help:    "No: " + f.CancelText(),
		})
		if err != nil {
			return abort(err)
		}
		if !submit {
			d.Cancel()
			return finish(nil)
		}

		result.Attempts++
		ok, err := d.Submit()
		if err != nil {
			return finish(err)
		}
		if ok {
			d.Dismiss()
			return finish(nil)
		}
		if s.maxAttempts > 0 && result.Attempts >= s.maxAttempts {
			d.Dismiss()
			return finish(ErrTooManyAttempts)
		}
		pending = failed(fields)
		if len(pending) == 0 {
			// Vetoed by the submit callback.
			pending = fields
		}
	}
	return finish(nil)
}

func failed(fields []*fieldView) []*fieldView {
	var out []*fieldView
	for _, fv := range fields {
		if fv.message == "" {
			continue
		}
		if _, ok := fv.el.(element.InputElement); ok {
			out = append(out, fv)
		}
	}
	return out
}

func (s *Session) prompt(ctx context.Context, fv *fieldView) error {
	if fv.message != "" {
		if err := s.driver.Info(ctx, s.theme.ErrorPrefix+fv.message); err != nil {
			return err
		}
	}
	switch el := fv.el.(type) {
	case *element.Section:
		if el.Title() == "" {
			return nil
		}
		return s.info(ctx, el.Title())
	case *element.StaticText:
		return s.info(ctx, el.Label()+": "+el.Text())
	case *element.TextInput:
		return s.promptText(ctx, el)
	case *element.ComboBox:
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      s.message(el.Prompt(), el.IsRequired()),
			Options:      el.Options(),
			DefaultIndex: el.Selected(),
		})
		if err != nil {
			return err
		}
		return el.Select(idx)
	case *element.DatePicker:
		raw, err := s.driver.Input(ctx, InputConfig{
			Message:   s.message(el.Label(), el.IsRequired()),
			Default:   el.PickerSeed(s.now()).Format(dateEntryLayout),
			Help:      "YYYY-MM-DD",
			Validator: layoutValidator(dateEntryLayout),
		})
		if err != nil {
			return err
		}
		at, err := time.Parse(dateEntryLayout, strings.TrimSpace(raw))
		if err != nil {
			return err
		}
		return el.Pick(at.Year(), at.Month(), at.Day())
	case *element.TimePicker:
		raw, err := s.driver.Input(ctx, InputConfig{
			Message:   s.message(el.Label(), el.IsRequired()),
			Default:   el.PickerSeed().Format(timeEntryLayout),
			Help:      "HH:MM",
			Validator: layoutValidator(timeEntryLayout),
		})
		if err != nil {
			return err
		}
		at, err := time.Parse(timeEntryLayout, strings.TrimSpace(raw))
		if err != nil {
			return err
		}
		return el.Pick(at.Hour(), at.Minute())
	default:
		return fmt.Errorf("tui: no prompt for %T", fv.el)
	}
}

func (s *Session) promptText(ctx context.Context, el *element.TextInput) error {
	message := s.message(el.Label(), el.IsRequired())
	var (
		text string
		err  error
	)
	switch {
	case el.IsPassword():
		text, err = s.driver.Password(ctx, InputConfig{Message: message, Help: el.Placeholder()})
	case el.IsMultiLine():
		text, err = s.driver.TextArea(ctx, TextAreaConfig{Message: message, Default: el.Text(), Help: el.Placeholder()})
	default:
		text, err = s.driver.Input(ctx, InputConfig{
			Message:     message,
			Default:     el.Text(),
			Help:        el.Placeholder(),
			Placeholder: el.Placeholder(),
		})
	}
	if err != nil {
		return err
	}
	return el.Input(text)
}

func (s *Session) message(label string, required bool) string {
	if required {
		label += " *"
	}
	return s.theme.PromptPrefix + label
}

func (s *Session) info(ctx context.Context, msg string) error {
	return s.driver.Info(ctx, s.theme.InfoPrefix+msg)
}

func layoutValidator(layout string) func(string) error {
	return func(raw string) error {
		if _, err := time.Parse(layout, strings.TrimSpace(raw)); err != nil {
			return fmt.Errorf("expected %s", layout)
		}
		return nil
	}
}
