package element_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/goliatone/go-formbuilder/pkg/element"
	"github.com/goliatone/go-formbuilder/pkg/formmodel"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
	"github.com/goliatone/go-formbuilder/pkg/validator"
)

func names(els []element.Element) []string {
	out := make([]string, 0, len(els))
	for _, el := range els {
		out = append(out, el.Name())
	}
	return out
}

func TestSection_RejectsNestedSections(t *testing.T) {
	outer := element.NewSection("outer", "Outer")
	err := outer.AddElement(element.NewSection("inner", ""))
	if !errors.Is(err, element.ErrNestedSection) {
		t.Fatalf("expected ErrNestedSection, got %v", err)
	}
	var cfg *element.ConfigError
	if !errors.As(err, &cfg) || cfg.Name != "inner" {
		t.Fatalf("expected ConfigError naming inner, got %#v", err)
	}
	if outer.Len() != 0 {
		t.Fatalf("expected section to stay empty, got %d", outer.Len())
	}
}

func TestSection_RejectsDuplicateNames(t *testing.T) {
	s := element.NewSection("s", "")
	if err := s.AddElement(element.NewTextInput("phone", "Phone")); err != nil {
		t.Fatalf("AddElement: %v", err)
	}
	err := s.AddElement(element.NewComboBox("phone", "Phone type", []string{"home"}))
	if !errors.Is(err, element.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestSection_InsertRemoveAndLookup(t *testing.T) {
	s := element.NewSection("s", "Details")
	m := formmodel.New()
	s.SetModel(m)

	a := element.NewTextInput("a", "A")
	c := element.NewTextInput("c", "C")
	b := element.NewStaticText("b", "B")
	if err := s.AddElements(a, c); err != nil {
		t.Fatalf("AddElements: %v", err)
	}
	if err := s.AddElementAt(b, 1); err != nil {
		t.Fatalf("AddElementAt: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, names(s.Elements())); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if b.Model() != m {
		t.Fatalf("expected inserted element to bind to the section model")
	}
	if err := s.AddElementAt(element.NewTextInput("d", ""), 9); !errors.Is(err, element.ErrPosition) {
		t.Fatalf("expected ErrPosition, got %v", err)
	}

	if el, ok := s.ElementAt(2); !ok || el.Name() != "c" {
		t.Fatalf("expected c at index 2, got %v", el)
	}
	if _, ok := s.ElementAt(3); ok {
		t.Fatalf("expected index 3 to be out of range")
	}

	removed, err := s.RemoveElement("b")
	if err != nil {
		t.Fatalf("RemoveElement: %v", err)
	}
	if removed.Model() != nil {
		t.Fatalf("expected removed element to be unbound")
	}
	if _, ok := s.Element("b"); ok {
		t.Fatalf("expected b to be gone")
	}
	if _, err := s.RemoveElement("b"); !errors.Is(err, element.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if diff := cmp.Diff([]string{"a", "c"}, names(s.Elements())); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestAutoNamesAreRandomV4(t *testing.T) {
	first := element.NewTextInput("", "Anonymous")
	second := element.NewTextInput("  ", "Anonymous")
	if first.Name() == second.Name() {
		t.Fatalf("expected distinct generated names, got %q twice", first.Name())
	}
	id, err := uuid.Parse(first.Name())
	if err != nil {
		t.Fatalf("expected uuid name, got %q: %v", first.Name(), err)
	}
	if id.Version() != 4 {
		t.Fatalf("expected version 4 uuid, got %d", id.Version())
	}
}

func TestInput_RequiredRoundTrip(t *testing.T) {
	m := formmodel.New()
	name := element.NewTextInput("name", "Name", element.Required())
	name.SetModel(m)

	if errs := name.ValidateInput(); len(errs) != 1 || errs[0].Name() != "name" {
		t.Fatalf("expected one error for name, got %v", errs)
	}
	m.Set("name", formmodel.String("Alice"))
	if errs := name.ValidateInput(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	m.Set("name", formmodel.String(""))
	name.SetRequired(false)
	if errs := name.ValidateInput(); len(errs) != 0 {
		t.Fatalf("expected no errors after SetRequired(false), got %v", errs)
	}
}

func TestInput_RequiredToggleKeepsCustomValidators(t *testing.T) {
	code := element.NewTextInput("code", "Code")
	code.SetModel(formmodel.New())
	short := validator.MinLength(4)

	code.AddValidator(validator.Required, short)
	if !code.IsRequired() {
		t.Fatalf("expected AddValidator(Required) to set the flag")
	}
	code.AddValidator(validator.Required)
	if got := len(code.Validators()); got != 2 {
		t.Fatalf("expected Required plus one rule, got %d", got)
	}

	code.RemoveValidator(validator.Required)
	if code.IsRequired() {
		t.Fatalf("expected RemoveValidator(Required) to clear the flag")
	}
	if diff := cmp.Diff(1, len(code.Validators())); diff != "" {
		t.Fatalf("validators mismatch (-want +got):\n%s", diff)
	}
}

func TestInput_ValidateCollectsAllErrorsInOrder(t *testing.T) {
	m := formmodel.New()
	m.Set("pin", formmodel.String("ab"))
	pin := element.NewTextInput("pin", "PIN",
		element.Required(),
		element.WithValidators(validator.MinLength(4), validator.MustPattern(`^[0-9]+$`)),
	)
	pin.SetModel(m)

	var codes []string
	for _, err := range pin.ValidateInput() {
		codes = append(codes, err.Code())
	}
	want := []string{validator.CodeMinLength, validator.CodePattern}
	if diff := cmp.Diff(want, codes); diff != "" {
		t.Fatalf("codes mismatch (-want +got):\n%s", diff)
	}

	m.Set("pin", formmodel.None())
	codes = codes[:0]
	for _, err := range pin.ValidateInput() {
		codes = append(codes, err.Code())
	}
	if diff := cmp.Diff([]string{validator.CodeRequired}, codes); diff != "" {
		t.Fatalf("codes mismatch (-want +got):\n%s", diff)
	}
}

func TestInput_UnboundValidatesNone(t *testing.T) {
	name := element.NewTextInput("name", "", element.Required())
	errs := name.ValidateInput()
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %d", len(errs))
	}
	if got := errs[0].Message(nil); got != "This field is required" {
		t.Fatalf("expected unlabelled message, got %q", got)
	}
	if err := name.Input("x"); !errors.Is(err, element.ErrNoModel) {
		t.Fatalf("expected ErrNoModel, got %v", err)
	}
}

func TestTextInput_FlagsUseAnd(t *testing.T) {
	note := element.NewTextInput("note", "Note")
	if note.IsMultiLine() || note.IsPassword() {
		t.Fatalf("expected plain text field, got %#x", note.InputType())
	}
	if !note.InputType().Has(element.TypeClassText) {
		t.Fatalf("expected text class bit")
	}

	note.SetMultiLine(true)
	if !note.IsMultiLine() || note.IsPassword() {
		t.Fatalf("expected multi-line only, got %#x", note.InputType())
	}
	note.SetPassword(true).SetMultiLine(false)
	if note.IsMultiLine() || !note.IsPassword() {
		t.Fatalf("expected password only, got %#x", note.InputType())
	}
	if element.InputType(0).Has(0) {
		t.Fatalf("expected empty mask to never match")
	}
}

func TestMakeView_CachesView(t *testing.T) {
	factory := testsupport.NewFactory()
	name := element.NewTextInput("name", "Name")
	name.SetModel(formmodel.New())

	first, second := factory.Container(), factory.Container()
	if err := name.MakeView(first); err != nil {
		t.Fatalf("MakeView: %v", err)
	}
	if err := name.MakeView(second); err != nil {
		t.Fatalf("MakeView: %v", err)
	}
	if diff := cmp.Diff([]string{"name"}, factory.Created); diff != "" {
		t.Fatalf("created mismatch (-want +got):\n%s", diff)
	}
	if len(first.Attached) != 1 || len(second.Attached) != 1 || first.Attached[0] != second.Attached[0] {
		t.Fatalf("expected the cached view to be attached to both containers")
	}
	if name.View() != first.Attached[0] {
		t.Fatalf("expected View to return the cached view")
	}
}

func TestMakeView_Errors(t *testing.T) {
	name := element.NewTextInput("name", "Name")
	if err := name.MakeView(nil); !errors.Is(err, element.ErrNoContainer) {
		t.Fatalf("expected ErrNoContainer, got %v", err)
	}
	if err := name.MakeView(&testsupport.Container{}); !errors.Is(err, element.ErrNoFactory) {
		t.Fatalf("expected ErrNoFactory, got %v", err)
	}
	factory := testsupport.NewFactory()
	factory.Fail = map[string]bool{"name": true}
	if err := name.MakeView(factory.Container()); err == nil {
		t.Fatalf("expected factory failure to surface")
	}
	if name.HasView() {
		t.Fatalf("expected no cached view after failure")
	}
}

func TestSetModel_RebindRefreshesFromNewModel(t *testing.T) {
	factory := testsupport.NewFactory()
	restored := formmodel.New()
	restored.Set("name", formmodel.String("Alice"))

	name := element.NewTextInput("name", "Name")
	name.SetModel(formmodel.New())
	if err := name.MakeView(factory.Container()); err != nil {
		t.Fatalf("MakeView: %v", err)
	}
	old := name.Model()

	name.SetModel(restored)
	view := factory.View("name")
	if !view.LastShown().Equal(formmodel.String("Alice")) {
		t.Fatalf("expected rebind to show Alice, got %v", view.LastShown())
	}
	if name.Text() != "Alice" {
		t.Fatalf("expected Text to read the new model, got %q", name.Text())
	}

	refreshes := view.Refreshes
	old.Set("name", formmodel.String("stale"))
	if view.Refreshes != refreshes {
		t.Fatalf("expected old model writes to be ignored after rebind")
	}
	if old.Observers() != 0 {
		t.Fatalf("expected rebind to unsubscribe from the old model, got %d", old.Observers())
	}

	restored.Set("name", formmodel.String("Bob"))
	if !view.LastShown().Equal(formmodel.String("Bob")) {
		t.Fatalf("expected model notification to refresh, got %v", view.LastShown())
	}
}

func TestMakeView_SeedsInitialValueOnlyWhenAbsent(t *testing.T) {
	factory := testsupport.NewFactory()

	fresh := formmodel.New()
	greeting := element.NewTextInput("greeting", "Greeting").SetText("hello")
	greeting.SetModel(fresh)
	if err := greeting.MakeView(factory.Container()); err != nil {
		t.Fatalf("MakeView: %v", err)
	}
	if got := fresh.String("greeting", ""); got != "hello" {
		t.Fatalf("expected seeded value, got %q", got)
	}

	kept := formmodel.New()
	kept.Set("greeting", formmodel.String("edited"))
	again := element.NewTextInput("greeting", "Greeting").SetText("hello")
	again.SetModel(kept)
	if err := again.MakeView(testsupport.NewFactory().Container()); err != nil {
		t.Fatalf("MakeView: %v", err)
	}
	if got := kept.String("greeting", ""); got != "edited" {
		t.Fatalf("expected existing value to win, got %q", got)
	}

	greeting.SetText("changed")
	if got := fresh.String("greeting", ""); got != "changed" {
		t.Fatalf("expected SetText after view creation to write, got %q", got)
	}
}

func TestSetError_PendingUntilViewExists(t *testing.T) {
	factory := testsupport.NewFactory()
	name := element.NewTextInput("name", "Name")
	name.SetModel(formmodel.New())
	name.SetError("Name is required")

	if err := name.MakeView(factory.Container()); err != nil {
		t.Fatalf("MakeView: %v", err)
	}
	view := factory.View("name")
	if view.LastError() != "Name is required" {
		t.Fatalf("expected pending error on the new view, got %q", view.LastError())
	}
	name.SetError("")
	if view.LastError() != "" || name.Error() != "" {
		t.Fatalf("expected error to clear")
	}
}

func TestSection_MakeViewUsesBody(t *testing.T) {
	factory := testsupport.NewFactory()
	s := element.NewSection("contact", "Contact")
	s.SetModel(formmodel.New())
	if err := s.AddElements(element.NewTextInput("name", "Name"), element.NewStaticText("hint", "Hint")); err != nil {
		t.Fatalf("AddElements: %v", err)
	}

	root := factory.Container()
	if err := s.MakeView(root); err != nil {
		t.Fatalf("MakeView: %v", err)
	}
	if err := s.MakeView(root); err != nil {
		t.Fatalf("MakeView: %v", err)
	}

	sectionView, ok := s.View().(*testsupport.SectionView)
	if !ok {
		t.Fatalf("expected composite section view, got %T", s.View())
	}
	body := sectionView.BodyContainer()
	if len(body.Attached) != 2 || body.Clears != 2 {
		t.Fatalf("expected body cleared per make and two children, got %d attached, %d clears", len(body.Attached), body.Clears)
	}
	if diff := cmp.Diff([]string{"contact", "name", "hint"}, factory.Created); diff != "" {
		t.Fatalf("created mismatch (-want +got):\n%s", diff)
	}
}

func TestSection_FlatViewAttachesChildrenToContainer(t *testing.T) {
	factory := testsupport.NewFactory()
	factory.Flat = true
	s := element.NewSection("s", "")
	if err := s.AddElement(element.NewTextInput("a", "A")); err != nil {
		t.Fatalf("AddElement: %v", err)
	}
	root := factory.Container()
	if err := s.MakeView(root); err != nil {
		t.Fatalf("MakeView: %v", err)
	}
	if len(root.Attached) != 2 {
		t.Fatalf("expected section and child in the root container, got %d", len(root.Attached))
	}
}

func TestSection_ClearErrorsReachesEveryElement(t *testing.T) {
	s := element.NewSection("s", "")
	hint := element.NewStaticText("hint", "Hint")
	name := element.NewTextInput("name", "Name")
	if err := s.AddElements(hint, name); err != nil {
		t.Fatalf("AddElements: %v", err)
	}
	s.SetError("section")
	hint.SetError("hint")
	name.SetError("name")

	s.ClearErrors()
	for _, el := range []element.Element{s, hint, name} {
		if el.Error() != "" {
			t.Fatalf("expected %s to be cleared, got %q", el.Name(), el.Error())
		}
	}
}

func TestSection_ValidateSkipsStaticText(t *testing.T) {
	m := formmodel.New()
	s := element.NewSection("s", "")
	s.SetModel(m)
	if err := s.AddElements(
		element.NewTextInput("f1", "F1", element.Required()),
		element.NewStaticText("info", "Info"),
		element.NewTextInput("f2", "F2", element.Required()),
		element.NewTextInput("f3", "F3", element.Required()),
	); err != nil {
		t.Fatalf("AddElements: %v", err)
	}
	m.Set("f2", formmodel.String("ok"))

	var got []string
	for _, err := range s.Validate(nil) {
		got = append(got, err.Name())
	}
	if diff := cmp.Diff([]string{"f1", "f3"}, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestComboBox(t *testing.T) {
	m := formmodel.New()
	kind := element.NewComboBox("kind", "Kind", []string{"home", "work", "other"}).SetStartIndex(1)
	kind.SetModel(m)

	if kind.Selected() != 1 {
		t.Fatalf("expected start index before any write, got %d", kind.Selected())
	}
	if err := kind.MakeView(testsupport.NewFactory().Container()); err != nil {
		t.Fatalf("MakeView: %v", err)
	}
	if got := m.Index("kind", -1); got != 1 {
		t.Fatalf("expected start index seeded, got %d", got)
	}
	if err := kind.Select(2); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if option, _ := kind.SelectedOption(); option != "other" {
		t.Fatalf("expected other, got %q", option)
	}
	if err := kind.Select(3); !errors.Is(err, element.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if kind.Prompt() != "Kind" {
		t.Fatalf("expected prompt to default to the label, got %q", kind.Prompt())
	}
	if element.NewComboBox("x", "", []string{"a"}).SetStartIndex(5).StartIndex() != 0 {
		t.Fatalf("expected start index to be clamped")
	}
}

func TestDatePicker(t *testing.T) {
	m := formmodel.New()
	birthday := element.NewDatePicker("birthday", "Birthday").SetLocation(time.UTC)
	birthday.SetModel(m)

	if birthday.Display() != "" {
		t.Fatalf("expected empty display, got %q", birthday.Display())
	}
	now := time.Date(2024, time.July, 1, 12, 0, 0, 0, time.UTC)
	if !birthday.PickerSeed(now).Equal(now) {
		t.Fatalf("expected picker to open on now")
	}
	if err := birthday.Pick(2024, time.March, 5); err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if got := birthday.Display(); got != "Mar 5, 2024" {
		t.Fatalf("expected Mar 5, 2024, got %q", got)
	}
	birthday.SetDisplayLayout("2006-01-02")
	if got := birthday.Display(); got != "2024-03-05" {
		t.Fatalf("expected ISO display, got %q", got)
	}
	if seed := birthday.PickerSeed(now); seed.Day() != 5 {
		t.Fatalf("expected picker to open on the current value, got %v", seed)
	}
}

func TestTimePicker(t *testing.T) {
	m := formmodel.New()
	clock := func() time.Time { return time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC) }
	alarm := element.NewTimePicker("alarm", "Alarm").SetClock(clock)
	alarm.SetModel(m)

	if err := alarm.Pick(14, 30); err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if got := alarm.Display(); got != "02:30 PM" {
		t.Fatalf("expected 02:30 PM, got %q", got)
	}
	alarm.Set24Hour(true)
	if got := alarm.Display(); got != "14:30" {
		t.Fatalf("expected 14:30, got %q", got)
	}
	at, ok := m.Moment("alarm")
	if !ok || at.Year() != 2024 || at.Day() != 5 {
		t.Fatalf("expected time on the clock's day, got %v", at)
	}
	if value, _ := m.Get("alarm"); value.Kind() != formmodel.KindTime {
		t.Fatalf("expected a Time value, got %v", value.Kind())
	}
}

func TestTimePicker_InitialTimeOnlySeedsThePicker(t *testing.T) {
	m := formmodel.New()
	at := time.Date(2024, time.March, 5, 9, 30, 0, 0, time.UTC)
	wake := element.NewTimePicker("wake", "Wake", element.Required()).SetTime(at)
	wake.SetModel(m)

	if _, ok := wake.Time(); ok {
		t.Fatalf("expected no time before the view exists")
	}
	if wake.Display() != "" {
		t.Fatalf("expected empty display, got %q", wake.Display())
	}
	if errs := wake.ValidateInput(); len(errs) != 1 || errs[0].Code() != validator.CodeRequired {
		t.Fatalf("expected required error, got %v", errs)
	}
	if !wake.PickerSeed().Equal(at) {
		t.Fatalf("expected picker to open on the initial time, got %v", wake.PickerSeed())
	}

	factory := testsupport.NewFactory()
	if err := wake.MakeView(factory.Container()); err != nil {
		t.Fatalf("MakeView: %v", err)
	}
	if got := wake.Display(); got != "09:30 AM" {
		t.Fatalf("expected 09:30 AM, got %q", got)
	}
	if errs := wake.ValidateInput(); len(errs) != 0 {
		t.Fatalf("expected no errors once seeded, got %v", errs)
	}
}

func TestTextInput_InitialTextNeedsAView(t *testing.T) {
	m := formmodel.New()
	name := element.NewTextInput("name", "Name", element.Required()).SetText("Alice")
	name.SetModel(m)

	if errs := name.ValidateInput(); len(errs) != 1 {
		t.Fatalf("expected initial text to stay out of the model, got %v", errs)
	}
	factory := testsupport.NewFactory()
	if err := name.MakeView(factory.Container()); err != nil {
		t.Fatalf("MakeView: %v", err)
	}
	if got := m.String("name", ""); got != "Alice" {
		t.Fatalf("expected Alice in the model, got %q", got)
	}
	if errs := name.ValidateInput(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestStaticText(t *testing.T) {
	m := formmodel.New()
	total := element.NewStaticText("total", "Total").SetValue("n/a")
	total.SetModel(m)
	if total.Text() != "n/a" {
		t.Fatalf("expected fallback, got %q", total.Text())
	}
	m.Set("total", formmodel.String("42"))
	if total.Text() != "42" {
		t.Fatalf("expected model value, got %q", total.Text())
	}
}
