package form_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/display"
	"github.com/goliatone/go-formbuilder/pkg/element"
	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/formmodel"
	"github.com/goliatone/go-formbuilder/pkg/resources"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
	"github.com/goliatone/go-formbuilder/pkg/validator"
)

func errorNames(errs []*validator.InputError) []string {
	out := make([]string, 0, len(errs))
	for _, err := range errs {
		out = append(out, err.Name())
	}
	return out
}

func mustBuild(t *testing.T, b *form.Builder, opts ...form.Option) *form.Form {
	t.Helper()
	f, err := b.Build(nil, opts...)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return f
}

func TestEndToEnd_NameAndNote(t *testing.T) {
	b := form.NewBuilder()
	if err := b.AddElement(element.NewTextInput("name", "Name", element.Required())); err != nil {
		t.Fatalf("AddElement: %v", err)
	}
	if err := b.AddElement(element.NewTextInput("note", "Note")); err != nil {
		t.Fatalf("AddElement: %v", err)
	}
	f := mustBuild(t, b)

	valid, err := f.Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if valid {
		t.Fatalf("expected invalid form")
	}
	if diff := cmp.Diff([]string{"name"}, errorNames(f.LastErrors())); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}

	f.Model().Set("name", formmodel.String("Alice"))
	valid, err = f.Validate()
	if err != nil || !valid {
		t.Fatalf("expected valid form, got %v (%v)", valid, err)
	}
	if len(f.LastErrors()) != 0 {
		t.Fatalf("expected no errors, got %v", f.LastErrors())
	}
}

func TestBuilder_AddElementCreatesUntitledSection(t *testing.T) {
	b := form.NewBuilder()
	if err := b.AddElement(element.NewStaticText("info", "Info")); err != nil {
		t.Fatalf("AddElement: %v", err)
	}
	sections := b.Sections()
	if len(sections) != 1 || sections[0].Title() != "" || sections[0].Len() != 1 {
		t.Fatalf("expected one untitled section holding the element, got %+v", sections)
	}

	extra := element.NewSection("extra", "Extra")
	if err := b.AddElement(extra); err != nil {
		t.Fatalf("AddElement(section): %v", err)
	}
	if err := b.AddElement(element.NewTextInput("later", "Later")); err != nil {
		t.Fatalf("AddElement: %v", err)
	}
	if _, ok := extra.Element("later"); !ok {
		t.Fatalf("expected elements to go to the last section")
	}
}

func TestBuilder_RejectsDuplicateSections(t *testing.T) {
	b := form.NewBuilder()
	if err := b.AddSection(element.NewSection("contact", "Contact")); err != nil {
		t.Fatalf("AddSection: %v", err)
	}
	err := b.AddSection(element.NewSection("contact", "Again"))
	if !errors.Is(err, element.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
	if err := b.AddSectionAt(element.NewSection("x", ""), 5); !errors.Is(err, element.ErrPosition) {
		t.Fatalf("expected ErrPosition, got %v", err)
	}
	if err := b.AddSectionAt(element.NewSection("first", ""), 0); err != nil {
		t.Fatalf("AddSectionAt: %v", err)
	}
	if b.Sections()[0].Name() != "first" {
		t.Fatalf("expected first section to be inserted at 0")
	}
}

func TestBuild_RejectsNamesSharedAcrossSections(t *testing.T) {
	b := form.NewBuilder()
	a := element.NewSection("a", "")
	c := element.NewSection("c", "")
	_ = a.AddElement(element.NewTextInput("email", "Email"))
	_ = c.AddElement(element.NewTextInput("email", "Email"))
	_ = b.AddSection(a)
	_ = b.AddSection(c)

	_, err := b.Build(nil)
	if !errors.Is(err, element.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestBuild_ResolvesTexts(t *testing.T) {
	catalog := resources.NewCatalog(map[string]string{"contact_title": "Contact us"})

	b := form.NewBuilder().Title(resources.ID("contact_title")).CancelButton(resources.Literal("Back"))
	f, err := b.Build(catalog)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := []string{f.Title(), f.SubmitText(), f.CancelText()}
	if diff := cmp.Diff([]string{"Contact us", "Submit", "Back"}, got); diff != "" {
		t.Fatalf("texts mismatch (-want +got):\n%s", diff)
	}

	_, err = form.NewBuilder().SubmitButton(resources.ID("missing")).Build(catalog)
	if !errors.Is(err, resources.ErrMissingResource) {
		t.Fatalf("expected ErrMissingResource, got %v", err)
	}
}

func twoSectionForm(t *testing.T) *form.Form {
	t.Helper()
	b := form.NewBuilder()
	first := element.NewSection("first", "First")
	second := element.NewSection("second", "Second")
	if err := first.AddElements(
		element.NewTextInput("f1", "F1", element.Required()),
		element.NewTextInput("f2", "F2", element.Required()),
		element.NewTextInput("f3", "F3", element.Required(), element.WithValidators(validator.MinLength(3))),
	); err != nil {
		t.Fatalf("AddElements: %v", err)
	}
	if err := second.AddElements(
		element.NewStaticText("info", "Info"),
		element.NewTextInput("phone", "Phone", element.Required()),
	); err != nil {
		t.Fatalf("AddElements: %v", err)
	}
	_ = b.AddSection(first)
	_ = b.AddSection(second)
	f := mustBuild(t, b)
	f.Model().Set("f2", formmodel.String("ok"))
	f.Model().Set("f3", formmodel.String("x"))
	return f
}

func TestValidate_PreservesSectionAndFieldOrder(t *testing.T) {
	f := twoSectionForm(t)
	if valid, _ := f.Validate(); valid {
		t.Fatalf("expected invalid form")
	}
	want := []string{"f1", "f3", "phone"}
	if diff := cmp.Diff(want, errorNames(f.LastErrors())); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_TwiceYieldsEqualListsWithoutStaleErrors(t *testing.T) {
	f := twoSectionForm(t)
	_, _ = f.Validate()
	first := f.LastErrors()
	_, _ = f.Validate()
	second := f.LastErrors()

	summary := func(errs []*validator.InputError) []string {
		out := make([]string, 0, len(errs))
		for _, err := range errs {
			out = append(out, err.String())
		}
		return out
	}
	if diff := cmp.Diff(summary(first), summary(second)); diff != "" {
		t.Fatalf("passes differ (-first +second):\n%s", diff)
	}

	f.Model().Set("f1", formmodel.String("fixed"))
	_, _ = f.Validate()
	el, _ := f.Element("f1")
	if el.Error() != "" {
		t.Fatalf("expected fixed field to be cleared, got %q", el.Error())
	}
}

func TestValidate_RoutesErrorsToTheirElement(t *testing.T) {
	f := twoSectionForm(t)
	f.Model().Set("f1", formmodel.String("a"))
	f.Model().Set("f3", formmodel.String("abc"))

	if valid, err := f.Validate(); valid || err != nil {
		t.Fatalf("expected invalid form without display failure, got %v (%v)", valid, err)
	}
	for _, name := range []string{"f1", "f2", "f3", "info"} {
		el, _ := f.Element(name)
		if el.Error() != "" {
			t.Fatalf("expected %s to have no error, got %q", name, el.Error())
		}
	}
	phone, _ := f.Element("phone")
	if phone.Error() != "Phone is required" {
		t.Fatalf("expected phone error, got %q", phone.Error())
	}

	f.ClearValidateError()
	f.ClearValidateError()
	if phone.Error() != "" || f.LastErrors() != nil {
		t.Fatalf("expected clear to wipe errors")
	}
}

func TestValidate_ReportsUnroutableErrors(t *testing.T) {
	stray := validator.Func(func(formmodel.Value, validator.Field) *validator.InputError {
		return validator.Errorf(ghost{}, "ghost", "not here")
	})
	b := form.NewBuilder()
	_ = b.AddElement(element.NewTextInput("name", "Name", element.WithValidators(stray)))
	f := mustBuild(t, b)

	valid, err := f.Validate()
	if valid || !errors.Is(err, display.ErrUnroutable) {
		t.Fatalf("expected invalid with ErrUnroutable, got %v (%v)", valid, err)
	}
}

type ghost struct{}

func (ghost) Name() string  { return "ghost" }
func (ghost) Label() string { return "" }

func TestBuild_UsesCustomErrorDisplay(t *testing.T) {
	var shown []string
	var clears int
	custom := display.Funcs{
		ShowFunc: func(_ display.Target, errs []*validator.InputError) error {
			shown = append(shown, errorNames(errs)...)
			return nil
		},
		ClearFunc: func(display.Target) { clears++ },
	}
	b := form.NewBuilder().ErrorDisplay(custom)
	_ = b.AddElement(element.NewTextInput("name", "Name", element.Required()))
	f := mustBuild(t, b)

	if valid, _ := f.Validate(); valid {
		t.Fatalf("expected invalid form")
	}
	if diff := cmp.Diff([]string{"name"}, shown); diff != "" {
		t.Fatalf("shown mismatch (-want +got):\n%s", diff)
	}
	if clears != 1 {
		t.Fatalf("expected validate to clear first, got %d clears", clears)
	}
	el, _ := f.Element("name")
	if el.Error() != "" {
		t.Fatalf("expected the default display to stay out of the way, got %q", el.Error())
	}
}

func TestRebind_PreservesRetainedValue(t *testing.T) {
	retainer := formmodel.NewRetainer()
	build := func() (*form.Form, *testsupport.Factory) {
		b := form.NewBuilder()
		_ = b.AddElement(element.NewTextInput("name", "Name").SetText("default"))
		f := mustBuild(t, b, form.WithRetained(retainer, "profile"))
		factory := testsupport.NewFactory()
		if err := f.MakeView(factory.Container()); err != nil {
			t.Fatalf("MakeView: %v", err)
		}
		return f, factory
	}

	f, _ := build()
	el, _ := f.Element("name")
	if err := el.(*element.TextInput).Input("Alice"); err != nil {
		t.Fatalf("Input: %v", err)
	}

	rebuilt, factory := build()
	if rebuilt.Model() != f.Model() {
		t.Fatalf("expected the retained model to be reused")
	}
	if got := factory.View("name").LastShown(); !got.Equal(formmodel.String("Alice")) {
		t.Fatalf("expected rebuilt view to show Alice, got %v", got)
	}

	restored := formmodel.New()
	restored.Set("name", formmodel.String("Bob"))
	rebuilt.Rebind(restored)
	if got := factory.View("name").LastShown(); !got.Equal(formmodel.String("Bob")) {
		t.Fatalf("expected rebind to show Bob, got %v", got)
	}
}

func TestMakeView_ClearsContainer(t *testing.T) {
	b := form.NewBuilder()
	_ = b.AddSection(element.NewSection("a", ""))
	_ = b.AddSection(element.NewSection("b", ""))
	f := mustBuild(t, b)

	factory := testsupport.NewFactory()
	root := factory.Container()
	if err := f.MakeView(root); err != nil {
		t.Fatalf("MakeView: %v", err)
	}
	if err := f.MakeView(root); err != nil {
		t.Fatalf("MakeView: %v", err)
	}
	if len(root.Attached) != 2 || root.Clears != 2 {
		t.Fatalf("expected two sections after re-make, got %d attached, %d clears", len(root.Attached), root.Clears)
	}
	if err := f.MakeView(nil); !errors.Is(err, element.ErrNoContainer) {
		t.Fatalf("expected ErrNoContainer, got %v", err)
	}
}
