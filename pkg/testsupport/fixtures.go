package testsupport

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/element"
	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
)

// LoadOperation reads an OpenAPI fixture and returns the named operation.
func LoadOperation(t *testing.T, path, id string) openapi.Operation {
	t.Helper()

	doc, err := openapi.LoadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	op, ok := doc.Operation(id)
	if !ok {
		t.Fatalf("operation %q not found in %s", id, path)
	}
	return op
}

// FormSnapshot is a JSON-friendly outline of a built form used for goldens.
type FormSnapshot struct {
	Title    string            `json:"title,omitempty"`
	Sections []SectionSnapshot `json:"sections"`
}

// SectionSnapshot outlines one section.
type SectionSnapshot struct {
	Name     string            `json:"name"`
	Title    string            `json:"title,omitempty"`
	Elements []ElementSnapshot `json:"elements"`
}

// ElementSnapshot outlines one element.
type ElementSnapshot struct {
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	Label      string `json:"label,omitempty"`
	Required   bool   `json:"required,omitempty"`
	Validators int    `json:"validators,omitempty"`
}

// Snapshot outlines f.
func Snapshot(f *form.Form) FormSnapshot {
	out := FormSnapshot{Title: f.Title(), Sections: []SectionSnapshot{}}
	for _, s := range f.Sections() {
		section := SectionSnapshot{Name: s.Name(), Title: s.Title(), Elements: []ElementSnapshot{}}
		for _, el := range s.Elements() {
			section.Elements = append(section.Elements, snapshotElement(el))
		}
		out.Sections = append(out.Sections, section)
	}
	return out
}

func snapshotElement(el element.Element) ElementSnapshot {
	snap := ElementSnapshot{Name: el.Name(), Kind: Kind(el)}
	if in, ok := el.(element.InputElement); ok {
		snap.Label = in.Label()
		snap.Required = in.IsRequired()
		snap.Validators = len(in.Validators())
	}
	if st, ok := el.(*element.StaticText); ok {
		snap.Label = st.Label()
	}
	return snap
}

// Kind names the element variant.
func Kind(el element.Element) string {
	switch typed := el.(type) {
	case *element.Section:
		return "section"
	case *element.TextInput:
		switch {
		case typed.IsPassword():
			return "password"
		case typed.IsMultiLine():
			return "textarea"
		default:
			return "text"
		}
	case *element.ComboBox:
		return "combo"
	case *element.DatePicker:
		return "date"
	case *element.TimePicker:
		return "time"
	case *element.StaticText:
		return "static"
	default:
		return fmt.Sprintf("%T", el)
	}
}

// CompareSnapshot diffs f against the JSON golden at path. With UPDATE_GOLDENS
// set the golden is rewritten instead.
func CompareSnapshot(t *testing.T, path string, f *form.Form) {
	t.Helper()

	got := Snapshot(f)
	if WriteGolden(t, path, got) {
		return
	}
	var want FormSnapshot
	if err := json.Unmarshal(MustReadGolden(t, path), &want); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("snapshot mismatch for %s (-want +got):\n%s", path, diff)
	}
}

// WriteGolden writes value as indented JSON when UPDATE_GOLDENS is set and
// reports whether it did.
func WriteGolden(t *testing.T, path string, value any) bool {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}
