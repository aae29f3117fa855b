package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/element"
	"github.com/goliatone/go-formbuilder/pkg/form"
)

// Payload converts the form's current values into a nested map. Dotted
// element names become nested objects, combo boxes yield the chosen option,
// dates use YYYY-MM-DD and times HH:MM. Unset inputs are left out.
func Payload(f *form.Form) (map[string]any, error) {
	out := make(map[string]any)
	if f == nil {
		return out, nil
	}
	for _, in := range f.Inputs() {
		value, ok := payloadValue(in)
		if !ok {
			continue
		}
		if err := setPath(out, in.Name(), value); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func payloadValue(in element.InputElement) (any, bool) {
	if in.Value().IsNone() {
		return nil, false
	}
	switch el := in.(type) {
	case *element.ComboBox:
		return el.SelectedOption()
	case *element.DatePicker:
		at, ok := el.Date()
		if !ok {
			return nil, false
		}
		return at.In(el.Location()).Format(dateEntryLayout), true
	case *element.TimePicker:
		at, ok := el.Time()
		if !ok {
			return nil, false
		}
		return at.Format(timeEntryLayout), true
	case *element.TextInput:
		return el.Text(), true
	default:
		return in.Value().Interface(), true
	}
}

// Write serialises payload to w in the given format.
func Write(w io.Writer, format OutputFormat, payload map[string]any) error {
	switch format {
	case OutputFormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case OutputFormatFormURLEncoded:
		values := url.Values{}
		flatten("", payload, func(key string, value any) {
			values.Set(key, fmt.Sprint(value))
		})
		_, err := fmt.Fprintln(w, values.Encode())
		return err
	case OutputFormatPrettyText:
		var lines []string
		flatten("", payload, func(key string, value any) {
			lines = append(lines, fmt.Sprintf("%s: %v", key, value))
		})
		sort.Strings(lines)
		_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
		return err
	default:
		return fmt.Errorf("tui: unknown output format %q", format)
	}
}

func flatten(prefix string, node map[string]any, emit func(key string, value any)) {
	for key, value := range node {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if child, ok := value.(map[string]any); ok {
			flatten(path, child, emit)
			continue
		}
		emit(path, value)
	}
}

func setPath(root map[string]any, path string, value any) error {
	segments := strings.Split(path, ".")
	current := root
	for i, segment := range segments {
		if i == len(segments)-1 {
			current[segment] = value
			return nil
		}
		switch child := current[segment].(type) {
		case map[string]any:
			current = child
		case nil:
			next := make(map[string]any)
			current[segment] = next
			current = next
		default:
			return fmt.Errorf("tui: %q is both a value and an object", strings.Join(segments[:i+1], "."))
		}
	}
	return nil
}
