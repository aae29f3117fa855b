package resources

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Resources resolves resource ids to strings.
type Resources interface {
	Lookup(id string) (string, bool)
}

// Well-known message ids used by the built-in validators.
const (
	RequiredMessage        = "required_error_message"
	RequiredWithoutNameMsg = "required_without_name_error_message"
	MinLengthMessage       = "min_length_error_message"
	MaxLengthMessage       = "max_length_error_message"
	PatternMessage         = "pattern_error_message"
	SubmitButton           = "form_submit"
	CancelButton           = "form_cancel"
)

var defaultEntries = map[string]string{
	RequiredMessage:        "{{ label }} is required",
	RequiredWithoutNameMsg: "This field is required",
	MinLengthMessage:       "{{ label }} must be at least {{ min }} characters",
	MaxLengthMessage:       "{{ label }} must be at most {{ max }} characters",
	PatternMessage:         "{{ label }} has an invalid format",
	SubmitButton:           "Submit",
	CancelButton:           "Cancel",
}

// Catalog is an in-memory id→string table.
type Catalog struct {
	entries map[string]string
}

// NewCatalog copies entries into a catalog.
func NewCatalog(entries map[string]string) *Catalog {
	c := &Catalog{entries: make(map[string]string, len(entries))}
	for id, value := range entries {
		c.entries[strings.TrimSpace(id)] = value
	}
	return c
}

// Default returns a catalog holding the built-in messages.
func Default() *Catalog {
	return NewCatalog(defaultEntries)
}

// LoadCatalog parses a YAML (or JSON) document. Nested mappings are
// flattened into dotted ids, so `errors: {required: ...}` defines
// `errors.required`.
func LoadCatalog(data []byte) (*Catalog, error) {
	if strings.TrimSpace(string(data)) == "" {
		return NewCatalog(nil), nil
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("resources: parse catalog: %w", err)
	}
	entries := make(map[string]string)
	if err := flatten("", raw, entries); err != nil {
		return nil, err
	}
	return NewCatalog(entries), nil
}

// LoadCatalogFS reads and parses a catalog file from fsys.
func LoadCatalogFS(fsys fs.FS, path string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("resources: read %s: %w", path, err)
	}
	catalog, err := LoadCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}
	return catalog, nil
}

// Lookup implements Resources.
func (c *Catalog) Lookup(id string) (string, bool) {
	if c == nil {
		return "", false
	}
	value, ok := c.entries[id]
	return value, ok
}

// Set defines or replaces an entry.
func (c *Catalog) Set(id, value string) {
	if c.entries == nil {
		c.entries = make(map[string]string)
	}
	c.entries[strings.TrimSpace(id)] = value
}

// IDs lists the defined ids in sorted order.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Chain looks ids up in each Resources in order; the first hit wins.
type Chain []Resources

// Lookup implements Resources.
func (c Chain) Lookup(id string) (string, bool) {
	for _, res := range c {
		if res == nil {
			continue
		}
		if value, ok := res.Lookup(id); ok {
			return value, true
		}
	}
	return "", false
}

// WithDefaults chains res in front of the built-in catalog.
func WithDefaults(res Resources) Resources {
	if res == nil {
		return Default()
	}
	return Chain{res, Default()}
}

func flatten(prefix string, raw map[string]any, out map[string]string) error {
	for key, value := range raw {
		id := key
		if prefix != "" {
			id = prefix + "." + key
		}
		switch typed := value.(type) {
		case string:
			out[id] = typed
		case map[string]any:
			if err := flatten(id, typed, out); err != nil {
				return err
			}
		case nil:
			out[id] = ""
		case bool, int, int64, float64:
			out[id] = fmt.Sprint(typed)
		default:
			return fmt.Errorf("resources: entry %q has unsupported type %T", id, value)
		}
	}
	return nil
}
