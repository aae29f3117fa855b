package resources

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"
)

var (
	templateCache sync.Map // source -> *pongo2.Template

	plainPolicyOnce sync.Once
	plainPolicy     *bluemonday.Policy
)

// Render executes a pongo2 message template with data. Sources without
// template markup are returned unchanged. Output is not HTML-escaped;
// callers that display the result run it through Plain.
func Render(source string, data map[string]any) (string, error) {
	if !strings.Contains(source, "{{") && !strings.Contains(source, "{%") {
		return source, nil
	}
	tpl, err := compile(source)
	if err != nil {
		return "", err
	}
	ctx := make(pongo2.Context, len(data))
	for key, value := range data {
		ctx[key] = value
	}
	out, err := tpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("resources: render template: %w", err)
	}
	return out, nil
}

// Message resolves text against res and renders it with data. Failures fall
// back to the unrendered source so a message is never lost.
func Message(res Resources, text Text, data map[string]any) string {
	source := text.ResolveOr(res)
	out, err := Render(source, data)
	if err != nil {
		return source
	}
	return out
}

// Plain strips markup from s and decodes entities, leaving display text.
func Plain(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	cleaned := plainSanitizer().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func compile(source string) (*pongo2.Template, error) {
	if cached, ok := templateCache.Load(source); ok {
		return cached.(*pongo2.Template), nil
	}
	tpl, err := pongo2.FromString("{% autoescape off %}" + source + "{% endautoescape %}")
	if err != nil {
		return nil, fmt.Errorf("resources: parse template %q: %w", source, err)
	}
	templateCache.Store(source, tpl)
	return tpl, nil
}

func plainSanitizer() *bluemonday.Policy {
	plainPolicyOnce.Do(func() {
		plainPolicy = bluemonday.StrictPolicy()
	})
	return plainPolicy
}
