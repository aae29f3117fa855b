package tui

import (
	"github.com/goliatone/go-formbuilder/pkg/element"
)

// fieldView is the terminal view of one element. It only keeps the error
// message; values are read from the element when prompting.
type fieldView struct {
	el        element.Element
	message   string
	refreshes int
}

func (v *fieldView) Refresh() { v.refreshes++ }

func (v *fieldView) SetError(message string) { v.message = message }

type sectionView struct {
	fieldView
	body *container
}

func (s *sectionView) Body() element.Container { return s.body }

// container collects views in attach order.
type container struct {
	views []element.View
}

func (c *container) Factory() element.ViewFactory { return factory{} }

func (c *container) Attach(v element.View) { c.views = append(c.views, v) }

func (c *container) Clear() { c.views = nil }

// fields flattens the attached views into prompt order.
func (c *container) fields() []*fieldView {
	var out []*fieldView
	for _, v := range c.views {
		switch typed := v.(type) {
		case *sectionView:
			out = append(out, &typed.fieldView)
			out = append(out, typed.body.fields()...)
		case *fieldView:
			out = append(out, typed)
		}
	}
	return out
}

type factory struct{}

func (factory) CreateView(el element.Element) (element.View, error) {
	if _, ok := el.(*element.Section); ok {
		return &sectionView{fieldView: fieldView{el: el}, body: &container{}}, nil
	}
	return &fieldView{el: el}, nil
}
