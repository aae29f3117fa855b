package element

// View is the host widget for one element. Refresh re-reads the element's
// value from its model; SetError shows a message, or clears it when empty.
type View interface {
	Refresh()
	SetError(message string)
}

// Composite is implemented by section views that host their children in a
// separate body.
type Composite interface {
	View
	Body() Container
}

// Container is the place views are attached to.
type Container interface {
	Factory() ViewFactory
	Attach(v View)
	Clear()
}

// ViewFactory constructs the view of an element. It is called once per
// element; the result is cached.
type ViewFactory interface {
	CreateView(el Element) (View, error)
}

// FactoryFunc adapts a function into a ViewFactory.
type FactoryFunc func(el Element) (View, error)

// CreateView calls fn.
func (fn FactoryFunc) CreateView(el Element) (View, error) {
	return fn(el)
}
