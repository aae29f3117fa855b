// Package element implements the form element tree: sections holding input
// and display elements, their binding to a formmodel.Model and the small view
// contract hosts implement to render them.
//
// The set of element kinds is closed. Tree operations (bind, refresh, view
// construction, validation, clearing) dispatch on the concrete type; hosts do
// the same in their ViewFactory.
package element
