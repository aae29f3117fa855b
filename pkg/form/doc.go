// Package form assembles sections into a Form, owns its model and runs the
// build, validate and submit/cancel lifecycle.
//
// A Builder collects sections and display texts; Build binds a model to the
// tree and resolves the texts. Hosts render the form through an
// element.Container and drive user actions through a Dialog.
package form
