// Package resources resolves the display texts of a form. A Text is either a
// literal or a resource id; ids are looked up through a Resources
// implementation such as a YAML-loaded Catalog, and the resulting strings may
// be pongo2 templates rendered with per-message data.
package resources
