// Package openapi turns OpenAPI request bodies into forms. Documents are
// loaded with kin-openapi; each operation's request schema becomes one
// section for its scalar properties plus one section per nested object.
package openapi
