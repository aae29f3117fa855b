package formbuilder

import (
	"embed"
	"io/fs"
)

//go:embed assets/forms/*.yaml assets/openapi/*.yaml assets/catalog/*.yaml
var embeddedAssets embed.FS

// SampleFS exposes the bundled sample form definitions, OpenAPI document and
// message catalog:
//
//	forms/contact.yaml
//	openapi/accounts.yaml
//	catalog/en.yaml
func SampleFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}
