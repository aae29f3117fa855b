package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/definition"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
)

type violation struct {
	file     string
	location string
	message  string
}

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [paths...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nCheck that form definitions and OpenAPI request bodies build into forms.\n"); err != nil {
			panic(err)
		}
	}
	strict := flag.Bool("strict", false, "report OpenAPI properties without a form element")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{
			"assets/forms/contact.yaml",
			"assets/openapi/accounts.yaml",
		}
	}

	ctx := context.Background()
	var violations []violation
	for _, path := range paths {
		linted, err := lintFile(ctx, path, *strict)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		violations = append(violations, linted...)
	}

	if len(violations) > 0 {
		sort.Slice(violations, func(i, j int) bool {
			if violations[i].file == violations[j].file {
				if violations[i].location == violations[j].location {
					return violations[i].message < violations[j].message
				}
				return violations[i].location < violations[j].location
			}
			return violations[i].file < violations[j].file
		})
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s: %s -> %s\n", v.file, v.location, v.message)
		}
		os.Exit(1)
	}
}

func lintFile(ctx context.Context, path string, strict bool) ([]violation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if isOpenAPI(raw) {
		return lintOpenAPI(ctx, path, raw, strict)
	}
	return lintDefinitions(path, raw)
}

// isOpenAPI sniffs the top-level "openapi" key. JSON is valid YAML.
func isOpenAPI(raw []byte) bool {
	var head struct {
		OpenAPI string `yaml:"openapi"`
	}
	return yaml.Unmarshal(raw, &head) == nil && head.OpenAPI != ""
}

func lintOpenAPI(ctx context.Context, path string, raw []byte, strict bool) ([]violation, error) {
	doc, err := openapi.Load(ctx, raw, openapi.WithValidation(true))
	if err != nil {
		return nil, err
	}
	var result []violation
	for _, op := range doc.Operations() {
		if !op.HasForm() {
			continue
		}
		location := formatLocation([]string{"operation", op.ID})
		built, err := openapi.Builder(op)
		if err != nil {
			result = append(result, violation{file: path, location: location, message: err.Error()})
			continue
		}
		for _, name := range built.Skipped {
			if !strict {
				continue
			}
			result = append(result, violation{
				file:     path,
				location: formatLocation([]string{"operation", op.ID, "properties." + name}),
				message:  "property has no form element",
			})
		}
		if _, err := built.Builder.Build(nil); err != nil {
			result = append(result, violation{file: path, location: location, message: err.Error()})
		}
	}
	return result, nil
}

func lintDefinitions(path string, raw []byte) ([]violation, error) {
	store, err := definition.Parse(raw, path)
	if err != nil {
		return nil, err
	}
	var result []violation
	for _, id := range store.IDs() {
		def, _ := store.Definition(id)
		location := formatLocation([]string{"form", id})
		b, err := def.Builder()
		if err != nil {
			result = append(result, violation{file: path, location: location, message: err.Error()})
			continue
		}
		if _, err := b.Build(nil); err != nil {
			result = append(result, violation{file: path, location: location, message: err.Error()})
		}
	}
	return result, nil
}

func formatLocation(path []string) string {
	return strings.Join(path, " > ")
}
