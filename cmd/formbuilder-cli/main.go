package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/goliatone/go-formbuilder"
	"github.com/goliatone/go-formbuilder/pkg/definition"
	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
	"github.com/goliatone/go-formbuilder/pkg/resources"
)

func main() {
	formID := flag.String("form", "contact", "form id (definition) or operation id (OpenAPI)")
	defs := flag.String("definitions", "", "directory of form definitions (bundled samples if empty)")
	spec := flag.String("openapi", "", "OpenAPI document path; builds the form from -form's request body")
	catalogPath := flag.String("catalog", "", "message catalog (YAML)")
	format := flag.String("format", string(tui.OutputFormatJSON), "output format: json, form or pretty")
	output := flag.String("output", "", "output file (stdout if empty)")
	attempts := flag.Int("attempts", 0, "maximum submit attempts (0 for no limit)")
	flag.Parse()

	ctx := context.Background()

	res, err := loadCatalog(*catalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	f, err := buildForm(ctx, *formID, *defs, *spec, res)
	if err != nil {
		log.Fatalf("Failed to build form: %v", err)
	}

	session, err := tui.New(tui.WithMaxAttempts(*attempts))
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
	result, err := session.Run(ctx, f)
	if errors.Is(err, tui.ErrAborted) {
		log.Printf("Aborted")
		os.Exit(130)
	}
	if err != nil {
		log.Fatalf("Session failed: %v", err)
	}
	if result.State != form.StateSubmitted {
		log.Printf("Form %s", result.State)
		return
	}

	payload, err := tui.Payload(f)
	if err != nil {
		log.Fatalf("Failed to collect values: %v", err)
	}

	var out io.Writer = os.Stdout
	if *output != "" {
		file, err := os.Create(*output)
		if err != nil {
			log.Fatalf("Failed to create output: %v", err)
		}
		defer file.Close()
		out = file
	}
	if err := tui.Write(out, tui.OutputFormat(*format), payload); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	if *output != "" {
		fmt.Printf("Values written to %s\n", *output)
	}
}

func loadCatalog(path string) (resources.Resources, error) {
	if path == "" {
		return resources.LoadCatalogFS(formbuilder.SampleFS(), "catalog/en.yaml")
	}
	return resources.LoadCatalogFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

func buildForm(ctx context.Context, id, defs, spec string, res resources.Resources) (*form.Form, error) {
	if spec != "" {
		doc, err := openapi.LoadFile(ctx, spec)
		if err != nil {
			return nil, err
		}
		f, skipped, err := formbuilder.FromOperation(doc, id, res)
		if err != nil {
			return nil, err
		}
		for _, name := range skipped {
			log.Printf("Skipping property %s: no matching element", name)
		}
		return f, nil
	}

	var fsys fs.FS
	if defs != "" {
		fsys = os.DirFS(defs)
	} else {
		sub, err := fs.Sub(formbuilder.SampleFS(), "forms")
		if err != nil {
			return nil, err
		}
		fsys = sub
	}
	store, err := definition.LoadFS(fsys)
	if err != nil {
		return nil, err
	}
	return formbuilder.FromDefinition(store, id, res)
}
