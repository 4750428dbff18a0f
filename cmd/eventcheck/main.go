// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Eventcheck validates JSON or YAML documents against one of the
// built-in application schemas, or against a schema file.
//
// Usage:
//
//	eventcheck [-schema productions|events|FILE] [-formats full|fast] [-quiet] [-v] FILE...
//
// A FILE of "-" reads standard input as JSON.
// Files ending in .yaml or .yml are read as YAML.
//
// For each document eventcheck prints one line of JSON to standard
// output, holding the file name, whether it is valid, and the errors.
// With -quiet, nothing is printed for valid documents.
//
// The EVENTCHECK_FORMATS environment variable sets the default
// for -formats.
//
// The exit status is 0 if all documents are valid,
// 1 if any document is invalid, and 2 on any other error.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/altshiftab/eventschema/internal/appschema"
	"github.com/altshiftab/eventschema/pkg/checker"
	"github.com/altshiftab/eventschema/pkg/format"
	"github.com/altshiftab/eventschema/pkg/jsonpointer"
	"github.com/altshiftab/eventschema/pkg/jsonschema"
	"github.com/altshiftab/eventschema/pkg/types"
	"github.com/goccy/go-json"
)

// Exit codes.
const (
	exitValid   = 0
	exitInvalid = 1
	exitError   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// output is the line printed for each document.
type output struct {
	File   string                     `json:"file"`
	Valid  bool                       `json:"valid"`
	Errors []*checker.ValidationError `json:"errors"`
}

// run is main, with its environment passed in.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("eventcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	schemaFlag := fs.String("schema", "productions", "built-in schema ("+strings.Join(appschema.Names(), ", ")+") or a schema file")
	formatsFlag := fs.String("formats", os.Getenv("EVENTCHECK_FORMATS"), "format strictness: full or fast (default full)")
	quietFlag := fs.Bool("quiet", false, "print nothing for valid documents")
	verboseFlag := fs.Bool("v", false, "log the schema location of each error")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: eventcheck [flags] FILE...\n\nFlags:\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitError
	}

	level := slog.LevelInfo
	if *verboseFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	tier, err := format.ParseTier(*formatsFlag)
	if err != nil {
		logger.Error("bad -formats", "err", err)
		return exitError
	}

	c, err := newChecker(*schemaFlag, checker.WithFormats(tier))
	if err != nil {
		logger.Error("loading schema", "schema", *schemaFlag, "err", err)
		return exitError
	}
	logger.Debug("schema loaded", "schema", *schemaFlag, "formats", tier)

	var docs map[string]string
	if *verboseFlag {
		docs = schemaDocs(c.Schema())
	}

	enc := json.NewEncoder(stdout)
	status := exitValid
	for _, file := range fs.Args() {
		res, err := checkFile(c, file, stdin)
		if err != nil {
			logger.Error("checking document", "file", file, "err", err)
			status = exitError
			continue
		}
		if !res.Valid {
			logger.Info("document is invalid", "file", file, "errors", len(res.Errors))
			explain(logger, c, docs, file, res)
			if status == exitValid {
				status = exitInvalid
			}
		}
		if res.Valid && *quietFlag {
			continue
		}
		if err := enc.Encode(output{File: file, Valid: res.Valid, Errors: res.Errors}); err != nil {
			logger.Error("writing result", "file", file, "err", err)
			return exitError
		}
	}
	return status
}

// newChecker returns a checker for a built-in schema name
// or for a schema file.
func newChecker(schema string, opts ...checker.Option) (*checker.Checker, error) {
	if _, err := appschema.Source(schema); err == nil {
		return checker.ForApp(schema, opts...)
	}

	data, err := os.ReadFile(schema)
	if err != nil {
		return nil, err
	}
	var s *jsonschema.Schema
	if isYAML(schema) {
		s, err = jsonschema.NewYAML(data)
	} else {
		s, err = jsonschema.New(data)
	}
	if err != nil {
		return nil, err
	}
	return checker.New(s, opts...), nil
}

// checkFile reads and checks a single document.
func checkFile(c *checker.Checker, file string, stdin io.Reader) (*checker.Result, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, err
	}
	if isYAML(file) {
		return c.CheckYAML(data)
	}
	return c.CheckJSON(data)
}

// explain logs, at debug level, the schema value behind each error
// and the nearest title or description above it.
func explain(logger *slog.Logger, c *checker.Checker, docs map[string]string, file string, res *checker.Result) {
	for _, ve := range res.Errors {
		attrs := []any{"file", file, "instancePath", ve.InstancePath, "message", ve.Message, "schemaPath", ve.SchemaPath}
		if d := describe(docs, ve.SchemaPath); d != "" {
			attrs = append(attrs, "schema", d)
		}
		if _, pv, err := jsonpointer.DerefKeyword(c.Schema(), ve.SchemaPath); err == nil {
			attrs = append(attrs, "constraint", pv)
		}
		logger.Debug("error", attrs...)
	}
}

// schemaDocs maps the pointer of each subschema that has a title
// or description to that text, preferring the title.
func schemaDocs(root *types.Schema) map[string]string {
	docs := make(map[string]string)
	root.Walk(func(path string, s *types.Schema) bool {
		for _, kw := range []string{"title", "description"} {
			if pv, ok := s.LookupKeyword(kw); ok {
				if text, ok := pv.(types.PartString); ok && text != "" {
					docs[path] = string(text)
					break
				}
			}
		}
		return true
	})
	return docs
}

// describe returns the documentation of the innermost schema
// on schemaPath that has any.
func describe(docs map[string]string, schemaPath string) string {
	p := strings.TrimPrefix(schemaPath, "#")
	for {
		if d, ok := docs[p]; ok {
			return d
		}
		i := strings.LastIndexByte(p, '/')
		if i < 0 {
			return ""
		}
		p = p[:i]
	}
}

// isYAML reports whether a file name looks like YAML.
func isYAML(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
