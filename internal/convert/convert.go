// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives a single conversion run: resolve the input and
// output formats, read the document, write it.
package convert

import (
	"github.com/pdiddy/presentation-formatter/internal/format"
	"github.com/pdiddy/presentation-formatter/internal/logging"
	"github.com/pdiddy/presentation-formatter/pkg/types"
)

// Result describes a completed conversion.
type Result struct {
	InputFile  string
	OutputFile string
	Sections   int
}

// Run converts cfg.InputFile to cfg.OutputFile using the reader and writer
// registered under cfg.InputFormat and cfg.OutputFormat. Both selectors are
// resolved before any file is touched; an unknown one fails with
// format.KindConfiguration. The first failure aborts the run.
func Run(reg *format.Registry, cfg types.ConvertConfig, log logging.Logger) (Result, error) {
	reader, err := reg.Reader(cfg.InputFormat)
	if err != nil {
		return Result{}, err
	}
	writer, err := reg.Writer(cfg.OutputFormat)
	if err != nil {
		return Result{}, err
	}
	log.Debug("formats resolved", "input_format", cfg.InputFormat, "output_format", cfg.OutputFormat)

	doc, err := reader.Read(cfg.InputFile)
	if err != nil {
		return Result{}, err
	}
	log.Debug("document read", "path", cfg.InputFile, "title", doc.Title, "sections", len(doc.Sections))

	if err := writer.Write(cfg.OutputFile, doc); err != nil {
		return Result{}, err
	}

	result := Result{
		InputFile:  cfg.InputFile,
		OutputFile: cfg.OutputFile,
		Sections:   len(doc.Sections),
	}
	log.Info("document converted", "input", result.InputFile, "output", result.OutputFile, "sections", result.Sections)
	return result, nil
}

// ReadDocument reads cfg.InputFile with the reader registered under
// cfg.InputFormat, without writing anything.
func ReadDocument(reg *format.Registry, cfg types.ConvertConfig) (types.Document, error) {
	reader, err := reg.Reader(cfg.InputFormat)
	if err != nil {
		return types.Document{}, err
	}
	return reader.Read(cfg.InputFile)
}
