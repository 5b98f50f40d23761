package xlgrid

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrInvalidDefinition indicates a report definition that cannot be laid out.
var ErrInvalidDefinition = errors.New("invalid report definition")

// ErrUnknownTable indicates a chart referring to a table id that was not
// placed before it.
var ErrUnknownTable = errors.New("unknown table")

// RenderError represents an error while rendering one part of a sheet.
type RenderError struct {
	SheetName string
	Component string // "sheet", "group", "table", "chart", "print_area"
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(sheetName, component string, err error) *RenderError {
	return &RenderError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}

// ExtractionError represents an error while reading a written workbook back.
type ExtractionError struct {
	SheetName string
	Component string // "cells", "merged", "used_range", "charts"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
