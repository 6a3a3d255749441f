// Package mosaic implements the grid-layout computation at the heart of
// pdfmosaic.
//
// Given an ordered sequence of rendered page bitmaps and a column count, the
// package derives the canvas geometry, positions every page within its grid
// cell, and composes the pages into a single image. The computation is pure
// and deterministic: pages are laid out row-major, an incomplete last row is
// horizontally centered within the canvas, and pages shorter than the row
// height are vertically centered within their cell.
//
// The package never touches a PDF or the filesystem; callers hand it
// already-rendered image.Image values, which keeps the layout logic testable
// with synthetic bitmaps.
package mosaic
