// Package pkg provides the core libraries for pdfmosaic.
//
// # Overview
//
// pdfmosaic renders every page of a PDF to a bitmap and composes the pages
// into a single grid image. The pkg directory is organized into:
//
//  1. [mosaic] - Grid layout and image composition (pure, no I/O)
//  2. [pdf] - PDF page rendering via MuPDF
//  3. [sink] - Encoding the composed image to disk
//  4. [pipeline] - Orchestration (render → compose) with page caching
//  5. [cache] - Content-addressed file cache for rendered pages
//  6. [errors] - Coded errors and input validation
//  7. [buildinfo] - Version metadata injected at build time
//
// # Architecture
//
// The typical data flow through pdfmosaic:
//
//	PDF document
//	         ↓
//	    [pdf] package (render pages at target width)
//	         ↓
//	    [mosaic] package (grid layout + composition)
//	         ↓
//	    [sink] package (PNG/JPEG output)
//
// The [pipeline] package drives this flow and reports per-page progress
// through typed events.
package pkg
