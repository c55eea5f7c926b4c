// Package standex provides a local corpus tool for long-form reference
// standards. It ingests PDF and EPUB documents, normalizes them into an
// ordered sequence of addressable pages, indexes page content for ranked
// full-text search, and computes cross-standard similarity, difference,
// and uniqueness reports.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, pdf/, epub/) or their
// function (ingest/, compare/).
package standex
