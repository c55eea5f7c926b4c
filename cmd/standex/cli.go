package main

import (
	"context"
	"io"

	"github.com/standexhq/standex"
	"github.com/standexhq/standex/compare"
	"github.com/standexhq/standex/ingest"
	"github.com/standexhq/standex/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Standards standex.StandardService
	Pages     standex.PageService
	Search    standex.SearchService
	Bookmarks *sqlite.BookmarkService
	Ingester  *ingest.Ingester
	Analyzer  *compare.Analyzer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Ingest    IngestCmd    `cmd:"" help:"Ingest standards documents from a directory"`
	Search    SearchCmd    `cmd:"" help:"Search the full-text index"`
	Compare   CompareCmd   `cmd:"" help:"Compare how each standard treats a topic"`
	Insights  InsightsCmd  `cmd:"" help:"Analyze the whole corpus"`
	Tailor    TailorCmd    `cmd:"" help:"Recommend pages for a project profile"`
	List      ListCmd      `cmd:"" help:"List ingested standards"`
	Page      PageCmd      `cmd:"" help:"Show one page of a standard"`
	Bookmark  BookmarkCmd  `cmd:"" help:"Toggle a bookmark on a page"`
	Bookmarks BookmarksCmd `cmd:"" help:"List bookmarks"`
	Delete    DeleteCmd    `cmd:"" help:"Delete a standard and its pages"`
}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct {
	Dir     string `arg:"" help:"Directory holding PDF and EPUB documents"`
	Rebuild bool   `short:"r" help:"Re-extract pages even for unchanged files"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query  string `arg:"" help:"Full-text query"`
	Limit  int    `short:"n" default:"20" help:"Maximum results"`
	Offset int    `help:"Results to skip"`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	Topic string `arg:"" help:"Topic to compare across standards"`
}

// InsightsCmd is the "insights" subcommand.
type InsightsCmd struct{}

// TailorCmd is the "tailor" subcommand.
type TailorCmd struct {
	Type string `arg:"" help:"Project type (e.g. it, construction, research)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// PageCmd is the "page" subcommand.
type PageCmd struct {
	Slug  string `arg:"" help:"Standard slug"`
	Index int    `arg:"" help:"Zero-based page index"`
	HTML  bool   `help:"Print the HTML rendition instead of plain text"`
}

// BookmarkCmd is the "bookmark" subcommand.
type BookmarkCmd struct {
	Slug    string `arg:"" help:"Standard slug"`
	Index   int    `arg:"" help:"Zero-based page index"`
	Label   string `short:"l" help:"Optional bookmark label"`
	Session string `default:"local" help:"Session key the bookmark belongs to"`
}

// BookmarksCmd is the "bookmarks" subcommand.
type BookmarksCmd struct {
	Session string `default:"local" help:"Session key to list bookmarks for"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Slug  string `arg:"" help:"Standard slug"`
	Force bool   `help:"Confirm deletion"`
}
