package sqlite

import (
	"context"
	"time"
)

// Bookmark associates a session with a page. Plain collaborator state with
// no algorithmic content; kept here so the CLI can round-trip it.
type Bookmark struct {
	ID         int64
	SessionKey string
	PageID     int64
	Label      string
	CreatedAt  time.Time
}

// BookmarkService provides session-scoped bookmark CRUD.
type BookmarkService struct {
	db *DB
}

// NewBookmarkService creates a new BookmarkService.
func NewBookmarkService(db *DB) *BookmarkService {
	return &BookmarkService{db: db}
}

// ToggleBookmark creates the bookmark if absent and removes it if present.
// Returns true when the bookmark exists after the call.
func (s *BookmarkService) ToggleBookmark(ctx context.Context, sessionKey string, pageID int64, label string) (bool, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM bookmarks WHERE session_key = ? AND page_id = ?", sessionKey, pageID)
	if err != nil {
		return false, err
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if deleted > 0 {
		return false, nil
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO bookmarks (session_key, page_id, label, created_at)
		VALUES (?, ?, ?, ?)
	`, sessionKey, pageID, label, time.Now().UTC().Format(time.RFC3339))
	return err == nil, err
}

// FindBookmarks returns a session's bookmarks, newest first.
func (s *BookmarkService) FindBookmarks(ctx context.Context, sessionKey string) ([]*Bookmark, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_key, page_id, label, created_at
		FROM bookmarks
		WHERE session_key = ?
		ORDER BY created_at DESC
	`, sessionKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookmarks []*Bookmark
	for rows.Next() {
		var bm Bookmark
		var createdAt string
		if err := rows.Scan(&bm.ID, &bm.SessionKey, &bm.PageID, &bm.Label, &createdAt); err != nil {
			return nil, err
		}
		bm.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, &bm)
	}

	return bookmarks, rows.Err()
}
