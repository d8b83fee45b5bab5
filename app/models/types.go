package models

import "time"

// Post is a discussion-board post as returned by the board API. Comments
// keep the server-supplied insertion order; nothing on the client resorts
// them.
type Post struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	Comments  []*Comment `json:"comments"`
}

// Comment belongs to a post. CommentID references the comment it replies
// to within the same post's list, or is nil for a top-level comment.
type Comment struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	CommentID *int      `json:"comment_id"`
}

// NewPostDraft is the form state for the create-post form. The backend
// owns validation; the draft only carries what the user typed.
type NewPostDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NewCommentDraft is the form state for the add-comment form. CommentID
// carries the reply target, or nil for a top-level comment.
type NewCommentDraft struct {
	Content   string `json:"content"`
	PostID    int    `json:"post_id"`
	CommentID *int   `json:"comment_id"`
}

// ReplyTo returns the reply target ID, or 0 when the draft is a top-level
// comment. Templates cannot print a *int, so they go through this.
func (d NewCommentDraft) ReplyTo() int {
	if d.CommentID == nil {
		return 0
	}
	return *d.CommentID
}
