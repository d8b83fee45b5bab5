package models

// IsReply reports whether the comment replies to another comment.
func (c *Comment) IsReply() bool {
	return c.CommentID != nil
}
