package models

// FindComment returns the comment with the given ID from the post's list,
// or nil when no comment matches.
func (p *Post) FindComment(id int) *Comment {
	for _, c := range p.Comments {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// ReplyAuthor resolves the author of the comment that c replies to. Only
// one level is resolved; grandparent chains are never walked. A reply
// whose target is missing from the list degrades to ("", false) so the
// caller can still render a prefix without failing.
func (p *Post) ReplyAuthor(c *Comment) (string, bool) {
	if c == nil || c.CommentID == nil {
		return "", false
	}
	parent := p.FindComment(*c.CommentID)
	if parent == nil {
		return "", false
	}
	return parent.Name, true
}

// AppendComment adds a comment to the end of the post's list, preserving
// insertion order. A comment whose ID is already present is dropped so a
// create-then-refetch cannot show the same comment twice.
func (p *Post) AppendComment(c *Comment) {
	if c == nil {
		return
	}
	if p.FindComment(c.ID) != nil {
		return
	}
	p.Comments = append(p.Comments, c)
}

// PrependPost puts created at the head of posts, dropping any entry that
// already carries its ID.
func PrependPost(posts []*Post, created *Post) []*Post {
	if created == nil {
		return posts
	}
	out := make([]*Post, 0, len(posts)+1)
	out = append(out, created)
	for _, p := range posts {
		if p.ID == created.ID {
			continue
		}
		out = append(out, p)
	}
	return out
}
