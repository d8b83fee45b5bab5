package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func threadedPost() *Post {
	return &Post{
		ID:        1,
		Title:     "Threaded",
		Name:      "bob",
		CreatedAt: time.Now(),
		Comments: []*Comment{
			{ID: 10, Content: "first", Name: "alice"},
			{ID: 11, Content: "reply to first", Name: "carol", CommentID: intPtr(10)},
			{ID: 12, Content: "orphan reply", Name: "dave", CommentID: intPtr(99)},
		},
	}
}

func TestFindComment(t *testing.T) {
	post := threadedPost()

	found := post.FindComment(11)
	require.NotNil(t, found)
	assert.Equal(t, "carol", found.Name)

	assert.Nil(t, post.FindComment(42))
}

func TestReplyAuthor(t *testing.T) {
	post := threadedPost()

	t.Run("resolves one level", func(t *testing.T) {
		name, ok := post.ReplyAuthor(post.Comments[1])
		assert.True(t, ok)
		assert.Equal(t, "alice", name)
	})

	t.Run("missing parent degrades without error", func(t *testing.T) {
		name, ok := post.ReplyAuthor(post.Comments[2])
		assert.False(t, ok)
		assert.Equal(t, "", name)
	})

	t.Run("top-level comment is not a reply", func(t *testing.T) {
		_, ok := post.ReplyAuthor(post.Comments[0])
		assert.False(t, ok)
	})

	t.Run("nil comment", func(t *testing.T) {
		_, ok := post.ReplyAuthor(nil)
		assert.False(t, ok)
	})
}

func TestAppendComment(t *testing.T) {
	post := threadedPost()

	post.AppendComment(&Comment{ID: 13, Content: "newest", Name: "erin"})
	require.Len(t, post.Comments, 4)
	assert.Equal(t, "newest", post.Comments[3].Content)

	t.Run("duplicate ID is dropped", func(t *testing.T) {
		post.AppendComment(&Comment{ID: 13, Content: "dupe"})
		assert.Len(t, post.Comments, 4)
		assert.Equal(t, "newest", post.Comments[3].Content)
	})

	t.Run("nil is ignored", func(t *testing.T) {
		post.AppendComment(nil)
		assert.Len(t, post.Comments, 4)
	})
}

func TestPrependPost(t *testing.T) {
	existing := []*Post{{ID: 1, Title: "old"}, {ID: 2, Title: "older"}}

	out := PrependPost(existing, &Post{ID: 3, Title: "new"})
	require.Len(t, out, 3)
	assert.Equal(t, "new", out[0].Title)
	assert.Equal(t, "old", out[1].Title)

	t.Run("existing entry with the same ID is replaced", func(t *testing.T) {
		out := PrependPost(existing, &Post{ID: 2, Title: "refreshed"})
		require.Len(t, out, 2)
		assert.Equal(t, "refreshed", out[0].Title)
		assert.Equal(t, "old", out[1].Title)
	})

	t.Run("nil created leaves the list alone", func(t *testing.T) {
		assert.Equal(t, existing, PrependPost(existing, nil))
	})

	t.Run("empty list", func(t *testing.T) {
		out := PrependPost(nil, &Post{ID: 9})
		require.Len(t, out, 1)
		assert.Equal(t, 9, out[0].ID)
	})
}

func TestCommentIsReply(t *testing.T) {
	assert.False(t, (&Comment{ID: 1}).IsReply())
	assert.True(t, (&Comment{ID: 2, CommentID: intPtr(1)}).IsReply())
}

func TestNewCommentDraftReplyTo(t *testing.T) {
	assert.Equal(t, 0, NewCommentDraft{}.ReplyTo())
	assert.Equal(t, 7, NewCommentDraft{CommentID: intPtr(7)}.ReplyTo())
}
