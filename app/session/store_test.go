package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *Store {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewStore(db, []byte("test-secret"))
}

func TestCreateAndGet(t *testing.T) {
	store := setupStore(t)

	sess, err := store.Create("api-token", "bob", "bob@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)
	assert.False(t, sess.CreatedAt.IsZero())

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "api-token", got.Token)
	assert.Equal(t, "bob", got.Name)
	assert.Equal(t, "bob@example.com", got.Email)
}

func TestGetUnknown(t *testing.T) {
	store := setupStore(t)

	_, err := store.Get("no-such-session")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	store := setupStore(t)

	sess, err := store.Create("tok", "bob", "bob@example.com")
	require.NoError(t, err)

	require.NoError(t, store.Delete(sess.ID))
	_, err = store.Get(sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	t.Run("deleting twice is fine", func(t *testing.T) {
		assert.NoError(t, store.Delete(sess.ID))
	})
}

func TestUniqueIDs(t *testing.T) {
	store := setupStore(t)

	a, err := store.Create("tok", "a", "a@example.com")
	require.NoError(t, err)
	b, err := store.Create("tok", "b", "b@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestCookieRoundTrip(t *testing.T) {
	store := setupStore(t)

	sess, err := store.Create("tok", "bob", "bob@example.com")
	require.NoError(t, err)

	cookie := store.Cookie(sess)
	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookie)

	got, ok := store.FromRequest(req)
	require.True(t, ok)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, "tok", got.Token)
}

func TestFromRequestRejects(t *testing.T) {
	store := setupStore(t)

	sess, err := store.Create("tok", "bob", "bob@example.com")
	require.NoError(t, err)
	valid := store.Cookie(sess)

	tests := []struct {
		name  string
		value string
	}{
		{name: "tampered id", value: "other-id." + strings.SplitN(valid.Value, ".", 2)[1]},
		{name: "tampered signature", value: sess.ID + ".deadbeef"},
		{name: "no separator", value: sess.ID},
		{name: "empty value", value: ""},
		{name: "signed but deleted session", value: func() string {
			require.NoError(t, store.Delete(sess.ID))
			return valid.Value
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.AddCookie(&http.Cookie{Name: CookieName, Value: tt.value})

			_, ok := store.FromRequest(req)
			assert.False(t, ok)
		})
	}
}

func TestFromRequestWithoutCookie(t *testing.T) {
	store := setupStore(t)

	_, ok := store.FromRequest(httptest.NewRequest("GET", "/", nil))
	assert.False(t, ok)
}

func TestSignatureDependsOnSecret(t *testing.T) {
	store := setupStore(t)
	other := setupStore(t)
	// same in-memory DB layout, different secret
	other.secret = []byte("different")

	sess, err := store.Create("tok", "bob", "bob@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, store.sign(sess.ID), other.sign(sess.ID))
}
