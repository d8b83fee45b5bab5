package controllers

import (
	"html/template"
	"log"
	"net/http"
	"strconv"

	"boardfront/app/apiclient"
	"boardfront/app/models"
	"boardfront/app/session"
	"boardfront/app/views"
	"boardfront/app/viewstate"

	"github.com/gorilla/mux"
)

// PostController serves the post list and single-post views. Every
// request fetches its own copy from the board API; nothing is shared or
// cached between requests.
type PostController struct {
	api           *apiclient.Client
	sessions      *session.Store
	templates     map[string]*template.Template
	redirectOn401 bool
}

// NewPostController creates a PostController. sessions may be nil when
// the front-end runs without authentication.
func NewPostController(api *apiclient.Client, sessions *session.Store, redirectOn401 bool) *PostController {
	return &PostController{
		api:           api,
		sessions:      sessions,
		templates:     views.Load(),
		redirectOn401: redirectOn401,
	}
}

// postForm is the create-post form state carried through a render.
type postForm struct {
	Open  bool
	Error string
	Draft models.NewPostDraft
}

// indexPage is the data the post list template renders over.
type indexPage struct {
	State viewstate.State[[]*models.Post]
	Form  postForm
}

// commentForm is the add-comment form state carried through a render.
type commentForm struct {
	Open  bool
	Error string
	Draft models.NewCommentDraft
}

// commentView pairs a comment with its resolved reply prefix author.
// ReplyAuthor stays empty when the reply target is missing from the
// list; the prefix still renders, just without a name.
type commentView struct {
	*models.Comment
	ReplyAuthor string
}

// showPage is the data the single-post template renders over.
type showPage struct {
	PostID   int
	State    viewstate.State[*models.Post]
	Comments []commentView
	Form     commentForm
}

// Index handles GET /. A 401 redirects to the auth view only when the
// redirect flag is enabled.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	api := pc.apiFor(r)
	posts, err := api.ListPosts(r.Context())
	if err != nil {
		if apiclient.IsUnauthorized(err) && pc.redirectOn401 {
			http.Redirect(w, r, "/auth", http.StatusSeeOther)
			return
		}
		pc.renderIndex(w, indexPage{State: viewstate.Failed[[]*models.Post](err)})
		return
	}
	pc.renderIndex(w, indexPage{State: viewstate.Loaded(posts)})
}

// Create handles POST /posts. On success the created post is prepended
// to a freshly listed collection, mirroring the optimistic prepend of
// the original UI; on failure the form stays open with the draft intact.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	api := pc.apiFor(r)
	draft := models.NewPostDraft{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
	}

	created, err := api.CreatePost(r.Context(), draft)
	posts, listErr := api.ListPosts(r.Context())
	if err != nil {
		page := indexPage{Form: postForm{Open: true, Error: apiclient.Message(err), Draft: draft}}
		if listErr != nil {
			page.State = viewstate.Failed[[]*models.Post](listErr)
		} else {
			page.State = viewstate.Loaded(posts)
		}
		pc.renderIndex(w, page)
		return
	}

	// The create succeeded; a failed refetch still renders the new post.
	pc.renderIndex(w, indexPage{State: viewstate.Loaded(models.PrependPost(posts, created))})
}

// Show handles GET /posts/{id}.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}
	api := pc.apiFor(r)
	post, err := api.GetPost(r.Context(), id)
	if err != nil {
		pc.renderShow(w, showPage{PostID: id, State: viewstate.Failed[*models.Post](err)})
		return
	}
	pc.renderShow(w, showPage{
		PostID:   id,
		State:    viewstate.Loaded(post),
		Comments: commentViews(post),
	})
}

// AddComment handles POST /posts/{id}/comments for both top-level
// comments and replies; a hidden comment_id field selects the mode. The
// form is closed on success and failure alike, but a failed submit keeps
// the draft so the user can reopen and resubmit.
func (pc *PostController) AddComment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	draft := models.NewCommentDraft{
		Content: r.FormValue("content"),
		PostID:  id,
	}
	if v := r.FormValue("comment_id"); v != "" {
		if cid, convErr := strconv.Atoi(v); convErr == nil {
			draft.CommentID = &cid
		}
	}

	api := pc.apiFor(r)
	created, err := api.AddComment(r.Context(), id, draft)
	post, getErr := api.GetPost(r.Context(), id)
	if err != nil {
		page := showPage{PostID: id, Form: commentForm{Error: apiclient.Message(err), Draft: draft}}
		if getErr != nil {
			page.State = viewstate.Failed[*models.Post](getErr)
		} else {
			page.State = viewstate.Loaded(post)
			page.Comments = commentViews(post)
		}
		pc.renderShow(w, page)
		return
	}
	if getErr != nil {
		// The comment was created; a failed refetch still renders it.
		pc.renderShow(w, showPage{
			PostID:   id,
			State:    viewstate.Failed[*models.Post](getErr),
			Comments: commentViews(&models.Post{Comments: []*models.Comment{created}}),
		})
		return
	}

	post.AppendComment(created)
	pc.renderShow(w, showPage{
		PostID:   id,
		State:    viewstate.Loaded(post),
		Comments: commentViews(post),
	})
}

// apiFor attaches the request's session token, when there is one.
func (pc *PostController) apiFor(r *http.Request) *apiclient.Client {
	if pc.sessions != nil {
		if sess, ok := pc.sessions.FromRequest(r); ok {
			return pc.api.WithToken(sess.Token)
		}
	}
	return pc.api
}

func commentViews(post *models.Post) []commentView {
	out := make([]commentView, 0, len(post.Comments))
	for _, c := range post.Comments {
		view := commentView{Comment: c}
		if c.IsReply() {
			name, _ := post.ReplyAuthor(c)
			view.ReplyAuthor = name
		}
		out = append(out, view)
	}
	return out
}

func (pc *PostController) renderIndex(w http.ResponseWriter, page indexPage) {
	if err := pc.templates["index"].ExecuteTemplate(w, "layout", page); err != nil {
		log.Printf("render index: %v", err)
	}
}

func (pc *PostController) renderShow(w http.ResponseWriter, page showPage) {
	if err := pc.templates["show"].ExecuteTemplate(w, "layout", page); err != nil {
		log.Printf("render show: %v", err)
	}
}
