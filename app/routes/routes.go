// Package routes wires the web front-end's URL space to its controllers.
package routes

import (
	"net/http"

	"boardfront/app/apiclient"
	"boardfront/app/config"
	"boardfront/app/controllers"
	"boardfront/app/middleware"
	"boardfront/app/session"

	"github.com/gorilla/mux"
)

// Setup builds the router for the web front-end. sessions may be nil
// when the deployment runs without authentication.
func Setup(cfg config.Config, sessions *session.Store) *mux.Router {
	api := apiclient.New(cfg.APIBaseURL)

	postController := controllers.NewPostController(api, sessions, cfg.RedirectOn401)
	authController := controllers.NewAuthController(api, sessions)
	notFoundController := controllers.NewNotFoundController()

	r := mux.NewRouter()
	r.Use(middleware.Logger, middleware.Recoverer)

	r.HandleFunc("/", postController.Index).Methods(http.MethodGet)
	r.HandleFunc("/posts", postController.Create).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id:[0-9]+}", postController.Show).Methods(http.MethodGet)
	r.HandleFunc("/posts/{id:[0-9]+}/comments", postController.AddComment).Methods(http.MethodPost)
	r.HandleFunc("/auth", authController.Show).Methods(http.MethodGet)
	r.HandleFunc("/auth", authController.Submit).Methods(http.MethodPost)
	r.HandleFunc("/logout", authController.Logout).Methods(http.MethodGet)

	// mux does not run middleware for the NotFoundHandler, so wrap it
	// directly to keep unmatched routes in the access log.
	r.NotFoundHandler = middleware.Logger(http.HandlerFunc(notFoundController.Show))

	return r
}
