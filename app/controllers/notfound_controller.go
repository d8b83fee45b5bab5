package controllers

import (
	"html/template"
	"log"
	"net/http"

	"boardfront/app/views"
)

// NotFoundController renders the static 404 page for unmatched routes.
// No state, no network activity.
type NotFoundController struct {
	templates map[string]*template.Template
}

func NewNotFoundController() *NotFoundController {
	return &NotFoundController{templates: views.Load()}
}

func (nc *NotFoundController) Show(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	if err := nc.templates["notfound"].ExecuteTemplate(w, "layout", nil); err != nil {
		log.Printf("render not found: %v", err)
	}
}
