package controllers

import (
	"errors"
	"html/template"
	"net/http"
	"path/filepath"

	"inkwell/app/markdown"
	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// PostController handles HTTP requests for blog pages
type PostController struct {
	postService *services.PostService
	renderer    *markdown.Renderer
	templates   map[string]*template.Template
	logger      zerolog.Logger
}

// NewPostController creates a new PostController with templates loaded from
// viewsDir
func NewPostController(postService *services.PostService, renderer *markdown.Renderer, viewsDir string, logger zerolog.Logger) *PostController {
	return &PostController{
		postService: postService,
		renderer:    renderer,
		templates:   loadTemplates(viewsDir),
		logger:      logger,
	}
}

// loadTemplates loads and parses all templates
func loadTemplates(viewsDir string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["index"] = template.Must(template.ParseFiles(
		filepath.Join(viewsDir, "layout.html"),
		filepath.Join(viewsDir, "posts/index.html"),
	))
	templates["show"] = template.Must(template.ParseFiles(
		filepath.Join(viewsDir, "layout.html"),
		filepath.Join(viewsDir, "posts/show.html"),
	))
	templates["about"] = template.Must(template.ParseFiles(
		filepath.Join(viewsDir, "layout.html"),
		filepath.Join(viewsDir, "about.html"),
	))
	return templates
}

// Index handles the post listing page
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	summaries, err := pc.postService.ListSummaries()
	if err != nil {
		pc.logger.Error().Err(err).Msg("failed to list posts")
		http.Error(w, "Failed to fetch posts", http.StatusInternalServerError)
		return
	}

	data := struct {
		Posts []*models.PostSummary
	}{
		Posts: summaries,
	}

	if err := pc.templates["index"].ExecuteTemplate(w, "layout", data); err != nil {
		pc.logger.Error().Err(err).Msg("template error")
	}
}

// Show handles a single post page. The raw body is rendered to HTML here, at
// display time; listings bake pre-rendered previews into summaries instead.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	post, err := pc.postService.GetPost(slug)
	if errors.Is(err, repositories.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		pc.logger.Error().Err(err).Str("slug", slug).Msg("failed to load post")
		http.Error(w, "Failed to load post", http.StatusInternalServerError)
		return
	}

	rendered, err := pc.renderer.Render(post.Body)
	if err != nil {
		pc.logger.Error().Err(err).Str("slug", slug).Msg("failed to render post")
		http.Error(w, "Failed to render post", http.StatusInternalServerError)
		return
	}

	data := struct {
		Title   string
		Date    string
		Content template.HTML
	}{
		Title:   post.Title(),
		Date:    post.Date(),
		Content: template.HTML(rendered),
	}

	if err := pc.templates["show"].ExecuteTemplate(w, "layout", data); err != nil {
		pc.logger.Error().Err(err).Msg("template error")
	}
}

// About handles the static about page
func (pc *PostController) About(w http.ResponseWriter, r *http.Request) {
	if err := pc.templates["about"].ExecuteTemplate(w, "layout", nil); err != nil {
		pc.logger.Error().Err(err).Msg("template error")
	}
}
