package routes

import (
	"net/http"

	"inkwell/app/config"
	"inkwell/app/controllers"
	"inkwell/app/markdown"
	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// SetupRoutes wires the repository, services, and controllers and returns the
// application router.
func SetupRoutes(cfg *config.Config, logger zerolog.Logger) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))

	renderer := markdown.NewRenderer()
	postRepo := repositories.NewFilePostRepository(cfg.PostsDir, cfg.PostExt)
	postService := services.NewPostService(postRepo, renderer)
	runnerService := services.NewRunnerService(services.RunnerConfig{
		URL:      cfg.Runner.URL,
		Token:    cfg.Runner.Token,
		FileName: cfg.Runner.FileName,
		Timeout:  cfg.Runner.Timeout,
	}, logger)

	postController := controllers.NewPostController(postService, renderer, cfg.ViewsDir, logger)
	runController := controllers.NewRunController(runnerService, logger)

	// Serve static files
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	router.HandleFunc("/", postController.Index).Methods("GET")
	router.HandleFunc("/about", postController.About).Methods("GET")
	router.HandleFunc("/run", runController.Run).Methods("POST")
	router.HandleFunc("/post/{slug:[a-zA-Z0-9_-]+}", postController.Show).Methods("GET")

	// Listing links point at "/"+slug, so the bare form resolves too.
	router.HandleFunc("/{slug:[a-zA-Z0-9_-]+}", postController.Show).Methods("GET")

	return router
}
