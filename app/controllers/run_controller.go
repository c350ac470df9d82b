package controllers

import (
	"net/http"

	"inkwell/app/services"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// RunController proxies code snippets to the remote execution service.
type RunController struct {
	runner   *services.RunnerService
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewRunController creates a new RunController
func NewRunController(runner *services.RunnerService, logger zerolog.Logger) *RunController {
	return &RunController{
		runner:   runner,
		validate: validator.New(),
		logger:   logger,
	}
}

type runForm struct {
	Code string `validate:"required"`
}

// Run handles POST /run: it reads the code form field, strips zero-width
// characters, forwards the snippet upstream, and relays the combined output
// as plain text. Upstream failures map to 502.
func (rc *RunController) Run(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := runForm{Code: services.StripZeroWidth(r.FormValue("code"))}
	if err := rc.validate.Struct(&form); err != nil {
		http.Error(w, "code is required", http.StatusBadRequest)
		return
	}

	output, err := rc.runner.Run(r.Context(), form.Code)
	if err != nil {
		rc.logger.Error().Err(err).Msg("code runner failed")
		http.Error(w, "Code execution failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(output))
}
