package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/catalog-editor/internal/api/middleware"
	"github.com/aaravmahajanofficial/catalog-editor/internal/errors"
	"github.com/aaravmahajanofficial/catalog-editor/internal/models"
	service "github.com/aaravmahajanofficial/catalog-editor/internal/services"
	"github.com/aaravmahajanofficial/catalog-editor/internal/utils"
	"github.com/aaravmahajanofficial/catalog-editor/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type EditorHandler struct {
	editorService service.EditorService
	validator     *validator.Validate
}

func NewEditorHandler(editorService service.EditorService) *EditorHandler {
	return &EditorHandler{
		editorService: editorService,
		validator:     utils.NewValidator(),
	}
}

// sessionID writes the error response itself when the path id is malformed.
func sessionID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	id, err := utils.ParseUUID(r, "id")
	if err != nil {
		logger.Warn("Invalid session id", slog.String("error", err.Error()))
		response.Error(w, errors.BadRequestError("Invalid session id"))
		return uuid.Nil, false
	}

	return id, true
}

// POST /api/v1/editor/sessions
func (h *EditorHandler) OpenSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.OpenSessionRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		ctx, cancel := utils.WithRequestTimeout(r.Context())
		defer cancel()

		session, err := h.editorService.OpenSession(ctx, &req)
		if err != nil {
			logger.Error("Failed to open editor", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Editor session opened", slog.String("sessionId", session.ID), slog.String("mode", string(session.View.Mode)))
		response.Success(w, http.StatusCreated, session)
	}
}

// PUT /api/v1/editor/sessions/{id}
func (h *EditorHandler) ReopenSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, ok := sessionID(w, r, logger)
		if !ok {
			return
		}

		var req models.OpenSessionRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		ctx, cancel := utils.WithRequestTimeout(r.Context())
		defer cancel()

		session, err := h.editorService.ReopenSession(ctx, id, &req)
		if err != nil {
			logger.Error("Failed to reopen editor", slog.String("sessionId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, session)
	}
}

// GET /api/v1/editor/sessions/{id}
func (h *EditorHandler) GetSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, ok := sessionID(w, r, logger)
		if !ok {
			return
		}

		session, err := h.editorService.GetSession(r.Context(), id)
		if err != nil {
			logger.Warn("Editor session lookup failed", slog.String("sessionId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, session)
	}
}

// PATCH /api/v1/editor/sessions/{id}/values
func (h *EditorHandler) ChangeValues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, ok := sessionID(w, r, logger)
		if !ok {
			return
		}

		// form values are checked by the editor against live reference data
		var values models.FormValues
		if !utils.ParseAndValidate(r, w, &values, nil) {
			return
		}

		session, err := h.editorService.ChangeValues(r.Context(), id, values)
		if err != nil {
			logger.Warn("Failed to change values", slog.String("sessionId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, session)
	}
}

// POST /api/v1/editor/sessions/{id}/submit
func (h *EditorHandler) Submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, ok := sessionID(w, r, logger)
		if !ok {
			return
		}

		var values models.FormValues
		if !utils.ParseAndValidate(r, w, &values, nil) {
			return
		}

		ctx, cancel := utils.WithRequestTimeout(r.Context())
		defer cancel()

		product, err := h.editorService.Submit(ctx, id, values)
		if err != nil {
			logger.Error("Failed to submit product", slog.String("sessionId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product submitted", slog.String("sessionId", id.String()), slog.Int64("productId", product.ID))
		response.Success(w, http.StatusOK, product)
	}
}

// POST /api/v1/editor/sessions/{id}/close
func (h *EditorHandler) CloseSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, ok := sessionID(w, r, logger)
		if !ok {
			return
		}

		session, err := h.editorService.CloseSession(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to close editor", slog.String("sessionId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, session)
	}
}

// DELETE /api/v1/editor/sessions/{id}
func (h *EditorHandler) DiscardSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, ok := sessionID(w, r, logger)
		if !ok {
			return
		}

		if err := h.editorService.DiscardSession(r.Context(), id); err != nil {
			logger.Warn("Failed to discard editor", slog.String("sessionId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
