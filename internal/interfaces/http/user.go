package http

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"freelancernow/internal/domain/user"
	"freelancernow/internal/shared/logger"
	"freelancernow/internal/shared/messages"
	"freelancernow/internal/shared/middleware"
)

type UserHandler struct {
	service *user.Service
	catalog *messages.Catalog
	log     *zap.Logger
}

func NewUserHandler(service *user.Service, catalog *messages.Catalog, log *zap.Logger) *UserHandler {
	return &UserHandler{service: service, catalog: catalog, log: log}
}

// HandleMe handles both GET and PATCH requests for the current user
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleGetMe(w, r, userID)
	case http.MethodPatch:
		h.handleUpdateMe(w, r, userID)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *UserHandler) handleGetMe(w http.ResponseWriter, r *http.Request, userID int64) {
	u, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) handleUpdateMe(w http.ResponseWriter, r *http.Request, userID int64) {
	var params user.UpdateProfileParams
	if err := decodeJSON(w, r, &params); err != nil {
		h.log.Debug("invalid profile update body", zap.Int64("user_id", userID), zap.Error(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	u, err := h.service.UpdateProfile(r.Context(), userID, params)
	if err != nil {
		if params.Document != nil {
			h.log.Debug("profile document rejected",
				zap.Int64("user_id", userID),
				zap.String("document", logger.MaskDocument(*params.Document)),
			)
		}
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// HandlePublicProfile serves GET /api/users/{id} without the document.
func (h *UserHandler) HandlePublicProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	u, err := h.service.GetProfile(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u.Public())
}

func (h *UserHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if code, ok := user.ValidationCode(err); ok {
		msg := h.catalog.Lookup(code, r.Header.Get("Accept-Language"))
		writeError(w, http.StatusUnprocessableEntity, string(code), msg)
		return
	}

	switch {
	case errors.Is(err, user.ErrUserNotFound):
		http.Error(w, "User not found", http.StatusNotFound)
	case errors.Is(err, user.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, user.ErrEmailTaken):
		http.Error(w, "Email already registered", http.StatusConflict)
	default:
		h.log.Error("user request failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.RequestIDFrom(r.Context())),
			zap.Error(err),
		)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
