package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"forumCPT/internal/models"
)

// reactionOp - операция журнала реакций над сущностью из URL
type reactionOp func(entity models.EntityKind, entityID, userID string) (*models.ReactionResult, error)

func (h *Handlers) handleReaction(w http.ResponseWriter, r *http.Request, op reactionOp) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)

	// комментарий в URL важнее поста: /posts/{postId}/comments/{commentId}/like
	entity := models.KindPost
	entityID := vars["postId"]
	if commentID, isComment := vars["commentId"]; isComment {
		entity = models.KindComment
		entityID = commentID
	}

	if !validUUID(entityID) {
		WriteError(w, "Неверный формат ID", http.StatusBadRequest)
		return
	}

	result, err := op(entity, entityID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, result, http.StatusOK)
}

func (h *Handlers) Like(w http.ResponseWriter, r *http.Request) {
	h.handleReaction(w, r, func(entity models.EntityKind, entityID, userID string) (*models.ReactionResult, error) {
		return h.ReactionService.Like(r.Context(), entity, entityID, userID)
	})
}

func (h *Handlers) Unlike(w http.ResponseWriter, r *http.Request) {
	h.handleReaction(w, r, func(entity models.EntityKind, entityID, userID string) (*models.ReactionResult, error) {
		return h.ReactionService.Unlike(r.Context(), entity, entityID, userID)
	})
}

func (h *Handlers) Dislike(w http.ResponseWriter, r *http.Request) {
	h.handleReaction(w, r, func(entity models.EntityKind, entityID, userID string) (*models.ReactionResult, error) {
		return h.ReactionService.Dislike(r.Context(), entity, entityID, userID)
	})
}

func (h *Handlers) Undislike(w http.ResponseWriter, r *http.Request) {
	h.handleReaction(w, r, func(entity models.EntityKind, entityID, userID string) (*models.ReactionResult, error) {
		return h.ReactionService.Undislike(r.Context(), entity, entityID, userID)
	})
}
