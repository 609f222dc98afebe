package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"forumCPT/internal/models"
)

type CommentsGetResponse struct {
	Comments   []models.Comment   `json:"comments"`
	Pagination PaginationResponse `json:"pagination"`
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["postId"]
	if !validUUID(postID) {
		WriteError(w, "Неверный формат ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Content string `json:"content" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		WriteError(w, "Введите текст комментария", http.StatusBadRequest)
		return
	}

	comment, points, err := h.CommentService.AddComment(r.Context(), postID, userID, req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"comment": comment,
		"points":  points,
	}, http.StatusCreated)
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]
	if !validUUID(postID) {
		WriteError(w, "Неверный формат ID", http.StatusBadRequest)
		return
	}

	page, limit := parsePagination(r)

	comments, total, err := h.CommentService.GetComments(r.Context(), postID, page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	response := CommentsGetResponse{
		Comments: comments,
		Pagination: PaginationResponse{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + limit - 1) / limit,
		},
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	commentID := mux.Vars(r)["commentId"]
	if !validUUID(commentID) {
		WriteError(w, "Неверный формат ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Content string `json:"content" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		WriteError(w, "Введите текст комментария", http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.UpdateComment(r.Context(), commentID, userID, req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	commentID := mux.Vars(r)["commentId"]
	if !validUUID(commentID) {
		WriteError(w, "Неверный формат ID", http.StatusBadRequest)
		return
	}

	points, err := h.CommentService.DeleteComment(r.Context(), commentID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"message": "Комментарий удалён",
		"points":  points,
	}, http.StatusOK)
}
