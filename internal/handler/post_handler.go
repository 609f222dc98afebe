package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"forumCPT/internal/models"
	"forumCPT/internal/service"
)

type PaginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type PostsGetResponse struct {
	Posts      []models.Post      `json:"posts"`
	Pagination PaginationResponse `json:"pagination"`
}

// parsePagination читает page/limit из query, ограничивая limit сотней
func parsePagination(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	return page, limit
}

// imageFromForm достаёт необязательный файл из multipart-формы
func (h *Handlers) imageFromForm(r *http.Request) (*service.ImageUpload, func(), error) {
	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, err
	}

	return &service.ImageUpload{
		FileName: header.Filename,
		File:     file,
		Size:     header.Size,
	}, func() { file.Close() }, nil
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	posts, total, err := h.PostService.GetPosts(r.Context(), page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}

	response := PostsGetResponse{
		Posts: posts,
		Pagination: PaginationResponse{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + limit - 1) / limit,
		},
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]
	if !validUUID(postID) {
		WriteError(w, "Неверный формат ID", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	title := r.FormValue("title")
	content := r.FormValue("content")

	if title == "" || content == "" {
		WriteError(w, "Заполните заголовок и содержание", http.StatusBadRequest)
		return
	}

	image, closeFile, err := h.imageFromForm(r)
	if err != nil {
		WriteError(w, "Ошибка чтения файла", http.StatusBadRequest)
		return
	}
	defer closeFile()

	post, points, err := h.PostService.CreatePost(r.Context(), service.CreatePostRequest{
		AuthorID: userID,
		Title:    title,
		Content:  content,
	}, image)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"post":   post,
		"points": points,
	}, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
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

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	title := r.FormValue("title")
	content := r.FormValue("content")

	if title == "" || content == "" {
		WriteError(w, "Заполните заголовок и содержание", http.StatusBadRequest)
		return
	}

	image, closeFile, err := h.imageFromForm(r)
	if err != nil {
		WriteError(w, "Ошибка чтения файла", http.StatusBadRequest)
		return
	}
	defer closeFile()

	post, err := h.PostService.UpdatePost(r.Context(), service.UpdatePostRequest{
		PostID:   postID,
		AuthorID: userID,
		Title:    title,
		Content:  content,
	}, image)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
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

	points, err := h.PostService.DeletePost(r.Context(), postID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"message": "Пост удалён",
		"points":  points,
	}, http.StatusOK)
}

func (h *Handlers) DeletePostImage(w http.ResponseWriter, r *http.Request) {
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

	post, err := h.PostService.DeletePostImage(r.Context(), postID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}
