package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type ProfileResponse struct {
	UserID    string    `json:"userId"`
	Login     string    `json:"login"`
	Username  string    `json:"username"`
	Points    int       `json:"points"`
	Rank      string    `json:"rank"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	profile, err := h.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, ProfileResponse{
		UserID:    profile.User.UserID,
		Login:     profile.User.Login,
		Username:  profile.User.Username,
		Points:    profile.User.Points,
		Rank:      profile.Rank,
		CreatedAt: profile.User.CreatedAt,
	}, http.StatusOK)
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	var req struct {
		Username string `json:"username" validate:"required,min=2,max=64"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	profile, err := h.UserService.UpdateUsername(r.Context(), userID, req.Username)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, ProfileResponse{
		UserID:    profile.User.UserID,
		Login:     profile.User.Login,
		Username:  profile.User.Username,
		Points:    profile.User.Points,
		Rank:      profile.Rank,
		CreatedAt: profile.User.CreatedAt,
	}, http.StatusOK)
}

// DeleteAccount удаляет аккаунт после подтверждения пароля
func (h *Handlers) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	var req struct {
		Password string `json:"password" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	err := h.UserService.DeleteAccount(r.Context(), userID, req.Password)
	if err != nil {
		if err.Error() == "пароль не совпадает" {
			WriteError(w, "Пароль не совпадает", http.StatusBadRequest)
			return
		}
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Аккаунт удалён"}, http.StatusOK)
}

// GetUser отдаёт публичный профиль по ID
func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if !validUUID(userID) {
		WriteError(w, "Неверный формат ID", http.StatusBadRequest)
		return
	}

	profile, err := h.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"userId":   profile.User.UserID,
		"username": profile.User.Username,
		"points":   profile.User.Points,
		"rank":     profile.Rank,
	}, http.StatusOK)
}
