package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"forumCPT/cmd/app"
	"forumCPT/internal/config"
	handlers "forumCPT/internal/handler"
	"forumCPT/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/stats", handler.StatsHandler).Methods(http.MethodGet)

	router.HandleFunc("/api/auth/signup", handler.Signup).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	router.HandleFunc("/api/user/profile", handler.GetProfile).Methods(http.MethodGet)
	router.HandleFunc("/api/user/profile", handler.UpdateProfile).Methods(http.MethodPut)
	router.HandleFunc("/api/user/profile", handler.DeleteAccount).Methods(http.MethodDelete)
	router.HandleFunc("/api/user/{userId}", handler.GetUser).Methods(http.MethodGet)

	router.HandleFunc("/api/posts", handler.GetPosts).Methods(http.MethodGet)
	router.HandleFunc("/api/posts", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{postId}", handler.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/{postId}", handler.UpdatePost).Methods(http.MethodPut)
	router.HandleFunc("/api/posts/{postId}", handler.DeletePost).Methods(http.MethodDelete)
	router.HandleFunc("/api/posts/{postId}/image", handler.DeletePostImage).Methods(http.MethodDelete)

	router.HandleFunc("/api/posts/{postId}/comments", handler.GetComments).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/{postId}/comments", handler.AddComment).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{postId}/comments/{commentId}", handler.UpdateComment).Methods(http.MethodPut)
	router.HandleFunc("/api/posts/{postId}/comments/{commentId}", handler.DeleteComment).Methods(http.MethodDelete)

	// reaction ledger: explicit like/unlike/dislike/undislike
	router.HandleFunc("/api/posts/{postId}/like", handler.Like).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{postId}/like", handler.Unlike).Methods(http.MethodDelete)
	router.HandleFunc("/api/posts/{postId}/dislike", handler.Dislike).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{postId}/dislike", handler.Undislike).Methods(http.MethodDelete)

	router.HandleFunc("/api/posts/{postId}/comments/{commentId}/like", handler.Like).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{postId}/comments/{commentId}/like", handler.Unlike).Methods(http.MethodDelete)
	router.HandleFunc("/api/posts/{postId}/comments/{commentId}/dislike", handler.Dislike).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{postId}/comments/{commentId}/dislike", handler.Undislike).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		router,
		middleware.AuthMiddleware(cfg),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
