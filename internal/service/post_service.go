package service

import (
	"context"
	"fmt"
	"io"

	"forumCPT/internal/config"
	"forumCPT/internal/models"
	"forumCPT/internal/repository"
	"forumCPT/internal/storage"
)

type CreatePostRequest struct {
	AuthorID string
	Title    string
	Content  string
}

type UpdatePostRequest struct {
	PostID   string
	AuthorID string
	Title    string
	Content  string
}

// ImageUpload - картинка из multipart-формы
type ImageUpload struct {
	FileName string
	File     io.Reader
	Size     int64
}

type PostService interface {
	CreatePost(ctx context.Context, req CreatePostRequest, image *ImageUpload) (*models.Post, int, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	GetPosts(ctx context.Context, page, limit int) ([]models.Post, int, error)
	UpdatePost(ctx context.Context, req UpdatePostRequest, image *ImageUpload) (*models.Post, error)
	DeletePost(ctx context.Context, postID, userID string) (int, error)
	DeletePostImage(ctx context.Context, postID, userID string) (*models.Post, error)
}

type postService struct {
	postRepo     repository.PostRepository
	userRepo     repository.UserRepository
	reactionRepo repository.ReactionRepository
	storage      storage.Storage
	cfg          *config.Config
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, reactionRepo repository.ReactionRepository, storage storage.Storage, cfg *config.Config) PostService {
	return &postService{
		postRepo:     postRepo,
		userRepo:     userRepo,
		reactionRepo: reactionRepo,
		storage:      storage,
		cfg:          cfg,
	}
}

func (p *postService) CreatePost(ctx context.Context, req CreatePostRequest, image *ImageUpload) (*models.Post, int, error) {
	post := &models.Post{
		AuthorID: req.AuthorID,
		Title:    req.Title,
		Content:  req.Content,
	}

	var objectName string
	if image != nil {
		var imageURL string
		var err error

		objectName, imageURL, err = p.storage.UploadImage(ctx, post.AuthorID, image.FileName, image.File, image.Size)
		if err != nil {
			return nil, 0, fmt.Errorf("ошибка загрузки изображения в MinIO: %w", err)
		}

		post.ImageURL = &imageURL
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		if objectName != "" {
			p.storage.DeleteImage(ctx, objectName)
		}
		return nil, 0, err
	}

	// creating a post is worth points
	points, err := p.userRepo.AddPoints(ctx, req.AuthorID, PointsPostCreate)
	if err != nil {
		return nil, 0, err
	}

	post.Likes = []string{}
	post.Dislikes = []string{}

	return post, points, nil
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	likes, dislikes, err := p.reactionRepo.Get(ctx, models.KindPost, postID)
	if err != nil {
		return nil, err
	}

	post.Likes = likes
	post.Dislikes = dislikes

	return post, nil
}

func (p *postService) GetPosts(ctx context.Context, page, limit int) ([]models.Post, int, error) {
	offset := (page - 1) * limit

	posts, err := p.postRepo.GetPage(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := p.postRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	for i := range posts {
		likes, dislikes, err := p.reactionRepo.Get(ctx, models.KindPost, posts[i].PostID)
		if err != nil {
			return nil, 0, err
		}
		posts[i].Likes = likes
		posts[i].Dislikes = dislikes
	}

	return posts, total, nil
}

func (p *postService) UpdatePost(ctx context.Context, req UpdatePostRequest, image *ImageUpload) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != req.AuthorID {
		return nil, fmt.Errorf("нет прав на изменение поста")
	}

	post.Title = req.Title
	post.Content = req.Content

	if image != nil {
		oldImageURL := post.ImageURL

		_, imageURL, err := p.storage.UploadImage(ctx, post.AuthorID, image.FileName, image.File, image.Size)
		if err != nil {
			return nil, fmt.Errorf("ошибка загрузки изображения в MinIO: %w", err)
		}

		post.ImageURL = &imageURL

		if oldImageURL != nil {
			p.deleteImageByURL(ctx, *oldImageURL)
		}
	}

	err = p.postRepo.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	return p.GetPost(ctx, req.PostID)
}

// DeletePost удаляет пост автора и возвращает очки за создание.
// Очки, накопленные от чужих реакций, не возвращаются - как в исходной системе.
func (p *postService) DeletePost(ctx context.Context, postID, userID string) (int, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return 0, err
	}

	if post.AuthorID != userID {
		return 0, fmt.Errorf("нет прав на удаление поста")
	}

	err = p.postRepo.Delete(ctx, postID)
	if err != nil {
		return 0, err
	}

	if post.ImageURL != nil {
		p.deleteImageByURL(ctx, *post.ImageURL)
	}

	points, err := p.userRepo.AddPoints(ctx, userID, -PointsPostCreate)
	if err != nil {
		return 0, err
	}

	return points, nil
}

func (p *postService) DeletePostImage(ctx context.Context, postID, userID string) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != userID {
		return nil, fmt.Errorf("нет прав на изменение поста")
	}

	if post.ImageURL == nil {
		return p.GetPost(ctx, postID)
	}

	p.deleteImageByURL(ctx, *post.ImageURL)

	err = p.postRepo.UpdateImageURL(ctx, postID, nil)
	if err != nil {
		return nil, err
	}

	return p.GetPost(ctx, postID)
}

// deleteImageByURL вырезает имя объекта из URL и удаляет его из MinIO.
// Ошибка удаления не фатальна для запроса
func (p *postService) deleteImageByURL(ctx context.Context, imageURL string) {
	objectName := p.storage.ObjectNameFromURL(imageURL)
	if objectName == "" {
		fmt.Printf("Предупреждение: неверный формат URL изображения: %s\n", imageURL)
		return
	}

	if err := p.storage.DeleteImage(ctx, objectName); err != nil {
		fmt.Printf("Предупреждение: не удалось удалить из MinIO: %v\n", err)
	}
}
