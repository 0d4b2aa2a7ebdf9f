package feed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/morozrk/go-blog-gateway/internal/models"
	"github.com/morozrk/go-blog-gateway/pkg/log"
)

// PostView — страница поста: сам пост, профиль автора и комментарии.
type PostView struct {
	Post          models.Post      `json:"post"`
	Author        models.User      `json:"author"`
	Comments      []models.Comment `json:"comments"`
	CommentsTotal int              `json:"comments_total"`
}

// UserView — страница профиля: пользователь и его посты.
type UserView struct {
	User       models.User   `json:"user"`
	Posts      []models.Post `json:"posts"`
	PostsTotal int           `json:"posts_total"`
}

// OpenPost собирает страницу поста и запоминает её сущности как текущие
// (последний открытый пост и его автор перезаписываются на каждой
// детальной навигации и не чистятся).
func (s *Service) OpenPost(ctx context.Context, id int64) (*PostView, error) {
	const op = "feed/views/OpenPost"

	if id <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	lg := log.From(ctx).With(slog.String("op", op), slog.Int64("post_id", id))

	post, err := s.client.PostByID(ctx, id)
	if err != nil {
		lg.Warn("post_load_failed", slog.String("err", err.Error()))
		return nil, mapUpstreamErr(op, err)
	}

	author, err := s.ResolveUser(ctx, post.UserID)
	if err != nil {
		return nil, err
	}

	comments, err := s.client.CommentsByPost(ctx, id)
	if err != nil {
		lg.Warn("comments_load_failed", slog.String("err", err.Error()))
		return nil, mapUpstreamErr(op, err)
	}

	s.mu.Lock()
	s.currentPost = post
	s.currentUser = author
	s.mu.Unlock()

	return &PostView{
		Post:          *post,
		Author:        *author,
		Comments:      comments.Comments,
		CommentsTotal: comments.Total,
	}, nil
}

// OpenUser собирает страницу профиля и запоминает пользователя как
// текущего.
func (s *Service) OpenUser(ctx context.Context, id int64) (*UserView, error) {
	const op = "feed/views/OpenUser"

	if id <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.ResolveUser(ctx, id)
	if err != nil {
		return nil, err
	}

	page, err := s.client.PostsByUser(ctx, id)
	if err != nil {
		log.From(ctx).Warn("user_posts_load_failed",
			slog.String("op", op),
			slog.Int64("user_id", id),
			slog.String("err", err.Error()),
		)
		return nil, mapUpstreamErr(op, err)
	}

	s.mu.Lock()
	s.currentUser = user
	s.mu.Unlock()

	return &UserView{
		User:       *user,
		Posts:      page.Posts,
		PostsTotal: page.Total,
	}, nil
}

// Current возвращает последние открытые сущности детальных страниц
// (nil, пока соответствующая страница ни разу не открывалась).
func (s *Service) Current() (*models.Post, *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.currentPost, s.currentUser
}
