// feed реализует ядро клиентской сессии блога: пагинацию ленты постов
// и кэш пользователей. Состояние сессии принадлежит сервису и живёт
// ровно столько, сколько живёт процесс, — внешнего хранилища нет.
package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/morozrk/go-blog-gateway/internal/config"
	"github.com/morozrk/go-blog-gateway/internal/models"
	"github.com/morozrk/go-blog-gateway/internal/upstream"
)

var (
	// ErrInvalidArgument — некорректные входные данные.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound — сущность отсутствует у апстрима.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable — апстрим недоступен или ответил ошибкой.
	ErrUnavailable = errors.New("upstream unavailable")
	// ErrInternal — внутренняя ошибка сервиса.
	ErrInternal = errors.New("internal")
)

// UpstreamClient — контракт удалённого блог-API, нужный ядру.
// Реализуется internal/upstream.Client.
type UpstreamClient interface {
	ListPosts(ctx context.Context, limit, skip int) (*models.PostPage, error)
	PostByID(ctx context.Context, id int64) (*models.Post, error)
	PostsByUser(ctx context.Context, userID int64) (*models.UserPostPage, error)
	UserByID(ctx context.Context, id int64) (*models.User, error)
	CommentsByPost(ctx context.Context, postID int64) (*models.CommentPage, error)
}

// Service — сессионное состояние ленты и операции над ним.
//
// Все поля под одним мьютексом: вызывающая сторона — HTTP-хендлеры.
// Флаг loading при этом остаётся содержательным отдельно от мьютекса:
// он гарантирует не больше одной подгрузки ленты в полёте, а не
// взаимное исключение доступа к полям.
type Service struct {
	client       UpstreamClient
	postsPerPage int
	maxResolves  int

	mu          sync.Mutex
	posts       []models.Post
	users       map[int64]models.User
	currentSkip int
	totalPosts  int
	loading     bool
	firstLoad   bool // завершился ли хотя бы один успешный батч
	currentPost *models.Post
	currentUser *models.User
}

// New создаёт сервис ленты с пустым состоянием сессии.
func New(client UpstreamClient, cfg config.FeedConfig) *Service {
	perPage := cfg.PostsPerPage
	if perPage <= 0 {
		perPage = 10
	}

	maxResolves := cfg.MaxConcurrentResolves
	if maxResolves <= 0 {
		maxResolves = 6
	}

	return &Service{
		client:       client,
		postsPerPage: perPage,
		maxResolves:  maxResolves,
		users:        make(map[int64]models.User),
	}
}

// mapUpstreamErr переводит ошибку апстрима в сентинел сервисного слоя.
// 404 — ErrNotFound, прочие статусы и сетевые ошибки — ErrUnavailable,
// ошибки контекста прокидываются как есть (HTTP-слой маппит их сам).
func mapUpstreamErr(op string, err error) error {
	var statusErr *upstream.StatusError

	switch {
	case errors.As(err, &statusErr):
		if statusErr.Code == http.StatusNotFound {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, ErrUnavailable)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%s: %w", op, ErrUnavailable)
	}
}
