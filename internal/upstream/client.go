// upstream — HTTP-клиент удалённого блог-API (источник постов,
// пользователей и комментариев).
//
// Особенности:
//   - клиент ничего не кэширует и не ретраит: политика повторов и кэш —
//     уровнем выше (internal/feed);
//   - статус вне 2xx — *StatusError с кодом ответа, сетевые ошибки
//     оборачиваются и прокидываются наверх;
//   - тела успешных ответов — JSON, разбираются в типы internal/models
//     с минимальной валидацией обязательных полей.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/morozrk/go-blog-gateway/internal/metrics"
	"github.com/morozrk/go-blog-gateway/internal/models"
	"github.com/morozrk/go-blog-gateway/pkg/log"
)

// StatusError — ответ апстрима со статусом вне 2xx.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d", e.Code)
}

// Client — клиент удалённого API поверх net/http.
// HTTP-клиент настраивается извне (таймауты, прокси и т.д.).
type Client struct {
	http    *http.Client
	baseURL string
}

// New создаёт клиент. При nil http-клиенте используется клиент
// с таймаутом по умолчанию.
func New(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// ListPosts возвращает страницу постов: GET /posts?limit=N&skip=M.
func (c *Client) ListPosts(ctx context.Context, limit, skip int) (*models.PostPage, error) {
	const op = "upstream/ListPosts"

	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("skip", strconv.Itoa(skip))

	var page models.PostPage
	if err := c.getJSON(ctx, "list_posts", "/posts", q, &page); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := validatePostPage(page.Posts, page.Total); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &page, nil
}

// PostByID возвращает пост: GET /posts/{id}.
func (c *Client) PostByID(ctx context.Context, id int64) (*models.Post, error) {
	const op = "upstream/PostByID"

	var post models.Post
	if err := c.getJSON(ctx, "post_by_id", "/posts/"+strconv.FormatInt(id, 10), nil, &post); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if post.ID <= 0 {
		return nil, fmt.Errorf("%s: invalid payload: post without id", op)
	}

	return &post, nil
}

// PostsByUser возвращает посты автора: GET /posts/user/{userId}.
func (c *Client) PostsByUser(ctx context.Context, userID int64) (*models.UserPostPage, error) {
	const op = "upstream/PostsByUser"

	var page models.UserPostPage
	if err := c.getJSON(ctx, "posts_by_user", "/posts/user/"+strconv.FormatInt(userID, 10), nil, &page); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := validatePostPage(page.Posts, page.Total); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &page, nil
}

// UserByID возвращает профиль пользователя: GET /users/{id}.
func (c *Client) UserByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "upstream/UserByID"

	var user models.User
	if err := c.getJSON(ctx, "user_by_id", "/users/"+strconv.FormatInt(id, 10), nil, &user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if user.ID <= 0 {
		return nil, fmt.Errorf("%s: invalid payload: user without id", op)
	}

	return &user, nil
}

// CommentsByPost возвращает комментарии поста: GET /comments/post/{postId}.
func (c *Client) CommentsByPost(ctx context.Context, postID int64) (*models.CommentPage, error) {
	const op = "upstream/CommentsByPost"

	var page models.CommentPage
	if err := c.getJSON(ctx, "comments_by_post", "/comments/post/"+strconv.FormatInt(postID, 10), nil, &page); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if page.Total < 0 {
		return nil, fmt.Errorf("%s: invalid payload: negative total", op)
	}

	return &page, nil
}

// getJSON выполняет GET и разбирает JSON-тело в out.
// endpoint — метка для метрик, не участвует в построении URL.
func (c *Client) getJSON(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	const op = "upstream/getJSON"

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%s: new_request: %w", op, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "network_error").Inc()
		log.From(ctx).Warn("upstream_http_error",
			slog.String("op", op),
			slog.String("url", u),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("%s: do: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		metrics.UpstreamRequests.WithLabelValues(endpoint, "status_error").Inc()
		return fmt.Errorf("%s: %w", op, &StatusError{Code: resp.StatusCode})
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "decode_error").Inc()
		return fmt.Errorf("%s: decode: %w", op, err)
	}

	metrics.UpstreamRequests.WithLabelValues(endpoint, "ok").Inc()
	return nil
}

func validatePostPage(posts []models.Post, total int) error {
	if total < 0 {
		return fmt.Errorf("invalid payload: negative total")
	}

	for i := range posts {
		if posts[i].ID <= 0 {
			return fmt.Errorf("invalid payload: post without id")
		}
	}

	return nil
}
