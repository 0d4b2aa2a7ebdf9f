package upstream

// Тесты HTTP-клиента апстрима (internal/upstream/client.go) поверх httptest.
//
// Проверяем:
//   - пути и query-параметры запросов (limit/skip);
//   - разбор успешных JSON-ответов;
//   - маппинг не-2xx в *StatusError с кодом;
//   - ошибки разбора тела и валидации обязательных полей.

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.Client(), srv.URL), srv
}

func TestListPosts_QueryAndDecode(t *testing.T) {
	t.Parallel()

	var gotPath, gotLimit, gotSkip string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLimit = r.URL.Query().Get("limit")
		gotSkip = r.URL.Query().Get("skip")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"posts": [
				{"id": 11, "title": "t", "body": "b", "userId": 3,
				 "tags": ["go", "http"],
				 "reactions": {"likes": 5, "dislikes": 1}, "views": 42}
			],
			"total": 25, "skip": 10, "limit": 10
		}`))
	})

	page, err := client.ListPosts(context.Background(), 10, 10)
	require.NoError(t, err)

	require.Equal(t, "/posts", gotPath)
	require.Equal(t, "10", gotLimit)
	require.Equal(t, "10", gotSkip)

	require.Equal(t, 25, page.Total)
	require.Len(t, page.Posts, 1)
	require.Equal(t, int64(11), page.Posts[0].ID)
	require.Equal(t, int64(3), page.Posts[0].UserID)
	require.Equal(t, []string{"go", "http"}, page.Posts[0].Tags)
	require.Equal(t, 5, page.Posts[0].Reactions.Likes)
}

func TestListPosts_StatusError(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.ListPosts(context.Background(), 10, 0)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusInternalServerError, statusErr.Code)
}

func TestListPosts_DecodeError(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"posts": [`))
	})

	_, err := client.ListPosts(context.Background(), 10, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode")
}

func TestListPosts_InvalidPayload(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"posts": [{"title": "no id"}], "total": 1}`))
	})

	_, err := client.ListPosts(context.Background(), 10, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid payload")
}

func TestPostByID_Path(t *testing.T) {
	t.Parallel()

	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"id": 7, "title": "x", "body": "y", "userId": 2}`))
	})

	post, err := client.PostByID(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "/posts/7", gotPath)
	require.Equal(t, int64(7), post.ID)
}

func TestUserByID_PathAndShape(t *testing.T) {
	t.Parallel()

	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{
			"id": 42, "firstName": "Ada", "lastName": "L",
			"username": "ada", "email": "ada@example.com", "phone": "+1 555",
			"age": 36, "height": 170.5, "weight": 60.2,
			"eyeColor": "green",
			"hair": {"color": "black", "type": "curly"},
			"bloodGroup": "O-",
			"address": {"address": "1 Main St", "city": "London",
				"state": "LN", "postalCode": "00001"},
			"image": "https://img.example/42.png"
		}`))
	})

	user, err := client.UserByID(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, "/users/42", gotPath)
	require.Equal(t, "ada", user.Username)
	require.Equal(t, "curly", user.Hair.Type)
	require.Equal(t, "London", user.Address.City)
	require.Equal(t, "O-", user.BloodGroup)
}

func TestUserByID_NotFound(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	})

	_, err := client.UserByID(context.Background(), 404)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusNotFound, statusErr.Code)
}

func TestCommentsByPost_Path(t *testing.T) {
	t.Parallel()

	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{
			"comments": [
				{"id": 1, "body": "hi", "postId": 9, "likes": 3,
				 "user": {"id": 5, "username": "bob"}}
			],
			"total": 1
		}`))
	})

	page, err := client.CommentsByPost(context.Background(), 9)
	require.NoError(t, err)
	require.Equal(t, "/comments/post/9", gotPath)
	require.Len(t, page.Comments, 1)
	require.Equal(t, "bob", page.Comments[0].User.Username)
}

func TestPostsByUser_Path(t *testing.T) {
	t.Parallel()

	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"posts": [{"id": 1, "userId": 6}], "total": 1}`))
	})

	page, err := client.PostsByUser(context.Background(), 6)
	require.NoError(t, err)
	require.Equal(t, "/posts/user/6", gotPath)
	require.Equal(t, 1, page.Total)
}

func TestClient_NetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close() // адрес больше не слушается

	client := New(nil, url)

	_, err := client.ListPosts(context.Background(), 10, 0)
	require.Error(t, err)

	var statusErr *StatusError
	require.False(t, errors.As(err, &statusErr), "сетевая ошибка не должна притворяться статусной")
}

func TestClient_TrailingSlashBaseURL(t *testing.T) {
	t.Parallel()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"id": 1, "userId": 2}`))
	}))
	t.Cleanup(srv.Close)

	client := New(srv.Client(), srv.URL+"/")

	_, err := client.PostByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "/posts/1", gotPath)
}
