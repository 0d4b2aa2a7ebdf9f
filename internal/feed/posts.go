package feed

import (
	"context"
	"log/slog"

	"github.com/morozrk/go-blog-gateway/internal/metrics"
	"github.com/morozrk/go-blog-gateway/internal/models"
	"github.com/morozrk/go-blog-gateway/pkg/log"
)

// LoadNextBatch подгружает следующую страницу ленты.
//
// Поведение:
//   - если подгрузка уже в полёте — тихий no-op (защита от дублей);
//   - если коллекция исчерпана (currentSkip >= totalPosts после первого
//     успешного батча) — тоже no-op;
//   - успех: totalPosts обновляется из ответа, посты дописываются в конец
//     в порядке ответа, currentSkip растёт ровно на количество фактически
//     полученных постов (короткая последняя страница — не на postsPerPage);
//   - ошибка: posts/currentSkip/totalPosts не меняются, ошибка уходит
//     вызывающему без ретраев;
//   - флаг loading снимается ровно один раз при любом исходе.
//
// После фиксации батча авторы новых постов разрешаются конкурентно;
// их ошибки не фатальны и на состояние ленты не влияют.
func (s *Service) LoadNextBatch(ctx context.Context) error {
	const op = "feed/posts/LoadNextBatch"

	lg := log.From(ctx)

	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		lg.Debug("batch_skipped_in_flight", slog.String("op", op))
		return nil
	}

	if s.firstLoad && s.currentSkip >= s.totalPosts {
		s.mu.Unlock()
		lg.Debug("batch_skipped_exhausted", slog.String("op", op))
		return nil
	}

	s.loading = true
	limit, skip := s.postsPerPage, s.currentSkip
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	page, err := s.client.ListPosts(ctx, limit, skip)
	if err != nil {
		lg.Warn("batch_load_failed",
			slog.String("op", op),
			slog.Int("skip", skip),
			slog.String("err", err.Error()),
		)
		return mapUpstreamErr(op, err)
	}

	s.mu.Lock()
	s.totalPosts = page.Total
	s.posts = append(s.posts, page.Posts...)
	s.currentSkip += len(page.Posts)
	s.firstLoad = true
	skipAfter := s.currentSkip
	s.mu.Unlock()

	metrics.FeedBatchSize.Observe(float64(len(page.Posts)))

	s.resolveAuthors(ctx, page.Posts)

	lg.Info("batch_loaded",
		slog.String("op", op),
		slog.Int("count", len(page.Posts)),
		slog.Int("skip", skipAfter),
		slog.Int("total", page.Total),
	)

	return nil
}

// Item — пост ленты вместе с автором из кэша
// (Author == nil, если профиль ещё не разрешён).
type Item struct {
	Post   models.Post  `json:"post"`
	Author *models.User `json:"author,omitempty"`
}

// Snapshot — наблюдаемое состояние ленты для слоя представления.
type Snapshot struct {
	Items       []Item `json:"items"`
	CurrentSkip int    `json:"current_skip"`
	TotalPosts  int    `json:"total_posts"`
	Loading     bool   `json:"loading"`
	HasMore     bool   `json:"has_more"`
	Empty       bool   `json:"empty"`
}

// Snapshot возвращает копию состояния ленты.
//
// HasMore до первого успешного батча — true: утверждать «больше нет
// данных» можно только зная totalPosts. Empty выставляется, когда первый
// же батч показал пустую коллекцию, — рендерер отличает «пусто» от
// «страницы кончились».
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item, 0, len(s.posts))
	for _, p := range s.posts {
		item := Item{Post: p}
		if u, ok := s.users[p.UserID]; ok {
			u := u
			item.Author = &u
		}

		items = append(items, item)
	}

	return Snapshot{
		Items:       items,
		CurrentSkip: s.currentSkip,
		TotalPosts:  s.totalPosts,
		Loading:     s.loading,
		HasMore:     !s.firstLoad || s.currentSkip < s.totalPosts,
		Empty:       s.firstLoad && s.totalPosts == 0,
	}
}
