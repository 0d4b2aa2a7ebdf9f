package feed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/morozrk/go-blog-gateway/internal/metrics"
	"github.com/morozrk/go-blog-gateway/internal/models"
	"github.com/morozrk/go-blog-gateway/pkg/log"
)

// ResolveUser возвращает пользователя по идентификатору.
//
// Контракт кэша:
//   - попадание — немедленный ответ без похода в сеть;
//   - промах — запрос к апстриму, успешный результат записывается в кэш;
//   - ошибка не кэшируется: следующий вызов для того же id снова пойдёт
//     в сеть.
//
// Совпадающие по времени промахи для одного id не склеиваются: оба
// запроса уйдут в сеть и запишут одинаковое значение (последняя запись
// побеждает, результат неотличим).
func (s *Service) ResolveUser(ctx context.Context, id int64) (*models.User, error) {
	const op = "feed/users/ResolveUser"

	if id <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	s.mu.Lock()
	if u, ok := s.users[id]; ok {
		s.mu.Unlock()
		metrics.UserCacheHits.Inc()
		return &u, nil
	}
	s.mu.Unlock()

	metrics.UserCacheMisses.Inc()

	user, err := s.client.UserByID(ctx, id)
	if err != nil {
		log.From(ctx).Warn("user_resolve_failed",
			slog.String("op", op),
			slog.Int64("user_id", id),
			slog.String("err", err.Error()),
		)
		return nil, mapUpstreamErr(op, err)
	}

	s.mu.Lock()
	s.users[id] = *user
	s.mu.Unlock()

	return user, nil
}

// resolveAuthors разрешает авторов батча: по одному запросу на уникальный
// некэшированный id, конкурентно с ограничением maxResolves. Ошибки
// отдельных авторов не фатальны — батч уже зафиксирован, карточка без
// профиля дорисуется при следующем обращении.
func (s *Service) resolveAuthors(ctx context.Context, posts []models.Post) {
	seen := make(map[int64]struct{}, len(posts))
	var ids []int64

	s.mu.Lock()
	for _, p := range posts {
		if _, dup := seen[p.UserID]; dup {
			continue
		}
		seen[p.UserID] = struct{}{}

		if _, cached := s.users[p.UserID]; !cached {
			ids = append(ids, p.UserID)
		}
	}
	s.mu.Unlock()

	if len(ids) == 0 {
		return
	}

	sem := make(chan struct{}, s.maxResolves)
	var wg sync.WaitGroup

loop:
	for _, id := range ids {
		select {
		case <-ctx.Done():
			break loop
		default:
		}

		wg.Add(1)
		sem <- struct{}{}

		go func(id int64) {
			defer wg.Done()
			defer func() { <-sem }()

			// Ошибка уже залогирована внутри ResolveUser.
			_, _ = s.ResolveUser(ctx, id)
		}(id)
	}

	wg.Wait()
}
