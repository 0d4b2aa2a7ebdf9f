// metrics — общие prometheus-коллекторы гейтвея: походы к апстриму,
// кэш пользователей и размеры батчей ленты. Метрики входящего HTTP
// живут в internal/http/middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequests — запросы к удалённому блог-API по эндпойнтам и исходам.
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of requests to the remote blog API",
		},
		[]string{"endpoint", "outcome"},
	)

	// UserCacheHits — попадания в кэш пользователей (ответ без похода в сеть).
	UserCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "user_cache_hits_total",
		Help: "Total number of user cache hits",
	})

	// UserCacheMisses — промахи кэша пользователей.
	UserCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "user_cache_misses_total",
		Help: "Total number of user cache misses",
	})

	// FeedBatchSize — фактический размер подгруженной страницы ленты.
	FeedBatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "feed_batch_size",
		Help:    "Number of posts returned by a single feed batch",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
	})
)
