package cache

import (
	"context"
	"time"

	"github.com/coocood/freecache"
)

const defaultLocalMemoSize = 10 * 1024 * 1024 // 10 MB

// LocalMemo is an in-process fallback memoizer, used when redis is not
// available or not configured.
type LocalMemo struct {
	cache *freecache.Cache
}

func NewLocalMemo() *LocalMemo {
	return &LocalMemo{
		cache: freecache.NewCache(defaultLocalMemoSize),
	}
}

func (m *LocalMemo) Get(_ context.Context, key string) ([]byte, bool) {
	val, err := m.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

func (m *LocalMemo) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	// freecache treats 0 as "no expiry"
	_ = m.cache.Set([]byte(key), value, int(ttl.Seconds()))
}

func (m *LocalMemo) Clear(_ context.Context) {
	m.cache.Clear()
}
