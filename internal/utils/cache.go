package utils

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// PageCache 页面渲染结果缓存
// 同一个 key 的并发未命中只渲染一次
type PageCache struct {
	store *cache.Cache
	ttl   time.Duration
	sf    singleflight.Group
}

// NewPageCache ttl <= 0 表示不缓存，每次都重新渲染
func NewPageCache(ttl time.Duration) *PageCache {
	cleanup := 2 * ttl
	if cleanup <= 0 {
		cleanup = 10 * time.Minute
	}
	return &PageCache{
		store: cache.New(ttl, cleanup),
		ttl:   ttl,
	}
}

// GetOrRender 命中则直接返回，否则调用 render 并写入缓存
func (c *PageCache) GetOrRender(key string, render func() ([]byte, error)) ([]byte, error) {
	if c.ttl > 0 {
		if v, ok := c.store.Get(key); ok {
			return v.([]byte), nil
		}
	}
	v, err, _ := c.sf.Do(key, func() (interface{}, error) {
		b, err := render()
		if err != nil {
			return nil, err
		}
		if c.ttl > 0 {
			c.store.Set(key, b, c.ttl)
		}
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// CacheItem 包装实际的数据，增加过期时间
type CacheItem[T any] struct {
	Value     T
	ExpiredAt time.Time
}

// SearchCache 带过期时间的 LRU 缓存（线程安全）
type SearchCache[T any] struct {
	storage *lru.Cache[string, CacheItem[T]]
	ttl     time.Duration
}

// NewSearchCache size 是最大缓存条数，ttl 是数据有效期
func NewSearchCache[T any](size int, ttl time.Duration) *SearchCache[T] {
	if size <= 0 {
		size = 128
	}
	c, _ := lru.New[string, CacheItem[T]](size)
	return &SearchCache[T]{storage: c, ttl: ttl}
}

// Set 写入（已存在则覆盖并刷新过期时间）
func (c *SearchCache[T]) Set(key string, value T) {
	c.storage.Add(key, CacheItem[T]{Value: value, ExpiredAt: time.Now().Add(c.ttl)})
}

// Get 读取，过期条目视为未命中并顺手删除
func (c *SearchCache[T]) Get(key string) (T, bool) {
	var zero T
	item, ok := c.storage.Get(key)
	if !ok {
		return zero, false
	}
	if time.Now().After(item.ExpiredAt) {
		c.storage.Remove(key)
		return zero, false
	}
	return item.Value, true
}
