package server

import (
    "strings"
    "sync"
    "time"
)

type cacheItem struct {
    reply      string
    expiration time.Time
}

// Cache is a minimal in-memory TTL cache for formatted replies, safe for
// concurrent access.
type Cache struct {
    mu    sync.RWMutex
    items map[string]cacheItem
}

// NewCache constructs an empty Cache instance.
func NewCache() *Cache { return &Cache{items: make(map[string]cacheItem)} }

// cacheKey joins the call-identifying argument values. Unit separator keeps
// keys unambiguous when values contain separators of their own.
func cacheKey(tool string, args *ToolArgs) string {
    return strings.Join([]string{tool, args.URL, args.InputGoal, args.WorkflowRunID}, "\x1f")
}

// Set stores a reply with a time-to-live for the given key.
func (c *Cache) Set(key, reply string, ttl time.Duration) {
    c.mu.Lock()
    defer c.mu.Unlock()
    c.items[key] = cacheItem{reply: reply, expiration: time.Now().Add(ttl)}
}

// Get retrieves a non-expired reply for the key, returning false if missing
// or expired.
func (c *Cache) Get(key string) (string, bool) {
    c.mu.RLock()
    it, ok := c.items[key]
    c.mu.RUnlock()
    if !ok {
        return "", false
    }
    if time.Now().After(it.expiration) {
        c.mu.Lock()
        delete(c.items, key)
        c.mu.Unlock()
        return "", false
    }
    return it.reply, true
}
