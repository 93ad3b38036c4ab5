package cache

import (
	"sync"

	"github.com/thanhnt94/newmindstack-sub001/internal/models"
	"github.com/thanhnt94/newmindstack-sub001/internal/session"
)

// Cache holds per-user runtime state: the active session controller and the
// visual preference flags.
type Cache struct {
	mu       sync.Mutex
	sessions map[int64]*session.Controller
	prefs    map[int64]models.VisualSettings
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[int64]*session.Controller),
		prefs:    make(map[int64]models.VisualSettings),
	}
}

func (c *Cache) SetSession(userID int64, ctrl *session.Controller) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[userID] = ctrl
}

func (c *Cache) GetSession(userID int64) (*session.Controller, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ctrl, exists := c.sessions[userID]
	return ctrl, exists
}

func (c *Cache) DeleteSession(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, userID)
}

func (c *Cache) SetPrefs(userID int64, prefs models.VisualSettings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prefs[userID] = prefs
}

func (c *Cache) GetPrefs(userID int64) (models.VisualSettings, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefs, exists := c.prefs[userID]
	return prefs, exists
}
