package cache

import (
	"sync"

	"github.com/realarnold928/funwords-game/internal/models"
)

type Cache struct {
	mu    sync.Mutex
	games map[int64]*models.Game
}

func NewCache() *Cache {
	return &Cache{
		games: make(map[int64]*models.Game),
	}
}

func (c *Cache) SetGame(userID int64, game *models.Game) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.games[userID] = game
}

func (c *Cache) GetGame(userID int64) (*models.Game, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	game, exists := c.games[userID]
	return game, exists
}

func (c *Cache) DeleteGame(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.games, userID)
}
