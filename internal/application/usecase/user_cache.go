package usecase

import (
	"sync"
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
)

// userCache cache-aside en memoria para la proyección del perfil de usuario.
// Clave: username. La invalidación es explícita al mutar el perfil; el TTL
// acota la vida de entradas que nadie invalida (p. ej. cambios de rol hechos
// por administración). No es necesario para la corrección, solo evita
// consultas repetidas de "mi información".
type userCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]userCacheEntry
}

type userCacheEntry struct {
	value     *dto.UserResponse
	expiresAt time.Time
}

func newUserCache(ttl time.Duration) *userCache {
	return &userCache{ttl: ttl, entries: map[string]userCacheEntry{}}
}

func (c *userCache) get(username string) *dto.UserResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[username]
	if !ok {
		return nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.entries, username)
		return nil
	}
	return entry.value
}

func (c *userCache) set(username string, value *dto.UserResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[username] = userCacheEntry{value: value, expiresAt: time.Now().Add(c.ttl)}
}

func (c *userCache) invalidate(username string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, username)
}
