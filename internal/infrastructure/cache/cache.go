package cache

import (
	"strings"
	"sync"
	"time"
)

// Item representa un elemento cacheado con su expiración
type Item struct {
	Value      interface{}
	Expiration int64
}

// Cache es un caché en memoria con expiración por elemento. Se usa para las
// listas de factores por tipo de encuesta, que cambian solo por mutaciones
// administrativas poco frecuentes.
type Cache struct {
	items map[string]Item
	mu    sync.RWMutex
	stop  chan struct{}
}

// New crea una nueva instancia de caché con limpieza periódica de expirados
func New() *Cache {
	c := &Cache{
		items: make(map[string]Item),
		stop:  make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.DeleteExpired()
			case <-c.stop:
				return
			}
		}
	}()

	return c
}

// Set agrega un elemento al caché con la duración indicada
func (c *Cache) Set(key string, value interface{}, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = Item{
		Value:      value,
		Expiration: time.Now().Add(duration).UnixNano(),
	}
}

// Get recupera un elemento del caché.
// Retorna el elemento y un booleano indicando si fue encontrado y sigue vigente.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.items[key]
	if !found {
		return nil, false
	}

	if time.Now().UnixNano() > item.Expiration {
		return nil, false
	}

	return item.Value, true
}

// Delete elimina un elemento del caché
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// DeletePrefix elimina todos los elementos cuya clave comienza con el prefijo
func (c *Cache) DeletePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k := range c.items {
		if strings.HasPrefix(k, prefix) {
			delete(c.items, k)
		}
	}
}

// DeleteExpired elimina todos los elementos expirados
func (c *Cache) DeleteExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	for k, v := range c.items {
		if now > v.Expiration {
			delete(c.items, k)
		}
	}
}

// Clear vacía el caché por completo
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]Item)
}

// Close detiene la limpieza periódica
func (c *Cache) Close() {
	close(c.stop)
}
