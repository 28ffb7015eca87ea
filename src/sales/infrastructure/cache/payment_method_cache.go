package cache

import (
	"log"
	"sync"

	"github.com/Diamondarms/loja-sapatos-gateway/src/sales/domain/entity"
	"github.com/asaskevich/EventBus"
)

// MethodLister es la porción del cliente de backend que necesita el cache.
type MethodLister interface {
	GetMethods() ([]entity.PaymentMethod, error)
}

// PaymentMethodCache cache en memoria de métodos de pago.
// Se carga desde GET /Methods del backend y se refresca cuando el módulo
// de settings publica cambios en el bus de eventos.
type PaymentMethodCache struct {
	methods map[string]entity.PaymentMethod
	mu      sync.RWMutex
}

// NewPaymentMethodCache crea un nuevo cache de métodos de pago.
func NewPaymentMethodCache() *PaymentMethodCache {
	return &PaymentMethodCache{
		methods: make(map[string]entity.PaymentMethod),
	}
}

// Refresh recarga el cache completo desde el backend.
func (c *PaymentMethodCache) Refresh(lister MethodLister) error {
	methods, err := lister.GetMethods()
	if err != nil {
		log.Printf("⚠️  Warning: Could not load payment methods: %v", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.methods = make(map[string]entity.PaymentMethod, len(methods))
	for _, m := range methods {
		c.methods[m.MethodID] = m
	}

	log.Printf("✅ Loaded %d payment methods into cache", len(methods))
	return nil
}

// SubscribeTo engancha el refresh al bus: cualquier alta/baja de métodos
// invalida el cache en el próximo tick del bus.
func (c *PaymentMethodCache) SubscribeTo(bus EventBus.Bus, lister MethodLister) error {
	return bus.Subscribe("methods:changed", func() {
		if err := c.Refresh(lister); err != nil {
			log.Printf("⚠️  Warning: payment method cache refresh failed: %v", err)
		}
	})
}

// Get obtiene un método de pago por id.
func (c *PaymentMethodCache) Get(methodID string) (entity.PaymentMethod, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	m, ok := c.methods[methodID]
	return m, ok
}

// GetName obtiene solo el nombre de un método de pago por id.
func (c *PaymentMethodCache) GetName(methodID string) string {
	m, ok := c.Get(methodID)
	if !ok {
		return "Unknown"
	}
	return m.Name
}
