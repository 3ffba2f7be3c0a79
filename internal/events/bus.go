// Package events implementa el bus de cambios que reemplaza la señal
// ambiental de "última actualización": cada mutación publica un Change
// tipado y las vistas suscritas re-consultan al recibirlo.
package events

import (
	"sync"
	"time"
)

// Entidades que publican cambios.
const (
	EntityProject  = "proyecto"
	EntityExpense  = "gasto"
	EntityPayment  = "pago"
	EntityWorker   = "trabajador"
	EntityEvidence = "evidencia"
)

// Acciones de cambio.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Change un cambio sobre una entidad.
type Change struct {
	Entity string    `json:"entity"`
	ID     string    `json:"id"`
	Action string    `json:"action"`
	At     time.Time `json:"at"`
}

// Bus fan-out de cambios a suscriptores. La entrega no bloquea: si el
// buffer de un suscriptor está lleno, ese evento se descarta para él.
type Bus struct {
	mu   sync.RWMutex
	subs map[int]chan Change
	next int
}

// NewBus crea el bus de cambios.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Change)}
}

// Subscribe registra un suscriptor con el buffer indicado y devuelve el
// canal de eventos junto con la función para cancelar la suscripción.
func (b *Bus) Subscribe(buffer int) (<-chan Change, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Change, buffer)

	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish envía el cambio a todos los suscriptores sin bloquear.
func (b *Bus) Publish(c Change) {
	if c.At.IsZero() {
		c.At = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs {
		select {
		case sub <- c:
		default:
			// Suscriptor lento: descarta este evento para él.
		}
	}
}
