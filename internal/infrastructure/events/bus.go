package events

import (
	"fmt"
	"sync"
)

// Bus topic en memoria con entrega fan-out a los suscriptores. Sustituye al
// broker externo del despliegue original con el mismo contrato: publicar a
// un topic y consumir de forma independiente. Los canales llevan buffer;
// si un suscriptor se atrasa, Publish bloquea (backpressure).
type Bus struct {
	mu     sync.RWMutex
	subs   map[string][]chan interface{}
	closed bool
}

// subscriberBuffer tamaño del buffer de cada suscripción.
const subscriberBuffer = 64

// NewBus construye el bus.
func NewBus() *Bus {
	return &Bus{subs: map[string][]chan interface{}{}}
}

// Subscribe devuelve el canal por el que se entregarán los eventos del topic.
// El canal se cierra cuando se cierra el bus.
func (b *Bus) Subscribe(topic string) <-chan interface{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan interface{}, subscriberBuffer)
	if b.closed {
		close(ch)
		return ch
	}
	b.subs[topic] = append(b.subs[topic], ch)
	return ch
}

// Publish entrega el evento a todos los suscriptores del topic. Un topic sin
// suscriptores descarta el evento sin error.
func (b *Bus) Publish(topic string, event interface{}) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return fmt.Errorf("publicar en %q: bus cerrado", topic)
	}
	for _, ch := range b.subs[topic] {
		ch <- event
	}
	return nil
}

// Close cierra todas las suscripciones; los consumidores terminan al drenar
// sus canales. Publicar después de cerrar devuelve error.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, chans := range b.subs {
		for _, ch := range chans {
			close(ch)
		}
	}
	b.subs = map[string][]chan interface{}{}
}
