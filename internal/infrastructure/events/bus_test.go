package events_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/infrastructure/events"
)

func TestBus_EntregaATodosLosSuscriptores(t *testing.T) {
	bus := events.NewBus()
	defer bus.Close()

	sub1 := bus.Subscribe("topic-a")
	sub2 := bus.Subscribe("topic-a")

	require.NoError(t, bus.Publish("topic-a", "hola"))

	for _, sub := range []<-chan interface{}{sub1, sub2} {
		select {
		case evt := <-sub:
			assert.Equal(t, "hola", evt)
		case <-time.After(time.Second):
			t.Fatal("el suscriptor no recibió el evento")
		}
	}
}

func TestBus_TopicsIndependientes(t *testing.T) {
	bus := events.NewBus()
	defer bus.Close()

	subA := bus.Subscribe("topic-a")
	subB := bus.Subscribe("topic-b")

	require.NoError(t, bus.Publish("topic-a", 1))

	select {
	case evt := <-subA:
		assert.Equal(t, 1, evt)
	case <-time.After(time.Second):
		t.Fatal("topic-a no recibió el evento")
	}
	select {
	case evt, ok := <-subB:
		if ok {
			t.Fatalf("topic-b no debía recibir nada, llegó %v", evt)
		}
	default:
	}
}

func TestBus_SinSuscriptoresNoFalla(t *testing.T) {
	bus := events.NewBus()
	defer bus.Close()

	assert.NoError(t, bus.Publish("vacio", "nadie escucha"))
}

func TestBus_CerradoRechazaPublicacionYCierraCanales(t *testing.T) {
	bus := events.NewBus()
	sub := bus.Subscribe("topic-a")

	bus.Close()

	assert.Error(t, bus.Publish("topic-a", "tarde"))

	_, ok := <-sub
	assert.False(t, ok, "el canal del suscriptor debe quedar cerrado")
}
