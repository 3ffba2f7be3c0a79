package events

import (
	"testing"
	"time"
)

func TestBusDeliversToAllSubscribers(t *testing.T) {
	bus := NewBus()

	first, cancelFirst := bus.Subscribe(4)
	defer cancelFirst()
	second, cancelSecond := bus.Subscribe(4)
	defer cancelSecond()

	bus.Publish(Change{Entity: EntityExpense, ID: "g1", Action: ActionCreated})

	for name, ch := range map[string]<-chan Change{"first": first, "second": second} {
		select {
		case c := <-ch:
			if c.Entity != EntityExpense || c.ID != "g1" || c.Action != ActionCreated {
				t.Fatalf("%s subscriber got unexpected change: %+v", name, c)
			}
			if c.At.IsZero() {
				t.Fatalf("Publish must stamp the change time")
			}
		case <-time.After(time.Second):
			t.Fatalf("%s subscriber did not receive the change", name)
		}
	}
}

func TestBusSlowSubscriberDropsWithoutBlocking(t *testing.T) {
	bus := NewBus()

	slow, cancel := bus.Subscribe(1)
	defer cancel()

	done := make(chan struct{})
	go func() {
		// El segundo Publish encuentra el buffer lleno y descarta.
		bus.Publish(Change{Entity: EntityPayment, ID: "pg1", Action: ActionCreated})
		bus.Publish(Change{Entity: EntityPayment, ID: "pg2", Action: ActionCreated})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Publish blocked on a slow subscriber")
	}

	c := <-slow
	if c.ID != "pg1" {
		t.Fatalf("expected the first change to survive, got %+v", c)
	}
	select {
	case extra := <-slow:
		t.Fatalf("second change should have been dropped, got %+v", extra)
	default:
	}
}

func TestBusCancelClosesChannel(t *testing.T) {
	bus := NewBus()

	ch, cancel := bus.Subscribe(1)
	cancel()

	if _, ok := <-ch; ok {
		t.Fatalf("cancel must close the subscriber channel")
	}

	// Cancelar dos veces no debe entrar en pánico.
	cancel()

	// Publicar sin suscriptores tampoco.
	bus.Publish(Change{Entity: EntityWorker, ID: "w1", Action: ActionDeleted})
}
