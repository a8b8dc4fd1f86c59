package handlers

import (
	"sync"
	"testing"
)

func TestHubFanOutMembership(t *testing.T) {
	h := NewHub()
	a := newClient(nil)
	b := newClient(nil)
	h.register(a)
	h.register(b)
	h.Join(a.ID, "ROOM1")
	h.Join(b.ID, "ROOM1")

	h.ToRoomExcept("ROOM1", a.ID, "player:joined", "x")
	if len(a.send) != 0 {
		t.Fatalf("excluded connection received %d events", len(a.send))
	}
	if len(b.send) != 1 {
		t.Fatalf("expected 1 event for the other member, got %d", len(b.send))
	}

	h.Leave(b.ID, "ROOM1")
	h.ToRoom("ROOM1", "room:updated", "x")
	if len(b.send) != 1 {
		t.Fatalf("a departed connection must not receive room events")
	}
}

func TestHubUnregisterDuringFanOut(t *testing.T) {
	// Sends racing a disconnect must never hit a closed channel. Clients
	// churn through register/unregister while another goroutine keeps
	// emitting to them; a panic here fails the test.
	h := NewHub()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		c := newClient(nil)
		h.register(c)
		h.Join(c.ID, "ROOM1")

		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				h.ToConn(c.ID, "room:updated", j)
				h.ToRoom("ROOM1", "transaction:completed", j)
			}
		}()
		go func() {
			defer wg.Done()
			h.unregister(c)
		}()
	}
	wg.Wait()
}

func TestHubToConnAfterUnregisterIsSilent(t *testing.T) {
	h := NewHub()
	c := newClient(nil)
	h.register(c)
	h.unregister(c)

	h.ToConn(c.ID, "room:error", "gone")
	select {
	case _, ok := <-c.send:
		if ok {
			t.Fatal("event enqueued for an unregistered connection")
		}
	default:
		t.Fatal("send channel should be closed after unregister")
	}
}
