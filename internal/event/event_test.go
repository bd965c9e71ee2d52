package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchReachesSubscribersOfType(t *testing.T) {
	d := NewDispatcher()
	placed, replaced := &recorder{}, &recorder{}
	d.Subscribe(TilePlaced, placed)
	d.Subscribe(TileReplaced, replaced)

	d.Dispatch(Event{Type: TilePlaced, Data: 1})
	d.Dispatch(Event{Type: TilePlaced, Data: 2})
	d.Dispatch(Event{Type: PathsRecomputed})

	if len(placed.got) != 2 || placed.got[1].Data != 2 {
		t.Fatalf("placed listener got %+v", placed.got)
	}
	if len(replaced.got) != 0 {
		t.Fatalf("replaced listener got %+v", replaced.got)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(DeadEndExpanded, a)
	d.Subscribe(DeadEndExpanded, b)
	d.Unsubscribe(DeadEndExpanded, a)
	d.Dispatch(Event{Type: DeadEndExpanded})
	if len(a.got) != 0 || len(b.got) != 1 {
		t.Fatalf("after unsubscribe: a=%d b=%d", len(a.got), len(b.got))
	}
}

func TestSubscriberCount(t *testing.T) {
	d := NewDispatcher()
	d.Subscribe(TilePlaced, &recorder{})
	d.Subscribe(TilePlaced, &recorder{})
	if got := d.Subscribers(TilePlaced); got != 2 {
		t.Fatalf("Subscribers(TilePlaced) = %d", got)
	}
	if got := d.Subscribers(TileReplaced); got != 0 {
		t.Fatalf("Subscribers(TileReplaced) = %d", got)
	}
}
