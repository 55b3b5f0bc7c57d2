package physics

//go:generate go tool mockgen -destination=./mocks/physics_mock.go -package=mocks . HitListener,Collidable

// HitListener is told about blocks being struck.
type HitListener interface {
	HitEvent(beingHit *Block, hitter *Ball)
}

// HitNotifier keeps a list of hit listeners.
type HitNotifier interface {
	AddHitListener(l HitListener)
	RemoveHitListener(l HitListener)
}

// listenerList is the subscriber list shared by notifiers.
type listenerList struct {
	listeners []HitListener
}

func (ll *listenerList) add(l HitListener) {
	ll.listeners = append(ll.listeners, l)
}

func (ll *listenerList) remove(l HitListener) {
	for i, existing := range ll.listeners {
		if existing == l {
			ll.listeners = append(ll.listeners[:i:i], ll.listeners[i+1:]...)
			return
		}
	}
}

// notify delivers the event over a copy of the list so listeners may
// unsubscribe (or subscribe others) while being notified.
func (ll *listenerList) notify(beingHit *Block, hitter *Ball) {
	snapshot := make([]HitListener, len(ll.listeners))
	copy(snapshot, ll.listeners)
	for _, l := range snapshot {
		l.HitEvent(beingHit, hitter)
	}
}

func (ll *listenerList) len() int {
	return len(ll.listeners)
}
