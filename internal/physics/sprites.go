package physics

// Sprite is anything that changes once per tick.
type Sprite interface {
	TimePassed()
}

// SpriteCollection is the ordered registry of sprites driven each tick.
type SpriteCollection struct {
	sprites []Sprite
}

// NewSpriteCollection creates an empty collection.
func NewSpriteCollection() *SpriteCollection {
	return &SpriteCollection{}
}

// Add appends s to the tick order.
func (sc *SpriteCollection) Add(s Sprite) {
	sc.sprites = append(sc.sprites, s)
}

// Remove drops the first occurrence of s. It reports whether s was found.
func (sc *SpriteCollection) Remove(s Sprite) bool {
	for i, existing := range sc.sprites {
		if existing == s {
			sc.sprites = append(sc.sprites[:i:i], sc.sprites[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered sprites.
func (sc *SpriteCollection) Len() int {
	return len(sc.sprites)
}

// Snapshot returns a copy of the sprites in tick order.
func (sc *SpriteCollection) Snapshot() []Sprite {
	out := make([]Sprite, len(sc.sprites))
	copy(out, sc.sprites)
	return out
}

// NotifyAllTimePassed advances every sprite once. The pass iterates the
// collection as it was when the pass began: sprites removed mid-pass still
// get this tick, sprites added mid-pass wait for the next one.
func (sc *SpriteCollection) NotifyAllTimePassed() {
	for _, s := range sc.Snapshot() {
		s.TimePassed()
	}
}
