// Package object holds the game entities and their per-frame behavior.
package object

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal on the next filter pass.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// RemoveDestroyed compacts s in place, keeping the order of the survivors.
// The freed tail is zeroed so removed objects can be collected.
func RemoveDestroyed[T Destructible](s []T) []T {
	kept := s[:0]
	for _, obj := range s {
		if !obj.IsDestroyed() {
			kept = append(kept, obj)
		}
	}
	clear(s[len(kept):])
	return kept
}
