package physics

// Overlaps reports whether the hitboxes of two live bodies intersect.
func (b *Body) Overlaps(o *Body) bool {
	if !b.Active() || !o.Active() {
		return false
	}
	x1, y1, w1, h1 := b.Rect()
	x2, y2, w2, h2 := o.Rect()
	return rectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2)
}

// HurtCollision applies a hurt zone to the body when its hitbox overlaps the
// zone and the body implements Hurter.
func (b *Body) HurtCollision(x, y, w, h float64, instantKill bool, dt float64) bool {
	hurter, ok := b.Hooks.(Hurter)
	if !ok || !b.Active() {
		return false
	}

	bx, by, bw, bh := b.Rect()
	if !rectsOverlap(bx, by, bw, bh, x, y, w, h) {
		return false
	}
	hurter.Hurt(b, instantKill, dt)
	return true
}

func rectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return x1+w1 > x2 && x1 < x2+w2 && y1+h1 > y2 && y1 < y2+h2
}
