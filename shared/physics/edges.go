package physics

// FloorCollision tests the bottom edge of the body against the top surface
// of a solid tile at (x, y) spanning width pixels. The window below the
// surface grows with the fall speed so fast bodies do not tunnel through.
func (b *Body) FloorCollision(x, y, width, dt float64) bool {
	if !b.TakeCollision || b.Speed.Y < 0 {
		return false
	}

	left, top, w, h := b.CollisionRect()
	if left+w < x || left >= x+width {
		return false
	}

	bottom := top + h
	if bottom > y-b.Margins.FloorTop*dt &&
		bottom < y+(b.Margins.FloorBottom+b.Speed.Y)*dt {

		if f, ok := b.Hooks.(FloorHandler); ok {
			f.FloorEvent(b, dt)
		}
		b.Pos.Y = y + b.Center.Y - b.Colbox.Y/2
		return true
	}
	return false
}

// CeilingCollision tests the top edge of the body against the bottom
// surface y of a solid tile.
func (b *Body) CeilingCollision(x, y, width, dt float64) bool {
	if !b.TakeCollision || b.Speed.Y > 0 {
		return false
	}

	left, top, w, _ := b.CollisionRect()
	if left+w < x || left >= x+width {
		return false
	}

	if top < y+b.Margins.CeilingBottom*dt &&
		top > y-(b.Margins.CeilingTop-b.Speed.Y)*dt {

		if c, ok := b.Hooks.(CeilingHandler); ok {
			c.CeilingEvent(b, dt)
		}
		b.Pos.Y = y + b.Center.Y + b.Colbox.Y/2
		return true
	}
	return false
}

// WallCollision tests the leading horizontal edge of the body against a wall
// face at x spanning [y, y+height). dir is +1 when the wall blocks motion to
// the right and -1 when it blocks motion to the left. Both the current and
// the previous tick's edge are compared so a body that crossed the whole
// wall within one tick is still caught.
func (b *Body) WallCollision(x, y, height float64, dir int, dt float64) bool {
	fdir := float64(dir)
	if !b.TakeCollision || fdir*b.Speed.X < 0 {
		return false
	}

	_, top, _, h := b.CollisionRect()
	safe := b.Margins.WallSafe
	if top+h <= y+safe || top >= y+height-safe {
		return false
	}

	half := fdir * b.Colbox.X / 2
	edge := b.Pos.X - b.Center.X + half
	oldEdge := b.OldPos.X - b.Center.X + half

	if fdir*edge > fdir*x-b.Margins.WallNear*dt &&
		fdir*oldEdge < fdir*x+b.Margins.WallFar*dt {

		if wh, ok := b.Hooks.(WallHandler); ok {
			wh.WallEvent(b, dir, dt)
		}
		b.Pos.X = x + b.Center.X - half
		return true
	}
	return false
}
