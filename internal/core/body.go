package core

// Body is an arcade-physics sprite body: an axis-aligned box positioned by
// an anchor point, moved by velocity and a constant vertical gravity.
// Units are world units (pixels) and seconds.
type Body struct {
	X, Y             float64 // Anchor position in the world
	W, H             float64 // Hitbox size
	AnchorX, AnchorY float64 // Anchor as a fraction of the size; (0, 0) is the top-left corner
	VelX, VelY       float64
	GravityY         float64
	Alive            bool

	// OutOfBoundsKill removes the body once it leaves the world after
	// having been inside it.
	OutOfBoundsKill bool
	inWorld         bool
}

// NewBody creates a live body with its top-left corner at (x, y).
func NewBody(x, y, w, h float64) *Body {
	return &Body{X: x, Y: y, W: w, H: h, Alive: true}
}

// Bounds returns the hitbox in world coordinates.
func (b *Body) Bounds() RectF {
	return RectF{
		X: b.X - b.AnchorX*b.W,
		Y: b.Y - b.AnchorY*b.H,
		W: b.W,
		H: b.H,
	}
}

// Integrate applies gravity to the velocity, then velocity to the position.
func (b *Body) Integrate(dt float64) {
	b.VelY += b.GravityY * dt
	b.X += b.VelX * dt
	b.Y += b.VelY * dt
}

// Stop zeroes the body's velocity.
func (b *Body) Stop() {
	b.VelX = 0
	b.VelY = 0
}

// checkWorld updates world tracking and reports whether the body should be
// killed for leaving the world.
func (b *Body) checkWorld(world RectF) bool {
	inside := b.Bounds().Intersects(world)
	if inside {
		b.inWorld = true
		return false
	}
	return b.inWorld && b.OutOfBoundsKill
}

// Group is an ordered collection of bodies updated together.
type Group struct {
	bodies []*Body
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{}
}

// Add appends a body to the group.
func (g *Group) Add(b *Body) {
	g.bodies = append(g.bodies, b)
}

// Len returns the number of bodies in the group.
func (g *Group) Len() int {
	return len(g.bodies)
}

// Bodies returns the bodies in insertion order. The slice is owned by the
// group and must not be modified.
func (g *Group) Bodies() []*Body {
	return g.bodies
}

// ForEach calls fn for every body in insertion order.
func (g *Group) ForEach(fn func(*Body)) {
	for _, b := range g.bodies {
		fn(b)
	}
}

// Update integrates every body by dt, then removes dead bodies and bodies
// that left world. It returns how many bodies were removed.
func (g *Group) Update(dt float64, world RectF) int {
	for _, b := range g.bodies {
		b.Integrate(dt)
		if b.checkWorld(world) {
			b.Alive = false
		}
	}

	kept := g.bodies[:0]
	for _, b := range g.bodies {
		if b.Alive {
			kept = append(kept, b)
		}
	}
	removed := len(g.bodies) - len(kept)
	for i := len(kept); i < len(g.bodies); i++ {
		g.bodies[i] = nil
	}
	g.bodies = kept
	return removed
}

// Overlaps reports whether r intersects any body in the group.
func (g *Group) Overlaps(r RectF) bool {
	for _, b := range g.bodies {
		if b.Bounds().Intersects(r) {
			return true
		}
	}
	return false
}

// Clear removes every body.
func (g *Group) Clear() {
	for i := range g.bodies {
		g.bodies[i] = nil
	}
	g.bodies = g.bodies[:0]
}
