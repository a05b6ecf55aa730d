package entity

// Movement moves a transform along a direction at a fixed velocity.
type Movement struct {
	transform *Transform
	velocity  float64
	direction MoveDirection
	previous  Transform
}

// NewMovement creates a stopped movement for t.
func NewMovement(t *Transform, velocity float64) *Movement {
	return &Movement{transform: t, velocity: velocity, previous: *t}
}

func (m *Movement) SetDirection(d MoveDirection) { m.direction = d }
func (m *Movement) Direction() MoveDirection     { return m.direction }
func (m *Movement) SetVelocity(v float64)        { m.velocity = v }
func (m *Movement) Velocity() float64            { return m.velocity }

// Update moves the transform for dt seconds and remembers where it was.
func (m *Movement) Update(dt float64) {
	m.previous = *m.transform
	if m.direction == MoveNone {
		return
	}
	step := m.direction.Vector().Scale(m.velocity * dt)
	m.transform.Position = m.transform.Position.Add(step)
}

// Revert puts the transform back where it was before the last Update.
func (m *Movement) Revert() {
	m.transform.Position = m.previous.Position
}
