package entity

import (
	"slices"
	"sort"

	"go.uber.org/zap"

	"chosenoffset.com/forestadventure/internal/core/geom"
	"chosenoffset.com/forestadventure/internal/render"
)

// Manager owns the live entities of a level.
//
// Entity creation and deletion requested during a frame are buffered and applied at the
// end of Update, after every entity was updated and collisions were detected.
type Manager struct {
	factory  *Factory
	service  *Service
	entities map[ID]*Entity
	order    []ID

	pendingCreate []PropertyData
	pendingDelete []ID
}

// ManagerConfig lists the collaborators entities reach through their service.
type ManagerConfig struct {
	Bus     Bus
	Frames  FrameSource
	Camera  Camera
	MapRect geom.Rect
	Tuning  Tuning
	Factory *Factory
}

// NewManager creates an empty manager.
func NewManager(cfg ManagerConfig) *Manager {
	factory := cfg.Factory
	if factory == nil {
		factory = NewFactory()
	}
	m := &Manager{
		factory:  factory,
		entities: make(map[ID]*Entity),
	}
	m.service = NewService(ServiceConfig{
		Bus:     cfg.Bus,
		Frames:  cfg.Frames,
		Camera:  cfg.Camera,
		Spawner: m,
		MapRect: cfg.MapRect,
		Tuning:  cfg.Tuning,
	})
	return m
}

// Service returns the service shared by the entities.
func (m *Manager) Service() *Service { return m.service }

// CreateEntity buffers a creation request.
func (m *Manager) CreateEntity(data PropertyData) {
	m.pendingCreate = append(m.pendingCreate, data)
}

// DeleteEntity buffers a deletion request. Repeated requests for one entity are merged.
func (m *Manager) DeleteEntity(id ID) {
	if slices.Contains(m.pendingDelete, id) {
		return
	}
	m.pendingDelete = append(m.pendingDelete, id)
}

// Update updates every entity, detects collisions and then applies the buffered
// creations and deletions.
func (m *Manager) Update(dt float64) {
	for _, id := range m.order {
		if e, ok := m.entities[id]; ok {
			e.Update(dt)
		}
	}
	m.detectCollisions()
	m.Flush()
}

func (m *Manager) detectCollisions() {
	live := m.Entities()
	for i := 0; i < len(live); i++ {
		a := live[i]
		for j := i + 1; j < len(live); j++ {
			b := live[j]
			if a.IsStatic() && b.IsStatic() {
				continue
			}
			if !a.Intersects(b) {
				continue
			}
			a.HandleEvent(Event{Type: EventCollision, Other: b.ID(), OtherType: b.Type(), OtherSolid: b.IsSolid()})
			b.HandleEvent(Event{Type: EventCollision, Other: a.ID(), OtherType: a.Type(), OtherSolid: a.IsSolid()})
		}
	}
}

// Flush applies the buffered deletions and then the buffered creations. Requests made
// while flushing are applied in the same call.
func (m *Manager) Flush() {
	for len(m.pendingDelete) > 0 || len(m.pendingCreate) > 0 {
		deletes := m.pendingDelete
		m.pendingDelete = nil
		for _, id := range deletes {
			m.remove(id)
		}

		creates := m.pendingCreate
		m.pendingCreate = nil
		for _, data := range creates {
			m.add(data)
		}
	}
}

func (m *Manager) add(data PropertyData) {
	e := m.factory.Create(data, m.service)
	if e == nil {
		return
	}
	m.entities[e.ID()] = e
	m.order = append(m.order, e.ID())
	e.Init()
	zap.L().Debug("Entity created", zap.String("entity", e.Name()))
}

func (m *Manager) remove(id ID) {
	e, ok := m.entities[id]
	if !ok {
		return
	}
	e.Destroy()
	delete(m.entities, id)
	if idx := slices.Index(m.order, id); idx >= 0 {
		m.order = slices.Delete(m.order, idx, idx+1)
	}
	zap.L().Debug("Entity deleted", zap.String("entity", e.Name()))
}

// DrawTo draws the entities layer by layer, in creation order within a layer.
func (m *Manager) DrawTo(target render.Image) {
	live := m.Entities()
	sort.SliceStable(live, func(i, j int) bool { return live[i].Layer() < live[j].Layer() })
	for _, e := range live {
		e.DrawTo(target)
	}
}

// EnableInput turns input on or off for every entity.
func (m *Manager) EnableInput(enable bool) {
	for _, e := range m.entities {
		e.EnableInput(enable)
	}
}

// Get returns a live entity.
func (m *Manager) Get(id ID) (*Entity, bool) {
	e, ok := m.entities[id]
	return e, ok
}

// Len returns the number of live entities.
func (m *Manager) Len() int { return len(m.entities) }

// Entities returns the live entities in creation order.
func (m *Manager) Entities() []*Entity {
	out := make([]*Entity, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.entities[id])
	}
	return out
}

// FindByType returns the live entities of kind t in creation order.
func (m *Manager) FindByType(t Type) []*Entity {
	var out []*Entity
	for _, e := range m.Entities() {
		if e.Type() == t {
			out = append(out, e)
		}
	}
	return out
}

// Clear destroys every entity and drops pending requests.
func (m *Manager) Clear() {
	for _, e := range m.Entities() {
		e.Destroy()
	}
	m.entities = make(map[ID]*Entity)
	m.order = nil
	m.pendingCreate = nil
	m.pendingDelete = nil
}
