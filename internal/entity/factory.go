package entity

import "go.uber.org/zap"

// Factory builds entities from their kind definitions and hands out IDs.
type Factory struct {
	lastID ID
	defs   map[Type]*Definition
}

// NewFactory creates a factory knowing every built-in kind.
func NewFactory() *Factory {
	f := &Factory{defs: make(map[Type]*Definition)}
	for _, def := range Definitions() {
		f.Register(def)
	}
	return f
}

// Register adds or replaces the definition of a kind.
func (f *Factory) Register(def *Definition) {
	f.defs[def.Type] = def
}

// Create builds an uninitialized entity. Unknown types are logged and give nil.
func (f *Factory) Create(data PropertyData, service *Service) *Entity {
	def, ok := f.defs[data.Type]
	if !ok {
		zap.L().Error("Can't create entity of unknown type", zap.Stringer("type", data.Type))
		return nil
	}
	f.lastID++
	return newEntity(f.lastID, def, data, service)
}

// Definitions returns the definitions of all built-in kinds.
func Definitions() []*Definition {
	return []*Definition{
		PlayerDefinition(),
		MoleDefinition(),
		ArrowDefinition(),
		CoinDefinition(),
		EntranceDefinition(),
		RectDefinition(),
	}
}
