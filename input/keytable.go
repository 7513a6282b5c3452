package input

// KeyTable maps keys to intents
// Bindings are fixed; there is no user remapping
type KeyTable struct {
	keys map[Key]IntentType
}

// DefaultKeyTable returns the arrow-key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		keys: map[Key]IntentType{
			KeyLeft:    IntentMoveLeft,
			KeyRight:   IntentMoveRight,
			KeyDown:    IntentMoveDown,
			KeyUp:      IntentRotate,
			KeyEscape:  IntentQuit,
			KeyClose:   IntentQuit,
			KeyEnter:   IntentRestart,
			KeyRestart: IntentRestart,
		},
	}
}

// Resolve returns the intent bound to k, IntentNone if unbound
func (t *KeyTable) Resolve(k Key) IntentType {
	return t.keys[k]
}
