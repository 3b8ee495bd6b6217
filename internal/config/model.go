package config

import (
	"github.com/hashicorp/hcl/v2"

	"github.com/vk/typecodec/internal/compiler"
)

// Model is every action definition that was loaded.
type Model struct {
	Actions []*Action
}

// Action describes the input and output types of one named action.
type Action struct {
	Name        string
	Description string
	// Input is always present.
	Input compiler.Description
	// Output is nil when the definition declares none.
	Output compiler.Description
	// DeclRange locates the definition, for diagnostics.
	DeclRange hcl.Range
}

// Action looks up an action by name.
func (m *Model) Action(name string) (*Action, bool) {
	for _, a := range m.Actions {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}
