package app

import (
	"github.com/vk/typecodec/internal/registry"
	"github.com/vk/typecodec/modules/socketio"
	"github.com/vk/typecodec/modules/wdl"
)

// coreModules is the definitive list of all modules that are compiled into
// the typecodec binary.
var coreModules = []registry.Module{
	&wdl.Module{},
	&socketio.Module{},
}

// ResolverNames lists the resolvers compiled into the binary.
func ResolverNames() []string {
	reg := registry.New()
	for _, mod := range coreModules {
		mod.Register(reg)
	}
	return reg.Names()
}
