package app

import (
	"github.com/vk/specrungo/internal/registry"
	"github.com/vk/specrungo/modules/envcheck"
	"github.com/vk/specrungo/modules/httpcheck"
	"github.com/vk/specrungo/modules/socketio"
)

// coreModules are the built-in check modules registered when the caller
// does not supply its own set.
var coreModules = []registry.Module{
	&envcheck.Module{},
	&httpcheck.Module{},
	&socketio.Module{},
}
