// Package di assembles the application object graph with google/wire.
package di

import (
	"socialnet/internal/common"
	"socialnet/internal/web"
)

// Application bundles everything cmd/web needs after wiring.
type Application struct {
	Handler *web.Handler
	Tokens  *common.TokenManager
}
