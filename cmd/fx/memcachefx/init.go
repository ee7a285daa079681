package memcachefx

import (
	"go.uber.org/fx"

	mem "justgo/pkg/memcache"
)

var Module = fx.Provide(provideSelections)

func provideSelections() mem.SelectionStore {
	return mem.NewSelections()
}
