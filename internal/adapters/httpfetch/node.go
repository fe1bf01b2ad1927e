package httpfetch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wpmdb/internal/core/ports"
)

const NodeID graft.ID = "adapter.httpfetch"

func init() {
	graft.Register(graft.Node[ports.Fetcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Fetcher, error) {
			return NewFetcher(), nil
		},
	})
}
