package env

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wpmdb/internal/core/ports"
)

// NodeID is the unique identifier for the credential source Graft node.
const NodeID graft.ID = "adapter.env"

func init() {
	graft.Register(graft.Node[ports.CredentialSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CredentialSource, error) {
			return NewSource(), nil
		},
	})
}
