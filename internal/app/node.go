package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wpmdb/internal/adapters/env"       //nolint:depguard // Wired in app layer
	"go.trai.ch/wpmdb/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/wpmdb/internal/adapters/httpfetch" //nolint:depguard // Wired in app layer
	"go.trai.ch/wpmdb/internal/adapters/lockstore" //nolint:depguard // Wired in app layer
	"go.trai.ch/wpmdb/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/wpmdb/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"go.trai.ch/wpmdb/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/wpmdb/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.NodeID,
			lockstore.NodeID,
			httpfetch.NodeID,
			env.NodeID,
			fs.HasherNodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	manifests, err := graft.Dep[ports.ManifestLoader](ctx)
	if err != nil {
		return nil, err
	}

	locks, err := graft.Dep[ports.LockStore](ctx)
	if err != nil {
		return nil, err
	}

	fetcher, err := graft.Dep[ports.Fetcher](ctx)
	if err != nil {
		return nil, err
	}

	creds, err := graft.Dep[ports.CredentialSource](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	watch, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(manifests, locks, fetcher, creds, hasher, watch, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(application, log), nil
}
