// Package platform assembles the notebook store from its parts: it resolves
// the storage path, selects and configures a persistence adapter, and wires
// the domain store on top.
package platform

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/neuronex/notekeep/pkg/adapters/badgerkv"
	"github.com/neuronex/notekeep/pkg/adapters/fs"
	"github.com/neuronex/notekeep/pkg/core"
)

// Init builds and initializes the persistence adapter for the given path.
// The path is adapter-specific: a store file for "fs", a database directory
// for "badger".
func Init(path string, opts ...Option) (core.Adapter, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.adapter != nil {
		return o.adapter, nil
	}

	var adapter core.Adapter
	var err error

	switch o.adapterName {
	case "fs":
		adapter, err = initFS(path, o)
	case "badger":
		adapter, err = initBadger(path, o)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapterName)
	}

	if err != nil {
		return nil, err
	}

	if err := adapter.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return adapter, nil
}

// Open builds the adapter and the store on top of it in one call.
func Open(ctx context.Context, path string, opts ...Option) (*core.Store, error) {
	adapter, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return core.NewStore(ctx, adapter, o.logger)
}

func initFS(path string, o *options) (core.Adapter, error) {
	autoInit, _ := o.config["auto_init"].(bool)
	mustExist, _ := o.config["must_exist"].(bool)
	tempDir, _ := o.config["temp_dir"].(bool)
	format, _ := o.config["format"].(string)
	eventBuffer, _ := o.config["event_buffer"].(int)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))

	// Default to the safe side if not explicitly set.
	devSafety := true
	if val, ok := o.config["dev_safety"].(bool); ok {
		devSafety = val
	}

	useTemp := tempDir || (IsDevRun() && devSafety)
	resolvedPath := ResolveStorePath(path, useTemp)

	if o.logger != nil && useTemp {
		o.logger.Warn("running in SAFE MODE (Dev/Test)", "original_path", path, "resolved_path", resolvedPath)
	}

	return fs.NewAdapter(fs.Config{
		Path:         resolvedPath,
		Format:       format,
		AutoInit:     autoInit,
		MustExist:    mustExist || (!autoInit && !useTemp),
		Logger:       o.logger,
		EventBuffer:  eventBuffer,
		ErrorHandler: errorHandler,
	})
}

func initBadger(path string, o *options) (core.Adapter, error) {
	inMemory, _ := o.config["in_memory"].(bool)
	tempDir, _ := o.config["temp_dir"].(bool)

	devSafety := true
	if val, ok := o.config["dev_safety"].(bool); ok {
		devSafety = val
	}

	if inMemory {
		cfg := badgerkv.InMemoryConfig()
		cfg.Logger = o.logger
		return badgerkv.NewAdapter(cfg)
	}

	if path == "" {
		// Badger wants a directory, not the flat-file default.
		path = filepath.Join(filepath.Dir(DefaultStorePath()), "badger")
	}

	useTemp := tempDir || (IsDevRun() && devSafety)
	resolvedPath := ResolveStorePath(path, useTemp)

	cfg := badgerkv.DefaultConfig(resolvedPath)
	cfg.Logger = o.logger
	return badgerkv.NewAdapter(cfg)
}
