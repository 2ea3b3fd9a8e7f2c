package main

import (
	"context"
	"os"

	"github.com/viant/afs"
	"github.com/viant/ngtooling/config"
	"github.com/viant/ngtooling/workspace"
)

// session holds the resolved workspace and its configuration
type session struct {
	workspace  *workspace.Workspace
	config     *config.Config
	configFile string
	fs         afs.Service
}

// openSession detects the workspace root (unless --root is given) and loads its configuration
func openSession(ctx context.Context, opts *options) (*session, error) {
	fs := afs.New()
	location := opts.root
	if location == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		location = wd
	}
	detector := workspace.New(fs)
	var ws *workspace.Workspace
	var err error
	if opts.root != "" {
		ws, err = detector.Open(ctx, location)
	} else {
		ws, err = detector.Detect(ctx, location)
	}
	if err != nil {
		return nil, err
	}
	cfg, file, err := config.Load(ctx, config.LoadOptions{Root: ws.Root, File: opts.config, DotEnv: opts.dotEnv})
	if err != nil {
		return nil, err
	}
	if config.IsLegacy(file) {
		newLogger(opts.verbose).Warn("reading legacy config file, rename it to "+config.FileName+".json", "path", file)
	}
	return &session{workspace: ws, config: cfg, configFile: file, fs: fs}, nil
}
