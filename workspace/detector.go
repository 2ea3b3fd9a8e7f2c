package workspace

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/viant/afs"
)

// Workspace represents a detected source workspace
type Workspace struct {
	Root   string // Absolute path of the workspace root directory
	Marker string // Marker file that identified the root
	Name   string // Name from package.json, or the root directory name
}

// Detector identifies workspace root folders
type Detector struct {
	fs      afs.Service
	markers []string
}

// New creates a workspace detector; markers are checked in order in each directory
func New(fs afs.Service, markers ...string) *Detector {
	if fs == nil {
		fs = afs.New()
	}
	if len(markers) == 0 {
		markers = []string{
			"ngtooling.json",
			"ngtooling.yaml",
			"ngtooling.yml",
			"vscode-ng-tooling.json",
			"angular.json",
			"package.json",
			".git",
		}
	}
	return &Detector{fs: fs, markers: markers}
}

// Detect searches up from location for a workspace root marker.
// When no marker is found the starting directory is used as the root.
func (d *Detector) Detect(ctx context.Context, location string) (*Workspace, error) {
	absPath, err := filepath.Abs(location)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect %s: %w", absPath, err)
	}
	startDir := absPath
	if !info.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	root, marker, err := d.findRoot(ctx, startDir)
	if err != nil {
		return nil, err
	}
	if root == "" {
		root = startDir
	}
	return &Workspace{
		Root:   root,
		Marker: marker,
		Name:   d.projectName(ctx, root),
	}, nil
}

// Open uses location as the workspace root without searching parent directories
func (d *Detector) Open(ctx context.Context, location string) (*Workspace, error) {
	root, err := filepath.Abs(location)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("workspace root %s is not a directory", root)
	}
	return &Workspace{Root: root, Name: d.projectName(ctx, root)}, nil
}

func (d *Detector) findRoot(ctx context.Context, startDir string) (string, string, error) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			ok, err := d.fs.Exists(ctx, filepath.Join(dir, marker))
			if err != nil {
				return "", "", fmt.Errorf("failed to check %s: %w", filepath.Join(dir, marker), err)
			}
			if ok {
				return dir, marker, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", nil
		}
		dir = parent
	}
}

func (d *Detector) projectName(ctx context.Context, root string) string {
	data, err := d.fs.DownloadWithURL(ctx, filepath.Join(root, "package.json"))
	if err != nil {
		return filepath.Base(root)
	}
	pkg := struct {
		Name string `json:"name"`
	}{}
	if err = json.Unmarshal(data, &pkg); err != nil || pkg.Name == "" {
		return filepath.Base(root)
	}
	return pkg.Name
}
