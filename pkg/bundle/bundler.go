// Package bundle combines a main PowerShell script with its dot-sourced
// modules into a single versioned artifact and repoints the launcher at
// the published copy.
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/galactic-plane/dragonforge/pkg/project"
	"github.com/galactic-plane/dragonforge/pkg/settings"
)

// Result describes one completed build.
type Result struct {
	Artifact string `json:"artifact"`
	Launcher string `json:"launcher"`
	Version  string `json:"version"`
}

// Bundler runs clean builds for a project.
type Bundler struct {
	Config *project.Config
}

// New returns a Bundler for the given project configuration.
func New(cfg *project.Config) *Bundler {
	return &Bundler{Config: cfg}
}

// Run performs one clean build: the build directory is wiped, the scripts
// are combined under the current version, the launcher is patched, and
// only then is the build counter advanced and persisted. The artifact
// filename therefore carries the pre-advance version; the stored counter
// names the next build.
func (b *Bundler) Run() (*Result, error) {
	cfg := b.Config
	if err := os.RemoveAll(cfg.BuildDir); err != nil {
		return nil, err
	}

	s, err := settings.Load(cfg.Settings)
	if err != nil {
		return nil, err
	}

	version := s.Version.String()
	artifact := filepath.Join(cfg.BuildDir, artifactName(cfg.Source, version))

	if err := Combine(cfg.Source, cfg.Modules, artifact); err != nil {
		return nil, err
	}
	launcher, err := PatchLauncher(cfg.Launcher, artifact, cfg.ArtifactURL, cfg.BuildDir)
	if err != nil {
		return nil, err
	}
	if err := s.AdvanceBuild(cfg.Settings); err != nil {
		return nil, err
	}

	return &Result{Artifact: artifact, Launcher: launcher, Version: version}, nil
}

// artifactName derives the versioned artifact filename from the source
// script, e.g. winDragon.ps1 at 1.0.0.3 becomes winDragon_1.0.0.3.ps1.
func artifactName(sourceFile, version string) string {
	base := filepath.Base(sourceFile)
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s_%s%s", strings.TrimSuffix(base, ext), version, ext)
}
