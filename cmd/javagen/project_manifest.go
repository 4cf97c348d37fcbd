package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const noManifestMessage = "no javagen.toml found\nplease specify the bundle explicitly, e.g.:\n  javagen generate path/to/model.mp"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package  packageConfig  `toml:"package"`
	Bundle   bundleConfig   `toml:"bundle"`
	Override overrideConfig `toml:"override"`
	Output   outputConfig   `toml:"output"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type bundleConfig struct {
	Path string `toml:"path"`
}

type overrideConfig struct {
	FinalParams bool `toml:"final_params"`
}

type outputConfig struct {
	Dir string `toml:"dir"`
}

func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "javagen.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return projectConfig{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return projectConfig{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if !meta.IsDefined("bundle") || strings.TrimSpace(cfg.Bundle.Path) == "" {
		return projectConfig{}, fmt.Errorf("%s: missing [bundle].path", path)
	}
	return cfg, nil
}

// resolveBundlePath returns the manifest's bundle path anchored at the
// manifest root.
func resolveBundlePath(manifest *projectManifest) (string, error) {
	if manifest == nil {
		return "", fmt.Errorf("missing project manifest")
	}
	rel := strings.TrimSpace(manifest.Config.Bundle.Path)
	if rel == "" {
		return "", fmt.Errorf("%s: empty [bundle].path", manifest.Path)
	}
	return filepath.Join(manifest.Root, filepath.FromSlash(rel)), nil
}
