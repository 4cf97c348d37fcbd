package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when the bundle format changes.
const BundleSchemaVersion uint16 = 1

// AnnotationRequest asks the engine to synthesize one annotation literal.
// Target is an opaque label used to address the fragment in the output.
type AnnotationRequest struct {
	Target     string
	Annotation AnnotationInstance
}

// OverrideRequest asks the engine to synthesize one override skeleton.
type OverrideRequest struct {
	Member      ResolvedMember
	FinalParams bool
}

// Bundle is the snapshot the resolution front end hands to this tool: one
// package's worth of synthesis requests, serialized with msgpack.
type Bundle struct {
	Schema      uint16
	Package     string
	Annotations []AnnotationRequest
	Overrides   []OverrideRequest
}

// NewBundle returns an empty bundle for the given package with the current
// schema version.
func NewBundle(pkg string) *Bundle {
	return &Bundle{Schema: BundleSchemaVersion, Package: pkg}
}

// WriteBundle serializes the bundle to path, replacing any existing file
// atomically.
func WriteBundle(path string, b *Bundle) error {
	if b == nil {
		return errors.New("model: nil bundle")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(b); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// ReadBundle deserializes a bundle from path and validates its schema.
func ReadBundle(path string) (*Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	var b Bundle
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("%s: failed to decode bundle: %w", path, err)
	}
	if b.Schema != BundleSchemaVersion {
		return nil, fmt.Errorf("%s: bundle schema %d, want %d", path, b.Schema, BundleSchemaVersion)
	}
	return &b, nil
}
