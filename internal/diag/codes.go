package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Synthesis failures (the only user-triggerable errors in the engine).
	SynthInfo                Code = 1000
	SynthNullAnnotationValue Code = 1001
	SynthBadMemberName       Code = 1002

	// Bundle transport.
	BundleInfo           Code = 2000
	BundleDecodeFailed   Code = 2001
	BundleSchemaMismatch Code = 2002
	BundleMissing        Code = 2003

	// Project manifest.
	ManifestInfo    Code = 3000
	ManifestMissing Code = 3001
	ManifestInvalid Code = 3002
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("BND%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

var codeDescription = map[Code]string{
	UnknownCode:              "unknown error",
	SynthInfo:                "synthesis note",
	SynthNullAnnotationValue: "annotation value has no payload",
	SynthBadMemberName:       "annotation member name is not a valid identifier",
	BundleInfo:               "bundle note",
	BundleDecodeFailed:       "failed to decode model bundle",
	BundleSchemaMismatch:     "model bundle schema version mismatch",
	BundleMissing:            "model bundle not found",
	ManifestInfo:             "manifest note",
	ManifestMissing:          "no javagen.toml found",
	ManifestInvalid:          "invalid javagen.toml",
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}
