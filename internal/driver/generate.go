// Package driver orchestrates batch synthesis: it fans a bundle's requests
// out over a worker pool and stitches the fragments back in request order.
package driver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"javagen/internal/model"
	"javagen/internal/synth"
)

// FragmentKind tags what a fragment contains.
type FragmentKind uint8

const (
	FragmentAnnotation FragmentKind = iota
	FragmentOverride
)

func (k FragmentKind) String() string {
	switch k {
	case FragmentAnnotation:
		return "annotation"
	case FragmentOverride:
		return "override"
	default:
		return fmt.Sprintf("FragmentKind(%d)", k)
	}
}

// Fragment is one synthesized piece of source text. Target labels the
// request it answers; for overrides it is owner.member.
type Fragment struct {
	Kind   FragmentKind
	Target string
	Text   string
}

// Options control a Generate run.
type Options struct {
	// Jobs caps the number of concurrent synthesis calls; 0 means NumCPU.
	Jobs int
	// FinalParams forces parameter finality on every override request in
	// addition to requests that ask for it themselves.
	FinalParams bool
}

// Generate synthesizes every request in the bundle. Annotation fragments
// come first, then overrides, each group in request order regardless of
// scheduling. Each request gets a private writer, so requests are
// synthesized concurrently without coordination.
func Generate(ctx context.Context, bundle *model.Bundle, opts Options) ([]Fragment, error) {
	if bundle == nil {
		return nil, fmt.Errorf("driver: nil bundle")
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	fragments := make([]Fragment, len(bundle.Annotations)+len(bundle.Overrides))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, req := range bundle.Annotations {
		i, req := i, req
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := synth.AnnotationLiteral(req.Annotation)
			if err != nil {
				return fmt.Errorf("%s: %w", req.Target, err)
			}
			fragments[i] = Fragment{
				Kind:   FragmentAnnotation,
				Target: req.Target,
				Text:   text,
			}
			return nil
		})
	}

	base := len(bundle.Annotations)
	for i, req := range bundle.Overrides {
		i, req := i, req
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var sk synth.MethodSkeleton
			if req.FinalParams || opts.FinalParams {
				sk = synth.OverridingWithFinalParams(req.Member)
			} else {
				sk = synth.Overriding(req.Member)
			}
			fragments[base+i] = Fragment{
				Kind:   FragmentOverride,
				Target: overrideTarget(req.Member),
				Text:   sk.String(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return fragments, nil
}

func overrideTarget(m model.ResolvedMember) string {
	owner := synth.SafeTypeName(synth.RawTypeName(m.Owner))
	return owner + "." + m.Name
}
