package driver

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"javagen/internal/model"
)

func bundleWithOverrides(n int) *model.Bundle {
	b := model.NewBundle("com.example.generated")
	for i := 0; i < n; i++ {
		b.Overrides = append(b.Overrides, model.OverrideRequest{
			Member: model.ResolvedMember{
				Name:       fmt.Sprintf("method%03d", i),
				Owner:      model.MakeDeclared("com.example.Service"),
				Return:     model.MakePrimitive("void"),
				Visibility: model.VisibilityPublic,
			},
		})
	}
	return b
}

func TestGenerateKeepsRequestOrder(t *testing.T) {
	const n = 64
	bundle := bundleWithOverrides(n)
	fragments, err := Generate(context.Background(), bundle, Options{Jobs: 8})
	if err != nil {
		t.Fatal(err)
	}
	if len(fragments) != n {
		t.Fatalf("got %d fragments, want %d", len(fragments), n)
	}
	for i, f := range fragments {
		want := fmt.Sprintf("com.example.Service.method%03d", i)
		if f.Target != want {
			t.Fatalf("fragment %d target = %q, want %q", i, f.Target, want)
		}
		if f.Kind != FragmentOverride {
			t.Fatalf("fragment %d kind = %v", i, f.Kind)
		}
	}
}

func TestGenerateAnnotationsBeforeOverrides(t *testing.T) {
	bundle := bundleWithOverrides(2)
	bundle.Annotations = []model.AnnotationRequest{
		{
			Target: "com.example.Service",
			Annotation: model.AnnotationInstance{
				Class:  model.MakeDeclared("com.example.Generated"),
				Values: []model.AnnotationValue{model.MakeStringValue("by", "javagen")},
			},
		},
	}
	fragments, err := Generate(context.Background(), bundle, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(fragments) != 3 {
		t.Fatalf("got %d fragments", len(fragments))
	}
	if fragments[0].Kind != FragmentAnnotation {
		t.Fatalf("first fragment kind = %v, want annotation", fragments[0].Kind)
	}
	if want := `@com.example.Generated(by = "javagen")`; fragments[0].Text != want {
		t.Fatalf("annotation text = %q, want %q", fragments[0].Text, want)
	}
}

func TestGenerateForcedFinality(t *testing.T) {
	bundle := model.NewBundle("p")
	bundle.Overrides = []model.OverrideRequest{{
		Member: model.ResolvedMember{
			Name:       "accept",
			Owner:      model.MakeDeclared("com.example.Sink"),
			Params:     []model.Param{{Name: "item", Type: model.MakeDeclared("java.lang.Object")}},
			Return:     model.MakePrimitive("void"),
			Visibility: model.VisibilityPublic,
		},
	}}

	plain, err := Generate(context.Background(), bundle, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(plain[0].Text, "final ") {
		t.Fatalf("plain run marked params final:\n%s", plain[0].Text)
	}

	forced, err := Generate(context.Background(), bundle, Options{FinalParams: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(forced[0].Text, "final java.lang.Object item") {
		t.Fatalf("forced run did not mark params final:\n%s", forced[0].Text)
	}
}

func TestGeneratePropagatesSynthesisError(t *testing.T) {
	bundle := model.NewBundle("p")
	bundle.Annotations = []model.AnnotationRequest{{
		Target: "com.example.Broken",
		Annotation: model.AnnotationInstance{
			Class:  model.MakeDeclared("com.example.Cache"),
			Values: []model.AnnotationValue{{Name: "bad", Kind: model.ValueType}},
		},
	}}
	_, err := Generate(context.Background(), bundle, Options{})
	if err == nil {
		t.Fatal("expected synthesis error")
	}
	if !strings.Contains(err.Error(), "com.example.Broken") {
		t.Fatalf("error should name the failing target: %v", err)
	}
}

func TestGenerateHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Generate(ctx, bundleWithOverrides(16), Options{Jobs: 2})
	if err == nil {
		t.Fatal("expected error from canceled context")
	}
	if !strings.Contains(err.Error(), context.Canceled.Error()) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerateNilBundle(t *testing.T) {
	if _, err := Generate(context.Background(), nil, Options{}); err == nil {
		t.Fatal("expected error for nil bundle")
	}
}
