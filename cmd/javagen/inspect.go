package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"javagen/internal/model"
	"javagen/internal/synth"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <bundle>",
	Short: "Decode a model bundle and print its requests",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	bundle, err := model.ReadBundle(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "bundle %s (schema %d)\n", args[0], bundle.Schema)
	fmt.Fprintf(out, "package %s\n", bundle.Package)
	fmt.Fprintf(out, "annotations: %d\n", len(bundle.Annotations))
	for _, req := range bundle.Annotations {
		fmt.Fprintf(out, "  %s @%s (%d values)\n",
			req.Target, synth.SafeTypeName(req.Annotation.Class), len(req.Annotation.Values))
	}
	fmt.Fprintf(out, "overrides: %d\n", len(bundle.Overrides))
	for _, req := range bundle.Overrides {
		m := req.Member
		fmt.Fprintf(out, "  %s.%s/%d %s varargs=%v final=%v\n",
			synth.SafeTypeName(synth.RawTypeName(m.Owner)), m.Name, len(m.Params),
			m.Visibility, m.Varargs, req.FinalParams)
	}
	return nil
}
