package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"javagen/internal/diag"
	"javagen/internal/driver"
	"javagen/internal/model"
)

var generateCmd = &cobra.Command{
	Use:   "generate [bundle|dir]",
	Short: "Synthesize source fragments from a model bundle",
	Long: `Generate reads a resolved model bundle (produced by the annotation-processing
front end) and synthesizes Java source fragments: annotation literals and
override skeletons. Without an argument the bundle location is taken from
javagen.toml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Bool("final-params", false, "mark every override parameter final")
	generateCmd.Flags().IntP("jobs", "j", 0, "number of concurrent synthesis calls (0 = NumCPU)")
	generateCmd.Flags().StringP("output", "o", "", "write fragments to this directory instead of stdout")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	finalParams, err := cmd.Flags().GetBool("final-params")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	outDir, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	if err := validateMaxDiagnostics(maxDiagnostics); err != nil {
		return err
	}

	bundlePath, pkg, err := resolveBundleArg(args, &finalParams, &outDir)
	if err != nil {
		return err
	}

	bag := diag.NewBag(maxDiagnostics)
	printer := diag.NewPrinter(cmd.ErrOrStderr(), colorModeFromFlag(cmd), isTerminal(os.Stderr))

	bundle, err := model.ReadBundle(bundlePath)
	if err != nil {
		bag.Add(diag.NewError(diag.BundleDecodeFailed, bundlePath, err.Error()))
		printer.PrintBag(bag)
		return fmt.Errorf("failed to read bundle %s", bundlePath)
	}
	if pkg != "" && bundle.Package != pkg {
		bag.Add(diag.NewWarning(diag.ManifestInvalid, bundlePath,
			fmt.Sprintf("bundle package %q does not match manifest package %q", bundle.Package, pkg)))
	}

	fragments, err := driver.Generate(cmd.Context(), bundle, driver.Options{
		Jobs:        jobs,
		FinalParams: finalParams,
	})
	if err != nil {
		bag.Add(classifySynthesisError(err))
		printer.PrintBag(bag)
		return err
	}

	printer.PrintBag(bag)

	if outDir != "" {
		return writeFragments(outDir, bundle.Package, fragments, quiet, cmd)
	}
	for _, f := range fragments {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "// %s %s\n", f.Kind, f.Target)
		}
		fmt.Fprintln(cmd.OutOrStdout(), f.Text)
	}
	return nil
}

// resolveBundleArg decides where the bundle lives: an explicit .mp path, an
// explicit directory with a manifest, or the manifest found from cwd.
// Manifest settings fill in flags the user did not pass.
func resolveBundleArg(args []string, finalParams *bool, outDir *string) (path, pkg string, err error) {
	start := "."
	if len(args) == 1 {
		if strings.HasSuffix(args[0], ".mp") {
			return args[0], "", nil
		}
		start = args[0]
	}
	manifest, found, err := loadProjectManifest(start)
	if err != nil {
		return "", "", err
	}
	if !found {
		return "", "", fmt.Errorf("%s", noManifestMessage)
	}
	if manifest.Config.Override.FinalParams {
		*finalParams = true
	}
	if *outDir == "" && manifest.Config.Output.Dir != "" {
		*outDir = filepath.Join(manifest.Root, filepath.FromSlash(manifest.Config.Output.Dir))
	}
	path, err = resolveBundlePath(manifest)
	if err != nil {
		return "", "", err
	}
	return path, manifest.Config.Package.Name, nil
}

// validateMaxDiagnostics rejects flag values the diagnostic bag cannot hold.
func validateMaxDiagnostics(n int) error {
	if n < 1 || n > math.MaxUint16 {
		return fmt.Errorf("--max-diagnostics must be between 1 and %d, got %d", math.MaxUint16, n)
	}
	return nil
}

func classifySynthesisError(err error) diag.Diagnostic {
	msg := err.Error()
	code := diag.SynthNullAnnotationValue
	if strings.Contains(msg, "not a valid annotation member name") {
		code = diag.SynthBadMemberName
	}
	return diag.NewError(code, "", msg)
}

func writeFragments(dir, pkg string, fragments []driver.Fragment, quiet bool, cmd *cobra.Command) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	name := pkg
	if name == "" {
		name = "fragments"
	}
	path := filepath.Join(dir, name+".javafrag")
	var sb strings.Builder
	for _, f := range fragments {
		sb.WriteString("// ")
		sb.WriteString(f.Kind.String())
		sb.WriteByte(' ')
		sb.WriteString(f.Target)
		sb.WriteByte('\n')
		sb.WriteString(f.Text)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d fragments to %s\n", len(fragments), path)
	}
	return nil
}
