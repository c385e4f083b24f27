package cmd

import (
	"fmt"
	"os"

	"qactl/internal/config"
	"qactl/internal/matrix"
	"qactl/internal/output"
	"qactl/internal/version"
	"qactl/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	matrixJSONPath        string
	matrixGitHubOutput    string
	matrixMinRuntime      string
	matrixMaxRuntime      string
	matrixLocalCompanions []string
)

func newMatrixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Generate the CI test matrix",
		Long: `Computes the test matrix for all test kinds (sanity, units,
integration) from the declared compatibility table and the configured
version selection. The result is printed as a report and can additionally
be written as a JSON document or as GitHub Actions output lines, one per
test kind, for a CI pipeline to expand into per-combination jobs.`,
		RunE: runMatrix,
	}

	cmd.Flags().StringVar(&matrixJSONPath, "json", "", "write the full matrix document as JSON to this file")
	cmd.Flags().StringVar(&matrixGitHubOutput, "github-output", "", "append per-kind matrix lines to this GitHub Actions output file (defaults to $GITHUB_OUTPUT)")
	cmd.Flags().StringVar(&matrixMinRuntime, "min-runtime", "", "drop matrix entries below this runtime version")
	cmd.Flags().StringVar(&matrixMaxRuntime, "max-runtime", "", "drop matrix entries above this runtime version")
	cmd.Flags().StringSliceVar(&matrixLocalCompanions, "local-companions", nil, "locally available companion versions to extend coverage with")

	return cmd
}

func runMatrix(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	table, err := cfg.CompatTable()
	if err != nil {
		return err
	}

	locals, err := version.ParseAll(matrixLocalCompanions)
	if err != nil {
		return fmt.Errorf("--local-companions: %w", err)
	}
	minRuntime, err := parseBound(matrixMinRuntime, "--min-runtime")
	if err != nil {
		return err
	}
	maxRuntime, err := parseBound(matrixMaxRuntime, "--max-runtime")
	if err != nil {
		return err
	}

	matrices := make(map[matrix.Kind][]matrix.Entry, len(matrix.Kinds()))
	for _, kind := range matrix.Kinds() {
		req, err := cfg.MatrixRequest(kind, locals)
		if err != nil {
			return err
		}
		entries, err := matrix.Generate(table, req)
		if err != nil {
			return err
		}
		matrices[kind] = matrix.Filter(entries, minRuntime, maxRuntime)
	}
	doc := output.BuildDocument(matrices)

	if matrixJSONPath != "" {
		logging.Info("Matrix", "Writing JSON output to %s", matrixJSONPath)
		if err := output.WriteJSON(matrixJSONPath, doc); err != nil {
			return err
		}
	}

	githubOutput := matrixGitHubOutput
	if githubOutput == "" {
		githubOutput = os.Getenv("GITHUB_OUTPUT")
	}
	if githubOutput != "" {
		logging.Info("Matrix", "Writing GitHub output to %s", githubOutput)
		if err := output.AppendGitHubOutput(githubOutput, doc); err != nil {
			return err
		}
	}

	output.RenderReport(cmd.OutOrStdout(), doc)
	return nil
}

// parseBound parses an optional runtime-version bound flag.
func parseBound(raw, flagName string) (*version.Version, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := version.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", flagName, err)
	}
	return &v, nil
}
