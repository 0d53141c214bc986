package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/getzep/textparser/config"
	"github.com/getzep/textparser/pkg/analysis"
	"github.com/getzep/textparser/pkg/models"
	"github.com/getzep/textparser/pkg/nlp"
)

// selection holds the analysis flags given on the command line.
type selection struct {
	detectLanguage bool
	sentiment      bool
	lemmatize      bool
	alternatives   bool
	names          bool
}

// kinds returns the selected analyses. No flags selects none, which the
// request turns into all.
func (s selection) kinds() models.KindSet {
	var set models.KindSet
	if s.detectLanguage {
		set = set.With(models.LanguageDetection)
	}
	if s.sentiment {
		set = set.With(models.Sentiment)
	}
	if s.lemmatize {
		set = set.With(models.Lemmatization)
	}
	if s.alternatives {
		set = set.With(models.Associations)
	}
	if s.names {
		set = set.With(models.Entities)
	}
	return set
}

// run is the entrypoint for a textparser analysis
func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("error configuring textparser: %w", err)
	}

	config.SetLogLevel(cfg)

	out := cmd.OutOrStdout()
	if done, err := handleCLIOptions(out, cfg); done {
		return err
	}

	maxAlternatives, err := resolveMaxAlternatives(cmd, cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	svc, closeService, err := nlp.NewService(ctx, cfg)
	if err != nil {
		return fmt.Errorf("error creating nlp service: %w", err)
	}
	defer func() {
		if err := closeService(); err != nil {
			log.Errorf("Error closing nlp service: %v", err)
		}
	}()

	log.Debugf("Starting textparser version %s", config.VersionString)

	return analyze(ctx, svc, buildRequest(args, selected, maxAlternatives), out)
}

// handleCLIOptions handles CLI options that exit without analyzing text
func handleCLIOptions(out io.Writer, cfg *config.Config) (bool, error) {
	if showVersion {
		_, err := fmt.Fprintln(out, config.VersionString)
		return true, err
	}
	if dumpConfig {
		return true, writeConfig(out, cfg)
	}
	return false, nil
}

// writeConfig prints cfg as YAML. Secrets are excluded by their yaml tags.
func writeConfig(out io.Writer, cfg *config.Config) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}
	_, err = out.Write(b)
	return err
}

// resolveMaxAlternatives prefers an explicit --maximum-alternatives over the
// configured value.
func resolveMaxAlternatives(cmd *cobra.Command, cfg *config.Config) (int, error) {
	if !cmd.Flags().Changed("maximum-alternatives") {
		return cfg.Analysis.MaxAlternatives, nil
	}
	n, err := cmd.Flags().GetInt("maximum-alternatives")
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("--maximum-alternatives must be greater than 0, got %d", n)
	}
	return n, nil
}

func buildRequest(args []string, s selection, maxAlternatives int) *models.AnalysisRequest {
	return models.NewAnalysisRequest(args, s.kinds(), maxAlternatives)
}

func analyze(
	ctx context.Context,
	svc models.LinguisticService,
	req *models.AnalysisRequest,
	out io.Writer,
) error {
	report := analysis.NewOrchestrator(svc).Run(ctx, req)
	if _, err := report.WriteTo(out); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	return nil
}
