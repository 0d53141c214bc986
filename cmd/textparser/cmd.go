package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/getzep/textparser/config"
	"github.com/getzep/textparser/internal"
)

var log = internal.GetLogger()

var (
	cfgFile     string
	showVersion bool
	dumpConfig  bool

	selected            selection
	maximumAlternatives int
)

var cmd = &cobra.Command{
	Use:   "textparser [flags] <text>...",
	Short: "Analyzes input text using a range of natural language approaches.",
	Long: `Analyzes input text using a range of natural language approaches.

The words given as arguments are joined with single spaces and analyzed.
Without analysis flags every analysis runs.`,
	Example: `textparser -n "Tim Cook runs Apple in Cupertino"
textparser -a --maximum-alternatives 3 dog`,
	Args: validateArgs,
	RunE: run,
}

var dumpJsonSchemaCmd = &cobra.Command{
	Use:     "json-schema",
	Short:   "Generates JSON Schema for textparser's configuration file",
	Example: "textparser json-schema > textparser_config_schema.json",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := config.JSONSchema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(schema))
		return nil
	},
}

func init() {
	cmd.AddCommand(dumpJsonSchemaCmd)

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default config.yaml)")
	cmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "print version number")
	cmd.PersistentFlags().BoolVar(&dumpConfig, "dump-config", false, "dump config")

	flags := cmd.Flags()
	flags.BoolVarP(&selected.detectLanguage, "detect-language", "d", false,
		"detect the dominant language of the text")
	flags.BoolVarP(&selected.sentiment, "sentiment-analysis", "s", false,
		"score the sentiment of the text")
	flags.BoolVarP(&selected.lemmatize, "to-lemmatize", "t", false,
		"print the stem form of every word")
	flags.BoolVarP(&selected.alternatives, "alternatives", "a", false,
		"print words associated with every stem form")
	flags.BoolVarP(&selected.names, "names", "n", false,
		"print the people, places and organizations named in the text")
	flags.IntVar(&maximumAlternatives, "maximum-alternatives", config.DefaultMaxAlternatives,
		"maximum number of alternatives printed per word (default from config)")
}

// validateArgs requires text unless an option that exits early is set.
func validateArgs(cmd *cobra.Command, args []string) error {
	if showVersion || dumpConfig {
		return nil
	}
	return cobra.MinimumNArgs(1)(cmd, args)
}

// Execute executes the root cobra command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := cmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
