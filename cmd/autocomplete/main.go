package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	trie "github.com/sarthakjha889/go-autocomplete-dictionary"
)

var (
	// BuildVersion is the autocomplete build version
	BuildVersion string
)

const defaultDictionary = "dictionary.txt"

func main() {
	cmd := newRootCommand(afero.NewOsFs())
	cobra.CheckErr(cmd.Execute())
}

// app holds what every subcommand needs once flags are parsed.
type app struct {
	fs     afero.Fs
	config *viper.Viper
	log    logr.Logger
}

func newRootCommand(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs, config: viper.New(), log: logr.Discard()}
	a.config.SetFs(fs)
	a.config.SetEnvPrefix("AUTOCOMPLETE")
	a.config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.config.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "autocomplete",
		Short:         "Look up and complete words from a dictionary",
		Version:       BuildVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Config file to read settings from.")
	rootCmd.PersistentFlags().String("dictionary", defaultDictionary, "Dictionary file with one word per line.")
	rootCmd.PersistentFlags().Bool("normalise", false, "Ignore diacritics when storing and looking up words.")
	rootCmd.PersistentFlags().Bool("allow-empty", false, "Start with an empty dictionary when the dictionary file does not exist.")
	rootCmd.PersistentFlags().Int("verbosity", 0, "Log verbosity written to stderr.")
	bindFlags(a.config, rootCmd.PersistentFlags())

	rootCmd.AddCommand(buildCompleteCmd(a))
	rootCmd.AddCommand(buildContainsCmd(a))
	rootCmd.AddCommand(buildCountCmd(a))
	rootCmd.AddCommand(buildAddCmd(a))

	return rootCmd
}

func bindFlags(config *viper.Viper, flags *pflag.FlagSet) {
	cobra.CheckErr(config.BindPFlags(flags))
}

func (a *app) init(cmd *cobra.Command) error {
	if path := a.config.GetString("config"); path != "" {
		a.config.SetConfigFile(path)
		if err := a.config.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %q: %w", path, err)
		}
	}
	stderr := cmd.ErrOrStderr()
	a.log = funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintln(stderr, prefix, args)
			return
		}
		fmt.Fprintln(stderr, args)
	}, funcr.Options{Verbosity: a.config.GetInt("verbosity")})
	return nil
}

// dictionary loads the configured dictionary file.
func (a *app) dictionary() (*trie.Trie, error) {
	t := trie.New()
	if a.config.GetBool("normalise") {
		t.WithNormalisation()
	}
	path := a.config.GetString("dictionary")
	_, err := t.LoadFile(a.fs, path, trie.WithLogger(a.log.WithName("dictionary")))
	if err != nil {
		if a.config.GetBool("allow-empty") && errors.Is(err, os.ErrNotExist) {
			a.log.Info("dictionary not found, starting empty", "path", path)
			return t, nil
		}
		return nil, err
	}
	return t, nil
}

var completeExamples = `
  # Print up to ten words starting with "hel"
  autocomplete complete hel

  # Print the first three completions using another dictionary
  autocomplete complete hel --max=3 --dictionary=/usr/share/dict/words
`

func buildCompleteCmd(a *app) *cobra.Command {
	complete := &cobra.Command{
		Use:     "complete PREFIX",
		Short:   "Print words starting with a prefix",
		Long:    "Print words starting with PREFIX, shortest first, at most --max of them",
		Example: strings.Trim(completeExamples, "\n"),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.dictionary()
			if err != nil {
				return err
			}
			for _, word := range t.Complete(args[0], a.config.GetInt("max")) {
				fmt.Fprintln(cmd.OutOrStdout(), word)
			}
			return nil
		},
	}
	complete.Flags().Int("max", 10, "The maximum number of completions to print.")
	bindFlags(a.config, complete.Flags())
	return complete
}

func buildContainsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contains WORD",
		Short: "Print whether a word is in the dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.dictionary()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Contains(args[0]))
			return nil
		},
	}
}

func buildCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of words in the dictionary",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.dictionary()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Len())
			return nil
		},
	}
}

func buildAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add WORD...",
		Short: "Check which words would be new to the dictionary",
		Long:  "Insert words into the loaded dictionary and print whether each was added or already present. The dictionary file is not modified.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.dictionary()
			if err != nil {
				return err
			}
			for _, word := range args {
				added, err := t.Insert(word)
				if err != nil {
					return fmt.Errorf("adding %q: %w", word, err)
				}
				result := "duplicate"
				if added {
					result = "added"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", word, result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Len())
			return nil
		},
	}
}
