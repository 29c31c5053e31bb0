package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"stealth_reader/lang"
	"stealth_reader/library"
	"stealth_reader/settings"
	"stealth_reader/ui"
	"stealth_reader/utils"
)

var (
	rootFlag  string
	debugFlag bool
	paths     utils.Paths
	logCloser io.Closer
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "stealth_reader",
		Short:        "A low-profile terminal reader for plain-text novels",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			paths = utils.ResolveRoot(rootFlag)
			closer, err := utils.Main(paths, debugFlag)
			if err != nil {
				return err
			}
			logCloser = closer
			if !lang.SetLocale(lang.Locale(utils.AppConfig.UI.Locale)) {
				log.WithField("locale", utils.AppConfig.UI.Locale).Warn("unknown locale")
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logCloser != nil {
				logCloser.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := ui.RunApp(ui.Options{
				Store:         settings.NewStore(paths.SettingsFile()),
				BooksDir:      paths.BooksDir(),
				Extension:     utils.AppConfig.Library.Extension,
				AppConfigPath: paths.AppConfigFile(),
			})
			if err != nil {
				log.WithError(err).Error("program failed")
				return fmt.Errorf("error running program: %w", err)
			}
			log.Info("bye")
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "application root (default is $"+utils.RootEnv+" or $HOME/.config/stealth_reader)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "log at debug level")

	rootCmd.AddCommand(newBooksCmd())
	rootCmd.AddCommand(newProgressCmd())
	return rootCmd
}

func newBooksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "books",
		Short: "List books with their detected encoding and saved offset",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := settings.NewStore(paths.SettingsFile()).Load()
			dir := paths.BooksDir()
			books := library.Annotate(library.ListBooks(dir, utils.AppConfig.Library.Extension), s.Progress)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "BOOK\tENCODING\tOFFSET")
			for _, b := range books {
				offset := "-"
				if b.HasSaved {
					offset = fmt.Sprintf("%d", b.Offset)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", b.Name, library.DetectEncoding(b.Path), offset)
			}
			return w.Flush()
		},
	}
}

func newProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Print the saved reading offsets",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := settings.NewStore(paths.SettingsFile()).Load()
			out := cmd.OutOrStdout()
			if len(s.Progress) == 0 {
				fmt.Fprintln(out, "no progress saved")
				return nil
			}
			for _, name := range sortedKeys(s.Progress) {
				fmt.Fprintf(out, "%s\t%d\n", name, s.Progress[name])
			}
			return nil
		},
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
