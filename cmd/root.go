// Package cmd provides the root command and CLI setup for routefinder.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"routefinder.dev/pkg/routefinder/internal/adapter"
	"routefinder.dev/pkg/routefinder/internal/controller"
	"routefinder.dev/pkg/routefinder/internal/domain"
	m "routefinder.dev/pkg/routefinder/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var locator domain.Locator
var resolver domain.Resolver
var lensProvider domain.LensProvider
var naming domain.Naming
var ui controller.UI

// rootFlags is a root-level flag listing project roots; the first one wins.
var rootFlags []string

// formatFlag selects text, json or yaml output.
var formatFlag string

// verboseFlag switches logging to debug level.
var verboseFlag bool

// fallbackFlag enables the name-similarity fallback passes.
var fallbackFlag bool

// indexFlag controls the upfront manifest index before a lookup.
var indexFlag bool

func init() {
	configureRootFlags(rootCmd)

	fsAdapter = adapter.NewLocalSourceFSAdapter()
}

const rootLongDescription = `routefinder resolves auto_route route identifiers (HomeRoute) to the file
that defines the matching widget (HomeScreen) by reading the import
declarations of the generated routes manifest (routes.gr.dart).

` + rootsHelp

const rootsHelp = `The project root is taken from --root (or project.roots in routefinder.yaml);
when none is configured it is discovered from the working directory by
looking for pubspec.yaml, then for the enclosing git worktree.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "routefinder",
		Short:         "Jump from auto_route routes to their screens",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&rootFlags, rootFlagName, "r", nil, "project root (can be repeated; the first one is used)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(rootFlagName), rootConfigKey)

	cmd.PersistentFlags().StringVarP(&formatFlag, formatFlagName, "f", defaultFormat, "output format: text, json or yaml")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), formatConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().BoolVar(&fallbackFlag, fallbackFlagName, defaultFallback, "try name-similarity heuristics when no import contains the entity name")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(fallbackFlagName), fallbackConfigKey)

	cmd.PersistentFlags().BoolVar(&indexFlag, indexFlagName, defaultIndex, "index every manifest in the project before resolving")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(indexFlagName), manifestIndexKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// setup wires the logger, UI and domain services for the executing command.
func setup(cmd *cobra.Command) error {
	configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

	if configReadErr != nil {
		slog.Warn("ignoring unreadable config file", "file", configFileName, "error", configReadErr)
	}

	format, err := controller.ParseFormat(viper.GetString(formatConfigKey))
	if err != nil {
		return err
	}

	ui = controller.NewUI(cmd, format, format == controller.FormatText && controller.IsTTY(os.Stdout))

	naming = namingFromConfig()
	locator = domain.NewLocator(resolveWorkspace(), fsAdapter, locatorConfigFromConfig())
	resolver = domain.NewResolver(locator, fsAdapter,
		domain.WithNaming(naming),
		domain.WithFallbackHeuristics(viper.GetBool(fallbackConfigKey)),
	)
	lensProvider = domain.NewLensProvider(resolver, naming)

	return nil
}

// resolveWorkspace returns the configured project roots, or the root
// discovered from the working directory. An empty workspace is valid.
func resolveWorkspace() adapter.StaticWorkspace {
	configured := viper.GetStringSlice(rootConfigKey)
	if len(configured) > 0 {
		roots := make([]string, 0, len(configured))
		for _, root := range configured {
			abs, err := filepath.Abs(root)
			if err != nil {
				slog.Warn("ignoring project root", "root", root, "error", err)
				continue
			}

			roots = append(roots, abs)
		}

		return adapter.NewStaticWorkspace(roots...)
	}

	cwd, err := os.Getwd()
	if err != nil {
		slog.Warn("cannot determine working directory", "error", err)
		return adapter.NewStaticWorkspace()
	}

	root, err := fsAdapter.FindProjectRoot(m.Path(cwd))
	if err != nil {
		slog.Debug("no project root discovered", "cwd", cwd, "error", err)
		return adapter.NewStaticWorkspace()
	}

	return adapter.NewStaticWorkspace(string(root))
}

// prepareLocator locates every manifest upfront when indexing is enabled.
// Otherwise lookups only read the primary manifest.
func prepareLocator() {
	if viper.GetBool(manifestIndexKey) {
		locator.LocateManifests()
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
