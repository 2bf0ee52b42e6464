package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	m "routefinder.dev/pkg/routefinder/internal/model"
)

const sourceFilePattern = "**/*.dart"

var parallelFlag int

// lensCmd represents the lens command.
var lensCmd = newLensCmd()

func newLensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lens <file|dir>...",
		Short: "Show jump targets for route identifiers in source files",
		Long: `Scan source files for route identifiers (HomeRoute) and print, for each
one whose screen resolves, its position and the file it leads to.
Directories are searched recursively for .dart files.

` + rootsHelp,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			prepareLocator()

			files, err := expandSourceFiles(args)
			if err != nil {
				return err
			}

			lenses, err := collectLenses(ctx, files, viper.GetInt(lensParallelKey))
			if err != nil {
				return err
			}

			root, _ := locator.ProjectRoot()

			return ui.DisplayLenses(ctx, root, lenses)
		},
	}

	cmd.Flags().IntVarP(&parallelFlag, parallelFlagName, "p", defaultLensParallel, "number of files scanned concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), lensParallelKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(lensCmd)
}

// expandSourceFiles replaces directory arguments with the source files below them.
func expandSourceFiles(args []string) ([]m.Path, error) {
	var files []m.Path

	exclude := viper.GetStringSlice(manifestExcludeKey)

	for _, arg := range args {
		info, err := fsAdapter.FileInfo(m.Path(arg))
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}

		if !info.IsDir() {
			files = append(files, m.Path(arg))
			continue
		}

		found, err := fsAdapter.ListFilesMatching(m.Path(arg), sourceFilePattern, exclude, 0)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", arg, err)
		}

		files = append(files, found...)
	}

	return files, nil
}

// collectLenses scans files concurrently and returns their lenses in file order.
func collectLenses(ctx context.Context, files []m.Path, parallel int) ([]m.Lens, error) {
	if parallel < 1 {
		parallel = 1
	}

	perFile := make([][]m.Lens, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(parallel)

	for i, file := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			data, err := fsAdapter.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}

			perFile[i] = lensProvider.Lenses(file, string(data))

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	var lenses []m.Lens
	for _, fileLenses := range perFile {
		lenses = append(lenses, fileLenses...)
	}

	return lenses, nil
}
