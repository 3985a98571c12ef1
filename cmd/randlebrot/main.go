package main

import (
	"os"

	randlebrot "github.com/rjh-mopjones/randlebrot"
	"github.com/rjh-mopjones/randlebrot/various"
	"github.com/spf13/cobra"
)

func main() {
	var prof profiler
	var quiet bool

	rootCmd := &cobra.Command{
		Use:   "randlebrot",
		Short: "Procedural tidally locked world generator",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			various.Verbose = !quiet
			return prof.start()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return prof.stop()
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&prof.cpu, "cpuprofile", "", "write cpu profile to file")
	rootCmd.PersistentFlags().StringVar(&prof.mem, "memprofile", "", "write memory profile to this file")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "do not log the stage timings")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(layersCmd())
	rootCmd.AddCommand(infoCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a world with its civilization and save it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.widthSet = cmd.Flags().Changed("width")
			opts.heightSet = cmd.Flags().Changed("height")
			opts.maxSet = cmd.Flags().Changed("max-settlements")
			_, err := runGenerate(opts)
			return err
		},
	}

	cmd.Flags().Int64Var(&opts.seed, "seed", 42, "the world seed")
	cmd.Flags().IntVar(&opts.width, "width", 1024, "map width in cells")
	cmd.Flags().IntVar(&opts.height, "height", 512, "map height in cells")
	cmd.Flags().IntVar(&opts.maxSettlements, "max-settlements", 50, "upper bound of placed settlements")
	cmd.Flags().StringVar(&opts.name, "name", "New World", "name of the world")
	cmd.Flags().StringVarP(&opts.out, "out", "o", randlebrot.DefaultWorldDir, "directory to save the world to")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "YAML config file")
	return cmd
}

func layersCmd() *cobra.Command {
	var opts layersOptions

	cmd := &cobra.Command{
		Use:   "layers",
		Short: "Render the terrain layers to PNG files",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := runLayers(opts)
			return err
		},
	}

	cmd.Flags().Int64Var(&opts.seed, "seed", 42, "the world seed")
	cmd.Flags().IntVar(&opts.width, "width", 1024, "map width in cells")
	cmd.Flags().IntVar(&opts.height, "height", 512, "map height in cells")
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "layers", "output directory")
	cmd.Flags().StringSliceVarP(&opts.layers, "layer", "l", nil, "layers to render (default all)")
	cmd.Flags().BoolVar(&opts.territory, "territory", false, "also generate the civilization and render its territory")
	return cmd
}

func infoCmd() *cobra.Command {
	var describe bool

	cmd := &cobra.Command{
		Use:   "info [world-file]",
		Short: "Print statistics about a saved world",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.OutOrStdout(), args[0], describe)
		},
	}

	cmd.Flags().BoolVar(&describe, "describe", false, "print a description of every settlement")
	return cmd
}
