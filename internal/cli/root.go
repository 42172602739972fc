package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"cosimgen/pkg/cosimgen"
)

const (
	appName    = "cosimgen"
	appVersion = "0.1.0"

	defaultTraceFile = "/tmp/cosimgen-rng.trace"
)

// onExit runs fn when main leaves through atexit.Exit.
var onExit = func(fn func()) { atexit.Register(fn) }

// openTrace creates the rng trace file. Its close is registered with atexit so
// the trace is finalized on every exit path, including errors after generation.
func openTrace(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open rng trace: %w", err)
	}
	onExit(func() {
		if err := f.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			slog.Error("close rng trace", "path", path, "err", err)
		}
	})
	return f, nil
}

func NewRootCmd() *cobra.Command {
	opts := cosimgen.Defaults()
	opts.GeneratorName = appName
	seedSet := false
	showVersion := false
	verbose := false
	traceRNG := false
	traceFile := defaultTraceFile

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Random multi-strand vector ISA program generator for co-simulation",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected arguments: %v", args)
			}

			if showVersion {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, appVersion)
				return err
			}

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			if opts.DumpDistributions {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), cosimgen.DistributionTable())
				return err
			}

			if !seedSet {
				opts.Seed = uint64(time.Now().UnixNano())
				slog.Info("no seed given, using time", "seed", opts.Seed)
			}

			if traceRNG {
				f, err := openTrace(traceFile)
				if err != nil {
					return err
				}
				opts.Trace = f
			}

			res, err := cosimgen.Generate(opts)
			if err != nil {
				return err
			}
			slog.Info("program generated",
				"seed", opts.Seed,
				"instructions", opts.Instructions,
				"bytes", len(res.Program))

			if opts.Stats {
				if _, err := fmt.Fprintln(cmd.ErrOrStderr(), res.Stats.Table()); err != nil {
					return err
				}
			}

			if opts.OutputPath == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), res.Program)
				return err
			}
			return os.WriteFile(opts.OutputPath, []byte(res.Program), 0o644)
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.Flags().BoolVarP(&showVersion, "version", "v", false, "print version")
	cmd.Flags().Uint64VarP(&opts.Seed, "seed", "s", 0, "seed for deterministic generation")
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "write generated assembly to file")
	cmd.Flags().IntVarP(&opts.Instructions, "instructions", "n", opts.Instructions, "instructions per strand body")
	cmd.Flags().StringVar(&opts.GeneratorName, "name", opts.GeneratorName, "generator name written in the header comment")
	cmd.Flags().BoolVar(&opts.Stats, "stats", opts.Stats, "print a generation summary to stderr")
	cmd.Flags().BoolVar(&opts.DumpDistributions, "dump-distributions", opts.DumpDistributions, "print the decision tables and exit")
	cmd.Flags().BoolVar(&traceRNG, "trace-rng", false, "record every random draw")
	cmd.Flags().StringVar(&traceFile, "trace-file", traceFile, "rng trace destination (implies --trace-rng)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	_ = cmd.MarkFlagFilename("output", "s", "S")

	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		seedSet = cmd.Flags().Changed("seed")
		if cmd.Flags().Changed("trace-file") {
			traceRNG = true
		}
	}

	return cmd
}
