package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mathslate/exacteval"
)

var (
	decimal bool
	radians bool
	prec    uint
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "exactcalc [expression...]",
	Short: "Evaluate math expressions exactly or in decimal",
	Long: `exactcalc evaluates typed math expressions.

By default results are exact: rationals stay rational and square roots
simplify to surds, so "1/3+1/3+1/3" prints 1 and "sqrt(8)" prints 2*√2.
Expressions with no exact closed form are kept symbolic. With --decimal,
expressions evaluate with floating-point semantics instead.

Expressions are read from the arguments, or from stdin one per line when
no arguments are given.`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.Flags().BoolVar(&decimal, "decimal", false, "evaluate with floating-point semantics")
	rootCmd.Flags().BoolVar(&radians, "radians", false, "treat trig operands as radians")
	rootCmd.Flags().UintVar(&prec, "prec", 64, "decimal-mode precision in bits")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log parse details")
}

func run(cmd *cobra.Command, args []string) error {
	mode := exacteval.Exact
	if decimal {
		mode = exacteval.Decimal
	}
	unit := exacteval.Degrees
	if radians {
		unit = exacteval.Radians
	}
	if len(args) > 0 {
		for _, src := range args {
			if err := evalOne(src, mode, unit); err != nil {
				return err
			}
		}
		return nil
	}
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		if err := evalOne(line, mode, unit); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	return sc.Err()
}

func evalOne(src string, mode exacteval.Mode, unit exacteval.AngleUnit) error {
	if verbose {
		if e, err := exacteval.Parse(src); err == nil {
			logger.Debug("parsed expression",
				zap.String("input", src),
				zap.String("postfix", e.String()),
				zap.Stringer("mode", mode),
				zap.Stringer("angle", unit))
		}
	}
	out, err := exacteval.Evaluate(src, mode, unit, exacteval.Prec(prec))
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}
	fmt.Println(out)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
