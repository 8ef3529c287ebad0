// Package app wires the artisched subcommands (drop, calc, find-gain,
// fuzz, report, dump-ust) to the artifact/dp/config/report packages.
package app

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/zyr17/artifact-scheduler/internal/config"
	"github.com/zyr17/artifact-scheduler/internal/report"
	"github.com/zyr17/artifact-scheduler/pkg/artifact"
)

// Options holds the top-level flags parsed before subcommand dispatch.
type Options struct {
	Verbose bool
}

// ExitError carries a process exit code alongside the error that caused
// it, so RunWithOptions can distinguish "printed and exit 1" from
// "succeeded" without string-matching messages.
type ExitError struct {
	Code int
	Err  error
}

func (e ExitError) Error() string {
	if e.Err == nil {
		return "exit"
	}
	return e.Err.Error()
}

func (e ExitError) Unwrap() error { return e.Err }

func ExitWithError(code int, err error) error { return ExitError{Code: code, Err: err} }

func asExitError(err error) (ExitError, bool) {
	if err == nil {
		return ExitError{}, false
	}
	ee, ok := err.(ExitError)
	return ee, ok
}

// RunWithOptions runs the CLI and returns a process exit code, the same
// pattern the original CLI used for os.Exit.
func RunWithOptions(opts Options, args []string) int {
	err := run(opts, args)
	if err == nil {
		return 0
	}
	if ee, ok := asExitError(err); ok {
		if ee.Err != nil {
			fmt.Fprintln(os.Stderr, ee.Err)
		}
		return ee.Code
	}
	fmt.Fprintln(os.Stderr, err)
	return 1
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func run(opts Options, args []string) error {
	if len(args) == 0 {
		return ExitWithError(2, fmt.Errorf("usage: artisched <drop|calc|find-gain|fuzz|report|dump-ust> [flags]"))
	}

	logger, err := newLogger(opts.Verbose)
	if err != nil {
		return fmt.Errorf("app: building logger: %w", err)
	}
	defer logger.Sync()

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "drop":
		return runDrop(logger, rest)
	case "calc":
		return runCalc(logger, rest)
	case "find-gain":
		return runFindGain(logger, rest)
	case "fuzz":
		return runFuzz(logger, rest)
	case "report":
		return runReport(logger, rest)
	case "dump-ust":
		return runDumpUST(logger, rest)
	default:
		return ExitWithError(2, fmt.Errorf("app: unknown subcommand %q", cmd))
	}
}

func runDrop(logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("drop", flag.ContinueOnError)
	seed := fs.Int64("seed", 0, "rng seed; 0 uses the process-wide rng")
	u := fs.Float64("u", -1, "draw a specific uniform value in [0,1) instead of a random one")
	if err := fs.Parse(args); err != nil {
		return ExitWithError(2, err)
	}

	var a artifact.Artifact
	switch {
	case *u >= 0:
		a = artifact.GetDrop(*u)
	case *seed != 0:
		rng := artifact.NewRNG(*seed)
		one, err := artifact.RandomOneArtifact(rng, nil, nil, nil, nil)
		if err != nil {
			return fmt.Errorf("app: drop: %w", err)
		}
		a = one
	default:
		a = artifact.RandomDrop()
	}

	logger.Debug("drew artifact", zap.String("artifact", artifact.Format(a)))
	fmt.Println(artifact.Format(a))
	return nil
}

func runCalc(logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config with score_bar, df_cost, and scores")
	artifactText := fs.String("artifact", "", "artifact in its canonical text form")
	gain := fs.Float64("gain", 0, "hypothetical final utility gain")
	if err := fs.Parse(args); err != nil {
		return ExitWithError(2, err)
	}
	if *configPath == "" || *artifactText == "" {
		return ExitWithError(2, fmt.Errorf("app: calc requires -config and -artifact"))
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	scores, err := cfg.ScoreMap()
	if err != nil {
		return err
	}
	a, err := artifact.Parse(*artifactText)
	if err != nil {
		return fmt.Errorf("app: calc: %w", err)
	}

	res, err := artifact.CalcArtifact(a, scores, cfg.ScoreBar, *gain)
	if err != nil {
		return fmt.Errorf("app: calc: %w", err)
	}
	logger.Info("calc result",
		zap.Bool("upgrade", res.Upgrade),
		zap.Float64("expected_gain", res.ExpectedGain),
		zap.Float64("expected_cost", res.ExpectedCost),
		zap.Float64("success_prob", res.SuccessProb),
	)
	fmt.Printf("upgrade=%v expected_gain=%.4f expected_cost=%.4f success_prob=%.6f expected_excess=%.4f\n",
		res.Upgrade, res.ExpectedGain, res.ExpectedCost, res.SuccessProb, res.ExpectedExcess)
	return nil
}

func runFindGain(logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("find-gain", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config with score_bar, df_cost, and scores")
	maxGain := fs.Float64("max-gain", 2_000_000, "upper bracket bound for bisection")
	iterations := fs.Int("iterations", 60, "bisection iteration cap")
	tol := fs.Float64("tol", 1e-6, "bisection bracket width tolerance")
	setName := fs.String("set", "", "restrict the inversion to one set (default: every set)")
	if err := fs.Parse(args); err != nil {
		return ExitWithError(2, err)
	}
	if *configPath == "" {
		return ExitWithError(2, fmt.Errorf("app: find-gain requires -config"))
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	scores, err := cfg.ScoreMap()
	if err != nil {
		return err
	}
	set, err := parseSetFlag(*setName)
	if err != nil {
		return ExitWithError(2, err)
	}

	logger.Info("searching for gain", zap.Float64("target_cost", cfg.DfCost), zap.Float64("score_bar", cfg.ScoreBar), zap.String("set", *setName))
	gain, err := artifact.FindGain(scores, cfg.ScoreBar, cfg.DfCost, *maxGain, *iterations, *tol, set)
	if err != nil {
		return fmt.Errorf("app: find-gain: %w", err)
	}
	fmt.Printf("gain=%.6f\n", gain)
	return nil
}

func parseSetFlag(name string) (*artifact.SetKind, error) {
	if name == "" {
		return nil, nil
	}
	set, err := artifact.ParseSetKind(name)
	if err != nil {
		return nil, fmt.Errorf("app: -set: %w", err)
	}
	return &set, nil
}

func runFuzz(logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("fuzz", flag.ContinueOnError)
	count := fs.Int("count", 20, "number of random (scoring, score_bar) inputs to generate")
	seed := fs.Int64("seed", 1, "rng seed for input generation")
	maxGain := fs.Float64("max-gain", 2_000_000, "upper bracket bound for bisection")
	iterations := fs.Int("iterations", 60, "bisection iteration cap")
	tol := fs.Float64("tol", 1e-6, "bisection bracket width tolerance")
	setName := fs.String("set", "", "restrict the inversion to one set (default: every set)")
	out := fs.String("out", "fuzz_report.xlsx", "output xlsx path")
	if err := fs.Parse(args); err != nil {
		return ExitWithError(2, err)
	}
	if *count <= 0 {
		return ExitWithError(2, fmt.Errorf("app: fuzz requires -count > 0"))
	}
	set, err := parseSetFlag(*setName)
	if err != nil {
		return ExitWithError(2, err)
	}

	rng := artifact.NewRNG(*seed)
	reports := make([]artifact.GainReport, 0, *count)
	for i := 0; i < *count; i++ {
		in := artifact.GenerateRandomGainInput(rng)
		gain, err := artifact.FindGain(in.Scores, in.ScoreBar, in.DfCost, *maxGain, *iterations, *tol, set)
		if err != nil {
			return fmt.Errorf("app: fuzz: %w", err)
		}
		reports = append(reports, artifact.GainReport{ScoreBar: in.ScoreBar, TargetCost: in.DfCost, Gain: gain})
		logger.Debug("fuzz case", zap.Int("i", i), zap.Float64("score_bar", in.ScoreBar), zap.Float64("gain", gain))
	}

	logger.Info("exporting fuzz report", zap.String("path", *out), zap.Int("count", len(reports)))
	if err := report.ExportGainReportsXLSX(*out, reports); err != nil {
		return err
	}
	fmt.Println(*out)
	return nil
}

func runReport(logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	out := fs.String("out", "artifact_report.xlsx", "output xlsx path")
	if err := fs.Parse(args); err != nil {
		return ExitWithError(2, err)
	}
	logger.Info("exporting enumerator report", zap.String("path", *out))
	if err := report.ExportEnumeratorXLSX(*out); err != nil {
		return err
	}
	fmt.Println(*out)
	return nil
}

func runDumpUST(logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("dump-ust", flag.ContinueOnError)
	out := fs.String("out", "ust_dump.yaml", "output yaml path")
	if err := fs.Parse(args); err != nil {
		return ExitWithError(2, err)
	}
	logger.Info("dumping upgrade-state table", zap.String("path", *out))
	if err := report.DumpUST(*out); err != nil {
		return err
	}
	fmt.Println(*out)
	return nil
}
