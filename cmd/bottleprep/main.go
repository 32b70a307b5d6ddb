// Command bottleprep cleans a raw bottle CSV into a model-ready table.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/marinelab/bottleprep"
	"github.com/marinelab/bottleprep/internal/version"
)

func customUsage() {
	fmt.Fprintf(os.Stderr, "bottleprep (version %s)\n\n", version.Version)
	fmt.Fprintf(os.Stderr, "Usage: bottleprep --input bottle.csv [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	fmt.Fprintf(os.Stderr, "  --input FILE\n\t\tRaw bottle CSV to clean (required)\n")
	fmt.Fprintf(os.Stderr, "  --output FILE\n\t\tWrite the prepared table to FILE\n")
	fmt.Fprintf(os.Stderr, "  --config FILE\n\t\tLoad options from a YAML or JSON file\n")
	fmt.Fprintf(os.Stderr, "  --threshold N\n\t\tDrop columns above N%% missing (default: 70)\n")
	fmt.Fprintf(os.Stderr, "  --num-strategy S\n\t\tNumeric imputation: mean, median or constant (default: mean)\n")
	fmt.Fprintf(os.Stderr, "  --cat-strategy S\n\t\tCategorical imputation: most_frequent (default)\n")
	fmt.Fprintf(os.Stderr, "  --fill-value N\n\t\tConstant used when --num-strategy=constant (default: -999)\n")
	fmt.Fprintf(os.Stderr, "  --scaling S\n\t\tNumeric scaling: standard or normal (default: standard)\n")
	fmt.Fprintf(os.Stderr, "  --verbose\n\t\tEnable debug logging\n")
	fmt.Fprintf(os.Stderr, "  -v, --version\n\t\tPrint version information and exit\n")
	fmt.Fprintf(os.Stderr, "  -h, --help\n\t\tShow this help message and exit\n")
}

func main() {
	versionFlag := flag.Bool("v", false, "Print version and exit")
	flag.BoolVar(versionFlag, "version", false, "Print version and exit") // alias
	inputFlag := flag.String("input", "", "Raw bottle CSV to clean")
	outputFlag := flag.String("output", "", "Destination for the prepared table")
	configFlag := flag.String("config", "", "Options file (YAML or JSON)")
	thresholdFlag := flag.Float64("threshold", 0, "Missing-percentage cutoff")
	numStrategyFlag := flag.String("num-strategy", "", "Numeric imputation strategy")
	catStrategyFlag := flag.String("cat-strategy", "", "Categorical imputation strategy")
	fillValueFlag := flag.Float64("fill-value", 0, "Constant fill value")
	scalingFlag := flag.String("scaling", "", "Numeric scaling mode")
	verboseFlag := flag.Bool("verbose", false, "Enable debug logging")

	//nolint:reassign // Standard Go pattern for customizing flag usage message
	flag.Usage = customUsage

	flag.Parse()

	if *versionFlag {
		fmt.Print(version.Info().String())
		return
	}

	logLevel := slog.LevelInfo
	if *verboseFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	if *inputFlag == "" {
		flag.Usage()
		os.Exit(1)
	}

	opts, err := buildOptions(*configFlag)
	if err != nil {
		logger.Error("loading options", "error", err)
		os.Exit(1)
	}

	// Flags set on the command line override config file and environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "threshold":
			opts.DropThreshold = *thresholdFlag
		case "num-strategy":
			opts.NumStrategy = *numStrategyFlag
		case "cat-strategy":
			opts.CatStrategy = *catStrategyFlag
		case "fill-value":
			opts.FillValue = fillValueFlag
		case "scaling":
			opts.Scaling = *scalingFlag
		case "output":
			opts.OutputFile = *outputFlag
		}
	})

	if err := run(logger, *inputFlag, opts); err != nil {
		logger.Error("preprocessing failed", "error", err)
		os.Exit(1)
	}
}

func buildOptions(configPath string) (bottleprep.Options, error) {
	if configPath != "" {
		return bottleprep.LoadOptions(configPath)
	}
	return bottleprep.OptionsFromEnv(), nil
}

func run(logger *slog.Logger, input string, opts bottleprep.Options) error {
	mem := memory.NewGoAllocator()

	logger.Debug("reading bottle file", "path", input)
	raw, err := bottleprep.ReadBottleFile(input, mem)
	if err != nil {
		return err
	}
	defer raw.Release()

	logger.Info("loaded bottle file",
		"rows", raw.Len(),
		"columns", raw.Width(),
		"null_cells", raw.TotalNulls(),
		"fingerprint", fmt.Sprintf("%016x", raw.Fingerprint()))

	result, err := bottleprep.Preprocess(raw, opts)
	if err != nil {
		return err
	}
	defer result.Frame.Release()

	logger.Info("prepared table",
		"rows", result.Frame.Len(),
		"columns", result.Frame.Width(),
		"dropped_columns", result.DroppedCols,
		"dropped_rows", result.DroppedRows,
		"continuous", len(result.NumAttributes),
		"categorical", len(result.CatAttributes),
		"fingerprint", fmt.Sprintf("%016x", result.Frame.Fingerprint()))
	logger.Debug("continuous attributes", "columns", result.NumAttributes)
	logger.Debug("categorical attributes", "columns", result.CatAttributes)

	if opts.OutputFile != "" {
		if err := result.Frame.WriteFile(opts.OutputFile); err != nil {
			return err
		}
		logger.Info("wrote prepared table", "path", opts.OutputFile)
	}

	return nil
}
