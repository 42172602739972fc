package cosimgen

import "log/slog"

// Result is one generated program plus what went into it.
type Result struct {
	Program string
	Stats   *Stats
}

type programGenerator interface {
	goGenerator() (Result, error)
}

func createProgramGenerator(opts Options) programGenerator {
	return newDefaultProgramGenerator(opts)
}

// Generate validates opts and produces a complete assembly source file. The
// output is a pure function of opts.Seed and opts.Instructions.
func Generate(opts Options) (Result, error) {
	opts = opts.normalize()
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	res, err := createProgramGenerator(opts).goGenerator()
	if err != nil {
		return Result{}, err
	}
	slog.Debug("program generated",
		"seed", opts.Seed,
		"instructions", opts.Instructions,
		"strands", res.Stats.Strands,
		"data_words", res.Stats.DataWords,
		"bytes", len(res.Program))
	return res, nil
}
