package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/liznear/fabric-overlap/canvas"
	"github.com/liznear/fabric-overlap/model"
	"github.com/liznear/fabric-overlap/utils"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

func run(opts options, stdin io.Reader, out io.Writer, logger *zap.Logger) error {
	c := canvas.New(canvas.WithLogger(logger))
	return utils.Run(
		utils.ToRunnable1(validateFormat, opts.Format),
		func() error { return ingest(c, opts, stdin, logger) },
		func() error { return writeReport(out, opts.Format, c.Report()) },
	)
}

func validateFormat(format string) error {
	switch format {
	case formatText, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown format %q, want %q or %q", format, formatText, formatYAML)
}

// ingest parses every line of the input and puts the claims on c.
//
// It stops at the first malformed line, unless opts.KeepGoing is set. In that
// case, all malformed lines are reported together once the input is consumed.
func ingest(c *canvas.Canvas, opts options, stdin io.Reader, logger *zap.Logger) error {
	r, closeInput, err := openInput(opts.Input, stdin)
	if err != nil {
		return err
	}
	defer closeInput()

	var errs error
	err = utils.ScanLines(r, func(lineNo int, line string) error {
		claim, err := model.Parse(line)
		if err != nil {
			err = fmt.Errorf("line %d: %w", lineNo, err)
			if !opts.KeepGoing {
				return err
			}
			logger.Warn("Skip malformed claim", zap.Int("line", lineNo), zap.Error(err))
			errs = multierr.Append(errs, err)
			return nil
		}
		return c.Ingest(claim)
	})
	if err != nil {
		return fmt.Errorf("fail to ingest %q: %w", opts.Input, err)
	}
	if errs != nil {
		return fmt.Errorf("%d malformed claims in %q: %w", len(multierr.Errors(errs)), opts.Input, errs)
	}
	logger.Debug("Ingest done", zap.String("input", opts.Input), zap.Int("claims", c.ClaimCount()))
	return nil
}

func openInput(name string, stdin io.Reader) (io.Reader, func(), error) {
	if name == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("fail to open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func writeReport(w io.Writer, format string, report canvas.Report) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("fail to encode report: %w", err)
		}
		return enc.Close()
	}
	_, err := fmt.Fprintln(w, report.String())
	return err
}
