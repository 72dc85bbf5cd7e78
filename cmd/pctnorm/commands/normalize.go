package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/pctnorm/internal/input"
	"github.com/jmylchreest/pctnorm/internal/logger"
	"github.com/jmylchreest/pctnorm/internal/output"
	"github.com/jmylchreest/pctnorm/pkg/cleaner"
)

func newNormalizeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize [value]",
		Short: "Normalize a single value",
		Long: `Normalize one percent or decimal value.

The value is taken from the argument, or read as one line from stdin after
a prompt. The result is written to stdout; the exit status is 1 when the
value cannot be normalized.

Examples:
  pctnorm normalize "12%"                 # 0.12
  pctnorm normalize "1,345,678,001,234"   # 1345678001234
  pctnorm normalize -- "-1"               # -1
  echo " 0.1 % " | pctnorm normalize -q   # 0.001`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runNormalize,
	}

	flags := cmd.Flags()
	flags.String("format", "text", "output format: text, json, yaml")
	flags.Bool("compact", false, "write JSON on a single line")
	flags.String("indent", "  ", "JSON indentation")
	flags.Bool("fold-width", false, "fold full-width digits and symbols (１２％) before cleaning")
	flags.String("prompt", input.DefaultPrompt, "prompt shown when reading from stdin")

	return cmd
}

func (a *app) runNormalize(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(a.cfg.Format)
	if err != nil {
		return err
	}
	w, err := output.NewWriter(cmd.OutOrStdout(), format,
		output.WithPretty(!a.cfg.Compact),
		output.WithIndent(a.cfg.Indent),
	)
	if err != nil {
		return err
	}

	var collector input.Collector
	if len(args) == 1 {
		collector = input.NewStaticCollector(args[0])
	} else {
		promptOut := cmd.ErrOrStderr()
		if a.cfg.Quiet {
			promptOut = nil
		}
		collector = input.NewLineCollector(cmd.InOrStdin(), promptOut, a.cfg.Prompt)
	}

	raw, err := collector.Collect()
	if errors.Is(err, io.EOF) {
		return errors.New("no value to normalize")
	}
	if err != nil {
		return err
	}

	if !a.cfg.FoldWidth {
		if folded, _ := cleaner.NewWidth().Clean(raw); folded != raw {
			logger.Warn("input contains full-width or compatibility characters, use --fold-width to normalize them",
				"input", raw,
			)
		}
	}

	n := a.normalizer()
	result := n.Normalize(raw)
	logger.Debug("normalized value",
		"input", raw,
		"cleaner", n.Name(),
		"success", result.Success(),
	)

	if err := w.Write(result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	if !result.Success() {
		logger.Error("normalization failed",
			"input", raw,
			"kind", result.Kind().String(),
			"error", result.Err,
		)
		return errNormalizationFailed
	}
	return nil
}
