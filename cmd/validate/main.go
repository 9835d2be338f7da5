package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/config"
	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/export"
	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/logger"
	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/validate"
)

var errInvariantsViolated = errors.New("dataset violates generator invariants")

func main() {
	cfg := config.Load()

	path := cfg.OutputPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	log, err := logger.New(cfg.LoggerOptions("path", path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(2)
	}

	err = check(cfg, path, log)
	if err != nil {
		log.Error("validation failed", "error", err)
	}
	log.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func check(cfg config.Config, path string, log *logger.Logger) error {
	if export.FormatFromPath(path) != export.FormatCSV {
		return fmt.Errorf("%w: only csv files can be validated", export.ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	records, err := export.ReadCSV(bufio.NewReader(f))
	f.Close()
	if err != nil {
		return fmt.Errorf("parse dataset: %w", err)
	}

	report := validate.Check(records, validate.ExpectationFor(cfg.Params()))
	for _, v := range report.Violations {
		log.Error("invariant violated", "row", v.Row, "rule", v.Rule, "detail", v.Message)
	}
	log.Info("validation finished",
		"rows", report.Rows,
		"users", report.Users,
		"missing_cells", report.MissingCells,
		"steps_above_bound", report.StepsAboveBound,
		"violations", len(report.Violations),
	)
	if !report.OK() {
		return fmt.Errorf("%w: %d violations", errInvariantsViolated, len(report.Violations))
	}
	return nil
}
