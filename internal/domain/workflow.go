// Package domain orchestrates brace repair across files.
package domain

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/bracemend/internal/adapter"
	"github.com/mouse-blink/bracemend/internal/controller"
	"github.com/mouse-blink/bracemend/internal/domain/brace"
	m "github.com/mouse-blink/bracemend/internal/model"
)

// ErrNoFiles is returned when a watch resolves to no files.
var ErrNoFiles = errors.New("no files matched")

// SourceArgs selects files by path pattern.
type SourceArgs struct {
	Paths      []m.Path
	Extensions []string
}

// RepairArgs configures a batch repair.
type RepairArgs struct {
	SourceArgs
	// Jobs are explicit per-file instructions; they win over files found
	// through Paths.
	Jobs []m.Job
	// Strategy and Markers apply to files found through Paths.
	Strategy m.Strategy
	Markers  []string
	Threads  int
	DryRun   bool
	// Force writes repaired output even when it is still unbalanced.
	Force bool
}

// CheckArgs configures a read-only balance check.
type CheckArgs struct {
	SourceArgs
	Context int
	Threads int
}

// WatchArgs configures a continuous balance check.
type WatchArgs struct {
	SourceArgs
	Context int
}

// Workflow defines the operations exposed to the CLI.
type Workflow interface {
	Repair(ctx context.Context, args RepairArgs) error
	Check(ctx context.Context, args CheckArgs) error
	Watch(ctx context.Context, args WatchArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	watcher   adapter.Watcher
	ui        controller.UI
	repairer  Repairer
	log       *zap.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	watcher adapter.Watcher,
	ui controller.UI,
	repairer Repairer,
	log *zap.Logger,
) Workflow {
	if log == nil {
		log = zap.NewNop()
	}

	return &workflow{
		fsAdapter: fsAdapter,
		watcher:   watcher,
		ui:        ui,
		repairer:  repairer,
		log:       log,
	}
}

// Repair repairs every resolved file concurrently. A failing file never stops
// the others; the returned error summarizes failures after all files ran.
func (w *workflow) Repair(ctx context.Context, args RepairArgs) error {
	jobs, err := w.resolveJobs(args)
	if err != nil {
		return err
	}

	threads := normalizeThreads(args.Threads)
	w.log.Info("repair started",
		zap.Int("files", len(jobs)),
		zap.Int("threads", threads),
		zap.Bool("dry_run", args.DryRun),
		zap.Bool("force", args.Force),
	)

	results := make([]m.Result, len(jobs))

	var g errgroup.Group

	g.SetLimit(threads)

	for i, job := range jobs {
		g.Go(func() error {
			results[i] = w.repairFile(ctx, job, args)
			return nil
		})
	}

	_ = g.Wait()

	if err := w.ui.DisplayRepairResults(results); err != nil {
		return err
	}

	failed := 0

	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d file(s) not repaired", ErrIncomplete, failed, len(results))
	}

	return nil
}

func (w *workflow) repairFile(ctx context.Context, job m.Job, args RepairArgs) m.Result {
	log := w.log.With(zap.String("path", string(job.Path)), zap.String("strategy", string(job.Strategy)))

	if err := ctx.Err(); err != nil {
		return m.Result{Job: job, RemovedLine: -1, Err: err}
	}

	data, err := w.fsAdapter.ReadFile(job.Path)
	if err != nil {
		log.Warn("read failed", zap.Error(err))

		return m.Result{Job: job, RemovedLine: -1, Err: fmt.Errorf("read: %w", err)}
	}

	result := w.repairer.Repair(job, string(data))

	if errors.Is(result.Err, brace.ErrNoCorruptionFound) && result.Before.Balanced() {
		log.Debug("already balanced")

		result.Err = nil
		result.Output = string(data)
		result.After = result.Before

		return result
	}

	if result.Err != nil {
		log.Warn("repair failed", zap.Error(result.Err))

		return result
	}

	log.Debug("repair computed",
		zap.String("applied", string(result.Applied)),
		zap.Int("net_before", result.Before.NetBalance),
		zap.Int("net_after", result.After.NetBalance),
		zap.Int("removed_line", result.RemovedLine),
	)

	if !result.Changed {
		return result
	}

	if !result.Accepted() && !args.Force {
		result.Err = fmt.Errorf("%w: net balance %d after %s repair", ErrUnbalanced, result.After.NetBalance, result.Applied)
		log.Warn("repair rejected", zap.Int("net_after", result.After.NetBalance))

		return result
	}

	if args.DryRun {
		return result
	}

	if err := w.fsAdapter.WriteFile(job.Path, []byte(result.Output)); err != nil {
		result.Err = fmt.Errorf("write: %w", err)
		log.Error("write failed", zap.Error(err))

		return result
	}

	result.Written = true
	log.Info("file repaired", zap.Int("lines", result.After.LineCount))

	return result
}

// resolveJobs merges explicit jobs with files found through path patterns
// and returns them sorted by path.
func (w *workflow) resolveJobs(args RepairArgs) ([]m.Job, error) {
	if args.Strategy.NeedsMarkers() && len(args.Markers) == 0 && len(args.Paths) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingMarkers, args.Strategy)
	}

	byPath := make(map[m.Path]m.Job, len(args.Jobs))
	for _, job := range args.Jobs {
		byPath[job.Path] = job
	}

	if len(args.Paths) > 0 {
		paths, err := w.fsAdapter.Get(args.Paths, args.Extensions)
		if err != nil {
			return nil, fmt.Errorf("resolve paths: %w", err)
		}

		for _, path := range paths {
			if _, planned := byPath[path]; planned {
				continue
			}

			byPath[path] = m.Job{Path: path, Strategy: args.Strategy, Markers: args.Markers}
		}
	}

	jobs := make([]m.Job, 0, len(byPath))
	for _, job := range byPath {
		jobs = append(jobs, job)
	}

	slices.SortFunc(jobs, func(a, b m.Job) int {
		return strings.Compare(string(a.Path), string(b.Path))
	})

	return jobs, nil
}

// Check diagnoses every resolved file without writing anything.
func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	paths, err := w.fsAdapter.Get(args.Paths, args.Extensions)
	if err != nil {
		return fmt.Errorf("resolve paths: %w", err)
	}

	diags := w.diagnoseAll(ctx, paths, args.Context, args.Threads)

	if err := w.ui.DisplayDiagnoses(diags); err != nil {
		return err
	}

	unhealthy := 0

	for _, d := range diags {
		if !d.Healthy() {
			unhealthy++
		}
	}

	if unhealthy > 0 {
		return fmt.Errorf("%w: %d of %d file(s)", ErrUnbalanced, unhealthy, len(diags))
	}

	return nil
}

// Watch shows the current state of every resolved file, then re-diagnoses
// files as they change until ctx is cancelled. Nothing it displays blocks.
func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	paths, err := w.fsAdapter.Get(args.Paths, args.Extensions)
	if err != nil {
		return fmt.Errorf("resolve paths: %w", err)
	}

	if len(paths) == 0 {
		return ErrNoFiles
	}

	// DisplayDiagnoses may open the interactive pager and block.
	for _, diag := range w.diagnoseAll(ctx, paths, args.Context, 1) {
		w.ui.DisplayWatchEvent(diag)
	}

	w.log.Info("watching", zap.Int("files", len(paths)))

	return w.watcher.Watch(ctx, paths, func(path m.Path) {
		w.log.Debug("file changed", zap.String("path", string(path)))
		w.ui.DisplayWatchEvent(w.diagnose(ctx, path, args.Context))
	})
}

func (w *workflow) diagnoseAll(ctx context.Context, paths []m.Path, radius, threads int) []m.Diagnosis {
	diags := make([]m.Diagnosis, len(paths))

	var g errgroup.Group

	g.SetLimit(normalizeThreads(threads))

	for i, path := range paths {
		g.Go(func() error {
			diags[i] = w.diagnose(ctx, path, radius)
			return nil
		})
	}

	_ = g.Wait()

	return diags
}

func (w *workflow) diagnose(ctx context.Context, path m.Path, radius int) m.Diagnosis {
	if err := ctx.Err(); err != nil {
		return m.Diagnosis{Path: path, NegativeLine: -1, Err: err}
	}

	data, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		w.log.Warn("read failed", zap.String("path", string(path)), zap.Error(err))

		return m.Diagnosis{Path: path, NegativeLine: -1, Err: fmt.Errorf("read: %w", err)}
	}

	diag := brace.Diagnose(string(data), radius)
	diag.Path = path

	return diag
}

func normalizeThreads(threads int) int {
	if threads <= 0 {
		return 1
	}

	return threads
}
