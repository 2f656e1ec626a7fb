package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/swdee/go-posemap"
	"github.com/swdee/go-posemap/postprocess"
	"github.com/swdee/go-posemap/preprocess"
	"github.com/swdee/go-posemap/render"
	"github.com/swdee/go-posemap/store"
	"go.uber.org/zap"
	"gocv.io/x/gocv"
)

// Job describes one invocation of the Runner
type Job struct {
	// Input is an image file or a directory of images
	Input string
	// Output is the keypoint archive path for a single image, or the
	// directory to write keypoint archives to for a folder.  Empty writes
	// them beside each image.
	Output string
	// Scales are the scale factors the estimator evaluates
	Scales []float64
	// Visualize renders a preview image of the detected joints
	Visualize bool
	// FolderSuffix selects the images of a directory by name ending
	FolderSuffix string
}

// Params defines the Runner configuration
type Params struct {
	// Workers is the number of images processed concurrently, it is capped
	// by the number of estimators in the pool
	Workers int
	// ContinueOnError keeps processing the remaining images after an image
	// fails, the failures are returned together once the run completes
	ContinueOnError bool
	// Logger receives progress and warnings, defaults to a no-op logger
	Logger *zap.Logger
}

// DefaultParams returns sequential processing that stops at the first
// failure
func DefaultParams() Params {
	return Params{
		Workers:         1,
		ContinueOnError: false,
	}
}

// Stats summarizes a run
type Stats struct {
	Processed int
	Failed    int
	Grayscale int
	Duration  time.Duration
}

// Runner processes images through the estimator and writes the results
type Runner struct {
	params   Params
	pool     *posemap.Pool
	remapper *postprocess.Remapper
	writer   *store.Writer
	log      *zap.Logger
	// load decodes an image file, replaceable in tests
	load func(path string) (gocv.Mat, error)
}

// NewRunner returns a Runner drawing estimators from the pool
func NewRunner(pool *posemap.Pool, p Params) *Runner {

	log := p.Logger

	if log == nil {
		log = zap.NewNop()
	}

	if p.Workers < 1 {
		p.Workers = 1
	}

	return &Runner{
		params:   p,
		pool:     pool,
		remapper: postprocess.NewRemapper(postprocess.RemapDefaultParams()),
		writer:   store.NewWriter(),
		log:      log,
		load:     preprocess.Load,
	}
}

// Run resolves the job's input and processes every image.  The context is
// checked between images, a cancelled run returns the context's error.
func (r *Runner) Run(ctx context.Context, job Job) (Stats, error) {

	start := time.Now()
	stats := Stats{}

	if r.pool == nil || r.pool.Size() == 0 {
		return stats, ErrNoEstimator
	}

	files, folder, err := Resolve(job.Input, job.FolderSuffix)

	if err != nil {
		return stats, err
	}

	if folder {
		r.log.Info("Input is a folder, processing all images with suffix",
			zap.String("folder", job.Input), zap.String("suffix", job.FolderSuffix),
			zap.Int("images", len(files)))

		if job.Output != "" {
			// create if absent, an existing directory is not an error
			if err := os.MkdirAll(job.Output, 0755); err != nil {
				return stats, fmt.Errorf("%w: create output directory %s: %w",
					store.ErrPersistence, job.Output, err)
			}
		}
	}

	workers := r.params.Workers

	if workers > r.pool.Size() {
		workers = r.pool.Size()
	}

	if workers > len(files) {
		workers = len(files)
	}

	if workers <= 1 {
		err = r.runSequential(ctx, job, files, folder, &stats)
	} else {
		err = r.runParallel(ctx, job, files, folder, workers, &stats)
	}

	stats.Duration = time.Since(start)

	r.log.Info("Run complete", zap.Int("processed", stats.Processed),
		zap.Int("failed", stats.Failed), zap.Duration("duration", stats.Duration))

	return stats, err
}

// runSequential processes the images one after another
func (r *Runner) runSequential(ctx context.Context, job Job, files []string,
	folder bool, stats *Stats) error {

	est := r.pool.Get()
	defer r.pool.Return(est)

	var errs []error

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return errors.Join(append(errs, err)...)
		}

		gray, err := r.processImage(est, job, file, folder)

		if gray {
			stats.Grayscale++
		}

		if err != nil {
			stats.Failed++

			if !r.params.ContinueOnError {
				return err
			}

			r.log.Error("Image failed", zap.String("image", file), zap.Error(err))
			errs = append(errs, err)
			continue
		}

		stats.Processed++
	}

	return errors.Join(errs...)
}

// runParallel processes the images with a fixed number of workers, each
// holding its own estimator from the pool
func (r *Runner) runParallel(ctx context.Context, job Job, files []string,
	folder bool, workers int, stats *Stats) error {

	feedCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	paths := make(chan string)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			est := r.pool.Get()
			defer r.pool.Return(est)

			for file := range paths {
				gray, err := r.processImage(est, job, file, folder)

				mu.Lock()

				if gray {
					stats.Grayscale++
				}

				if err != nil {
					stats.Failed++
					errs = append(errs, err)

					if r.params.ContinueOnError {
						r.log.Error("Image failed", zap.String("image", file), zap.Error(err))
					} else {
						cancel()
					}
				} else {
					stats.Processed++
				}

				mu.Unlock()
			}
		}()
	}

feed:
	for _, file := range files {
		select {
		case <-feedCtx.Done():
			break feed
		case paths <- file:
		}
	}

	close(paths)
	wg.Wait()

	if err := ctx.Err(); err != nil && stats.Processed+stats.Failed < len(files) {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// processImage runs the full pipeline on one image and reports whether the
// image was grayscale
func (r *Runner) processImage(est posemap.Estimator, job Job, file string,
	folder bool) (grayscale bool, err error) {

	paths := OutputPathsFor(file, job.Output, folder, job.Visualize)

	r.log.Info("Predicting the pose", zap.String("image", file),
		zap.String("output", paths.Keypoints), zap.Float64s("scales", job.Scales))

	src, err := r.load(file)

	if err != nil {
		return false, &ImageError{Path: file, Stage: StageLoad, Err: err}
	}

	img, grayscale, err := preprocess.Ingest(src)
	src.Close()

	if err != nil {
		return false, &ImageError{Path: file, Stage: StageLoad, Err: err}
	}

	defer img.Close()

	if grayscale {
		r.log.Warn("The image is grayscale, this may deteriorate performance",
			zap.String("image", file))
	}

	pose, native, err := est.Estimate(img, job.Scales)

	if err != nil {
		return grayscale, &ImageError{Path: file, Stage: StageEstimate,
			Err: fmt.Errorf("%w: %w", ErrEstimator, err)}
	}

	if native.Height != img.Rows() || native.Width != img.Cols() {
		return grayscale, &ImageError{Path: file, Stage: StageEstimate,
			Err: fmt.Errorf("%w: heatmaps are %dx%d, image is %dx%d", ErrEstimator,
				native.Height, native.Width, img.Rows(), img.Cols())}
	}

	canonical, err := r.remapper.Remap(native)

	if err != nil {
		return grayscale, &ImageError{Path: file, Stage: StageRemap, Err: err}
	}

	bundle := store.Bundle{Heatmap: canonical, Image: img}

	if err := r.writer.Persist(pose, bundle, paths.Keypoints, paths.Bundle); err != nil {
		return grayscale, &ImageError{Path: file, Stage: StagePersist, Err: err}
	}

	if paths.Preview == "" {
		return grayscale, nil
	}

	preview, err := render.Preview(img, pose)

	if err != nil {
		return grayscale, &ImageError{Path: file, Stage: StageVisualize, Err: err}
	}

	defer preview.Close()

	if err := r.writer.Preview(paths.Preview, preview); err != nil {
		return grayscale, &ImageError{Path: file, Stage: StageVisualize, Err: err}
	}

	return grayscale, nil
}
