package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/swdee/go-posemap"
	"github.com/swdee/go-posemap/config"
	"github.com/swdee/go-posemap/dnn"
	"github.com/swdee/go-posemap/internal/logger"
	"github.com/swdee/go-posemap/pipeline"
	"go.uber.org/zap"
)

func newPredictCmd() *cobra.Command {

	var configFile string

	cmd := &cobra.Command{
		Use:   "predict IMAGE_NAME",
		Short: "Predict the pose of an image or a folder of images",
		Long: `Load an image file, predict the pose and write it out.

IMAGE_NAME may be an image or a directory, for which all images ending with
--folder-image-suffix are processed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			cfg, err := config.Load(configFile, cmd.Flags())

			if err != nil {
				return err
			}

			return predict(cmd.Context(), cfg, args[0])
		},
	}

	defaults := config.Defaults()

	fs := cmd.Flags()
	fs.StringVar(&configFile, "config", "", "YAML configuration file")
	fs.String("out-name", "", "The result location to use. By default, use IMAGE_NAME_pose.npz")
	fs.String("scales", defaults["scales"].(string), "The scales to use, comma-separated. The most confident will be stored")
	fs.Bool("visualize", true, "Whether to create a visualization of the pose")
	fs.String("folder-image-suffix", defaults["folder-image-suffix"].(string), "The ending of the images to read if a folder is specified")
	fs.Bool("use-cpu", false, "Use CPU instead of GPU for predictions")
	fs.Int("gpu", 0, "GPU device id")
	fs.String("cpu-cores", "", "Pin the process to the given CPU cores, eg: 4,5,6,7")
	fs.String("prototxt", defaults["prototxt"].(string), "Caffe network definition file")
	fs.String("weights", defaults["weights"].(string), "Caffe model weights file")
	fs.String("output-layer", defaults["output-layer"].(string), "Name of the heatmap output blob")
	fs.Int("workers", 1, "Number of images to process concurrently, each loads its own model")
	fs.Bool("continue-on-error", false, "Keep processing the remaining images after an image fails")
	fs.Bool("debug", false, "Enable debug logging")

	return cmd
}

// predict applies the backend selection once and runs the pipeline
func predict(ctx context.Context, cfg *config.Config, input string) error {

	log, err := logger.New(cfg.Debug)

	if err != nil {
		return fmt.Errorf("error creating logger: %w", err)
	}

	defer log.Sync()

	scales, err := config.ParseScales(cfg.Scales)

	if err != nil {
		return err
	}

	backend := cfg.Backend()

	if err := backend.Apply(); err != nil {
		log.Warn("Failed to set CPU affinity", zap.Error(err))
	}

	if err := dnn.SelectDevice(backend); err != nil {
		return err
	}

	log.Info("Loading model", zap.String("weights", cfg.Weights),
		zap.Stringer("backend", backend), zap.Int("workers", cfg.Workers))

	model := cfg.Model()

	pool, err := posemap.NewPool(cfg.Workers, func(slot int) (posemap.Estimator, error) {
		return dnn.NewEstimator(model, backend)
	})

	if err != nil {
		return fmt.Errorf("error loading model: %w", err)
	}

	defer pool.Close()

	if ctx == nil {
		ctx = context.Background()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := pipeline.NewRunner(pool, pipeline.Params{
		Workers:         cfg.Workers,
		ContinueOnError: cfg.ContinueOnError,
		Logger:          log,
	})

	stats, err := runner.Run(ctx, pipeline.Job{
		Input:        input,
		Output:       cfg.OutName,
		Scales:       scales,
		Visualize:    cfg.Visualize,
		FolderSuffix: cfg.FolderImageSuffix,
	})

	if err != nil {
		log.Error("Prediction failed", zap.Int("processed", stats.Processed),
			zap.Int("failed", stats.Failed), zap.Error(err))
		return err
	}

	return nil
}
