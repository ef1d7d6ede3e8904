/*
Example running BlazePose pose estimation on images, a directory of images or
a video stream
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/google/uuid"
	"github.com/natefinch/lumberjack"
	"github.com/swdee/go-blazepose"
	"github.com/swdee/go-blazepose/pipeline"
	"github.com/swdee/go-blazepose/postprocess/result"
	"github.com/swdee/go-blazepose/render"
	"github.com/swdee/go-blazepose/topology"
	"gocv.io/x/gocv"
	"golang.org/x/xerrors"
)

// progressTemplate is the directory mode progress bar layout
const progressTemplate = `{{ string . "prefix" }} {{counters . "%s/%s" "%s/?"}} {{bar . }} {{percent . "%.01f%%" "?"}} {{etime . "%s elapsed"}}`

func main() {

	opts, err := loadOptions(os.Args[1:])

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	session := uuid.NewString()
	logger := newLogger(opts.logFile).With(slog.String("session", session))

	if err := run(opts, logger, session); err != nil {
		logger.Error("blazepose failed", slog.Any("error", xerrors.New(err.Error())))
		os.Exit(1)
	}
}

// newLogger writes text logs to stderr and to a rotated log file
func newLogger(logFile string) *slog.Logger {

	var w io.Writer = os.Stderr

	if logFile != "" {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     7,
			Compress:   true,
		})
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// run builds the pipeline and processes the requested input
func run(opts options, logger *slog.Logger, session string) error {

	core, err := blazepose.ParseCoreMask(opts.core)

	if err != nil {
		return err
	}

	reg := blazepose.NewRegistry(core)
	defer reg.Close()

	if opts.query {
		return query(reg, opts)
	}

	variant, err := topology.ParseVariant(opts.variant)

	if err != nil {
		return err
	}

	cfg := pipeline.DefaultConfig(variant)
	cfg.LandmarkPath = opts.landmark
	cfg.MaxDetected = opts.maxDetected
	cfg.Logger = logger

	if opts.detector != "" {
		cfg.DetectorEnabled = true
		cfg.DetectorPath = opts.detector
	}

	if opts.minConfidence >= 0 {
		cfg.MinConfidence = float32(opts.minConfidence)
	}

	pipe, err := pipeline.New(registryLoader(reg), cfg)

	if err != nil {
		return err
	}

	results, err := newResultWriter(opts.jsonl, session)

	if err != nil {
		return err
	}

	defer results.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := &runner{
		pipe:    pipe,
		opts:    opts,
		log:     logger,
		results: results,
		draw:    render.DefaultPoseOptions(),
	}

	r.draw.DrawLabels = opts.labels
	r.draw.DepthShading = opts.depth

	switch {
	case opts.image != "":
		return r.image(ctx, opts.image, opts.output)
	case opts.dir != "":
		return r.directory(ctx)
	default:
		return r.video(ctx)
	}
}

// registryLoader adapts the model Registry to the pipeline
func registryLoader(reg *blazepose.Registry) pipeline.Registry {
	return pipeline.LoaderFunc(func(path string) (pipeline.Model, error) {
		m, err := reg.GetOrLoad(path)
		if err != nil {
			return nil, err
		}
		return m, nil
	})
}

// query prints the tensor details of the configured models
func query(reg *blazepose.Registry, opts options) error {

	for _, path := range []string{opts.detector, opts.landmark} {

		if path == "" {
			continue
		}

		m, err := reg.GetOrLoad(path)

		if err != nil {
			return err
		}

		fmt.Printf("Model: %s\n", m.Path())

		if err := m.Query(os.Stdout); err != nil {
			return err
		}
	}

	return nil
}

type runner struct {
	pipe    *pipeline.Pipeline
	opts    options
	log     *slog.Logger
	results *resultWriter
	draw    render.PoseOptions
	frames  int
	// last and total are the Predict durations of the latest and all frames
	last    time.Duration
	total   time.Duration
}

// process estimates the poses of a frame, records them and draws them onto
// the frame
func (r *runner) process(ctx context.Context, name string, img *gocv.Mat) ([]result.PoseResult, error) {

	start := time.Now()
	poses, err := r.pipe.Predict(ctx, *img)
	r.last = time.Since(start)

	if err != nil {
		return nil, err
	}

	r.total += r.last

	r.log.Debug("frame processed",
		slog.String("frame", name),
		slog.Int("poses", len(poses)),
		slog.Duration("inference", r.last),
	)

	if err := r.results.Write(name, r.frames, poses); err != nil {
		r.log.Warn("failed to write results", slog.Any("error", err))
	}

	r.frames++

	render.Poses(img, poses, r.draw)

	return poses, nil
}

// average returns the mean Predict duration over all processed frames
func (r *runner) average() time.Duration {
	if r.frames == 0 {
		return 0
	}
	return r.total / time.Duration(r.frames)
}

// fps returns the frame rate Predict alone could sustain
func (r *runner) fps() float64 {
	if avg := r.average(); avg > 0 {
		return float64(time.Second) / float64(avg)
	}
	return 0
}

// image processes a single image file
func (r *runner) image(ctx context.Context, path, out string) error {

	img := gocv.IMRead(path, gocv.IMReadColor)

	if img.Empty() {
		return fmt.Errorf("error reading image %s", path)
	}

	defer img.Close()

	poses, err := r.process(ctx, filepath.Base(path), &img)

	if err != nil {
		return err
	}

	printSummary(os.Stdout, filepath.Base(path), r.last, poses)

	if out == "" {
		return nil
	}

	if !gocv.IMWrite(out, img) {
		return fmt.Errorf("error writing image %s", out)
	}

	r.log.Info("saved annotated image", slog.String("file", out))

	return nil
}

// directory processes every image in a directory showing progress
func (r *runner) directory(ctx context.Context) error {

	files, err := sortedFiles(r.opts.dir)

	if err != nil {
		return err
	}

	if r.opts.output != "" {
		if err := os.MkdirAll(r.opts.output, 0o755); err != nil {
			return err
		}
	}

	bar := pb.ProgressBarTemplate(progressTemplate).Start(len(files))
	bar.Set("prefix", "poses")
	defer bar.Finish()

	found := 0

	for _, name := range files {

		img := gocv.IMRead(filepath.Join(r.opts.dir, name), gocv.IMReadColor)

		if img.Empty() {
			r.log.Warn("skipping unreadable image", slog.String("file", name))
			bar.Increment()
			continue
		}

		poses, err := r.process(ctx, name, &img)

		if err != nil {
			img.Close()
			return err
		}

		for _, p := range poses {
			if !p.Empty() {
				found++
			}
		}

		if r.opts.output != "" {
			if !gocv.IMWrite(filepath.Join(r.opts.output, name), img) {
				r.log.Warn("failed to write image", slog.String("file", name))
			}
		}

		img.Close()
		bar.Increment()
	}

	r.log.Info("directory processed",
		slog.Int("images", len(files)),
		slog.Int("poses", found),
		slog.Duration("avgInference", r.average()),
		slog.Float64("fps", r.fps()),
	)

	return nil
}

// video processes a video file or camera until it ends or the context is
// cancelled
func (r *runner) video(ctx context.Context) error {

	var (
		capture *gocv.VideoCapture
		err     error
	)

	if id, convErr := strconv.Atoi(r.opts.video); convErr == nil {
		capture, err = gocv.OpenVideoCapture(id)
	} else {
		capture, err = gocv.VideoCaptureFile(r.opts.video)
	}

	if err != nil {
		return fmt.Errorf("error opening video %s: %w", r.opts.video, err)
	}

	defer capture.Close()

	img := gocv.NewMat()
	defer img.Close()

	var writer *gocv.VideoWriter

	defer func() {
		if writer != nil {
			writer.Close()
		}
	}()

	for {
		if ok := capture.Read(&img); !ok {
			break
		}

		if img.Empty() {
			continue
		}

		poses, err := r.process(ctx, r.opts.video, &img)

		if err != nil {
			if errors.Is(err, context.Canceled) {
				r.log.Info("video processing stopped", slog.Int("frames", r.frames))
				return nil
			}
			return err
		}

		if r.frames%30 == 1 {
			printSummary(os.Stdout, fmt.Sprintf("frame %d (%.1f fps)", r.frames-1, r.fps()), r.last, poses)
		}

		if r.opts.output == "" {
			continue
		}

		if writer == nil {
			fps := capture.Get(gocv.VideoCaptureFPS)
			if fps <= 0 {
				fps = 30
			}

			writer, err = gocv.VideoWriterFile(r.opts.output, "mp4v", fps, img.Cols(), img.Rows(), true)

			if err != nil {
				return fmt.Errorf("error creating video writer: %w", err)
			}
		}

		if err := writer.Write(img); err != nil {
			return fmt.Errorf("error writing frame: %w", err)
		}
	}

	r.log.Info("video processed",
		slog.Int("frames", r.frames),
		slog.Duration("avgInference", r.average()),
		slog.Float64("fps", r.fps()),
	)

	return nil
}

// isImage returns true for file names with a supported image extension
func isImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".bmp":
		return true
	}
	return false
}
