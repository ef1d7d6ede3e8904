package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/swdee/go-blazepose/topology"
)

// options are the runner settings, read from the environment and overridden
// by command line flags
type options struct {
	variant       string
	detector      string
	landmark      string
	minConfidence float64
	maxDetected   int
	core          string
	image         string
	dir           string
	video         string
	output        string
	jsonl         string
	logFile       string
	labels        bool
	depth         bool
	query         bool
}

// envString returns the environment variable or def if it is unset
func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// envFloat returns the environment variable parsed as a float or def
func envFloat(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return def
}

// envInt returns the environment variable parsed as an int or def
func envInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

// loadOptions reads the optional .env file then parses the command line
func loadOptions(args []string) (options, error) {

	envFile := ".env"

	// the env file is optional, a missing file is not an error
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return options{}, fmt.Errorf("error loading %s: %w", envFile, err)
		}
	}

	var o options

	fs := flag.NewFlagSet("blazepose", flag.ContinueOnError)

	fs.StringVar(&o.variant, "t", envString("BLAZEPOSE_VARIANT", "full"), "Model topology variant: full, upper or legacy")
	fs.StringVar(&o.detector, "md", envString("BLAZEPOSE_DETECTOR", ""), "RKNN compiled pose detector model file, leave empty to disable the detector")
	fs.StringVar(&o.landmark, "ml", envString("BLAZEPOSE_LANDMARK", "../data/blazepose-full-256-rk3588.rknn"), "RKNN compiled pose landmark model file")
	fs.Float64Var(&o.minConfidence, "c", envFloat("BLAZEPOSE_MIN_CONFIDENCE", -1), "Minimum keypoint confidence, defaults per variant")
	fs.IntVar(&o.maxDetected, "n", envInt("BLAZEPOSE_MAX_DETECTED", 1), "Maximum number of poses per frame when the detector is enabled")
	fs.StringVar(&o.core, "npu", envString("BLAZEPOSE_CORE", "auto"), "NPU core mask: auto, 0, 1, 2, 01, 012 or skip")
	fs.StringVar(&o.image, "i", "", "Image file to run pose estimation on")
	fs.StringVar(&o.dir, "d", "", "Directory of images to run pose estimation on")
	fs.StringVar(&o.video, "v", "", "Video file or camera index to run pose estimation on")
	fs.StringVar(&o.output, "o", "", "Output image file, directory or video file for annotated frames")
	fs.StringVar(&o.jsonl, "j", "", "Write the pose results of every frame to this JSON lines file")
	fs.StringVar(&o.logFile, "log", envString("BLAZEPOSE_LOG_FILE", "blazepose.log"), "Rotated log file, empty to log to stderr only")
	fs.BoolVar(&o.labels, "labels", false, "Draw keypoint part names")
	fs.BoolVar(&o.depth, "depth", false, "Shade keypoints by relative depth")
	fs.BoolVar(&o.query, "q", false, "Print the model tensor information and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if o.image == "" && o.dir == "" && o.video == "" && !o.query {
		return options{}, fmt.Errorf("one of -i, -d or -v is required")
	}

	if _, err := topology.ParseVariant(o.variant); err != nil {
		return options{}, err
	}

	return o, nil
}
