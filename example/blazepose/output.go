package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/swdee/go-blazepose/postprocess/result"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	goodColor   = color.New(color.FgGreen)
	weakColor   = color.New(color.FgYellow)
	missColor   = color.New(color.FgRed)
)

// printSummary writes a colored one line summary of each pose in a frame
func printSummary(w io.Writer, frame string, elapsed time.Duration, poses []result.PoseResult) {

	headerColor.Fprintf(w, "%s: %d pose(s) in %s\n", frame, len(poses), elapsed.Round(time.Microsecond))

	if len(poses) == 0 {
		missColor.Fprintln(w, "  no regions")
		return
	}

	for _, p := range poses {

		if p.Empty() {
			missColor.Fprintf(w, "  pose %d: no keypoints in region %s\n", p.ID, p.Region)
			continue
		}

		c := goodColor
		if p.Diagnostics.MissingParts > p.Diagnostics.VisibleParts {
			c = weakColor
		}

		c.Fprintf(w, "  pose %d: score %.2f, %d visible, %d missing, avg %.2f, box %s\n",
			p.ID, p.Score, p.Diagnostics.VisibleParts, p.Diagnostics.MissingParts,
			p.Diagnostics.AvgScore, p.Box)
	}
}

// partRecord is the per keypoint record of the JSON lines output
type partRecord struct {
	X          float32 `json:"x"`
	Y          float32 `json:"y"`
	Z          float32 `json:"z"`
	Visibility float32 `json:"visibility"`
	Presence   float32 `json:"presence"`
}

// frameRecord is one line of the JSON lines output
type frameRecord struct {
	Session string                  `json:"session"`
	Frame   string                  `json:"frame"`
	Index   int                     `json:"index"`
	Poses   []result.PoseResult     `json:"poses"`
	// Parts holds the retained keypoints of each pose keyed by part name
	Parts   []map[string]partRecord `json:"parts"`
}

// resultWriter writes pose results as JSON lines
type resultWriter struct {
	session string
	f       *os.File
	enc     *json.Encoder
}

// newResultWriter creates the JSON lines file, a nil writer is returned when
// no path is given
func newResultWriter(path, session string) (*resultWriter, error) {

	if path == "" {
		return nil, nil
	}

	f, err := os.Create(path)

	if err != nil {
		return nil, fmt.Errorf("error creating results file: %w", err)
	}

	return &resultWriter{session: session, f: f, enc: json.NewEncoder(f)}, nil
}

// Write records the poses of one frame
func (r *resultWriter) Write(frame string, index int, poses []result.PoseResult) error {

	if r == nil {
		return nil
	}

	rec := frameRecord{
		Session: r.session,
		Frame:   frame,
		Index:   index,
		Poses:   poses,
		Parts:   make([]map[string]partRecord, len(poses)),
	}

	for i, p := range poses {
		parts := make(map[string]partRecord, len(p.Keypoints))

		for _, kp := range p.Keypoints {
			parts[kp.Part] = partRecord{
				X: kp.Position.X, Y: kp.Position.Y, Z: kp.Position.Z,
				Visibility: kp.Visibility, Presence: kp.Presence,
			}
		}

		rec.Parts[i] = parts
	}

	return r.enc.Encode(rec)
}

// Close closes the results file
func (r *resultWriter) Close() error {
	if r == nil {
		return nil
	}
	return r.f.Close()
}

// sortedFiles returns the image files of a directory in name order
func sortedFiles(dir string) ([]string, error) {

	entries, err := os.ReadDir(dir)

	if err != nil {
		return nil, err
	}

	var files []string

	for _, e := range entries {
		if e.IsDir() || !isImage(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}

	sort.Strings(files)

	return files, nil
}
