// Package samples holds the seed transcripts used to exercise a running
// scoring service, and the tooling to submit, verify and report on them.
package samples

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/talkscore/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
	filePermission      = 0600
)

// DefaultExportFile is the file name written by ExportFile when none is given.
const DefaultExportFile = "sample-transcripts.json"

// Sample is a seed transcript with the overall score range it should land in.
type Sample struct {
	Name            string
	Description     string
	Transcript      string
	DurationSeconds float64
	ExpectedMin     int
	ExpectedMax     int
}

// InRange reports whether overall falls within the expected range.
func (s Sample) InRange(overall int) bool {
	return overall >= s.ExpectedMin && overall <= s.ExpectedMax
}

var seed = []Sample{
	{
		Name:        "Aarti",
		Description: "Excellent transcript with salutation, all keywords, good flow",
		Transcript: "Hello, I am excited to introduce myself. My name is Aarti and I am 14 years old. " +
			"I study in 9th grade at Delhi Public School. I really enjoy reading books and playing badminton. " +
			"In my free time, I like to paint and spend time with my family. " +
			"I feel great to be here today and share a little bit about myself. Thank you for listening.",
		DurationSeconds: 35,
		ExpectedMin:     75,
		ExpectedMax:     95,
	},
	{
		Name:        "Rahul",
		Description: "Good transcript with most keywords",
		Transcript: "Hi, my name is Rahul. I am 13 years old and I study in class 8 at St. Mary's School. " +
			"My hobbies include playing cricket and video games. I enjoy spending time with my friends. Thank you.",
		DurationSeconds: 25,
		ExpectedMin:     70,
		ExpectedMax:     90,
	},
	{
		Name:        "Priya",
		Description: "Poor transcript with many filler words",
		Transcript: "Um, well, my name is, like, Priya and, uh, I am 15 years old. I go to, you know, Green Valley School. " +
			"I like, um, reading and, uh, painting. That is basically it.",
		DurationSeconds: 20,
		ExpectedMin:     40,
		ExpectedMax:     65,
	},
	{
		Name:            "Amit",
		Description:     "Minimal transcript, too brief",
		Transcript:      "My name is Amit. I am 12 years old. I study in class 7. I like sports.",
		DurationSeconds: 10,
		ExpectedMin:     55,
		ExpectedMax:     75,
	},
	{
		Name:        "Kavya",
		Description: "Excellent detailed transcript with strong engagement",
		Transcript: "Good morning everyone. I am feeling great to introduce myself. My name is Kavya and I am 14 years old. " +
			"I study in 9th grade at Cambridge International School. I am passionate about science and mathematics. " +
			"In my free time, I enjoy conducting small experiments at home and reading science fiction novels. " +
			"I also love playing the piano and have been learning it for the past 5 years. " +
			"My family is very supportive of my interests and hobbies. " +
			"I am excited to be part of this wonderful community. Thank you for your time and attention.",
		DurationSeconds: 50,
		ExpectedMin:     75,
		ExpectedMax:     95,
	},
}

// All returns a copy of the seed samples.
func All() []Sample {
	out := make([]Sample, len(seed))
	copy(out, seed)
	return out
}

// exportEntry is the on-disk shape of one exported sample.
type exportEntry struct {
	TranscriptText  string  `json:"transcript_text"`
	DurationSeconds float64 `json:"duration_seconds"`
	Description     string  `json:"description"`
	Timestamp       string  `json:"timestamp"`
}

// Export writes samples as an indented JSON array. Sample i is stamped i days
// and 2i hours before now.
func Export(w io.Writer, samples []Sample, now time.Time) error {
	entries := make([]exportEntry, len(samples))
	for i, s := range samples {
		ts := now.Add(-time.Duration(i) * (24*time.Hour + 2*time.Hour))
		entries[i] = exportEntry{
			TranscriptText:  s.Transcript,
			DurationSeconds: s.DurationSeconds,
			Description:     s.Description,
			Timestamp:       ts.Format(time.RFC3339),
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode samples: %w", err)
	}
	return nil
}

// ExportFile writes samples to filename, creating its directory if needed.
func ExportFile(ctx context.Context, filename string, samples []Sample, now time.Time) error {
	if len(samples) == 0 {
		return ErrNoSamples
	}
	if filename == "" {
		filename = DefaultExportFile
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermission)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Get().Error(ctx, "failed to close file", logger.Error(err))
		}
	}()

	if err := Export(file, samples, now); err != nil {
		return err
	}
	logger.Get().Info(ctx, "samples saved to file",
		logger.String("filename", filename),
		logger.Int("count", len(samples)))
	return nil
}
