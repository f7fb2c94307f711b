package core

import (
	"fmt"
	"os"

	cfg "github.com/automoto/tilerun/config"
	"gopkg.in/yaml.v3"
)

// Segment holds one set of keys for a number of frames.
type Segment struct {
	Frames  int  `yaml:"frames"`
	Left    bool `yaml:"left"`
	Right   bool `yaml:"right"`
	Jump    bool `yaml:"jump"`
	Slide   bool `yaml:"slide"`
	Restart bool `yaml:"restart"`
}

// Actions converts the segment to per-action pressed state.
func (s Segment) Actions() [cfg.ActionCount]bool {
	var a [cfg.ActionCount]bool
	a[cfg.ActionMoveLeft] = s.Left
	a[cfg.ActionMoveRight] = s.Right
	a[cfg.ActionJump] = s.Jump
	a[cfg.ActionSlide] = s.Slide
	a[cfg.ActionRestart] = s.Restart
	return a
}

// Script is a scripted input sequence.
type Script []Segment

// Frames is the total length of the script.
func (s Script) Frames() int {
	n := 0
	for _, seg := range s {
		n += seg.Frames
	}
	return n
}

// At returns the input for frame i, and false once the script has ended.
func (s Script) At(i int) ([cfg.ActionCount]bool, bool) {
	for _, seg := range s {
		if i < seg.Frames {
			return seg.Actions(), true
		}
		i -= seg.Frames
	}
	return [cfg.ActionCount]bool{}, false
}

// ParseScript decodes a YAML list of segments.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	for i, seg := range s {
		if seg.Frames <= 0 {
			return nil, fmt.Errorf("parse script: segment %d: frames must be positive, got %d", i, seg.Frames)
		}
	}
	return s, nil
}

// LoadScript reads a script file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	return ParseScript(data)
}
