package lib

import (
	"fmt"
	"os"

	validator "gopkg.in/validator.v2"
	"gopkg.in/yaml.v3"
)

/*
	Layout holds the geometry of a generated terminal block, in diagram
	pixels. The defaults match the element proportions QET users expect;
	all of them can be overridden from a YAML file or a saved profile.
*/
type Layout struct {
	HeadHeight int `yaml:"head_height" validate:"min=1"`
	HeadWidth  int `yaml:"head_width" validate:"min=1"`

	UnionHeight int `yaml:"union_height" validate:"min=1"`
	UnionWidth  int `yaml:"union_width" validate:"min=1"`

	TerminalHeight int `yaml:"terminal_height" validate:"min=1"`
	TerminalWidth  int `yaml:"terminal_width" validate:"min=1"`

	ConductorLength    int `yaml:"conductor_length" validate:"min=1"`
	HoseConductorStart int `yaml:"hose_conductor_start" validate:"min=1"`
	HoseLength         int `yaml:"hose_length" validate:"min=1"`
	HoseConductorEnd   int `yaml:"hose_conductor_end" validate:"min=1"`

	HeadFont      int `yaml:"head_font" validate:"min=1,max=72"`
	TerminalFont  int `yaml:"terminal_font" validate:"min=1,max=72"`
	XRefFont      int `yaml:"xref_font" validate:"min=1,max=72"`
	ConductorFont int `yaml:"conductor_font" validate:"min=1,max=72"`

	SplitSize int `yaml:"split_size" validate:"min=1"`
}

func DefaultLayout() Layout {
	return Layout{
		HeadHeight:         120,
		HeadWidth:          44,
		UnionHeight:        70,
		UnionWidth:         6,
		TerminalHeight:     160,
		TerminalWidth:      20,
		ConductorLength:    70,
		HoseConductorStart: 70,
		HoseLength:         80,
		HoseConductorEnd:   70,
		HeadFont:           13,
		TerminalFont:       9,
		XRefFont:           6,
		ConductorFont:      6,
		SplitSize:          DefaultSplitSize,
	}
}

func (l Layout) Validate() error {
	return validator.Validate(l)
}

/*
	LoadLayout reads a YAML layout file over the defaults. An empty
	path returns the defaults unchanged.
*/
func LoadLayout(path string) (Layout, error) {
	layout := DefaultLayout()
	if path == "" {
		return layout, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return layout, fmt.Errorf("read layout: %w", err)
	}

	if err := yaml.Unmarshal(data, &layout); err != nil {
		return layout, fmt.Errorf("parse layout: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return layout, fmt.Errorf("invalid layout: %w", err)
	}

	return layout, nil
}

/*
	WriteLayout saves a layout as YAML, usable as a starting point for
	hand edits.
*/
func WriteLayout(path string, layout Layout) error {
	data, err := yaml.Marshal(layout)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
