/*
NAME
  config.go

DESCRIPTION
  config.go provides the configuration settings for a NAL unit analysis.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package config contains the configuration settings for the analyser.
package config

import (
	"github.com/ausocean/nalu/analyser"
	"github.com/ausocean/nalu/codec/codecutil"
	"github.com/ausocean/utils/logging"
)

// Enums to define inputs and start codes.
const (
	// Indicates no option has been set.
	NothingDefined = iota

	// Inputs.
	InputFile // Annex B bytestream file.
	InputHex  // File of hex text, whitespace allowed.
	InputTS   // MPEG-TS file; the video elementary stream is analysed.

	// Start codes.
	StartCodeLong  // 00 00 00 01
	StartCodeShort // 00 00 01
)

// Config provides parameters relevant to an analysis. Default values for
// these fields are defined in variables.go.
type Config struct {
	// Codec is the codec of the bytestream, codecutil.H264 or codecutil.H265.
	Codec string

	// StartCode selects the start code width that is scanned for, either
	// StartCodeLong or StartCodeShort. Only one width is ever matched.
	StartCode uint8

	// Input defines the input data source.
	//
	// Valid values are defined by enums:
	// InputFile:
	//		Read an Annex B bytestream from the file at InputPath.
	// InputHex:
	//		Read hex text from the file at InputPath.
	// InputTS:
	//		Read MPEG-TS from the file at InputPath and analyse its video stream.
	Input uint8

	// InputPath defines the input file location. This must be defined.
	InputPath string

	// Format is the output format, analyser.FormatJSON or analyser.FormatYAML.
	Format string

	// Logger holds an implementation of the Logger interface.
	// This must be set for the config to be updated or validated.
	Logger logging.Logger

	// LogLevel is the logging verbosity level.
	// Valid values are defined by enums from the logger package: logging.Debug,
	// logging.Info, logging.Warning logging.Error, logging.Fatal.
	// The zero value is logging.Info and is kept by Validate; only values
	// outside the enums are defaulted to logging.Error. The naluinfo command
	// passes Error unless its -log-level flag says otherwise.
	LogLevel int8

	LogPath  string // Path of the rolling log file.
	Suppress bool   // Holds logger suppression state.
	Watch    bool   // If true the input is analysed again each time it is written.
}

// Validate checks for any errors in the config fields and defaults settings
// if particular parameters have not been defined.
func (c *Config) Validate() error {
	for _, v := range Variables {
		if v.Validate != nil {
			v.Validate(c)
		}
	}
	return nil
}

// Update takes a map of configuration variable names and their corresponding
// values, parses the string values and converting into correct type, and then
// sets the config struct fields as appropriate.
func (c *Config) Update(vars map[string]string) {
	for _, value := range Variables {
		if v, ok := vars[value.Name]; ok && value.Update != nil {
			value.Update(c, v)
		}
	}
}

func (c *Config) LogInvalidField(name string, def interface{}) {
	c.Logger.Info(name+" bad or unset, defaulting", name, def)
}

// Options returns the analyser options selected by the config.
func (c *Config) Options() analyser.Options {
	return analyser.Options{
		UseLongStartCode: c.StartCode != StartCodeShort,
		IsH265:           c.Codec == codecutil.H265,
	}
}
