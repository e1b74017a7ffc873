/*
DESCRIPTION
  variables.go contains a list of structs that provide a variable Name, type in
  a string format, a function for updating the variable in the Config struct
  from a string, and finally, a validation function to check the validity of the
  corresponding field value in the Config.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package config

import (
	"fmt"
	"strings"

	"github.com/ausocean/nalu/analyser"
	"github.com/ausocean/nalu/codec/codecutil"
	"github.com/ausocean/utils/logging"
)

// Config map Keys.
const (
	KeyCodec     = "Codec"
	KeyFormat    = "Format"
	KeyInput     = "Input"
	KeyInputPath = "InputPath"
	KeyLogging   = "logging"
	KeyLogPath   = "LogPath"
	KeyStartCode = "StartCode"
	KeySuppress  = "Suppress"
	KeyWatch     = "Watch"
)

// Config map parameter types.
const (
	typeString = "string"
	typeBool   = "bool"
)

// Default variable values.
const (
	defaultCodec     = codecutil.H264
	defaultFormat    = analyser.FormatJSON
	defaultInput     = InputFile
	defaultLogPath   = "/var/log/naluinfo/naluinfo.log"
	defaultStartCode = StartCodeLong
	defaultVerbosity = logging.Error // Applied to invalid levels; zero is logging.Info.
)

// Variables describes the variables that can be used for analyser control.
// These structs provide the name and type of variable, a function for updating
// this variable in a Config, and a function for validating the value of the variable.
var Variables = []struct {
	Name     string
	Type     string
	Update   func(*Config, string)
	Validate func(*Config)
}{
	{
		Name:   KeyCodec,
		Type:   "enum:h264,h265",
		Update: func(c *Config, v string) { c.Codec = strings.ToLower(v) },
		Validate: func(c *Config) {
			if !codecutil.IsValid(c.Codec) {
				c.LogInvalidField(KeyCodec, defaultCodec)
				c.Codec = defaultCodec
			}
		},
	},
	{
		Name:   KeyFormat,
		Type:   "enum:json,yaml",
		Update: func(c *Config, v string) { c.Format = strings.ToLower(v) },
		Validate: func(c *Config) {
			switch c.Format {
			case analyser.FormatJSON, analyser.FormatYAML:
			default:
				c.LogInvalidField(KeyFormat, defaultFormat)
				c.Format = defaultFormat
			}
		},
	},
	{
		Name: KeyInput,
		Type: "enum:file,hex,ts",
		Update: func(c *Config, v string) {
			c.Input = parseEnum(
				KeyInput,
				v,
				map[string]uint8{
					"file": InputFile,
					"hex":  InputHex,
					"ts":   InputTS,
				},
				c,
			)
		},
		Validate: func(c *Config) {
			switch c.Input {
			case InputFile, InputHex, InputTS:
			default:
				c.LogInvalidField(KeyInput, defaultInput)
				c.Input = defaultInput
			}
		},
	},
	{
		Name:   KeyInputPath,
		Type:   typeString,
		Update: func(c *Config, v string) { c.InputPath = v },
	},
	{
		Name: KeyLogging,
		Type: "enum:Debug,Info,Warning,Error,Fatal",
		Update: func(c *Config, v string) {
			switch v {
			case "Debug":
				c.LogLevel = logging.Debug
			case "Info":
				c.LogLevel = logging.Info
			case "Warning":
				c.LogLevel = logging.Warning
			case "Error":
				c.LogLevel = logging.Error
			case "Fatal":
				c.LogLevel = logging.Fatal
			default:
				c.Logger.Warning("invalid Logging param", "value", v)
			}
		},
		Validate: func(c *Config) {
			switch c.LogLevel {
			case logging.Debug, logging.Info, logging.Warning, logging.Error, logging.Fatal:
			default:
				c.LogInvalidField("LogLevel", defaultVerbosity)
				c.LogLevel = defaultVerbosity
			}
		},
	},
	{
		Name:   KeyLogPath,
		Type:   typeString,
		Update: func(c *Config, v string) { c.LogPath = v },
		Validate: func(c *Config) {
			if c.LogPath == "" {
				c.LogInvalidField(KeyLogPath, defaultLogPath)
				c.LogPath = defaultLogPath
			}
		},
	},
	{
		Name: KeyStartCode,
		Type: "enum:long,short",
		Update: func(c *Config, v string) {
			c.StartCode = parseEnum(
				KeyStartCode,
				v,
				map[string]uint8{
					"long":  StartCodeLong,
					"short": StartCodeShort,
				},
				c,
			)
		},
		Validate: func(c *Config) {
			switch c.StartCode {
			case StartCodeLong, StartCodeShort:
			default:
				c.LogInvalidField(KeyStartCode, defaultStartCode)
				c.StartCode = defaultStartCode
			}
		},
	},
	{
		Name: KeySuppress,
		Type: typeBool,
		Update: func(c *Config, v string) {
			c.Suppress = parseBool(KeySuppress, v, c)
			if s, ok := c.Logger.(interface{ SetSuppress(bool) }); ok {
				s.SetSuppress(c.Suppress)
			}
		},
	},
	{
		Name:   KeyWatch,
		Type:   typeBool,
		Update: func(c *Config, v string) { c.Watch = parseBool(KeyWatch, v, c) },
	},
}

func parseBool(n, v string, c *Config) (b bool) {
	switch strings.ToLower(v) {
	case "true":
		b = true
	case "false":
		b = false
	default:
		c.Logger.Warning(fmt.Sprintf("expect bool for param %s", n), "value", v)
	}
	return
}

func parseEnum(n, v string, enums map[string]uint8, c *Config) uint8 {
	_v, ok := enums[strings.ToLower(v)]
	if !ok {
		c.Logger.Warning(fmt.Sprintf("invalid value for %s param", n), "value", v)
	}
	return _v
}
