/*
DESCRIPTION
  naluinfo reads an H.264 or H.265 Annex B bytestream, either raw, as hex text
  or carried by MPEG-TS, and writes a description of each of its NAL units to
  standard output as JSON or YAML.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// naluinfo is a command line NAL unit analyser.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/nalu/analyser"
	"github.com/ausocean/nalu/analyser/config"
	"github.com/ausocean/nalu/codec/codecutil"
	"github.com/ausocean/nalu/container/mts"
	"github.com/ausocean/utils/logging"
)

// Current software version.
const version = "v0.1.0"

// Logging configuration.
const (
	logMaxSize   = 50 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version")
		codec       = flag.String("codec", codecutil.H264, "codec of the bytestream: h264 or h265")
		startCode   = flag.String("start-code", "long", "start code to scan for: long (00 00 00 01) or short (00 00 01)")
		input       = flag.String("input", "file", "input type: file, hex or ts")
		path        = flag.String("path", "", "path of the input file")
		format      = flag.String("format", analyser.FormatJSON, "output format: json or yaml")
		logLevel    = flag.String("log-level", "Error", "log level: Debug, Info, Warning, Error or Fatal")
		logPath     = flag.String("log-path", "", "path of the rolling log file")
		suppress    = flag.Bool("suppress", false, "suppress repeated log messages")
		watch       = flag.Bool("watch", false, "analyse the input again each time it is written")
	)
	flag.Parse()
	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	// Config problems are reported to stderr before the configured logger
	// exists.
	cfg := config.Config{Logger: logging.New(logging.Warning, os.Stderr, false)}
	cfg.Update(map[string]string{
		config.KeyCodec:     *codec,
		config.KeyStartCode: *startCode,
		config.KeyInput:     *input,
		config.KeyInputPath: *path,
		config.KeyFormat:    *format,
		config.KeyLogging:   *logLevel,
		config.KeyLogPath:   *logPath,
		config.KeySuppress:  strconv.FormatBool(*suppress),
		config.KeyWatch:     strconv.FormatBool(*watch),
	})
	cfg.Validate()

	// Create lumberjack logger to handle logging to file.
	fileLog := &lumberjack.Logger{
		Filename:   cfg.LogPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	defer fileLog.Close()
	log := logging.New(cfg.LogLevel, io.MultiWriter(os.Stderr, fileLog), cfg.Suppress)
	cfg.Logger = log

	if cfg.InputPath == "" {
		log.Fatal("no input path given")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info("starting naluinfo", "version", version, "input", cfg.InputPath)
	err := process(ctx, &cfg, os.Stdout)
	if err != nil {
		log.Error("could not analyse input", "error", err.Error())
		if !cfg.Watch {
			os.Exit(1)
		}
	}
	if !cfg.Watch {
		return
	}

	err = watchInput(ctx, &cfg, os.Stdout)
	if err != nil {
		log.Fatal("could not watch input", "error", err.Error())
	}
}

// process loads the input described by c, analyses it and writes the units
// to w in the configured format.
func process(ctx context.Context, c *config.Config, w io.Writer) error {
	req, err := loadRequest(c)
	if err != nil {
		return err
	}
	units, err := analyse(ctx, req)
	if err != nil {
		return err
	}
	return analyser.Encode(w, units, c.Format)
}

// loadRequest reads the input file named by c and prepares the analysis of
// its contents.
func loadRequest(c *config.Config) (analyser.Request, error) {
	b, err := os.ReadFile(c.InputPath)
	if err != nil {
		return analyser.Request{}, errors.Wrap(err, "could not read input")
	}

	req := analyser.Request{Input: b, Options: c.Options(), Logger: c.Logger}
	switch c.Input {
	case config.InputHex:
		req.Hex = true
	case config.InputTS:
		s, err := mts.Unwrap(b)
		if err != nil {
			return analyser.Request{}, errors.Wrap(err, "could not unwrap MPEG-TS")
		}
		if s.Codec != c.Codec {
			c.Logger.Info("using codec of MPEG-TS stream", "codec", s.Codec, "pid", s.PID)
		}
		req.Input = s.Data
		req.Options.IsH265 = s.Codec == codecutil.H265
	}
	return req, nil
}

// analyse runs a worker for req and collects the units it reports.
func analyse(ctx context.Context, req analyser.Request) ([]analyser.Unit, error) {
	var units []analyser.Unit
	for msg := range analyser.Run(ctx, req) {
		switch msg.Kind {
		case analyser.MessageProgress:
			req.Logger.Debug("progress", "percent", msg.Progress)
		case analyser.MessageNALU:
			units = append(units, msg.Unit)
		case analyser.MessageComplete:
			req.Logger.Info("analysis complete", "units", len(units))
		case analyser.MessageError:
			return nil, msg.Err
		}
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return units, nil
}

// watchInput analyses the input again whenever it is written, until ctx is
// cancelled.
func watchInput(ctx context.Context, c *config.Config, w io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "could not create watcher")
	}
	defer watcher.Close()

	err = watcher.Add(c.InputPath)
	if err != nil {
		return errors.Wrap(err, "could not watch input")
	}
	c.Logger.Info("watching input", "path", c.InputPath)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) {
				continue
			}
			c.Logger.Debug("input written", "path", ev.Name)
			err := process(ctx, c, w)
			if err != nil {
				c.Logger.Error("could not analyse input", "error", err.Error())
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.Logger.Warning("watcher error", "error", err.Error())
		}
	}
}
