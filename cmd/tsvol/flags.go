package main

import (
	"encoding/binary"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/tsvol/internal/logger"
	"github.com/samcharles93/tsvol/pkg/tsf"
)

var (
	outTSFile  string
	swapBytes  bool
	layoutName string
	ntOverride int64
	dtOverride float64
	logLevel   string
	logFormat  string
	debug      bool
)

func volumeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "out-tsfile",
			Aliases:     []string{"out"},
			Usage:       "path to the destination volume file",
			Destination: &outTSFile,
			Required:    true,
		},
		&cli.BoolFlag{
			Name:        "swap-bytes",
			Usage:       "volume header is big-endian (default little-endian)",
			Destination: &swapBytes,
		},
		&cli.StringFlag{
			Name:        "layout",
			Usage:       "volume body layout (time, cell)",
			Value:       "time",
			Destination: &layoutName,
		},
	}
}

func overrideFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "nt",
			Usage:       "override time-sample count (applies when positive)",
			Destination: &ntOverride,
		},
		&cli.Float64Flag{
			Name:        "dt",
			Usage:       "override time step in seconds (applies when positive)",
			Destination: &dtOverride,
		},
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &logFormat,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &debug,
		},
	}
}

func buildLogger() logger.Logger {
	level := logger.ParseLevel(logLevel)
	if debug {
		level = slog.LevelDebug
	}
	switch logFormat {
	case "json":
		return logger.JSON(os.Stderr, level)
	case "text":
		return logger.Text(os.Stderr, level)
	default:
		return logger.Pretty(os.Stderr, level)
	}
}

// headerOrder maps the swap flag to a concrete byte order. The format has
// no endianness tag; little-endian is the native order and --swap-bytes
// declares a big-endian header.
func headerOrder() binary.ByteOrder {
	if swapBytes {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func parseLayoutFlag() (tsf.Layout, error) {
	return tsf.ParseLayout(layoutName)
}
