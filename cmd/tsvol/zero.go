package main

import (
	"context"
	"encoding/binary"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/tsvol/pkg/tsf"
)

func zeroCmd() *cli.Command {
	var inTSFile string

	flags := append(volumeFlags(), overrideFlags()...)
	flags = append(flags,
		&cli.StringFlag{
			Name:        "in-tsfile",
			Aliases:     []string{"in"},
			Usage:       "existing volume whose header is the template for the new one",
			Destination: &inTSFile,
			Required:    true,
		},
	)
	flags = append(flags, loggingFlags()...)

	return &cli.Command{
		Name:  "zero",
		Usage: "Create a zero-filled volume from an existing volume's header",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applySharedConfig(cmd, LoadConfig())
			log := buildLogger()

			hdr, err := tsf.ReadHeader(inTSFile, headerOrder())
			if err != nil {
				return err
			}
			hdr.ApplyOverrides(int32(ntOverride), float32(dtOverride))

			log.Info("header template",
				"file", inTSFile, "nx", hdr.NX, "ny", hdr.NY, "nt", hdr.NT)

			// The new volume is always written in the native little-endian
			// order, regardless of the template's byte order.
			if err := tsf.Zero(outTSFile, hdr, binary.LittleEndian); err != nil {
				return err
			}
			log.Info("volume created",
				"file", outTSFile, "bytes", hdr.FileSize())
			return nil
		},
	}
}
