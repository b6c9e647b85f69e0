package main

import (
	"context"
	"errors"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/tsvol/pkg/tsf"
)

func insertCmd() *cli.Command {
	var (
		listFile  string
		seisfile1 string
		seisfile2 string
		seisfile3 string
		ixp       int64
		iyp       int64
		inMemory  bool
		textInput bool
	)

	flags := append(volumeFlags(), overrideFlags()...)
	flags = append(flags,
		&cli.StringFlag{
			Name:        "list",
			Aliases:     []string{"filelist"},
			Usage:       "batch list file: one '<x> <y> <c1> <c2> <c3>' entry per line",
			Destination: &listFile,
		},
		&cli.StringFlag{
			Name:        "seisfile1",
			Usage:       "component 1 seismogram path (single insertion)",
			Destination: &seisfile1,
		},
		&cli.StringFlag{
			Name:        "seisfile2",
			Usage:       "component 2 seismogram path (single insertion)",
			Destination: &seisfile2,
		},
		&cli.StringFlag{
			Name:        "seisfile3",
			Usage:       "component 3 seismogram path (single insertion)",
			Destination: &seisfile3,
		},
		&cli.Int64Flag{
			Name:        "ixp",
			Usage:       "grid x index (single insertion)",
			Destination: &ixp,
		},
		&cli.Int64Flag{
			Name:        "iyp",
			Usage:       "grid y index (single insertion)",
			Destination: &iyp,
		},
		&cli.BoolFlag{
			Name:        "in-memory",
			Aliases:     []string{"intmem"},
			Usage:       "buffer the whole volume body in memory (default: direct seek writes)",
			Destination: &inMemory,
		},
		&cli.BoolFlag{
			Name:        "text",
			Usage:       "seismogram inputs are text form (default: binary)",
			Destination: &textInput,
		},
	)
	flags = append(flags, loggingFlags()...)

	return &cli.Command{
		Name:  "insert",
		Usage: "Insert three-component seismograms into an existing volume",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyInsertConfig(cmd, LoadConfig(), &inMemory, &textInput)

			// Required-parameter enforcement happens here, before any I/O.
			if listFile == "" {
				switch {
				case seisfile1 == "" || seisfile2 == "" || seisfile3 == "":
					return errors.New("need --seisfile1/2/3 or --list")
				case !cmd.IsSet("ixp") || !cmd.IsSet("iyp"):
					return errors.New("need --ixp and --iyp for a single insertion")
				}
			}

			layout, err := parseLayoutFlag()
			if err != nil {
				return err
			}

			log := buildLogger().With("run_id", uuid.NewString())

			opts := tsf.Options{
				Order:  headerOrder(),
				Layout: layout,
				NT:     int32(ntOverride),
				DT:     float32(dtOverride),
				Text:   textInput,
			}

			var ins tsf.Inserter
			if inMemory {
				ins, err = tsf.OpenBuffered(outTSFile, opts)
			} else {
				ins, err = tsf.OpenStreaming(outTSFile, opts)
			}
			if err != nil {
				return err
			}

			hdr := ins.Header()
			log.Info("volume opened",
				"file", outTSFile,
				"nx", hdr.NX, "ny", hdr.NY, "nt", hdr.NT,
				"layout", layout.String(),
				"strategy", strategyName(inMemory))

			if listFile != "" {
				f, err := os.Open(listFile)
				if err != nil {
					_ = ins.Close()
					return err
				}
				n, runErr := tsf.Run(ins, f, func(e tsf.Entry) {
					log.Info("insert", "ix", e.IX, "iy", e.IY,
						"c1", e.Paths[0], "c2", e.Paths[1], "c3", e.Paths[2])
				})
				_ = f.Close()
				if runErr != nil {
					_ = ins.Close()
					return runErr
				}
				if err := ins.Close(); err != nil {
					return err
				}
				log.Info("batch complete", "entries", n)
				return nil
			}

			e := tsf.Entry{
				IX:    int(ixp),
				IY:    int(iyp),
				Paths: [tsf.Components]string{seisfile1, seisfile2, seisfile3},
			}
			log.Info("insert", "ix", e.IX, "iy", e.IY,
				"c1", e.Paths[0], "c2", e.Paths[1], "c3", e.Paths[2])
			if err := ins.Insert(e); err != nil {
				_ = ins.Close()
				return err
			}
			return ins.Close()
		},
	}
}

func strategyName(inMemory bool) string {
	if inMemory {
		return "buffered"
	}
	return "streaming"
}
