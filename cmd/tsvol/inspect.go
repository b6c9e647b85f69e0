package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/tsvol/pkg/tsf"
)

type headerJSON struct {
	IX0      int32   `json:"ix0"`
	IY0      int32   `json:"iy0"`
	IZ0      int32   `json:"iz0"`
	IT0      int32   `json:"it0"`
	NX       int32   `json:"nx"`
	NY       int32   `json:"ny"`
	NZ       int32   `json:"nz"`
	NT       int32   `json:"nt"`
	DX       float32 `json:"dx"`
	DY       float32 `json:"dy"`
	DZ       float32 `json:"dz"`
	DT       float32 `json:"dt"`
	ModelRot float32 `json:"modelrot"`
	ModelLat float32 `json:"modellat"`
	ModelLon float32 `json:"modellon"`

	Layout   string `json:"layout"`
	FileSize int64  `json:"file_size"`
}

func inspectCmd() *cli.Command {
	var (
		tsfile     string
		jsonOutput bool
		samples    []string
	)

	return &cli.Command{
		Name:  "inspect",
		Usage: "Inspect a volume's header and probe individual samples",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "tsfile",
				Aliases:     []string{"f"},
				Usage:       "path to the volume file",
				Destination: &tsfile,
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
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "emit the header as JSON",
				Destination: &jsonOutput,
			},
			&cli.StringSliceFlag{
				Name:        "sample",
				Usage:       "probe a sample as 'component,ix,iy,it' (repeatable)",
				Destination: &samples,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			layout, err := parseLayoutFlag()
			if err != nil {
				return err
			}

			vf, err := tsf.Open(tsfile, headerOrder(), layout)
			if err != nil {
				return err
			}
			defer func() { _ = vf.Close() }()

			h := vf.Header
			if jsonOutput {
				out := headerJSON{
					IX0: h.IX0, IY0: h.IY0, IZ0: h.IZ0, IT0: h.IT0,
					NX: h.NX, NY: h.NY, NZ: h.NZ, NT: h.NT,
					DX: h.DX, DY: h.DY, DZ: h.DZ, DT: h.DT,
					ModelRot: h.ModelRot, ModelLat: h.ModelLat, ModelLon: h.ModelLon,
					Layout:   layout.String(),
					FileSize: h.FileSize(),
				}
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
			} else {
				fmt.Printf("origin:   ix0=%d iy0=%d iz0=%d it0=%d\n", h.IX0, h.IY0, h.IZ0, h.IT0)
				fmt.Printf("extents:  nx=%d ny=%d nz=%d nt=%d\n", h.NX, h.NY, h.NZ, h.NT)
				fmt.Printf("spacing:  dx=%g dy=%g dz=%g dt=%g\n", h.DX, h.DY, h.DZ, h.DT)
				fmt.Printf("model:    rot=%g lat=%g lon=%g\n", h.ModelRot, h.ModelLat, h.ModelLon)
				fmt.Printf("layout:   %s\n", layout)
				fmt.Printf("size:     %d bytes\n", h.FileSize())
			}

			for _, spec := range samples {
				c, ix, iy, it, err := parseSampleSpec(spec)
				if err != nil {
					return err
				}
				if c < 0 || c >= tsf.Components ||
					ix < 0 || int32(ix) >= h.NX ||
					iy < 0 || int32(iy) >= h.NY ||
					it < 0 || int32(it) >= h.NT {
					return fmt.Errorf("sample %q out of range", spec)
				}
				fmt.Printf("sample[%d,%d,%d,%d] = %g\n", c, ix, iy, it, vf.Sample(c, ix, iy, it))
			}
			return nil
		},
	}
}

func parseSampleSpec(spec string) (c, ix, iy, it int, err error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return 0, 0, 0, 0, fmt.Errorf("sample spec %q: want 'component,ix,iy,it'", spec)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, 0, 0, 0, fmt.Errorf("sample spec %q: %w", spec, err)
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], vals[3], nil
}
