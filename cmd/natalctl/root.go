package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	httpadapter "github.com/randomtoy/natal-go/internal/adapters/http"
	"github.com/randomtoy/natal-go/internal/app"
	"github.com/randomtoy/natal-go/internal/domain"
	"github.com/randomtoy/natal-go/internal/ports"
)

type serviceFactory func() (*app.ChartService, error)

func newRootCmd(newSvc serviceFactory, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "natalctl",
		Short:        "Compute natal charts",
		SilenceUsage: true,
	}
	root.AddCommand(newChartCmd(newSvc, out))
	return root
}

type chartOptions struct {
	datetime          string
	lat, lon          float64
	noInterpretations bool
	timeout           time.Duration
}

func newChartCmd(newSvc serviceFactory, out io.Writer) *cobra.Command {
	var opts chartOptions

	cmd := &cobra.Command{
		Use:     "chart",
		Short:   "Compute a birth chart and print it as JSON",
		Example: "  natalctl chart --datetime 1990-06-15T18:30:00Z --lat 40.7128 --lon -74.006",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			instant, err := domain.ParseInstant(opts.datetime)
			if err != nil {
				return describe(err)
			}
			if err := domain.ValidateLocation(opts.lat, opts.lon); err != nil {
				return describe(err)
			}

			svc, err := newSvc()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if opts.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, opts.timeout)
				defer cancel()
			}

			resp, err := svc.ComputeChart(ctx, app.ChartRequest{
				Instant:                instant,
				Latitude:               opts.lat,
				Longitude:              opts.lon,
				IncludeInterpretations: !opts.noInterpretations,
				Source:                 ports.SourceRequest,
			})
			if err != nil {
				return describe(err)
			}

			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(httpadapter.NewChartResponse(resp.Chart, "", resp.LatencyMS))
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.datetime, "datetime", "", "birth instant, ISO-8601 with zone (e.g. 1990-06-15T18:30:00Z)")
	f.Float64Var(&opts.lat, "lat", 0, "latitude in degrees, -90..90")
	f.Float64Var(&opts.lon, "lon", 0, "longitude in degrees, -180..180 (east positive)")
	f.BoolVar(&opts.noInterpretations, "no-interpretations", false, "omit the interpretation bundle")
	f.DurationVar(&opts.timeout, "timeout", 30*time.Second, "overall deadline for the chart")
	_ = cmd.MarkFlagRequired("datetime")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}

// describe flattens a validation error into one line per field.
func describe(err error) error {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	lines := make([]string, len(verr.Fields))
	for i, f := range verr.Fields {
		lines[i] = fmt.Sprintf("--%s %s", flagName(f.Field), f.Message)
	}
	return errors.New(strings.Join(lines, "\n"))
}

func flagName(field string) string {
	switch field {
	case "latitude":
		return "lat"
	case "longitude":
		return "lon"
	default:
		return field
	}
}
