package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/dateranger"
	"github.com/hoyle1974/dateranger/config"
	"github.com/hoyle1974/dateranger/dates"
	"github.com/hoyle1974/dateranger/telemetry"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("ranger", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configPath := flags.StringP("config", "c", "", "YAML file with start, end, min, max and minDelta")
	start := flags.StringP("start", "s", "", "Initial start date")
	end := flags.StringP("end", "e", "", "Initial end date")
	minDate := flags.String("min", "", "Earliest allowed date")
	maxDate := flags.String("max", "", "Latest allowed date")
	minDelta := flags.IntP("min-delta", "d", 0, "Minimum number of days between start and end")
	sets := flags.StringArray("set", nil, "Assignment applied after construction, start=DATE or end=DATE (repeatable, in order)")
	verbose := flags.BoolP("verbose", "v", false, "Log every adjustment to stderr")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := telemetry.NewZeroLogger(stderr, level)

	var c config.Config
	if *configPath != "" {
		var err error
		c, err = config.Load(*configPath)
		if err != nil {
			logger.Error("loading config", err)
			return 1
		}
	}
	c = c.Merge(config.Config{Start: *start, End: *end, Min: *minDate, Max: *maxDate, MinDelta: *minDelta})

	opts, err := c.Options()
	if err != nil {
		logger.Error("invalid options", err)
		return 1
	}
	opts.Logger = logger

	assignments, err := parseAssignments(*sets)
	if err != nil {
		logger.Error("invalid --set", err)
		return 1
	}

	r := dateranger.New(opts)
	for _, a := range assignments {
		if a.start {
			err = r.TrySetStartDate(a.date)
		} else {
			err = r.TrySetEndDate(a.date)
		}
		if err != nil {
			logger.Debug(err.Error())
		}
	}

	span := r.Interval()
	fmt.Fprintf(stdout, "start: %s\n", span.Start.Format(dates.Layout))
	fmt.Fprintf(stdout, "end:   %s\n", span.End.Format(dates.Layout))
	fmt.Fprintf(stdout, "days:  %d\n", span.Days())
	fmt.Fprintf(stdout, "delta honored: %v\n", r.DeltaHonored())
	return 0
}

type assignment struct {
	start bool
	date  time.Time
}

func parseAssignments(values []string) ([]assignment, error) {
	ret := make([]assignment, 0, len(values))
	for _, v := range values {
		field, value, ok := strings.Cut(v, "=")
		if !ok {
			return nil, errors.Newf("expected start=DATE or end=DATE, got %q", v)
		}
		d, err := dates.ParseDate(value)
		if err != nil {
			return nil, err
		}
		if d.IsZero() {
			return nil, errors.Newf("missing date in %q", v)
		}
		switch strings.TrimSpace(field) {
		case "start":
			ret = append(ret, assignment{start: true, date: d})
		case "end":
			ret = append(ret, assignment{start: false, date: d})
		default:
			return nil, errors.Newf("unknown field %q, want start or end", field)
		}
	}
	return ret, nil
}
