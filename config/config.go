// Package config reads ranger options from a YAML document:
//
//	start: 2016-12-15
//	end: 2016-12-20
//	min: 2016-12-01
//	max: 2016-12-31
//	minDelta: 7
//
// Every key is optional. Dates are either 2006-01-02 or RFC3339.
package config

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/dateranger"
	"github.com/hoyle1974/dateranger/dates"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Start    string `yaml:"start,omitempty"`
	End      string `yaml:"end,omitempty"`
	Min      string `yaml:"min,omitempty"`
	Max      string `yaml:"max,omitempty"`
	MinDelta int    `yaml:"minDelta,omitempty"`
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "can not read config %s", path)
	}
	c, err := Parse(b)
	if err != nil {
		return Config{}, errors.Wrapf(err, "can not load config %s", path)
	}
	return c, nil
}

func Parse(b []byte) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Mark(errors.Wrap(err, "can not decode config"), ErrInvalidConfig)
	}
	return c, nil
}

// Validate is stricter than the ranger itself, which would silently accept all of these.
func (c Config) Validate() error {
	_, err := c.Options()
	return err
}

func (c Config) Options() (dateranger.Options, error) {
	var opts dateranger.Options
	if c.MinDelta < 0 {
		return opts, errors.Mark(errors.Newf("minDelta must not be negative, got %d", c.MinDelta), ErrInvalidConfig)
	}
	opts.MinDelta = c.MinDelta

	fields := []struct {
		name  string
		value string
		out   *time.Time
	}{
		{"start", c.Start, &opts.StartDate},
		{"end", c.End, &opts.EndDate},
		{"min", c.Min, &opts.MinDate},
		{"max", c.Max, &opts.MaxDate},
	}
	for _, f := range fields {
		t, err := dates.ParseDate(f.value)
		if err != nil {
			return opts, errors.Mark(errors.Wrapf(err, "field %s", f.name), ErrInvalidConfig)
		}
		*f.out = t
	}

	if !opts.MinDate.IsZero() && !opts.MaxDate.IsZero() && opts.MaxDate.Before(opts.MinDate) {
		return opts, errors.Mark(errors.Newf("max %s is before min %s", c.Max, c.Min), ErrInvalidConfig)
	}
	return opts, nil
}

// Merge returns c with every non-empty field of o written over it.
func (c Config) Merge(o Config) Config {
	if o.Start != "" {
		c.Start = o.Start
	}
	if o.End != "" {
		c.End = o.End
	}
	if o.Min != "" {
		c.Min = o.Min
	}
	if o.Max != "" {
		c.Max = o.Max
	}
	if o.MinDelta != 0 {
		c.MinDelta = o.MinDelta
	}
	return c
}
