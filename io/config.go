package io

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/gofrac/analyze"
	"github.com/phil-mansfield/gofrac/chain"
	"github.com/phil-mansfield/gofrac/fractal"
)

const (
	ExampleFractalFile = `[Fractal]

#######################
# Required Parameters #
#######################

# A point file or a directory of point files. Point files have one primary
# particle per row, written as
#     x y z r
# with no header. Lines starting with '#' are ignored. Input can be left out
# if point files are given on the command line instead.
Input = path/to/points.dat

#######################
# Optional Parameters #
#######################

# The parameters the aggregate was generated with (e.g. by FracVAL). These are
# only used to check the measured aggregate, so leave out any you don't know.
# R_g and k_f are warned about if they differ from the measured values by more
# than 5%. k_f is only checked when Dimension is given.
# Dimension is D_f, Prefactor is k_f, GyrationRadius is R_g, PrimaryRadius is
# r_pp, and Particles is N.
# Dimension = 1.8
# Prefactor = 1.3
# GyrationRadius = 12.5
# PrimaryRadius = 1
# Particles = 256
# Monodisperse = true

# Two particles are in contact if the distance between their centers is at
# most the sum of their radii plus ContactTolerance. Point files written with
# only a few digits usually need a small positive value here.
# ContactTolerance = 0

# What to do with particles that touch nothing. This usually means that
# ContactTolerance is too small or that the file is corrupted. Must be one of
# [ Chain | Exclude | Error ]:
#   Chain:   report each one as its own chain of length one (default)
#   Exclude: leave them out of every chain
#   Error:   stop the analysis
# IsolatedParticles = Chain

# Directory that plots are written to by the plot command.
# PlotDir = path/to/plot/dir

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out`
)

// ErrInvalidConfig is returned when a configuration file parses but contains
// values that can't be used.
var ErrInvalidConfig = errors.New("io: invalid config")

var validate = validator.New()

type SharedConfig struct {
	// Required
	Input string
	// Optional
	LogFile, ProfileFile string
}

func (con *SharedConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SharedConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

type FractalConfig struct {
	SharedConfig

	// Optional
	Dimension      float64 `validate:"gte=0,lte=3"`
	Prefactor      float64 `validate:"gte=0"`
	GyrationRadius float64 `validate:"gte=0"`
	PrimaryRadius  float64 `validate:"gte=0"`
	Particles      int     `validate:"gte=0"`
	Monodisperse   bool

	ContactTolerance  float64 `validate:"gte=0"`
	IsolatedParticles string  `validate:"isolated_policy"`
	PlotDir           string
}

type FractalWrapper struct {
	Fractal FractalConfig
}

func init() {
	err := validate.RegisterValidation(
		"isolated_policy", func(fl validator.FieldLevel) bool {
			_, ok := chain.PolicyFromString(fl.Field().String())
			return ok
		},
	)
	if err != nil { panic(err.Error()) }
}

func DefaultFractalWrapper() *FractalWrapper {
	con := FractalConfig{}
	con.IsolatedParticles = chain.IsolatedChain.String()
	return &FractalWrapper{con}
}

// ReadFractalConfig reads and checks the [Fractal] section of fname.
func ReadFractalConfig(fname string) (*FractalConfig, error) {
	wrap := DefaultFractalWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil { return nil, err }
	if err := wrap.Fractal.Check(); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return &wrap.Fractal, nil
}

// ReadFractalConfigString is identical to ReadFractalConfig, except that the
// configuration is given as a string.
func ReadFractalConfigString(str string) (*FractalConfig, error) {
	wrap := DefaultFractalWrapper()
	if err := gcfg.ReadStringInto(wrap, str); err != nil { return nil, err }
	if err := wrap.Fractal.Check(); err != nil { return nil, err }
	return &wrap.Fractal, nil
}

// Check returns an error wrapping ErrInvalidConfig describing the first
// invalid value in con.
func (con *FractalConfig) Check() error {
	err := validate.Struct(con)
	if err == nil { return nil }

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		if f.Tag() == "isolated_policy" {
			return fmt.Errorf(
				"%w: IsolatedParticles must be one of [Chain | Exclude | " +
					"Error], not '%v'", ErrInvalidConfig, f.Value(),
			)
		}
		return fmt.Errorf(
			"%w: %s = %v fails the '%s' check",
			ErrInvalidConfig, f.Field(), f.Value(), f.Tag(),
		)
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
}

func (con *FractalConfig) ValidPlotDir() bool {
	return con.PlotDir != ""
}

// Policy returns the configured IsolatedPolicy. con must have been checked.
func (con *FractalConfig) Policy() chain.IsolatedPolicy {
	p, _ := chain.PolicyFromString(con.IsolatedParticles)
	return p
}

// Params returns the configured fractal generation parameters.
func (con *FractalConfig) Params() *fractal.Params {
	return &fractal.Params{
		Dimension: con.Dimension,
		Prefactor: con.Prefactor,
		GyrationRadius: con.GyrationRadius,
		Particles: con.Particles,
		PrimaryRadius: con.PrimaryRadius,
		Monodisperse: con.Monodisperse,
	}
}

// Options converts con into the options for a pipeline run.
func (con *FractalConfig) Options() analyze.Options {
	return analyze.Options{
		Tolerance: con.ContactTolerance,
		Isolated: con.Policy(),
		Params: con.Params(),
	}
}
