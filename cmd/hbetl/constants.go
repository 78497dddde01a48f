package main

import (
	"errors"
	"fmt"

	"github.com/nilfoss/hbetl"
	"github.com/spf13/pflag"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

// errValidationFailed is returned by "hbetl validate" once the
// compilation error itself has already been printed, so main doesn't
// print that error a second time — it prints only this short message
// and exits non-zero.
var errValidationFailed = errors.New("validation failed")

// dialectFlag is a pflag.Value validating --dialect at parse time
// instead of at dialectRegistry call time, so a typo is reported by
// cobra's own usage error rather than surfacing as a compile failure.
type dialectFlag string

var _ pflag.Value = (*dialectFlag)(nil)

func (d *dialectFlag) String() string { return string(*d) }

func (d *dialectFlag) Type() string { return "dialect" }

func (d *dialectFlag) Set(v string) error {
	switch v {
	case "", "base", "sendgrid":
		*d = dialectFlag(v)
		return nil
	default:
		return fmt.Errorf("must be %q or %q", "base", "sendgrid")
	}
}

// dialectRegistry resolves the --dialect flag to a Registry, applying
// manifest if non-nil.
func dialectRegistry(dialect dialectFlag, manifest *hbetl.Manifest) (*hbetl.Registry, error) {
	var opts []hbetl.Option
	if manifest != nil {
		opts = append(opts, hbetl.WithManifest(*manifest))
	}

	switch string(dialect) {
	case "", "base":
		return hbetl.DefaultRegistry(opts...), nil
	default:
		return hbetl.SendgridRegistry(opts...), nil
	}
}
