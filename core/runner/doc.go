// Package runner provides the plugin-like feature registry used by the CLI.
//
// Each extraction pipeline implements the Feature interface:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Run(ctx context.Context, version string) (*Result, error)
//	}
//
// The Manager keeps registration order, which is also execution order, and
// returns one Result per pipeline for the publishing and snapshot steps that
// follow an extraction.
package runner
