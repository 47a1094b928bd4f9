// Package tracehook wires internal/blockmerge's unexported perfTrace hook
// to golang.org/x/exp/event, so a consumer inside this module (currently
// only cmd/imsortbench) can observe which phase of the sort is running
// without the public imsort API exposing any such knob.
package tracehook

import (
	"golang.org/x/exp/event"

	"github.com/inplacesort/imsort/internal/blockmerge"
)

// Install routes every phase name internal/blockmerge reports to exp as
// an event.Event carrying that phase as its Message, and returns a func
// that restores the previous (usually nil) hook. Passing a nil exp clears
// the hook, so no phase is reported until the returned func is called.
func Install(exp event.Exporter) (uninstall func()) {
	if exp == nil {
		prev := blockmerge.SetPerfTrace(nil)
		return func() { blockmerge.SetPerfTrace(prev) }
	}

	prev := blockmerge.SetPerfTrace(func(phase string) {
		exp.Export(&event.Event{Message: phase})
	})
	return func() { blockmerge.SetPerfTrace(prev) }
}
