package blockmerge

// perfTrace, when non-nil, is invoked at the start of each major phase of
// Run with the phase name. It exists so internal/tracehook can attach
// event-based instrumentation without the public imsort API exposing any
// configuration knob for it (spec.md §6 leaves nothing else configurable;
// sayhisort.h's SAYHISORT_PERF_TRACE macro is the ancestor of this hook).
//
// Only internal/tracehook may assign this; every other caller of Run sees
// an unmodified, silent engine.
var perfTrace func(phase string)

// SetPerfTrace installs f as the trace hook, returning the previously
// installed hook so callers can restore it. Not part of the imsort public
// API: only internal/tracehook calls it.
func SetPerfTrace(f func(phase string)) func(phase string) {
	prev := perfTrace
	perfTrace = f
	return prev
}
