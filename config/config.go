// Package config holds the single piece of process-wide mutable state
// bedtk allows: the zero-length-interval compatibility flag.
//
// Every other result computed by this module is a function of its
// arguments; this flag alone is threaded implicitly because it is read on
// every overlap test in every operator, and plumbing it through each call
// isn't worth the churn for a flag that is set once, before any parsing,
// and never touched again for the life of the process.
package config

import "sync/atomic"

var bedtoolsCompatible int32

// SetBedtoolsCompatible sets the process-wide zero-length-interval overlap
// mode. It must be called at most once, before any BED parsing begins;
// calling it after operators have started running is undefined but safe,
// the same as violating any other relied-upon input invariant.
func SetBedtoolsCompatible(v bool) {
	n := int32(0)
	if v {
		n = 1
	}
	atomic.StoreInt32(&bedtoolsCompatible, n)
}

// BedtoolsCompatible reports the current zero-length-interval overlap mode.
// Read-only during operator execution.
func BedtoolsCompatible() bool {
	return atomic.LoadInt32(&bedtoolsCompatible) != 0
}
