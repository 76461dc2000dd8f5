// File: ratio_unix.go
// Title: Unix Time Struct Conversions
// Description: Converts Ratio values to and from the timespec and timeval
//              structs of the unix system call interface.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package temporal

import (
	"golang.org/x/sys/unix"

	jerror "github.com/msto63/jtime/foundation/core/error"
)

// RatioFromTimespec returns ts truncated to u
func RatioFromTimespec(u Unit, ts unix.Timespec) Ratio {
	sec, nsec := ts.Unix()
	return RatioFromMoment(u, FromEpoch(sec, nsec))
}

// RatioFromTimeval returns tv truncated to u
func RatioFromTimeval(u Unit, tv unix.Timeval) Ratio {
	sec, nsec := tv.Unix()
	return RatioFromMoment(u, FromEpoch(sec, nsec))
}

// Timespec returns the moment as a timespec, or an error if the seconds do
// not fit the platform's time_t
func (r Ratio) Timespec() (unix.Timespec, error) {
	ts, err := unix.TimeToTimespec(r.Time())
	if err != nil {
		return unix.Timespec{}, jerror.Wrap(err, "moment does not fit timespec").
			WithCode(jerror.CodeValueOutOfRange).
			WithOperation("temporal.Timespec").
			WithDetail("moment", r.moment.String())
	}
	return ts, nil
}

// Timeval returns the moment as a timeval truncated to microseconds, or an
// error if the seconds do not fit the platform's time_t
func (r Ratio) Timeval() (unix.Timeval, error) {
	ts, err := r.Timespec()
	if err != nil {
		return unix.Timeval{}, err
	}
	// NsecToTimeval rounds up, so pass whole microseconds only
	nsec := r.moment.nsec - r.moment.nsec%NsPerMicrosecond
	tv := unix.NsecToTimeval(nsec)
	tv.Sec = ts.Sec
	return tv, nil
}
