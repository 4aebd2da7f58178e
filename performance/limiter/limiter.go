// This file is part of Gopher8001.
//
// Gopher8001 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8001 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8001.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
package limiter

import (
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopher8001/curated"
)

// Sentinal error returned by NewFPSLimiter() and SetLimit().
const (
	BadLimit = "limiter: %d is not a valid frame rate"
)

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	framesPerSecond atomic.Int32
	pulse           *time.Ticker
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, curated.Errorf(BadLimit, framesPerSecond)
	}
	lim := &FpsLimiter{
		pulse: time.NewTicker(period(framesPerSecond)),
	}
	lim.framesPerSecond.Store(int32(framesPerSecond))
	return lim, nil
}

func period(framesPerSecond int) time.Duration {
	return time.Second / time.Duration(framesPerSecond)
}

// SetLimit changes the limit at which the FpsLimiter waits.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return curated.Errorf(BadLimit, framesPerSecond)
	}
	lim.framesPerSecond.Store(int32(framesPerSecond))
	lim.pulse.Reset(period(framesPerSecond))
	return nil
}

// Limit returns the current frame rate.
func (lim *FpsLimiter) Limit() int {
	return int(lim.framesPerSecond.Load())
}

// Wait will block until trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.pulse.C
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.pulse.C:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Stop the limiter. Wait() must not be called after the limiter is stopped.
func (lim *FpsLimiter) Stop() {
	lim.pulse.Stop()
}
