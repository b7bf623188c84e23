// This file is part of aluoracle.
//
// aluoracle is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// aluoracle is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with aluoracle.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	lim, _ := limiter.NewLimiter(10)
//	defer lim.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		if err := lim.Wait(ctx); err != nil {
//			return err
//		}
//		runSweep()
//	}
package limiter

import (
	"context"
	"fmt"
	"time"
)

// Limiter triggers at a fixed number of events per second.
type Limiter struct {
	perSecond int
	ticker    *time.Ticker
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(perSecond int) (*Limiter, error) {
	if perSecond <= 0 {
		return nil, fmt.Errorf("limiter: rate must be positive (got %d)", perSecond)
	}
	return &Limiter{
		perSecond: perSecond,
		ticker:    time.NewTicker(time.Second / time.Duration(perSecond)),
	}, nil
}

// Rate returns the number of events per second.
func (lim *Limiter) Rate() int {
	return lim.perSecond
}

// Wait blocks until the next trigger or until the context is done.
func (lim *Limiter) Wait(ctx context.Context) error {
	select {
	case <-lim.ticker.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// HasWaited returns true if the trigger has already happened and false if it
// is still yet to happen. Does not block.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. No more triggers will happen.
func (lim *Limiter) Stop() {
	lim.ticker.Stop()
}
