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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher8001/curated"
	"github.com/jetsetilly/gopher8001/performance/limiter"
	"github.com/jetsetilly/gopher8001/test"
)

func TestBadLimit(t *testing.T) {
	_, err := limiter.NewFPSLimiter(0)
	test.ExpectSuccess(t, curated.Is(err, limiter.BadLimit))

	lim, err := limiter.NewFPSLimiter(60)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	test.ExpectSuccess(t, curated.Is(lim.SetLimit(-1), limiter.BadLimit))
	test.ExpectEquality(t, lim.Limit(), 60)
}

func TestWait(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(100)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	// nothing is waiting straight after creation
	test.ExpectFailure(t, lim.HasWaited())

	start := time.Now()
	for i := 0; i < 5; i++ {
		lim.Wait()
	}
	test.ExpectSuccess(t, time.Since(start) >= 40*time.Millisecond)

	test.ExpectSuccess(t, lim.SetLimit(200))
	test.ExpectEquality(t, lim.Limit(), 200)
	lim.Wait()
}
