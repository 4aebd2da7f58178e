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

package performance

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/jetsetilly/gopher8001/hardware"
	"github.com/jetsetilly/gopher8001/hardware/commands"
	"github.com/jetsetilly/gopher8001/television"
)

// leadtime before measurement begins. allows the frame rate to settle down
const leadtime = 2 * time.Second

// Check runs the machine without pacing for the duration and writes the
// measured frame rate and clock rate to output. The run can be profiled as
// defined by the Profile argument.
//
// The television should already be using the machine as its source.
func Check(ctx context.Context, output io.Writer, profile Profile, m *hardware.Machine,
	tv *television.Television, uncapped bool, duration string) error {

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	if dur <= 0 {
		return fmt.Errorf("performance: duration must be positive (%s)", duration)
	}

	tv.SetFPSCap(!uncapped)
	m.Command(commands.SetSpeed(hardware.NoWait))

	var startFrame, endFrame int
	var startCycles, endCycles int64

	runner := func() error {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		// frame numbers are only safe to read from the television goroutine
		// so the television is run one frame at a time
		var wg sync.WaitGroup
		var tvErr error
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer cancel()

			start := time.Now()
			measuring := false
			for {
				select {
				case <-ctx.Done():
					return
				default:
				}

				if !measuring && time.Since(start) >= leadtime {
					measuring = true
					start = time.Now()
					startFrame = tv.FrameNum()
					startCycles = m.Cycles()
				}

				if measuring && time.Since(start) >= dur {
					endFrame = tv.FrameNum()
					endCycles = m.Cycles()
					return
				}

				tvErr = tv.Run(ctx, tv.FrameNum()+1)
				if tvErr != nil {
					return
				}
			}
		}()

		err := m.Run(ctx)
		cancel()
		wg.Wait()

		if err != nil {
			return err
		}
		return tvErr
	}

	// launch runner directly or through the CPU profiler, depending on
	// supplied arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	if endFrame == 0 && endCycles == 0 {
		return fmt.Errorf("performance: measurement did not complete")
	}

	// calculate performance
	numFrames := endFrame - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	mhz, relative := CalcClock(endCycles-startCycles, dur.Seconds())

	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)
	fmt.Fprintf(output, "%.2f MHz %.1f%%\n", mhz, relative)

	return nil
}
