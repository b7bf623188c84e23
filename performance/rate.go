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

package performance

// CalcRate takes the number of sweeps and the duration (in seconds) and
// returns the sweeps-per-second. If target is greater than zero, accuracy is
// the rate as a percentage of the target. Otherwise accuracy is zero.
func CalcRate(numSweeps int, duration float64, target int) (rate float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	rate = float64(numSweeps) / duration
	if target > 0 {
		accuracy = 100 * rate / float64(target)
	}
	return rate, accuracy
}
