/***********************************************************************************************************************
 *
 *   MIT License
 *
 *   Copyright (c) 2022 Nicolas JUHEL
 *
 *   Permission is hereby granted, free of charge, to any person obtaining a copy
 *   of this software and associated documentation files (the "Software"), to deal
 *   in the Software without restriction, including without limitation the rights
 *   to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *   copies of the Software, and to permit persons to whom the Software is
 *   furnished to do so, subject to the following conditions:
 *
 *   The above copyright notice and this permission notice shall be included in all
 *   copies or substantial portions of the Software.
 *
 *   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *   AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *   LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *   OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *   SOFTWARE.
 *
 *
 **********************************************************************************************************************/

package duration

import (
	"strconv"
	"strings"
	"time"
)

// parseString backs Parse/ParseByte: it strips the quoting a TOML/JSON
// decoder may have left around the value and any spaces, splits off a
// leading whole number of days ("d" unit), and defers the remainder to
// time.ParseDuration.
func parseString(s string) (Duration, error) {
	s = strings.Replace(s, "\"", "", -1)
	s = strings.Replace(s, "'", "", -1)
	s = strings.Replace(s, " ", "", -1)
	var days time.Duration
	if i := strings.Index(s, "d"); i != -1 {
		n, e := strconv.ParseInt(s[:i], 10, 64)
		if e != nil {
			return 0, e
		}
		if days, s = time.Duration(n)*24*time.Hour, s[i+1:]; s == "" {
			return Duration(days), nil
		} else if n < 0 {
			s = "-" + s
		}
	}
	if v, e := time.ParseDuration(s); e != nil {
		return 0, e
	} else {
		return Duration(days + v), nil
	}
}
