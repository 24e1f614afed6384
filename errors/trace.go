/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package errors

import (
	"path"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
)

const (
	pathSeparator = "/"
	pathVendor    = "vendor"
)

var filterPkg = path.Clean(convPathFromLocal(reflect.TypeOf(UnknownError).PkgPath()))

func convPathFromLocal(str string) string {
	return strings.Replace(str, string(filepath.Separator), pathSeparator, -1)
}

func getFrame() runtime.Frame {
	programCounters := make([]uintptr, 20)
	n := runtime.Callers(3, programCounters)

	if n > 0 {
		frames := runtime.CallersFrames(programCounters[:n])
		for {
			frame, more := frames.Next()
			if strings.Contains(frame.Function, "nabbar/evalbroker/errors") {
				if !more {
					break
				}
				continue
			}

			return runtime.Frame{Function: frame.Function, File: frame.File, Line: frame.Line}
		}
	}

	return runtime.Frame{}
}

func filterPath(pathname string) string {
	pathname = convPathFromLocal(pathname)

	if i := strings.LastIndex(pathname, pathSeparator+pathVendor+pathSeparator); i != -1 {
		pathname = pathname[i+len(pathVendor)+2:]
	}

	if i := strings.LastIndex(pathname, filterPkg); i != -1 {
		pathname = pathname[i+len(filterPkg):]
	}

	return strings.Trim(path.Clean(pathname), pathSeparator)
}
