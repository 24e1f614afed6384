// Package exec's error codes.
package exec

import (
	"fmt"

	liberr "github.com/nabbar/evalbroker/errors"
)

const (
	ErrorEmptyCmdline liberr.CodeError = iota + liberr.MinPkgExec
	ErrorStdinPipe
	ErrorSpawn
)

func init() {
	if liberr.ExistInMapMessage(ErrorEmptyCmdline) {
		panic(fmt.Errorf("error code collision with package backend/exec"))
	}
	liberr.RegisterIdFctMessage(ErrorEmptyCmdline, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorEmptyCmdline:
		return "empty cmdline"
	case ErrorStdinPipe:
		return "opening stdin pipe"
	case ErrorSpawn:
		return "spawning child"
	}

	return liberr.NullMessage
}
