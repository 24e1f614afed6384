// Package persistent's error codes.
package persistent

import (
	"fmt"

	liberr "github.com/nabbar/evalbroker/errors"
)

const (
	ErrorDial liberr.CodeError = iota + liberr.MinPkgPersistent
	ErrorWriteRequest
	ErrorArmDeadline
	ErrorReadLength
	ErrorClearDeadline
)

func init() {
	if liberr.ExistInMapMessage(ErrorDial) {
		panic(fmt.Errorf("error code collision with package backend/persistent"))
	}
	liberr.RegisterIdFctMessage(ErrorDial, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorDial:
		return "dialing evaluation daemon"
	case ErrorWriteRequest:
		return "writing evaluation request"
	case ErrorArmDeadline:
		return "arming read deadline"
	case ErrorReadLength:
		return "reading response length"
	case ErrorClearDeadline:
		return "clearing read deadline"
	}

	return liberr.NullMessage
}
