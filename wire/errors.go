// Package wire's error codes.
package wire

import (
	"fmt"

	liberr "github.com/nabbar/evalbroker/errors"
)

const (
	ErrorShortRequestHeader liberr.CodeError = iota + liberr.MinPkgWire
	ErrorShortRequestContext
	ErrorShortRequestCode
	ErrorShortResponsePayload
)

func init() {
	if liberr.ExistInMapMessage(ErrorShortRequestHeader) {
		panic(fmt.Errorf("error code collision with package wire"))
	}
	liberr.RegisterIdFctMessage(ErrorShortRequestHeader, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorShortRequestHeader:
		return "short request header"
	case ErrorShortRequestContext:
		return "short request context"
	case ErrorShortRequestCode:
		return "short request code"
	case ErrorShortResponsePayload:
		return "short response payload"
	}

	return liberr.NullMessage
}
