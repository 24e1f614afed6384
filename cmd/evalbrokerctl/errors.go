// Package main's error codes.
package main

import (
	"fmt"

	liberr "github.com/nabbar/evalbroker/errors"
)

const (
	ErrorLanguageNotFound liberr.CodeError = iota + liberr.MinPkgCLI
)

func init() {
	if liberr.ExistInMapMessage(ErrorLanguageNotFound) {
		panic(fmt.Errorf("error code collision with package main"))
	}
	liberr.RegisterIdFctMessage(ErrorLanguageNotFound, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorLanguageNotFound:
		return "no such language"
	}

	return liberr.NullMessage
}
