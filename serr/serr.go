package serr

import (
	"errors"
	"fmt"
)

type Terror uint32

const (
	TErrNoError Terror = iota
	TErrEnumerate
	TErrRead
	TErrConfig
	TErrExchange
	TErrError
)

func (er Terror) String() string {
	switch er {
	case TErrNoError:
		return "no error"
	case TErrEnumerate:
		return "input enumeration"
	case TErrRead:
		return "file read"
	case TErrConfig:
		return "bad configuration"
	case TErrExchange:
		return "exchange slot misuse"
	case TErrError:
		return "Error"
	default:
		return "unknown error"
	}
}

type Err struct {
	ErrCode Terror
	Obj     string
	Err     error
}

func NewErr(err Terror, obj interface{}) *Err {
	return &Err{
		ErrCode: err,
		Obj:     fmt.Sprintf("%v", obj),
		Err:     nil,
	}
}

// NewErrError wraps err, keeping the code if err already is an *Err.
func NewErrError(error error) *Err {
	var err *Err
	if errors.As(error, &err) {
		return err
	}
	return &Err{TErrError, "", error}
}

// NewErrErrorf tags a lower-level error with a code and object.
func NewErrErrorf(code Terror, obj string, err error) *Err {
	return &Err{code, obj, err}
}

func (err *Err) Code() Terror {
	return err.ErrCode
}

func (err *Err) Unwrap() error { return err.Err }

func (err *Err) Error() string {
	str := err.ErrCode.String()
	if err.Obj != "" {
		str = str + " " + err.Obj
	}
	if err.Err != nil {
		str = str + ": " + err.Err.Error()
	}
	return str
}

func (err *Err) String() string {
	return err.Error()
}

func IsErrCode(error error, code Terror) bool {
	var err *Err
	if errors.As(error, &err) {
		return err.ErrCode == code
	}
	return false
}
