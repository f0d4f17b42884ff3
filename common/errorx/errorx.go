package errorx

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var errorCodeRegex = regexp.MustCompile(`^([A-Z]+-ERR)-(\d+)$`)

func IsValidErrorCode(code string) bool {
	return errorCodeRegex.MatchString(code)
}

// ParseErrorCode parses the corresponding error object from error code string
// Supports format: "PREFIX-ERR-NUMBER" (e.g.: "NOTIFY-ERR-1")
// Returns corresponding CustomError instance, or an unknown error if parsing fails
func ParseErrorCode(errorCode string) CustomError {
	errUnknown := CustomError{
		Prefix: errUnknownPrefix,
		Code:   0,
	}

	matches := errorCodeRegex.FindStringSubmatch(errorCode)
	if len(matches) != 3 {
		return errUnknown
	}

	codeNum, err := strconv.Atoi(matches[2])
	if err != nil {
		return errUnknown
	}

	return CustomError{
		Prefix: matches[1],
		Code:   codeNum,
	}
}

type CoreError interface {
	Error() string
	Code() string
	CustomError() CustomError
}

// CustomError used as standard error struct, it carries the error code and
// extra context of one failure
type CustomError struct {
	Prefix  string  `json:"prefix"`
	Code    int     `json:"code"`
	Context context `json:"context,omitempty"`
}

func (err CustomError) Error() string {
	return err.Prefix + "-" + fmt.Sprintf("%d", err.Code)
}

func (err CustomError) Detail() string {
	errorMsg := err.Error()
	if len(err.Context) > 0 {
		var auxParts []string
		for key, value := range err.Context {
			auxParts = append(auxParts, fmt.Sprintf("%s:%v", key, value))
		}
		// map order is random
		sort.Strings(auxParts)
		errorMsg += " [" + strings.Join(auxParts, ", ") + "]"
	}

	return errorMsg
}

// used for errors.Is to check error type
func (err CustomError) Unwrap() error {
	switch err.Prefix {
	case errNotifyPrefix:
		if e, ok := errNotifyMap[errNotifyCode(err.Code)]; ok {
			return e
		}
		return ErrUnknown
	default:
		return ErrUnknown
	}
}

const errUnknownPrefix = "Unknown-ERR"

type errUnknown struct{}

func (err errUnknown) Error() string {
	return "0"
}

func (err errUnknown) Code() string {
	return errUnknownPrefix + "-0"
}

func (err errUnknown) CustomError() CustomError {
	return CustomError{Prefix: errUnknownPrefix}
}

var ErrUnknown = errUnknown{}
