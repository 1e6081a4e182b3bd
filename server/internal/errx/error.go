package errx

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Error is the json body written for a failed http request.
type Error struct {
	Status   int            `json:"status"`
	Message  string         `json:"message"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

func New(status int) *Error {
	return &Error{Status: status, Message: http.StatusText(status)}
}

func Newf(status int, f string, a ...any) *Error {
	return New(status).WithMsgf(f, a...)
}

func (e *Error) WithMsgf(f string, a ...any) *Error {
	if len(a) == 0 {
		e.Message = f
	} else {
		e.Message = fmt.Sprintf(f, a...)
	}
	return e
}

func (e *Error) AppendMetadata(mds map[string]any) *Error {
	if e.Metadata == nil {
		e.Metadata = map[string]any{}
	}
	for k, v := range mds {
		e.Metadata[k] = v
	}
	return e
}

func (e *Error) Error() string {
	ss := []string{"status=" + strconv.Itoa(e.Status), "message=" + e.Message}
	for k, v := range e.Metadata {
		ss = append(ss, fmt.Sprintf("%s=%s", k, cast.To[string](v)))
	}
	return strings.Join(ss, ", ")
}

func BadRequest() *Error { return New(http.StatusBadRequest) }
func NotFound() *Error   { return New(http.StatusNotFound) }
func Default() *Error    { return New(http.StatusInternalServerError) }
