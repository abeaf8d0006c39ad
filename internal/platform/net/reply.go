package net

import (
	"net/http"

	perr "gridiron/internal/platform/errors"
)

// Wire is the body of every JSON response
// error responses leave Data empty, success responses leave Code and Error empty
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Reply wraps data in a success envelope with the given status, zero means 200
func Reply(status int, data any, reqID string) Wire {
	if status == 0 {
		status = http.StatusOK
	}
	return Wire{StatusCode: status, Status: http.StatusText(status), RequestID: reqID, Data: data}
}

// OK is Reply with 200
func OK(data any, reqID string) (int, Wire) {
	w := Reply(http.StatusOK, data, reqID)
	return w.StatusCode, w
}

// Error maps err to its status and wire code, nil is an empty 200
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return OK(nil, reqID)
	}
	pw := perr.WireFrom(err)
	w := Reply(perr.HTTPStatus(err), nil, reqID)
	w.Code, w.Error = pw.Code, pw.Message
	return w.StatusCode, w
}
