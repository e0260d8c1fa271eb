package errors

import (
	"encoding/json"
	"fmt"
)

// Record is the structured form of a MappedError, suitable for API payloads.
type Record struct {
	Msg       string    `json:"msg" yaml:"msg"`
	ErrorType ErrorType `json:"error_type" yaml:"error_type"`
	Code      ErrorCode `json:"code" yaml:"code"`
}

// Record returns the structured form of e.
func (e MappedError) Record() Record {
	return Record{
		Msg:       e.msg,
		ErrorType: e.errorType,
		Code:      e.code,
	}
}

// FromRecord restores a MappedError. It does not emit a log line: the value
// already exists, it is only being carried.
func FromRecord(r Record) MappedError {
	return MappedError{
		msg:       r.Msg,
		errorType: r.ErrorType,
		code:      r.Code,
	}
}

// MarshalJSON implements json.Marshaler.
//
//	{"msg":"user not found","error_type":"fetchingError","code":{"code":"E404"}}
//	{"msg":"boom","error_type":"undefinedError","code":"unmapped"}
func (e MappedError) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Record())
}

// UnmarshalJSON requires msg and error_type; a missing code means Unmapped.
func (e *MappedError) UnmarshalJSON(data []byte) error {
	var raw struct {
		Msg       *string    `json:"msg"`
		ErrorType *ErrorType `json:"error_type"`
		Code      *ErrorCode `json:"code"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.Msg == nil {
		return fmt.Errorf("%w: msg", ErrMissingField)
	}
	if raw.ErrorType == nil {
		return fmt.Errorf("%w: error_type", ErrMissingField)
	}

	code := Unmapped
	if raw.Code != nil {
		code = *raw.Code
	}

	*e = FromRecord(Record{Msg: *raw.Msg, ErrorType: *raw.ErrorType, Code: code})

	return nil
}

// MarshalYAML satisfies yaml.Marshaler with the same shape as MarshalJSON.
func (e MappedError) MarshalYAML() (interface{}, error) {
	return e.Record(), nil
}
