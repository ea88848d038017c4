// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

type ResultKind string

const (
	KindFlag    ResultKind = "flag"
	KindMessage ResultKind = "message"
)

// Result is the outcome of a classification: either a boolean flag or a
// formatted message. The zero value is Flag(false).
type Result struct {
	kind    ResultKind
	flag    bool
	message string
}

func Flag(b bool) Result {
	return Result{kind: KindFlag, flag: b}
}

func Message(s string) Result {
	return Result{kind: KindMessage, message: s}
}

func (r Result) Kind() ResultKind {
	if r.kind == "" {
		return KindFlag
	}
	return r.kind
}

func (r Result) Flag() (bool, bool) {
	if r.Kind() != KindFlag {
		return false, false
	}
	return r.flag, true
}

func (r Result) Message() (string, bool) {
	if r.Kind() != KindMessage {
		return "", false
	}
	return r.message, true
}

func (r Result) String() string {
	if msg, ok := r.Message(); ok {
		return msg
	}
	if r.flag {
		return "true"
	}
	return "false"
}

// value returns the untyped form used by the JSON and YAML encoders.
func (r Result) value() interface{} {
	if msg, ok := r.Message(); ok {
		return msg
	}
	return r.flag
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.value())
}

func (r *Result) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case bool:
		*r = Flag(v)
	case string:
		*r = Message(v)
	default:
		return errors.New("result must be a boolean or a string")
	}
	return nil
}

func (r Result) MarshalYAML() (interface{}, error) {
	return r.value(), nil
}

func (r Result) GoString() string {
	if msg, ok := r.Message(); ok {
		return fmt.Sprintf("model.Message(%q)", msg)
	}
	return fmt.Sprintf("model.Flag(%t)", r.flag)
}
