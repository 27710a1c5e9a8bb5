package errors

import (
	"encoding/json"
	"fmt"
)

// ConflictErr is raised when operation would break uniqueness of RUC
type ConflictErr struct {
	ruc     string
	message string
}

func (e *ConflictErr) Error() string {
	return e.message
}

// RUC returns identifier which caused conflict
func (e *ConflictErr) RUC() string {
	return e.ruc
}

// MarshalJSON renders conflict as message with context
func (e *ConflictErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Message string `json:"message"`
		RUC     string `json:"ruc"`
	}{Message: e.message, RUC: e.ruc})
}

// NewDuplicateRUCErr builds conflict for already taken RUC
func NewDuplicateRUCErr(ruc string) *ConflictErr {
	return &ConflictErr{
		ruc:     ruc,
		message: fmt.Sprintf("Ya existe un cliente con RUC %s.", ruc),
	}
}

// EntryNotFoundErr is raised when requested entry is missing
type EntryNotFoundErr struct {
	message string
}

func (e *EntryNotFoundErr) Error() string {
	return e.message
}

// NewEntryNotFoundErr builds EntryNotFoundErr
func NewEntryNotFoundErr(msg string) *EntryNotFoundErr {
	return &EntryNotFoundErr{message: msg}
}

// BadArgumentErr is raised when request is malformed or breaks business rules
type BadArgumentErr struct {
	target  string
	message string
}

func (e *BadArgumentErr) Error() string {
	return e.message
}

// Target returns name of the offending argument, might be empty
func (e *BadArgumentErr) Target() string {
	return e.target
}

// MarshalJSON renders bad argument as message with optional target
func (e *BadArgumentErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Message string `json:"message"`
		Target  string `json:"target,omitempty"`
	}{Message: e.message, Target: e.target})
}

// NewBadArgumentErr builds BadArgumentErr
func NewBadArgumentErr(target string, msg string) *BadArgumentErr {
	return &BadArgumentErr{
		target:  target,
		message: msg,
	}
}
