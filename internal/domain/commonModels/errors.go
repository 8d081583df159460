package commonModels

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	InvalidInput       ErrorKind = "InvalidInput"
	CorruptDocument    ErrorKind = "CorruptDocument"
	EmptyExtraction    ErrorKind = "EmptyExtraction"
	MissingDependency  ErrorKind = "MissingDependency"
	MissingCredentials ErrorKind = "MissingCredentials"
	RateLimited        ErrorKind = "RateLimited"
	AuthFailed         ErrorKind = "AuthFailed"
	UnknownModel       ErrorKind = "UnknownModel"
	ProviderError      ErrorKind = "ProviderError"

	// Internal covers anything that never got a kind assigned.
	Internal ErrorKind = "Internal"
)

// PipelineError is the only error type that crosses the extraction / llm / handler boundaries.
type PipelineError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func NewError(kind ErrorKind, message string) *PipelineError {
	return &PipelineError{Kind: kind, Message: message}
}

func WrapError(kind ErrorKind, message string, err error) *PipelineError {
	return &PipelineError{Kind: kind, Message: message, Err: err}
}

func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return Internal
}

// PublicMessage is what the caller gets to see. Unclassified errors keep their original text.
func PublicMessage(err error) string {
	var pe *PipelineError
	if errors.As(err, &pe) {
		if pe.Kind == ProviderError && pe.Err != nil {
			return fmt.Sprintf("%s: %v", pe.Message, pe.Err)
		}
		return pe.Message
	}
	return fmt.Sprintf("unexpected error while processing the request: %v", err)
}

func HTTPStatus(kind ErrorKind) int {
	switch kind {
	case InvalidInput, CorruptDocument, EmptyExtraction, UnknownModel:
		return http.StatusBadRequest
	case AuthFailed:
		return http.StatusUnauthorized
	case RateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
