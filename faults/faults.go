// Package faults define a taxonomia de erros do toolkit.
//
// Todo método público dos managers devolve um resultado bem formado ou um dos
// quatro tipos de erro abaixo. Erros do provider são capturados na fronteira
// da chamada (via Translate) e reembalados com a causa original preservada,
// permitindo errors.Is/errors.As no chamador.
package faults

import (
	"errors"
	"fmt"
)

// NotFoundError indica que o recurso ou a chave não existe no provider.
type NotFoundError struct {
	Service  string
	Resource string
	cause    error
}

func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %q não encontrado: %v", e.Service, e.Resource, e.cause)
	}
	return fmt.Sprintf("%s: %q não encontrado", e.Service, e.Resource)
}

func (e *NotFoundError) Unwrap() error { return e.cause }

// ValidationError indica entrada malformada, detectada antes do dispatch ou
// rejeitada pelo provider como inválida.
type ValidationError struct {
	Service  string
	Resource string
	Message  string
	cause    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: validação falhou em %q: %s", e.Service, e.Resource, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.cause }

// ThrottledError indica rate limit aplicado pelo provider.
type ThrottledError struct {
	Service  string
	Resource string
	cause    error
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("%s: chamada limitada pelo provider em %q: %v", e.Service, e.Resource, e.cause)
}

func (e *ThrottledError) Unwrap() error { return e.cause }

// UnknownServiceError cobre qualquer outra falha vinda do provider.
type UnknownServiceError struct {
	Service  string
	Resource string
	cause    error
}

func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("%s: falha do provider em %q: %v", e.Service, e.Resource, e.cause)
}

func (e *UnknownServiceError) Unwrap() error { return e.cause }

// NotFound cria um NotFoundError sem causa (ex: item ausente na resposta).
func NotFound(service, resource string) *NotFoundError {
	return &NotFoundError{Service: service, Resource: resource}
}

// Unknown embrulha uma falha provider-side que não se encaixa nas demais
// categorias.
func Unknown(service, resource string, cause error) *UnknownServiceError {
	return &UnknownServiceError{Service: service, Resource: resource, cause: cause}
}

// Invalid cria um ValidationError local, antes do dispatch ao provider.
func Invalid(service, resource, message string) *ValidationError {
	return &ValidationError{Service: service, Resource: resource, Message: message}
}

// IsNotFound reporta se err é (ou embrulha) um NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsValidation reporta se err é (ou embrulha) um ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsThrottled reporta se err é (ou embrulha) um ThrottledError.
func IsThrottled(err error) bool {
	var target *ThrottledError
	return errors.As(err, &target)
}
