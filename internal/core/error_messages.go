package core

// # Error Codes Reference
//
// User-facing messages are in Portuguese, matching the storefront. Each
// carries a code that can be quoted to support.
//
// # Fetch Errors (FETCH001-FETCH099)
//
//	FETCH001 - Sheet unavailable: network failure or non-2xx response
//	           Action: check the connection and that the sheet is public
//	FETCH002 - Busy: too many sheet downloads in flight
//	FETCH003 - Payload too large: the sheet exceeds the size limit
//
// # Catalog and Order Errors
//
//	CAT001 - Unknown catalog key
//	ROW001 - Row not in the current table (stale page)
//	ORD001 - Order requested with an empty cart
//	ORD002 - Unknown destination
//
// # Request Errors
//
//	REQ001 - Request cancelled
//	REQ002 - Request timed out
//	RATE001 - Rate limited
//
// # Default Error (ERR000)
//
// Sentinel errors are matched with errors.Is first. Anything else is
// matched case-insensitively by substring; the first match wins.
//
// Parse anomalies and unparseable prices are not errors and never reach
// this table.

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCatalogNotFound is returned for an unregistered catalog key.
	ErrCatalogNotFound = errors.New("catalog not found")

	// ErrRowNotFound is returned when a row ID is not in the session's table.
	ErrRowNotFound = errors.New("row not found")
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

var (
	msgSheetUnavailable = UserMessage{
		Message: "Não foi possível carregar os dados. Verifique a conexão e se a planilha é pública.",
		Action:  "Tente novamente",
		Code:    "FETCH001",
	}
	msgFetchBusy = UserMessage{
		Message: "Muitas consultas à planilha ao mesmo tempo.",
		Action:  "Aguarde alguns segundos e tente novamente",
		Code:    "FETCH002",
	}
	msgPayloadTooLarge = UserMessage{
		Message: "A planilha é grande demais para ser carregada.",
		Action:  "Divida a planilha em abas menores",
		Code:    "FETCH003",
	}
	msgCatalogNotFound = UserMessage{
		Message: "Catálogo não encontrado.",
		Action:  "Volte ao início e escolha uma categoria",
		Code:    "CAT001",
	}
	msgRowNotFound = UserMessage{
		Message: "Este item não está mais na lista.",
		Action:  "Atualize a página",
		Code:    "ROW001",
	}
	msgEmptyCart = UserMessage{
		Message: "Nenhum item selecionado.",
		Action:  "Selecione ao menos um item antes de finalizar o pedido",
		Code:    "ORD001",
	}
	msgUnknownDestination = UserMessage{
		Message: "Destino do pedido inválido.",
		Action:  "Escolha um dos destinos disponíveis",
		Code:    "ORD002",
	}
	msgCancelled = UserMessage{
		Message: "A requisição foi cancelada.",
		Action:  "Tente novamente",
		Code:    "REQ001",
	}
	msgTimeout = UserMessage{
		Message: "A requisição demorou demais.",
		Action:  "Verifique a conexão e tente novamente",
		Code:    "REQ002",
	}
	msgRateLimited = UserMessage{
		Message: "Muitas requisições.",
		Action:  "Aguarde um momento antes de tentar novamente",
		Code:    "RATE001",
	}

	// defaultMessage is returned when no specific pattern matches.
	defaultMessage = UserMessage{
		Message: "Ocorreu um erro inesperado.",
		Action:  "Tente novamente mais tarde",
		Code:    "ERR000",
	}
)

// sentinelMessages maps sentinel errors to user messages, checked in order.
var sentinelMessages = []struct {
	err error
	msg UserMessage
}{
	{ErrPayloadTooLarge, msgPayloadTooLarge},
	{ErrTooManyFetches, msgFetchBusy},
	{ErrSheetUnavailable, msgSheetUnavailable},
	{ErrCatalogNotFound, msgCatalogNotFound},
	{ErrRowNotFound, msgRowNotFound},
	{ErrEmptyCart, msgEmptyCart},
	{ErrUnknownDestination, msgUnknownDestination},
	{context.DeadlineExceeded, msgTimeout},
	{context.Canceled, msgCancelled},
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns catches errors that lost their sentinel on the way, such as
// ones crossing a process boundary as text.
var errorPatterns = []errorPattern{
	{pattern: "sheet unavailable", msg: msgSheetUnavailable},
	{pattern: "connection refused", msg: msgSheetUnavailable},
	{pattern: "no such host", msg: msgSheetUnavailable},
	{pattern: "too many concurrent", msg: msgFetchBusy},
	{pattern: "too large", msg: msgPayloadTooLarge},
	{pattern: "catalog not found", msg: msgCatalogNotFound},
	{pattern: "row not found", msg: msgRowNotFound},
	{pattern: "empty cart", msg: msgEmptyCart},
	{pattern: "unknown destination", msg: msgUnknownDestination},
	{pattern: "rate limit", msg: msgRateLimited},
	{pattern: "context deadline exceeded", msg: msgTimeout},
	{pattern: "timeout", msg: msgTimeout},
	{pattern: "context canceled", msg: msgCancelled},
}

// MapError converts a technical error to a user-friendly message.
// Returns an empty UserMessage for a nil error.
//
// Example:
//
//	msg := MapError(err)
//	// msg.Code == "FETCH001"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, s := range sentinelMessages {
		if errors.Is(err, s.err) {
			return s.msg
		}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to a specific message rather than
// the ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError pairs a technical error with its user-facing message.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err to a UserError. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
