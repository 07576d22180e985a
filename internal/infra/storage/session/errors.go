package session

import "errors"

var (
	// ErrSessionNotFound возвращается для неизвестных или истёкших токенов
	ErrSessionNotFound = errors.New("session.store: session not found")

	ErrEncode = errors.New("session.store: failed to encode session")
	ErrDecode = errors.New("session.store: failed to decode session")
	ErrStore  = errors.New("session.store: backend error")
)
