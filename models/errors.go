package models

import "errors"

// Таксономия ошибок уровня доступа к данным.
// Проверки авторизации обрываются до обращения к хранилищу,
// остальные ошибки хранилища не ретраятся и уходят наверх как есть.
var (
	// ErrUnauthenticated — кука отсутствует либо токен не прошёл проверку
	ErrUnauthenticated = errors.New("unauthorized access")
	// ErrForbidden — идентичность из токена не совпадает с владельцем ресурса
	ErrForbidden = errors.New("forbidden access")
	// ErrNotFound — документ с таким id не найден
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput — некорректное тело запроса либо id не в формате uuid
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidStatus — статус вне закрытого набора
	ErrInvalidStatus = errors.New("invalid status value")
)
