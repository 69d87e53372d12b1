package usecase

import "errors"

// ErrIAIndisponivel sinaliza que o cliente de IA não foi configurado
// (vira 503 na borda HTTP).
var ErrIAIndisponivel = errors.New("serviço de IA não está disponível")

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}
