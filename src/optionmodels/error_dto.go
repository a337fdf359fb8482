package optionmodels

type ErrorDTO struct {
	Type string `json:"type"`
	Msg  string `json:"msg"`
}

func NewErrorDTO(errType string, msg string) *ErrorDTO {
	return &ErrorDTO{
		Type: errType,
		Msg:  msg,
	}
}
