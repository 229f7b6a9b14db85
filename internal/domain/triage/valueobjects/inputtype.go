package valueobjects

import "fmt"

type InputType string

const (
	InputVoice InputType = "voice"
	InputText  InputType = "text"
)

func (it InputType) String() string {
	return string(it)
}

func (it InputType) IsValid() bool {
	return it == InputVoice || it == InputText
}

func (it InputType) IsVoice() bool {
	return it == InputVoice
}

func NewInputType(s string) (InputType, error) {
	it := InputType(s)
	if !it.IsValid() {
		return "", fmt.Errorf("invalid input type: %s", s)
	}
	return it, nil
}
