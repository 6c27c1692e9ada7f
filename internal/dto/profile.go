package dto

type ProfileForm struct {
	FullName    string `validate:"max=100"`
	Bio         string `validate:"max=1000"`
	Email       string `validate:"required,email,max=120"`
	RemovePhoto bool
}
