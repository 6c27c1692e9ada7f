package dto

type RegisterForm struct {
	FullName   string `validate:"max=100"`
	Username   string `validate:"required,min=3,max=50"`
	Email      string `validate:"required,email,max=120"`
	Password   string `validate:"required,min=6"`
	BloodGroup string `validate:"omitempty,bloodgroup"`
}

type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type ForgotPasswordForm struct {
	Email string `validate:"required,email"`
}

type ResetPasswordForm struct {
	Password string `validate:"required,min=6"`
}
