package dto

type RegisterRequestDTO struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	RedirectTo string `json:"redirectTo,omitempty"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SessionResponseDTO struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresIn   int          `json:"expiresIn"`
	User        PrincipalDTO `json:"user"`
}

type PrincipalDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role" example:"authenticated"`
}

type SessionInfoResponseDTO struct {
	Principal PrincipalDTO `json:"principal"`
	Holder    *UserDTO     `json:"holder,omitempty"`
}

type UserDTO struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	HolderID       string  `json:"holderId" example:"RBC-15247"`
	Email          string  `json:"email"`
	RBQBalance     float64 `json:"rbqBalance" example:"6500"`
	KYCStatus      string  `json:"kycStatus" example:"Verified"`
	JoinDate       string  `json:"joinDate" example:"2024-03-15"`
	Manager        string  `json:"assignedManager"`
	ManagerContact string  `json:"managerContact"`
}
