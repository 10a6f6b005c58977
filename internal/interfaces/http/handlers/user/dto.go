package user

import "fixdesk/internal/application/user/usecases"

type RegisterRequest struct {
	Username    string `json:"username" binding:"required,max=100"`
	Password    string `json:"password" binding:"required,max=200"`
	DisplayName string `json:"display_name" binding:"max=200"`
}

func (r *RegisterRequest) ToCommand() usecases.RegisterUserCommand {
	return usecases.RegisterUserCommand{
		Username:    r.Username,
		Password:    r.Password,
		DisplayName: r.DisplayName,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SetRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin user"`
}
