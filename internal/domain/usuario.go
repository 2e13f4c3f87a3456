package domain

import "time"

// Perfil é o papel do usuário no sistema.
type Perfil string

const (
	PerfilAdmin Perfil = "admin"
	PerfilUser  Perfil = "user"
)

// Usuario representa quem acessa o sistema.
type Usuario struct {
	ID           string     `json:"id"`
	Nome         string     `json:"nome"`
	Email        string     `json:"email"`
	Senha        string     `json:"-"` // hash bcrypt; nunca serializado
	Perfil       Perfil     `json:"perfil"`
	Ativo        bool       `json:"ativo"`
	UltimoAcesso *time.Time `json:"ultimo_acesso"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// UsuarioResumo é a forma pública do usuário devolvida no login.
type UsuarioResumo struct {
	ID     string `json:"id"`
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Perfil Perfil `json:"perfil"`
}

// Resumo projeta o usuário na forma pública.
func (u Usuario) Resumo() UsuarioResumo {
	return UsuarioResumo{ID: u.ID, Nome: u.Nome, Email: u.Email, Perfil: u.Perfil}
}

// LoginRequest é o corpo de POST /login.
type LoginRequest struct {
	Email string `json:"email" example:"admin@crm.com"`
	Senha string `json:"senha" example:"admin123"`
}

// RegisterRequest é o corpo de POST /login/register.
type RegisterRequest struct {
	Nome   string `json:"nome" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Senha  string `json:"senha" validate:"required,min=6"`
	Perfil Perfil `json:"perfil" validate:"omitempty,oneof=admin user"`
}

// AuthResponse é a resposta de login e registro.
type AuthResponse struct {
	Message string        `json:"message"`
	Token   string        `json:"token"`
	User    UsuarioResumo `json:"user"`
}

// UsuarioPatch é o payload de PUT /login/{id}.
type UsuarioPatch struct {
	Nome   Optional[string] `json:"nome" swaggertype:"string"`
	Email  Optional[string] `json:"email" swaggertype:"string"`
	Senha  Optional[string] `json:"senha" swaggertype:"string"`
	Perfil Optional[Perfil] `json:"perfil" swaggertype:"string"`
	Ativo  Optional[bool]   `json:"ativo" swaggertype:"boolean"`
}
