// Package auth autentica al único admin del catálogo: bcrypt contra el hash
// configurado y emisión de un JWT de sesión.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/pkg/jwt"
)

// Config credenciales y parámetros de emisión de tokens.
type Config struct {
	User         string // usuario del admin
	PasswordHash string // hash bcrypt de la contraseña
	JWTSecret    string
	JWTIssuer    string
	JWTExpMin    int
}

// UseCase caso de uso de login del admin.
type UseCase struct {
	cfg Config
}

// New construye el caso de uso.
func New(cfg Config) *UseCase {
	return &UseCase{cfg: cfg}
}

// Login verifica usuario y contraseña; devuelve el token de sesión.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if uc.cfg.PasswordHash == "" {
		// Sin credenciales configuradas el panel queda cerrado.
		return nil, domain.ErrUnauthorized
	}
	if in.User != uc.cfg.User {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.cfg.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.cfg.JWTSecret, in.User, "admin", uc.cfg.JWTIssuer, uc.cfg.JWTExpMin)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}
