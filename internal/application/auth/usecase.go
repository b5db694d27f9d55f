package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/andinosoft/erp-pyme/internal/application/dto"
	"github.com/andinosoft/erp-pyme/internal/domain"
	"github.com/andinosoft/erp-pyme/internal/domain/entity"
	"github.com/andinosoft/erp-pyme/internal/domain/repository"
	"github.com/andinosoft/erp-pyme/pkg/jwt"
)

// TokenStore persiste refresh tokens con expiración (Redis en producción).
// Reemplaza al mapa en memoria: sobrevive reinicios y escala entre instancias.
type TokenStore interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	// Get devuelve el userID asociado, o "" si el token no existe o expiró.
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	RefreshTTL time.Duration
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login, refresh y logout.
type AuthUseCase struct {
	userRepo   repository.UsuarioRepository
	tokenStore TokenStore // nil = sin refresh tokens (dev/tests)
	jwtCfg     JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UsuarioRepository, tokenStore TokenStore, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokenStore: tokenStore, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	if in.Email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolVendedor
	}
	if !entity.RolValido(rol) {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	nombre := in.Nombre
	if nombre == "" {
		nombre = in.Email
	}
	usuario := &entity.Usuario{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Nombre:       nombre,
		Rol:          rol,
		Estado:       entity.UsuarioActivo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(usuario); err != nil {
		return nil, err
	}
	resp := toUsuarioResponse(usuario)
	return &resp, nil
}

// Login verifica email/password, genera el JWT de acceso y un refresh token
// persistido en el TokenStore con TTL.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	// Email desconocido y contraseña errada responden igual: 401 sin detalle.
	usuario, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if usuario.Estado != entity.UsuarioActivo {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	refresh := ""
	if uc.tokenStore != nil {
		refresh = uuid.New().String()
		if err := uc.tokenStore.Save(ctx, refresh, usuario.ID, uc.jwtCfg.RefreshTTL); err != nil {
			return nil, err
		}
	}
	return &dto.LoginResponse{
		Token:        token,
		RefreshToken: refresh,
		Usuario:      toUsuarioResponse(usuario),
	}, nil
}

// Refresh rota el refresh token: valida el recibido, lo revoca y emite un
// nuevo par access+refresh. Token desconocido o expirado → ErrUnauthorized.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	if uc.tokenStore == nil || refreshToken == "" {
		return nil, domain.ErrUnauthorized
	}
	userID, err := uc.tokenStore.Get(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	usuario, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if usuario == nil || usuario.Estado != entity.UsuarioActivo {
		return nil, domain.ErrForbidden
	}
	if err := uc.tokenStore.Delete(ctx, refreshToken); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	nuevo := uuid.New().String()
	if err := uc.tokenStore.Save(ctx, nuevo, usuario.ID, uc.jwtCfg.RefreshTTL); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:        token,
		RefreshToken: nuevo,
		Usuario:      toUsuarioResponse(usuario),
	}, nil
}

// Logout revoca el refresh token.
func (uc *AuthUseCase) Logout(ctx context.Context, refreshToken string) error {
	if uc.tokenStore == nil || refreshToken == "" {
		return nil
	}
	return uc.tokenStore.Delete(ctx, refreshToken)
}

func toUsuarioResponse(u *entity.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:        u.ID,
		Email:     u.Email,
		Nombre:    u.Nombre,
		Rol:       u.Rol,
		Estado:    u.Estado,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
