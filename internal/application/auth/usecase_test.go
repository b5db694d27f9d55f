package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/andinosoft/erp-pyme/internal/application/auth"
	"github.com/andinosoft/erp-pyme/internal/application/dto"
	"github.com/andinosoft/erp-pyme/internal/domain"
	"github.com/andinosoft/erp-pyme/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type memUsuarioRepo struct {
	usuarios map[string]*entity.Usuario
}

func (f *memUsuarioRepo) Create(u *entity.Usuario) error {
	for _, e := range f.usuarios {
		if e.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	f.usuarios[u.ID] = u
	return nil
}

func (f *memUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	if u, ok := f.usuarios[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *memUsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *memUsuarioRepo) Update(u *entity.Usuario) error { f.usuarios[u.ID] = u; return nil }

func (f *memUsuarioRepo) List(int, int) ([]*entity.Usuario, int, error) { return nil, 0, nil }

// memTokenStore replica el contrato del almacén Redis: Get de un token
// desconocido devuelve ErrUnauthorized.
type memTokenStore struct {
	tokens map[string]string
}

func (f *memTokenStore) Save(_ context.Context, token, userID string, _ time.Duration) error {
	f.tokens[token] = userID
	return nil
}

func (f *memTokenStore) Get(_ context.Context, token string) (string, error) {
	if id, ok := f.tokens[token]; ok {
		return id, nil
	}
	return "", domain.ErrUnauthorized
}

func (f *memTokenStore) Delete(_ context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

func nuevoAuth(t *testing.T) (*auth.AuthUseCase, *memUsuarioRepo, *memTokenStore) {
	t.Helper()
	repo := &memUsuarioRepo{usuarios: make(map[string]*entity.Usuario)}
	store := &memTokenStore{tokens: make(map[string]string)}
	uc := auth.NewAuthUseCase(repo, store, auth.JWTConfig{
		Secret:     "secreto-de-test",
		ExpMinutes: 60,
		RefreshTTL: time.Hour,
		Issuer:     "erp-pyme-test",
	})
	return uc, repo, store
}

func crearUsuario(t *testing.T, repo *memUsuarioRepo, email, password, rol, estado string) *entity.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.Usuario{
		ID: "u-" + email, Email: email, PasswordHash: string(hash),
		Nombre: email, Rol: rol, Estado: estado,
	}
	repo.usuarios[u.ID] = u
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EmiteAccesoYRefresh(t *testing.T) {
	uc, repo, store := nuevoAuth(t)
	crearUsuario(t, repo, "ana@pyme.pe", "clave-segura", entity.RolAdmin, entity.UsuarioActivo)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@pyme.pe", Password: "clave-segura"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, "ana@pyme.pe", out.Usuario.Email)
	assert.Contains(t, store.tokens, out.RefreshToken)
}

// Email desconocido y contraseña incorrecta deben responder el mismo error.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, repo, _ := nuevoAuth(t)
	crearUsuario(t, repo, "ana@pyme.pe", "clave-segura", entity.RolAdmin, entity.UsuarioActivo)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@pyme.pe", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ana@pyme.pe", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, repo, _ := nuevoAuth(t)
	crearUsuario(t, repo, "ana@pyme.pe", "clave-segura", entity.RolAdmin, entity.UsuarioSuspendido)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@pyme.pe", Password: "clave-segura"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Refresh rota el token: el anterior queda revocado y el nuevo funciona.
func TestRefresh_RotaElToken(t *testing.T) {
	uc, repo, store := nuevoAuth(t)
	crearUsuario(t, repo, "ana@pyme.pe", "clave-segura", entity.RolAdmin, entity.UsuarioActivo)

	login, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@pyme.pe", Password: "clave-segura"})
	require.NoError(t, err)

	renovado, err := uc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, renovado.RefreshToken)
	assert.NotContains(t, store.tokens, login.RefreshToken, "el token usado debe revocarse")

	_, err = uc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "reusar un token rotado debe fallar")
}

func TestLogout_RevocaElToken(t *testing.T) {
	uc, repo, _ := nuevoAuth(t)
	crearUsuario(t, repo, "ana@pyme.pe", "clave-segura", entity.RolAdmin, entity.UsuarioActivo)

	login, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@pyme.pe", Password: "clave-segura"})
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), login.RefreshToken))
	_, err = uc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRegisterUser_Validaciones(t *testing.T) {
	uc, repo, _ := nuevoAuth(t)
	crearUsuario(t, repo, "ana@pyme.pe", "clave-segura", entity.RolAdmin, entity.UsuarioActivo)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "n@p.pe", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "password menor a 8 caracteres")

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "n@p.pe", Password: "suficiente", Rol: "gerente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "rol fuera del catálogo")

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@pyme.pe", Password: "suficiente"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	out, err := uc.RegisterUser(dto.RegisterRequest{Email: "n@p.pe", Password: "suficiente"})
	require.NoError(t, err)
	assert.Equal(t, entity.RolVendedor, out.Rol, "rol por defecto vendedor")
	assert.Equal(t, entity.UsuarioActivo, out.Estado)
}

// Sin TokenStore (REDIS_ADDR vacío) el login funciona pero sin refresh token.
func TestLogin_SinTokenStore(t *testing.T) {
	repo := &memUsuarioRepo{usuarios: make(map[string]*entity.Usuario)}
	crearUsuario(t, repo, "ana@pyme.pe", "clave-segura", entity.RolAdmin, entity.UsuarioActivo)
	uc := auth.NewAuthUseCase(repo, nil, auth.JWTConfig{
		Secret: "s", ExpMinutes: 5, Issuer: "t",
	})

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@pyme.pe", Password: "clave-segura"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Empty(t, out.RefreshToken)

	_, err = uc.Refresh(context.Background(), "cualquiera")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
