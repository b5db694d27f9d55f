package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andinosoft/erp-pyme/internal/application/dto"
	"github.com/andinosoft/erp-pyme/internal/application/usecase"
	"github.com/andinosoft/erp-pyme/internal/domain"
	"github.com/andinosoft/erp-pyme/internal/domain/entity"
)

type fakeEntidadRepo struct {
	entidades  map[string]*entity.EntidadComercial
	consultoBD bool // si alguna operación llegó a la "BD"
}

func nuevoFakeEntidadRepo() *fakeEntidadRepo {
	return &fakeEntidadRepo{entidades: make(map[string]*entity.EntidadComercial)}
}

func (f *fakeEntidadRepo) Create(e *entity.EntidadComercial) error {
	f.consultoBD = true
	f.entidades[e.ID] = e
	return nil
}

func (f *fakeEntidadRepo) GetByID(id string) (*entity.EntidadComercial, error) {
	f.consultoBD = true
	if e, ok := f.entidades[id]; ok && e.Activo {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEntidadRepo) GetByDocumento(tipoDoc, numDoc string) (*entity.EntidadComercial, error) {
	f.consultoBD = true
	for _, e := range f.entidades {
		if e.Activo && e.TipoDocumento == tipoDoc && e.NumeroDocumento == numDoc {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEntidadRepo) Update(e *entity.EntidadComercial) error {
	f.consultoBD = true
	f.entidades[e.ID] = e
	return nil
}

func (f *fakeEntidadRepo) List(tipoEntidad string, limit, offset int) ([]*entity.EntidadComercial, int, error) {
	f.consultoBD = true
	var out []*entity.EntidadComercial
	for _, e := range f.entidades {
		if !e.Activo {
			continue
		}
		if tipoEntidad != "" && e.TipoEntidad != tipoEntidad && e.TipoEntidad != entity.EntidadAmbos {
			continue
		}
		out = append(out, e)
	}
	total := len(out)
	if offset >= total {
		return nil, total, nil
	}
	fin := offset + limit
	if fin > total {
		fin = total
	}
	return out[offset:fin], total, nil
}

func (f *fakeEntidadRepo) Delete(id string) error {
	f.consultoBD = true
	if e, ok := f.entidades[id]; ok {
		e.Activo = false
	}
	return nil
}

func requestValida() dto.CreateEntidadRequest {
	return dto.CreateEntidadRequest{
		TipoEntidad:     entity.EntidadProveedor,
		TipoDocumento:   entity.DocumentoRUC,
		NumeroDocumento: "20123456789",
		RazonSocial:     "Distribuidora Andina SAC",
	}
}

func TestCrearEntidad_OK(t *testing.T) {
	repo := nuevoFakeEntidadRepo()
	uc := usecase.NewEntidadUseCase(repo)

	out, err := uc.Crear(requestValida())
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.True(t, out.Activo)
	assert.Equal(t, "20123456789", out.NumeroDocumento)
}

// El formato del documento se valida antes de ir a la base de datos.
func TestCrearEntidad_DocumentoInvalidoNoTocaBD(t *testing.T) {
	repo := nuevoFakeEntidadRepo()
	uc := usecase.NewEntidadUseCase(repo)

	in := requestValida()
	in.TipoDocumento = entity.DocumentoDNI
	in.NumeroDocumento = "123" // un DNI requiere 8 dígitos

	_, err := uc.Crear(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, repo.consultoBD, "la validación de formato no debe llegar al repositorio")
}

func TestCrearEntidad_TipoEntidadInvalido(t *testing.T) {
	repo := nuevoFakeEntidadRepo()
	uc := usecase.NewEntidadUseCase(repo)

	in := requestValida()
	in.TipoEntidad = "DISTRIBUIDOR"

	_, err := uc.Crear(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, repo.consultoBD)
}

func TestCrearEntidad_DocumentoDuplicado(t *testing.T) {
	repo := nuevoFakeEntidadRepo()
	uc := usecase.NewEntidadUseCase(repo)

	_, err := uc.Crear(requestValida())
	require.NoError(t, err)

	_, err = uc.Crear(requestValida())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Tras el borrado lógico el documento queda libre para una entidad nueva.
func TestCrearEntidad_DocumentoLiberadoTrasEliminar(t *testing.T) {
	repo := nuevoFakeEntidadRepo()
	uc := usecase.NewEntidadUseCase(repo)

	primera, err := uc.Crear(requestValida())
	require.NoError(t, err)
	require.NoError(t, uc.Eliminar(primera.ID))

	segunda, err := uc.Crear(requestValida())
	require.NoError(t, err)
	assert.NotEqual(t, primera.ID, segunda.ID)
}

func TestActualizarEntidad_NoCambiaDocumento(t *testing.T) {
	repo := nuevoFakeEntidadRepo()
	uc := usecase.NewEntidadUseCase(repo)

	creada, err := uc.Crear(requestValida())
	require.NoError(t, err)

	nombre := "Andina Distribución"
	out, err := uc.Actualizar(creada.ID, dto.UpdateEntidadRequest{NombreComercial: &nombre})
	require.NoError(t, err)
	assert.Equal(t, nombre, out.NombreComercial)
	assert.Equal(t, creada.NumeroDocumento, out.NumeroDocumento)
}

func TestListEntidades_TipoInvalido(t *testing.T) {
	uc := usecase.NewEntidadUseCase(nuevoFakeEntidadRepo())
	_, err := uc.List("OTRO", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El total del listado es el conteo sin paginar, no el tamaño de la página.
func TestListEntidades_TotalSinPaginar(t *testing.T) {
	repo := nuevoFakeEntidadRepo()
	uc := usecase.NewEntidadUseCase(repo)

	for _, ruc := range []string{"20123456789", "20123456788", "20123456787"} {
		in := requestValida()
		in.NumeroDocumento = ruc
		_, err := uc.Crear(in)
		require.NoError(t, err)
	}

	out, err := uc.List("", dto.PageRequest{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 3, out.Page.Total)
}
