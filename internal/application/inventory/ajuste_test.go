package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andinosoft/erp-pyme/internal/application/inventory"
	"github.com/andinosoft/erp-pyme/internal/domain"
	"github.com/andinosoft/erp-pyme/internal/domain/entity"
	"github.com/andinosoft/erp-pyme/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// Los repositorios fake replican el contrato observable de los adaptadores de
// Postgres: GetForUpdate devuelve cantidad 0 cuando no hay fila, Upsert crea o
// reemplaza, y SumByProducto suma todos los almacenes. El txRunner fake invoca
// la función con los mismos fakes, sin transacción real: las propiedades de
// atomicidad se prueban observando que un ajuste rechazado no deja rastro.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	filas map[string]*entity.StockAlmacen // clave producto|almacen
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{filas: make(map[string]*entity.StockAlmacen)}
}

func clave(productoID, almacenID string) string { return productoID + "|" + almacenID }

func (f *fakeStockRepo) Get(productoID, almacenID string) (*entity.StockAlmacen, error) {
	return f.GetForUpdate(productoID, almacenID)
}

func (f *fakeStockRepo) GetForUpdate(productoID, almacenID string) (*entity.StockAlmacen, error) {
	if s, ok := f.filas[clave(productoID, almacenID)]; ok {
		copia := *s
		return &copia, nil
	}
	return &entity.StockAlmacen{ProductoID: productoID, AlmacenID: almacenID, Cantidad: 0}, nil
}

func (f *fakeStockRepo) Upsert(stock *entity.StockAlmacen) error {
	copia := *stock
	f.filas[clave(stock.ProductoID, stock.AlmacenID)] = &copia
	return nil
}

func (f *fakeStockRepo) SumByProducto(productoID string) (int64, error) {
	var total int64
	for _, s := range f.filas {
		if s.ProductoID == productoID {
			total += s.Cantidad
		}
	}
	return total, nil
}

func (f *fakeStockRepo) List(repository.FiltroStock) ([]repository.StockFila, int, error) {
	return nil, 0, nil
}

type fakeMovimientoRepo struct {
	movimientos []*entity.MovimientoInventario
}

func (f *fakeMovimientoRepo) Create(mov *entity.MovimientoInventario) error {
	copia := *mov
	f.movimientos = append(f.movimientos, &copia)
	return nil
}

func (f *fakeMovimientoRepo) GetByID(id string) (*entity.MovimientoInventario, error) {
	for _, m := range f.movimientos {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeMovimientoRepo) List(repository.FiltroMovimientos) ([]*entity.MovimientoInventario, int, error) {
	return f.movimientos, len(f.movimientos), nil
}

type fakeProductoRepo struct {
	productos map[string]*entity.Producto
}

func newFakeProductoRepo(productos ...*entity.Producto) *fakeProductoRepo {
	f := &fakeProductoRepo{productos: make(map[string]*entity.Producto)}
	for _, p := range productos {
		f.productos[p.ID] = p
	}
	return f
}

func (f *fakeProductoRepo) Create(p *entity.Producto) error { f.productos[p.ID] = p; return nil }

func (f *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	if p, ok := f.productos[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	for _, p := range f.productos {
		if p.Codigo == codigo && p.Activo {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProductoRepo) Update(*entity.Producto) error { return nil }

func (f *fakeProductoRepo) UpdateStock(productoID string, stock int64) error {
	p, ok := f.productos[productoID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func (f *fakeProductoRepo) UpdateCosto(productoID string, costo decimal.Decimal) error {
	p, ok := f.productos[productoID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Costo = costo
	return nil
}

func (f *fakeProductoRepo) List(int, int, bool) ([]*entity.Producto, int, error) { return nil, 0, nil }
func (f *fakeProductoRepo) Delete(string) error                             { return nil }

var _ repository.ProductoRepository = (*fakeProductoRepo)(nil)

type fakeAlmacenRepo struct {
	almacenes map[string]*entity.Almacen
}

func newFakeAlmacenRepo(almacenes ...*entity.Almacen) *fakeAlmacenRepo {
	f := &fakeAlmacenRepo{almacenes: make(map[string]*entity.Almacen)}
	for _, a := range almacenes {
		f.almacenes[a.ID] = a
	}
	return f
}

func (f *fakeAlmacenRepo) Create(a *entity.Almacen) error { f.almacenes[a.ID] = a; return nil }

func (f *fakeAlmacenRepo) GetByID(id string) (*entity.Almacen, error) {
	if a, ok := f.almacenes[id]; ok {
		return a, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAlmacenRepo) GetByCodigo(string) (*entity.Almacen, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeAlmacenRepo) Update(*entity.Almacen) error             { return nil }
func (f *fakeAlmacenRepo) List(int, int) ([]*entity.Almacen, int, error) { return nil, 0, nil }

type fakeMotivoRepo struct {
	motivos map[string]*entity.MotivoMovimiento
}

func newFakeMotivoRepo(motivos ...*entity.MotivoMovimiento) *fakeMotivoRepo {
	f := &fakeMotivoRepo{motivos: make(map[string]*entity.MotivoMovimiento)}
	for _, m := range motivos {
		f.motivos[m.ID] = m
	}
	return f
}

func (f *fakeMotivoRepo) Create(m *entity.MotivoMovimiento) error { f.motivos[m.ID] = m; return nil }

func (f *fakeMotivoRepo) GetByID(id string) (*entity.MotivoMovimiento, error) {
	if m, ok := f.motivos[id]; ok {
		return m, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeMotivoRepo) GetByCodigo(string) (*entity.MotivoMovimiento, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeMotivoRepo) ListByTipo(string) ([]*entity.MotivoMovimiento, error) { return nil, nil }

// fakeTxRunner ejecuta la función con los repositorios fake, sin transacción.
type fakeTxRunner struct {
	movRepo      repository.MovimientoRepository
	stockRepo    repository.StockRepository
	productoRepo repository.ProductoRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	repository.MovimientoRepository,
	repository.StockRepository,
	repository.ProductoRepository,
) error) error {
	return fn(f.movRepo, f.stockRepo, f.productoRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario base
// ──────────────────────────────────────────────────────────────────────────────

const (
	prodID = "p1"
	almID  = "a1"
	userID = "u1"
)

type escenario struct {
	uc       *inventory.MovimientoUseCase
	stock    *fakeStockRepo
	movs     *fakeMovimientoRepo
	producto *fakeProductoRepo
}

// nuevoEscenario arma el caso de uso con un producto activo, un almacén activo
// y stock inicial en el almacén.
func nuevoEscenario(t *testing.T, stockInicial int64) *escenario {
	t.Helper()
	stock := newFakeStockRepo()
	if stockInicial > 0 {
		require.NoError(t, stock.Upsert(&entity.StockAlmacen{
			ProductoID: prodID, AlmacenID: almID, Cantidad: stockInicial,
		}))
	}
	movs := &fakeMovimientoRepo{}
	producto := newFakeProductoRepo(&entity.Producto{
		ID: prodID, Codigo: "SKU-1", Nombre: "Tornillo", Stock: stockInicial, Activo: true,
	})
	almacen := newFakeAlmacenRepo(&entity.Almacen{ID: almID, Codigo: "PRINCIPAL", Activo: true})
	motivos := newFakeMotivoRepo(&entity.MotivoMovimiento{
		ID: "m1", Codigo: "MERMA", Descripcion: "Merma o deterioro",
		Tipo: entity.MovimientoAjuste, Activo: true,
	})
	runner := &fakeTxRunner{movRepo: movs, stockRepo: stock, productoRepo: producto}
	return &escenario{
		uc:       inventory.NewMovimientoUseCase(runner, producto, almacen, motivos),
		stock:    stock,
		movs:     movs,
		producto: producto,
	}
}

func (e *escenario) cantidad(t *testing.T) int64 {
	t.Helper()
	s, err := e.stock.Get(prodID, almID)
	require.NoError(t, err)
	return s.Cantidad
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Ejemplo de referencia: stock 10, ajuste -15 se rechaza sin efecto; ajuste -5
// deja 5 con un movimiento stockAnterior 10 / stockNuevo 5.
func TestRegistrarAjuste_EjemploReferencia(t *testing.T) {
	e := nuevoEscenario(t, 10)

	_, err := e.uc.RegistrarAjuste(context.Background(), inventory.AjusteInput{
		ProductoID: prodID, AlmacenID: almID, Cantidad: -15,
		Motivo: "conteo físico", UsuarioID: userID,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock,
		"un ajuste que deja el stock negativo debe rechazarse")
	assert.EqualValues(t, 10, e.cantidad(t), "el stock no debe cambiar tras un rechazo")
	assert.Empty(t, e.movs.movimientos, "un ajuste rechazado no debe dejar movimiento")

	mov, err := e.uc.RegistrarAjuste(context.Background(), inventory.AjusteInput{
		ProductoID: prodID, AlmacenID: almID, Cantidad: -5,
		Motivo: "conteo físico", UsuarioID: userID,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 10, mov.StockAnterior)
	assert.EqualValues(t, 5, mov.StockNuevo)
	assert.EqualValues(t, 5, e.cantidad(t))
}

// Propiedad: tras una secuencia de ajustes, la cantidad final es la suma de
// los deltas aceptados, y cada aceptado deja exactamente un movimiento con
// stockNuevo - stockAnterior == delta.
func TestRegistrarAjuste_SecuenciaDeDeltas(t *testing.T) {
	e := nuevoEscenario(t, 0)

	deltas := []int64{7, -3, 20, -30, 4, -1}
	var esperado int64
	aceptados := 0
	for _, d := range deltas {
		mov, err := e.uc.RegistrarAjuste(context.Background(), inventory.AjusteInput{
			ProductoID: prodID, AlmacenID: almID, Cantidad: d,
			Motivo: "prueba", UsuarioID: userID,
		})
		if esperado+d < 0 {
			require.ErrorIs(t, err, domain.ErrInsufficientStock, "delta %d debía rechazarse", d)
			continue
		}
		require.NoError(t, err, "delta %d debía aceptarse", d)
		assert.Equal(t, d, mov.StockNuevo-mov.StockAnterior)
		esperado += d
		aceptados++
	}

	assert.Equal(t, esperado, e.cantidad(t))
	assert.Len(t, e.movs.movimientos, aceptados,
		"debe haber exactamente un movimiento por ajuste aceptado")
}

// Propiedad: producto.stock es siempre la suma de stock_almacen por almacén.
func TestRegistrarAjuste_AgregadoDelProducto(t *testing.T) {
	e := nuevoEscenario(t, 0)

	for _, d := range []int64{10, 5, -3} {
		_, err := e.uc.RegistrarAjuste(context.Background(), inventory.AjusteInput{
			ProductoID: prodID, AlmacenID: almID, Cantidad: d,
			Motivo: "prueba", UsuarioID: userID,
		})
		require.NoError(t, err)

		total, err := e.stock.SumByProducto(prodID)
		require.NoError(t, err)
		p, err := e.producto.GetByID(prodID)
		require.NoError(t, err)
		assert.Equal(t, total, p.Stock, "el agregado debe seguir a la suma por almacén")
	}
}

// El motivo puede venir del catálogo: se resuelve la descripción y debe ser
// un motivo de tipo AJUSTE activo.
func TestRegistrarAjuste_MotivoDeCatalogo(t *testing.T) {
	e := nuevoEscenario(t, 10)

	mov, err := e.uc.RegistrarAjuste(context.Background(), inventory.AjusteInput{
		ProductoID: prodID, AlmacenID: almID, Cantidad: -2,
		MotivoID: "m1", UsuarioID: userID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Merma o deterioro", mov.Motivo)

	_, err = e.uc.RegistrarAjuste(context.Background(), inventory.AjusteInput{
		ProductoID: prodID, AlmacenID: almID, Cantidad: -2,
		MotivoID: "inexistente", UsuarioID: userID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Validaciones de entrada: delta cero, ids vacíos y falta de motivo.
func TestRegistrarAjuste_EntradasInvalidas(t *testing.T) {
	e := nuevoEscenario(t, 10)

	casos := []inventory.AjusteInput{
		{ProductoID: prodID, AlmacenID: almID, Cantidad: 0, Motivo: "x"},
		{ProductoID: "", AlmacenID: almID, Cantidad: 1, Motivo: "x"},
		{ProductoID: prodID, AlmacenID: "", Cantidad: 1, Motivo: "x"},
		{ProductoID: prodID, AlmacenID: almID, Cantidad: 1}, // sin motivo
	}
	for _, in := range casos {
		in.UsuarioID = userID
		_, err := e.uc.RegistrarAjuste(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, e.movs.movimientos)
}

// El producto y el almacén deben existir y estar activos.
func TestRegistrarAjuste_ProductoOAlmacenInactivo(t *testing.T) {
	e := nuevoEscenario(t, 10)

	_, err := e.uc.RegistrarAjuste(context.Background(), inventory.AjusteInput{
		ProductoID: "otro", AlmacenID: almID, Cantidad: 1,
		Motivo: "x", UsuarioID: userID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = e.uc.RegistrarAjuste(context.Background(), inventory.AjusteInput{
		ProductoID: prodID, AlmacenID: "otro", Cantidad: 1,
		Motivo: "x", UsuarioID: userID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
