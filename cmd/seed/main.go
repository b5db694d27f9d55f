// seed puebla los datos mínimos para levantar el sistema: el usuario
// administrador, el almacén principal y el catálogo de motivos de movimiento.
// Es idempotente: los registros que ya existen se dejan intactos.
//
// Uso: go run ./cmd/seed
// El admin se crea con ADMIN_EMAIL y ADMIN_PASSWORD (por defecto
// admin@local / cambiar-ya).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/andinosoft/erp-pyme/internal/domain"
	"github.com/andinosoft/erp-pyme/internal/domain/entity"
	"github.com/andinosoft/erp-pyme/internal/infrastructure/postgres"
	"github.com/andinosoft/erp-pyme/pkg/config"
)

var motivosBase = []entity.MotivoMovimiento{
	{Codigo: "COMPRA", Descripcion: "Recepción de compra", Tipo: entity.MovimientoEntrada},
	{Codigo: "DEVOLUCION_CLIENTE", Descripcion: "Devolución de cliente", Tipo: entity.MovimientoEntrada},
	{Codigo: "VENTA", Descripcion: "Salida por venta", Tipo: entity.MovimientoSalida},
	{Codigo: "DEVOLUCION_PROVEEDOR", Descripcion: "Devolución a proveedor", Tipo: entity.MovimientoSalida},
	{Codigo: "MERMA", Descripcion: "Merma o deterioro", Tipo: entity.MovimientoAjuste},
	{Codigo: "ROBO", Descripcion: "Pérdida por robo", Tipo: entity.MovimientoAjuste},
	{Codigo: "CONTEO", Descripcion: "Corrección por conteo físico", Tipo: entity.MovimientoAjuste},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}
	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	if err := seedAdmin(postgres.NewUsuarioRepository(pool)); err != nil {
		fail("usuario admin: %v", err)
	}
	if err := seedAlmacen(postgres.NewAlmacenRepository(pool)); err != nil {
		fail("almacén principal: %v", err)
	}
	if err := seedMotivos(postgres.NewMotivoRepository(pool)); err != nil {
		fail("catálogo de motivos: %v", err)
	}
	fmt.Println("seed completado")
}

func seedAdmin(repo *postgres.UsuarioRepo) error {
	email := envOr("ADMIN_EMAIL", "admin@local")
	if _, err := repo.FindByEmail(email); err == nil {
		fmt.Printf("admin %s ya existe\n", email)
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword(
		[]byte(envOr("ADMIN_PASSWORD", "cambiar-ya")), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return repo.Create(&entity.Usuario{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Nombre:       "Administrador",
		Rol:          entity.RolAdmin,
		Estado:       entity.UsuarioActivo,
	})
}

func seedAlmacen(repo *postgres.AlmacenRepo) error {
	if _, err := repo.GetByCodigo("PRINCIPAL"); err == nil {
		fmt.Println("almacén PRINCIPAL ya existe")
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return repo.Create(&entity.Almacen{
		ID:     uuid.NewString(),
		Codigo: "PRINCIPAL",
		Nombre: "Almacén principal",
		Activo: true,
	})
}

func seedMotivos(repo *postgres.MotivoRepo) error {
	for _, m := range motivosBase {
		if _, err := repo.GetByCodigo(m.Codigo); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		m.ID = uuid.NewString()
		m.Activo = true
		if err := repo.Create(&m); err != nil {
			return err
		}
		fmt.Printf("motivo %s creado\n", m.Codigo)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
