// seedadmin crea (o actualiza) el usuario administrador inicial.
//
// Uso: go run ./cmd/seedadmin -username admin -password <pass> [-name "Administrador"]
// Lee la conexión a PostgreSQL de las mismas variables de entorno que la API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/infrastructure/postgres"
	"github.com/jhoicas/bodega-api/pkg/config"
)

func main() {
	username := flag.String("username", "admin", "username del administrador")
	password := flag.String("password", "", "password en claro (obligatorio)")
	name := flag.String("name", "Administrador", "nombre visible")
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "falta -password")
		os.Exit(1)
	}
	if len(*password) < 8 {
		fmt.Fprintln(os.Stderr, "el password debe tener al menos 8 caracteres")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashear password: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	userRepo := postgres.NewUserRepository(pool)

	existing, err := userRepo.FindByUsername(*username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "buscar usuario: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		// Idempotente: si ya existe, solo rota el password y asegura el rol.
		_, err = pool.Exec(ctx,
			`UPDATE users SET password_hash = $1, role = $2, status = 'active', updated_at = $3 WHERE username = $4`,
			string(hash), entity.RoleAdmin, now, *username)
		if err != nil {
			fmt.Fprintf(os.Stderr, "actualizar admin: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("admin %q actualizado\n", *username)
		return
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     *username,
		PasswordHash: string(hash),
		Name:         *name,
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(user); err != nil {
		fmt.Fprintf(os.Stderr, "crear admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("admin %q creado (id %s)\n", *username, user.ID)
}
