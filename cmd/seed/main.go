// seed crea el esquema de la base de datos y la puebla con datos de prueba:
// dos usuarios (super admin y admin), cinco clientes, siete equipos y ocho
// reparaciones con línea de tiempo realista.
//
// Uso: go run ./cmd/seed
//
// Credenciales de acceso tras el seed:
//
//	Super Admin: superadmin / admin123
//	Admin:       admin1 / admin123
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jdgomez/taller-api/internal/domain/entity"
	"github.com/jdgomez/taller-api/internal/infrastructure/postgres"
	"github.com/jdgomez/taller-api/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	email         TEXT NOT NULL UNIQUE,
	full_name     TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL,
	is_active     BOOLEAN NOT NULL DEFAULT TRUE,
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS customers (
	id              UUID PRIMARY KEY,
	first_name      TEXT NOT NULL,
	last_name       TEXT NOT NULL,
	email           TEXT NOT NULL UNIQUE,
	phone           TEXT NOT NULL,
	address         TEXT NOT NULL DEFAULT '',
	document_type   TEXT NOT NULL,
	document_number TEXT NOT NULL UNIQUE,
	is_active       BOOLEAN NOT NULL DEFAULT TRUE,
	notes           TEXT NOT NULL DEFAULT '',
	created_at      TIMESTAMPTZ NOT NULL,
	updated_at      TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS phones (
	id              UUID PRIMARY KEY,
	customer_id     UUID NOT NULL REFERENCES customers(id),
	brand           TEXT NOT NULL,
	model           TEXT NOT NULL,
	imei            TEXT NOT NULL UNIQUE,
	color           TEXT NOT NULL DEFAULT '',
	purchase_date   TIMESTAMPTZ,
	warranty_expiry TIMESTAMPTZ,
	condition       TEXT NOT NULL,
	is_active       BOOLEAN NOT NULL DEFAULT TRUE,
	notes           TEXT NOT NULL DEFAULT '',
	created_at      TIMESTAMPTZ NOT NULL,
	updated_at      TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_phones_customer ON phones(customer_id);

CREATE TABLE IF NOT EXISTS repairs (
	id                        UUID PRIMARY KEY,
	phone_id                  UUID NOT NULL REFERENCES phones(id),
	customer_id               UUID NOT NULL REFERENCES customers(id),
	issue                     TEXT NOT NULL,
	description               TEXT NOT NULL,
	status                    TEXT NOT NULL,
	priority                  TEXT NOT NULL,
	estimated_cost            NUMERIC(12,2) NOT NULL,
	final_cost                NUMERIC(12,2),
	estimated_duration        DOUBLE PRECISION NOT NULL,
	actual_duration           DOUBLE PRECISION,
	start_date                TIMESTAMPTZ NOT NULL,
	estimated_completion_date TIMESTAMPTZ NOT NULL,
	completion_date           TIMESTAMPTZ,
	technician_notes          TEXT NOT NULL DEFAULT '',
	client_notes              TEXT NOT NULL DEFAULT '',
	created_at                TIMESTAMPTZ NOT NULL,
	updated_at                TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_repairs_phone ON repairs(phone_id);
CREATE INDEX IF NOT EXISTS idx_repairs_customer ON repairs(customer_id);
CREATE INDEX IF NOT EXISTS idx_repairs_status ON repairs(status);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fail("crear esquema: %v", err)
	}
	fmt.Println("esquema creado")

	// Limpiar en orden inverso a las FKs
	for _, table := range []string{"repairs", "phones", "customers", "users"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			fail("limpiar tabla %s: %v", table, err)
		}
	}
	fmt.Println("tablas limpiadas")

	users := seedUsers(ctx, pool)
	customers := seedCustomers(ctx, pool)
	phones := seedPhones(ctx, pool, customers)
	repairs := seedRepairs(ctx, pool, phones)

	fmt.Println()
	fmt.Printf("usuarios:     %d\n", len(users))
	fmt.Printf("clientes:     %d\n", len(customers))
	fmt.Printf("equipos:      %d\n", len(phones))
	fmt.Printf("reparaciones: %d\n", len(repairs))
	fmt.Println()
	fmt.Println("credenciales: superadmin / admin123, admin1 / admin123")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func hash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fail("hash de contraseña: %v", err)
	}
	return string(h)
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		fail("fecha inválida %q: %v", s, err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func money(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func moneyPtr(v int64) *decimal.Decimal {
	d := money(v)
	return &d
}

func floatPtr(v float64) *float64 { return &v }

func seedUsers(ctx context.Context, pool *pgxpool.Pool) []*entity.User {
	repo := postgres.NewUserRepository(pool)
	now := time.Now()

	users := []*entity.User{
		{
			ID:           uuid.NewString(),
			Username:     "superadmin",
			Email:        "superadmin@repairshop.com",
			FullName:     "Super Administrador",
			PasswordHash: hash("admin123"),
			Role:         entity.RoleSuperAdmin,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           uuid.NewString(),
			Username:     "admin1",
			Email:        "admin1@repairshop.com",
			FullName:     "Juan Carlos Técnico",
			PasswordHash: hash("admin123"),
			Role:         entity.RoleAdmin,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
	for _, u := range users {
		if err := repo.Create(u); err != nil {
			fail("crear usuario %s: %v", u.Username, err)
		}
	}
	return users
}

func seedCustomers(ctx context.Context, pool *pgxpool.Pool) []*entity.Customer {
	repo := postgres.NewCustomerRepository(pool)
	now := time.Now()

	customers := []*entity.Customer{
		{
			FirstName: "Juan Carlos", LastName: "Pérez García",
			Email: "juan.perez@email.com", Phone: "+57 300 123 4567",
			Address:      "Calle 15 #23-45, Bucaramanga",
			DocumentType: entity.DocumentCC, DocumentNumber: "1098765432",
			IsActive: true, Notes: "Cliente frecuente, prefiere reparaciones rápidas",
		},
		{
			FirstName: "María Elena", LastName: "Rodríguez Martínez",
			Email: "maria.rodriguez@email.com", Phone: "+57 301 987 6543",
			Address:      "Carrera 27 #45-67, Bucaramanga",
			DocumentType: entity.DocumentCC, DocumentNumber: "1087654321",
			IsActive: true, Notes: "Empresaria, tiene varios dispositivos",
		},
		{
			FirstName: "Carlos Alberto", LastName: "González López",
			Email: "carlos.gonzalez@email.com", Phone: "+57 302 456 7890",
			Address:      "Avenida 33 #12-34, Floridablanca",
			DocumentType: entity.DocumentCE, DocumentNumber: "CE123456789",
			IsActive: false, Notes: "Cliente internacional, comunicación en inglés",
		},
		{
			FirstName: "Ana Sofía", LastName: "Hernández Ruiz",
			Email: "ana.hernandez@email.com", Phone: "+57 303 789 0123",
			Address:      "Calle 42 #18-25, Girón",
			DocumentType: entity.DocumentCC, DocumentNumber: "1076543210",
			IsActive: true, Notes: "Estudiante universitaria, cuidadosa con sus dispositivos",
		},
		{
			FirstName: "Roberto", LastName: "Mendoza Silva",
			Email: "roberto.mendoza@email.com", Phone: "+57 304 555 1234",
			Address:      "Carrera 35 #67-89, Piedecuesta",
			DocumentType: entity.DocumentCC, DocumentNumber: "1065432109",
			IsActive: true, Notes: "Ingeniero, conoce bien de tecnología",
		},
	}
	for _, c := range customers {
		c.ID = uuid.NewString()
		c.CreatedAt = now
		c.UpdatedAt = now
		if err := repo.Create(c); err != nil {
			fail("crear cliente %s: %v", c.Email, err)
		}
	}
	return customers
}

func seedPhones(ctx context.Context, pool *pgxpool.Pool, customers []*entity.Customer) []*entity.Phone {
	repo := postgres.NewPhoneRepository(pool)
	now := time.Now()

	phones := []*entity.Phone{
		{
			CustomerID: customers[0].ID, Brand: "Samsung", Model: "Galaxy S23",
			IMEI: "123456789012345", Color: "Negro",
			PurchaseDate: datePtr("2023-03-15"), WarrantyExpiry: datePtr("2025-03-15"),
			Condition: entity.ConditionGood, IsActive: true,
			Notes: "Protector de pantalla instalado",
		},
		{
			CustomerID: customers[0].ID, Brand: "iPhone", Model: "14 Pro",
			IMEI: "987654321098765", Color: "Azul",
			PurchaseDate: datePtr("2023-09-22"), WarrantyExpiry: datePtr("2024-09-22"),
			Condition: entity.ConditionExcellent, IsActive: true,
			Notes: "Dispositivo en excelente estado",
		},
		{
			CustomerID: customers[1].ID, Brand: "Xiaomi", Model: "Redmi Note 12",
			IMEI: "456789012345678", Color: "Blanco",
			Condition: entity.ConditionFair, IsActive: true,
			Notes: "Pequeños rayones en la pantalla",
		},
		{
			CustomerID: customers[1].ID, Brand: "Samsung", Model: "Galaxy A54",
			IMEI: "111222333444555", Color: "Rosa",
			PurchaseDate: datePtr("2023-12-10"),
			Condition:    entity.ConditionGood, IsActive: true,
			Notes: "Teléfono de trabajo",
		},
		{
			CustomerID: customers[2].ID, Brand: "Huawei", Model: "P50 Pro",
			IMEI: "789012345678901", Color: "Dorado",
			Condition: entity.ConditionDamaged, IsActive: false,
			Notes: "Pantalla quebrada, necesita reemplazo",
		},
		{
			CustomerID: customers[3].ID, Brand: "iPhone", Model: "13",
			IMEI: "666777888999000", Color: "Verde",
			PurchaseDate: datePtr("2022-10-15"),
			Condition:    entity.ConditionGood, IsActive: true,
			Notes: "Uso cuidadoso, estudiante",
		},
		{
			CustomerID: customers[4].ID, Brand: "OnePlus", Model: "11",
			IMEI: "555666777888999", Color: "Negro",
			PurchaseDate: datePtr("2023-06-20"),
			Condition:    entity.ConditionExcellent, IsActive: true,
			Notes: "Ingeniero, manejo técnico excelente",
		},
	}
	for _, p := range phones {
		p.ID = uuid.NewString()
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := repo.Create(p); err != nil {
			fail("crear equipo %s: %v", p.IMEI, err)
		}
	}
	return phones
}

func seedRepairs(ctx context.Context, pool *pgxpool.Pool, phones []*entity.Phone) []*entity.Repair {
	repo := postgres.NewRepairRepository(pool)
	now := time.Now()

	repairs := []*entity.Repair{
		{
			PhoneID: phones[0].ID, CustomerID: phones[0].CustomerID,
			Issue:       "Pantalla quebrada",
			Description: "Pantalla completamente fragmentada después de caída. Touch no responde.",
			Status:      entity.StatusCompleted, Priority: entity.PriorityHigh,
			EstimatedCost: money(150000), FinalCost: moneyPtr(145000),
			EstimatedDuration: 4, ActualDuration: floatPtr(3.5),
			StartDate:               date("2024-01-20"),
			EstimatedCompletionDate: date("2024-01-24"),
			CompletionDate:          datePtr("2024-01-23"),
			TechnicianNotes:         "Reemplazo de pantalla original. Calibración exitosa.",
			ClientNotes:             "Cliente satisfecho con la reparación",
		},
		{
			PhoneID: phones[0].ID, CustomerID: phones[0].CustomerID,
			Issue:       "Batería se agota rápido",
			Description: "La batería dura menos de 4 horas con uso normal.",
			Status:      entity.StatusInProgress, Priority: entity.PriorityMedium,
			EstimatedCost:     money(80000),
			EstimatedDuration: 2,
			StartDate:         date("2024-04-15"),
			TechnicianNotes:   "Diagnóstico: batería degradada. Reemplazo necesario.",
		},
		{
			PhoneID: phones[1].ID, CustomerID: phones[1].CustomerID,
			Issue:       "No carga",
			Description: "El dispositivo no responde al conectar el cargador.",
			Status:      entity.StatusWaitingParts, Priority: entity.PriorityHigh,
			EstimatedCost:     money(120000),
			EstimatedDuration: 6,
			StartDate:         date("2024-04-10"),
			TechnicianNotes:   "Puerto de carga dañado. Esperando repuesto original.",
		},
		{
			PhoneID: phones[2].ID, CustomerID: phones[2].CustomerID,
			Issue:       "Cámara borrosa",
			Description: "Las fotos salen borrosas y con manchas.",
			Status:      entity.StatusPending, Priority: entity.PriorityLow,
			EstimatedCost:     money(95000),
			EstimatedDuration: 3,
			StartDate:         date("2024-04-18"),
			TechnicianNotes:   "Pendiente revisión de lente de cámara",
		},
		{
			PhoneID: phones[2].ID, CustomerID: phones[2].CustomerID,
			Issue:       "Audio distorsionado",
			Description: "El altavoz principal presenta distorsión en volumen alto.",
			Status:      entity.StatusCompleted, Priority: entity.PriorityMedium,
			EstimatedCost: money(65000), FinalCost: moneyPtr(60000),
			EstimatedDuration: 2, ActualDuration: floatPtr(1.5),
			StartDate:               date("2024-03-05"),
			EstimatedCompletionDate: date("2024-03-07"),
			CompletionDate:          datePtr("2024-03-06"),
			TechnicianNotes:         "Reemplazo de altavoz. Pruebas de audio exitosas.",
			ClientNotes:             "Problema resuelto completamente",
		},
		{
			PhoneID: phones[3].ID, CustomerID: phones[3].CustomerID,
			Issue:       "Actualización fallida",
			Description: "El sistema se quedó bloqueado durante una actualización.",
			Status:      entity.StatusCompleted, Priority: entity.PriorityUrgent,
			EstimatedCost: money(45000), FinalCost: moneyPtr(40000),
			EstimatedDuration: 1, ActualDuration: floatPtr(0.5),
			StartDate:               date("2024-02-28"),
			EstimatedCompletionDate: date("2024-03-01"),
			CompletionDate:          datePtr("2024-02-28"),
			TechnicianNotes:         "Recuperación de sistema exitosa. Reinstalación completa.",
			ClientNotes:             "Reparación muy rápida, excelente servicio",
		},
		{
			PhoneID: phones[4].ID, CustomerID: phones[4].CustomerID,
			Issue:       "Pantalla completamente rota",
			Description: "Dispositivo cayó desde segundo piso, múltiples fracturas.",
			Status:      entity.StatusCancelled, Priority: entity.PriorityHigh,
			EstimatedCost:     money(280000),
			EstimatedDuration: 8,
			StartDate:         date("2024-04-12"),
			TechnicianNotes:   "Costo de reparación excede valor del dispositivo. Cliente decidió no proceder.",
			ClientNotes:       "Muy costoso, prefiero comprar nuevo",
		},
		{
			PhoneID: phones[5].ID, CustomerID: phones[5].CustomerID,
			Issue:       "Limpieza por líquido",
			Description: "Dispositivo expuesto a líquido, funciona pero presenta ralentización.",
			Status:      entity.StatusDelivered, Priority: entity.PriorityMedium,
			EstimatedCost: money(85000), FinalCost: moneyPtr(75000),
			EstimatedDuration: 3, ActualDuration: floatPtr(2),
			StartDate:               date("2024-03-25"),
			EstimatedCompletionDate: date("2024-03-28"),
			CompletionDate:          datePtr("2024-03-27"),
			TechnicianNotes:         "Limpieza profunda de componentes. Secado completo. Funcionalidad restaurada.",
			ClientNotes:             "Muy profesional, el teléfono funciona como nuevo",
		},
	}
	for _, r := range repairs {
		r.ID = uuid.NewString()
		if r.EstimatedCompletionDate.IsZero() {
			r.EstimatedCompletionDate = entity.EstimateCompletionDate(r.StartDate, r.EstimatedDuration)
		}
		r.CreatedAt = now
		r.UpdatedAt = now
		if err := repo.Create(r); err != nil {
			fail("crear reparación %q: %v", r.Issue, err)
		}
	}
	return repairs
}
