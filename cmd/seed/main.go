// seed populates a fresh database with demo accounts, the materials catalog
// and a stocked, priced distributor so the API is usable out of the box.
//
// Usage: go run ./cmd/seed
// Idempotent: does nothing when user accounts already exist.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/buildmate/buildmate-api/internal/domain/entity"
	"github.com/buildmate/buildmate-api/internal/infrastructure/postgres"
	"github.com/buildmate/buildmate-api/pkg/config"
)

const demoPassword = "password123"

type seedMaterial struct {
	name         string
	category     string
	manufacturer string
	grade        string
	typ          string
	unit         string
}

var catalog = []seedMaterial{
	{"OPC 43 Grade", entity.CategoryCement, "UltraTech", "43", "", "bag"},
	{"OPC 53 Grade", entity.CategoryCement, "UltraTech", "53", "", "bag"},
	{"OPC 43 Grade", entity.CategoryCement, "ACC", "43", "", "bag"},
	{"OPC 53 Grade", entity.CategoryCement, "ACC", "53", "", "bag"},
	{"PPC Cement", entity.CategoryCement, "Ambuja", "PPC", "", "bag"},
	{"TMT Bar 8mm", entity.CategorySteel, "TATA Steel", "Fe 500", "", "kg"},
	{"TMT Bar 10mm", entity.CategorySteel, "TATA Steel", "Fe 500", "", "kg"},
	{"TMT Bar 12mm", entity.CategorySteel, "TATA Steel", "Fe 500", "", "kg"},
	{"TMT Bar 16mm", entity.CategorySteel, "JSW Steel", "Fe 500D", "", "kg"},
	{"TMT Bar 20mm", entity.CategorySteel, "JSW Steel", "Fe 500D", "", "kg"},
	{"Vitrified Tiles 600x600", entity.CategoryTiles, "Kajaria", "", "Vitrified", "box"},
	{"Ceramic Wall Tiles", entity.CategoryTiles, "Kajaria", "", "Ceramic", "box"},
	{"Porcelain Tiles 800x800", entity.CategoryTiles, "Somany", "", "Porcelain", "box"},
	{"Floor Tiles 600x600", entity.CategoryTiles, "Somany", "", "Ceramic", "box"},
	{"Designer Wall Tiles", entity.CategoryTiles, "Nitco", "", "Designer", "box"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("load configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("PostgreSQL connection: %v", err)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		fail("schema migration: %v", err)
	}

	users := postgres.NewUserRepository(pool)
	materials := postgres.NewMaterialRepository(pool)
	inventory := postgres.NewInventoryRepository(pool)
	prices := postgres.NewPriceRepository(pool)

	if existing, err := users.ListDistributors(ctx); err != nil {
		fail("check existing accounts: %v", err)
	} else if len(existing) > 0 {
		fmt.Println("database already seeded, nothing to do")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		fail("hash demo password: %v", err)
	}

	now := time.Now()
	distributor := &entity.User{
		ID:           uuid.NewString(),
		Email:        "distributor@buildmate.com",
		PasswordHash: string(hash),
		Name:         "ABC Building Supplies",
		Role:         entity.RoleDistributor,
		Phone:        "9876543210",
		Address:      "123 Warehouse Street, Mumbai",
		CreatedAt:    now,
	}
	consumer := &entity.User{
		ID:           uuid.NewString(),
		Email:        "consumer@buildmate.com",
		PasswordHash: string(hash),
		Name:         "John Contractor",
		Role:         entity.RoleConsumer,
		Phone:        "9876543211",
		Address:      "456 Construction Site, Mumbai",
		CreatedAt:    now,
	}
	for _, u := range []*entity.User{distributor, consumer} {
		if err := users.Create(ctx, u); err != nil {
			fail("create %s: %v", u.Email, err)
		}
	}
	fmt.Println("demo accounts created (password: " + demoPassword + ")")

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	today := now.UTC().Truncate(24 * time.Hour)
	for _, m := range catalog {
		material := &entity.Material{
			ID:           uuid.NewString(),
			Name:         m.name,
			Category:     m.category,
			Manufacturer: m.manufacturer,
			Grade:        m.grade,
			Type:         m.typ,
			Unit:         m.unit,
			CreatedAt:    now,
		}
		if err := materials.Create(ctx, material); err != nil {
			fail("create material %s: %v", m.name, err)
		}

		// Stock and price every material for the demo distributor so the
		// consumer views have something to show.
		qty := decimal.NewFromInt(int64(rng.Intn(500) + 100))
		if err := inventory.Upsert(ctx, &entity.InventoryRecord{
			ID:            uuid.NewString(),
			DistributorID: distributor.ID,
			MaterialID:    material.ID,
			Quantity:      qty,
			LastUpdated:   now,
		}); err != nil {
			fail("seed inventory for %s: %v", m.name, err)
		}
		price := decimal.NewFromInt(int64(rng.Intn(500) + 200))
		if err := prices.Insert(ctx, &entity.PriceRecord{
			ID:            uuid.NewString(),
			DistributorID: distributor.ID,
			MaterialID:    material.ID,
			Price:         price,
			EffectiveDate: today,
			CreatedAt:     now,
		}); err != nil {
			fail("seed price for %s: %v", m.name, err)
		}
	}
	fmt.Printf("seeded %d materials with inventory and prices\n", len(catalog))
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
