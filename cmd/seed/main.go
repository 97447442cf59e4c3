package main

import (
	"context"
	"fmt"
	"log"

	"prestige/internal/config"
	"prestige/internal/repository"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

// Schema implied by the models. Kept minimal on purpose: full migration
// tooling is out of scope for this project.
const schema = `
CREATE TABLE IF NOT EXISTS houses (
	id         BIGSERIAL PRIMARY KEY,
	number     TEXT NOT NULL UNIQUE,
	state      TEXT NOT NULL DEFAULT 'actif',
	type       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS house_images (
	id         BIGSERIAL PRIMARY KEY,
	src        TEXT NOT NULL UNIQUE,
	house_id   BIGINT REFERENCES houses(id) ON DELETE SET NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS room_images (
	id         BIGSERIAL PRIMARY KEY,
	src        TEXT NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS gallery_images (
	id         BIGSERIAL PRIMARY KEY,
	src        TEXT NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS floor_plan_images (
	id         BIGSERIAL PRIMARY KEY,
	src        TEXT NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS comments (
	id         BIGSERIAL PRIMARY KEY,
	house_id   BIGINT NOT NULL REFERENCES houses(id) ON DELETE CASCADE,
	name       TEXT NOT NULL,
	phone      TEXT NOT NULL,
	request    TEXT NOT NULL,
	text       TEXT NOT NULL,
	date       TIMESTAMPTZ NOT NULL,
	seen       BOOLEAN NOT NULL DEFAULT false,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS users (
	id       BIGSERIAL PRIMARY KEY,
	email    TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS videos (
	id    BIGSERIAL PRIMARY KEY,
	src   TEXT NOT NULL UNIQUE,
	title TEXT NOT NULL
);
`

type seedHouse struct {
	Number string
	State  string
	Type   string
}

type seedHouseImage struct {
	Src         string
	HouseNumber string
}

type seedVideo struct {
	Src   string
	Title string
}

var seedHouses = []seedHouse{
	{"1", "actif", "villa"},
	{"2", "actif", "villa"},
	{"3", "inactif", "villa"},
	{"4", "actif", "duplex"},
	{"5", "actif", "duplex"},
	{"6", "inactif", "appartement"},
	{"7", "actif", "appartement"},
	{"8", "actif", "appartement"},
}

var seedHouseImages = []seedHouseImage{
	{"/assets/houses/villa-1.jpg", "1"},
	{"/assets/houses/villa-2.jpg", "2"},
	{"/assets/houses/villa-3.jpg", "3"},
	{"/assets/houses/duplex-4.jpg", "4"},
	{"/assets/houses/duplex-5.jpg", "5"},
	{"/assets/houses/appart-6.jpg", "6"},
	{"/assets/houses/appart-7.jpg", "7"},
	{"/assets/houses/appart-8.jpg", "8"},
}

var seedRoomImages = []string{
	"/assets/rooms/salon.jpg",
	"/assets/rooms/cuisine.jpg",
	"/assets/rooms/chambre.jpg",
	"/assets/rooms/salle-de-bain.jpg",
	"/assets/rooms/terrasse.jpg",
}

var seedGalleryImages = []string{
	"/assets/gallery/facade.jpg",
	"/assets/gallery/piscine.jpg",
	"/assets/gallery/jardin.jpg",
	"/assets/gallery/entree.jpg",
	"/assets/gallery/vue-nuit.jpg",
}

var seedFloorPlanImages = []string{
	"/assets/plans/villa-rdc.jpg",
	"/assets/plans/villa-etage.jpg",
	"/assets/plans/duplex.jpg",
	"/assets/plans/appartement.jpg",
}

var seedVideos = []seedVideo{
	{"/assets/videos/presentation.mp4", "Découvrez Ambassadeur Prestige"},
	{"/assets/videos/visite-villa.mp4", "Visite virtuelle - Villa"},
	{"/assets/videos/quartier.mp4", "Le quartier"},
}

func main() {
	log.Println("Ambassadeur Prestige seeder")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Seed.AdminPassword == "" {
		log.Fatal("ADMIN_PASSWORD must be set to seed the admin account")
	}

	repo, err := repository.NewPostgresRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()
	db := repo.DB()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}
	log.Println("✅ Schema applied")

	if err := seed(ctx, db, cfg); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("✅ Seeding complete")
}

// seed is idempotent: every record is keyed by a natural identifier (house
// number, image src, video src, user email) and deleted before reinsertion.
func seed(ctx context.Context, db *sqlx.DB, cfg *config.Config) error {
	for _, h := range seedHouses {
		if _, err := db.ExecContext(ctx, `DELETE FROM houses WHERE number = $1`, h.Number); err != nil {
			return fmt.Errorf("delete house %s: %w", h.Number, err)
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO houses (number, state, type) VALUES ($1, $2, $3)`,
			h.Number, h.State, h.Type); err != nil {
			return fmt.Errorf("insert house %s: %w", h.Number, err)
		}
	}
	log.Printf("   houses: %d", len(seedHouses))

	for _, img := range seedHouseImages {
		if _, err := db.ExecContext(ctx, `DELETE FROM house_images WHERE src = $1`, img.Src); err != nil {
			return fmt.Errorf("delete house image %s: %w", img.Src, err)
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO house_images (src, house_id)
			 SELECT $1, id FROM houses WHERE number = $2`,
			img.Src, img.HouseNumber); err != nil {
			return fmt.Errorf("insert house image %s: %w", img.Src, err)
		}
	}
	log.Printf("   house images: %d", len(seedHouseImages))

	catalogs := []struct {
		table string
		srcs  []string
	}{
		{"room_images", seedRoomImages},
		{"gallery_images", seedGalleryImages},
		{"floor_plan_images", seedFloorPlanImages},
	}
	for _, cat := range catalogs {
		for _, src := range cat.srcs {
			if _, err := db.ExecContext(ctx,
				fmt.Sprintf(`DELETE FROM %s WHERE src = $1`, cat.table), src); err != nil {
				return fmt.Errorf("delete %s %s: %w", cat.table, src, err)
			}
			if _, err := db.ExecContext(ctx,
				fmt.Sprintf(`INSERT INTO %s (src) VALUES ($1)`, cat.table), src); err != nil {
				return fmt.Errorf("insert %s %s: %w", cat.table, src, err)
			}
		}
		log.Printf("   %s: %d", cat.table, len(cat.srcs))
	}

	for _, v := range seedVideos {
		if _, err := db.ExecContext(ctx, `DELETE FROM videos WHERE src = $1`, v.Src); err != nil {
			return fmt.Errorf("delete video %s: %w", v.Src, err)
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO videos (src, title) VALUES ($1, $2)`, v.Src, v.Title); err != nil {
			return fmt.Errorf("insert video %s: %w", v.Src, err)
		}
	}
	log.Printf("   videos: %d", len(seedVideos))

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), cfg.Seed.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM users WHERE email = $1`, cfg.Seed.AdminEmail); err != nil {
		return fmt.Errorf("delete admin user: %w", err)
	}
	if _, err := db.ExecContext(ctx,
		`INSERT INTO users (email, password) VALUES ($1, $2)`,
		cfg.Seed.AdminEmail, string(hash)); err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}
	log.Printf("   admin user: %s", cfg.Seed.AdminEmail)

	return nil
}
