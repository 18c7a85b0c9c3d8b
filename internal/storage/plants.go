package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/forage/internal/common"
	"github.com/Veraticus/forage/internal/model"
)

const plantColumns = `id, name, latin_name, family, category, description, hero_image,
	images, identification, edibility, uses, ethics, availability`

// GetPlants retrieves every stored plant in insertion order.
func (s *SQLiteStorage) GetPlants(ctx context.Context) ([]model.Plant, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT `+plantColumns+` FROM plants ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query plants: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var plants []model.Plant
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, err
		}
		plants = append(plants, p)
	}
	return plants, rows.Err()
}

// GetPlantByID retrieves a single plant.
func (s *SQLiteStorage) GetPlantByID(ctx context.Context, id string) (*model.Plant, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+plantColumns+` FROM plants WHERE id = ?`, id)
	p, err := scanPlant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("plant %q: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePlant removes a plant by ID.
func (s *SQLiteStorage) DeletePlant(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	return s.deleteByID(ctx, "plants", id)
}

// CountPlants returns the number of stored plants.
func (s *SQLiteStorage) CountPlants(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	return s.count(ctx, "plants")
}

// CommitPlantImport inserts new plants and replaces existing ones in a
// single transaction, with the same failure rules as CommitRecipeImport.
func (s *SQLiteStorage) CommitPlantImport(ctx context.Context, inserts, updates []model.Plant) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validatePlants(inserts); err != nil {
		return err
	}
	if err := validatePlants(updates); err != nil {
		return err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		for i := range inserts {
			if err := insertPlant(ctx, tx, inserts[i]); err != nil {
				return err
			}
		}
		now := time.Now()
		for i := range updates {
			if err := updatePlant(ctx, tx, updates[i], now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Committed plant import",
		"inserted", len(inserts),
		"replaced", len(updates))
	return nil
}

func insertPlant(ctx context.Context, q queryable, p model.Plant) error {
	args, err := plantArgs(p)
	if err != nil {
		return err
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO plants (`+plantColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, args...)
	if isUniqueViolation(err) {
		return fmt.Errorf("plant %q: %w", p.ID, common.ErrDuplicateEntry)
	}
	if err != nil {
		return fmt.Errorf("failed to insert plant %q: %w", p.ID, err)
	}
	return nil
}

func updatePlant(ctx context.Context, q queryable, p model.Plant, now time.Time) error {
	args, err := plantArgs(p)
	if err != nil {
		return err
	}

	args = append(args[1:], now, p.ID)
	result, err := q.ExecContext(ctx, `
		UPDATE plants SET
			name = ?, latin_name = ?, family = ?, category = ?, description = ?, hero_image = ?,
			images = ?, identification = ?, edibility = ?, uses = ?, ethics = ?, availability = ?,
			updated_at = ?
		WHERE id = ?
	`, args...)
	if err != nil {
		return fmt.Errorf("failed to update plant %q: %w", p.ID, err)
	}
	return expectOneRow(result, "plant", p.ID)
}

func plantArgs(p model.Plant) ([]any, error) {
	normalizePlant(&p)

	groups := []struct {
		name  string
		value any
	}{
		{"images", p.Images},
		{"identification", p.Identification},
		{"edibility", p.Edibility},
		{"uses", p.Uses},
		{"ethics", p.Ethics},
		{"availability", p.Availability},
	}

	args := []any{p.ID, p.Name, p.LatinName, p.Family, string(p.Category), p.Description, p.HeroImage}
	for _, g := range groups {
		encoded, err := encodeJSON(g.name, g.value)
		if err != nil {
			return nil, err
		}
		args = append(args, encoded)
	}
	return args, nil
}

func scanPlant(row scanner) (model.Plant, error) {
	var p model.Plant
	var category string
	var images, identification, edibility, uses, ethics, availability string

	err := row.Scan(&p.ID, &p.Name, &p.LatinName, &p.Family, &category, &p.Description, &p.HeroImage,
		&images, &identification, &edibility, &uses, &ethics, &availability)
	if errors.Is(err, sql.ErrNoRows) {
		return p, err
	}
	if err != nil {
		return p, fmt.Errorf("failed to scan plant: %w", err)
	}

	p.Category = model.PlantCategory(category)

	for _, f := range []struct {
		name string
		data string
		dest any
	}{
		{"images", images, &p.Images},
		{"identification", identification, &p.Identification},
		{"edibility", edibility, &p.Edibility},
		{"uses", uses, &p.Uses},
		{"ethics", ethics, &p.Ethics},
		{"availability", availability, &p.Availability},
	} {
		if err := decodeJSON(f.name, f.data, f.dest); err != nil {
			return p, err
		}
	}

	normalizePlant(&p)
	return p, nil
}
