package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"storefront/domain"
	"storefront/internal/repository/postgres"
	"storefront/pkg/config"
	"storefront/pkg/database"
	"storefront/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a product catalog from YAML into an empty database",
	RunE:  runSeed,
}

var seedFile string

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Path to catalog YAML file (required)")
	if err := seedCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(seedCmd)
}

type catalogFile struct {
	Products []domain.Product `yaml:"products"`
}

// loadCatalogFile reads a YAML catalog. Products without an id get a
// fresh UUID and products without keywords get an empty list.
func loadCatalogFile(path string) ([]domain.Product, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	seen := make(map[domain.ID]struct{}, len(file.Products))
	for i := range file.Products {
		p := &file.Products[i]
		if strings.TrimSpace(p.ID.String()) == "" {
			p.ID = domain.ID(uuid.NewString())
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q in catalog", p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.Keywords == nil {
			p.Keywords = domain.Keywords{}
		}
	}

	return file.Products, nil
}

func runSeed(cmd *cobra.Command, _ []string) error {
	products, err := loadCatalogFile(seedFile)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Init(cfg.App.Environment)
	defer logger.Sync()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	repo := postgres.NewProductRepository(db)
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("catalog already seeded, skipping", "products", count)
		return nil
	}

	// Stagger timestamps so catalog order follows the file.
	base := time.Now()
	for i := range products {
		products[i].CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
		products[i].UpdatedAt = products[i].CreatedAt
	}

	if err := repo.CreateBatch(ctx, products); err != nil {
		return err
	}

	logger.Info("catalog seeded", "products", len(products))
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d products\n", len(products))
	return nil
}
