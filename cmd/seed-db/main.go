package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/orderflow/internal/domain/coupon"
	"github.com/xenking/orderflow/internal/domain/product"
	"github.com/xenking/orderflow/internal/storage/postgres"
)

type productJSON struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	TaxRate decimal.Decimal `json:"taxRate"`
	Stock   int             `json:"stock"`
}

func main() {
	var (
		databaseURL  string
		productsFile string
	)

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&productsFile, "products-file", "db/seed/products.json", "path to products JSON file")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, databaseURL, productsFile); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("seed completed successfully")
}

func run(ctx context.Context, databaseURL, productsFile string) error {
	slog.Info("connecting to database")

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	slog.Info("running migrations")

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	store := postgres.NewStore(pool)

	if err := seedProducts(ctx, store.Catalog, productsFile); err != nil {
		return errors.Wrap(err, "seed products")
	}

	if err := seedCoupons(ctx, store.Coupons, time.Now()); err != nil {
		return errors.Wrap(err, "seed coupons")
	}

	return nil
}

func readProducts(path string) ([]product.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read products file")
	}

	var rows []productJSON
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, errors.Wrap(err, "parse products JSON")
	}

	products := make([]product.Product, 0, len(rows))
	for _, p := range rows {
		if p.ID == "" || !p.Price.IsPositive() || p.Stock < 0 {
			return nil, errors.Errorf("invalid product %q", p.ID)
		}
		products = append(products, product.Product{
			ID:      p.ID,
			Name:    p.Name,
			Price:   p.Price,
			TaxRate: p.TaxRate,
			Stock:   p.Stock,
		})
	}
	return products, nil
}

func seedProducts(ctx context.Context, catalog *postgres.CatalogRepository, productsFile string) error {
	slog.Info("reading products file", slog.String("path", productsFile))

	products, err := readProducts(productsFile)
	if err != nil {
		return err
	}

	slog.Info("upserting products", slog.Int("count", len(products)))

	if err := catalog.Upsert(ctx, products); err != nil {
		return err
	}
	for _, p := range products {
		slog.Info("upserted product", slog.String("id", p.ID), slog.String("name", p.Name))
	}

	return nil
}

// demoCoupons are valid for a year from now.
func demoCoupons(now time.Time) []coupon.CreateRequest {
	end := now.AddDate(1, 0, 0)
	return []coupon.CreateRequest{
		{
			Code:          "SAVE10",
			Title:         "10% off",
			Description:   "10% off orders of 300 or more, up to twice per customer",
			DiscountType:  coupon.DiscountPercentage,
			DiscountValue: decimal.NewFromInt(10),
			MinOrderValue: decimal.NewFromInt(300),
			UsagePerUser:  2,
			StartDate:     now,
			EndDate:       end,
			IsActive:      true,
		},
		{
			Code:          "FLAT200",
			Title:         "Flat 200 off",
			Description:   "200 off orders of 1000 or more, 5000 total budget",
			DiscountType:  coupon.DiscountFixed,
			DiscountValue: decimal.NewFromInt(200),
			MinOrderValue: decimal.NewFromInt(1000),
			UsagePerUser:  1,
			Budget:        decimal.NewNullDecimal(decimal.NewFromInt(5000)),
			StartDate:     now,
			EndDate:       end,
			IsActive:      true,
		},
	}
}

func seedCoupons(ctx context.Context, coupons *postgres.CouponRepository, now time.Time) error {
	slog.Info("seeding demo coupons")

	for _, req := range demoCoupons(now) {
		if err := req.Validate(); err != nil {
			return errors.Wrapf(err, "coupon %s", req.Code)
		}
		if err := coupons.Upsert(ctx, req.Coupon(uuid.NewString(), now)); err != nil {
			return errors.Wrapf(err, "upsert coupon %s", req.Code)
		}

		slog.Info("upserted coupon", slog.String("code", req.Code), slog.String("description", req.Description))
	}

	return nil
}
