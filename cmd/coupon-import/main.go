// Command coupon-import loads coupon definitions from gzip-compressed JSON
// Lines files into PostgreSQL.
//
// The import makes two passes. The first feeds every code into a bloom filter
// and keeps the codes the filter has already seen as suspects. The second
// counts suspects exactly, so only real duplicates are rejected, then
// validates and upserts definitions with a pool of workers. A repeated code
// keeps its first definition.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"time"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/go-faster/errors"
	"github.com/google/uuid"
	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/orderflow/internal/domain/coupon"
	"github.com/xenking/orderflow/internal/storage/postgres"
)

const (
	bloomFPR      = 0.001
	progressEvery = 100_000
	maxLineSize   = 1 << 20
)

// definition is one JSON line.
type definition struct {
	Code               string              `json:"code"`
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	DiscountType       string              `json:"discountType"`
	DiscountValue      decimal.Decimal     `json:"discountValue"`
	MinOrderValue      decimal.Decimal     `json:"minOrderValue"`
	MaxUsageCount      *int                `json:"maxUsageCount"`
	UsagePerUser       int                 `json:"usagePerUser"`
	Budget             decimal.NullDecimal `json:"budget"`
	StartDate          time.Time           `json:"startDate"`
	EndDate            time.Time           `json:"endDate"`
	IsActive           *bool               `json:"isActive"`
	ApplicableProducts []string            `json:"applicableProducts"`
	ExcludedProducts   []string            `json:"excludedProducts"`
}

func (d definition) request() coupon.CreateRequest {
	active := true
	if d.IsActive != nil {
		active = *d.IsActive
	}
	return coupon.CreateRequest{
		Code:               d.Code,
		Title:              d.Title,
		Description:        d.Description,
		DiscountType:       coupon.DiscountType(strings.ToLower(d.DiscountType)),
		DiscountValue:      d.DiscountValue,
		MinOrderValue:      d.MinOrderValue,
		MaxUsageCount:      d.MaxUsageCount,
		UsagePerUser:       d.UsagePerUser,
		Budget:             d.Budget,
		StartDate:          d.StartDate,
		EndDate:            d.EndDate,
		IsActive:           active,
		ApplicableProducts: d.ApplicableProducts,
		ExcludedProducts:   d.ExcludedProducts,
	}
}

// upserter stores coupon definitions.
type upserter interface {
	Upsert(ctx context.Context, c *coupon.Coupon) error
}

// report summarizes an import.
type report struct {
	Read       int64
	Imported   int64
	Invalid    int64
	Duplicates int64
}

type importer struct {
	files    []string
	expected uint
	workers  int
	dryRun   bool
	store    upserter
	now      func() time.Time
}

func main() {
	var (
		databaseURL string
		expected    uint
		workers     int
		dryRun      bool
	)

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.UintVar(&expected, "expected", 1_000_000, "expected number of codes, sizes the bloom filter")
	flag.IntVar(&workers, "workers", 8, "concurrent upsert workers")
	flag.BoolVar(&dryRun, "dry-run", false, "validate only, do not write to the database")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		slog.Error("usage: coupon-import [flags] file.jsonl.gz [file.jsonl.gz ...]")
		os.Exit(2)
	}

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" && !dryRun {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	imp := &importer{
		files:    files,
		expected: expected,
		workers:  max(workers, 1),
		dryRun:   dryRun,
		now:      time.Now,
	}
	if err := run(ctx, imp, databaseURL); err != nil {
		slog.Error("coupon import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, imp *importer, databaseURL string) error {
	for _, f := range imp.files {
		if _, err := os.Stat(f); err != nil {
			return errors.Wrapf(err, "check file %s", f)
		}
	}

	if !imp.dryRun {
		slog.Info("connecting to database")

		pool, err := postgres.NewPool(ctx, databaseURL)
		if err != nil {
			return errors.Wrap(err, "connect to database")
		}
		defer pool.Close()

		if err := postgres.RunMigrations(ctx, pool); err != nil {
			return errors.Wrap(err, "run migrations")
		}
		imp.store = postgres.NewCouponRepository(pool)
	}

	rep, err := imp.Run(ctx)
	if err != nil {
		return err
	}

	slog.Info("coupon import completed",
		slog.Int64("read", rep.Read),
		slog.Int64("imported", rep.Imported),
		slog.Int64("invalid", rep.Invalid),
		slog.Int64("duplicates", rep.Duplicates),
		slog.Bool("dry_run", imp.dryRun),
	)
	return nil
}

// Run executes both passes.
func (imp *importer) Run(ctx context.Context) (*report, error) {
	slog.Info("pass 1: scanning codes", slog.Int("files", len(imp.files)))

	dups, err := imp.findDuplicates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "find duplicates")
	}

	slog.Info("pass 2: importing", slog.Int("duplicate_codes", len(dups)))

	rep, err := imp.load(ctx, dups)
	if err != nil {
		return nil, errors.Wrap(err, "import coupons")
	}
	return rep, nil
}

// findDuplicates returns the codes that occur more than once across all
// files.
func (imp *importer) findDuplicates(ctx context.Context) (map[string]struct{}, error) {
	filter := bloom.NewWithEstimates(max(imp.expected, 1), bloomFPR)
	suspects := make(map[string]int)

	for _, path := range imp.files {
		err := streamGzFile(ctx, path, func(line []byte) {
			code, ok := lineCode(line)
			if !ok {
				return
			}
			if filter.TestAndAddString(code) {
				suspects[code] = 0
			}
		})
		if err != nil {
			return nil, err
		}
	}
	if len(suspects) == 0 {
		return map[string]struct{}{}, nil
	}

	// Bloom hits include false positives; count suspects exactly.
	for _, path := range imp.files {
		err := streamGzFile(ctx, path, func(line []byte) {
			code, ok := lineCode(line)
			if !ok {
				return
			}
			if n, suspect := suspects[code]; suspect {
				suspects[code] = n + 1
			}
		})
		if err != nil {
			return nil, err
		}
	}

	dups := make(map[string]struct{})
	for code, n := range suspects {
		if n > 1 {
			dups[code] = struct{}{}
		}
	}
	return dups, nil
}

// lineCode extracts the normalized code of a JSON line.
func lineCode(line []byte) (string, bool) {
	var d struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(line, &d); err != nil {
		return "", false
	}
	code := coupon.NormalizeCode(d.Code)
	return code, code != ""
}

func (imp *importer) load(ctx context.Context, dups map[string]struct{}) (*report, error) {
	var (
		rep  report
		seen = make(map[string]struct{}, len(dups))
		jobs = make(chan *coupon.Coupon, imp.workers*4)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for _, path := range imp.files {
			err := streamGzFile(gctx, path, func(line []byte) {
				n := atomic.AddInt64(&rep.Read, 1)
				if n%progressEvery == 0 {
					slog.Info("pass 2 progress", slog.Int64("lines", n))
				}

				var d definition
				if err := json.Unmarshal(line, &d); err != nil {
					atomic.AddInt64(&rep.Invalid, 1)
					slog.Warn("skipping malformed line", slog.String("file", path), slog.Int64("line", n))
					return
				}
				req := d.request()
				if err := req.Validate(); err != nil {
					atomic.AddInt64(&rep.Invalid, 1)
					slog.Warn("skipping invalid coupon", slog.String("code", d.Code), slog.String("error", err.Error()))
					return
				}
				if _, dup := dups[req.Code]; dup {
					if _, ok := seen[req.Code]; ok {
						atomic.AddInt64(&rep.Duplicates, 1)
						return
					}
					seen[req.Code] = struct{}{}
				}

				select {
				case jobs <- req.Coupon(uuid.NewString(), imp.now()):
				case <-gctx.Done():
				}
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	for range imp.workers {
		g.Go(func() error {
			for c := range jobs {
				if !imp.dryRun {
					if err := imp.store.Upsert(gctx, c); err != nil {
						return errors.Wrapf(err, "upsert coupon %s", c.Code)
					}
				}
				atomic.AddInt64(&rep.Imported, 1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &rep, nil
}

// streamGzFile opens a gzip-compressed file and calls fn for each non-empty
// line. The line is only valid during the call.
func streamGzFile(ctx context.Context, path string, fn func(line []byte)) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	gz, err := pgzip.NewReader(f)
	if err != nil {
		return errors.Wrapf(err, "create gzip reader for %s", path)
	}
	defer func() { _ = gz.Close() }()

	scanner := bufio.NewScanner(gz)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		fn(line)
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "scan %s", path)
	}

	return nil
}
