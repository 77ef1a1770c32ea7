package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/xenking/orderflow/gen/oas"
	"github.com/xenking/orderflow/internal/domain/coupon"
	"github.com/xenking/orderflow/internal/domain/inventory"
	"github.com/xenking/orderflow/internal/domain/order"
	"github.com/xenking/orderflow/internal/domain/payment"
	"github.com/xenking/orderflow/internal/domain/product"
	"github.com/xenking/orderflow/internal/domain/sequence"
	"github.com/xenking/orderflow/internal/gateway/razorpay"
	"github.com/xenking/orderflow/internal/gateway/sandbox"
	"github.com/xenking/orderflow/internal/handler"
	"github.com/xenking/orderflow/internal/storage/memory"
	"github.com/xenking/orderflow/internal/storage/postgres"
	"github.com/xenking/orderflow/pkg/health"
	"github.com/xenking/orderflow/pkg/httpmiddleware"
)

// repositories is the storage a server runs on, whichever driver backs it.
type repositories struct {
	counters     sequence.CounterStore
	catalog      product.Catalog
	coupons      coupon.Repository
	orders       order.Repository
	transactions payment.Repository
}

// openStore connects the configured driver. The returned close func releases
// it; ping is nil for stores without a remote dependency.
func openStore(ctx context.Context, lg *zap.Logger, cfg *Config) (_ repositories, ping health.CheckFunc, closeFn func(), _ error) {
	if cfg.Store == StoreMemory {
		lg.Warn("Using in-memory store, data is lost on restart")
		s := memory.New()
		return repositories{
			counters:     s.Counters,
			catalog:      s.Catalog,
			coupons:      s.Coupons,
			orders:       s.Orders,
			transactions: s.Transactions,
		}, nil, func() {}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return repositories{}, nil, nil, errors.Wrap(err, "create db pool")
	}
	if err := postgres.RunMigrations(ctx, pool); err != nil {
		pool.Close()
		return repositories{}, nil, nil, errors.Wrap(err, "run migrations")
	}
	s := postgres.NewStore(pool)
	return repositories{
		counters:     s.Counters,
		catalog:      s.Catalog,
		coupons:      s.Coupons,
		orders:       s.Orders,
		transactions: s.Transactions,
	}, pool.Ping, pool.Close, nil
}

// newGateway returns the Razorpay gateway, or the sandbox when the config
// opts into it. Config.Validate has already rejected configs with neither.
func newGateway(lg *zap.Logger, cfg PaymentConfig) payment.Gateway {
	if cfg.Sandbox {
		lg.Warn("Payment sandbox enabled, no real money moves")
		return sandbox.New(cfg.KeySecret)
	}
	return razorpay.New(cfg.KeyID, cfg.KeySecret, cfg.AutoCapture)
}

// Run creates all dependencies, starts the HTTP server, and handles graceful
// shutdown. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing",
		zap.String("addr", cfg.Addr),
		zap.String("store", cfg.Store),
	)

	repos, storePing, closeStore, err := openStore(ctx, lg, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	// Health check service. Only the database takes the server out of
	// rotation: the limiter fails open without Redis, and a gateway outage
	// still leaves orders, coupons and cash on delivery working.
	healthSvc := health.New()
	if storePing != nil {
		healthSvc.Register(health.Readiness, health.Check{
			Name:    "postgres",
			Func:    health.PingCheck(storePing),
			Timeout: 2 * time.Second,
		})
	}
	healthSvc.Register(health.Liveness, health.Check{
		Name: "goroutines",
		Func: health.GoroutineCountCheck(10000),
	})

	var rdb *redis.Client
	if cfg.RateLimit.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RateLimit.RedisAddr})
		defer func() { _ = rdb.Close() }()
		healthSvc.Register(health.Readiness, health.Check{
			Name:     "redis",
			Func:     health.RedisCheck(rdb),
			Severity: health.Degraded,
		})
	}

	// Domain services.
	shipping, err := cfg.Shipping.Policy()
	if err != nil {
		return errors.Wrap(err, "shipping policy")
	}
	paymentService := payment.NewService(repos.transactions, newGateway(lg, cfg.Payment), payment.Config{
		KeySecret:   cfg.Payment.KeySecret,
		Currency:    cfg.Payment.Currency,
		AutoCapture: cfg.Payment.AutoCapture,
	})
	couponService := coupon.NewService(repos.coupons)
	orderService, err := order.NewService(
		repos.orders,
		inventory.NewLedger(repos.catalog),
		couponService,
		sequence.NewGenerator(repos.counters),
		paymentService,
		order.WithShippingPolicy(shipping),
		order.WithMeterProvider(m.MeterProvider()),
	)
	if err != nil {
		return errors.Wrap(err, "create order service")
	}
	healthSvc.Register(health.Readiness, health.Check{
		Name:             "payment_gateway",
		Func:             paymentService.CheckGateway,
		Severity:         health.Degraded,
		FailureThreshold: 1,
	})

	// HTTP handlers.
	h := handler.NewHandler(
		handler.HandlerConfig{KeyID: cfg.Payment.KeyID},
		orderService,
		couponService,
		paymentService,
	)
	securityHandler := handler.NewSecurityHandler([]byte(cfg.Auth.Secret), cfg.Auth.Issuer)
	oasServer, err := handler.NewServer(h, securityHandler,
		oas.WithTracerProvider(m.TracerProvider()),
		oas.WithMeterProvider(m.MeterProvider()),
	)
	if err != nil {
		return errors.Wrap(err, "create API server")
	}

	// Mux: health endpoints + ogen API routes on one server.
	routeFinder := httpmiddleware.MakeRouteFinder(oasServer.FindPath)
	mux := http.NewServeMux()
	mux.HandleFunc("/livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("/readyz", healthSvc.ReadyEndpoint)
	mux.Handle("/api/", oasServer)

	rateLimitCfg := httpmiddleware.RateLimitConfig{
		Max:    cfg.RateLimit.Max,
		Window: cfg.RateLimit.Window,
		Exempt: func(r *http.Request) bool {
			return r.URL.Path == "/livez" || r.URL.Path == "/readyz"
		},
	}
	rateLimit := httpmiddleware.RateLimitWithCleanup(ctx, rateLimitCfg)
	if rdb != nil {
		rateLimit = httpmiddleware.RedisRateLimit(rdb, rateLimitCfg)
	}

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		Addr:              cfg.Addr,
		Handler: httpmiddleware.Wrap(mux,
			httpmiddleware.InjectLogger(lg),
			httpmiddleware.Recovery(),
			httpmiddleware.Instrument("orderflow-api", routeFinder, m),
			httpmiddleware.RequestID(),
			httpmiddleware.LogRequests(routeFinder),
			httpmiddleware.Labeler(routeFinder),
			httpmiddleware.CORS(httpmiddleware.CORSConfig{
				Origins:          cfg.CORS.Origins,
				AllowCredentials: cfg.CORS.AllowCredentials,
				MaxAge:           cfg.CORS.MaxAge,
			}, routeFinder),
			rateLimit,
		),
	}

	healthSvc.Start(ctx, 10*time.Second)
	healthSvc.SetReady(true)

	// Graceful shutdown: wait for context cancellation, drain, then stop.
	shutdownDone := make(chan struct{})
	go func() {
		<-ctx.Done()
		healthSvc.SetReady(false)
		lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
		time.Sleep(cfg.Graceful.ReadinessDelay)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("Server shutdown error", zap.Error(err))
		}
		healthSvc.Stop()
		close(shutdownDone)
	}()

	lg.Info("Server listening", zap.String("addr", cfg.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server")
	}
	<-shutdownDone
	return nil
}
