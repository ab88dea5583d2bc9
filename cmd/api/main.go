package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/aeroparts-api/internal/application/reporting"
	"github.com/jhoicas/aeroparts-api/internal/application/usecase"
	"github.com/jhoicas/aeroparts-api/internal/application/workflow"
	"github.com/jhoicas/aeroparts-api/internal/infrastructure/persist"
	httpRouter "github.com/jhoicas/aeroparts-api/internal/interfaces/http"
	"github.com/jhoicas/aeroparts-api/internal/store"
	"github.com/jhoicas/aeroparts-api/pkg/config"
	"github.com/jhoicas/aeroparts-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	// Rehidratar el estado desde el slot persistido; ausente o corrupto
	// arranca vacío.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 5*time.Second)
	snapshots := persist.NewRedisStore(rdb)
	initial := persist.LoadInitial(loadCtx, snapshots, log)
	cancelLoad()

	st := store.New(initial)

	// Persistencia write-behind: cada commit encola su snapshot y el worker
	// lo escribe en segundo plano (latest-wins).
	writer := persist.NewWriter(snapshots, log)
	st.OnCommit(writer.Enqueue)
	writerCtx, stopWriter := context.WithCancel(context.Background())
	go writer.Run(writerCtx)

	engine := workflow.NewEngine(st, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PartUC:      usecase.NewPartUseCase(st),
		InventoryUC: usecase.NewInventoryUseCase(st),
		CustomerUC:  usecase.NewCustomerUseCase(st),
		VendorUC:    usecase.NewVendorUseCase(st),
		QuoteUC:     usecase.NewQuoteUseCase(st),
		InvoiceUC:   usecase.NewInvoiceUseCase(st),
		POUC:        usecase.NewPurchaseOrderUseCase(st),
		AccountsUC:  usecase.NewAccountsUseCase(st),
		Engine:      engine,
		Reports:     reporting.NewFinancialUseCase(st),
		Store:       st,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	// Dejar que el worker drene el último snapshot pendiente antes de salir.
	stopWriter()
	writer.Wait()

	log.Info().Msg("aplicación detenida")
}
