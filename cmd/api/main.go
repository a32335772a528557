package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/offerdesk-api/docs"
	"github.com/jhoicas/offerdesk-api/internal/application/usecase"
	"github.com/jhoicas/offerdesk-api/internal/domain/repository"
	"github.com/jhoicas/offerdesk-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/offerdesk-api/internal/infrastructure/pdf"
	"github.com/jhoicas/offerdesk-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/offerdesk-api/internal/interfaces/http"
	"github.com/jhoicas/offerdesk-api/pkg/config"
	"github.com/jhoicas/offerdesk-api/pkg/logger"
)

// store agrupa los repositorios del driver elegido y su cierre.
type store struct {
	organisations repository.OrganisationRepository
	companies     repository.CompanyRepository
	users         repository.UserRepository
	templates     repository.TemplateRepository
	offers        repository.OfferRepository
	close         func()
}

func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (*store, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB, cfg.Store.ConnectTimeout, log)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &store{
			organisations: postgres.NewOrganisationRepository(pool),
			companies:     postgres.NewCompanyRepository(pool),
			users:         postgres.NewUserRepository(pool),
			templates:     postgres.NewTemplateRepository(pool),
			offers:        postgres.NewOfferRepository(pool),
			close:         pool.Close,
		}, nil
	default:
		client, err := mongodb.Connect(ctx, cfg.Mongo, cfg.Store.ConnectTimeout, log)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Mongo.Database)
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return &store{
			organisations: mongodb.NewOrganisationRepository(db),
			companies:     mongodb.NewCompanyRepository(db),
			users:         mongodb.NewUserRepository(db),
			templates:     mongodb.NewTemplateRepository(db),
			offers:        mongodb.NewOfferRepository(db),
			close:         func() { _ = client.Disconnect(context.Background()) },
		}, nil
	}
}

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
		Str("driver", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStore(ctx, cfg, log.Component("store"))
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("conexión al almacén de documentos")
	}
	defer st.close()

	organisationUC := usecase.NewOrganisationUseCase(st.organisations)
	companyUC := usecase.NewCompanyUseCase(st.companies, st.organisations, st.users)
	templateUC := usecase.NewTemplateUseCase(st.templates)
	offerUC := usecase.NewOfferUseCase(st.offers, st.templates, pdf.NewOfferPDFRenderer())

	httpLog := log.Component("http")
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(httpLog),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(httpLog))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: strings.Join([]string{
			fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete, fiber.MethodOptions,
		}, ","),
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	// Un swagger.json regenerado en disco tiene prioridad sobre el registrado en el paquete docs.
	swaggerCfg := swagger.Config{BasePath: "/", Path: "docs", Title: docs.SwaggerInfo.Title}
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		swaggerCfg.FilePath = cfg.HTTP.SwaggerFile
	} else {
		swaggerCfg.FileContent = []byte(docs.SwaggerInfo.ReadDoc())
	}
	app.Use(swagger.New(swaggerCfg))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OrganisationUC: organisationUC,
		CompanyUC:      companyUC,
		TemplateUC:     templateUC,
		OfferUC:        offerUC,
		JWTSecret:      cfg.JWT.Secret,
		JWTIssuer:      cfg.JWT.Issuer,
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

	log.Info().Msg("aplicación detenida")
}
