package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/backoffice-api/docs"
	"github.com/jhoicas/backoffice-api/internal/application/auth"
	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	infraemail "github.com/jhoicas/backoffice-api/internal/infrastructure/email"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/backoffice-api/internal/infrastructure/pdf"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/backoffice-api/internal/interfaces/http"
	"github.com/jhoicas/backoffice-api/pkg/config"
	"github.com/jhoicas/backoffice-api/pkg/logger"
)

// repositories adaptadores de persistencia según el driver configurado.
type repositories struct {
	companies repository.CompanyRepository
	users     repository.UserRepository
	roles     repository.RoleRepository
	cities    repository.CityRepository
	payments  repository.PaymentRepository
	tx        ports.TxRunner
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar persistencia")
	}
	defer repos.close()

	var mailer ports.EmailSender
	if cfg.SMTP.Enabled() {
		mailer = infraemail.NewSMTPSender(cfg.SMTP, cfg.App.Name, cfg.JWT.ResetExpiration)
	} else {
		log.Warn().Msg("SMTP no configurado: los correos solo se registran en el log")
		mailer = infraemail.NewLogSender(log.Zerolog(), cfg.SMTP.ResetURL)
	}

	tokens := auth.NewTokenService(cfg.JWT)
	authUC := auth.NewAuthUseCase(repos.users, repos.companies, repos.roles, tokens, mailer, log.Zerolog())
	companyUC := usecase.NewCompanyUseCase(repos.companies, repos.cities, repos.users, repos.tx, mailer, log.Zerolog())
	userUC := usecase.NewUserUseCase(repos.users, repos.companies)
	cityUC := usecase.NewCityUseCase(repos.cities)
	paymentUC := usecase.NewPaymentUseCase(repos.payments, infrapdf.NewReceiptGenerator(cfg.App.Name))

	if cfg.App.AdminEmail != "" && cfg.App.AdminPassword != "" {
		if err := authUC.EnsureAdmin(ctx, cfg.App.AdminEmail, cfg.App.AdminPassword); err != nil {
			log.Fatal().Err(err).Msg("crear administrador inicial")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, x-token, x-reset-token",
	}))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       cfg.App.Name + " API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		CompanyUC: companyUC,
		UserUC:    userUC,
		CityUC:    cityUC,
		PaymentUC: paymentUC,
		Metrics:   httpRouter.NewMetrics("backoffice"),
		Log:       log.Zerolog(),
		AppName:   cfg.App.Name,
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

func openRepositories(ctx context.Context, cfg *config.Config, log *logger.Logger) (*repositories, error) {
	if cfg.DB.Driver == config.DriverMemory {
		log.Warn().Msg("driver memory: los datos se pierden al reiniciar")
		store := memory.NewStore()
		for _, c := range demoCities {
			store.AddCity(c)
		}
		return &repositories{
			companies: store.Companies(),
			users:     store.Users(),
			roles:     store.Roles(),
			cities:    store.Cities(),
			payments:  store.Payments(),
			tx:        store,
			close:     func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB, log.Zerolog())
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, log.Zerolog()); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return &repositories{
		companies: postgres.NewCompanyRepository(pool),
		users:     postgres.NewUserRepository(pool),
		roles:     postgres.NewRoleRepository(pool),
		cities:    postgres.NewCityRepository(pool),
		payments:  postgres.NewPaymentRepository(pool),
		tx:        postgres.NewTxRunner(pool),
		close:     pool.Close,
	}, nil
}

// demoCities catálogo mínimo para el driver memory (en PostgreSQL lo carga la migración 003).
var demoCities = []entity.City{
	{ID: 1, Name: "arica", Region: "arica y parinacota"},
	{ID: 2, Name: "iquique", Region: "tarapacá"},
	{ID: 3, Name: "antofagasta", Region: "antofagasta"},
}
