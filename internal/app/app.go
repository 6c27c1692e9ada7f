package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bloodbank/internal/config"
	"github.com/GlebRadaev/bloodbank/internal/handlers"
	"github.com/GlebRadaev/bloodbank/internal/pg"
	"github.com/GlebRadaev/bloodbank/internal/repo"
	"github.com/GlebRadaev/bloodbank/internal/service"
	"github.com/GlebRadaev/bloodbank/internal/web"
	"github.com/GlebRadaev/bloodbank/pkg/auth"
	"github.com/GlebRadaev/bloodbank/pkg/logger"
	"github.com/GlebRadaev/bloodbank/pkg/mailer"
	"github.com/GlebRadaev/bloodbank/pkg/uploads"
)

const defaultMailFrom = "noreply@bloodbank.local"

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		pool.Close()
	}()
	txManager := pg.NewTXManager(pool)

	notifier, err := newMailer(cfg)
	if err != nil {
		return fmt.Errorf("can't init mailer: %w", err)
	}
	store, err := uploads.NewStore(cfg.UploadDir)
	if err != nil {
		return fmt.Errorf("can't init upload folder: %w", err)
	}

	a.cfg = cfg
	a.repo = repo.New(pool, txManager)
	a.srv = service.New(a.repo, cfg, notifier)

	view, err := web.New(auth.NewSessionManager(cfg.SecretKey), a.srv.ProfileService)
	if err != nil {
		return fmt.Errorf("can't parse templates: %w", err)
	}
	a.api = handlers.New(a.srv, view, store, cfg.UPIID)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// newMailer falls back to logging outgoing mail when no SMTP account is set.
func newMailer(cfg *config.Config) (*mailer.Mailer, error) {
	if cfg.Mail.Username == "" {
		zap.L().Warn("MAIL_USERNAME is empty, emails will only be logged")
		return mailer.New(mailer.LogSender{}, defaultMailFrom)
	}
	sender := mailer.NewSMTPSender(mailer.SMTPConfig{
		Host:     cfg.Mail.Server,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
	})
	return mailer.New(sender, cfg.Mail.Username)
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
