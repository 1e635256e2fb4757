// Package main LendIt API.
//
// @title           LendIt API
// @version         1.0
// @description     Campus peer-to-peer rentals: list, borrow, meter and settle items.
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <session token>
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Bennnhere/LendIt-app/app/echoServer"
	broadcastctrl "github.com/Bennnhere/LendIt-app/app/echoServer/controller/broadcast"
	itemctrl "github.com/Bennnhere/LendIt-app/app/echoServer/controller/item"
	rentalctrl "github.com/Bennnhere/LendIt-app/app/echoServer/controller/rental"
	sessionctrl "github.com/Bennnhere/LendIt-app/app/echoServer/controller/session"
	settlementctrl "github.com/Bennnhere/LendIt-app/app/echoServer/controller/settlement"
	"github.com/Bennnhere/LendIt-app/app/echoServer/validation"
	"github.com/Bennnhere/LendIt-app/config"
	notifierrepo "github.com/Bennnhere/LendIt-app/repository/notifier"
	sessionrepo "github.com/Bennnhere/LendIt-app/repository/session"
	broadcastsvc "github.com/Bennnhere/LendIt-app/service/broadcast"
	listingsvc "github.com/Bennnhere/LendIt-app/service/listing"
	rentalsvc "github.com/Bennnhere/LendIt-app/service/rental"
	sessionsvc "github.com/Bennnhere/LendIt-app/service/session"
	settlementsvc "github.com/Bennnhere/LendIt-app/service/settlement"
	"github.com/Bennnhere/LendIt-app/util/metrics"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(log)

	// catalog
	catalog := config.DefaultCatalog()
	if cfg.SeedPath != "" {
		c, err := config.LoadCatalog(cfg.SeedPath)
		if err != nil {
			log.Error("catalog load failed", "path", cfg.SeedPath, "err", err)
			os.Exit(1)
		}
		catalog = c
	}

	// repos
	var sr sessionrepo.Repo
	switch cfg.Backend {
	case "redis":
		rdb := sessionrepo.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer rdb.Close()
		if err := sessionrepo.Ping(ctx, rdb); err != nil {
			log.Error("redis connect failed", "addr", cfg.Redis.Addr, "err", err)
			os.Exit(1)
		}
		sr = sessionrepo.NewRedis(rdb, cfg.SessionTTL)
	case "memory":
		sr = sessionrepo.NewMemory()
		// redis expires keys on its own; memory needs a sweeper
		go sessionsvc.NewCleaner(sr, cfg.SessionTTL, log).Run(ctx, time.Minute)
	default:
		log.Error("unknown session backend", "backend", cfg.Backend)
		os.Exit(1)
	}

	nr, err := buildNotifier(cfg.Notify, log)
	if err != nil {
		log.Error("notifier setup failed", "err", err)
		os.Exit(1)
	}

	// services
	sess := sessionsvc.New(sr, sessionsvc.Config{Secret: cfg.SessionSecret, TTL: cfg.SessionTTL, Catalog: catalog})
	ls := listingsvc.New(sr)
	rs := rentalsvc.New(sr, time.Now)
	ss := settlementsvc.New(sr, time.Now, cfg.Currency)
	bs := broadcastsvc.New(sr, nr)

	// controllers
	v := validation.NewValidate()
	sessionC := &sessionctrl.Controller{Svc: sess, Log: log}
	itemC := &itemctrl.Controller{Svc: ls, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, Log: log}
	settlementC := &settlementctrl.Controller{Svc: ss, V: v, Log: log}
	broadcastC := &broadcastctrl.Controller{Svc: bs, V: v, Log: log}

	// echo
	e := echo.New()
	e.HideBanner = true
	metrics.Register()
	echoServer.RegisterMiddlewares(e, log)
	e.Validator = validation.New(v)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":  "ok",
			"backend": cfg.Backend,
		})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Session:    sessionC,
		Item:       itemC,
		Rental:     rentalC,
		Settlement: settlementC,
		Broadcast:  broadcastC,

		SessionSecret: cfg.SessionSecret,
	})

	log.Info("starting server", "port", cfg.Port, "env", cfg.Env, "backend", cfg.Backend)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "err", err)
	}
	log.Info("server stopped")
}

func buildNotifier(cfg config.Notify, log *slog.Logger) (notifierrepo.Repo, error) {
	var rs []notifierrepo.Repo
	for _, b := range cfg.Backends {
		switch b {
		case "log":
			rs = append(rs, notifierrepo.NewLog(log))
		case "telegram":
			if cfg.TelegramToken == "" || cfg.TelegramChatID == 0 {
				return nil, errors.New("telegram notifier needs TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID")
			}
			tg, err := notifierrepo.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
			if err != nil {
				return nil, fmt.Errorf("telegram: %w", err)
			}
			rs = append(rs, tg)
		case "webhook":
			if cfg.WebhookURL == "" {
				return nil, errors.New("webhook notifier needs BROADCAST_WEBHOOK_URL")
			}
			rs = append(rs, notifierrepo.NewWebhook(cfg.WebhookURL))
		default:
			return nil, fmt.Errorf("unknown notifier %q", b)
		}
	}
	if len(rs) == 0 {
		rs = append(rs, notifierrepo.NewLog(log))
	}
	if len(rs) == 1 {
		return rs[0], nil
	}
	return notifierrepo.NewMulti(rs...), nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

