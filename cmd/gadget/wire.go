package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iss-display-gadget/internal/adapters/cache"
	"iss-display-gadget/internal/adapters/device"
	"iss-display-gadget/internal/adapters/geocode"
	"iss-display-gadget/internal/adapters/network"
	"iss-display-gadget/internal/adapters/ntpclock"
	"iss-display-gadget/internal/adapters/opennotify"
	"iss-display-gadget/internal/adapters/repositories"
	"iss-display-gadget/internal/api"
	"iss-display-gadget/internal/config"
	"iss-display-gadget/internal/domain"
	"iss-display-gadget/internal/platform/db"
	"iss-display-gadget/internal/platform/httpclient"
	"iss-display-gadget/internal/ports"
	"iss-display-gadget/internal/services"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type app struct {
	gadget *services.Gadget
	server *http.Server

	closeOnce sync.Once
	closers   []func() error
}

func (a *app) Close() {
	a.closeOnce.Do(func() {
		for i := len(a.closers) - 1; i >= 0; i-- {
			if err := a.closers[i](); err != nil {
				log.Printf("close: %v", err)
			}
		}
	})
}

// build wires the concrete adapters. Storage and cache problems are logged
// and the feature disabled; only a missing display is fatal.
func build(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{}

	display, backlight, panel, err := openDevice(a, cfg)
	if err != nil {
		return nil, err
	}

	virtual := &device.VirtualButtons{}
	mirror := device.NewMirror(display, backlight)
	sleeper := services.SystemSleeper{}
	screen := services.NewScreen(mirror, mirror, sleeper)

	client := httpclient.New(httpclient.Options{
		Timeout:     cfg.HTTP.Timeout,
		MaxAttempts: cfg.HTTP.MaxAttempts,
	})

	positions, err := opennotify.NewClient(client, cfg.ISS.PositionURL)
	if err != nil {
		return nil, err
	}

	var geocoder ports.ReverseGeocoder
	geocoder, err = geocode.NewMapsCoGeocoder(client, cfg.Geocode.URL, cfg.Geocode.APIKey)
	if err != nil {
		return nil, err
	}

	database := openStorage(a, cfg)

	var history ports.ObservationRepository
	if database != nil {
		history = repositories.NewSQLObservationRepository(database, cfg.Storage.Driver)
	}

	if gc := openGeocodeCache(ctx, a, cfg, database); gc != nil {
		cached, err := geocode.NewCachedGeocoder(geocoder, gc, cfg.Cache.Precision)
		if err != nil {
			return nil, err
		}
		geocoder = cached
	}

	tracker, err := services.NewISSTracker(positions, geocoder, history, screen, sleeper, services.TrackerConfig{
		Reference:       domain.Coordinates{Lat: cfg.Device.Lat, Lon: cfg.Device.Lon},
		RefreshInterval: cfg.ISS.RefreshInterval,
		LabelMaxLen:     cfg.Label.MaxLen,
	})
	if err != nil {
		return nil, err
	}

	modes := map[domain.Mode]services.ModeRunner{
		domain.ModeClock:   services.NewClockMode(screen, ntpclock.New(cfg.NTP.Server, 0), sleeper),
		domain.ModeWeather: services.NewWeatherMode(screen),
		domain.ModeISS:     tracker,
		domain.ModeGame:    services.NewGameMode(screen),
		domain.ModeSetup:   services.NewSetupMode(screen, nil),
	}

	connector := network.NewProbeConnector(cfg.Network.ProbeAddr, cfg.Wifi.SSID, 0)
	a.gadget, err = services.NewGadget(screen, connector, device.MultiPanel{panel, virtual}, sleeper, modes, services.GadgetConfig{
		PollInterval:   cfg.Buttons.PollInterval,
		ConnectTimeout: cfg.Network.ConnectTimeout,
	})
	if err != nil {
		return nil, err
	}

	if cfg.API.Addr != "" {
		a.server = &http.Server{
			Addr: cfg.API.Addr,
			Handler: api.NewRouter(api.Options{
				Frames:     mirror,
				Buttons:    virtual,
				History:    history,
				CORSOrigin: cfg.API.CORSOrigin,
				JWTSecret:  cfg.API.JWTSecret,
			}),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}

	return a, nil
}

func openDevice(a *app, cfg *config.Config) (ports.Display, ports.Backlight, ports.ButtonPanel, error) {
	if cfg.Device.Driver != "periph" {
		log.Println("device driver=console")
		return &device.ConsoleDisplay{}, device.ConsoleBacklight{Quiet: true}, device.MultiPanel{}, nil
	}

	pc := device.PeriphConfig{
		I2CBus:     cfg.Device.Periph.I2CBus,
		ButtonPins: cfg.Device.Periph.ButtonPins,
	}
	if len(cfg.Device.Periph.BacklightPins) != len(pc.BacklightPins) {
		return nil, nil, nil, errors.New("periph: backlight needs red, green and blue pins")
	}
	copy(pc.BacklightPins[:], cfg.Device.Periph.BacklightPins)

	p, err := device.OpenPeriph(pc)
	if err != nil {
		return nil, nil, nil, err
	}
	a.closers = append(a.closers, p.Close)

	log.Printf("device driver=periph i2c=%s", pc.I2CBus)
	return p, p, p, nil
}

func openStorage(a *app, cfg *config.Config) *sql.DB {
	if cfg.Storage.Driver == "" {
		return nil
	}

	database, err := db.Open(cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		log.Printf("storage disabled: %v", err)
		return nil
	}
	if err := repositories.InitSchema(database, cfg.Storage.Driver); err != nil {
		log.Printf("storage disabled: %v", err)
		database.Close()
		return nil
	}
	a.closers = append(a.closers, database.Close)

	log.Printf("storage driver=%s", cfg.Storage.Driver)
	return database
}

func openGeocodeCache(ctx context.Context, a *app, cfg *config.Config, database *sql.DB) ports.GeocodeCache {
	switch cfg.Cache.Backend {
	case "sql":
		if database == nil {
			log.Println("geocode cache disabled: no storage")
			return nil
		}
		if cfg.Storage.Driver == db.DriverPostgres {
			return cache.NewSQLGeocodeCache(database, cfg.Cache.TTL)
		}
		return cache.NewSqliteGeocodeCache(database, cfg.Cache.TTL)

	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr})
		pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := client.Ping(pctx).Err(); err != nil {
			log.Printf("geocode cache disabled: %v", fmt.Errorf("redis %s: %w", cfg.Cache.RedisAddr, err))
			client.Close()
			return nil
		}
		a.closers = append(a.closers, client.Close)
		return cache.NewRedisGeocodeCache(client, cfg.Cache.TTL)

	default:
		return nil
	}
}
