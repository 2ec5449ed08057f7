package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/daynight/app/enum"
	"github.com/umputun/daynight/app/server"
	"github.com/umputun/daynight/app/store"
)

var opts struct {
	Storage   string `long:"storage" env:"DAYNIGHT_STORAGE" default:"cookie" choice:"cookie" choice:"db" description:"where the theme preference is kept"`
	DB        string `short:"d" long:"db" env:"DAYNIGHT_DB" default:"daynight.db" description:"database URL for db storage (sqlite file or postgres://...)"`
	CacheSize int    `long:"cache-size" env:"DAYNIGHT_CACHE_SIZE" default:"1000" description:"max cached preferences for db storage"`

	Server struct {
		Address         string        `long:"address" env:"ADDRESS" default:":8080" description:"server listen address"`
		ReadTimeout     time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		WriteTimeout    time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" default:"30s" description:"write timeout"`
		IdleTimeout     time.Duration `long:"idle-timeout" env:"IDLE_TIMEOUT" default:"30s" description:"idle timeout"`
		ShutdownTimeout time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" default:"5s" description:"graceful shutdown timeout"`
		BaseURL         string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /daynight)"`
	} `group:"server" namespace:"server" env-namespace:"DAYNIGHT_SERVER"`

	Cookie struct {
		Secure       bool `long:"secure" env:"SECURE" description:"send cookies over https only"`
		ScriptAccess bool `long:"script-access" env:"SCRIPT_ACCESS" description:"let page scripts read the theme cookie (no HttpOnly)"`
	} `group:"cookie" namespace:"cookie" env-namespace:"DAYNIGHT_COOKIE"`

	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `long:"version" description:"show version and exit"`
}

var revision = "unknown"

func main() {
	fmt.Printf("daynight %s\n", revision)

	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	if opts.Version {
		os.Exit(0)
	}

	setupLogs(opts.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel)

	if err := run(ctx); err != nil {
		log.Printf("[ERROR] failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	storage, err := enum.ParseStorage(opts.Storage)
	if err != nil {
		return fmt.Errorf("invalid storage: %w", err)
	}
	log.Printf("[INFO] starting daynight server on %s, storage %s", opts.Server.Address, storage)

	var prefs server.PrefStore
	var cached *store.Cached
	if storage == enum.StorageDB {
		db, dbErr := store.New(opts.DB)
		if dbErr != nil {
			return fmt.Errorf("failed to initialize store: %w", dbErr)
		}
		var cacheErr error
		cached, cacheErr = store.NewCached(db, opts.CacheSize)
		if cacheErr != nil {
			_ = db.Close()
			return fmt.Errorf("failed to initialize cache: %w", cacheErr)
		}
		defer cached.Close()
		prefs = cached
	}

	srv, err := server.New(prefs, server.Config{
		Address:         opts.Server.Address,
		ReadTimeout:     opts.Server.ReadTimeout,
		WriteTimeout:    opts.Server.WriteTimeout,
		IdleTimeout:     opts.Server.IdleTimeout,
		ShutdownTimeout: opts.Server.ShutdownTimeout,
		Version:         revision,
		BaseURL:         opts.Server.BaseURL,
		Storage:         storage,
		SecureCookies:   opts.Cookie.Secure,
		HTTPOnlyCookies: !opts.Cookie.ScriptAccess,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	if cached != nil {
		log.Printf("[INFO] cache stats: %+v", cached.Stats())
	}
	return nil
}

func setupLogs(debug bool) {
	log.Setup(log.Msec)
	if debug {
		log.Setup(log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			switch sig {
			case syscall.SIGQUIT:
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
			case syscall.SIGTERM, syscall.SIGINT:
				cancel()
			}
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
