package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/wedisplay"
	"github.com/oomph-ac/wedisplay/settings"
	"github.com/sirupsen/logrus"
)

const configPath = "config.toml"

// The following program runs a proxy that renders WorldEdit selections for the players it forwards to
// a remote server. The addresses are read from config.toml, which is created on first run.
func main() {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := settings.SaveDefault(configPath); err != nil {
			log.Fatalf("unable to create %s: %v", configPath, err)
		}
		log.Infof("created default settings in %s", configPath)
	}
	s, err := settings.Load(configPath)
	if err != nil {
		log.Fatalln(err)
	}
	if lvl, err := logrus.ParseLevel(s.Proxy.LogLevel); err == nil {
		log.Level = lvl
	} else {
		log.Warnf("unknown log level %q, using info", s.Proxy.LogLevel)
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Warnf("unable to set up sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	proxy := wedisplay.New(log, s)
	// SIGHUP reloads the render settings and languages without disconnecting anyone.
	go func() {
		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		for range hup {
			if err := proxy.Reload(configPath); err != nil {
				log.Errorf("unable to reload %s: %v", configPath, err)
			}
		}
	}()
	go func() {
		for {
			p, err := proxy.Accept()
			if err != nil {
				return
			}
			p.Log().Infof("joined with language %s", p.Language())
		}
	}()
	if err := proxy.Start(); err != nil {
		log.Fatalln(err)
	}
}
