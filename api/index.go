package handler

import (
	"net/http"
	"sync"
	"tripavail/config"
	"tripavail/di"
	"tripavail/shared/logger"
	"tripavail/shared/timezone"

	"github.com/rs/zerolog/log"
)

var (
	app  *di.App
	once sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		if err := timezone.Init(cfg.App.Timezone); err != nil {
			log.Error().Err(err).Msg("Failed to initialize timezone, using UTC")
		}

		app = di.InitializeApp()
	})

	r.RequestURI = r.URL.String()

	app.HTTP.ServeHTTP(w, r)
}
