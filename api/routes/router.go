package routes

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taazafoods/chatbot-backend/api/controllers"
	"github.com/taazafoods/chatbot-backend/api/middleware"
	sessionsvc "github.com/taazafoods/chatbot-backend/internal/session"
	"github.com/taazafoods/chatbot-backend/pkg/config"
	"github.com/taazafoods/chatbot-backend/pkg/logger"
	"github.com/taazafoods/chatbot-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	gatherer prometheus.Gatherer,
	httpMetrics *metrics.HTTPMetrics,
	catalogClient controllers.CatalogFetcher,
	sessionService sessionsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.Origins),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Get("/categories", controllers.Categories(catalogClient, sessionService, logg))
	r.Get("/items/{category}", controllers.Items(catalogClient, sessionService, logg))

	r.Post("/session/create", controllers.SessionCreate(sessionService, logg))
	r.Post("/session/reset", controllers.SessionReset(sessionService, logg))

	r.Post("/cart/add", controllers.CartAdd(sessionService, logg))
	r.Post("/cart/remove", controllers.CartRemove(sessionService, logg))
	r.Get("/cart/view", controllers.CartView(sessionService, logg))

	r.Post("/checkout", controllers.Checkout(sessionService, logg))

	// chat frontend
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, filepath.Join(cfg.Static.Dir, "index.html"))
	})
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.Static.Dir))))

	return r
}
