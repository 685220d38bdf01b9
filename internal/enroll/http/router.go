package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sablehq/enrolld/internal/enroll/service"
	"github.com/sablehq/enrolld/internal/enroll/store"
	"github.com/sablehq/enrolld/pkg/httpx"
	"github.com/sablehq/enrolld/pkg/slogx"

	_ "github.com/sablehq/enrolld/api/enroll" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store       store.Store
	AuthService *service.AuthService
	UserService *service.UserService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Enrolld User Registration API
//	@version		0.1.0
//	@description	User registration and e-mail validation service. Accounts are
//	@description	created with an e-mail address and password, receive a four-digit
//	@description	code by e-mail, and must submit it within the validity window to
//	@description	be usable.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.basic	BasicAuth
//	@description				HTTP Basic authentication with the account's e-mail address and password.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{
		AuthService: r.AuthService,
		UserService: r.UserService,
	}

	// POST /v1/users - moderate rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /v1/users",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// GET /v1/users/self - lenient rate limit; the auth stall already
	// throttles credential guessing
	r.Mux.Handle("GET /v1/users/self",
		httpx.Chain(http.HandlerFunc(h.HandleSelf),
			httpx.RateLimitByIPAndBasicUser(httpx.LenientLimit),
		),
	)

	// POST /v1/users/self/validate - strict rate limit by IP + account to
	// slow down code guessing on top of the fixed stall
	r.Mux.Handle("POST /v1/users/self/validate",
		httpx.Chain(http.HandlerFunc(h.HandleValidate),
			httpx.RateLimitByIPAndBasicUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
