package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	sqlmigrations "github.com/klwxsrx/store-dashboard/data/sql/dashboard"
	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/audit"
	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/backend"
	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/service"
	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/session"
	backendhttp "github.com/klwxsrx/store-dashboard/internal/dashboard/infra/backend/http"
	"github.com/klwxsrx/store-dashboard/internal/dashboard/infra/http"
	infrasession "github.com/klwxsrx/store-dashboard/internal/dashboard/infra/session"
	infrasql "github.com/klwxsrx/store-dashboard/internal/dashboard/infra/sql"
	"github.com/klwxsrx/store-dashboard/internal/pkg/auth"
	"github.com/klwxsrx/store-dashboard/internal/pkg/cmd"
	internalhttp "github.com/klwxsrx/store-dashboard/internal/pkg/http"
	pkgauth "github.com/klwxsrx/store-dashboard/pkg/auth"
	"github.com/klwxsrx/store-dashboard/pkg/credential"
	"github.com/klwxsrx/store-dashboard/pkg/env"
	pkghttp "github.com/klwxsrx/store-dashboard/pkg/http"
	"github.com/klwxsrx/store-dashboard/pkg/lazy"
	"github.com/klwxsrx/store-dashboard/pkg/log"
	"github.com/klwxsrx/store-dashboard/pkg/observability"
	"github.com/klwxsrx/store-dashboard/pkg/sql"
	pkgtime "github.com/klwxsrx/store-dashboard/pkg/time"
	"github.com/klwxsrx/store-dashboard/pkg/worker"
)

const (
	Name = "dashboard"

	BackendDestination pkghttp.Destination = "backend"

	SessionStoreCookie = "cookie"
	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"

	inMemorySessionPurgePeriod = time.Minute
	auditPurgePeriod           = time.Hour
	defaultAuditRetention      = 30 * 24 * time.Hour
	defaultBackendTimeout      = 10 * time.Second
)

type DependencyContainer struct {
	AuthService lazy.Loader[service.Authentication]

	authProvider     lazy.Loader[pkgauth.Provider[auth.Principal]]
	loginHandler     lazy.Loader[http.LoginHandler]
	logoutHandler    lazy.Loader[http.LogoutHandler]
	sessionHandler   lazy.Loader[http.GetSessionHandler]
	resourceHandlers lazy.Loader[[]http.ResourceHandler]

	inMemoryStore lazy.Loader[*infrasession.InMemoryStore]
	auditRecorder lazy.Loader[audit.Recorder]
	auditEnabled  lazy.Loader[bool]
	logger        lazy.Loader[log.Logger]
}

func NewDependencyContainer(infra *cmd.InfrastructureContainer) DependencyContainer {
	sessionConfig := sessionConfigProvider()
	inMemoryStore := inMemoryStoreProvider(infra.Clock, sessionConfig)
	sessionStore := sessionStoreProvider(infra.Redis, inMemoryStore, sessionConfig)

	auditEnabled := lazy.New(func() (bool, error) {
		return env.ParseDefault[bool]("SQL_AUDIT_ENABLED", false)
	})
	auditRecorder := auditRecorderProvider(auditEnabled, infra.DB, infra.DBMigrations, infra.Clock, infra.Observer, infra.Logger)
	backendImpl := backendProvider(infra.HTTPClientFactory)

	authService := authServiceProvider(backendImpl, sessionStore, auditRecorder)
	resourcesService := resourcesServiceProvider(backendImpl)

	cookieConfig := lazy.New(func() (http.CookieConfig, error) {
		config := sessionConfig.MustLoad()
		return http.CookieConfig{
			Secure: config.cookieSecure,
			TTL:    config.ttl,
		}, nil
	})

	return DependencyContainer{
		AuthService: authService,
		authProvider: lazy.New(func() (pkgauth.Provider[auth.Principal], error) {
			return http.NewSessionAuthProvider(authService.MustLoad(), infra.Logger.MustLoad()), nil
		}),
		loginHandler: lazy.New(func() (http.LoginHandler, error) {
			return http.NewLoginHandler(authService.MustLoad(), cookieConfig.MustLoad()), nil
		}),
		logoutHandler: lazy.New(func() (http.LogoutHandler, error) {
			return http.NewLogoutHandler(authService.MustLoad(), cookieConfig.MustLoad()), nil
		}),
		sessionHandler: lazy.New(func() (http.GetSessionHandler, error) {
			return http.NewGetSessionHandler(), nil
		}),
		resourceHandlers: lazy.New(func() ([]http.ResourceHandler, error) {
			return http.NewResourceHandlers(resourcesService.MustLoad()), nil
		}),
		inMemoryStore: lazy.New(func() (*infrasession.InMemoryStore, error) {
			if sessionConfig.MustLoad().store != SessionStoreMemory {
				return nil, nil
			}
			return inMemoryStore.Load()
		}),
		auditRecorder: auditRecorder,
		auditEnabled:  auditEnabled,
		logger:        infra.Logger,
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	authProvider := c.authProvider.MustLoad()
	withSession := pkghttp.WithAuth(authProvider, internalhttp.SessionTokenProvider)

	registry.Register(c.loginHandler.MustLoad(), withSession, http.WithErrorMapping())
	registry.Register(c.logoutHandler.MustLoad(), withSession, http.WithErrorMapping())
	registry.Register(
		c.sessionHandler.MustLoad(),
		withSession,
		http.WithErrorMapping(),
		pkghttp.WithAuthenticationRequirement(),
	)
	for _, handler := range c.resourceHandlers.MustLoad() {
		registry.Register(
			handler,
			withSession,
			http.WithErrorMapping(),
			pkghttp.WithAuthenticationRequirement(),
		)
	}
}

// BackgroundJobs returns the housekeeping jobs of the enabled storages, it may be empty.
func (c *DependencyContainer) BackgroundJobs() []worker.ContextJob {
	logger := c.logger.MustLoad()

	var jobs []worker.ContextJob
	if store := c.inMemoryStore.MustLoad(); store != nil {
		jobs = append(jobs, worker.PeriodicalContextJob(func(ctx context.Context) error {
			if purged := store.Purge(ctx); purged > 0 {
				logger.WithField("purged", purged).Debug(ctx, "expired sessions purged")
			}
			return nil
		}, inMemorySessionPurgePeriod, logger))
	}

	if c.auditEnabled.MustLoad() {
		retention := env.Must(env.ParseDefault[time.Duration]("SESSION_AUDIT_RETENTION", defaultAuditRetention))
		recorder := c.auditRecorder.MustLoad()
		jobs = append(jobs, worker.PeriodicalContextJob(func(ctx context.Context) error {
			return recorder.Purge(ctx, retention)
		}, auditPurgePeriod, logger))
	}

	return jobs
}

type sessionConfig struct {
	store        string
	ttl          time.Duration
	cookieSecure bool
	redisPrefix  string
	codecKey     *string
}

func sessionConfigProvider() lazy.Loader[sessionConfig] {
	return lazy.New(func() (sessionConfig, error) {
		return sessionConfig{
			store:        env.Must(env.ParseDefault[string]("SESSION_STORE", SessionStoreCookie)),
			ttl:          env.Must(env.ParseDefault[time.Duration]("SESSION_TTL", 0)),
			cookieSecure: env.Must(env.ParseDefault[bool]("SESSION_COOKIE_SECURE", false)),
			redisPrefix:  env.Must(env.ParseDefault[string]("REDIS_PREFIX", infrasession.DefaultRedisKeyPrefix)),
			codecKey:     env.Must(env.ParseOptional[string]("SESSION_CODEC_KEY")),
		}, nil
	})
}

func inMemoryStoreProvider(
	clock lazy.Loader[pkgtime.Clock],
	config lazy.Loader[sessionConfig],
) lazy.Loader[*infrasession.InMemoryStore] {
	return lazy.New(func() (*infrasession.InMemoryStore, error) {
		return infrasession.NewInMemoryStore(clock.MustLoad(), config.MustLoad().ttl), nil
	})
}

func sessionStoreProvider(
	redisClient lazy.Loader[redis.UniversalClient],
	inMemoryStore lazy.Loader[*infrasession.InMemoryStore],
	config lazy.Loader[sessionConfig],
) lazy.Loader[session.Store] {
	return lazy.New(func() (session.Store, error) {
		cfg := config.MustLoad()
		switch cfg.store {
		case SessionStoreCookie:
			codec := credential.DefaultCodec()
			if cfg.codecKey != nil {
				var err error
				codec, err = credential.NewCodec([]byte(*cfg.codecKey))
				if err != nil {
					return nil, fmt.Errorf("session codec: %w", err)
				}
			}
			return infrasession.NewCookieStore(codec), nil
		case SessionStoreRedis:
			return infrasession.NewRedisStore(redisClient.MustLoad(), cfg.redisPrefix, cfg.ttl), nil
		case SessionStoreMemory:
			return inMemoryStore.MustLoad(), nil
		default:
			return nil, fmt.Errorf("unknown session store %q", cfg.store)
		}
	})
}

// auditRecorderProvider falls back to a no-op recorder unless SQL_AUDIT_ENABLED is set.
func auditRecorderProvider(
	enabled lazy.Loader[bool],
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
	clock lazy.Loader[pkgtime.Clock],
	observer lazy.Loader[observability.Observer],
	logger lazy.Loader[log.Logger],
) lazy.Loader[audit.Recorder] {
	return lazy.New(func() (audit.Recorder, error) {
		if !enabled.MustLoad() {
			return audit.NewNopRecorder(), nil
		}

		dbMigrations.MustLoad().MustRegister(sqlmigrations.Migrations)
		database := db.MustLoad()
		return audit.NewRecorder(
			infrasql.NewAuditRepository(database),
			sql.NewTransaction(database, Name, nil),
			clock.MustLoad(),
			observer.MustLoad(),
			logger.MustLoad(),
		), nil
	})
}

func backendProvider(clientFactory lazy.Loader[cmd.HTTPClientFactory]) lazy.Loader[backend.Backend] {
	return lazy.New(func() (backend.Backend, error) {
		timeout := env.Must(env.ParseDefault[time.Duration]("BACKEND_TIMEOUT", defaultBackendTimeout))
		return backendhttp.NewBackend(
			clientFactory.MustLoad().MustInitClient(BackendDestination, pkghttp.WithRequestTimeout(timeout)),
			credential.Secrets{
				Read:  env.Must(env.Parse[string]("BACKEND_GET_TOKEN")),
				Write: env.Must(env.Parse[string]("BACKEND_POST_TOKEN")),
			},
		), nil
	})
}

func authServiceProvider(
	backendImpl lazy.Loader[backend.Backend],
	sessionStore lazy.Loader[session.Store],
	auditRecorder lazy.Loader[audit.Recorder],
) lazy.Loader[service.Authentication] {
	return lazy.New(func() (service.Authentication, error) {
		return service.NewAuthentication(
			backendImpl.MustLoad(),
			sessionStore.MustLoad(),
			auditRecorder.MustLoad(),
		), nil
	})
}

func resourcesServiceProvider(backendImpl lazy.Loader[backend.Backend]) lazy.Loader[service.Resources] {
	return lazy.New(func() (service.Resources, error) {
		return service.NewResources(
			backendImpl.MustLoad(),
			pkgauth.NewPermissionService[auth.Principal](),
		), nil
	})
}
