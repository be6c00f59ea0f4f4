package main

import (
	"context"
	"fmt"

	"github.com/Abraxas-365/internmatch/pkg/config"
	"github.com/Abraxas-365/internmatch/pkg/iam/auth"
	"github.com/Abraxas-365/internmatch/pkg/logx"
	"github.com/Abraxas-365/internmatch/recruitment/internship"
	"github.com/Abraxas-365/internmatch/recruitment/internship/internshipapi"
	"github.com/Abraxas-365/internmatch/recruitment/internship/internshipinfra"
	"github.com/Abraxas-365/internmatch/recruitment/internship/internshipsrv"
	"github.com/Abraxas-365/internmatch/recruitment/profile"
	"github.com/Abraxas-365/internmatch/recruitment/profile/profileapi"
	"github.com/Abraxas-365/internmatch/recruitment/profile/profileinfra"
	"github.com/Abraxas-365/internmatch/recruitment/profile/profilesrv"
	"github.com/Abraxas-365/internmatch/recruitment/recommendation/recommendationapi"
	"github.com/Abraxas-365/internmatch/recruitment/recommendation/recommendationsrv"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	// Infrastructure
	DB    *sqlx.DB
	Redis *redis.Client

	// Repositories
	InternshipRepo internship.Repository
	ProfileRepo    profile.Repository

	// Services
	TokenService          *auth.TokenService
	InternshipService     *internshipsrv.InternshipService
	ProfileService        *profilesrv.ProfileService
	RecommendationService *recommendationsrv.Service

	// API Handlers
	AuthHandlers           *auth.AuthHandlers
	InternshipHandlers     *internshipapi.Handlers
	ProfileHandlers        *profileapi.Handlers
	RecommendationHandlers *recommendationapi.Handlers

	// Middleware
	AuthMiddleware *auth.TokenMiddleware
}

// NewContainer initializes the dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if err := c.initInfrastructure(ctx); err != nil {
		c.Close()
		return nil, err
	}
	c.initRepositories()
	if err := c.initServices(); err != nil {
		c.Close()
		return nil, err
	}

	return c, nil
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	// 1. Database Connection
	if c.Config.Storage.Driver == config.StoragePostgres {
		db, err := sqlx.ConnectContext(ctx, "postgres", c.Config.Database.DSN())
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		db.SetMaxOpenConns(c.Config.Database.MaxOpenConns)
		db.SetMaxIdleConns(c.Config.Database.MaxIdleConns)
		db.SetConnMaxLifetime(c.Config.Database.ConnMaxLifetime)
		c.DB = db
		logx.Infof("Using postgres storage at %s:%s/%s", c.Config.Database.Host, c.Config.Database.Port, c.Config.Database.Name)
	} else {
		logx.Info("Using in-memory storage, data is lost on restart")
	}

	// 2. Redis Connection
	if c.Config.Redis.Enabled {
		client, err := internshipinfra.NewRedisClient(ctx, c.Config.Redis.Addr, c.Config.Redis.Password, c.Config.Redis.DB)
		if err != nil {
			logx.Warnf("Failed to connect to Redis, catalog cache disabled: %v", err)
		} else {
			c.Redis = client
		}
	}

	return nil
}

func (c *Container) initRepositories() {
	if c.DB != nil {
		c.InternshipRepo = internshipinfra.NewPostgresInternshipRepository(c.DB)
		c.ProfileRepo = profileinfra.NewPostgresProfileRepository(c.DB)
	} else {
		c.InternshipRepo = internshipinfra.NewMemoryInternshipRepository()
		c.ProfileRepo = profileinfra.NewMemoryProfileRepository()
	}

	if c.Redis != nil {
		c.InternshipRepo = internshipinfra.NewCachedRepository(c.InternshipRepo, c.Redis, c.Config.Redis.CatalogTTL)
	}
}

func (c *Container) initServices() error {
	// Auth
	secret := c.Config.Auth.JWTSecret
	if secret == "" {
		logx.Warn("AUTH_JWT_SECRET is not set, using a random secret (tokens will not survive a restart)")
		secret = uuid.NewString()
	}
	c.TokenService = auth.NewTokenService(secret, c.Config.Auth.Issuer, c.Config.Auth.AccessTokenTTL)

	admin, err := auth.NewAdminCredentials(c.Config.Auth.AdminUsername, c.Config.Auth.AdminPasswordHash, c.Config.Auth.AdminPassword)
	if err != nil {
		return fmt.Errorf("prepare admin credentials: %w", err)
	}

	// Domain Services
	c.InternshipService = internshipsrv.NewInternshipService(c.InternshipRepo)
	c.ProfileService = profilesrv.NewProfileService(c.ProfileRepo)
	c.RecommendationService = recommendationsrv.NewService(c.InternshipRepo, c.ProfileRepo)

	// Handlers
	c.AuthHandlers = auth.NewAuthHandlers(admin, c.TokenService)
	c.InternshipHandlers = internshipapi.NewHandlers(c.InternshipService)
	c.ProfileHandlers = profileapi.NewHandlers(c.ProfileService)
	c.RecommendationHandlers = recommendationapi.NewHandlers(c.RecommendationService)

	// Middleware
	c.AuthMiddleware = auth.NewAuthMiddleware(c.TokenService)

	return nil
}

// S3Source builds the CSV source for "import --s3-key"
func (c *Container) S3Source(ctx context.Context) (*internshipinfra.S3CSVSource, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(c.Config.AWS.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return internshipinfra.NewS3CSVSource(s3.NewFromConfig(cfg), c.Config.AWS.Bucket), nil
}

// Healthy reports the reachability of each backing store
func (c *Container) Healthy(ctx context.Context) map[string]bool {
	status := map[string]bool{}
	if c.DB != nil {
		status["db"] = c.DB.PingContext(ctx) == nil
	}
	if c.Redis != nil {
		status["redis"] = c.Redis.Ping(ctx).Err() == nil
	}
	return status
}

// Close releases every connection the container opened
func (c *Container) Close() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logx.Warnf("Closing Redis: %v", err)
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logx.Warnf("Closing database: %v", err)
		}
	}
}
