package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"club-backend/internal/config"
	infraCache "club-backend/internal/infrastructure/cache"
	"club-backend/internal/infrastructure/database"
	"club-backend/internal/infrastructure/storage"
	"club-backend/pkg/cache"
	"club-backend/pkg/jwt"

	"club-backend/internal/domains/article"
	articleHandler "club-backend/internal/domains/article/handler"
	articleRepo "club-backend/internal/domains/article/repository"
	articleService "club-backend/internal/domains/article/service"

	"club-backend/internal/domains/event"
	eventHandler "club-backend/internal/domains/event/handler"
	eventRepo "club-backend/internal/domains/event/repository"
	eventService "club-backend/internal/domains/event/service"

	"club-backend/internal/domains/auth"
	authHandler "club-backend/internal/domains/auth/handler"
	authRepo "club-backend/internal/domains/auth/repository"
	authService "club-backend/internal/domains/auth/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Đây là "root" của dependency graph, mọi thứ singleton
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Storage    *storage.MinIOStorage
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	ArticleRepo article.ArticleRepository
	EventRepo   event.EventRepository
	EditorRepo  auth.EditorRepository

	// ========================================
	// SERVICE LAYER
	// ========================================
	ArticleService article.ArticleService
	EventService   event.EventService
	AuthService    auth.AuthService

	// ========================================
	// HANDLER LAYER
	// ========================================
	ArticleHandler *articleHandler.ArticleHandler
	EventHandler   *eventHandler.EventHandler
	AuthHandler    *authHandler.AuthHandler
}

// NewContainer tạo và initialize toàn bộ dependency graph
//
// Thứ tự initialization:
// 1. Config (không phụ thuộc gì)
// 2. Infrastructure (DB, Cache, Storage) - phụ thuộc Config
// 3. Repositories - phụ thuộc Infrastructure
// 4. Services - phụ thuộc Repositories
// 5. Handlers - phụ thuộc Services
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Redis down không chặn startup: repositories fall back thẳng xuống DB
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}
	c.Cache = redisCache

	// ========================================
	// STEP 4: INITIALIZE OBJECT STORAGE
	// ========================================
	log.Println("🪣 Connecting to MinIO...")

	store, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = store
	log.Println("✅ Object storage ready")

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.TokenExpiry)*time.Hour,
	)

	// ========================================
	// STEP 5: REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")
	c.initRepositories()

	// ========================================
	// STEP 6: SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")
	c.initServices()

	// ========================================
	// STEP 7: HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")
	c.initHandlers()

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.ArticleRepo = articleRepo.NewArticleRepository(pool, c.Cache)
	c.EventRepo = eventRepo.NewEventRepository(pool, c.Cache)
	c.EditorRepo = authRepo.NewEditorRepository(pool)
}

func (c *Container) initServices() {
	c.ArticleService = articleService.NewArticleService(c.ArticleRepo)
	c.EventService = eventService.NewEventService(c.EventRepo)
	c.AuthService = authService.NewAuthService(c.EditorRepo, c.JWTManager)
}

func (c *Container) initHandlers() {
	c.ArticleHandler = articleHandler.NewArticleHandler(c.ArticleService, c.Storage)
	c.EventHandler = eventHandler.NewEventHandler(c.EventService)
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
}

// Cleanup đóng các connections khi shutdown
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		}
	}

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database pool closed")
	}
}
