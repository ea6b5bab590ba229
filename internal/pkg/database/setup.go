package database

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ManuelReschke/InkFox/app/models"
	"github.com/ManuelReschke/InkFox/internal/pkg/env"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Config describes a database connection.
type Config struct {
	Driver       string
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	MaxOpenConns int
	MaxIdleConns int
}

// ConfigFromEnv reads the DB_* keys.
func ConfigFromEnv() Config {
	driver := env.GetEnv("DB_DRIVER", DriverMySQL)
	defaultPort := "3306"
	if driver == DriverPostgres {
		defaultPort = "5432"
	}

	return Config{
		Driver:       driver,
		Host:         env.GetEnv("DB_HOST", "127.0.0.1"),
		Port:         env.GetEnv("DB_PORT", defaultPort),
		User:         env.GetEnv("DB_USER", ""),
		Password:     env.GetEnv("DB_PASSWORD", ""),
		Name:         env.GetEnv("DB_NAME", ""),
		MaxOpenConns: env.GetEnvInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns: env.GetEnvInt("DB_MAX_IDLE_CONNS", 5),
	}
}

// DSN builds the driver specific data source name.
func (c Config) DSN() string {
	if c.Driver == DriverPostgres {
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			c.Host, c.User, c.Password, c.Name, c.Port)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

// Dialector returns the GORM dialector for the configured driver.
func (c Config) Dialector() (gorm.Dialector, error) {
	switch c.Driver {
	case DriverMySQL:
		return mysql.New(mysql.Config{
			DSN:                       c.DSN(),
			DefaultStringSize:         256,
			DisableDatetimePrecision:  true,
			DontSupportRenameIndex:    true,
			DontSupportRenameColumn:   true,
			SkipInitializeWithVersion: false,
		}), nil
	case DriverPostgres:
		return postgres.Open(c.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", c.Driver)
	}
}

// SetupDatabase connects with retries, sizes the pool and migrates the schema.
func SetupDatabase() (*gorm.DB, error) {
	cfg := ConfigFromEnv()
	dialector, err := cfg.Dialector()
	if err != nil {
		return nil, err
	}

	for i := 0; i < maxRetries; i++ {
		var db *gorm.DB
		db, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
		if err == nil {
			if err = configurePool(db, cfg); err == nil {
				if err = Migrate(db); err != nil {
					return nil, err
				}
				log.Infof("Connected to %s database %s", cfg.Driver, cfg.Name)
				return db, nil
			}
		}

		log.Warnf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			log.Infof("Retrying in %v...", retryDelay)
			time.Sleep(retryDelay)
		}
	}

	return nil, fmt.Errorf("connect database: %w", err)
}

func configurePool(db *gorm.DB, cfg Config) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)
	return sqlDB.Ping()
}

// Migrate registers the join model and creates or updates all tables.
func Migrate(db *gorm.DB) error {
	if err := models.SetupJoinTables(db); err != nil {
		return fmt.Errorf("setup join tables: %w", err)
	}
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Article{},
		&models.ArticleCategory{},
	)
	if err != nil {
		return err
	}
	return ensureLiveSlugIndex(db)
}

// LiveSlugIndex makes article slugs unique among rows that are not soft
// deleted.
const LiveSlugIndex = "idx_articles_live_slug"

func ensureLiveSlugIndex(db *gorm.DB) error {
	if db.Migrator().HasIndex(&models.Article{}, LiveSlugIndex) {
		return nil
	}

	var stmt string
	if db.Dialector.Name() == DriverMySQL {
		// MySQL has no partial indexes. live_slug is NULL for deleted rows.
		stmt = "ALTER TABLE articles " +
			"ADD COLUMN live_slug VARCHAR(255) GENERATED ALWAYS AS (IF(deleted_at IS NULL, slug, NULL)) VIRTUAL, " +
			"ADD UNIQUE INDEX " + LiveSlugIndex + " (live_slug)"
	} else {
		stmt = "CREATE UNIQUE INDEX IF NOT EXISTS " + LiveSlugIndex + " ON articles (slug) WHERE deleted_at IS NULL"
	}
	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("create live slug index: %w", err)
	}
	return nil
}

// Ping checks that the database answers within the context deadline.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
