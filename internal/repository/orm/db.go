package orm

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Rrens/taskchat/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// DB wraps the gorm handle and, for postgres, the underlying pgx pool
type DB struct {
	Gorm *gorm.DB
	pool *pgxpool.Pool
}

// NewDB opens the configured database and verifies connectivity
func NewDB(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db := &DB{}
	var err error

	switch cfg.Driver {
	case config.DriverPostgres:
		db.pool, err = newPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		db.Gorm, err = gorm.Open(postgres.New(postgres.Config{
			Conn: stdlib.OpenDBFromPool(db.pool),
		}), gormCfg)

	case config.DriverMySQL:
		db.Gorm, err = gorm.Open(mysql.Open(cfg.DSN()), gormCfg)

	case config.DriverSQLite:
		if cfg.Path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		db.Gorm, err = gorm.Open(sqlite.Dialector{
			DriverName: "sqlite",
			DSN:        cfg.DSN(),
		}, gormCfg)

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.Gorm.DB()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to get sql handle: %w", err)
	}

	// sqlite serializes writers, and an in-memory database lives in its only connection
	if cfg.Driver == config.DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else if cfg.Driver == config.DriverMySQL {
		sqlDB.SetMaxOpenConns(int(cfg.MaxConns))
		sqlDB.SetMaxIdleConns(int(cfg.MinConns))
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.AutoMigrate {
		if err := AutoMigrate(db.Gorm); err != nil {
			db.Close()
			return nil, err
		}
	}

	log.Debug().Str("driver", cfg.Driver).Msg("Database connected")
	return db, nil
}

func newPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	return pool, nil
}

// Close releases every connection
func (db *DB) Close() {
	if db.Gorm != nil {
		if sqlDB, err := db.Gorm.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping verifies database connectivity
func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.Gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
