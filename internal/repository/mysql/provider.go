// Package mysql implements the repository contracts against a MySQL database
// reached with per-request credentials.
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"

	"github.com/posline/pos-report-service/internal/config"
	"github.com/posline/pos-report-service/internal/repository"
)

// Provider opens one connection per Acquire call. There is deliberately no
// pool: credentials differ request to request, so every request pays the full
// connection-setup cost and releases the connection on Close.
type Provider struct {
	cfg config.DatabaseConfig
	log zerolog.Logger
}

func NewProvider(cfg config.DatabaseConfig, logger zerolog.Logger) *Provider {
	l := logger.With().Str("module", "repository").Str("component", "mysql").Logger()
	return &Provider{cfg: cfg, log: l}
}

func (p *Provider) Acquire(ctx context.Context, creds repository.Credentials) (repository.Session, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	timeout := time.Duration(p.cfg.ConnectTimeoutSec) * time.Second

	mc := mysql.NewConfig()
	mc.User = creds.User
	mc.Passwd = creds.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(creds.Host, strconv.Itoa(creds.Port))
	mc.DBName = creds.Database
	mc.ParseTime = true
	mc.Collation = "utf8mb4_unicode_ci"
	mc.Timeout = timeout

	db, err := sql.Open("mysql", mc.FormatDSN())
	if err != nil {
		p.log.Error().Err(err).Str("host", creds.Host).Str("db", creds.Database).Msg("open connection failed")
		return nil, fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	// One request, one connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		p.log.Error().Err(err).Str("host", creds.Host).Str("db", creds.Database).Msg("database ping failed")
		return nil, fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}

	p.log.Debug().Str("host", creds.Host).Str("db", creds.Database).Msg("session acquired")
	return &session{db: db}, nil
}

var _ repository.Provider = (*Provider)(nil)

type session struct{ db *sql.DB }

func (s *session) Users() repository.UserRepository               { return &userRepository{db: s.db} }
func (s *session) ActivityLogs() repository.ActivityLogRepository { return &activityLogRepository{db: s.db} }
func (s *session) SyncLogs() repository.SyncLogRepository         { return &syncLogRepository{db: s.db} }
func (s *session) Sales() repository.SaleRepository               { return &saleRepository{db: s.db} }
func (s *session) Incomes() repository.IncomeRepository           { return &incomeRepository{db: s.db} }
func (s *session) Suppliers() repository.SupplierRepository       { return &supplierRepository{db: s.db} }
func (s *session) Products() repository.ProductRepository         { return &productRepository{db: s.db} }
func (s *session) Movements() repository.MovementRepository       { return &movementRepository{db: s.db} }
func (s *session) Companies() repository.CompanyRepository        { return &companyRepository{db: s.db} }

func (s *session) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }
func (s *session) Close() error                   { return s.db.Close() }

var _ repository.Session = (*session)(nil)
