package db

import (
	"database/sql"
	"sync"
	"time"

	"github.com/geeklink/ranking-service/cfg"
	mysqlDriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Mysql wraps one gorm connection handle. The handle is injected into the
// models and the ranking writer; nothing holds it at package level, so
// several independent handles can coexist (tests rely on that).
type Mysql struct {
	Config  *cfg.Config
	once    sync.Once
	db      *gorm.DB
	initErr error
}

func NewMysql(config *cfg.Config) (*Mysql, error) {
	return &Mysql{
		Config: config,
	}, nil
}

// DSN builds the connection string through the driver's own config type.
// ParseTime is required: the ranking stamps round-trip as time.Time.
func (m *Mysql) DSN() string {
	config := mysqlDriver.Config{
		User:                 m.Config.Mysql.Username,
		Passwd:               m.Config.Mysql.Password,
		DBName:               m.Config.Mysql.Database,
		Addr:                 m.Config.Mysql.Host + ":" + m.Config.Mysql.Port,
		Net:                  "tcp",
		ParseTime:            true,
		AllowNativePasswords: true,
	}
	return config.FormatDSN()
}

// Db opens the connection on first use. The init error sticks to this
// handle; every later call reports the same outcome.
func (m *Mysql) Db() (*gorm.DB, error) {
	m.once.Do(func() {
		var db *gorm.DB
		db, m.initErr = gorm.Open(mysql.Open(m.DSN()), &gorm.Config{})
		if m.initErr != nil {
			return
		}

		var sqlDB *sql.DB
		sqlDB, m.initErr = db.DB()
		if m.initErr != nil {
			return
		}

		sqlDB.SetMaxIdleConns(m.Config.Mysql.MaxIdleConnection)
		sqlDB.SetMaxOpenConns(m.Config.Mysql.MaxOpenConnection)
		sqlDB.SetConnMaxLifetime(time.Duration(m.Config.Mysql.MaxLifeTimeConnection) * time.Second)

		m.db = db
	})
	return m.db, m.initErr
}

func (m *Mysql) Ping() error {
	db, err := m.Db()
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (m *Mysql) Close() error {
	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err != nil {
			return err
		}
		sqlDB.Close()
	}
	return nil
}

func (m *Mysql) Migrate(models ...interface{}) error {
	db, err := m.Db()
	if err != nil {
		return err
	}
	return db.AutoMigrate(models...)
}
