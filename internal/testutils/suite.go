package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"one-on-one-backend/internal/config"
	"one-on-one-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "reviews"
	pgPassword = "reviews"
	pgDatabase = "one_on_one_test"
)

// reviewTables lists every migrated table, dependents first
var reviewTables = []string{
	"notifications",
	"metrics_jobs",
	"metrics_snapshots",
	"action_items",
	"notes",
	"answers",
	"one_on_ones",
	"questions",
	"team_members",
	"teams",
	"users",
}

// One Postgres container serves every suite of the test binary
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config
)

// BaseTestSuite hands integration suites the migrated review database
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the review database on first use and returns a handle to it
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = startReviewDatabase() })
	if sharedInitErr != nil {
		t.Fatalf("failed to start review database: %v", sharedInitErr)
	}
	return &BaseTestSuite{DB: sharedDB, Config: sharedConfig}
}

// CleanupSharedContainer closes the pool and purges the container. TestMain calls it once the
// package's tests are done.
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if sharedPool == nil || sharedResource == nil {
		return
	}
	log.Printf("Purging review database container %s", sharedResource.Container.Name)
	if err := sharedPool.Purge(sharedResource); err != nil {
		log.Printf("WARN: could not purge review database container: %v", err)
	}
	sharedResource = nil
	sharedPool = nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite empties the tables; the container stays up for the next suite
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties every review table in one statement
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	migrator := s.DB.Migrator()
	present := make([]string, 0, len(reviewTables))
	for _, table := range reviewTables {
		if migrator.HasTable(table) {
			present = append(present, `"`+table+`"`)
		}
	}
	if len(present) == 0 {
		return
	}
	s.DB.Exec("TRUNCATE TABLE " + strings.Join(present, ", ") + " RESTART IDENTITY CASCADE")
}

// Insert creates records in order, so parents go before the rows that reference them
func (s *BaseTestSuite) Insert(records ...interface{}) error {
	for _, record := range records {
		if err := s.DB.Create(record).Error; err != nil {
			return fmt.Errorf("failed to insert %T: %w", record, err)
		}
	}
	return nil
}

func startReviewDatabase() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	sharedPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	sharedResource = resource

	port := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, port, pgDatabase)

	if err := pool.Retry(func() error {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer db.Close()
		return db.Ping()
	}); err != nil {
		return fmt.Errorf("postgres never accepted connections: %w", err)
	}

	// Initialize runs the migrations
	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return fmt.Errorf("could not migrate review schema: %w", err)
	}
	if missing := missingTables(db); len(missing) > 0 {
		return fmt.Errorf("migration left tables missing: %v", missing)
	}
	sharedDB = db

	sharedConfig = &config.Config{
		DatabaseURL:  dsn,
		Port:         "7008",
		LogLevel:     "debug",
		Environment:  "test",
		JWTSecret:    "test-secret",
		NotifyDriver: "log",
		ScanCron:     "0 8 * * *",
	}

	log.Printf("Review database ready on port %s", port)
	return nil
}

func missingTables(db *gorm.DB) []string {
	var missing []string
	migrator := db.Migrator()
	for _, table := range reviewTables {
		if !migrator.HasTable(table) {
			missing = append(missing, table)
		}
	}
	return missing
}
