package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/comics-keeper/internal/jwt"
	"github.com/sbilibin2017/comics-keeper/internal/models"
	"github.com/sbilibin2017/comics-keeper/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

var configKeys = []string{
	"APP_HOST", "APP_PORT", "APP_LOG_LEVEL",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	"POSTGRES_MAX_OPEN_CONNS", "POSTGRES_MAX_IDLE_CONNS",
	"REDIS_HOST", "REDIS_PORT", "REDIS_DB", "REDIS_PASSWORD", "REDIS_POOL_SIZE", "REDIS_MIN_IDLE_CONNS",
	"COMICS_PUBLIC_CACHE_EXP_SECOND", "KAFKA_BROKERS", "KAFKA_TOPIC",
	"JWT_SECRET_KEY", "JWT_EXP_SECOND",
}

// resetEnv unsets the env vars used by parseConfig; t.Setenv restores them after the test.
func resetEnv(t *testing.T) {
	for _, key := range configKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Build version: v1.0.0")
	assert.Contains(t, output, "Build commit: abcd1234")
	assert.Contains(t, output, "Build date: 2025-09-26")
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv(t)
	t.Setenv("JWT_SECRET_KEY", "supersecret")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.appHost)
	assert.Equal(t, "8080", cfg.appPort)
	assert.Equal(t, "info", cfg.logLevel)

	assert.Equal(t, "localhost", cfg.pgHost)
	assert.Equal(t, 5432, cfg.pgPort)
	assert.Equal(t, "user", cfg.pgUser)
	assert.Equal(t, "password", cfg.pgPassword)
	assert.Equal(t, "database", cfg.pgDB)
	assert.Equal(t, 16, cfg.pgMaxOpenConns)
	assert.Equal(t, 8, cfg.pgMaxIdleConns)

	assert.Equal(t, "localhost", cfg.redisHost)
	assert.Equal(t, 6379, cfg.redisPort)
	assert.Equal(t, 0, cfg.redisDB)
	assert.Equal(t, "", cfg.redisPassword)
	assert.Equal(t, 10, cfg.redisPoolSize)
	assert.Equal(t, 2, cfg.redisMinIdleConns)
	assert.Equal(t, 30, cfg.publicCacheExpSecond)

	assert.Empty(t, cfg.kafkaBrokers)
	assert.Equal(t, "comic-events", cfg.kafkaTopic)

	assert.Equal(t, "supersecret", cfg.jwtSecretKey)
	assert.Equal(t, 3600, cfg.jwtExpSecond)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv(t)
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "debug")

	t.Setenv("POSTGRES_HOST", "pg.example.com")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_USER", "admin")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "mydb")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	t.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	t.Setenv("REDIS_HOST", "redis.example.com")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_PASSWORD", "redispass")
	t.Setenv("REDIS_POOL_SIZE", "15")
	t.Setenv("REDIS_MIN_IDLE_CONNS", "5")
	t.Setenv("COMICS_PUBLIC_CACHE_EXP_SECOND", "120")

	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("KAFKA_TOPIC", "comics")

	t.Setenv("JWT_SECRET_KEY", "supersecret")
	t.Setenv("JWT_EXP_SECOND", "300")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, config{
		appHost: "127.0.0.1", appPort: "9090", logLevel: "debug",
		pgHost: "pg.example.com", pgPort: 5433, pgUser: "admin", pgPassword: "secret", pgDB: "mydb",
		pgMaxOpenConns: 20, pgMaxIdleConns: 10,
		redisHost: "redis.example.com", redisPort: 6380, redisDB: 2, redisPassword: "redispass",
		redisPoolSize: 15, redisMinIdleConns: 5, publicCacheExpSecond: 120,
		kafkaBrokers: []string{"kafka-1:9092", "kafka-2:9092"}, kafkaTopic: "comics",
		jwtSecretKey: "supersecret", jwtExpSecond: 300,
	}, cfg)
}

func TestParseConfig_FromFile(t *testing.T) {
	resetEnv(t)

	path := t.TempDir() + "/test.env"
	require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET_KEY=fromfile\nAPP_PORT=7070\n"), 0o600))

	cfg, err := parseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "fromfile", cfg.jwtSecretKey)
	assert.Equal(t, "7070", cfg.appPort)
}

func TestParseConfig_Errors(t *testing.T) {
	t.Run("missing jwt secret", func(t *testing.T) {
		resetEnv(t)

		_, err := parseConfig("nonexistent.env")
		assert.ErrorIs(t, err, errJWTSecretMissing)
	})

	t.Run("bad number", func(t *testing.T) {
		resetEnv(t)
		t.Setenv("JWT_SECRET_KEY", "supersecret")
		t.Setenv("POSTGRES_PORT", "not-a-port")

		_, err := parseConfig("nonexistent.env")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "POSTGRES_PORT")
	})
}

type routerMocks struct {
	userReader  *services.MockUserReader
	userWriter  *services.MockUserWriter
	hasher      *services.MockPasswordHasher
	revoker     *services.MockTokenRevoker
	comicReader *services.MockComicReader
	comicWriter *services.MockComicWriter
}

func newTestRouter(t *testing.T, tokens *jwt.JWT) (http.Handler, routerMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := routerMocks{
		userReader:  services.NewMockUserReader(ctrl),
		userWriter:  services.NewMockUserWriter(ctrl),
		hasher:      services.NewMockPasswordHasher(ctrl),
		revoker:     services.NewMockTokenRevoker(ctrl),
		comicReader: services.NewMockComicReader(ctrl),
		comicWriter: services.NewMockComicWriter(ctrl),
	}

	authSvc := services.NewAuthService(m.userReader, m.userWriter, m.hasher, tokens, m.revoker)
	comicSvc := services.NewComicService(m.comicReader, m.comicWriter, nil, nil)

	return newRouter(authSvc, comicSvc, tokens, nil, "http://localhost/swagger/doc.json"), m
}

func TestNewRouter(t *testing.T) {
	tokens := jwt.New(jwt.WithSecretKey("testsecret"), jwt.WithExpiration(time.Minute))
	userID := uuid.New()
	token, err := tokens.Generate(context.Background(), userID, "alice@example.com")
	require.NoError(t, err)

	t.Run("public listing needs no token", func(t *testing.T) {
		router, m := newTestRouter(t, tokens)
		m.comicReader.EXPECT().ListAll(gomock.Any()).Return([]models.ComicDB{}, nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/comics/public", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("own listing without token", func(t *testing.T) {
		router, _ := newTestRouter(t, tokens)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/comics", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"Access token is missing"}`, rr.Body.String())
	})

	t.Run("own listing with forged token", func(t *testing.T) {
		router, _ := newTestRouter(t, tokens)
		forged, err := jwt.New(jwt.WithSecretKey("othersecret")).Generate(context.Background(), userID, "alice@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/comics", nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("own listing scoped to token owner", func(t *testing.T) {
		router, m := newTestRouter(t, tokens)
		m.comicReader.EXPECT().ListByOwner(gomock.Any(), userID).Return([]models.ComicDB{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/comics", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("delete of another owner's comic", func(t *testing.T) {
		router, m := newTestRouter(t, tokens)
		comicID := uuid.New()
		m.comicWriter.EXPECT().Delete(gomock.Any(), comicID, userID).Return(models.ErrNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/comics/"+comicID.String(), nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Comic not found"}`, rr.Body.String())
	})

	t.Run("login with unknown account", func(t *testing.T) {
		router, m := newTestRouter(t, tokens)
		m.userReader.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, models.ErrNotFound)

		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"ghost@example.com","password":"x"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("logout revokes token", func(t *testing.T) {
		router, m := newTestRouter(t, tokens)
		m.revoker.EXPECT().Revoke(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("panic is recovered", func(t *testing.T) {
		router, m := newTestRouter(t, tokens)
		m.comicReader.EXPECT().ListAll(gomock.Any()).DoAndReturn(func(context.Context) ([]models.ComicDB, error) {
			panic(errors.New("boom"))
		})

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/comics/public", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func freePort(t *testing.T) string {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()

	return fmt.Sprint(lis.Addr().(*net.TCPAddr).Port)
}

func TestRun_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	// Postgres container
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	// Redis container
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	appPort := freePort(t)
	cfg := config{
		appHost: "127.0.0.1", appPort: appPort, logLevel: "debug",
		pgHost: pgHost, pgPort: pgPort.Int(), pgUser: "user", pgPassword: "password", pgDB: "testdb",
		pgMaxOpenConns: 5, pgMaxIdleConns: 2,
		redisHost: redisHost, redisPort: redisPort.Int(), redisPoolSize: 10, redisMinIdleConns: 2,
		publicCacheExpSecond: 30,
		kafkaTopic:           "comic-events",
		jwtSecretKey:         "testsecret", jwtExpSecond: 60,
	}

	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	// Wait until the server answers the public listing.
	baseURL := "http://127.0.0.1:" + appPort
	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/comics/public")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 8*time.Second, 100*time.Millisecond)

	resp, err := http.Post(baseURL+"/auth/register", "application/json",
		strings.NewReader(`{"email":"alice@example.com","password":"secret"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	select {
	case <-time.After(11 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		assert.NoError(t, err)
	}
}
