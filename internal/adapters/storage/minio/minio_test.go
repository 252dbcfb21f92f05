package minio_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"
	"webapp/internal/adapters/storage/minio"
	"webapp/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testAccessKey = "minioadmin"
	testSecretKey = "minioadmin"
	testBucket    = "test-bucket"
)

func setupContainer(t *testing.T) (string, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping minio container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     testAccessKey,
			"MINIO_ROOT_PASSWORD": testSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
	}
	minioContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := minioContainer.Host(ctx)
	require.NoError(t, err)

	port, err := minioContainer.MappedPort(ctx, "9000")
	require.NoError(t, err)

	endpoint := fmt.Sprintf("%s:%s", host, port.Port())

	cleanup := func() {
		if err := minioContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}
	time.Sleep(500 * time.Millisecond) // wait for container to be up
	return endpoint, cleanup
}

func createAdapter(t *testing.T, endpoint string, ctx context.Context) *minio.Adapter {
	t.Helper()
	cfg := config.StorageConfig{
		Endpoint:   endpoint,
		Region:     "us-east-1",
		AccessKey:  testAccessKey,
		SecretKey:  testSecretKey,
		BucketName: testBucket,
		UseSSL:     false,
	}

	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	adapter, err := minio.NewAdapter(ctx, cfg, discardLogger)

	require.NoError(t, err)
	require.NotNil(t, adapter)

	return adapter
}

func TestAdapter_ObjectLifecycle(t *testing.T) {
	// Arrange
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()
	adapter := createAdapter(t, endpoint, ctx)
	key := "0b7e6c2a-3f1c-4f7e-9d5b-0a1b2c3d4e5f/report #1.txt"
	content := []byte("hello world!")

	// Act
	err := adapter.PutObject(ctx, key, "text/plain", bytes.NewReader(content), int64(len(content)))

	// Assert
	require.NoError(t, err)
	exists, err := adapter.ObjectExists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	// Act
	err = adapter.DeleteObject(ctx, key)

	// Assert
	require.NoError(t, err)
	exists, err = adapter.ObjectExists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAdapter_DeleteMissingObject(t *testing.T) {
	// Arrange
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()
	adapter := createAdapter(t, endpoint, ctx)

	// Act
	err := adapter.DeleteObject(ctx, "missing/key.txt")

	// Assert
	require.NoError(t, err)
}

func TestAdapter_ExistingBucketIsReused(t *testing.T) {
	// Arrange
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()
	first := createAdapter(t, endpoint, ctx)
	require.NoError(t, first.PutObject(ctx, "k", "text/plain", bytes.NewReader([]byte("x")), 1))

	// Act
	second := createAdapter(t, endpoint, ctx)

	// Assert
	exists, err := second.ObjectExists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestNewAdapter_UnreachableEndpoint(t *testing.T) {
	// Arrange
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	cfg := config.StorageConfig{
		Endpoint:   "127.0.0.1:1",
		AccessKey:  testAccessKey,
		SecretKey:  testSecretKey,
		BucketName: testBucket,
	}

	// Act
	adapter, err := minio.NewAdapter(ctx, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// Assert
	require.Error(t, err)
	assert.Nil(t, adapter)
}
