//go:build integration

package s3

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/shareguard/shareguard/pkg/blob"
)

// localstackHelper manages the Localstack container for S3 integration tests.
type localstackHelper struct {
	container testcontainers.Container
	endpoint  string
	client    *awss3.Client
}

// newLocalstackHelper starts a Localstack container or connects to an existing one.
func newLocalstackHelper(t *testing.T) *localstackHelper {
	t.Helper()
	ctx := context.Background()

	// Check if external Localstack is configured via environment
	if endpoint := os.Getenv("LOCALSTACK_ENDPOINT"); endpoint != "" {
		helper := &localstackHelper{endpoint: endpoint}
		helper.createClient(t)
		return helper
	}

	req := testcontainers.ContainerRequest{
		Image:        "localstack/localstack:3.0",
		ExposedPorts: []string{"4566/tcp"},
		Env: map[string]string{
			"SERVICES":              "s3",
			"DEFAULT_REGION":        "us-east-1",
			"EAGER_SERVICE_LOADING": "1",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("4566/tcp"),
			wait.ForHTTP("/_localstack/health").
				WithPort("4566/tcp").
				WithStartupTimeout(60*time.Second),
		),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start localstack container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "4566")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}

	helper := &localstackHelper{
		container: container,
		endpoint:  fmt.Sprintf("http://%s:%s", host, port.Port()),
	}
	helper.createClient(t)
	return helper
}

// createClient creates an S3 client configured for Localstack.
func (lh *localstackHelper) createClient(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("us-east-1"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			"test", "test", "",
		)),
	)
	if err != nil {
		t.Fatalf("failed to load AWS config: %v", err)
	}

	lh.client = awss3.NewFromConfig(cfg, func(o *awss3.Options) {
		o.BaseEndpoint = &lh.endpoint
		o.UsePathStyle = true
	})
}

func (lh *localstackHelper) createBucket(t *testing.T, bucketName string) {
	t.Helper()
	_, err := lh.client.CreateBucket(context.Background(), &awss3.CreateBucketInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		t.Fatalf("failed to create test bucket: %v", err)
	}
}

func TestS3Store(t *testing.T) {
	ctx := context.Background()
	helper := newLocalstackHelper(t)
	helper.createBucket(t, "shareguard-test")

	store := New(helper.client, Config{
		Bucket:    "shareguard-test",
		KeyPrefix: "blobs/",
	})
	defer store.Close()

	t.Run("put and get", func(t *testing.T) {
		if err := store.Put(ctx, "file-1", []byte("contents")); err != nil {
			t.Fatalf("put failed: %v", err)
		}
		data, err := store.Get(ctx, "file-1")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if string(data) != "contents" {
			t.Errorf("expected %q, got %q", "contents", data)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		if !errors.Is(err, blob.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("exists and delete", func(t *testing.T) {
		ok, err := store.Exists(ctx, "file-1")
		if err != nil || !ok {
			t.Errorf("expected exists=true, got %v, %v", ok, err)
		}
		if err := store.Delete(ctx, "file-1"); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		ok, err = store.Exists(ctx, "file-1")
		if err != nil || ok {
			t.Errorf("expected exists=false after delete, got %v, %v", ok, err)
		}
	})
}
