package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"risecheckout/config"
	"risecheckout/infras/otel"
	"risecheckout/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

const (
	otelAttrFileName = "file_name"
	otelAttrBucket   = "bucket"
	otelAttrSize     = "size"

	breakerName = "s3"
)

// ErrUnavailable is returned while the breaker refuses uploads.
var ErrUnavailable = errors.New("object storage unavailable")

// Object is a payload to store under Directory/Name. An empty Bucket means
// the configured one.
type Object struct {
	Bucket          string
	Directory       string
	Name            string
	ContentType     string
	ContentEncoding string
	Body            []byte
}

type S3 interface {
	Upload(ctx context.Context, object Object) (url string, err error)
	DeleteFile(ctx context.Context, bucketName, directory, objectName string) error
	GetObjectNameFromURL(bucketName, url string) (objectName string)
}

// objectAPI is the subset of *s3.Client used here.
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type s3Impl struct {
	client  objectAPI
	config  *config.Config
	otel    otel.Otel
	breaker *gobreaker.CircuitBreaker[*s3.PutObjectOutput]
}

func newBreaker() *gobreaker.CircuitBreaker[*s3.PutObjectOutput] {
	return gobreaker.NewCircuitBreaker[*s3.PutObjectOutput](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	})
}

func (svc *s3Impl) Upload(ctx context.Context, object Object) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucket := object.Bucket
	if bucket == "" {
		bucket = svc.config.External.S3.BucketName
	}

	scope.SetAttributes(map[string]any{
		otelAttrFileName: object.Name,
		otelAttrBucket:   bucket,
		otelAttrSize:     len(object.Body),
	})

	objectKey := path.Join(object.Directory, object.Name)
	body := bytes.NewReader(object.Body)

	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(objectKey),
		Body:          body,
		ContentType:   aws.String(object.ContentType),
		ContentLength: aws.Int64(body.Size()),
	}

	if object.ContentEncoding != "" {
		input.ContentEncoding = aws.String(object.ContentEncoding)
	}

	_, err = svc.breaker.Execute(func() (*s3.PutObjectOutput, error) {
		return svc.client.PutObject(ctx, input)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return constant.Empty, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}

		log.Error().Err(err).Str("key", objectKey).Msg("failed to upload file to S3")

		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return svc.publicURL(bucket, objectKey), nil
}

func (svc *s3Impl) DeleteFile(ctx context.Context, bucketName, directory, objectName string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".DeleteFile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrFileName: objectName,
		otelAttrBucket:   bucketName,
	})

	objectKey := path.Join(directory, objectName)

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete file from S3")

		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

func (svc *s3Impl) GetObjectNameFromURL(bucketName, url string) (objectName string) {
	publicDomain := strings.TrimSuffix(svc.config.External.S3.PublicDomain, "/")

	if publicDomain != "" {
		if name, found := strings.CutPrefix(url, publicDomain+"/"); found {
			return name
		}
	}

	apiEndpoint := strings.TrimSuffix(svc.config.External.S3.APIEndpoint, "/")
	if name, found := strings.CutPrefix(url, fmt.Sprintf("%s/%s/", apiEndpoint, bucketName)); found {
		return name
	}

	return constant.Empty
}

// publicURL prefers the public domain, which serves the bucket root, and
// falls back to the path-style API URL.
func (svc *s3Impl) publicURL(bucket, objectKey string) string {
	if publicDomain := strings.TrimSuffix(svc.config.External.S3.PublicDomain, "/"); publicDomain != "" {
		return fmt.Sprintf("%s/%s", publicDomain, objectKey)
	}

	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(svc.config.External.S3.APIEndpoint, "/"), bucket, objectKey)
}

func New(config *config.Config, otel otel.Otel) S3 {
	endpoint := config.External.S3.APIEndpoint
	accessKeyID := config.External.S3.AccessKeyID
	secretAccessKey := config.External.S3.SecretAccessKey

	staticProvider := credentials.NewStaticCredentialsProvider(
		accessKeyID,
		secretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithCredentialsProvider(staticProvider),
		awsConfig.WithRegion(config.External.S3.Region),
	)

	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}

		o.UsePathStyle = true
	})

	return &s3Impl{
		client:  s3Client,
		config:  config,
		otel:    otel,
		breaker: newBreaker(),
	}
}
