package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"
	"tripavail/config"
	"tripavail/infras/otel"
	"tripavail/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrKey       = "s3.key"
	otelAttrBucket    = "s3.bucket"
	defaultRegion     = "auto"
	defaultPresignTTL = 15 * time.Minute
)

// Object is a stored file and the URL it can be downloaded from.
type Object struct {
	Key string
	URL string
}

// S3 stores exported documents in a single bucket.
type S3 interface {
	Put(ctx context.Context, key, contentType string, data []byte) (obj Object, err error)
}

type s3Impl struct {
	client     *s3.Client
	presigner  *s3.PresignClient
	bucket     string
	publicURL  string
	presignTTL time.Duration
	otel       otel.Otel
}

// Put uploads data under key. The URL is public when a public domain is
// configured and a presigned GET otherwise.
func (svc *s3Impl) Put(ctx context.Context, key, contentType string, data []byte) (obj Object, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Put")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key = path.Clean(key)

	scope.SetAttributes(map[string]any{
		otelAttrKey:    key,
		otelAttrBucket: svc.bucket,
	})

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		log.Error().Err(err).Str("bucket", svc.bucket).Str("key", key).Msg("failed to put object")

		return obj, fmt.Errorf("failed to put object: %w", err)
	}

	obj.Key = key

	if svc.publicURL != "" {
		obj.URL = svc.publicURL + "/" + key

		return obj, nil
	}

	req, err := svc.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(svc.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(svc.presignTTL))
	if err != nil {
		return obj, fmt.Errorf("failed to presign object: %w", err)
	}

	obj.URL = req.URL

	return obj, nil
}

func New(cfg *config.Config, otel otel.Otel) S3 {
	settings := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(settings.AccessKeyID, settings.SecretAccessKey, "")),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to load AWS configuration")
	}

	region := settings.Region
	if region == "" {
		region = defaultRegion
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if settings.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(settings.APIEndpoint)
		}

		o.UsePathStyle = true
		o.Region = region
	})

	ttl := time.Duration(settings.PresignTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultPresignTTL
	}

	return &s3Impl{
		client:     client,
		presigner:  s3.NewPresignClient(client),
		bucket:     settings.BucketName,
		publicURL:  strings.TrimSuffix(settings.PublicDomain, "/"),
		presignTTL: ttl,
		otel:       otel,
	}
}
