package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Payload is a raw dataset as read from a Source.
type Payload struct {
	// Name is used to pick the decoder and in log messages.
	Name string
	Data []byte
}

// Source reads the raw dataset.
type Source interface {
	Load(ctx context.Context) (Payload, error)
}

// Bytes is a Source serving an in-memory payload, typically the embedded
// default dataset.
type Bytes struct {
	Name string
	Data []byte
}

func (b Bytes) Load(context.Context) (Payload, error) {
	return Payload{Name: b.Name, Data: b.Data}, nil
}

// File reads the dataset from the local filesystem.
type File struct {
	Path string
}

func (f File) Load(context.Context) (Payload, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return Payload{}, fmt.Errorf("could not read dataset file: %w", err)
	}

	return Payload{Name: f.Path, Data: data}, nil
}

// S3API is the subset of the S3 client used by S3.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3 reads the dataset from an S3 compatible bucket (AWS S3, Cloudflare R2,
// MinIO).
type S3 struct {
	Client S3API
	Bucket string
	Key    string
}

func (s S3) Load(ctx context.Context) (Payload, error) {
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		return Payload{}, fmt.Errorf("could not get dataset object: %w", err)
	}
	defer func() {
		_ = out.Body.Close()
	}()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, out.Body); err != nil {
		return Payload{}, fmt.Errorf("could not read dataset object: %w", err)
	}

	return Payload{Name: "s3://" + s.Bucket + "/" + s.Key, Data: buf.Bytes()}, nil
}

// S3Options configures NewS3Client.
type S3Options struct {
	Region string
	// Endpoint overrides the service endpoint, e.g. an R2 account endpoint.
	Endpoint  string
	AccessKey string
	SecretKey string
}

// NewS3Client builds an S3 client. Static credentials are used when both keys
// are set, otherwise the default AWS credential chain applies.
func NewS3Client(ctx context.Context, opts S3Options) (*s3.Client, error) {
	region := opts.Region
	if region == "" {
		region = "auto"
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("could not load aws config: %w", err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// Load reads, decodes and validates a dataset. Validation problems are
// returned alongside a usable snapshot; only read and decode failures are
// errors.
func Load(ctx context.Context, src Source) (*Snapshot, []Problem, error) {
	p, err := src.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	ds, err := Decode(p.Name, p.Data)
	if err != nil {
		return nil, nil, err
	}

	return NewSnapshot(ds, Version(p.Data), p.Name), Validate(ds), nil
}
