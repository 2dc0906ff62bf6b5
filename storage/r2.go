package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
)

// R2 talks to Cloudflare R2 through the S3 API.
type R2 struct {
	S3     *s3.Client
	Bucket string
	// PublicDomain is the custom domain or r2.dev URL the bucket is exposed on.
	PublicDomain string
}

func NewR2(ctx context.Context, endpoint, accessKey, secretKey, bucket, publicDomain string) (*R2, error) {
	if bucket == "" || accessKey == "" || secretKey == "" || endpoint == "" {
		return nil, errors.New("missing R2 settings (bucket, access key, secret key, endpoint)")
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "r2 config")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true // required for R2
	})

	return &R2{S3: client, Bucket: bucket, PublicDomain: publicDomain}, nil
}

func (r *R2) List(ctx context.Context, prefix string) ([]Object, error) {
	out := make([]Object, 0)
	p := s3.NewListObjectsV2Paginator(r.S3, &s3.ListObjectsV2Input{
		Bucket: aws.String(r.Bucket),
		Prefix: aws.String(prefix),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "list %s", prefix)
		}
		for _, o := range page.Contents {
			key := aws.ToString(o.Key)
			out = append(out, Object{Key: key, URL: r.URL(key), Size: aws.ToInt64(o.Size)})
		}
	}
	return out, nil
}

func (r *R2) Get(ctx context.Context, key string) ([]byte, error) {
	res, err := r.S3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, ErrNotExist
		}
		return nil, errors.Wrapf(err, "get %s", key)
	}
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", key)
	}
	return data, nil
}

func (r *R2) Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	// The SDK needs a seekable body to sign the payload.
	if _, ok := body.(io.ReadSeeker); !ok {
		data, err := io.ReadAll(body)
		if err != nil {
			return "", err
		}
		body = bytes.NewReader(data)
	}
	_, err := r.S3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(r.Bucket),
		Key:          aws.String(key),
		Body:         body,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("no-cache"),
	})
	if err != nil {
		return "", errors.Wrapf(err, "upload %s", key)
	}
	return r.URL(key), nil
}

func (r *R2) Delete(ctx context.Context, key string) error {
	_, err := r.S3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errors.Wrapf(err, "delete %s", key)
	}
	return nil
}

// URL builds the public URL for a stored object.
func (r *R2) URL(key string) string {
	return fmt.Sprintf("%s/%s/%s", r.PublicDomain, r.Bucket, key)
}

func (r *R2) KeyFromURL(raw string) (string, error) {
	return keyUnder(r.PublicDomain+"/"+r.Bucket, raw)
}

func isNoSuchKey(err error) bool {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		code := ae.ErrorCode()
		return code == "NoSuchKey" || code == "NotFound"
	}
	return false
}
