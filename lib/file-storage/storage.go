package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	initchecker "placement-gateway/lib/utils/init-checker"
)

const (
	reportsPrefix  = "reports"
	bucketLocation = "us-east-1"
)

// ErrReportNotFound is returned by GetReport for unknown object names.
var ErrReportNotFound = errors.New("отчет не найден в архиве")

type Provider interface {
	PutReport(ctx context.Context, kind, fileName string, data []byte, contentType string) (objectName string, err error)
	GetReport(ctx context.Context, objectName string) ([]byte, error)
	MakeBucket(ctx context.Context) error
}

var Instance Provider

type impl struct {
	s3client   *minio.Client
	bucketName string
	now        func() time.Time
}

func NewHandler(s3client *minio.Client, bucketName string) {
	Instance = New(s3client, bucketName)
}

func New(s3client *minio.Client, bucketName string) Provider {
	initchecker.CheckInit(
		"s3 client", s3client,
	)
	return &impl{
		s3client:   s3client,
		bucketName: bucketName,
		now:        time.Now,
	}
}

func (i impl) PutReport(ctx context.Context, kind, fileName string, data []byte, contentType string) (string, error) {
	objectName := reportObjectName(kind, fileName, i.now())
	_, err := i.s3client.PutObject(ctx, i.bucketName, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "ошибка загрузки отчета %v в S3", objectName)
	}
	return objectName, nil
}

func (i impl) GetReport(ctx context.Context, objectName string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, i.bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка получения отчета %v из S3", objectName)
	}
	defer object.Close()
	data, err := io.ReadAll(object)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrReportNotFound
		}
		return nil, errors.Wrapf(err, "ошибка чтения отчета %v из S3", objectName)
	}
	return data, nil
}

func (i impl) MakeBucket(ctx context.Context) error {
	exists, err := i.s3client.BucketExists(ctx, i.bucketName)
	if err != nil {
		return errors.Wrap(err, "ошибка проверки bucket")
	}
	if exists {
		return nil
	}
	err = i.s3client.MakeBucket(ctx, i.bucketName, minio.MakeBucketOptions{Region: bucketLocation})
	if err != nil {
		return errors.Wrap(err, "ошибка создания bucket")
	}
	return nil
}

// Archive stores a generated export when S3 is configured and returns its object name,
// or "" when nothing was stored. Failures are only logged.
func Archive(ctx context.Context, kind, fileName string, data []byte, contentType string) string {
	if Instance == nil {
		return ""
	}
	objectName, err := Instance.PutReport(ctx, kind, fileName, data, contentType)
	if err != nil {
		log.WithError(err).
			WithField("kind", kind).
			WithField("file_name", fileName).
			Warn("не удалось сохранить отчет в архив")
		return ""
	}
	log.WithField("object", objectName).Debug("отчет сохранен в архив")
	return objectName
}

// reportObjectName builds reports/<kind>/<timestamp>-<name>.
func reportObjectName(kind, fileName string, at time.Time) string {
	fileName = strings.ReplaceAll(path.Base("/"+fileName), " ", "_")
	return fmt.Sprintf("%s/%s/%s-%s", reportsPrefix, kind, at.UTC().Format("20060102T150405Z"), fileName)
}
