package catalog

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rhea-16/scholarLink/internal/models"
	"github.com/Rhea-16/scholarLink/pkg/config"
)

const sampleCatalog = `[
  {"id": 1, "scholarship_name": "Post Matric", "provider_name": "State Board", "provider_type": "Government",
   "benefit_amount": "50,000", "application_end_date": "2026-03-31",
   "eligibility": [{"category": ["SC", "ST"], "family_income_max": "2,50,000"}]},
  {"id": "abc", "scholarship_name": "Open Merit", "provider_name": "Trust", "provider_type": "NGO"},
  {"scholarship_name": "No id"}
]`

func TestDecodeArray(t *testing.T) {
	items, err := Decode([]byte(sampleCatalog))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "1", items[0].ID)
	require.NotNil(t, items[0].BenefitAmount)
	assert.Equal(t, 50000.0, *items[0].BenefitAmount)
	require.Len(t, items[0].Eligibility, 1)
	limit, ok := items[0].Eligibility[0].FamilyIncomeMax.Amount()
	assert.True(t, ok)
	assert.Equal(t, 250000.0, limit)

	assert.Equal(t, "abc", items[1].ID)
	assert.NotNil(t, items[1].Eligibility)
	assert.Empty(t, items[1].Eligibility)
}

func TestDecodeEnvelopeAndErrors(t *testing.T) {
	items, err := Decode([]byte(`{"scholarships": [{"id": "x", "scholarship_name": "X"}]}`))
	require.NoError(t, err)
	require.Len(t, items, 1)

	items, err = Decode([]byte("  "))
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = Decode([]byte(`[{"id": `))
	assert.Error(t, err)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o600))

	src := NewFileSource(path)
	assert.Equal(t, config.CatalogSourceFile, src.Name())
	items, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = NewFileSource(filepath.Join(t.TempDir(), "missing.json")).Load(context.Background())
	assert.Error(t, err)
}

type stubLister struct {
	items []models.Scholarship
	err   error
}

func (s stubLister) ListAll(ctx context.Context) ([]models.Scholarship, error) {
	return s.items, s.err
}

func TestPostgresSource(t *testing.T) {
	src := NewPostgresSource(stubLister{items: []models.Scholarship{{ID: "1"}}})
	items, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = NewPostgresSource(stubLister{err: errors.New("boom")}).Load(context.Background())
	assert.ErrorContains(t, err, "boom")
}

func TestNewSource(t *testing.T) {
	src, err := NewSource(config.CatalogConfig{Source: config.CatalogSourcePostgres}, stubLister{})
	require.NoError(t, err)
	assert.Equal(t, config.CatalogSourcePostgres, src.Name())

	_, err = NewSource(config.CatalogConfig{Source: config.CatalogSourceFile}, nil)
	assert.Error(t, err)

	_, err = NewSource(config.CatalogConfig{Source: config.CatalogSourceS3}, nil)
	assert.Error(t, err)

	src, err = NewSource(config.CatalogConfig{Source: config.CatalogSourceS3, S3: config.S3Config{
		Bucket: "catalogs", Key: "scholarships.json", Region: "us-east-1", Endpoint: "http://localhost:9000",
		AccessKey: "key", SecretKey: "secret",
	}}, nil)
	require.NoError(t, err)
	assert.Equal(t, config.CatalogSourceS3, src.Name())
}

type fakeObjectGetter struct {
	body  string
	err   error
	input *s3.GetObjectInput
}

func (f *fakeObjectGetter) GetObjectWithContext(ctx aws.Context, input *s3.GetObjectInput, opts ...request.Option) (*s3.GetObjectOutput, error) {
	f.input = input
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func TestS3Source(t *testing.T) {
	getter := &fakeObjectGetter{body: sampleCatalog}
	src := newS3Source(getter, "catalogs", "scholarships.json")

	items, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "catalogs", aws.StringValue(getter.input.Bucket))
	assert.Equal(t, "scholarships.json", aws.StringValue(getter.input.Key))

	getter.err = errors.New("access denied")
	_, err = src.Load(context.Background())
	assert.ErrorContains(t, err, "access denied")
}
