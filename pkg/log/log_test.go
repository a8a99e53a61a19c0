package log

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestConfigure(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	assert.Equal(t, logrus.DebugLevel, Configure("debug"))
	assert.Equal(t, logrus.InfoLevel, Configure("verbose"))
}

func TestWithFields_FiltersInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "dev")

	base := &logger{entry: logrus.NewEntry(logrus.New())}

	same := base.WithFields(Fields{"user_agent": "curl"})
	assert.Same(t, base, same)

	filtered := base.WithFields(Fields{"path": "/v1/sales/chart", "query": "a=1", "report_id": "abc"}).(*logger)
	assert.Equal(t, logrus.Fields{"path": "/v1/sales/chart", "report_id": "abc"}, filtered.entry.Data)
}

func TestWithFields_KeepsAllInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	base := &logger{entry: logrus.NewEntry(logrus.New())}
	withFields := base.WithFields(Fields{"query": "limit=5"}).(*logger)

	assert.Equal(t, "limit=5", withFields.entry.Data["query"])
}
