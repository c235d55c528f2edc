package database

import (
	"context"
	"testing"

	"shop-backend/pkg/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm/logger"
)

func TestNewMongoConnection_InvalidURI(t *testing.T) {
	_, err := NewMongoConnection(context.Background(), &config.Config{
		MongoURI:      "http://not-mongo",
		MongoDatabase: "shop",
	})
	assert.Error(t, err)
}

func TestOpenGorm(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := OpenGorm(postgres.New(postgres.Config{Conn: sqlDB}), "info")
	require.NoError(t, err)
	assert.True(t, db.Config.TranslateError)

	mock.ExpectClose()
	require.NoError(t, ClosePostgres(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Info, gormLogLevel("debug"))
	assert.Equal(t, logger.Warn, gormLogLevel("warn"))
	assert.Equal(t, logger.Error, gormLogLevel("error"))
	assert.Equal(t, logger.Silent, gormLogLevel("info"))
}
