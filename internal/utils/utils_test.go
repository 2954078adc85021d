package utils_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/cleaning_tracker/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	now := time.Now()
	token, expiresAt, err := utils.GenerateJWT("operator", "s3cret", time.Hour, "cleaning_tracker", now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), expiresAt, time.Second)

	claims, err := utils.ParseAndValidateJWT(token, "s3cret", "cleaning_tracker")
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Subject)

	_, err = utils.ParseAndValidateJWT(token, "other", "cleaning_tracker")
	assert.Error(t, err)

	_, err = utils.ParseAndValidateJWT(token, "s3cret", "someone_else")
	assert.Error(t, err)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, _, err := utils.GenerateJWT("operator", "s3cret", time.Minute, "ct", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	_, err = utils.ParseAndValidateJWT(token, "s3cret", "ct")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	_, err := utils.HashPassword("short")
	assert.ErrorIs(t, err, utils.ErrPasswordTooShort)

	hash, err := utils.HashPassword("correct horse")
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("correct horse", hash))
	assert.False(t, utils.CheckPasswordHash("wrong horse", hash))
	assert.False(t, utils.CheckPasswordHash("correct horse", ""))
}

func TestGenerateJWTSecret(t *testing.T) {
	a, err := utils.GenerateJWTSecret()
	require.NoError(t, err)
	b, err := utils.GenerateJWTSecret()
	require.NoError(t, err)
	assert.Len(t, a, utils.JWTSecretBytes*2)
	assert.NotEqual(t, a, b)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "£12.50", utils.FormatMoney("£", decimal.RequireFromString("12.5")))
	assert.Equal(t, "-£3.00", utils.FormatMoney("£", decimal.NewFromInt(-3)))
	assert.Equal(t, "05/03/2024", utils.FormatDisplayDate(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
}

func TestIDs(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 7, 9, 123456000, time.UTC)
	assert.Equal(t, "2024-03-05T14:07:09.123456", utils.NewEntryID(now))
	assert.Equal(t, "20240305140709", utils.NewClientID(now))
}

func TestUsageTracker_DisabledWithoutKey(t *testing.T) {
	tracker, err := utils.NewUsageTracker("", "https://eu.i.posthog.com", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.False(t, tracker.Enabled())

	tracker.Enqueue("local", "get_api_entries", nil)
	tracker.Close()

	var missing *utils.UsageTracker
	assert.False(t, missing.Enabled())
}
