package utils

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReceiptNoUsesLastEightDigits(t *testing.T) {
	at := time.UnixMilli(1718035200123)

	assert.Equal(t, "RCP35200123", GenerateReceiptNo(at))
}

func TestGenerateReceiptNoPadsShortTimestamps(t *testing.T) {
	assert.Equal(t, "RCP00000042", GenerateReceiptNo(time.UnixMilli(42)))
}

func TestNewSaleIDIsOrderedWithinMillisecond(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	first := NewSaleID(at)
	second := NewSaleID(at)

	require.NotEqual(t, first, second)
	assert.Less(t, first, second)

	parsed, err := ulid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uint64(at.UnixMilli()), parsed.Time())
}

func TestNewUUIDIsUnique(t *testing.T) {
	assert.NotEqual(t, NewUUID(), NewUUID())
	assert.Len(t, NewUUID(), 36)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Cola & Co", CleanText("  <b>Cola</b> & Co "))
	assert.Equal(t, "Tea", CleanText("<script>alert(1)</script>Tea"))
	assert.Equal(t, "", CleanText("   "))
	assert.Equal(t, "Joe's \"Best\"", CleanText(`Joe's "Best"`))
}

func TestCleanTextKeepsEncodedMarkupInert(t *testing.T) {
	cleaned := CleanText("&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.NotContains(t, cleaned, "<")
	assert.NotContains(t, cleaned, ">")
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Espresso Doppio", "DOPPIO"))
	assert.True(t, ContainsFold("Éclair au café", "ÉCLAIR AU CAFÉ"))
	assert.False(t, ContainsFold("Latte", "mocha"))
	assert.True(t, ContainsFold("abc", ""))
}
