package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestROCDateParts(t *testing.T) {
	year, month, day := ROCDateParts("2026-09-01")
	assert.Equal(t, "115", year)
	assert.Equal(t, "9", month)
	assert.Equal(t, "1", day)

	year, month, day = ROCDateParts("2027-12-31")
	assert.Equal(t, "116", year)
	assert.Equal(t, "12", month)
	assert.Equal(t, "31", day)
}

func TestROCDatePartsEmptyInput(t *testing.T) {
	year, month, day := ROCDateParts("")
	assert.Empty(t, year)
	assert.Empty(t, month)
	assert.Empty(t, day)
}

func TestROCDatePartsPartialInput(t *testing.T) {
	year, month, day := ROCDateParts("2026-09")
	assert.Equal(t, "115", year)
	assert.Equal(t, "9", month)
	assert.Empty(t, day)
}
