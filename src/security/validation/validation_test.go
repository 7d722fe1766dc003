package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFileName(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantErr bool
	}{
		{"lower case", "report.csv", false},
		{"upper case", "REPORT.CSV", false},
		{"path is ignored", "dir/sub/ib.csv", false},
		{"xlsx", "report.xlsx", true},
		{"no extension", "report", true},
		{"csv inside name", "report.csv.exe", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFileName(tt.file)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidFile))
			assert.Equal(t, MessageInvalidFileType, Message(err))
		})
	}
}

func TestValidateClientContentType(t *testing.T) {
	assert.NoError(t, ValidateClientContentType(""))
	assert.NoError(t, ValidateClientContentType("text/csv"))
	assert.NoError(t, ValidateClientContentType("text/csv; charset=utf-8"))
	assert.NoError(t, ValidateClientContentType("Application/Vnd.MS-Excel"))
	assert.ErrorIs(t, ValidateClientContentType("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"), ErrInvalidFile)
	assert.ErrorIs(t, ValidateClientContentType("image/png"), ErrInvalidFile)
}

func TestValidateFileContent(t *testing.T) {
	t.Run("csv text is accepted and rewound", func(t *testing.T) {
		r := strings.NewReader("Trades,Header,Symbol\nTrades,Data,AAPL\n")
		detected, err := ValidateFileContent(r)
		require.NoError(t, err)
		assert.Equal(t, "text/plain", detected)
		assert.Equal(t, int64(r.Size()), int64(r.Len()), "reader must be rewound")
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ValidateFileContent(strings.NewReader(""))
		require.ErrorIs(t, err, ErrInvalidFile)
		assert.Equal(t, MessageFileEmpty, Message(err))
	})

	t.Run("binary", func(t *testing.T) {
		_, err := ValidateFileContent(strings.NewReader("PK\x03\x04\x00\x00binary"))
		require.ErrorIs(t, err, ErrInvalidFile)
		assert.Equal(t, MessageInvalidFileType, Message(err))
	})

	t.Run("umlaut cut at the sniffing boundary", func(t *testing.T) {
		content := strings.Repeat("a", 1023) + "ä rest"
		_, err := ValidateFileContent(strings.NewReader(content))
		assert.NoError(t, err)
	})
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "report.csv", SanitizeText("<b>report.csv</b>"))
	assert.Equal(t, "", SanitizeText("<script>alert(1)</script>"))
}

func TestStripUnprintable(t *testing.T) {
	assert.Equal(t, "ab.csv", StripUnprintable("a\x00b\x1b.csv"))
	assert.Equal(t, "a\tb\n", StripUnprintable("a\tb\n"))
}

func TestValidateTaxYear(t *testing.T) {
	year, err := ValidateTaxYear("", 2024)
	require.NoError(t, err)
	assert.Equal(t, 2024, year)

	year, err = ValidateTaxYear(" 2023 ", 2024)
	require.NoError(t, err)
	assert.Equal(t, 2023, year)

	_, err = ValidateTaxYear("abc", 2024)
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = ValidateTaxYear("99999", 2024)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestValidateSectionKey(t *testing.T) {
	assert.NoError(t, ValidateSectionKey("withholding_tax"))
	assert.ErrorIs(t, ValidateSectionKey(""), ErrValidationFailed)
	assert.ErrorIs(t, ValidateSectionKey("Trades"), ErrValidationFailed)
	assert.ErrorIs(t, ValidateSectionKey("../etc"), ErrValidationFailed)
	assert.ErrorIs(t, ValidateSectionKey(strings.Repeat("a", MaxSectionNameLength+1)), ErrValidationFailed)
}

func TestValidateSessionID(t *testing.T) {
	assert.NoError(t, ValidateSessionID(uuid.NewString()))
	assert.ErrorIs(t, ValidateSessionID("not-a-uuid"), ErrValidationFailed)
	assert.ErrorIs(t, ValidateSessionID(""), ErrValidationFailed)
}
