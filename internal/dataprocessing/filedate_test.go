package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "afilcli/internal/errors"
)

func TestParseFileDate(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		wantYear  int
		wantMonth int
		wantErr   bool
	}{
		{
			name:      "plain filename",
			filename:  "AfiliadosMuni-03-2005.xlsx",
			wantYear:  2005,
			wantMonth: 3,
		},
		{
			name:      "late data suffix",
			filename:  "AfiliadosMuni-01-2010_late_data.xlsx",
			wantYear:  2010,
			wantMonth: 1,
		},
		{
			name:      "revision tags",
			filename:  "AfiliadosMuni-01-2012+DEFINITIVO+mod_late_data.xlsx",
			wantYear:  2012,
			wantMonth: 1,
		},
		{
			name:      "pattern not at start",
			filename:  "copia AfiliadosMuni-12-1999.xls",
			wantYear:  1999,
			wantMonth: 12,
		},
		{
			name:     "no date pattern",
			filename: "notas_metodologicas.xlsx",
			wantErr:  true,
		},
		{
			name:     "month out of range",
			filename: "AfiliadosMuni-13-2010.xlsx",
			wantErr:  true,
		},
		{
			name:     "month zero",
			filename: "AfiliadosMuni-00-2010.xlsx",
			wantErr:  true,
		},
		{
			name:     "wrong prefix",
			filename: "Afiliados-03-2005.xlsx",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month, err := ParseFileDate(tt.filename)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrUnparsableFilename)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantMonth, month)
		})
	}
}
