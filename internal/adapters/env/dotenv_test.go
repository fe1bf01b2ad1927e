package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wpmdb/internal/adapters/env"
	"go.trai.ch/wpmdb/internal/core/domain"
)

func TestParseDotenv(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    map[string]string
		wantErr bool
	}{
		{
			name:    "simple assignment",
			content: "KEY=value\n",
			want:    map[string]string{"KEY": "value"},
		},
		{
			name:    "empty value",
			content: "KEY=\n",
			want:    map[string]string{"KEY": ""},
		},
		{
			name:    "comments and blank lines",
			content: "# leading comment\n\nKEY=value\n\n# trailing comment\n",
			want:    map[string]string{"KEY": "value"},
		},
		{
			name:    "export prefix stripped",
			content: "export KEY=value\n",
			want:    map[string]string{"KEY": "value"},
		},
		{
			name:    "surrounding whitespace trimmed",
			content: "  KEY = value  \n",
			want:    map[string]string{"KEY": "value"},
		},
		{
			name:    "single quotes literal",
			content: `KEY='a \n b'` + "\n",
			want:    map[string]string{"KEY": `a \n b`},
		},
		{
			name:    "double quotes with escapes",
			content: `KEY="line1\nline2\t\"quoted\" \$HOME"` + "\n",
			want:    map[string]string{"KEY": "line1\nline2\t\"quoted\" $HOME"},
		},
		{
			name:    "unknown escape preserved",
			content: `KEY="a\qb"` + "\n",
			want:    map[string]string{"KEY": `a\qb`},
		},
		{
			name:    "unquoted inline comment stripped",
			content: "KEY=value # a comment\n",
			want:    map[string]string{"KEY": "value"},
		},
		{
			name:    "hash inside quoted value kept",
			content: `KEY="value # not a comment"` + "\n",
			want:    map[string]string{"KEY": "value # not a comment"},
		},
		{
			name:    "value with equals sign",
			content: "KEY=a=b=c\n",
			want:    map[string]string{"KEY": "a=b=c"},
		},
		{
			name:    "windows line endings",
			content: "KEY=value\r\nOTHER=x\r\n",
			want:    map[string]string{"KEY": "value", "OTHER": "x"},
		},
		{
			name:    "later assignment wins",
			content: "KEY=first\nKEY=second\n",
			want:    map[string]string{"KEY": "second"},
		},
		{
			name:    "missing equals",
			content: "JUST A LINE\n",
			wantErr: true,
		},
		{
			name:    "empty variable name",
			content: "=value\n",
			wantErr: true,
		},
		{
			name:    "unterminated double quote",
			content: `KEY="open` + "\n",
			wantErr: true,
		},
		{
			name:    "unterminated single quote",
			content: "KEY='open\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := make(map[string]string)
			err := env.ParseDotenvExported(values, []byte(tt.content), domain.DotenvFileName)

			if tt.wantErr {
				// String check for robustness with zerr wrapping
				require.Error(t, err)
				require.ErrorContains(t, err, domain.ErrDotenvParseFailed.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, values)
		})
	}
}
