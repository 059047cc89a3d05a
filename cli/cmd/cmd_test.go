package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/citetool/citet/tpl"
)

func TestTemplateInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	path := filepath.Join(dir, "cite.tpl")
	if err := os.WriteFile(path, []byte("[[%s]]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		ctx     context.Context
		arg     string
		want    string
		wantErr bool
	}{
		{
			name: "argument_wins",
			ctx:  WithTemplateFile(context.Background(), path),
			arg:  "{literal}",
			want: "{literal}",
		},
		{
			name: "file_trims_trailing_newline",
			ctx:  WithTemplateFile(context.Background(), path),
			want: "[[%s]]",
		},
		{
			name:    "nothing_given",
			ctx:     context.Background(),
			wantErr: true,
		},
		{
			name:    "missing_file",
			ctx:     WithTemplateFile(context.Background(), filepath.Join(dir, "absent")),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := templateInput(tt.ctx, tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("templateInput() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var te *tpl.Error
				if !errors.As(err, &te) {
					t.Errorf("templateInput() error type = %T, want *tpl.Error", err)
				}

				return
			}

			if got != tt.want {
				t.Errorf("templateInput() = %q, want %q", got, tt.want)
			}
		})
	}
}
