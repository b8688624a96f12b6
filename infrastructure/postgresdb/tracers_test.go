package postgresdb

import "testing"

func TestPrettyPrintSQL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "multiline insert",
			in: `INSERT INTO todos (title, description)
			VALUES (@title, @description)
			RETURNING id`,
			want: "INSERT INTO todos(title, description)VALUES(@title, @description)RETURNING id",
		},
		{
			name: "already compact",
			in:   "SELECT 1",
			want: "SELECT 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := prettyPrintSQL(tt.in); got != tt.want {
				t.Errorf("prettyPrintSQL() = %q, want %q", got, tt.want)
			}
		})
	}
}
