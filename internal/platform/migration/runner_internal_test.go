// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestDatabaseURL rewrites postgres schemes for the pgx v5 migrate driver.
*/
func TestDatabaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@localhost:5432/todo?sslmode=disable", "pgx5://u:p@localhost:5432/todo?sslmode=disable"},
		{"postgresql://u@db/todo", "pgx5://u@db/todo"},
		{"pgx5://u@db/todo", "pgx5://u@db/todo"},
		{"host=db user=u", "host=db user=u"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, databaseURL(tt.in))
		})
	}
}

/*
TestSourceURL prefixes the file scheme.
*/
func TestSourceURL(t *testing.T) {
	assert.Equal(t, "file://data/migrations", sourceURL("data/migrations"))
	assert.Equal(t, "file:///srv/todo/migrations", sourceURL("/srv/todo/migrations"))
}
