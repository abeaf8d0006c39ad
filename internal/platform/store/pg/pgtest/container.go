//go:build integration_pg

// Package pgtest runs a disposable postgres for integration_pg tests
package pgtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image = "postgres:16-alpine"
	port  = "5432/tcp"
	cred  = "gridiron"
)

// Start boots a container and returns a DSN for the gridiron database
// it is terminated when t finishes
func Start(t *testing.T) string {
	t.Helper()

	// leaves room for a cold image pull
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		Started: true,
		ContainerRequest: tc.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{port},
			Env: map[string]string{
				"POSTGRES_USER":     cred,
				"POSTGRES_PASSWORD": cred,
				"POSTGRES_DB":       cred,
			},
			// initdb restarts the server once, the second ready line is the real one
			WaitingFor: wait.ForAll(
				wait.ForListeningPort(port),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(2 * time.Minute),
		},
	})
	if err != nil {
		t.Fatalf("pgtest: start %s: %v", image, err)
	}
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	ep, err := c.PortEndpoint(ctx, port, "")
	if err != nil {
		t.Fatalf("pgtest: endpoint: %v", err)
	}
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", cred, cred, ep, cred)
}
