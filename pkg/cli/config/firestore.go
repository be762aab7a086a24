package config

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"
	"github.com/harsh2b/WellMate/pkg/repository/firestore"
)

type Firestore struct {
	projectID  string
	databaseID string
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID",
			Category:    "Firestore",
			Sources:     cli.EnvVars("WELLMATE_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Sources:     cli.EnvVars("WELLMATE_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
	}
}

func (x Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project_id", x.projectID),
		slog.String("database_id", x.databaseID),
	)
}

// IsConfigured reports whether a Firestore project was given. Without one,
// the serve command falls back to the in-memory store.
func (x *Firestore) IsConfigured() bool {
	return x.projectID != ""
}

func (x *Firestore) Configure(ctx context.Context) (*firestore.Firestore, error) {
	return firestore.New(ctx, x.projectID, x.databaseID)
}
