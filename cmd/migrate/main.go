// Command migrate applies the SQL files under migrations/ with the atlas CLI.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"shareit/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding the migration files and atlas.sum")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	flag.Parse()

	if err := run(*dir, *atlasBin); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(dir, atlasBin string) error {
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}

	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(dir)),
	)
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), atlasBin)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL: dbCfg.BuildDSN(),
	})
	if err != nil {
		return err
	}

	slog.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
	)
	return nil
}
