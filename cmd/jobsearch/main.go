// jobsearch — operator CLI for running corpus searches by hand.
//
// Examples:
//
//	jobsearch query -- Engineer -Zenith
//	jobsearch query --class "Information Technology" --page 2 "Backend/Frontend"
//	jobsearch query "=Acme Corp"
//	jobsearch facets
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/HawyHoWingYam/JOB-SCRAPER-sub000/internal/catalog"
	"github.com/HawyHoWingYam/JOB-SCRAPER-sub000/internal/config"
	"github.com/HawyHoWingYam/JOB-SCRAPER-sub000/internal/db"
	"github.com/HawyHoWingYam/JOB-SCRAPER-sub000/internal/search"
	"github.com/HawyHoWingYam/JOB-SCRAPER-sub000/internal/store"
)

func main() {
	app := &cli.App{
		Name:  "jobsearch",
		Usage: "search the scraped job corpus",
		Commands: []*cli.Command{
			{
				Name:      "query",
				Usage:     "run a boolean search; each argument is one term token",
				ArgsUsage: "[term ...]   (prefix - to exclude, = for exact, a/b for alternatives)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "class", Usage: "job class facet (exact match)"},
					&cli.StringFlag{Name: "source", Usage: "source platform facet (exact match)"},
					&cli.IntFlag{Name: "page", Value: 1, Usage: "1-based page number"},
					&cli.IntFlag{Name: "limit", Value: search.DefaultLimit, Usage: "page size"},
				},
				Action: runQuery,
			},
			{
				Name:   "facets",
				Usage:  "list the available job classes and source platforms",
				Action: runFacets,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "jobsearch:", err)
		os.Exit(1)
	}
}

func runQuery(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pool, err := db.NewPostgresPool(c.Context, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	engine, err := search.NewEngine(store.New(pool), search.WithLogger(slog.Default()))
	if err != nil {
		return err
	}

	page := c.Int("page")
	if page < 1 {
		page = 1
	}

	result, err := engine.Search(c.Context, search.Query{
		Facets: search.Facets{
			JobClass: c.String("class"),
			Source:   c.String("source"),
		},
		Terms: c.Args().Slice(),
		Page:  page,
		Limit: c.Int("limit"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("%d match(es) — page %d/%d\n", result.Total, result.PageNum, result.TotalPages)
	for _, job := range result.Items {
		fmt.Printf("%8d  %-40s  %-25s  %s\n", job.InternalID, job.Title, job.CompanyName, job.Source)
	}
	return nil
}

func runFacets(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pool, err := db.NewPostgresPool(c.Context, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	rdb, err := db.NewRedisClient(c.Context, cfg.RedisURL)
	if err != nil {
		return err
	}
	defer rdb.Close()

	cat := catalog.New(store.New(pool), rdb, time.Duration(cfg.CatalogRefreshHours+1)*time.Hour)

	classes, err := cat.JobClasses(c.Context)
	if err != nil {
		return err
	}
	fmt.Println("Job classes:")
	for _, v := range classes {
		fmt.Printf("  %4d  %s\n", v.ID, v.Name)
	}

	platforms, err := cat.SourcePlatforms(c.Context)
	if err != nil {
		return err
	}
	fmt.Println("Source platforms:")
	for _, v := range platforms {
		fmt.Printf("  %4d  %s\n", v.ID, v.Name)
	}
	return nil
}
