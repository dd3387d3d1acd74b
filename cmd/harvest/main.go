package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"course-catalog/internal/banner"
	"course-catalog/internal/catalog"
	"course-catalog/internal/config"
	"course-catalog/internal/enrich"
	"course-catalog/internal/export"
	"course-catalog/internal/httpx"
	"course-catalog/internal/logger"
	"course-catalog/internal/sftpclient"
)

func main() {
	cfg := config.Load()

	var (
		term           = flag.String("term", cfg.Term, "term code, e.g. 202440")
		outDir         = flag.String("out", cfg.OutDir, "directory for per-subject JSON files")
		rawFile        = flag.String("raw", cfg.RawFile, "path for the raw catalog dump (empty = skip)")
		pageSize       = flag.Int("page-size", cfg.PageSize, "rows per search page")
		pageWorkers    = flag.Int("page-workers", cfg.PageWorkers, "concurrent page fetchers")
		prereqWorkers  = flag.Int("prereq-workers", cfg.PrereqWorkers, "concurrent prerequisite fetchers")
		includePrereqs = flag.Bool("prereqs", cfg.IncludePrereqs, "fetch and parse prerequisites per section")
		uploadSFTP     = flag.Bool("sftp", false, "publish the subject files via SFTP")
	)
	flag.Parse()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log = log.With(zap.String("run_id", uuid.NewString()), zap.String("term", *term))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
	defer cancel()

	client := banner.New(cfg.BaseURL, cfg.HTTPTimeout)
	client.Retry = httpx.DefaultRetryConfig()

	start := time.Now()
	fetcher := banner.NewFetcher(client, *pageSize, *pageWorkers, log)
	records, err := fetcher.Fetch(ctx, *term)
	if err != nil {
		log.Fatal("course fetch failed", zap.Error(err))
	}

	if *includePrereqs {
		template, err := client.Acquire(ctx, *term)
		if err != nil {
			log.Fatal("prerequisite session failed", zap.Error(err))
		}

		enricher := enrich.New(*prereqWorkers, log)
		records, err = enricher.Enrich(ctx,
			func() (enrich.PrerequisiteSource, error) { return template.Clone() },
			records)
		if err != nil {
			log.Fatal("prerequisite enrichment failed", zap.Error(err))
		}
	}

	if *rawFile != "" {
		if err := export.WriteRawCatalog(*rawFile, records); err != nil {
			log.Fatal("raw catalog write failed", zap.Error(err))
		}
		log.Info("raw catalog written", zap.String("path", *rawFile))
	}

	cat := catalog.Assemble(records)
	if err := export.WriteSubjectFiles(*outDir, cat); err != nil {
		log.Fatal("subject files write failed", zap.Error(err))
	}

	log.Info("harvest complete",
		zap.Int("subjects", len(cat)),
		zap.Int("sections", cat.TotalSections()),
		zap.String("out_dir", *outDir),
		zap.Duration("elapsed", time.Since(start).Round(time.Second)))

	if *uploadSFTP {
		upCfg := sftpclient.Config{
			Host:                  cfg.SFTPHost,
			Port:                  cfg.SFTPPort,
			User:                  cfg.SFTPUser,
			Pass:                  cfg.SFTPPass,
			RemoteDir:             cfg.SFTPDir,
			InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
		}

		upCtx, upCancel := context.WithTimeout(ctx, 5*time.Minute)
		defer upCancel()

		if err := sftpclient.UploadDir(upCtx, upCfg, *outDir); err != nil {
			log.Fatal("sftp publish failed", zap.Error(err))
		}

		indexPath := filepath.Join(filepath.Dir(*outDir), export.IndexFilename)
		if err := sftpclient.UploadFile(upCtx, upCfg, indexPath, export.IndexFilename); err != nil {
			log.Fatal("sftp index publish failed", zap.Error(err))
		}

		log.Info("published via sftp",
			zap.String("host", upCfg.Host),
			zap.String("remote_dir", upCfg.RemoteDir))
	}
}
