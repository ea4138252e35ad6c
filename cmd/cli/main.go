package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/limaJavier/classplanner/internal/config"
	applogger "github.com/limaJavier/classplanner/internal/logger"
	"github.com/limaJavier/classplanner/pkg/archive"
	"github.com/limaJavier/classplanner/pkg/export"
	"github.com/limaJavier/classplanner/pkg/metrics"
	"github.com/limaJavier/classplanner/pkg/model"
	"github.com/limaJavier/classplanner/pkg/planner"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	// Define arguments
	configPathPtr := flag.String("config", "", "Path to a YAML config file; if empty, planner.yaml is looked up in ./config and the working directory")
	filePathPtr := flag.String("file", "", "Path to a state file to load; if empty (and nothing is restored), a random state is generated")
	outFilePathPtr := flag.String("out", "", "Path to the file where the state dump will be written; if empty, it'll be written into the Standard Output")
	savePtr := flag.Bool("save", false, "Save the resulting state into the archive and print its token")
	restorePtr := flag.String("restore", "", "Restore the state saved under the given token instead of loading or generating one")
	latestPtr := flag.Bool("latest", false, "Restore the most recently saved state, consuming its token")
	xlsxPathPtr := flag.String("xlsx", "", "Path to the workbook where the weekly grids will be exported")
	icsPathPtr := flag.String("ics", "", "Path to the iCalendar file where a teacher's slots will be exported; requires -teacher")
	teacherPtr := flag.Uint64("teacher", 0, "Id of the teacher exported by -ics")
	semesterPtr := flag.String("semester", string(model.Fall), "Semester exported by -ics: \"fall\" or \"spring\"")
	servePtr := flag.Bool("serve", false, "Keep serving Prometheus metrics on metrics.addr after the run")
	flag.Parse()

	// Validate arguments
	semester, err := model.ParseSemester(*semesterPtr)
	if err != nil {
		log.Fatal(err)
	} else if *restorePtr != "" && *latestPtr {
		log.Fatal("-restore and -latest cannot be used together")
	} else if *filePathPtr != "" && (*restorePtr != "" || *latestPtr) {
		log.Fatal("-file cannot be combined with a restore")
	} else if *icsPathPtr != "" && *teacherPtr == 0 {
		log.Fatal("-ics requires a -teacher id")
	}

	cfg, err := config.Load(*configPathPtr)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	//** Planner
	blobs, err := openBlobStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("cannot open archive", zap.Error(err))
	}
	generatorOptions := cfg.Generator.Options()
	generatorOptions.Observer = collector
	timetable := planner.New(planner.Options{
		Archive:   archive.New(blobs, logger),
		Generator: generatorOptions,
		Logger:    logger,
		Recorder:  collector,
	})
	defer timetable.Close()

	switch {
	case *restorePtr != "":
		err = timetable.RestoreByToken(ctx, *restorePtr)
	case *latestPtr:
		var token string
		if token, err = timetable.RestoreLatest(ctx); err == nil {
			logger.Info("latest state restored", zap.String("token", token))
		}
	case *filePathPtr != "":
		var state model.State
		if state, err = model.StateFromFile(*filePathPtr); err == nil {
			_, err = timetable.Init(&state)
		}
	default:
		_, err = timetable.Init(nil)
	}
	if err != nil {
		logger.Fatal("cannot initialize state", zap.Error(err))
	}

	if *savePtr {
		token, err := timetable.Save(ctx)
		if err != nil {
			logger.Fatal("cannot save state", zap.Error(err))
		}
		if cfg.Archive.Backend == config.MemoryBackend {
			logger.Warn("state saved into the memory archive, it is lost on exit")
		}
		fmt.Fprintln(os.Stderr, token)
	}

	//** Outputs
	dump, err := timetable.Dump()
	if err != nil {
		logger.Fatal("cannot dump state", zap.Error(err))
	}
	if *outFilePathPtr == "" {
		fmt.Println(dump)
	} else if err := os.WriteFile(*outFilePathPtr, []byte(dump), 0666); err != nil {
		logger.Fatal("cannot write output file", zap.Error(err))
	}

	if *xlsxPathPtr != "" {
		if err := writeWorkbook(*xlsxPathPtr, timetable.State()); err != nil {
			logger.Fatal("cannot export workbook", zap.Error(err))
		}
		logger.Info("workbook exported", zap.String("path", *xlsxPathPtr))
	}

	if *icsPathPtr != "" {
		start, _ := cfg.Export.Start()
		calendar, err := export.TeacherCalendar(timetable.State(), *teacherPtr, semester, start, cfg.Export.Weeks)
		if err != nil {
			logger.Fatal("cannot export calendar", zap.Error(err))
		}
		if err := os.WriteFile(*icsPathPtr, []byte(calendar), 0666); err != nil {
			logger.Fatal("cannot write calendar file", zap.Error(err))
		}
		logger.Info("calendar exported", zap.String("path", *icsPathPtr), zap.Uint64("teacherId", *teacherPtr))
	}

	if *servePtr {
		logger.Info("serving metrics", zap.String("addr", cfg.Metrics.Addr))
		server := &http.Server{Addr: cfg.Metrics.Addr, Handler: metrics.Handler(registry)}
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("metrics server failed", zap.Error(err))
		}
	}
}

func openBlobStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (archive.BlobStore, error) {
	if cfg.Archive.Backend == config.RedisBackend {
		return archive.NewRedisStore(ctx, cfg.Redis, logger)
	}
	return archive.NewMemoryStore(), nil
}

func writeWorkbook(path string, state model.State) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return export.WriteXLSX(file, state)
}
