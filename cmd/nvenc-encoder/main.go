// Command nvenc-encoder converts video files with ffmpeg from the command
// line, using the same conversion core as the desktop application.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/ytget/nvenc-encoder/internal/config"
	"github.com/ytget/nvenc-encoder/internal/encode"
	"github.com/ytget/nvenc-encoder/internal/logging"
	"github.com/ytget/nvenc-encoder/internal/model"
	"github.com/ytget/nvenc-encoder/internal/platform"
)

// version is set at build time via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], config.FromEnv(), os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code
func run(ctx context.Context, args []string, env config.Env, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, env, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "nvenc-encoder: %v\n", err)
		return exitUsage
	}
	if cfg.Version {
		fmt.Fprintf(stdout, "nvenc-encoder v%s\n", version)
		return exitOK
	}

	logger, err := logging.New(cfg.LogLevel, stderr)
	if err != nil {
		logger.WithError(err).Warn("Invalid log level, using info")
	}
	log := logging.WithComponent(logger, "cli")

	if cfg.CheckOnly {
		return runCheck(ctx, cfg.Options.Executable, logging.WithComponent(logger, "probe"), stdout)
	}

	files := collectFiles(cfg.Paths, log)
	if files.Len() == 0 {
		fmt.Fprintln(stderr, "nvenc-encoder: no video files found")
		return exitUsage
	}

	var logLines []string
	svc := encode.NewService(nil, logging.WithComponent(logger, "encode"))
	svc.SetLineCallback(func(line string) {
		fmt.Fprintln(stdout, line)
		if cfg.LogFile != "" {
			logLines = append(logLines, line)
		}
	})
	svc.SetUpdateCallback(func(task model.ConversionTask) {
		if task.Status == model.TaskStatusRunning && task.Percent > 0 {
			log.WithFields(logrus.Fields{
				"file":    task.InputPath,
				"percent": task.Percent,
			}).Debug("Progress")
		}
	})

	batch := model.NewBatch(files.Paths(), cfg.Options, cfg.OutputDir)
	report, err := svc.Run(ctx, batch)
	if err != nil {
		fmt.Fprintf(stderr, "nvenc-encoder: %v\n", err)
		return exitUsage
	}

	if cfg.LogFile != "" {
		if err := platform.WriteTextFile(cfg.LogFile, strings.Join(logLines, "\n")+"\n"); err != nil {
			log.WithError(err).Error("Failed to write conversion log")
		}
	}

	log.WithFields(logrus.Fields{
		"processed": report.Processed,
		"total":     report.Total,
		"succeeded": report.Succeeded,
		"cancelled": report.Cancelled,
		"elapsed":   report.Elapsed,
	}).Info("Batch finished")

	if report.Clean() {
		return exitOK
	}
	return exitFailure
}

// runCheck probes the tool and prints what it found
func runCheck(ctx context.Context, executable string, log *logrus.Entry, stdout io.Writer) int {
	status := platform.NewToolProbeService(log).Check(ctx, executable)
	if !status.Available {
		fmt.Fprintf(stdout, "✗ %s: %v\n", executable, status.Err)
		return exitFailure
	}

	fmt.Fprintf(stdout, "✓ %s\n", status.Version)
	if !status.NVENC {
		fmt.Fprintln(stdout, "✗ No NVENC encoders")
		return exitOK
	}
	for _, enc := range status.Encoders {
		fmt.Fprintf(stdout, "✓ %s  %s\n", enc.Name, enc.Description)
	}
	return exitOK
}

// collectFiles expands the positional paths: folders are scanned for videos,
// files are taken as given. Unreadable paths are logged and skipped.
func collectFiles(paths []string, log *logrus.Entry) *model.FileList {
	list := model.NewFileList()
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			log.WithError(err).WithField("path", p).Warn("Skipping path")
			continue
		}

		if !info.IsDir() {
			if f, err := model.NewInputFile(p); err == nil {
				list.Add(f)
			}
			continue
		}

		found, err := platform.ScanVideoFiles(p)
		if err != nil {
			log.WithError(err).WithField("path", p).Warn("Folder scan failed")
			continue
		}
		for _, path := range found {
			if f, err := model.NewInputFile(path); err == nil {
				list.Add(f)
			}
		}
		log.WithFields(logrus.Fields{"folder": p, "files": len(found)}).Info("Folder scanned")
	}
	return list
}
