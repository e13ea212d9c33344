// Command export fetches every comment of one video and writes it to a spreadsheet.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"comment-service/config"
	"comment-service/export"
	"comment-service/fetcher"
	"comment-service/resolver"
	"comment-service/utils"

	"github.com/fatih/color"
)

func main() {
	videoURL := flag.String("url", "", "YouTube video URL")
	format := flag.String("format", "xlsx", "output format: xlsx or csv")
	outDir := flag.String("out", ".", "directory to write the file into")
	flag.Parse()

	if err := run(*videoURL, *format, *outDir); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}

func run(videoURL, format, outDir string) error {
	if videoURL == "" {
		return errors.New("-url is required")
	}

	videoID, err := resolver.Resolve(videoURL)
	if err != nil {
		return errors.New(utils.InvalidURLMessage)
	}

	sink, err := export.ForFormat(format)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client, err := fetcher.NewAPIClient(ctx, cfg)
	if err != nil {
		return err
	}

	color.Cyan("Fetching comments for video %s ...", videoID)
	records, err := fetcher.NewFetcher(client).FetchAll(ctx, videoID)
	if err != nil {
		return fmt.Errorf("failed to retrieve comments: %w", err)
	}

	path := filepath.Join(outDir, export.Filename(videoID, sink.Extension()))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error writing to file: %w", err)
	}
	defer f.Close()

	if err := sink.Write(f, records); err != nil {
		return fmt.Errorf("error writing to file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error writing to file: %w", err)
	}

	color.Green("Wrote %d comments to %s", len(records), path)
	return nil
}
