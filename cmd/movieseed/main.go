package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// movieseed bulk-imports movies from a CSV file (title, director, year
// columns, any order) by posting each row to a running instance.

func main() {
	var (
		csvPath string
		addr    string
		limit   int
	)

	flag.StringVar(&csvPath, "csv", "", "Path to movies csv file")
	flag.StringVar(&addr, "addr", "http://localhost:3000", "Base URL of a running server")
	flag.IntVar(&limit, "limit", 0, "Limit number of rows to import (0 = all)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if csvPath == "" {
		slog.Error("missing required -csv flag")
		os.Exit(1)
	}

	client := &http.Client{Timeout: 10 * time.Second}

	count, err := importMovies(client, addr, csvPath, limit)
	if err != nil {
		slog.Error("import failed", "error", err)
		os.Exit(1)
	}

	slog.Info("import completed", "rows", count)
}

func importMovies(client *http.Client, addr, csvPath string, limit int) (int, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	idxTitle, idxDirector, idxYear, err := parseMovieCSVHeader(reader)
	if err != nil {
		return 0, err
	}

	count := 0
	for limit <= 0 || count < limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, err
		}

		title, director, year, ok := parseMovieRecord(record, idxTitle, idxDirector, idxYear)
		if !ok {
			continue
		}

		if err := postMovie(client, addr, title, director, year); err != nil {
			return count, err
		}

		count++
	}

	return count, nil
}

func postMovie(client *http.Client, addr, title, director string, year int) error {
	payload, err := json.Marshal(map[string]interface{}{
		"title":    title,
		"director": director,
		"year":     year,
	})
	if err != nil {
		return err
	}

	resp, err := client.Post(addr+"/movies", "application/json", bytes.NewReader(payload)) // nolint: noctx
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %s for %q: %s", resp.Status, title, body)
	}
	return nil
}

func parseMovieCSVHeader(reader *csv.Reader) (int, int, int, error) {
	header, err := reader.Read()
	if err != nil {
		return 0, 0, 0, err
	}

	idxTitle, idxDirector, idxYear := -1, -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "title":
			idxTitle = i
		case "director":
			idxDirector = i
		case "year":
			idxYear = i
		}
	}
	if idxTitle == -1 || idxDirector == -1 || idxYear == -1 {
		return 0, 0, 0, errors.New("missing required columns in csv header")
	}

	return idxTitle, idxDirector, idxYear, nil
}

func parseMovieRecord(record []string, idxTitle, idxDirector, idxYear int) (string, string, int, bool) {
	if idxTitle >= len(record) || idxDirector >= len(record) || idxYear >= len(record) {
		return "", "", 0, false
	}

	year, err := strconv.Atoi(strings.TrimSpace(record[idxYear]))
	if err != nil {
		return "", "", 0, false
	}
	title := strings.TrimSpace(record[idxTitle])
	director := strings.TrimSpace(record[idxDirector])
	return title, director, year, true
}
