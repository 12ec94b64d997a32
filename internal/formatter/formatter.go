// package formatter provides functions to export catalog data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/models"
	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/shared"
)

// ExportToCSV converts a movie list to CSV format with columns: ID, Name, Kind, Score, Reviews
func ExportToCSV(movies []models.Movie) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Kind", "Score", "Reviews"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, movie := range movies {
		record := []string{
			strconv.FormatInt(movie.ID, 10),
			movie.Name,
			shared.KindString(movie.TVSeries),
			shared.FormatScore(movie.AverageScore, movie.ReviewCount),
			strconv.Itoa(movie.ReviewCount),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a movie detail to Markdown format with optional poster image
func ExportToMarkdown(detail *models.MovieDetail, imageFilename string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", detail.Name))

	if imageFilename != "" {
		buf.WriteString(fmt.Sprintf("![Poster](%s)\n\n", imageFilename))
	}

	if detail.Description != "" {
		buf.WriteString(fmt.Sprintf("**Description**: %s\n\n", detail.Description))
	}

	buf.WriteString(fmt.Sprintf("**Kind**: %s\n", shared.KindString(detail.TVSeries)))
	buf.WriteString(fmt.Sprintf("**Score**: %s\n", shared.FormatScore(detail.AverageScore, detail.ReviewCount)))
	if detail.Director != nil {
		buf.WriteString(fmt.Sprintf("**Director**: %s\n", detail.Director.Name))
	}
	buf.WriteString("\n")

	if len(detail.Genres) > 0 {
		buf.WriteString("## Genres\n\n")
		for _, genre := range detail.Genres {
			buf.WriteString(fmt.Sprintf("- %s\n", genre.DisplayName()))
		}
		buf.WriteString("\n")
	}

	if len(detail.Actors) > 0 {
		buf.WriteString("## Cast\n\n")
		for i, actor := range detail.Actors {
			buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, actor.Name))
		}
		buf.WriteString("\n")
	}

	if detail.TVSeries && len(detail.Seasons) > 0 {
		buf.WriteString("## Seasons\n\n")
		for _, season := range detail.Seasons {
			buf.WriteString(fmt.Sprintf("- Season %d (%d episodes)\n", season.Number, len(season.Episodes)))
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts a movie list to plain text format
func ExportToText(title string, movies []models.Movie) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s\n", title))
	buf.WriteString(fmt.Sprintf("Movies: %d\n\n", len(movies)))

	for i, movie := range movies {
		buf.WriteString(fmt.Sprintf("%d. %s [%s] %s\n",
			i+1, movie.Name, shared.KindString(movie.TVSeries),
			shared.FormatScore(movie.AverageScore, movie.ReviewCount)))
	}

	return buf.Bytes(), nil
}

// DownloadImage downloads an image from the given URL and returns the raw bytes
func DownloadImage(url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("empty URL provided")
	}

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download image: status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	return imageData, nil
}

// ToMetadataJSON generates a JSON representation of a movie (without relations)
func ToMetadataJSON(movie models.Movie) ([]byte, error) {
	return shared.MarshalJSON(movie, true)
}

// CSVExportResult contains the paths of files created by WriteCSVExport
type CSVExportResult struct {
	MoviesFile string
}

// WriteCSVExport exports a movie list to a CSV file.
//
// Defaults to {base}_movies.csv with base "export".
func WriteCSVExport(movies []models.Movie, baseFilepath string) (*CSVExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = "export"
	}

	csvData, err := ExportToCSV(movies)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	moviesFile := baseFilepath + "_movies.csv"
	if err := os.WriteFile(moviesFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	return &CSVExportResult{MoviesFile: moviesFile}, nil
}

// MarkdownExportResult contains information about files created by WriteMarkdownExport
type MarkdownExportResult struct {
	Directory   string
	Files       []string
	PosterImage string
}

// WriteMarkdownExport exports a movie detail to Markdown format in a dedicated directory.
//
// Directory name defaults to the movie ID.
// Attempts to download the poster when the detail carries an image URL.
// Creates a directory structure: {dir}/README.md and optionally {dir}/poster.jpg
func WriteMarkdownExport(detail *models.MovieDetail, outputDir string) (*MarkdownExportResult, error) {
	if outputDir == "" {
		outputDir = strconv.FormatInt(detail.ID, 10)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	result := &MarkdownExportResult{
		Directory: outputDir,
		Files:     []string{},
	}

	var posterFilename string
	if detail.ImageURL != "" {
		imageData, err := DownloadImage(detail.ImageURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to download poster image: %v\n", err)
		} else {
			posterFilename = "poster.jpg"
			posterPath := fmt.Sprintf("%s/%s", outputDir, posterFilename)
			if err := os.WriteFile(posterPath, imageData, 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to save poster image: %v\n", err)
				posterFilename = ""
			} else {
				result.PosterImage = posterPath
				result.Files = append(result.Files, posterPath)
			}
		}
	}

	mdData, err := ExportToMarkdown(detail, posterFilename)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Markdown: %w", err)
	}

	mdFile := fmt.Sprintf("%s/README.md", outputDir)
	if err := os.WriteFile(mdFile, mdData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write Markdown file: %w", err)
	}

	result.Files = append(result.Files, mdFile)

	return result, nil
}

// WriteTextExport exports a movie list to plain text format.
//
// Defaults to movies.txt as the filename.
func WriteTextExport(title string, movies []models.Movie, filepath string) (string, error) {
	if filepath == "" {
		filepath = "movies.txt"
	}

	textData, err := ExportToText(title, movies)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(filepath, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return filepath, nil
}
