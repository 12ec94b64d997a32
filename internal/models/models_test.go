package models

import (
	"encoding/json"
	"testing"
)

func TestModels(t *testing.T) {
	t.Run("Genre DisplayName", func(t *testing.T) {
		g := Genre{ID: 1, GenreName: "Horror"}
		if g.DisplayName() != "Horror" {
			t.Errorf("expected Horror, got %s", g.DisplayName())
		}

		g = Genre{ID: 2, Name: "Drama"}
		if g.DisplayName() != "Drama" {
			t.Errorf("expected Drama, got %s", g.DisplayName())
		}

		g = Genre{ID: 3, GenreName: "Action", Name: "ignored"}
		if g.DisplayName() != "Action" {
			t.Errorf("expected genreName to win, got %s", g.DisplayName())
		}
	})

	t.Run("ParseRole", func(t *testing.T) {
		if got := ParseRole([]string{"ROLE_ADMIN"}); got != "ADMIN" {
			t.Errorf("expected ADMIN, got %s", got)
		}
		if got := ParseRole([]string{"ROLE_USER", "ROLE_ADMIN"}); got != "USER" {
			t.Errorf("expected first role to win, got %s", got)
		}
		if got := ParseRole(nil); got != "USER" {
			t.Errorf("expected USER default, got %s", got)
		}
	})

	t.Run("User IsAdmin", func(t *testing.T) {
		if !(User{Role: "ADMIN"}).IsAdmin() {
			t.Error("expected admin")
		}
		if (User{Role: "USER"}).IsAdmin() {
			t.Error("expected non-admin")
		}
	})

	t.Run("MovieDetail Decoding", func(t *testing.T) {
		payload := `{
			"id": 7, "name": "Severance", "tvSeries": true,
			"averageScore": 8.7, "reviewCount": 120,
			"director": {"id": 3, "name": "Ben Stiller"},
			"genres": [{"id": 1, "genreName": "Thriller"}],
			"actors": [{"id": 9, "name": "Adam Scott"}],
			"seasons": [{"id": 11, "number": 1, "episodes": [
				{"id": 101, "episodeNumber": 1, "title": "Good News About Hell", "averageScore": 8.1, "ratingCount": 40}
			]}]
		}`

		var detail MovieDetail
		if err := json.Unmarshal([]byte(payload), &detail); err != nil {
			t.Fatalf("failed to decode detail: %v", err)
		}

		if detail.Name != "Severance" || !detail.TVSeries {
			t.Errorf("unexpected movie fields: %+v", detail.Movie)
		}
		if detail.Director == nil || detail.Director.Name != "Ben Stiller" {
			t.Error("expected director to be decoded")
		}
		if len(detail.Seasons) != 1 || len(detail.Seasons[0].Episodes) != 1 {
			t.Error("expected season and episode to be decoded")
		}
		if detail.Seasons[0].Episodes[0].Title != "Good News About Hell" {
			t.Errorf("unexpected episode title: %s", detail.Seasons[0].Episodes[0].Title)
		}
	})

	t.Run("Request Validation", func(t *testing.T) {
		cases := []struct {
			name    string
			err     error
			wantErr bool
		}{
			{"movie with name", MovieRequest{MovieName: "Heat"}.Validate(), false},
			{"movie without name", MovieRequest{MovieName: "  "}.Validate(), true},
			{"person with name", PersonRequest{Name: "Al Pacino"}.Validate(), false},
			{"person without name", PersonRequest{}.Validate(), true},
			{"genre without name", GenreRequest{}.Validate(), true},
			{"review in range", ReviewRequest{Score: 10, MovieID: 1}.Validate(), false},
			{"review out of range", ReviewRequest{Score: 11}.Validate(), true},
			{"review zero score", ReviewRequest{}.Validate(), true},
			{"rating in range", RatingRequest{Score: 1}.Validate(), false},
			{"rating out of range", RatingRequest{Score: 0}.Validate(), true},
			{"episode with title", EpisodeRequest{Title: "Pilot"}.Validate(), false},
			{"episode without title", EpisodeRequest{}.Validate(), true},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if tc.wantErr && tc.err == nil {
					t.Error("expected validation error")
				}
				if !tc.wantErr && tc.err != nil {
					t.Errorf("unexpected validation error: %v", tc.err)
				}
			})
		}
	})
}
