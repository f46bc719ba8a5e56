package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"newsroom/internal/domain"
	"newsroom/internal/relevance"
	"newsroom/internal/urlhash"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Error: message})
}

// handleFetchNews triggers an ingestion run. ?priority=high restricts the
// run to high-priority sources without the relevance filter.
func (s *Server) handleFetchNews(w http.ResponseWriter, r *http.Request) {
	run := s.ingest.Run
	if r.URL.Query().Get("priority") == "high" {
		run = s.ingest.RunHighPriority
	}

	stats, err := run(r.Context())
	if err != nil {
		s.logger.Error("fetch-news failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"stats":     stats,
	})
}

// handleRotatePeriod closes the active voting period and opens the next
// one, regardless of the period's end date.
func (s *Server) handleRotatePeriod(w http.ResponseWriter, r *http.Request) {
	result, err := s.rotation.Rotate(r.Context())
	if errors.Is(err, domain.ErrNoActivePeriod) {
		writeError(w, http.StatusNotFound, "No active voting period found")
		return
	}
	if err != nil {
		s.logger.Error("rotate-period failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    result,
	})
}

// handleVotingPeriod returns the current active period, or null data when
// none exists.
func (s *Server) handleVotingPeriod(w http.ResponseWriter, r *http.Request) {
	period, err := s.periods.GetActive(r.Context())
	if errors.Is(err, domain.ErrNoActivePeriod) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": nil})
		return
	}
	if err != nil {
		s.logger.Error("voting-period lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch voting period")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data": map[string]any{
			"id":            period.ID,
			"periodNumber":  period.PeriodNumber,
			"startDate":     period.StartDate,
			"endDate":       period.EndDate,
			"daysRemaining": period.DaysRemaining(time.Now()),
			"totalArticles": period.TotalArticles,
			"totalVotes":    period.TotalVotes,
			"status":        period.Status,
		},
	})
}

type winnerArticle struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	SourceName    string    `json:"sourceName"`
	SourceURL     string    `json:"sourceUrl"`
	PublishedAt   time.Time `json:"publishedAt"`
	TotalVotes    int       `json:"totalVotes"`
	InterestScore int       `json:"interestScore"`
	WeeklyRank    *int      `json:"weeklyRank"`
	IsStoryOfWeek bool      `json:"isStoryOfWeek"`
}

type archivedPeriod struct {
	ID            int64           `json:"id"`
	PeriodNumber  int             `json:"periodNumber"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
	TotalArticles int             `json:"totalArticles"`
	TotalVotes    int             `json:"totalVotes"`
	Winners       []winnerArticle `json:"winners"`
}

// handleWinners returns past voting periods with their winner articles,
// newest period first, winners in rank order.
func (s *Server) handleWinners(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 50 {
			limit = parsed
		}
	}

	periods, err := s.periods.ListArchived(r.Context(), limit)
	if err != nil {
		s.logger.Error("winners lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch archive")
		return
	}

	out := make([]archivedPeriod, 0, len(periods))
	for _, p := range periods {
		var winnerIDs []int64
		for _, id := range []*int64{p.Winner1ID, p.Winner2ID, p.Winner3ID} {
			if id != nil {
				winnerIDs = append(winnerIDs, *id)
			}
		}

		var winners []winnerArticle
		if len(winnerIDs) > 0 {
			articles, err := s.articles.GetByIDs(r.Context(), winnerIDs)
			if err != nil {
				s.logger.Error("winner articles lookup failed", "period", p.PeriodNumber, "error", err)
				writeError(w, http.StatusInternalServerError, "Failed to fetch archive")
				return
			}
			sort.Slice(articles, func(i, j int) bool {
				return rankOf(articles[i]) < rankOf(articles[j])
			})
			for _, a := range articles {
				winners = append(winners, winnerArticle{
					ID:            a.ID,
					Title:         a.Title,
					SourceName:    a.SourceName,
					SourceURL:     a.SourceURL,
					PublishedAt:   a.PublishedAt,
					TotalVotes:    a.TotalVotes,
					InterestScore: a.InterestScore,
					WeeklyRank:    a.WeeklyRank,
					IsStoryOfWeek: a.IsStoryOfWeek,
				})
			}
		}

		out = append(out, archivedPeriod{
			ID:            p.ID,
			PeriodNumber:  p.PeriodNumber,
			StartDate:     p.StartDate,
			EndDate:       p.EndDate,
			TotalArticles: p.TotalArticles,
			TotalVotes:    p.TotalVotes,
			Winners:       winners,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data": map[string]any{
			"periods": out,
			"total":   len(out),
		},
	})
}

func rankOf(a domain.Article) int {
	if a.WeeklyRank == nil {
		return 99
	}
	return *a.WeeklyRank
}

type submitRequest struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Excerpt     string `json:"excerpt"`
	Category    string `json:"category"`
	Content     string `json:"content"`
	SubmittedBy string `json:"submittedBy"`
}

// handleSubmitArticle accepts a community submission into the moderation
// queue. Missing categories are derived from the text.
func (s *Server) handleSubmitArticle(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.URL) == "" {
		writeError(w, http.StatusBadRequest, "Title and URL are required")
		return
	}

	if req.SubmittedBy == "" {
		req.SubmittedBy = "anonymous"
	}
	if req.Category == "" {
		req.Category = relevance.Categorize(req.Title, req.Content)
	}

	sub := &domain.Submission{
		Title:       req.Title,
		SourceURL:   req.URL,
		Excerpt:     req.Excerpt,
		Category:    req.Category,
		Content:     req.Content,
		SubmittedBy: req.SubmittedBy,
		URLHash:     urlhash.Hash(req.URL),
	}

	id, err := s.articles.InsertSubmission(r.Context(), sub)
	if errors.Is(err, domain.ErrDuplicateArticle) {
		writeError(w, http.StatusConflict, "Article already submitted")
		return
	}
	if err != nil {
		s.logger.Error("submit-article failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to submit article")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Article submitted for moderation",
		"data":    map[string]any{"id": id, "category": sub.Category},
	})
}
