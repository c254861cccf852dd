package handlers

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"prscope/internal/models"
	"prscope/internal/services"
	"prscope/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AnalysisHandler struct {
	analysisService  *services.AnalysisService
	spamService      *services.SpamService
	defaultThreshold string
	cache            *analysisCache
}

func NewAnalysisHandler(analysisService *services.AnalysisService, spamService *services.SpamService, defaultThreshold string) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService:  analysisService,
		spamService:      spamService,
		defaultThreshold: defaultThreshold,
		cache:            newAnalysisCache(),
	}
}

// Analyze runs (or re-renders) the reaction analysis for a pull request URL.
// The pipeline only runs when the URL is not the one currently cached;
// changing the threshold or sort order reuses the cached records.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	prURL := c.PostForm("pr_url")
	if prURL == "" {
		prURL = c.Query("pr_url")
	}
	if prURL == "" {
		h.renderError(c, http.StatusBadRequest, "Please enter a GitHub PR URL")
		return
	}

	result := h.cache.Get(prURL)
	if result == nil {
		var err error
		result, err = h.analysisService.Analyze(c.Request.Context(), prURL, logProgress)
		if err != nil {
			h.renderAnalysisError(c, err)
			return
		}
		h.cache.Put(prURL, result)
	}

	thresholdInput := c.PostForm("threshold")
	if thresholdInput == "" {
		thresholdInput = c.Query("threshold")
	}
	if thresholdInput == "" {
		thresholdInput = h.defaultThreshold
	}
	threshold, err := time.Parse("2006-01-02", thresholdInput)
	if err != nil {
		h.renderError(c, http.StatusBadRequest, "Invalid threshold date, expected YYYY-MM-DD")
		return
	}

	classification := h.spamService.Classify(result.Records, threshold)
	veryRecent := h.spamService.VeryRecent(classification.Spam, time.Now())

	sortBy := c.DefaultQuery("sort_by", "reaction_count")
	order := c.DefaultQuery("order", "desc")
	records := sortedRecords(result.Records, sortBy, order)

	c.HTML(http.StatusOK, "results", gin.H{
		"Title":          "Analysis Results",
		"PRURL":          prURL,
		"Ref":            result.Ref,
		"Records":        records,
		"TotalReactions": result.TotalReactions,
		"UniqueUsers":    len(result.Records),
		"Distribution":   result.ReactionDistribution(),
		"Classification": classification,
		"VeryRecent":     veryRecent,
		"Threshold":      thresholdInput,
		"SortBy":         sortBy,
		"Order":          order,
		"AnalyzedAt":     result.AnalyzedAt.Format("2006-01-02 15:04:05"),
	})
}

func (h *AnalysisHandler) renderAnalysisError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoReactions):
		c.HTML(http.StatusOK, "index", gin.H{
			"Title":           "GitHub PR Reactions",
			"TokenConfigured": true,
			"Warning":         "No reactions found for this PR",
			"Threshold":       h.defaultThreshold,
		})
	case errors.Is(err, services.ErrMissingToken), errors.Is(err, services.ErrInvalidURL):
		h.renderError(c, http.StatusBadRequest, err.Error())
	default:
		// FetchError messages carry the HTTP status so the operator can
		// tell a missing PR from a private repository or a network failure
		h.renderError(c, http.StatusBadGateway, err.Error())
	}
}

func (h *AnalysisHandler) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "index", gin.H{
		"Title":           "GitHub PR Reactions",
		"TokenConfigured": true,
		"Error":           message,
		"Threshold":       h.defaultThreshold,
	})
}

// logProgress is the progress sink used by the web UI: one structured log
// line per resolved user
func logProgress(index, total int, login string) {
	logger.WithFields(logrus.Fields{
		"current": index,
		"total":   total,
		"login":   login,
	}).Debug("Processing user profile")
}

// sortedRecords returns a sorted copy of the records. Sentinel creation
// dates sort after real dates in descending order and before them in
// ascending order, mirroring how missing values are pushed to the edge of
// the table.
func sortedRecords(records []*models.UserRecord, sortBy, order string) []*models.UserRecord {
	sorted := make([]*models.UserRecord, len(records))
	copy(sorted, records)

	ascending := order == "asc"

	less := func(a, b *models.UserRecord) bool {
		switch sortBy {
		case "login":
			return a.Login < b.Login
		case "first_reaction":
			return a.FirstReactionAt < b.FirstReactionAt
		case "profile_created":
			aDate, aOK := parseCreationDate(a.ProfileCreatedAt)
			bDate, bOK := parseCreationDate(b.ProfileCreatedAt)
			if aOK != bOK {
				return !aOK == ascending
			}
			return aDate.Before(bDate)
		default: // reaction_count
			return a.ReactionCount < b.ReactionCount
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return less(sorted[i], sorted[j])
		}
		return less(sorted[j], sorted[i])
	})

	return sorted
}

func parseCreationDate(value string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
