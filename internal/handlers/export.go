package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"prscope/internal/models"
	"prscope/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{
	"Reactions",
	"Reaction Count",
	"Username",
	"Profile URL",
	"First Reaction Date",
	"Profile Creation Date",
	"Profile Creation Date (Date Only)",
}

type ExportHandler struct {
	analysisHandler *AnalysisHandler
}

func NewExportHandler(analysisHandler *AnalysisHandler) *ExportHandler {
	return &ExportHandler{
		analysisHandler: analysisHandler,
	}
}

// Export serializes the most recent analysis as CSV or XLSX
func (h *ExportHandler) Export(c *gin.Context) {
	result := h.analysisHandler.cache.Latest()
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no analysis available, analyze a PR first"})
		return
	}

	name := fmt.Sprintf("pr_reactions_%s_%s", time.Now().Format("20060102_150405"), result.RunID[:8])

	switch c.DefaultQuery("format", "csv") {
	case "xlsx":
		h.exportXLSX(c, result, name+".xlsx")
	case "csv":
		h.exportCSV(c, result, name+".csv")
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported format, use csv or xlsx"})
	}
}

func (h *ExportHandler) exportCSV(c *gin.Context, result *models.AnalysisResult, filename string) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	writer := csv.NewWriter(c.Writer)
	if err := writer.Write(exportHeader); err != nil {
		logger.WithError(err).Error("Failed to write CSV export")
		return
	}
	for _, record := range result.Records {
		if err := writer.Write(exportRow(record)); err != nil {
			logger.WithError(err).Error("Failed to write CSV export")
			return
		}
	}
	writer.Flush()
}

func (h *ExportHandler) exportXLSX(c *gin.Context, result *models.AnalysisResult, filename string) {
	file := excelize.NewFile()
	defer file.Close()

	sheet := "Reactions"
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build workbook"})
		return
	}

	header := make([]interface{}, len(exportHeader))
	for i, column := range exportHeader {
		header[i] = column
	}
	if err := file.SetSheetRow(sheet, "A1", &header); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build workbook"})
		return
	}

	for i, record := range result.Records {
		row := make([]interface{}, 0, len(exportHeader))
		for _, value := range exportRow(record) {
			row = append(row, value)
		}
		cell := "A" + strconv.Itoa(i+2)
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build workbook"})
			return
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := file.Write(c.Writer); err != nil {
		logger.WithError(err).Error("Failed to write XLSX export")
	}
}

func exportRow(record *models.UserRecord) []string {
	return []string{
		record.Reactions,
		strconv.Itoa(record.ReactionCount),
		record.Login,
		record.ProfileURL,
		record.FirstReactionAt,
		record.ProfileCreatedAt,
		record.ProfileCreatedDate,
	}
}
