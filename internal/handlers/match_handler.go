package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-ranker/internal/models"
	"alfredoptarigan/resume-ranker/internal/services"
)

const missingInputMessage = "Please upload resumes and enter a job description."

type MatchHandler struct {
	pipeline       *services.MatchPipeline
	storageService services.StorageService
	maxFileSize    int64
	logger         *zap.Logger
}

func NewMatchHandler(
	pipeline *services.MatchPipeline,
	storageService services.StorageService,
	maxFileSize int64,
	logger *zap.Logger,
) *MatchHandler {
	return &MatchHandler{
		pipeline:       pipeline,
		storageService: storageService,
		maxFileSize:    maxFileSize,
		logger:         logger,
	}
}

// HandleMatch handles POST /api/v1/match: one job_description field
// plus one or more resume files, ranked in a single request/response
// cycle.
func (h *MatchHandler) HandleMatch(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	jobDescription := c.FormValue("job_description")
	files := form.File["resumes"]

	// Reject before any audit copy is written.
	if strings.TrimSpace(jobDescription) == "" || len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.MatchResponse{
			Message: missingInputMessage,
			Results: []models.RankedResult{},
		})
	}

	docs, err := h.readDocuments(files)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	results, err := h.pipeline.Run(c.UserContext(), jobDescription, docs)
	if err != nil {
		if errors.Is(err, services.ErrMissingInput) {
			return c.Status(fiber.StatusBadRequest).JSON(models.MatchResponse{
				Message: missingInputMessage,
				Results: []models.RankedResult{},
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to rank resumes",
		})
	}

	return c.JSON(models.MatchResponse{
		Message: "Top matching resumes:",
		Results: results,
	})
}

// readDocuments loads every uploaded resume into memory and writes an
// audit copy of each. A rejected batch leaves no audit copies behind.
func (h *MatchHandler) readDocuments(files []*multipart.FileHeader) ([]models.RawDocument, error) {
	docs := make([]models.RawDocument, 0, len(files))
	var stored []string

	cleanup := func() {
		for _, filename := range stored {
			if err := h.storageService.DeleteFile(filename); err != nil {
				h.logger.Warn("failed to remove stored upload",
					zap.String("filename", filename),
					zap.Error(err),
				)
			}
		}
	}

	for _, file := range files {
		if file.Size > h.maxFileSize {
			cleanup()
			return nil, fmt.Errorf("file %s is too large (max %d bytes)", file.Filename, h.maxFileSize)
		}

		content, err := readFileContent(file)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("failed to read file %s", file.Filename)
		}

		doc := models.NewRawDocument(file.Filename, content)

		// Audit copy only; the pipeline runs from memory.
		if filename, err := h.storageService.SaveUpload(doc); err != nil {
			h.logger.Warn("failed to store upload",
				zap.String("filename", doc.Filename),
				zap.Error(err),
			)
		} else {
			stored = append(stored, filename)
		}

		docs = append(docs, doc)
	}

	return docs, nil
}

func readFileContent(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return io.ReadAll(src)
}
