package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cocktails/internal/entity/converter"
	"cocktails/internal/entity/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CreateCocktail handles POST /cocktails. The nested document is persisted
// atomically; the response carries the assembled document with its new id.
func (h *HTTPHandler) CreateCocktail(c *gin.Context) {
	if h.repo == nil {
		ServiceUnavailable(c, "cocktail repository not available")
		return
	}

	var req dto.CreateCocktailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		MissingField(c, "title")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	created, err := h.repo.CreateCocktail(ctx, &req)
	if err != nil {
		logrus.WithError(err).WithField("title", req.Title).Error("failed to create cocktail")
		InternalError(c, "failed to create cocktail")
		return
	}

	c.JSON(http.StatusCreated, converter.CocktailToDocument(created))
}

// ListCocktails handles GET /cocktails.
func (h *HTTPHandler) ListCocktails(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusOK, []dto.Cocktail{})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	cocktails, err := h.repo.ListCocktails(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to list cocktails")
		InternalError(c, "failed to list cocktails")
		return
	}

	c.JSON(http.StatusOK, converter.CocktailsToDocuments(cocktails))
}

// GetCocktail handles GET /cocktails/:id.
func (h *HTTPHandler) GetCocktail(c *gin.Context) {
	if h.repo == nil {
		ServiceUnavailable(c, "cocktail repository not available")
		return
	}

	rawID := strings.TrimSpace(c.Param("id"))
	cocktailID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || cocktailID == 0 {
		BadRequest(c, ErrCodeInvalidRequest, "invalid cocktail id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	cocktail, err := h.repo.GetCocktail(ctx, uint(cocktailID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeCocktailNotFound, "cocktail not found")
			return
		}
		logrus.WithError(err).WithField("id", cocktailID).Error("failed to load cocktail")
		InternalError(c, "failed to load cocktail")
		return
	}

	c.JSON(http.StatusOK, converter.CocktailToDocument(cocktail))
}
