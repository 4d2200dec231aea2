package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/AnTengye/contractstudio/compose"
	"github.com/AnTengye/contractstudio/middleware"
	"github.com/AnTengye/contractstudio/model"
	"github.com/AnTengye/contractstudio/pkg/logger"
	"github.com/AnTengye/contractstudio/render"
	"github.com/AnTengye/contractstudio/service"
	"github.com/gin-gonic/gin"
)

type ContractHandler struct {
	documents *service.DocumentService
}

func NewContractHandler(documents *service.DocumentService) *ContractHandler {
	return &ContractHandler{documents: documents}
}

// TypeInfo describes one selectable contract type
type TypeInfo struct {
	Type  model.ContractType `json:"type"`
	Title string             `json:"title"`
}

// Types lists the contract types the form can submit
func (h *ContractHandler) Types(c *gin.Context) {
	types := make([]TypeInfo, 0, len(model.ContractTypes))
	for _, ct := range model.ContractTypes {
		types = append(types, TypeInfo{Type: ct, Title: compose.Title(ct)})
	}

	c.JSON(http.StatusOK, gin.H{
		"types":           types,
		"archive_enabled": h.documents.ArchiveEnabled(),
	})
}

// Preview composes the submitted contract into its block tree
func (h *ContractHandler) Preview(c *gin.Context) {
	contract, ok := bindContract(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.documents.Compose(contract))
}

// Render composes the submitted contract and returns it as an HTML page.
// With ?download=1 the page is sent as an attachment.
func (h *ContractHandler) Render(c *gin.Context) {
	contract, ok := bindContract(c)
	if !ok {
		return
	}

	_, body, err := h.documents.Render(contract)
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("download") == "1" {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", service.Filename(contract.Type())))
	}
	c.Data(http.StatusOK, render.ContentType, body)
}

// Archive renders the submitted contract and stores it for the tenant
func (h *ContractHandler) Archive(c *gin.Context) {
	contract, ok := bindContract(c)
	if !ok {
		return
	}

	tenant := middleware.GetTenant(c)
	doc, err := h.documents.Archive(c.Request.Context(), tenant, contract)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// List returns all archived documents for the current tenant
func (h *ContractHandler) List(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	c.JSON(http.StatusOK, gin.H{
		"documents": h.documents.List(tenant),
	})
}

// Get returns an archived document with a fresh download URL
func (h *ContractHandler) Get(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	doc, err := h.documents.Get(c.Request.Context(), tenant, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// Delete removes an archived document and its stored file
func (h *ContractHandler) Delete(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	if err := h.documents.Delete(c.Request.Context(), tenant, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}

// bindContract decodes the request envelope. It writes the 400 response
// itself and reports false when the body is unusable.
func bindContract(c *gin.Context) (model.Contract, bool) {
	var env model.Envelope
	if err := c.ShouldBindJSON(&env); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return nil, false
	}

	contract, err := env.Decode()
	if err != nil {
		logger.Warn(c.Request.Context(), "invalid contract payload",
			"type", env.Type,
			"error", err,
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contract data"})
		return nil, false
	}
	return contract, true
}

// respondError maps service errors to HTTP statuses
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, service.ErrArchiveDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Document archive is not configured"})
	case errors.Is(err, service.ErrUnsupportedType), errors.Is(err, service.ErrInvalidQuote):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		logger.Error(c.Request.Context(), "request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
